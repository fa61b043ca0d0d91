package repository

import (
	"context"

	"shoppingpaglu/internal/domain/model"
)

type OrderItemRepository interface {
	//1明細ずつ順番に挿入。途中で失敗したらそこで止める
	CreateBulk(ctx context.Context, orderID int64, items []model.OrderItem) error
	ListByOrderID(ctx context.Context, orderID int64) ([]model.OrderItem, error)
}
