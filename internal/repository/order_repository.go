package repository

import (
	"context"

	"shoppingpaglu/internal/domain/model"
)

type OrderRepository interface {
	Create(ctx context.Context, order model.Order) (int64, error)
	FindByID(ctx context.Context, orderID int64) (model.Order, error)
	ListByUserEmail(ctx context.Context, email string) ([]model.Order, error)
}
