package repository

import (
	"context"
	"errors"

	"shoppingpaglu/internal/domain/model"
)

var ErrNotFound = errors.New("not found")

// 商品の永続化（保存・取得）だけを約束。
type ProductRepository interface {
	//全件（並び順はストレージ任せ）
	List(ctx context.Context) ([]model.Product, error)
	FindByID(ctx context.Context, id string) (model.Product, error)
	//IN句で一括取得。存在しないIDは結果に含まれない
	FindByIDs(ctx context.Context, ids []string) ([]model.Product, error)
	//IDが無いものだけ挿入（既存行は変更しない）
	InsertIfAbsent(ctx context.Context, products []model.Product) error
}
