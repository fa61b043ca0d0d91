package repository

import (
	"context"
	"errors"

	"shoppingpaglu/internal/domain/model"
	repo "shoppingpaglu/internal/repository"

	"gorm.io/gorm"
)

type OrderGormRepository struct {
	db *gorm.DB
}

func NewOrderGormRepository(db *gorm.DB) *OrderGormRepository {
	return &OrderGormRepository{db: db}
}

func (r *OrderGormRepository) FindByID(ctx context.Context, orderID int64) (model.Order, error) {
	var o model.Order
	err := r.db.WithContext(ctx).Where("id = ?", orderID).First(&o).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Order{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Order{}, err
	}
	return o, nil
}

// 新しい順
// camelCaseのカラムはpostgresで小文字化されないようmapで渡す（gormがクォートする）
func (r *OrderGormRepository) ListByUserEmail(ctx context.Context, email string) ([]model.Order, error) {
	var items []model.Order
	err := r.db.WithContext(ctx).
		Where(map[string]interface{}{"userEmail": email}).
		Order("id desc").
		Find(&items).Error
	if err != nil {
		return []model.Order{}, err
	}
	return items, nil
}

func (r *OrderGormRepository) Create(ctx context.Context, order model.Order) (int64, error) {
	if err := r.db.WithContext(ctx).Create(&order).Error; err != nil {
		return 0, err
	}
	return order.ID, nil
}
