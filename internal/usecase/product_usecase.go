package usecase

import (
	"context"
	"errors"
	"net/http"

	"shoppingpaglu/internal/domain/model"
	repo "shoppingpaglu/internal/repository"
)

// カタログの読み取り専用
type ProductUsecase struct {
	productRepo repo.ProductRepository
}

// DI
func NewProductUsecase(productRepo repo.ProductRepository) *ProductUsecase {
	return &ProductUsecase{productRepo: productRepo}
}

// 全商品。並び順はストレージの返す順
func (u *ProductUsecase) ListProducts(ctx context.Context) ([]model.Product, error) {
	items, err := u.productRepo.List(ctx)
	if err != nil {
		return []model.Product{}, NewStorageError("Error fetching products", err)
	}
	return items, nil
}

func (u *ProductUsecase) GetProduct(ctx context.Context, productID string) (model.Product, error) {
	p, err := u.productRepo.FindByID(ctx, productID)
	if errors.Is(err, repo.ErrNotFound) {
		return model.Product{}, NewHTTPError(ErrNotFound, http.StatusNotFound, "Product not found")
	}
	if err != nil {
		return model.Product{}, NewStorageError("Error fetching product", err)
	}
	return p, nil
}
