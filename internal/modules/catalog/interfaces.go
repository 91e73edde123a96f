package catalog

import (
	"context"

	"kitchencare/internal/domain"
)

type ProductRepository interface {
	GetAll(ctx context.Context) ([]domain.Product, error)
	GetByCategory(ctx context.Context, category domain.ProductCategory) ([]domain.Product, error)
	GetByID(ctx context.Context, id int64) (*domain.Product, error)
}
