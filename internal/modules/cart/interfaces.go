package cart

import (
	"context"

	"kitchencare/internal/domain"
)

type CartRepository interface {
	Create(ctx context.Context, i *domain.CartItem) error
	GetByID(ctx context.Context, id int64) (*domain.CartItem, error)
	GetByUserAndProduct(ctx context.Context, userID, productID int64) (*domain.CartItem, error)
	GetByUserID(ctx context.Context, userID int64) ([]domain.CartItem, error)
	UpdateQuantity(ctx context.Context, id int64, quantity int) error
	Delete(ctx context.Context, id int64) error
	DeleteByUserID(ctx context.Context, userID int64) error
}

type ProductRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Product, error)
}

type OrderRepository interface {
	Create(ctx context.Context, o *domain.Order) error
	GetByUserID(ctx context.Context, userID int64) ([]domain.Order, error)
	GetByID(ctx context.Context, id int64) (*domain.Order, error)
	UpdateStatus(ctx context.Context, id int64, status domain.OrderStatus) error
	UpdatePaymentStatus(ctx context.Context, id int64, status domain.PaymentStatus) error
}
