package kitchen

import (
	"context"

	"kitchencare/internal/domain"
)

type KitchenRepository interface {
	Create(ctx context.Context, k *domain.KitchenDetails) error
	GetFirstByUserID(ctx context.Context, userID int64) (*domain.KitchenDetails, error)
}
