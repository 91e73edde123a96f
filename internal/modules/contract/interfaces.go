package contract

import (
	"context"
	"time"

	"kitchencare/internal/domain"
)

type ContractRepository interface {
	Create(ctx context.Context, ct *domain.DigitalContract) error
	GetByID(ctx context.Context, id int64) (*domain.DigitalContract, error)
	GetByUserID(ctx context.Context, userID int64) ([]domain.DigitalContract, error)
	Accept(ctx context.Context, id int64, signedAt time.Time) error
}

type PlanRepository interface {
	GetUserPlanByID(ctx context.Context, id int64) (*domain.UserPlan, error)
}

type UserRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}

type KitchenRepository interface {
	GetFirstByUserID(ctx context.Context, userID int64) (*domain.KitchenDetails, error)
}
