package warranty

import (
	"context"

	"kitchencare/internal/domain"
)

type PlanRepository interface {
	GetWarrantyPlans(ctx context.Context) ([]domain.WarrantyPlan, error)
	GetWarrantyPlanByID(ctx context.Context, id int64) (*domain.WarrantyPlan, error)
	CreateUserPlan(ctx context.Context, p *domain.UserPlan) error
	GetUserPlanByID(ctx context.Context, id int64) (*domain.UserPlan, error)
	GetActiveUserPlans(ctx context.Context, userID int64) ([]domain.UserPlan, error)
	UpdateUserPlanStatus(ctx context.Context, id int64, status domain.PlanStatus) error
}

type NotificationSender interface {
	NotifyPlanPurchased(ctx context.Context, userID int64, planName string, contractID string) error
}
