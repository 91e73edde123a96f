package servicerequest

import (
	"context"

	"kitchencare/internal/domain"
)

type RequestRepository interface {
	Create(ctx context.Context, sr *domain.ServiceRequest) error
	GetByID(ctx context.Context, id int64) (*domain.ServiceRequest, error)
	GetByUserID(ctx context.Context, userID int64) ([]domain.ServiceRequest, error)
	UpdateStatus(ctx context.Context, id int64, status domain.ServiceRequestStatus) error
	AssignTechnician(ctx context.Context, id, technicianID int64, technicianName string) error
}

type PlanRepository interface {
	GetUserPlanByID(ctx context.Context, id int64) (*domain.UserPlan, error)
	IncrementVisitsUsed(ctx context.Context, id int64) error
	IncrementVisitsUsedCapped(ctx context.Context, id int64) error
}

type TechnicianRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Technician, error)
	GetAvailable(ctx context.Context) ([]domain.Technician, error)
	IncrementCompletedServices(ctx context.Context, id int64) error
}

type NotificationSender interface {
	NotifyServiceRequestCreated(ctx context.Context, userID int64, requestID int64, serviceType string) error
}
