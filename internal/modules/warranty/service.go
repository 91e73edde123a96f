package warranty

import (
	"context"
	"errors"
	"time"

	"kitchencare/internal/domain"
	"kitchencare/internal/pkg/ident"
	"kitchencare/internal/repository"
)

type Service struct {
	plans  PlanRepository
	notifs NotificationSender
}

func NewService(plans PlanRepository, notifs NotificationSender) *Service {
	return &Service{plans: plans, notifs: notifs}
}

// ListTiers returns the static plan configuration shown during selection.
func (s *Service) ListTiers() []Tier {
	return Tiers
}

func (s *Service) ListPlans(ctx context.Context) ([]domain.WarrantyPlan, error) {
	return s.plans.GetWarrantyPlans(ctx)
}

func (s *Service) GetPlan(ctx context.Context, id int64) (*domain.WarrantyPlan, error) {
	p, err := s.plans.GetWarrantyPlanByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrPlanNotFound
		}
		return nil, err
	}
	return p, nil
}

func (s *Service) PurchasePlan(ctx context.Context, userID, planID int64) (*domain.UserPlan, error) {
	plan, err := s.GetPlan(ctx, planID)
	if err != nil {
		return nil, err
	}
	return s.purchaseAt(ctx, userID, plan, time.Now())
}

// purchaseAt uses calendar-month arithmetic for the coverage window: a
// 36-month plan started 2025-04-24 ends 2028-04-24, not 36×30 days later.
func (s *Service) purchaseAt(ctx context.Context, userID int64, plan *domain.WarrantyPlan, now time.Time) (*domain.UserPlan, error) {
	up := &domain.UserPlan{
		UserID:             userID,
		PlanID:             plan.ID,
		PlanName:           plan.Name,
		StartDate:          now,
		EndDate:            now.AddDate(0, plan.DurationMonths, 0),
		Status:             domain.PlanActive,
		PurchaseAmount:     plan.Price,
		ServiceVisitsUsed:  0,
		ServiceVisitsTotal: plan.ServiceVisits,
		ContractID:         ident.ContractNumber(now),
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	if err := s.plans.CreateUserPlan(ctx, up); err != nil {
		return nil, err
	}

	if s.notifs != nil {
		_ = s.notifs.NotifyPlanPurchased(ctx, userID, up.PlanName, up.ContractID)
	}

	return up, nil
}

// ListActivePlans filters on the stored status; the view also carries the
// status derived from the end date so records past expiry read as expired
// even though nothing rewrites the stored field.
func (s *Service) ListActivePlans(ctx context.Context, userID int64) ([]UserPlanView, error) {
	plans, err := s.plans.GetActiveUserPlans(ctx, userID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	out := make([]UserPlanView, 0, len(plans))
	for _, p := range plans {
		out = append(out, UserPlanView{
			UserPlan:        p,
			EffectiveStatus: p.EffectiveStatus(now),
		})
	}
	return out, nil
}

func (s *Service) CancelPlan(ctx context.Context, userID, planID int64) error {
	p, err := s.plans.GetUserPlanByID(ctx, planID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrPlanNotFound
		}
		return err
	}
	if p.UserID != userID {
		return ErrForbidden
	}
	if p.Status != domain.PlanActive {
		return ErrNotActive
	}

	return s.plans.UpdateUserPlanStatus(ctx, planID, domain.PlanCancelled)
}
