package tips

import (
	"context"

	"kitchencare/internal/domain"
)

type TipRepository interface {
	GetAll(ctx context.Context) ([]domain.MaintenanceTip, error)
	GetByCategory(ctx context.Context, category string) ([]domain.MaintenanceTip, error)
}

type Service struct {
	tips TipRepository
}

func NewService(tips TipRepository) *Service {
	return &Service{tips: tips}
}

func (s *Service) List(ctx context.Context, category string) ([]domain.MaintenanceTip, error) {
	if category != "" {
		return s.tips.GetByCategory(ctx, category)
	}
	return s.tips.GetAll(ctx)
}
