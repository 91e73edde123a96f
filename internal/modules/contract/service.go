package contract

import (
	"context"
	"errors"
	"time"

	"kitchencare/internal/domain"
	"kitchencare/internal/repository"
)

// coverageDetails is the same for every plan tier; the agreement text does
// not vary with what the tier actually covers.
var coverageDetails = []string{
	"Regular maintenance and service checks",
	"Repair or replacement of defective parts",
	"Labor costs for repairs",
	"Emergency service support",
	"Technical assistance and troubleshooting",
}

type Service struct {
	contracts ContractRepository
	plans     PlanRepository
	users     UserRepository
	kitchens  KitchenRepository
}

func NewService(contracts ContractRepository, plans PlanRepository, users UserRepository, kitchens KitchenRepository) *Service {
	return &Service{contracts: contracts, plans: plans, users: users, kitchens: kitchens}
}

// Generate assembles the agreement from the purchased plan, the client
// profile and the kitchen profile. The agreement number is the plan's
// contract ID, so regenerating for the same plan reuses the same number.
func (s *Service) Generate(ctx context.Context, userID, planID int64) (*domain.DigitalContract, error) {
	plan, err := s.plans.GetUserPlanByID(ctx, planID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrPlanNotFound
		}
		return nil, err
	}
	if plan.UserID != userID {
		return nil, ErrForbidden
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	kitchen, err := s.kitchens.GetFirstByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrKitchenRequired
		}
		return nil, err
	}

	now := time.Now()
	ct := &domain.DigitalContract{
		UserID:          userID,
		PlanID:          planID,
		AgreementNumber: plan.ContractID,
		IssueDate:       now,
		PlanType:        plan.PlanName,
		CoveragePeriod: domain.CoveragePeriod{
			Start: plan.StartDate,
			End:   plan.EndDate,
		},
		AmountPaid: plan.PurchaseAmount,
		ClientInfo: domain.ClientInfo{
			Name:          user.DisplayName,
			ContactNumber: user.PhoneNumber,
			Email:         user.Email,
			Address:       user.Address,
		},
		KitchenDetails: domain.KitchenInfo{
			KitchenType:      kitchen.KitchenType,
			InstallationDate: kitchen.InstallationDate,
			Size:             kitchen.Size,
		},
		CoverageDetails: coverageDetails,
		TermsAccepted:   false,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if len(kitchen.ImageURLs) > 0 {
		ct.KitchenDetails.ImageURL = kitchen.ImageURLs[0]
	}

	if err := s.contracts.Create(ctx, ct); err != nil {
		return nil, err
	}
	return ct, nil
}

func (s *Service) GetContract(ctx context.Context, userID, id int64) (*domain.DigitalContract, error) {
	ct, err := s.contracts.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrContractNotFound
		}
		return nil, err
	}
	if ct.UserID != userID {
		return nil, ErrForbidden
	}
	return ct, nil
}

// Accept records the client's agreement. Both signature dates are set to the
// same instant; the company does not countersign separately.
func (s *Service) Accept(ctx context.Context, userID, id int64) (*domain.DigitalContract, error) {
	ct, err := s.GetContract(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if ct.TermsAccepted {
		return nil, ErrAlreadyAccepted
	}

	now := time.Now()
	if err := s.contracts.Accept(ctx, id, now); err != nil {
		return nil, err
	}

	ct.TermsAccepted = true
	ct.ClientSignatureDate = &now
	ct.CompanySignatureDate = &now
	ct.UpdatedAt = now
	return ct, nil
}

func (s *Service) ListForUser(ctx context.Context, userID int64) ([]domain.DigitalContract, error) {
	return s.contracts.GetByUserID(ctx, userID)
}

// Render returns the agreement as a printable HTML document.
func (s *Service) Render(ctx context.Context, userID, id int64) (string, error) {
	ct, err := s.GetContract(ctx, userID, id)
	if err != nil {
		return "", err
	}
	return RenderHTML(ct)
}
