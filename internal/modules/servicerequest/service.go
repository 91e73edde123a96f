package servicerequest

import (
	"context"
	"errors"
	"fmt"
	"time"

	"kitchencare/internal/domain"
	"kitchencare/internal/repository"
	"kitchencare/internal/upload"
)

var validServiceTypes = map[domain.ServiceType]bool{
	domain.ServiceChimney:    true,
	domain.ServiceHob:        true,
	domain.ServiceMicrowave:  true,
	domain.ServiceCooktop:    true,
	domain.ServicePlumbing:   true,
	domain.ServiceCabinet:    true,
	domain.ServiceAppliance:  true,
	domain.ServiceElectrical: true,
	domain.ServiceOther:      true,
}

type Service struct {
	requests    RequestRepository
	plans       PlanRepository
	technicians TechnicianRepository
	store       upload.Store
	notifs      NotificationSender

	// capVisits switches the visit counter to the guarded increment that
	// refuses to go past the plan total. Off by default: the counter has
	// always been allowed to overdraw and callers depend on requests being
	// accepted regardless.
	capVisits bool
}

type Option func(*Service)

func WithCappedVisits() Option {
	return func(s *Service) { s.capVisits = true }
}

func NewService(requests RequestRepository, plans PlanRepository, technicians TechnicianRepository, store upload.Store, notifs NotificationSender, opts ...Option) *Service {
	s := &Service{
		requests:    requests,
		plans:       plans,
		technicians: technicians,
		store:       store,
		notifs:      notifs,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Taxonomy returns the static form data: appliances, per-appliance issues,
// time slots and service charges.
func (s *Service) Taxonomy() TaxonomyResponse {
	return TaxonomyResponse{
		Appliances:        Appliances,
		IssuesByAppliance: IssuesByAppliance,
		TimeSlots:         TimeSlots,
		ServiceCharges:    ServiceCharges,
	}
}

// CreateRequest books a service visit against the given plan. Images are
// uploaded one at a time first, then the request is written, then the plan's
// visit counter is incremented. The three steps are not atomic: a crash
// between them leaves uploaded images or an uncounted visit behind.
func (s *Service) CreateRequest(ctx context.Context, userID int64, req CreateRequestRequest, images []ImageUpload) (*domain.ServiceRequest, error) {
	if !validServiceTypes[req.ServiceType] {
		return nil, ErrValidation
	}
	if req.PreferredTimeSlot != "" && !validTimeSlot(req.PreferredTimeSlot) {
		return nil, ErrValidation
	}

	plan, err := s.plans.GetUserPlanByID(ctx, req.PlanID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrPlanNotFound
		}
		return nil, err
	}
	if plan.UserID != userID {
		return nil, ErrForbidden
	}
	if plan.EffectiveStatus(time.Now()) != domain.PlanActive {
		return nil, ErrPlanNotActive
	}

	urls := make([]string, 0, len(images))
	for i, img := range images {
		path := fmt.Sprintf("service-requests/%d/%d_%s", userID, i, img.Name)
		url, err := s.store.Save(ctx, path, img.Content, img.MimeType)
		if err != nil {
			return nil, err
		}
		urls = append(urls, url)
	}

	now := time.Now()
	sr := &domain.ServiceRequest{
		UserID:            userID,
		PlanID:            req.PlanID,
		ServiceType:       req.ServiceType,
		Description:       req.Description,
		ImageURLs:         urls,
		PreferredDate:     req.PreferredDate,
		PreferredTimeSlot: req.PreferredTimeSlot,
		Status:            domain.RequestPending,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	if err := s.requests.Create(ctx, sr); err != nil {
		return nil, err
	}

	if s.capVisits {
		err = s.plans.IncrementVisitsUsedCapped(ctx, plan.ID)
	} else {
		err = s.plans.IncrementVisitsUsed(ctx, plan.ID)
	}
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNoVisitsLeft
		}
		return nil, err
	}

	if s.notifs != nil {
		_ = s.notifs.NotifyServiceRequestCreated(ctx, userID, sr.ID, string(sr.ServiceType))
	}

	return sr, nil
}

func (s *Service) ListForUser(ctx context.Context, userID int64) ([]domain.ServiceRequest, error) {
	return s.requests.GetByUserID(ctx, userID)
}

func (s *Service) GetRequest(ctx context.Context, userID, id int64) (*domain.ServiceRequest, error) {
	sr, err := s.requests.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrRequestNotFound
		}
		return nil, err
	}
	if sr.UserID != userID {
		return nil, ErrForbidden
	}
	return sr, nil
}

func (s *Service) CancelRequest(ctx context.Context, userID, id int64) error {
	sr, err := s.GetRequest(ctx, userID, id)
	if err != nil {
		return err
	}
	if sr.Status == domain.RequestCompleted || sr.Status == domain.RequestCancelled {
		return ErrInvalidTransition
	}
	// The visit consumed at creation is not refunded.
	return s.requests.UpdateStatus(ctx, id, domain.RequestCancelled)
}

var requestTransitions = map[domain.ServiceRequestStatus][]domain.ServiceRequestStatus{
	domain.RequestPending:   {domain.RequestScheduled, domain.RequestCancelled},
	domain.RequestScheduled: {domain.RequestCompleted, domain.RequestCancelled},
}

// UpdateStatus is the operator-side lifecycle transition. Completing a
// request credits the assigned technician's completed-services counter.
func (s *Service) UpdateStatus(ctx context.Context, id int64, status domain.ServiceRequestStatus) error {
	sr, err := s.requests.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrRequestNotFound
		}
		return err
	}

	allowed := false
	for _, next := range requestTransitions[sr.Status] {
		if next == status {
			allowed = true
			break
		}
	}
	if !allowed {
		return ErrInvalidTransition
	}

	if err := s.requests.UpdateStatus(ctx, id, status); err != nil {
		return err
	}

	if status == domain.RequestCompleted && sr.TechnicianID != nil {
		_ = s.technicians.IncrementCompletedServices(ctx, *sr.TechnicianID)
	}
	return nil
}

// AssignTechnician binds an available technician to a pending request and
// moves it to scheduled.
func (s *Service) AssignTechnician(ctx context.Context, requestID, technicianID int64) error {
	sr, err := s.requests.GetByID(ctx, requestID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrRequestNotFound
		}
		return err
	}
	if sr.Status != domain.RequestPending {
		return ErrInvalidTransition
	}

	tech, err := s.technicians.GetByID(ctx, technicianID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrTechnicianNotFound
		}
		return err
	}

	return s.requests.AssignTechnician(ctx, requestID, tech.ID, tech.Name)
}

func (s *Service) ListAvailableTechnicians(ctx context.Context) ([]domain.Technician, error) {
	return s.technicians.GetAvailable(ctx)
}
