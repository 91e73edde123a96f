package servicerequest

import (
	"context"
	"fmt"
	"testing"
	"time"

	"kitchencare/internal/domain"
	"kitchencare/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockRequestRepository struct {
	mock.Mock
}

func (m *MockRequestRepository) Create(ctx context.Context, sr *domain.ServiceRequest) error {
	args := m.Called(ctx, sr)
	if sr != nil {
		sr.ID = 401
	}
	return args.Error(0)
}

func (m *MockRequestRepository) GetByID(ctx context.Context, id int64) (*domain.ServiceRequest, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ServiceRequest), args.Error(1)
}

func (m *MockRequestRepository) GetByUserID(ctx context.Context, userID int64) ([]domain.ServiceRequest, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ServiceRequest), args.Error(1)
}

func (m *MockRequestRepository) UpdateStatus(ctx context.Context, id int64, status domain.ServiceRequestStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *MockRequestRepository) AssignTechnician(ctx context.Context, id, technicianID int64, technicianName string) error {
	args := m.Called(ctx, id, technicianID, technicianName)
	return args.Error(0)
}

type MockPlanRepository struct {
	mock.Mock
}

func (m *MockPlanRepository) GetUserPlanByID(ctx context.Context, id int64) (*domain.UserPlan, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UserPlan), args.Error(1)
}

func (m *MockPlanRepository) IncrementVisitsUsed(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockPlanRepository) IncrementVisitsUsedCapped(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockTechnicianRepository struct {
	mock.Mock
}

func (m *MockTechnicianRepository) GetByID(ctx context.Context, id int64) (*domain.Technician, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Technician), args.Error(1)
}

func (m *MockTechnicianRepository) GetAvailable(ctx context.Context) ([]domain.Technician, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Technician), args.Error(1)
}

func (m *MockTechnicianRepository) IncrementCompletedServices(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockNotificationSender struct {
	mock.Mock
}

func (m *MockNotificationSender) NotifyServiceRequestCreated(ctx context.Context, userID int64, requestID int64, serviceType string) error {
	args := m.Called(ctx, userID, requestID, serviceType)
	return args.Error(0)
}

// fakeStore records saved paths and returns deterministic URLs.
type fakeStore struct {
	saved []string
}

func (f *fakeStore) Save(ctx context.Context, path string, content []byte, mimeType string) (string, error) {
	f.saved = append(f.saved, path)
	return fmt.Sprintf("/static/uploads/%s", path), nil
}

func activePlan(used, total int) *domain.UserPlan {
	return &domain.UserPlan{
		ID:                 30,
		UserID:             7,
		Status:             domain.PlanActive,
		EndDate:            time.Now().AddDate(1, 0, 0),
		ServiceVisitsUsed:  used,
		ServiceVisitsTotal: total,
	}
}

func validRequest() CreateRequestRequest {
	return CreateRequestRequest{
		PlanID:            30,
		ServiceType:       domain.ServiceChimney,
		Description:       "Low suction power",
		PreferredDate:     time.Now().AddDate(0, 0, 3),
		PreferredTimeSlot: "9:00 AM - 12:00 PM",
	}
}

func TestService_CreateRequest_Success(t *testing.T) {
	requests := new(MockRequestRepository)
	plans := new(MockPlanRepository)
	notifs := new(MockNotificationSender)
	store := &fakeStore{}

	plans.On("GetUserPlanByID", mock.Anything, int64(30)).Return(activePlan(0, 2), nil)
	requests.On("Create", mock.Anything, mock.Anything).Return(nil)
	plans.On("IncrementVisitsUsed", mock.Anything, int64(30)).Return(nil)
	notifs.On("NotifyServiceRequestCreated", mock.Anything, int64(7), int64(401), "chimney").Return(nil)

	service := NewService(requests, plans, new(MockTechnicianRepository), store, notifs)

	images := []ImageUpload{
		{Name: "before.jpg", Content: []byte("a"), MimeType: "image/jpeg"},
		{Name: "after.jpg", Content: []byte("b"), MimeType: "image/jpeg"},
	}
	sr, err := service.CreateRequest(context.Background(), 7, validRequest(), images)

	assert.NoError(t, err)
	assert.Equal(t, domain.RequestPending, sr.Status)
	assert.Len(t, sr.ImageURLs, 2)
	assert.Equal(t, []string{"service-requests/7/0_before.jpg", "service-requests/7/1_after.jpg"}, store.saved)
	plans.AssertCalled(t, "IncrementVisitsUsed", mock.Anything, int64(30))
}

// The visit counter is not checked against the plan total: a plan with all
// visits used still accepts another request and overdraws the counter.
func TestService_CreateRequest_OverdrawsVisits(t *testing.T) {
	requests := new(MockRequestRepository)
	plans := new(MockPlanRepository)

	plans.On("GetUserPlanByID", mock.Anything, int64(30)).Return(activePlan(2, 2), nil)
	requests.On("Create", mock.Anything, mock.Anything).Return(nil)
	plans.On("IncrementVisitsUsed", mock.Anything, int64(30)).Return(nil)

	service := NewService(requests, plans, new(MockTechnicianRepository), &fakeStore{}, nil)

	_, err := service.CreateRequest(context.Background(), 7, validRequest(), nil)

	assert.NoError(t, err)
	plans.AssertCalled(t, "IncrementVisitsUsed", mock.Anything, int64(30))
	plans.AssertNotCalled(t, "IncrementVisitsUsedCapped", mock.Anything, mock.Anything)
}

func TestService_CreateRequest_CappedOptionRefusesOverdraw(t *testing.T) {
	requests := new(MockRequestRepository)
	plans := new(MockPlanRepository)

	plans.On("GetUserPlanByID", mock.Anything, int64(30)).Return(activePlan(2, 2), nil)
	requests.On("Create", mock.Anything, mock.Anything).Return(nil)
	plans.On("IncrementVisitsUsedCapped", mock.Anything, int64(30)).Return(repository.ErrNotFound)

	service := NewService(requests, plans, new(MockTechnicianRepository), &fakeStore{}, nil, WithCappedVisits())

	_, err := service.CreateRequest(context.Background(), 7, validRequest(), nil)
	assert.ErrorIs(t, err, ErrNoVisitsLeft)
}

func TestService_CreateRequest_ExpiredPlan(t *testing.T) {
	plans := new(MockPlanRepository)
	expired := activePlan(0, 2)
	expired.EndDate = time.Now().AddDate(-1, 0, 0)
	plans.On("GetUserPlanByID", mock.Anything, int64(30)).Return(expired, nil)

	service := NewService(new(MockRequestRepository), plans, new(MockTechnicianRepository), &fakeStore{}, nil)

	_, err := service.CreateRequest(context.Background(), 7, validRequest(), nil)
	assert.ErrorIs(t, err, ErrPlanNotActive)
}

func TestService_CreateRequest_OtherUsersPlan(t *testing.T) {
	plans := new(MockPlanRepository)
	other := activePlan(0, 2)
	other.UserID = 8
	plans.On("GetUserPlanByID", mock.Anything, int64(30)).Return(other, nil)

	service := NewService(new(MockRequestRepository), plans, new(MockTechnicianRepository), &fakeStore{}, nil)

	_, err := service.CreateRequest(context.Background(), 7, validRequest(), nil)
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestService_CreateRequest_UnknownServiceType(t *testing.T) {
	requests := new(MockRequestRepository)
	plans := new(MockPlanRepository)
	service := NewService(requests, plans, new(MockTechnicianRepository), &fakeStore{}, nil)

	req := validRequest()
	req.ServiceType = domain.ServiceType("garbage-disposal-unit")

	_, err := service.CreateRequest(context.Background(), 7, req, nil)
	assert.ErrorIs(t, err, ErrValidation)
	requests.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	plans.AssertNotCalled(t, "IncrementVisitsUsed", mock.Anything, mock.Anything)
}

func TestService_CreateRequest_UnknownTimeSlot(t *testing.T) {
	service := NewService(new(MockRequestRepository), new(MockPlanRepository), new(MockTechnicianRepository), &fakeStore{}, nil)

	req := validRequest()
	req.PreferredTimeSlot = "6:00 PM - 9:00 PM"

	_, err := service.CreateRequest(context.Background(), 7, req, nil)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestService_CancelRequest_VisitNotRefunded(t *testing.T) {
	requests := new(MockRequestRepository)
	plans := new(MockPlanRepository)

	requests.On("GetByID", mock.Anything, int64(401)).Return(&domain.ServiceRequest{ID: 401, UserID: 7, PlanID: 30, Status: domain.RequestPending}, nil)
	requests.On("UpdateStatus", mock.Anything, int64(401), domain.RequestCancelled).Return(nil)

	service := NewService(requests, plans, new(MockTechnicianRepository), &fakeStore{}, nil)

	assert.NoError(t, service.CancelRequest(context.Background(), 7, 401))
	plans.AssertNotCalled(t, "IncrementVisitsUsed", mock.Anything, mock.Anything)
}

func TestService_UpdateStatus_CompletionCreditsTechnician(t *testing.T) {
	requests := new(MockRequestRepository)
	technicians := new(MockTechnicianRepository)

	techID := int64(5)
	requests.On("GetByID", mock.Anything, int64(401)).Return(&domain.ServiceRequest{ID: 401, Status: domain.RequestScheduled, TechnicianID: &techID}, nil)
	requests.On("UpdateStatus", mock.Anything, int64(401), domain.RequestCompleted).Return(nil)
	technicians.On("IncrementCompletedServices", mock.Anything, techID).Return(nil)

	service := NewService(requests, new(MockPlanRepository), technicians, &fakeStore{}, nil)

	assert.NoError(t, service.UpdateStatus(context.Background(), 401, domain.RequestCompleted))
	technicians.AssertCalled(t, "IncrementCompletedServices", mock.Anything, techID)
}

func TestService_UpdateStatus_InvalidTransition(t *testing.T) {
	requests := new(MockRequestRepository)
	requests.On("GetByID", mock.Anything, int64(401)).Return(&domain.ServiceRequest{ID: 401, Status: domain.RequestPending}, nil)

	service := NewService(requests, new(MockPlanRepository), new(MockTechnicianRepository), &fakeStore{}, nil)

	err := service.UpdateStatus(context.Background(), 401, domain.RequestCompleted)
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestService_AssignTechnician(t *testing.T) {
	requests := new(MockRequestRepository)
	technicians := new(MockTechnicianRepository)

	requests.On("GetByID", mock.Anything, int64(401)).Return(&domain.ServiceRequest{ID: 401, Status: domain.RequestPending}, nil)
	technicians.On("GetByID", mock.Anything, int64(5)).Return(&domain.Technician{ID: 5, Name: "Amit Kumar"}, nil)
	requests.On("AssignTechnician", mock.Anything, int64(401), int64(5), "Amit Kumar").Return(nil)

	service := NewService(requests, new(MockPlanRepository), technicians, &fakeStore{}, nil)

	assert.NoError(t, service.AssignTechnician(context.Background(), 401, 5))
}

func TestTaxonomy_EveryApplianceHasIssues(t *testing.T) {
	for _, a := range Appliances {
		issues, ok := IssuesByAppliance[a.ID]
		assert.True(t, ok, "missing issues for %s", a.ID)
		assert.Equal(t, "Other", issues[len(issues)-1])
	}
	assert.Len(t, TimeSlots, 3)
}

func TestBookingWindow(t *testing.T) {
	now := time.Date(2025, time.April, 24, 0, 0, 0, 0, time.UTC)
	min, max := BookingWindow(now)

	assert.Equal(t, time.Date(2025, time.April, 25, 0, 0, 0, 0, time.UTC), min)
	assert.Equal(t, time.Date(2025, time.May, 8, 0, 0, 0, 0, time.UTC), max)
}
