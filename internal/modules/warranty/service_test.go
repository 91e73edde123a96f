package warranty

import (
	"context"
	"testing"
	"time"

	"kitchencare/internal/domain"
	"kitchencare/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockPlanRepository struct {
	mock.Mock
}

func (m *MockPlanRepository) GetWarrantyPlans(ctx context.Context) ([]domain.WarrantyPlan, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.WarrantyPlan), args.Error(1)
}

func (m *MockPlanRepository) GetWarrantyPlanByID(ctx context.Context, id int64) (*domain.WarrantyPlan, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.WarrantyPlan), args.Error(1)
}

func (m *MockPlanRepository) CreateUserPlan(ctx context.Context, p *domain.UserPlan) error {
	args := m.Called(ctx, p)
	if p != nil {
		p.ID = 301
	}
	return args.Error(0)
}

func (m *MockPlanRepository) GetUserPlanByID(ctx context.Context, id int64) (*domain.UserPlan, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UserPlan), args.Error(1)
}

func (m *MockPlanRepository) GetActiveUserPlans(ctx context.Context, userID int64) ([]domain.UserPlan, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.UserPlan), args.Error(1)
}

func (m *MockPlanRepository) UpdateUserPlanStatus(ctx context.Context, id int64, status domain.PlanStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

type MockNotificationSender struct {
	mock.Mock
}

func (m *MockNotificationSender) NotifyPlanPurchased(ctx context.Context, userID int64, planName, contractID string) error {
	args := m.Called(ctx, userID, planName, contractID)
	return args.Error(0)
}

func threeYearPlan() *domain.WarrantyPlan {
	return &domain.WarrantyPlan{
		ID:             2,
		Name:           "3 Year Premium",
		DurationMonths: 36,
		Price:          7999,
		ServiceVisits:  12,
	}
}

// Coverage runs on calendar months: 36 months from 24 April 2025 ends on
// 24 April 2028, regardless of how many days that spans.
func TestService_Purchase_CalendarMonthEndDate(t *testing.T) {
	plans := new(MockPlanRepository)
	plans.On("CreateUserPlan", mock.Anything, mock.Anything).Return(nil)

	notifs := new(MockNotificationSender)
	notifs.On("NotifyPlanPurchased", mock.Anything, int64(7), "3 Year Premium", mock.Anything).Return(nil)

	service := NewService(plans, notifs)

	now := time.Date(2025, time.April, 24, 10, 30, 0, 0, time.UTC)
	up, err := service.purchaseAt(context.Background(), 7, threeYearPlan(), now)

	assert.NoError(t, err)
	assert.Equal(t, time.Date(2028, time.April, 24, 10, 30, 0, 0, time.UTC), up.EndDate)
	assert.Equal(t, domain.PlanActive, up.Status)
	assert.Equal(t, 0, up.ServiceVisitsUsed)
	assert.Equal(t, 12, up.ServiceVisitsTotal)
	assert.Equal(t, 7999.0, up.PurchaseAmount)
	assert.Regexp(t, `^KC-20250424-\d{4}$`, up.ContractID)

	notifs.AssertCalled(t, "NotifyPlanPurchased", mock.Anything, int64(7), "3 Year Premium", up.ContractID)
}

func TestService_Purchase_MonthEndRollsOver(t *testing.T) {
	plans := new(MockPlanRepository)
	plans.On("CreateUserPlan", mock.Anything, mock.Anything).Return(nil)

	service := NewService(plans, nil)

	plan := threeYearPlan()
	plan.DurationMonths = 12

	// 12 months from 29 Feb lands on 1 March of the non-leap year.
	now := time.Date(2028, time.February, 29, 0, 0, 0, 0, time.UTC)
	up, err := service.purchaseAt(context.Background(), 7, plan, now)

	assert.NoError(t, err)
	assert.Equal(t, time.Date(2029, time.March, 1, 0, 0, 0, 0, time.UTC), up.EndDate)
}

func TestService_Purchase_NotificationFailureIgnored(t *testing.T) {
	plans := new(MockPlanRepository)
	plans.On("CreateUserPlan", mock.Anything, mock.Anything).Return(nil)

	notifs := new(MockNotificationSender)
	notifs.On("NotifyPlanPurchased", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(assert.AnError)

	service := NewService(plans, notifs)

	_, err := service.purchaseAt(context.Background(), 7, threeYearPlan(), time.Now())
	assert.NoError(t, err)
}

func TestService_PurchasePlan_UnknownPlan(t *testing.T) {
	plans := new(MockPlanRepository)
	plans.On("GetWarrantyPlanByID", mock.Anything, int64(99)).Return(nil, repository.ErrNotFound)

	service := NewService(plans, nil)

	_, err := service.PurchasePlan(context.Background(), 7, 99)
	assert.ErrorIs(t, err, ErrPlanNotFound)
}

// A record still stored as active past its end date reads as expired; the
// stored status is never rewritten.
func TestService_ListActivePlans_DerivesExpiry(t *testing.T) {
	now := time.Now()
	plans := new(MockPlanRepository)
	plans.On("GetActiveUserPlans", mock.Anything, int64(7)).Return([]domain.UserPlan{
		{ID: 1, Status: domain.PlanActive, EndDate: now.AddDate(1, 0, 0)},
		{ID: 2, Status: domain.PlanActive, EndDate: now.AddDate(-1, 0, 0)},
	}, nil)

	service := NewService(plans, nil)

	views, err := service.ListActivePlans(context.Background(), 7)

	assert.NoError(t, err)
	assert.Len(t, views, 2)
	assert.Equal(t, domain.PlanActive, views[0].EffectiveStatus)
	assert.Equal(t, domain.PlanExpired, views[1].EffectiveStatus)
	assert.Equal(t, domain.PlanActive, views[1].Status)
}

func TestService_CancelPlan(t *testing.T) {
	plans := new(MockPlanRepository)
	plans.On("GetUserPlanByID", mock.Anything, int64(1)).Return(&domain.UserPlan{ID: 1, UserID: 7, Status: domain.PlanActive}, nil)
	plans.On("GetUserPlanByID", mock.Anything, int64(2)).Return(&domain.UserPlan{ID: 2, UserID: 8, Status: domain.PlanActive}, nil)
	plans.On("GetUserPlanByID", mock.Anything, int64(3)).Return(&domain.UserPlan{ID: 3, UserID: 7, Status: domain.PlanCancelled}, nil)
	plans.On("UpdateUserPlanStatus", mock.Anything, int64(1), domain.PlanCancelled).Return(nil)

	service := NewService(plans, nil)

	assert.NoError(t, service.CancelPlan(context.Background(), 7, 1))
	assert.ErrorIs(t, service.CancelPlan(context.Background(), 7, 2), ErrForbidden)
	assert.ErrorIs(t, service.CancelPlan(context.Background(), 7, 3), ErrNotActive)
}
