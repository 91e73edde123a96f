package cart

import (
	"context"
	"testing"

	"kitchencare/internal/domain"
	"kitchencare/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockCartRepository struct {
	mock.Mock
}

func (m *MockCartRepository) Create(ctx context.Context, i *domain.CartItem) error {
	args := m.Called(ctx, i)
	if i != nil {
		i.ID = 101
	}
	return args.Error(0)
}

func (m *MockCartRepository) GetByID(ctx context.Context, id int64) (*domain.CartItem, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CartItem), args.Error(1)
}

func (m *MockCartRepository) GetByUserAndProduct(ctx context.Context, userID, productID int64) (*domain.CartItem, error) {
	args := m.Called(ctx, userID, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CartItem), args.Error(1)
}

func (m *MockCartRepository) GetByUserID(ctx context.Context, userID int64) ([]domain.CartItem, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CartItem), args.Error(1)
}

func (m *MockCartRepository) UpdateQuantity(ctx context.Context, id int64, quantity int) error {
	args := m.Called(ctx, id, quantity)
	return args.Error(0)
}

func (m *MockCartRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCartRepository) DeleteByUserID(ctx context.Context, userID int64) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) GetByID(ctx context.Context, id int64) (*domain.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Product), args.Error(1)
}

type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) Create(ctx context.Context, o *domain.Order) error {
	args := m.Called(ctx, o)
	if o != nil {
		o.ID = 201
	}
	return args.Error(0)
}

func (m *MockOrderRepository) GetByUserID(ctx context.Context, userID int64) ([]domain.Order, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Order), args.Error(1)
}

func (m *MockOrderRepository) GetByID(ctx context.Context, id int64) (*domain.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Order), args.Error(1)
}

func (m *MockOrderRepository) UpdateStatus(ctx context.Context, id int64, status domain.OrderStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *MockOrderRepository) UpdatePaymentStatus(ctx context.Context, id int64, status domain.PaymentStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func chimney() *domain.Product {
	return &domain.Product{
		ID:            1,
		Name:          "Premium Auto-Clean Chimney",
		Category:      domain.CategoryChimney,
		Price:         15999,
		DiscountPrice: 13999,
		Images:        []string{"chimney1.jpg"},
		Brand:         "Amaze Space",
		InStock:       true,
	}
}

func TestService_AddToCart_NewLine(t *testing.T) {
	carts := new(MockCartRepository)
	products := new(MockProductRepository)

	products.On("GetByID", mock.Anything, int64(1)).Return(chimney(), nil)
	carts.On("GetByUserAndProduct", mock.Anything, int64(7), int64(1)).Return(nil, repository.ErrNotFound)
	carts.On("Create", mock.Anything, mock.Anything).Return(nil)

	service := NewService(carts, products, new(MockOrderRepository))

	line, err := service.AddToCart(context.Background(), 7, 1, 2)

	assert.NoError(t, err)
	assert.Equal(t, 2, line.Quantity)
	assert.Equal(t, "Premium Auto-Clean Chimney", line.Name)
	assert.Equal(t, 13999.0, line.DiscountPrice)
	assert.Equal(t, "chimney1.jpg", line.Image)
}

// Adding the same product again merges into the existing line.
func TestService_AddToCart_MergesRepeatedAdd(t *testing.T) {
	carts := new(MockCartRepository)
	products := new(MockProductRepository)

	products.On("GetByID", mock.Anything, int64(1)).Return(chimney(), nil)
	existing := &domain.CartItem{ID: 55, UserID: 7, ProductID: 1, Quantity: 1}
	carts.On("GetByUserAndProduct", mock.Anything, int64(7), int64(1)).Return(existing, nil)
	carts.On("UpdateQuantity", mock.Anything, int64(55), 3).Return(nil)

	service := NewService(carts, products, new(MockOrderRepository))

	line, err := service.AddToCart(context.Background(), 7, 1, 2)

	assert.NoError(t, err)
	assert.Equal(t, 3, line.Quantity)
	carts.AssertCalled(t, "UpdateQuantity", mock.Anything, int64(55), 3)
}

func TestService_AddToCart_UnknownProduct(t *testing.T) {
	carts := new(MockCartRepository)
	products := new(MockProductRepository)

	products.On("GetByID", mock.Anything, int64(42)).Return(nil, repository.ErrNotFound)

	service := NewService(carts, products, new(MockOrderRepository))

	_, err := service.AddToCart(context.Background(), 7, 42, 1)
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestService_SetQuantity_RejectsZero(t *testing.T) {
	service := NewService(new(MockCartRepository), new(MockProductRepository), new(MockOrderRepository))

	err := service.SetQuantity(context.Background(), 7, 55, 0)
	assert.ErrorIs(t, err, ErrInvalidQuantity)
}

func TestService_RemoveLine_MissingLineSucceeds(t *testing.T) {
	carts := new(MockCartRepository)
	carts.On("GetByID", mock.Anything, int64(55)).Return(nil, repository.ErrNotFound)

	service := NewService(carts, new(MockProductRepository), new(MockOrderRepository))

	err := service.RemoveLine(context.Background(), 7, 55)
	assert.NoError(t, err)
}

func TestService_RemoveLine_OtherUsersLine(t *testing.T) {
	carts := new(MockCartRepository)
	carts.On("GetByID", mock.Anything, int64(55)).Return(&domain.CartItem{ID: 55, UserID: 8}, nil)

	service := NewService(carts, new(MockProductRepository), new(MockOrderRepository))

	err := service.RemoveLine(context.Background(), 7, 55)
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestService_Checkout_EmptyCart(t *testing.T) {
	carts := new(MockCartRepository)
	carts.On("GetByUserID", mock.Anything, int64(7)).Return([]domain.CartItem{}, nil)

	service := NewService(carts, new(MockProductRepository), new(MockOrderRepository))

	_, err := service.Checkout(context.Background(), 7, CheckoutRequest{PaymentMethod: "card"})
	assert.ErrorIs(t, err, ErrEmptyCart)
}

func TestService_Checkout_SnapshotsCartAndClearsIt(t *testing.T) {
	carts := new(MockCartRepository)
	orders := new(MockOrderRepository)

	lines := []domain.CartItem{
		{ID: 1, UserID: 7, ProductID: 1, Name: "Premium Auto-Clean Chimney", Price: 15999, DiscountPrice: 13999, Quantity: 1},
		{ID: 2, UserID: 7, ProductID: 3, Name: "4 Burner Built-in Gas Hob", Price: 9999, DiscountPrice: 8499, Quantity: 1},
	}
	carts.On("GetByUserID", mock.Anything, int64(7)).Return(lines, nil)
	orders.On("Create", mock.Anything, mock.Anything).Return(nil)
	carts.On("DeleteByUserID", mock.Anything, int64(7)).Return(nil)

	service := NewService(carts, new(MockProductRepository), orders)

	order, err := service.Checkout(context.Background(), 7, CheckoutRequest{
		PaymentMethod:   "card",
		ShippingAddress: domain.ShippingAddress{Name: "Asha", City: "Mumbai"},
	})

	assert.NoError(t, err)
	assert.Equal(t, 25998.0, order.Subtotal)
	assert.Equal(t, 3500.0, order.Discount)
	assert.Equal(t, 0.0, order.DeliveryCharge)
	assert.Equal(t, 22498.0, order.Total)
	assert.Equal(t, domain.OrderProcessing, order.Status)
	assert.Equal(t, domain.PaymentPending, order.PaymentStatus)
	assert.Regexp(t, `^ORD-\d{8}-\d{4}$`, order.OrderNumber)

	// Order items carry the discounted unit price.
	assert.Len(t, order.Items, 2)
	assert.Equal(t, 13999.0, order.Items[0].Price)
	assert.Equal(t, 8499.0, order.Items[1].Price)

	carts.AssertCalled(t, "DeleteByUserID", mock.Anything, int64(7))
}

func TestService_UpdateOrderStatus_Transitions(t *testing.T) {
	orders := new(MockOrderRepository)
	orders.On("GetByID", mock.Anything, int64(201)).Return(&domain.Order{ID: 201, Status: domain.OrderProcessing}, nil)
	orders.On("UpdateStatus", mock.Anything, int64(201), domain.OrderShipped).Return(nil)

	service := NewService(new(MockCartRepository), new(MockProductRepository), orders)

	assert.NoError(t, service.UpdateOrderStatus(context.Background(), 201, domain.OrderShipped))
	assert.ErrorIs(t, service.UpdateOrderStatus(context.Background(), 201, domain.OrderDelivered), ErrInvalidTransition)
}

func TestService_UpdatePaymentStatus_OnlyFromPending(t *testing.T) {
	orders := new(MockOrderRepository)
	orders.On("GetByID", mock.Anything, int64(201)).Return(&domain.Order{ID: 201, PaymentStatus: domain.PaymentCompleted}, nil)

	service := NewService(new(MockCartRepository), new(MockProductRepository), orders)

	err := service.UpdatePaymentStatus(context.Background(), 201, domain.PaymentFailed)
	assert.ErrorIs(t, err, ErrInvalidTransition)
}
