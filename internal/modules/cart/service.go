package cart

import (
	"context"
	"errors"
	"time"

	"kitchencare/internal/domain"
	"kitchencare/internal/pkg/ident"
	"kitchencare/internal/repository"

	"github.com/jackc/pgx/v5/pgconn"
)

type Service struct {
	carts    CartRepository
	products ProductRepository
	orders   OrderRepository
}

func NewService(carts CartRepository, products ProductRepository, orders OrderRepository) *Service {
	return &Service{carts: carts, products: products, orders: orders}
}

// AddToCart merges repeated adds of the same product into one line by summing
// quantities. The product's display fields are snapshotted at first add; later
// price changes do not affect the line.
func (s *Service) AddToCart(ctx context.Context, userID, productID int64, quantity int) (*domain.CartItem, error) {
	if quantity < 1 {
		quantity = 1
	}

	p, err := s.products.GetByID(ctx, productID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}

	existing, err := s.carts.GetByUserAndProduct(ctx, userID, productID)
	if err == nil {
		return s.bumpQuantity(ctx, existing, quantity)
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	now := time.Now()
	image := ""
	if len(p.Images) > 0 {
		image = p.Images[0]
	}
	line := &domain.CartItem{
		UserID:        userID,
		ProductID:     productID,
		Name:          p.Name,
		Category:      p.Category,
		Price:         p.Price,
		DiscountPrice: p.DiscountPrice,
		Quantity:      quantity,
		Image:         image,
		Brand:         p.Brand,
		AddedAt:       now,
		UpdatedAt:     now,
	}

	if err := s.carts.Create(ctx, line); err != nil {
		// A concurrent add of the same product hits the (user_id, product_id)
		// unique index; fold this add into the line that won.
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			existing, err := s.carts.GetByUserAndProduct(ctx, userID, productID)
			if err != nil {
				return nil, err
			}
			return s.bumpQuantity(ctx, existing, quantity)
		}
		return nil, err
	}
	return line, nil
}

func (s *Service) bumpQuantity(ctx context.Context, line *domain.CartItem, delta int) (*domain.CartItem, error) {
	newQty := line.Quantity + delta
	if err := s.carts.UpdateQuantity(ctx, line.ID, newQty); err != nil {
		return nil, err
	}
	line.Quantity = newQty
	line.UpdatedAt = time.Now()
	return line, nil
}

// SetQuantity rejects quantities below 1; dropping to zero is not treated as
// a removal.
func (s *Service) SetQuantity(ctx context.Context, userID, lineID int64, quantity int) error {
	if quantity < 1 {
		return ErrInvalidQuantity
	}

	line, err := s.carts.GetByID(ctx, lineID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrLineNotFound
		}
		return err
	}
	if line.UserID != userID {
		return ErrForbidden
	}

	return s.carts.UpdateQuantity(ctx, lineID, quantity)
}

// RemoveLine is idempotent: removing an already-absent line succeeds.
func (s *Service) RemoveLine(ctx context.Context, userID, lineID int64) error {
	line, err := s.carts.GetByID(ctx, lineID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil
		}
		return err
	}
	if line.UserID != userID {
		return ErrForbidden
	}

	return s.carts.Delete(ctx, lineID)
}

func (s *Service) GetCart(ctx context.Context, userID int64) (*CartView, error) {
	lines, err := s.carts.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &CartView{Items: lines, Totals: ComputeTotals(lines)}, nil
}

// Checkout snapshots the cart into an order and then clears the cart. The two
// writes are independent: if the clear fails the order already exists and the
// cart still holds its lines. Callers recover by re-reading both.
func (s *Service) Checkout(ctx context.Context, userID int64, req CheckoutRequest) (*domain.Order, error) {
	lines, err := s.carts.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, ErrEmptyCart
	}

	totals := ComputeTotals(lines)
	now := time.Now()

	items := make([]domain.OrderItem, 0, len(lines))
	for _, line := range lines {
		items = append(items, domain.OrderItem{
			ProductID: line.ProductID,
			Name:      line.Name,
			Price:     line.DiscountPrice,
			Quantity:  line.Quantity,
		})
	}

	order := &domain.Order{
		UserID:          userID,
		OrderNumber:     ident.OrderNumber(now),
		Items:           items,
		Subtotal:        totals.Subtotal,
		Discount:        totals.Discount,
		DeliveryCharge:  totals.DeliveryCharge,
		Total:           totals.Total,
		PaymentMethod:   req.PaymentMethod,
		PaymentStatus:   domain.PaymentPending,
		ShippingAddress: req.ShippingAddress,
		Status:          domain.OrderProcessing,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := s.orders.Create(ctx, order); err != nil {
		// Order numbers carry only 4 random digits per day; regenerate on a
		// collision with the unique index.
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			order.OrderNumber = ident.OrderNumber(now)
			if err := s.orders.Create(ctx, order); err != nil {
				return nil, err
			}
		} else {
			return nil, err
		}
	}

	if err := s.carts.DeleteByUserID(ctx, userID); err != nil {
		return nil, err
	}

	return order, nil
}

func (s *Service) ListOrders(ctx context.Context, userID int64) ([]domain.Order, error) {
	return s.orders.GetByUserID(ctx, userID)
}

func (s *Service) GetOrder(ctx context.Context, userID, orderID int64) (*domain.Order, error) {
	o, err := s.orders.GetByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	if o.UserID != userID {
		return nil, ErrForbidden
	}
	return o, nil
}

var orderTransitions = map[domain.OrderStatus][]domain.OrderStatus{
	domain.OrderProcessing: {domain.OrderShipped, domain.OrderCancelled},
	domain.OrderShipped:    {domain.OrderDelivered, domain.OrderCancelled},
	domain.OrderDelivered:  {},
	domain.OrderCancelled:  {},
}

func (s *Service) UpdateOrderStatus(ctx context.Context, orderID int64, status domain.OrderStatus) error {
	o, err := s.orders.GetByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrOrderNotFound
		}
		return err
	}

	allowed := false
	for _, next := range orderTransitions[o.Status] {
		if next == status {
			allowed = true
			break
		}
	}
	if !allowed {
		return ErrInvalidTransition
	}

	return s.orders.UpdateStatus(ctx, orderID, status)
}

func (s *Service) UpdatePaymentStatus(ctx context.Context, orderID int64, status domain.PaymentStatus) error {
	if status != domain.PaymentCompleted && status != domain.PaymentFailed {
		return ErrInvalidTransition
	}

	o, err := s.orders.GetByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrOrderNotFound
		}
		return err
	}
	if o.PaymentStatus != domain.PaymentPending {
		return ErrInvalidTransition
	}

	return s.orders.UpdatePaymentStatus(ctx, orderID, status)
}
