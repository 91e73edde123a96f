package cart

import "kitchencare/internal/domain"

type AddToCartRequest struct {
	ProductID int64 `json:"productId" binding:"required"`
	Quantity  int   `json:"quantity"`
}

type SetQuantityRequest struct {
	Quantity int `json:"quantity" binding:"required"`
}

type CheckoutRequest struct {
	PaymentMethod   string                 `json:"paymentMethod" binding:"required"`
	ShippingAddress domain.ShippingAddress `json:"shippingAddress" binding:"required"`
}

type UpdateOrderStatusRequest struct {
	Status domain.OrderStatus `json:"status" binding:"required"`
}

type UpdatePaymentStatusRequest struct {
	PaymentStatus domain.PaymentStatus `json:"paymentStatus" binding:"required"`
}

type CartView struct {
	Items  []domain.CartItem `json:"items"`
	Totals Totals            `json:"totals"`
}
