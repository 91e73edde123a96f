package cart

import "errors"

var (
	ErrProductNotFound  = errors.New("product not found")
	ErrLineNotFound     = errors.New("cart line not found")
	ErrOrderNotFound    = errors.New("order not found")
	ErrInvalidQuantity  = errors.New("quantity must be at least 1")
	ErrEmptyCart        = errors.New("cart is empty")
	ErrForbidden        = errors.New("resource belongs to another user")
	ErrInvalidTransition = errors.New("invalid status transition")
)
