package cart

import "kitchencare/internal/domain"

const (
	freeDeliveryThreshold = 20000
	deliveryCharge        = 499
)

// Totals are derived values, never stored for a cart; they are recomputed on
// every read so the summary cannot drift from the lines.
type Totals struct {
	Subtotal       float64 `json:"subtotal"`
	Discount       float64 `json:"discount"`
	DeliveryCharge float64 `json:"deliveryCharge"`
	Total          float64 `json:"total"`
}

// ComputeTotals prices a set of cart lines. Subtotal is list price times
// quantity; the discount nets out the difference to the discounted price.
// Delivery is free for an empty cart and for subtotals of 20000 and above,
// otherwise a flat 499.
func ComputeTotals(lines []domain.CartItem) Totals {
	var t Totals
	for _, line := range lines {
		qty := float64(line.Quantity)
		t.Subtotal += line.Price * qty
		t.Discount += (line.Price - line.DiscountPrice) * qty
	}

	if t.Subtotal > 0 && t.Subtotal < freeDeliveryThreshold {
		t.DeliveryCharge = deliveryCharge
	}

	t.Total = t.Subtotal - t.Discount + t.DeliveryCharge
	return t
}
