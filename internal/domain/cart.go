package domain

import "time"

// CartItem snapshots the product's display fields at add time. Later price
// changes to the product do not retroactively affect the line.
type CartItem struct {
	ID            int64           `json:"id"`
	UserID        int64           `json:"userId"`
	ProductID     int64           `json:"productId"`
	Name          string          `json:"name"`
	Category      ProductCategory `json:"category"`
	Price         float64         `json:"price"`
	DiscountPrice float64         `json:"discountPrice"`
	Quantity      int             `json:"quantity"`
	Image         string          `json:"image"`
	Brand         string          `json:"brand"`
	AddedAt       time.Time       `json:"addedAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}
