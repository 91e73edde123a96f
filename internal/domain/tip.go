package domain

import "time"

type MaintenanceTip struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	ImageURL    string    `json:"imageUrl"`
	Category    string    `json:"category"`
	CreatedAt   time.Time `json:"createdAt"`
}
