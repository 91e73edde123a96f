package domain

import "time"

// KitchenDetails describes a user's kitchen. The source keeps at most one
// profile per user by convention only; no uniqueness is enforced and readers
// take the first match.
type KitchenDetails struct {
	ID               int64     `json:"id"`
	UserID           int64     `json:"userId"`
	KitchenType      string    `json:"kitchenType"`
	InstallationDate time.Time `json:"installationDate"`
	Size             string    `json:"size"`
	Location         string    `json:"location"`
	ImageURLs        []string  `json:"imageUrls"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}
