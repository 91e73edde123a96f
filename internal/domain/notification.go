package domain

import "time"

type NotificationType string

const (
	NotifServiceRequest NotificationType = "service_request"
	NotifRenewal        NotificationType = "renewal"
	NotifMaintenance    NotificationType = "maintenance"
)

type Notification struct {
	ID          int64            `json:"id"`
	UserID      int64            `json:"userId"`
	Title       string           `json:"title"`
	Body        string           `json:"body"`
	Type        NotificationType `json:"type"`
	ReferenceID string           `json:"referenceId,omitempty"`
	IsRead      bool             `json:"isRead"`
	CreatedAt   time.Time        `json:"createdAt"`
}

// DeviceToken stores a push token per user device. Delivery to the push
// gateway itself happens outside this service.
type DeviceToken struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"userId"`
	Token     string    `json:"token"`
	Device    string    `json:"device"`
	UpdatedAt time.Time `json:"updatedAt"`
}
