package notification

import "kitchencare/internal/domain"

type RegisterTokenRequest struct {
	Token  string `json:"token" binding:"required"`
	Device string `json:"device" binding:"required"`
}

// WSEvent is the frame pushed to a connected client when a notification is
// created for them.
type WSEvent struct {
	Type         string               `json:"type"`
	Notification *domain.Notification `json:"notification"`
}
