package notification

import (
	"context"

	"kitchencare/internal/domain"
)

type NotificationRepository interface {
	Create(ctx context.Context, n *domain.Notification) error
	GetByUserID(ctx context.Context, userID int64, limit int) ([]domain.Notification, error)
	CountUnread(ctx context.Context, userID int64) (int64, error)
	MarkAsRead(ctx context.Context, id, userID int64) error
	MarkAllAsRead(ctx context.Context, userID int64) error
	UpsertDeviceToken(ctx context.Context, t *domain.DeviceToken) error
	GetDeviceTokens(ctx context.Context, userID int64) ([]domain.DeviceToken, error)
}
