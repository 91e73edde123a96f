package notification

import (
	"context"
	"errors"
	"fmt"
	"time"

	"kitchencare/internal/domain"
	"kitchencare/internal/repository"

	"go.uber.org/zap"
)

const defaultListLimit = 50

type Service struct {
	notifications NotificationRepository
	hub           *Hub
	log           *zap.Logger
}

func NewService(notifications NotificationRepository, hub *Hub, log *zap.Logger) *Service {
	return &Service{notifications: notifications, hub: hub, log: log}
}

func (s *Service) List(ctx context.Context, userID int64, limit int) ([]domain.Notification, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	return s.notifications.GetByUserID(ctx, userID, limit)
}

func (s *Service) UnreadCount(ctx context.Context, userID int64) (int64, error) {
	return s.notifications.CountUnread(ctx, userID)
}

func (s *Service) MarkRead(ctx context.Context, userID, id int64) error {
	if err := s.notifications.MarkAsRead(ctx, id, userID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

func (s *Service) MarkAllRead(ctx context.Context, userID int64) error {
	return s.notifications.MarkAllAsRead(ctx, userID)
}

// RegisterDeviceToken stores the push token, replacing any existing token
// for the same user and device.
func (s *Service) RegisterDeviceToken(ctx context.Context, userID int64, req RegisterTokenRequest) error {
	return s.notifications.UpsertDeviceToken(ctx, &domain.DeviceToken{
		UserID:    userID,
		Token:     req.Token,
		Device:    req.Device,
		UpdatedAt: time.Now(),
	})
}

// notify persists the notification and pushes it to the user's websocket if
// connected. Persistence failures are returned; push failures are not.
func (s *Service) notify(ctx context.Context, n *domain.Notification) error {
	n.CreatedAt = time.Now()
	if err := s.notifications.Create(ctx, n); err != nil {
		return err
	}

	if s.hub != nil {
		delivered := s.hub.SendToUser(n.UserID, WSEvent{Type: "notification", Notification: n})
		if !delivered {
			s.log.Debug("notification not delivered over websocket",
				zap.Int64("user_id", n.UserID),
				zap.String("type", string(n.Type)))
		}
	}
	return nil
}

func (s *Service) NotifyPlanPurchased(ctx context.Context, userID int64, planName, contractID string) error {
	return s.notify(ctx, &domain.Notification{
		UserID:      userID,
		Title:       "Warranty Plan Activated",
		Body:        fmt.Sprintf("Your %s plan is now active. Agreement number: %s", planName, contractID),
		Type:        domain.NotifRenewal,
		ReferenceID: contractID,
	})
}

func (s *Service) NotifyServiceRequestCreated(ctx context.Context, userID int64, requestID int64, serviceType string) error {
	return s.notify(ctx, &domain.Notification{
		UserID:      userID,
		Title:       "Service Request Received",
		Body:        fmt.Sprintf("Your %s service request has been received. We will schedule a visit shortly.", serviceType),
		Type:        domain.NotifServiceRequest,
		ReferenceID: fmt.Sprintf("%d", requestID),
	})
}
