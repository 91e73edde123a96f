package repository

import (
	"context"
	"time"

	"kitchencare/internal/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type NotificationRepository struct {
	db *gorm.DB
}

func NewNotificationRepository(db *gorm.DB) *NotificationRepository {
	return &NotificationRepository{db: db}
}

type notificationModel struct {
	ID          int64     `gorm:"column:id;primaryKey"`
	UserID      int64     `gorm:"column:user_id;index:idx_notifications_user_read"`
	Title       string    `gorm:"column:title"`
	Body        string    `gorm:"column:body;type:text"`
	Type        string    `gorm:"column:type"`
	ReferenceID *string   `gorm:"column:reference_id"`
	IsRead      bool      `gorm:"column:is_read;index:idx_notifications_user_read"`
	CreatedAt   time.Time `gorm:"column:created_at"`
}

func (notificationModel) TableName() string { return "notifications" }

type deviceTokenModel struct {
	ID        int64     `gorm:"column:id;primaryKey"`
	UserID    int64     `gorm:"column:user_id;uniqueIndex:idx_user_tokens_user_token"`
	Token     string    `gorm:"column:token;uniqueIndex:idx_user_tokens_user_token"`
	Device    string    `gorm:"column:device"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (deviceTokenModel) TableName() string { return "user_tokens" }

func toDomainNotification(m notificationModel) *domain.Notification {
	var ref string
	if m.ReferenceID != nil {
		ref = *m.ReferenceID
	}

	return &domain.Notification{
		ID:          m.ID,
		UserID:      m.UserID,
		Title:       m.Title,
		Body:        m.Body,
		Type:        domain.NotificationType(m.Type),
		ReferenceID: ref,
		IsRead:      m.IsRead,
		CreatedAt:   m.CreatedAt,
	}
}

func (r *NotificationRepository) Create(ctx context.Context, n *domain.Notification) error {
	var ref *string
	if n.ReferenceID != "" {
		v := n.ReferenceID
		ref = &v
	}

	m := notificationModel{
		ID:          n.ID,
		UserID:      n.UserID,
		Title:       n.Title,
		Body:        n.Body,
		Type:        string(n.Type),
		ReferenceID: ref,
		IsRead:      n.IsRead,
		CreatedAt:   n.CreatedAt,
	}
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*n = *toDomainNotification(m)
	return nil
}

func (r *NotificationRepository) GetByUserID(ctx context.Context, userID int64, limit int) ([]domain.Notification, error) {
	var models []notificationModel
	tx := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&models)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.Notification, 0, len(models))
	for _, m := range models {
		out = append(out, *toDomainNotification(m))
	}
	return out, nil
}

func (r *NotificationRepository) CountUnread(ctx context.Context, userID int64) (int64, error) {
	var count int64
	tx := r.db.WithContext(ctx).
		Model(&notificationModel{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Count(&count)
	return count, tx.Error
}

func (r *NotificationRepository) MarkAsRead(ctx context.Context, id, userID int64) error {
	tx := r.db.WithContext(ctx).
		Model(&notificationModel{}).
		Where("id = ? AND user_id = ?", id, userID).
		Update("is_read", true)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *NotificationRepository) MarkAllAsRead(ctx context.Context, userID int64) error {
	return r.db.WithContext(ctx).
		Model(&notificationModel{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Update("is_read", true).Error
}

// UpsertDeviceToken refreshes the device tag and timestamp when the same
// token is registered again.
func (r *NotificationRepository) UpsertDeviceToken(ctx context.Context, t *domain.DeviceToken) error {
	m := deviceTokenModel{
		UserID:    t.UserID,
		Token:     t.Token,
		Device:    t.Device,
		UpdatedAt: time.Now(),
	}
	tx := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "token"}},
		DoUpdates: clause.AssignmentColumns([]string{"device", "updated_at"}),
	}).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	t.ID = m.ID
	t.UpdatedAt = m.UpdatedAt
	return nil
}

func (r *NotificationRepository) GetDeviceTokens(ctx context.Context, userID int64) ([]domain.DeviceToken, error) {
	var models []deviceTokenModel
	tx := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Find(&models)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.DeviceToken, 0, len(models))
	for _, m := range models {
		out = append(out, domain.DeviceToken{
			ID:        m.ID,
			UserID:    m.UserID,
			Token:     m.Token,
			Device:    m.Device,
			UpdatedAt: m.UpdatedAt,
		})
	}
	return out, nil
}
