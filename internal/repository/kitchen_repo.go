package repository

import (
	"context"
	"errors"
	"time"

	"kitchencare/internal/domain"

	"gorm.io/gorm"
)

type KitchenRepository struct {
	db *gorm.DB
}

func NewKitchenRepository(db *gorm.DB) *KitchenRepository {
	return &KitchenRepository{db: db}
}

type kitchenDetailsModel struct {
	ID               int64     `gorm:"column:id;primaryKey"`
	UserID           int64     `gorm:"column:user_id;index"`
	KitchenType      string    `gorm:"column:kitchen_type"`
	InstallationDate time.Time `gorm:"column:installation_date"`
	Size             string    `gorm:"column:size"`
	Location         string    `gorm:"column:location;type:text"`
	ImageURLs        string    `gorm:"column:image_urls;type:text"`
	CreatedAt        time.Time `gorm:"column:created_at"`
	UpdatedAt        time.Time `gorm:"column:updated_at"`
}

func (kitchenDetailsModel) TableName() string { return "kitchen_details" }

func toDomainKitchen(m kitchenDetailsModel) *domain.KitchenDetails {
	return &domain.KitchenDetails{
		ID:               m.ID,
		UserID:           m.UserID,
		KitchenType:      m.KitchenType,
		InstallationDate: m.InstallationDate,
		Size:             m.Size,
		Location:         m.Location,
		ImageURLs:        unmarshalStrings(m.ImageURLs),
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
	}
}

func (r *KitchenRepository) Create(ctx context.Context, k *domain.KitchenDetails) error {
	m := kitchenDetailsModel{
		ID:               k.ID,
		UserID:           k.UserID,
		KitchenType:      k.KitchenType,
		InstallationDate: k.InstallationDate,
		Size:             k.Size,
		Location:         k.Location,
		ImageURLs:        marshalStrings(k.ImageURLs),
		CreatedAt:        k.CreatedAt,
		UpdatedAt:        k.UpdatedAt,
	}
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*k = *toDomainKitchen(m)
	return nil
}

// GetFirstByUserID mirrors the source behavior of taking the first matching
// profile; no uniqueness per user is enforced.
func (r *KitchenRepository) GetFirstByUserID(ctx context.Context, userID int64) (*domain.KitchenDetails, error) {
	var m kitchenDetailsModel
	tx := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id").
		First(&m)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, tx.Error
	}
	return toDomainKitchen(m), nil
}
