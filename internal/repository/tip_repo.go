package repository

import (
	"context"
	"time"

	"kitchencare/internal/domain"

	"gorm.io/gorm"
)

type TipRepository struct {
	db *gorm.DB
}

func NewTipRepository(db *gorm.DB) *TipRepository {
	return &TipRepository{db: db}
}

type maintenanceTipModel struct {
	ID          int64     `gorm:"column:id;primaryKey"`
	Title       string    `gorm:"column:title"`
	Description string    `gorm:"column:description;type:text"`
	ImageURL    string    `gorm:"column:image_url"`
	Category    string    `gorm:"column:category;index"`
	CreatedAt   time.Time `gorm:"column:created_at"`
}

func (maintenanceTipModel) TableName() string { return "maintenance_tips" }

func toDomainTip(m maintenanceTipModel) domain.MaintenanceTip {
	return domain.MaintenanceTip{
		ID:          m.ID,
		Title:       m.Title,
		Description: m.Description,
		ImageURL:    m.ImageURL,
		Category:    m.Category,
		CreatedAt:   m.CreatedAt,
	}
}

func (r *TipRepository) Create(ctx context.Context, t *domain.MaintenanceTip) error {
	m := maintenanceTipModel{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		ImageURL:    t.ImageURL,
		Category:    t.Category,
		CreatedAt:   t.CreatedAt,
	}
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*t = toDomainTip(m)
	return nil
}

func (r *TipRepository) GetAll(ctx context.Context) ([]domain.MaintenanceTip, error) {
	var models []maintenanceTipModel
	tx := r.db.WithContext(ctx).Order("created_at DESC").Find(&models)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainTips(models), nil
}

func (r *TipRepository) GetByCategory(ctx context.Context, category string) ([]domain.MaintenanceTip, error) {
	var models []maintenanceTipModel
	tx := r.db.WithContext(ctx).
		Where("category = ?", category).
		Order("created_at DESC").
		Find(&models)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainTips(models), nil
}

func toDomainTips(models []maintenanceTipModel) []domain.MaintenanceTip {
	out := make([]domain.MaintenanceTip, 0, len(models))
	for _, m := range models {
		out = append(out, toDomainTip(m))
	}
	return out
}
