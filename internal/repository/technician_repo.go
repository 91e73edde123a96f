package repository

import (
	"context"
	"errors"
	"time"

	"kitchencare/internal/domain"

	"gorm.io/gorm"
)

type TechnicianRepository struct {
	db *gorm.DB
}

func NewTechnicianRepository(db *gorm.DB) *TechnicianRepository {
	return &TechnicianRepository{db: db}
}

type technicianModel struct {
	ID                int64     `gorm:"column:id;primaryKey"`
	Name              string    `gorm:"column:name"`
	Specialization    string    `gorm:"column:specialization"`
	PhoneNumber       string    `gorm:"column:phone_number"`
	Email             string    `gorm:"column:email"`
	IsAvailable       bool      `gorm:"column:is_available"`
	Rating            float64   `gorm:"column:rating"`
	CompletedServices int       `gorm:"column:completed_services"`
	CreatedAt         time.Time `gorm:"column:created_at"`
	UpdatedAt         time.Time `gorm:"column:updated_at"`
}

func (technicianModel) TableName() string { return "service_technicians" }

func toDomainTechnician(m technicianModel) *domain.Technician {
	return &domain.Technician{
		ID:                m.ID,
		Name:              m.Name,
		Specialization:    m.Specialization,
		PhoneNumber:       m.PhoneNumber,
		Email:             m.Email,
		IsAvailable:       m.IsAvailable,
		Rating:            m.Rating,
		CompletedServices: m.CompletedServices,
		CreatedAt:         m.CreatedAt,
		UpdatedAt:         m.UpdatedAt,
	}
}

func (r *TechnicianRepository) Create(ctx context.Context, t *domain.Technician) error {
	m := technicianModel{
		ID:                t.ID,
		Name:              t.Name,
		Specialization:    t.Specialization,
		PhoneNumber:       t.PhoneNumber,
		Email:             t.Email,
		IsAvailable:       t.IsAvailable,
		Rating:            t.Rating,
		CompletedServices: t.CompletedServices,
		CreatedAt:         t.CreatedAt,
		UpdatedAt:         t.UpdatedAt,
	}
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*t = *toDomainTechnician(m)
	return nil
}

func (r *TechnicianRepository) GetByID(ctx context.Context, id int64) (*domain.Technician, error) {
	var m technicianModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, tx.Error
	}
	return toDomainTechnician(m), nil
}

func (r *TechnicianRepository) GetAvailable(ctx context.Context) ([]domain.Technician, error) {
	var models []technicianModel
	tx := r.db.WithContext(ctx).
		Where("is_available = ?", true).
		Order("rating DESC").
		Find(&models)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.Technician, 0, len(models))
	for _, m := range models {
		out = append(out, *toDomainTechnician(m))
	}
	return out, nil
}

func (r *TechnicianRepository) IncrementCompletedServices(ctx context.Context, id int64) error {
	tx := r.db.WithContext(ctx).
		Model(&technicianModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"completed_services": gorm.Expr("completed_services + 1"),
			"updated_at":         time.Now(),
		})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
