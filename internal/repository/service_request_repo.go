package repository

import (
	"context"
	"errors"
	"time"

	"kitchencare/internal/domain"

	"gorm.io/gorm"
)

type ServiceRequestRepository struct {
	db *gorm.DB
}

func NewServiceRequestRepository(db *gorm.DB) *ServiceRequestRepository {
	return &ServiceRequestRepository{db: db}
}

type serviceRequestModel struct {
	ID                int64     `gorm:"column:id;primaryKey"`
	UserID            int64     `gorm:"column:user_id;index:idx_service_requests_user_created"`
	PlanID            int64     `gorm:"column:plan_id"`
	ServiceType       string    `gorm:"column:service_type"`
	Description       string    `gorm:"column:description;type:text"`
	ImageURLs         string    `gorm:"column:image_urls;type:text"`
	PreferredDate     time.Time `gorm:"column:preferred_date"`
	PreferredTimeSlot string    `gorm:"column:preferred_time_slot"`
	Status            string    `gorm:"column:status"`
	TechnicianID      *int64    `gorm:"column:technician_id"`
	TechnicianName    *string   `gorm:"column:technician_name"`
	CreatedAt         time.Time `gorm:"column:created_at;index:idx_service_requests_user_created"`
	UpdatedAt         time.Time `gorm:"column:updated_at"`
}

func (serviceRequestModel) TableName() string { return "service_requests" }

func toDomainServiceRequest(m serviceRequestModel) *domain.ServiceRequest {
	var techName string
	if m.TechnicianName != nil {
		techName = *m.TechnicianName
	}

	return &domain.ServiceRequest{
		ID:                m.ID,
		UserID:            m.UserID,
		PlanID:            m.PlanID,
		ServiceType:       domain.ServiceType(m.ServiceType),
		Description:       m.Description,
		ImageURLs:         unmarshalStrings(m.ImageURLs),
		PreferredDate:     m.PreferredDate,
		PreferredTimeSlot: m.PreferredTimeSlot,
		Status:            domain.ServiceRequestStatus(m.Status),
		TechnicianID:      m.TechnicianID,
		TechnicianName:    techName,
		CreatedAt:         m.CreatedAt,
		UpdatedAt:         m.UpdatedAt,
	}
}

func (r *ServiceRequestRepository) Create(ctx context.Context, sr *domain.ServiceRequest) error {
	var techName *string
	if sr.TechnicianName != "" {
		v := sr.TechnicianName
		techName = &v
	}

	m := serviceRequestModel{
		ID:                sr.ID,
		UserID:            sr.UserID,
		PlanID:            sr.PlanID,
		ServiceType:       string(sr.ServiceType),
		Description:       sr.Description,
		ImageURLs:         marshalStrings(sr.ImageURLs),
		PreferredDate:     sr.PreferredDate,
		PreferredTimeSlot: sr.PreferredTimeSlot,
		Status:            string(sr.Status),
		TechnicianID:      sr.TechnicianID,
		TechnicianName:    techName,
		CreatedAt:         sr.CreatedAt,
		UpdatedAt:         sr.UpdatedAt,
	}
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*sr = *toDomainServiceRequest(m)
	return nil
}

func (r *ServiceRequestRepository) GetByID(ctx context.Context, id int64) (*domain.ServiceRequest, error) {
	var m serviceRequestModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, tx.Error
	}
	return toDomainServiceRequest(m), nil
}

func (r *ServiceRequestRepository) GetByUserID(ctx context.Context, userID int64) ([]domain.ServiceRequest, error) {
	var models []serviceRequestModel
	tx := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&models)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.ServiceRequest, 0, len(models))
	for _, m := range models {
		out = append(out, *toDomainServiceRequest(m))
	}
	return out, nil
}

func (r *ServiceRequestRepository) UpdateStatus(ctx context.Context, id int64, status domain.ServiceRequestStatus) error {
	tx := r.db.WithContext(ctx).
		Model(&serviceRequestModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"status":     string(status),
			"updated_at": time.Now(),
		})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *ServiceRequestRepository) AssignTechnician(ctx context.Context, id, technicianID int64, technicianName string) error {
	tx := r.db.WithContext(ctx).
		Model(&serviceRequestModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"technician_id":   technicianID,
			"technician_name": technicianName,
			"status":          string(domain.RequestScheduled),
			"updated_at":      time.Now(),
		})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
