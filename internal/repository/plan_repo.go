package repository

import (
	"context"
	"errors"
	"time"

	"kitchencare/internal/domain"

	"gorm.io/gorm"
)

type PlanRepository struct {
	db *gorm.DB
}

func NewPlanRepository(db *gorm.DB) *PlanRepository {
	return &PlanRepository{db: db}
}

type warrantyPlanModel struct {
	ID             int64     `gorm:"column:id;primaryKey"`
	Name           string    `gorm:"column:name"`
	Description    string    `gorm:"column:description;type:text"`
	DurationMonths int       `gorm:"column:duration_months"`
	Price          float64   `gorm:"column:price"`
	Features       string    `gorm:"column:features;type:text"`
	ServiceVisits  int       `gorm:"column:service_visits"`
	IsPopular      bool      `gorm:"column:is_popular"`
	CreatedAt      time.Time `gorm:"column:created_at"`
	UpdatedAt      time.Time `gorm:"column:updated_at"`
}

func (warrantyPlanModel) TableName() string { return "warranty_plans" }

type userPlanModel struct {
	ID                 int64     `gorm:"column:id;primaryKey"`
	UserID             int64     `gorm:"column:user_id;index:idx_user_plans_user_status"`
	PlanID             int64     `gorm:"column:plan_id"`
	PlanName           string    `gorm:"column:plan_name"`
	StartDate          time.Time `gorm:"column:start_date"`
	EndDate            time.Time `gorm:"column:end_date"`
	Status             string    `gorm:"column:status;index:idx_user_plans_user_status"`
	PurchaseAmount     float64   `gorm:"column:purchase_amount"`
	ServiceVisitsUsed  int       `gorm:"column:service_visits_used"`
	ServiceVisitsTotal int       `gorm:"column:service_visits_total"`
	ContractID         string    `gorm:"column:contract_id"`
	CreatedAt          time.Time `gorm:"column:created_at"`
	UpdatedAt          time.Time `gorm:"column:updated_at"`
}

func (userPlanModel) TableName() string { return "user_plans" }

func toDomainWarrantyPlan(m warrantyPlanModel) *domain.WarrantyPlan {
	return &domain.WarrantyPlan{
		ID:             m.ID,
		Name:           m.Name,
		Description:    m.Description,
		DurationMonths: m.DurationMonths,
		Price:          m.Price,
		Features:       unmarshalStrings(m.Features),
		ServiceVisits:  m.ServiceVisits,
		IsPopular:      m.IsPopular,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}

func toDomainUserPlan(m userPlanModel) *domain.UserPlan {
	return &domain.UserPlan{
		ID:                 m.ID,
		UserID:             m.UserID,
		PlanID:             m.PlanID,
		PlanName:           m.PlanName,
		StartDate:          m.StartDate,
		EndDate:            m.EndDate,
		Status:             domain.PlanStatus(m.Status),
		PurchaseAmount:     m.PurchaseAmount,
		ServiceVisitsUsed:  m.ServiceVisitsUsed,
		ServiceVisitsTotal: m.ServiceVisitsTotal,
		ContractID:         m.ContractID,
		CreatedAt:          m.CreatedAt,
		UpdatedAt:          m.UpdatedAt,
	}
}

func toUserPlanModel(p *domain.UserPlan) userPlanModel {
	return userPlanModel{
		ID:                 p.ID,
		UserID:             p.UserID,
		PlanID:             p.PlanID,
		PlanName:           p.PlanName,
		StartDate:          p.StartDate,
		EndDate:            p.EndDate,
		Status:             string(p.Status),
		PurchaseAmount:     p.PurchaseAmount,
		ServiceVisitsUsed:  p.ServiceVisitsUsed,
		ServiceVisitsTotal: p.ServiceVisitsTotal,
		ContractID:         p.ContractID,
		CreatedAt:          p.CreatedAt,
		UpdatedAt:          p.UpdatedAt,
	}
}

func (r *PlanRepository) CreateWarrantyPlan(ctx context.Context, p *domain.WarrantyPlan) error {
	m := warrantyPlanModel{
		ID:             p.ID,
		Name:           p.Name,
		Description:    p.Description,
		DurationMonths: p.DurationMonths,
		Price:          p.Price,
		Features:       marshalStrings(p.Features),
		ServiceVisits:  p.ServiceVisits,
		IsPopular:      p.IsPopular,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*p = *toDomainWarrantyPlan(m)
	return nil
}

func (r *PlanRepository) GetWarrantyPlans(ctx context.Context) ([]domain.WarrantyPlan, error) {
	var models []warrantyPlanModel
	tx := r.db.WithContext(ctx).Order("duration_months").Find(&models)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.WarrantyPlan, 0, len(models))
	for _, m := range models {
		out = append(out, *toDomainWarrantyPlan(m))
	}
	return out, nil
}

func (r *PlanRepository) GetWarrantyPlanByID(ctx context.Context, id int64) (*domain.WarrantyPlan, error) {
	var m warrantyPlanModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, tx.Error
	}
	return toDomainWarrantyPlan(m), nil
}

func (r *PlanRepository) CreateUserPlan(ctx context.Context, p *domain.UserPlan) error {
	m := toUserPlanModel(p)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*p = *toDomainUserPlan(m)
	return nil
}

func (r *PlanRepository) GetUserPlanByID(ctx context.Context, id int64) (*domain.UserPlan, error) {
	var m userPlanModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, tx.Error
	}
	return toDomainUserPlan(m), nil
}

// GetActiveUserPlans filters on the stored status field only. Expiry past the
// end date is derived by callers via EffectiveStatus.
func (r *PlanRepository) GetActiveUserPlans(ctx context.Context, userID int64) ([]domain.UserPlan, error) {
	var models []userPlanModel
	tx := r.db.WithContext(ctx).
		Where("user_id = ? AND status = ?", userID, string(domain.PlanActive)).
		Order("created_at DESC").
		Find(&models)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.UserPlan, 0, len(models))
	for _, m := range models {
		out = append(out, *toDomainUserPlan(m))
	}
	return out, nil
}

func (r *PlanRepository) UpdateUserPlanStatus(ctx context.Context, id int64, status domain.PlanStatus) error {
	tx := r.db.WithContext(ctx).
		Model(&userPlanModel{}).
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

// IncrementVisitsUsed adds one service visit as a single SQL update so that
// concurrent requests cannot lose an increment. No cap is applied here.
func (r *PlanRepository) IncrementVisitsUsed(ctx context.Context, id int64) error {
	tx := r.db.WithContext(ctx).
		Model(&userPlanModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"service_visits_used": gorm.Expr("service_visits_used + 1"),
			"updated_at":          time.Now(),
		})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// IncrementVisitsUsedCapped refuses the increment once the allotment is spent.
// Returns ErrNotFound when the plan does not exist or has no visits left.
func (r *PlanRepository) IncrementVisitsUsedCapped(ctx context.Context, id int64) error {
	tx := r.db.WithContext(ctx).
		Model(&userPlanModel{}).
		Where("id = ? AND service_visits_used < service_visits_total", id).
		Updates(map[string]any{
			"service_visits_used": gorm.Expr("service_visits_used + 1"),
			"updated_at":          time.Now(),
		})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
