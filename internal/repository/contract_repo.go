package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"kitchencare/internal/domain"

	"gorm.io/gorm"
)

type ContractRepository struct {
	db *gorm.DB
}

func NewContractRepository(db *gorm.DB) *ContractRepository {
	return &ContractRepository{db: db}
}

type contractModel struct {
	ID                   int64      `gorm:"column:id;primaryKey"`
	UserID               int64      `gorm:"column:user_id;index"`
	PlanID               int64      `gorm:"column:plan_id"`
	AgreementNumber      string     `gorm:"column:agreement_number;uniqueIndex"`
	IssueDate            time.Time  `gorm:"column:issue_date"`
	PlanType             string     `gorm:"column:plan_type"`
	CoverageStart        time.Time  `gorm:"column:coverage_start"`
	CoverageEnd          time.Time  `gorm:"column:coverage_end"`
	AmountPaid           float64    `gorm:"column:amount_paid"`
	ClientInfo           string     `gorm:"column:client_info;type:text"`
	KitchenDetails       string     `gorm:"column:kitchen_details;type:text"`
	CoverageDetails      string     `gorm:"column:coverage_details;type:text"`
	TermsAccepted        bool       `gorm:"column:terms_accepted"`
	ClientSignatureDate  *time.Time `gorm:"column:client_signature_date"`
	CompanySignatureDate *time.Time `gorm:"column:company_signature_date"`
	CreatedAt            time.Time  `gorm:"column:created_at"`
	UpdatedAt            time.Time  `gorm:"column:updated_at"`
}

func (contractModel) TableName() string { return "digital_contracts" }

func toDomainContract(m contractModel) *domain.DigitalContract {
	var client domain.ClientInfo
	_ = json.Unmarshal([]byte(m.ClientInfo), &client)

	var kitchen domain.KitchenInfo
	_ = json.Unmarshal([]byte(m.KitchenDetails), &kitchen)

	return &domain.DigitalContract{
		ID:              m.ID,
		UserID:          m.UserID,
		PlanID:          m.PlanID,
		AgreementNumber: m.AgreementNumber,
		IssueDate:       m.IssueDate,
		PlanType:        m.PlanType,
		CoveragePeriod: domain.CoveragePeriod{
			Start: m.CoverageStart,
			End:   m.CoverageEnd,
		},
		AmountPaid:           m.AmountPaid,
		ClientInfo:           client,
		KitchenDetails:       kitchen,
		CoverageDetails:      unmarshalStrings(m.CoverageDetails),
		TermsAccepted:        m.TermsAccepted,
		ClientSignatureDate:  m.ClientSignatureDate,
		CompanySignatureDate: m.CompanySignatureDate,
		CreatedAt:            m.CreatedAt,
		UpdatedAt:            m.UpdatedAt,
	}
}

func (r *ContractRepository) Create(ctx context.Context, ct *domain.DigitalContract) error {
	m := contractModel{
		ID:                   ct.ID,
		UserID:               ct.UserID,
		PlanID:               ct.PlanID,
		AgreementNumber:      ct.AgreementNumber,
		IssueDate:            ct.IssueDate,
		PlanType:             ct.PlanType,
		CoverageStart:        ct.CoveragePeriod.Start,
		CoverageEnd:          ct.CoveragePeriod.End,
		AmountPaid:           ct.AmountPaid,
		ClientInfo:           marshalJSON(ct.ClientInfo),
		KitchenDetails:       marshalJSON(ct.KitchenDetails),
		CoverageDetails:      marshalStrings(ct.CoverageDetails),
		TermsAccepted:        ct.TermsAccepted,
		ClientSignatureDate:  ct.ClientSignatureDate,
		CompanySignatureDate: ct.CompanySignatureDate,
		CreatedAt:            ct.CreatedAt,
		UpdatedAt:            ct.UpdatedAt,
	}
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*ct = *toDomainContract(m)
	return nil
}

func (r *ContractRepository) GetByID(ctx context.Context, id int64) (*domain.DigitalContract, error) {
	var m contractModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, tx.Error
	}
	return toDomainContract(m), nil
}

func (r *ContractRepository) GetByUserID(ctx context.Context, userID int64) ([]domain.DigitalContract, error) {
	var models []contractModel
	tx := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&models)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.DigitalContract, 0, len(models))
	for _, m := range models {
		out = append(out, *toDomainContract(m))
	}
	return out, nil
}

// Accept marks the terms accepted and stamps both signature dates in a single
// update, modeling simultaneous bilateral signing.
func (r *ContractRepository) Accept(ctx context.Context, id int64, signedAt time.Time) error {
	tx := r.db.WithContext(ctx).
		Model(&contractModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"terms_accepted":         true,
			"client_signature_date":  signedAt,
			"company_signature_date": signedAt,
			"updated_at":             time.Now(),
		})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
