package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"kitchencare/internal/domain"

	"gorm.io/gorm"
)

type OrderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

type orderModel struct {
	ID              int64     `gorm:"column:id;primaryKey"`
	UserID          int64     `gorm:"column:user_id;index"`
	OrderNumber     string    `gorm:"column:order_number;uniqueIndex"`
	Items           string    `gorm:"column:items;type:text"`
	Subtotal        float64   `gorm:"column:subtotal"`
	Discount        float64   `gorm:"column:discount"`
	DeliveryCharge  float64   `gorm:"column:delivery_charge"`
	Total           float64   `gorm:"column:total"`
	PaymentMethod   string    `gorm:"column:payment_method"`
	PaymentStatus   string    `gorm:"column:payment_status"`
	ShippingAddress string    `gorm:"column:shipping_address;type:text"`
	Status          string    `gorm:"column:status"`
	CreatedAt       time.Time `gorm:"column:created_at"`
	UpdatedAt       time.Time `gorm:"column:updated_at"`
}

func (orderModel) TableName() string { return "orders" }

func toDomainOrder(m orderModel) *domain.Order {
	var items []domain.OrderItem
	_ = json.Unmarshal([]byte(m.Items), &items)

	var addr domain.ShippingAddress
	_ = json.Unmarshal([]byte(m.ShippingAddress), &addr)

	return &domain.Order{
		ID:              m.ID,
		UserID:          m.UserID,
		OrderNumber:     m.OrderNumber,
		Items:           items,
		Subtotal:        m.Subtotal,
		Discount:        m.Discount,
		DeliveryCharge:  m.DeliveryCharge,
		Total:           m.Total,
		PaymentMethod:   m.PaymentMethod,
		PaymentStatus:   domain.PaymentStatus(m.PaymentStatus),
		ShippingAddress: addr,
		Status:          domain.OrderStatus(m.Status),
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}

func toOrderModel(o *domain.Order) orderModel {
	return orderModel{
		ID:              o.ID,
		UserID:          o.UserID,
		OrderNumber:     o.OrderNumber,
		Items:           marshalJSON(o.Items),
		Subtotal:        o.Subtotal,
		Discount:        o.Discount,
		DeliveryCharge:  o.DeliveryCharge,
		Total:           o.Total,
		PaymentMethod:   o.PaymentMethod,
		PaymentStatus:   string(o.PaymentStatus),
		ShippingAddress: marshalJSON(o.ShippingAddress),
		Status:          string(o.Status),
		CreatedAt:       o.CreatedAt,
		UpdatedAt:       o.UpdatedAt,
	}
}

func (r *OrderRepository) Create(ctx context.Context, o *domain.Order) error {
	m := toOrderModel(o)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*o = *toDomainOrder(m)
	return nil
}

func (r *OrderRepository) GetByUserID(ctx context.Context, userID int64) ([]domain.Order, error) {
	var models []orderModel
	tx := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&models)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.Order, 0, len(models))
	for _, m := range models {
		out = append(out, *toDomainOrder(m))
	}
	return out, nil
}

func (r *OrderRepository) GetByID(ctx context.Context, id int64) (*domain.Order, error) {
	var m orderModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, tx.Error
	}
	return toDomainOrder(m), nil
}

func (r *OrderRepository) UpdateStatus(ctx context.Context, id int64, status domain.OrderStatus) error {
	tx := r.db.WithContext(ctx).
		Model(&orderModel{}).
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

func (r *OrderRepository) UpdatePaymentStatus(ctx context.Context, id int64, status domain.PaymentStatus) error {
	tx := r.db.WithContext(ctx).
		Model(&orderModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"payment_status": string(status),
			"updated_at":     time.Now(),
		})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
