package repository

import (
	"context"
	"errors"
	"time"

	"kitchencare/internal/domain"

	"gorm.io/gorm"
)

type CartRepository struct {
	db *gorm.DB
}

func NewCartRepository(db *gorm.DB) *CartRepository {
	return &CartRepository{db: db}
}

type cartItemModel struct {
	ID            int64     `gorm:"column:id;primaryKey"`
	UserID        int64     `gorm:"column:user_id;uniqueIndex:idx_cart_user_product"`
	ProductID     int64     `gorm:"column:product_id;uniqueIndex:idx_cart_user_product"`
	Name          string    `gorm:"column:name"`
	Category      string    `gorm:"column:category"`
	Price         float64   `gorm:"column:price"`
	DiscountPrice float64   `gorm:"column:discount_price"`
	Quantity      int       `gorm:"column:quantity"`
	Image         string    `gorm:"column:image"`
	Brand         string    `gorm:"column:brand"`
	AddedAt       time.Time `gorm:"column:added_at"`
	UpdatedAt     time.Time `gorm:"column:updated_at"`
}

func (cartItemModel) TableName() string { return "cart_items" }

func toDomainCartItem(m cartItemModel) *domain.CartItem {
	return &domain.CartItem{
		ID:            m.ID,
		UserID:        m.UserID,
		ProductID:     m.ProductID,
		Name:          m.Name,
		Category:      domain.ProductCategory(m.Category),
		Price:         m.Price,
		DiscountPrice: m.DiscountPrice,
		Quantity:      m.Quantity,
		Image:         m.Image,
		Brand:         m.Brand,
		AddedAt:       m.AddedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

func toCartItemModel(i *domain.CartItem) cartItemModel {
	return cartItemModel{
		ID:            i.ID,
		UserID:        i.UserID,
		ProductID:     i.ProductID,
		Name:          i.Name,
		Category:      string(i.Category),
		Price:         i.Price,
		DiscountPrice: i.DiscountPrice,
		Quantity:      i.Quantity,
		Image:         i.Image,
		Brand:         i.Brand,
		AddedAt:       i.AddedAt,
		UpdatedAt:     i.UpdatedAt,
	}
}

func (r *CartRepository) Create(ctx context.Context, i *domain.CartItem) error {
	m := toCartItemModel(i)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*i = *toDomainCartItem(m)
	return nil
}

func (r *CartRepository) GetByID(ctx context.Context, id int64) (*domain.CartItem, error) {
	var m cartItemModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, tx.Error
	}
	return toDomainCartItem(m), nil
}

func (r *CartRepository) GetByUserAndProduct(ctx context.Context, userID, productID int64) (*domain.CartItem, error) {
	var m cartItemModel
	tx := r.db.WithContext(ctx).
		Where("user_id = ? AND product_id = ?", userID, productID).
		First(&m)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, tx.Error
	}
	return toDomainCartItem(m), nil
}

func (r *CartRepository) GetByUserID(ctx context.Context, userID int64) ([]domain.CartItem, error) {
	var models []cartItemModel
	tx := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("added_at").
		Find(&models)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.CartItem, 0, len(models))
	for _, m := range models {
		out = append(out, *toDomainCartItem(m))
	}
	return out, nil
}

func (r *CartRepository) UpdateQuantity(ctx context.Context, id int64, quantity int) error {
	tx := r.db.WithContext(ctx).
		Model(&cartItemModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"quantity":   quantity,
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

// Delete is idempotent: removing an absent line is not an error.
func (r *CartRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&cartItemModel{}, id).Error
}

func (r *CartRepository) DeleteByUserID(ctx context.Context, userID int64) error {
	return r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&cartItemModel{}).Error
}
