package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"kitchencare/internal/domain"

	"gorm.io/gorm"
)

type ProductRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

type productModel struct {
	ID             int64     `gorm:"column:id;primaryKey"`
	Name           string    `gorm:"column:name"`
	Category       string    `gorm:"column:category;index"`
	Price          float64   `gorm:"column:price"`
	DiscountPrice  float64   `gorm:"column:discount_price"`
	Rating         float64   `gorm:"column:rating"`
	ReviewCount    int       `gorm:"column:review_count"`
	Images         string    `gorm:"column:images;type:text"`
	Description    string    `gorm:"column:description;type:text"`
	Features       string    `gorm:"column:features;type:text"`
	InStock        bool      `gorm:"column:in_stock"`
	Brand          string    `gorm:"column:brand"`
	Specifications string    `gorm:"column:specifications;type:text"`
	CreatedAt      time.Time `gorm:"column:created_at"`
	UpdatedAt      time.Time `gorm:"column:updated_at"`
}

func (productModel) TableName() string { return "products" }

func toDomainProduct(m productModel) *domain.Product {
	specs := map[string]string{}
	if m.Specifications != "" {
		_ = json.Unmarshal([]byte(m.Specifications), &specs)
	}

	return &domain.Product{
		ID:             m.ID,
		Name:           m.Name,
		Category:       domain.ProductCategory(m.Category),
		Price:          m.Price,
		DiscountPrice:  m.DiscountPrice,
		Rating:         m.Rating,
		ReviewCount:    m.ReviewCount,
		Images:         unmarshalStrings(m.Images),
		Description:    m.Description,
		Features:       unmarshalStrings(m.Features),
		InStock:        m.InStock,
		Brand:          m.Brand,
		Specifications: specs,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}

func toProductModel(p *domain.Product) productModel {
	return productModel{
		ID:             p.ID,
		Name:           p.Name,
		Category:       string(p.Category),
		Price:          p.Price,
		DiscountPrice:  p.DiscountPrice,
		Rating:         p.Rating,
		ReviewCount:    p.ReviewCount,
		Images:         marshalStrings(p.Images),
		Description:    p.Description,
		Features:       marshalStrings(p.Features),
		InStock:        p.InStock,
		Brand:          p.Brand,
		Specifications: marshalJSON(p.Specifications),
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}

func (r *ProductRepository) Create(ctx context.Context, p *domain.Product) error {
	m := toProductModel(p)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*p = *toDomainProduct(m)
	return nil
}

// GetAll returns products in insertion order.
func (r *ProductRepository) GetAll(ctx context.Context) ([]domain.Product, error) {
	var models []productModel
	tx := r.db.WithContext(ctx).Order("id").Find(&models)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainProducts(models), nil
}

func (r *ProductRepository) GetByCategory(ctx context.Context, category domain.ProductCategory) ([]domain.Product, error) {
	var models []productModel
	tx := r.db.WithContext(ctx).
		Where("category = ?", string(category)).
		Order("id").
		Find(&models)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainProducts(models), nil
}

func (r *ProductRepository) GetByID(ctx context.Context, id int64) (*domain.Product, error) {
	var m productModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, tx.Error
	}
	return toDomainProduct(m), nil
}

func toDomainProducts(models []productModel) []domain.Product {
	out := make([]domain.Product, 0, len(models))
	for _, m := range models {
		out = append(out, *toDomainProduct(m))
	}
	return out
}
