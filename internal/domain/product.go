package domain

import "time"

type ProductCategory string

const (
	CategoryChimney   ProductCategory = "chimney"
	CategoryHob       ProductCategory = "hob"
	CategoryMicrowave ProductCategory = "microwave"
	CategoryCooktop   ProductCategory = "cooktop"
)

// Product is a kitchen appliance listing. Created and updated by the seed
// tooling, read-only from the API's perspective.
type Product struct {
	ID             int64             `json:"id"`
	Name           string            `json:"name"`
	Category       ProductCategory   `json:"category"`
	Price          float64           `json:"price"`
	DiscountPrice  float64           `json:"discountPrice"`
	Rating         float64           `json:"rating"`
	ReviewCount    int               `json:"reviewCount"`
	Images         []string          `json:"images"`
	Description    string            `json:"description"`
	Features       []string          `json:"features"`
	InStock        bool              `json:"inStock"`
	Brand          string            `json:"brand"`
	Specifications map[string]string `json:"specifications,omitempty"`
	CreatedAt      time.Time         `json:"createdAt"`
	UpdatedAt      time.Time         `json:"updatedAt"`
}
