package catalog

import (
	"context"
	"errors"
	"strings"

	"kitchencare/internal/domain"
	"kitchencare/internal/repository"
)

var validCategories = map[domain.ProductCategory]bool{
	domain.CategoryChimney:   true,
	domain.CategoryHob:       true,
	domain.CategoryMicrowave: true,
	domain.CategoryCooktop:   true,
}

type Service struct {
	products ProductRepository
}

func NewService(products ProductRepository) *Service {
	return &Service{products: products}
}

func (s *Service) ListProducts(ctx context.Context) ([]domain.Product, error) {
	return s.products.GetAll(ctx)
}

func (s *Service) ListByCategory(ctx context.Context, category domain.ProductCategory) ([]domain.Product, error) {
	if !validCategories[category] {
		return nil, ErrInvalidCategory
	}
	return s.products.GetByCategory(ctx, category)
}

func (s *Service) GetByID(ctx context.Context, id int64) (*domain.Product, error) {
	p, err := s.products.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	return p, nil
}

// Search combines an optional category filter with a case-insensitive
// substring match over name, description and brand. An empty query matches
// everything; both filters are ANDed. Relative store order is preserved.
func (s *Service) Search(ctx context.Context, category domain.ProductCategory, query string) ([]domain.Product, error) {
	var (
		products []domain.Product
		err      error
	)
	if category != "" {
		products, err = s.ListByCategory(ctx, category)
	} else {
		products, err = s.products.GetAll(ctx)
	}
	if err != nil {
		return nil, err
	}

	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return products, nil
	}

	out := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if matchesQuery(p, query) {
			out = append(out, p)
		}
	}
	return out, nil
}

func matchesQuery(p domain.Product, query string) bool {
	return strings.Contains(strings.ToLower(p.Name), query) ||
		strings.Contains(strings.ToLower(p.Description), query) ||
		strings.Contains(strings.ToLower(p.Brand), query)
}
