package kitchen

import (
	"context"
	"errors"
	"fmt"
	"time"

	"kitchencare/internal/domain"
	"kitchencare/internal/repository"
	"kitchencare/internal/upload"
)

type Service struct {
	kitchens KitchenRepository
	store    upload.Store
}

func NewService(kitchens KitchenRepository, store upload.Store) *Service {
	return &Service{kitchens: kitchens, store: store}
}

// SaveDetails uploads the images one at a time before writing the record.
// A failed upload aborts the whole save; images stored so far are kept.
func (s *Service) SaveDetails(ctx context.Context, userID int64, req SaveDetailsRequest, images []ImageUpload) (*domain.KitchenDetails, error) {
	urls := make([]string, 0, len(images))
	for i, img := range images {
		path := fmt.Sprintf("kitchens/%d/%d_%s", userID, i, img.Name)
		url, err := s.store.Save(ctx, path, img.Content, img.MimeType)
		if err != nil {
			return nil, err
		}
		urls = append(urls, url)
	}

	now := time.Now()
	k := &domain.KitchenDetails{
		UserID:           userID,
		KitchenType:      req.KitchenType,
		InstallationDate: req.InstallationDate,
		Size:             req.Size,
		Location:         req.Location,
		ImageURLs:        urls,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	if err := s.kitchens.Create(ctx, k); err != nil {
		return nil, err
	}
	return k, nil
}

// GetDetails returns the user's kitchen profile. Multiple records per user
// can exist; the earliest one wins.
func (s *Service) GetDetails(ctx context.Context, userID int64) (*domain.KitchenDetails, error) {
	k, err := s.kitchens.GetFirstByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return k, nil
}
