package kitchen

import (
	"context"
	"fmt"
	"testing"
	"time"

	"kitchencare/internal/domain"
	"kitchencare/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockKitchenRepository struct {
	mock.Mock
}

func (m *MockKitchenRepository) Create(ctx context.Context, k *domain.KitchenDetails) error {
	args := m.Called(ctx, k)
	if k != nil {
		k.ID = 601
	}
	return args.Error(0)
}

func (m *MockKitchenRepository) GetFirstByUserID(ctx context.Context, userID int64) (*domain.KitchenDetails, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.KitchenDetails), args.Error(1)
}

type fakeStore struct {
	saved []string
	fail  error
}

func (f *fakeStore) Save(ctx context.Context, path string, content []byte, mimeType string) (string, error) {
	if f.fail != nil {
		return "", f.fail
	}
	f.saved = append(f.saved, path)
	return fmt.Sprintf("/static/uploads/%s", path), nil
}

func TestService_SaveDetails_UploadsImagesInOrder(t *testing.T) {
	kitchens := new(MockKitchenRepository)
	kitchens.On("Create", mock.Anything, mock.Anything).Return(nil)
	store := &fakeStore{}

	service := NewService(kitchens, store)

	req := SaveDetailsRequest{
		KitchenType:      "Modular L-Shape",
		InstallationDate: time.Date(2024, time.November, 2, 0, 0, 0, 0, time.UTC),
		Size:             "120 sq ft",
		Location:         "Mumbai",
	}
	images := []ImageUpload{
		{Name: "front.jpg", Content: []byte("a"), MimeType: "image/jpeg"},
		{Name: "side.jpg", Content: []byte("b"), MimeType: "image/jpeg"},
	}

	k, err := service.SaveDetails(context.Background(), 7, req, images)
	require.NoError(t, err)

	assert.Equal(t, []string{"kitchens/7/0_front.jpg", "kitchens/7/1_side.jpg"}, store.saved)
	assert.Equal(t, []string{
		"/static/uploads/kitchens/7/0_front.jpg",
		"/static/uploads/kitchens/7/1_side.jpg",
	}, k.ImageURLs)
	assert.Equal(t, "Modular L-Shape", k.KitchenType)
}

func TestService_SaveDetails_UploadFailureAborts(t *testing.T) {
	kitchens := new(MockKitchenRepository)
	store := &fakeStore{fail: assert.AnError}

	service := NewService(kitchens, store)

	_, err := service.SaveDetails(context.Background(), 7, SaveDetailsRequest{}, []ImageUpload{{Name: "a.jpg"}})
	assert.Error(t, err)
	kitchens.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestService_GetDetails_NotFound(t *testing.T) {
	kitchens := new(MockKitchenRepository)
	kitchens.On("GetFirstByUserID", mock.Anything, int64(7)).Return(nil, repository.ErrNotFound)

	service := NewService(kitchens, &fakeStore{})

	_, err := service.GetDetails(context.Background(), 7)
	assert.ErrorIs(t, err, ErrNotFound)
}
