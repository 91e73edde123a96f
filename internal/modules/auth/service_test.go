package auth

import (
	"context"
	"testing"

	"kitchencare/internal/domain"
	"kitchencare/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, u *domain.User) error {
	args := m.Called(ctx, u)
	if u != nil {
		u.ID = 7
	}
	return args.Error(0)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) UpdateProfile(ctx context.Context, id int64, displayName, phoneNumber, address string) error {
	args := m.Called(ctx, id, displayName, phoneNumber, address)
	return args.Error(0)
}

type MockJWT struct {
	mock.Mock
}

func (m *MockJWT) GenerateToken(userID int64, role string) (string, error) {
	args := m.Called(userID, role)
	return args.String(0), args.Error(1)
}

type MockMailer struct {
	mock.Mock
}

func (m *MockMailer) SendPasswordReset(ctx context.Context, email string) error {
	args := m.Called(ctx, email)
	return args.Error(0)
}

func TestService_SignUp_Success(t *testing.T) {
	users := new(MockUserRepository)
	jwt := new(MockJWT)

	users.On("GetByEmail", mock.Anything, "asha@example.com").Return(nil, repository.ErrNotFound)
	users.On("Create", mock.Anything, mock.Anything).Return(nil)
	jwt.On("GenerateToken", int64(7), "user").Return("token-123", nil)

	service := NewService(users, jwt, new(MockMailer))

	result, err := service.SignUp(context.Background(), SignUpRequest{
		Email:       "  Asha@Example.com ",
		Password:    "secret123",
		DisplayName: " Asha Nair ",
	})

	require.NoError(t, err)
	assert.Equal(t, "token-123", result.Token)
	assert.Equal(t, "asha@example.com", result.User.Email)
	assert.Equal(t, "Asha Nair", result.User.DisplayName)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(result.User.PasswordHash), []byte("secret123")))
}

func TestService_SignUp_EmailTaken(t *testing.T) {
	users := new(MockUserRepository)
	users.On("GetByEmail", mock.Anything, "asha@example.com").Return(&domain.User{ID: 7}, nil)

	service := NewService(users, new(MockJWT), new(MockMailer))

	_, err := service.SignUp(context.Background(), SignUpRequest{
		Email:       "asha@example.com",
		Password:    "secret123",
		DisplayName: "Asha",
	})
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestService_SignIn(t *testing.T) {
	hash, _ := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	users := new(MockUserRepository)
	jwt := new(MockJWT)

	users.On("GetByEmail", mock.Anything, "asha@example.com").Return(&domain.User{ID: 7, Email: "asha@example.com", PasswordHash: string(hash)}, nil)
	jwt.On("GenerateToken", int64(7), "user").Return("token-123", nil)

	service := NewService(users, jwt, new(MockMailer))

	result, err := service.SignIn(context.Background(), SignInRequest{Email: "asha@example.com", Password: "secret123"})
	require.NoError(t, err)
	assert.Equal(t, "token-123", result.Token)

	_, err = service.SignIn(context.Background(), SignInRequest{Email: "asha@example.com", Password: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestService_SignIn_UnknownEmail(t *testing.T) {
	users := new(MockUserRepository)
	users.On("GetByEmail", mock.Anything, "ghost@example.com").Return(nil, repository.ErrNotFound)

	service := NewService(users, new(MockJWT), new(MockMailer))

	_, err := service.SignIn(context.Background(), SignInRequest{Email: "ghost@example.com", Password: "whatever"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

// Unknown addresses succeed silently so the endpoint cannot be used to probe
// which emails are registered.
func TestService_ResetPassword_DoesNotRevealRegistration(t *testing.T) {
	users := new(MockUserRepository)
	mailer := new(MockMailer)

	users.On("GetByEmail", mock.Anything, "ghost@example.com").Return(nil, repository.ErrNotFound)
	users.On("GetByEmail", mock.Anything, "asha@example.com").Return(&domain.User{ID: 7}, nil)
	mailer.On("SendPasswordReset", mock.Anything, "asha@example.com").Return(nil)

	service := NewService(users, new(MockJWT), mailer)

	assert.NoError(t, service.ResetPassword(context.Background(), "ghost@example.com"))
	assert.NoError(t, service.ResetPassword(context.Background(), "asha@example.com"))
	mailer.AssertNumberOfCalls(t, "SendPasswordReset", 1)
}

func TestService_UpdateProfile_RequiresDisplayName(t *testing.T) {
	service := NewService(new(MockUserRepository), new(MockJWT), new(MockMailer))

	_, err := service.UpdateProfile(context.Background(), 7, UpdateProfileRequest{DisplayName: "   "})
	assert.ErrorIs(t, err, ErrValidation)
}
