package auth

import (
	"context"
	"errors"
	"strings"
	"time"

	"kitchencare/internal/domain"
	"kitchencare/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

type jwtService interface {
	GenerateToken(userID int64, role string) (string, error)
}

type Service struct {
	users  UserRepository
	jwt    jwtService
	mailer Mailer
}

type AuthResult struct {
	User  *domain.User
	Token string
}

func NewService(users UserRepository, jwt jwtService, mailer Mailer) *Service {
	return &Service{users: users, jwt: jwt, mailer: mailer}
}

func (s *Service) SignUp(ctx context.Context, req SignUpRequest) (*AuthResult, error) {
	email := strings.TrimSpace(strings.ToLower(req.Email))

	if _, err := s.users.GetByEmail(ctx, email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	u := &domain.User{
		Email:        email,
		PasswordHash: string(hash),
		DisplayName:  strings.TrimSpace(req.DisplayName),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.users.Create(ctx, u); err != nil {
		return nil, err
	}

	token, err := s.jwt.GenerateToken(u.ID, "user")
	if err != nil {
		return nil, err
	}

	return &AuthResult{User: u, Token: token}, nil
}

func (s *Service) SignIn(ctx context.Context, req SignInRequest) (*AuthResult, error) {
	u, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)) != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.jwt.GenerateToken(u.ID, "user")
	if err != nil {
		return nil, err
	}

	return &AuthResult{User: u, Token: token}, nil
}

// ResetPassword never reveals whether the email is registered.
func (s *Service) ResetPassword(ctx context.Context, email string) error {
	if _, err := s.users.GetByEmail(ctx, email); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil
		}
		return err
	}
	return s.mailer.SendPasswordReset(ctx, email)
}

func (s *Service) GetProfile(ctx context.Context, userID int64) (*domain.User, error) {
	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return u, nil
}

func (s *Service) UpdateProfile(ctx context.Context, userID int64, req UpdateProfileRequest) (*domain.User, error) {
	if strings.TrimSpace(req.DisplayName) == "" {
		return nil, ErrValidation
	}

	if err := s.users.UpdateProfile(ctx, userID, strings.TrimSpace(req.DisplayName), req.PhoneNumber, req.Address); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return s.GetProfile(ctx, userID)
}
