package auth

import (
	"context"

	"kitchencare/internal/domain"
)

type UserRepository interface {
	Create(ctx context.Context, u *domain.User) error
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	UpdateProfile(ctx context.Context, id int64, displayName, phoneNumber, address string) error
}

// Mailer delivers password-reset instructions. The production build plugs in
// a real mail sender; development logs instead.
type Mailer interface {
	SendPasswordReset(ctx context.Context, email string) error
}
