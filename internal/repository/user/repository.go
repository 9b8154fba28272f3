package user

import (
	"context"
	"errors"

	"pasteleria-mil-sabores/internal/domain"
)

// ErrDuplicateEmail reports that the email is already registered.
var ErrDuplicateEmail = errors.New("email already registered")

type Repository interface {
	Create(ctx context.Context, u domain.User) (*domain.User, error)
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Update(ctx context.Context, u domain.User) error
}
