package repository

import (
	"context"
	"errors"

	"github.com/houssamlaqsir1/finance-app/internal/domain/entity"
)

var (
	// ErrNotFound is returned when no user row matches the lookup key.
	ErrNotFound = errors.New("user not found")
	// ErrDuplicateEmail is the translation of the unique constraint on
	// users.email. The constraint is the authoritative guard against
	// concurrent registrations; pre-insert lookups are advisory only.
	ErrDuplicateEmail = errors.New("email already registered")
)

// UserRepository defines the interface for user-related database operations.
type UserRepository interface {
	Create(ctx context.Context, u *entity.User) error
	GetByID(ctx context.Context, id int64) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
}
