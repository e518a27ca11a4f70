package ports

import (
	"context"

	"github.com/ashuestate/realty-api/internal/core/domain"
)

// UserUpdate carries the mutable profile fields. Nil pointers mean
// "leave unchanged". PasswordHash must already be hashed by the caller.
type UserUpdate struct {
	Username     *string
	Email        *string
	PasswordHash *string
	Avatar       *string
}

// UserRepository is the credential store: persistence for user records.
// Uniqueness of username and email is enforced by the store's indexes;
// Create surfaces violations as domain.ErrUserExists.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
	Update(ctx context.Context, id string, upd UserUpdate) (*domain.User, error)
	Delete(ctx context.Context, id string) error
}
