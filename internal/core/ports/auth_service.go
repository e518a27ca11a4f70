package ports

import (
	"context"

	"github.com/ashuestate/realty-api/internal/core/domain"
)

// RegisterInput carries the fields of a registration request.
type RegisterInput struct {
	Username string
	Email    string
	Password string
	Role     string
}

// AuthService implements the credential flows. Login returns the signed
// session token alongside the user; Register deliberately does not issue a
// token (the user logs in separately).
type AuthService interface {
	Register(ctx context.Context, in RegisterInput) (*domain.User, error)
	Login(ctx context.Context, username, password string) (string, *domain.User, error)
	// Logout revokes the session the raw token represents. A missing or
	// unparseable token is not an error: the client cookie is cleared
	// regardless.
	Logout(ctx context.Context, rawToken string) error
	// Verify resolves the authenticated user record for the verify endpoint.
	Verify(ctx context.Context, userID string) (*domain.User, error)
}
