package ports

import (
	"context"

	"github.com/ashuestate/realty-api/internal/core/domain"
)

// UpdateUserInput carries the mutable profile fields from the transport
// layer. Password is plain text here; the service hashes it.
type UpdateUserInput struct {
	Username *string
	Email    *string
	Password *string
	Avatar   *string
}

// ProfileFeed is the caller's own listings plus the listings they saved,
// each joined with detail documents.
type ProfileFeed struct {
	UserPosts  []*PostWithDetail `json:"user_posts"`
	SavedPosts []*PostWithDetail `json:"saved_posts"`
}

// UserService defines profile use cases. Update and Delete only permit the
// caller to act on their own record.
type UserService interface {
	ListUsers(ctx context.Context) ([]*domain.User, error)
	GetUser(ctx context.Context, id string) (*domain.User, error)
	UpdateUser(ctx context.Context, ident domain.Identity, id string, in UpdateUserInput) (*domain.User, error)
	DeleteUser(ctx context.Context, ident domain.Identity, id string) error
	// ToggleSavedPost bookmarks the post for the caller, or removes the
	// bookmark when one already exists. Returns true when the post ended up
	// saved.
	ToggleSavedPost(ctx context.Context, ident domain.Identity, postID string) (bool, error)
	ProfilePosts(ctx context.Context, ident domain.Identity) (*ProfileFeed, error)
}
