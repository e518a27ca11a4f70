package ports

import (
	"context"

	"github.com/ashuestate/realty-api/internal/core/domain"
)

// ListPostsFilter carries the public search parameters. Zero values mean
// "no constraint"; City matches case-insensitively as a substring.
type ListPostsFilter struct {
	City     string
	Type     string
	Property string
	Bedroom  int   // minimum
	Bathroom int   // minimum
	MinPrice int64
	MaxPrice int64
}

// PostUpdate carries the mutable listing fields. Nil pointers mean
// "leave unchanged"; OwnerID is fixed at creation and not updatable.
type PostUpdate struct {
	Title     *string
	Price     *int64
	Address   *string
	City      *string
	Bedroom   *int
	Bathroom  *int
	Type      *string
	Property  *string
	Latitude  *float64
	Longitude *float64
	Images    *[]string
}

// PostDetailUpdate mirrors PostUpdate for the detail document.
type PostDetailUpdate struct {
	Description *string
	Utilities   *string
	Pet         *string
	Income      *string
	SizeSqm     *int
	School      *int
	Bus         *int
	Restaurant  *int
}

// PostRepository persists listings and their detail documents.
type PostRepository interface {
	Create(ctx context.Context, post *domain.Post, detail *domain.PostDetail) (*domain.Post, error)
	FindByID(ctx context.Context, id string) (*domain.Post, error)
	FindDetail(ctx context.Context, postID string) (*domain.PostDetail, error)
	FindByOwner(ctx context.Context, ownerID string) ([]*domain.Post, error)
	List(ctx context.Context, filter ListPostsFilter) ([]*domain.Post, error)
	Update(ctx context.Context, id string, post PostUpdate, detail *PostDetailUpdate) error
	// Delete removes the post, its detail document, and every saved-post
	// edge referencing it.
	Delete(ctx context.Context, id string) error
}

// SavedPostRepository persists user/post bookmark edges.
type SavedPostRepository interface {
	// Find returns the edge, or (nil, nil) when the post is not saved.
	Find(ctx context.Context, userID, postID string) (*domain.SavedPost, error)
	Create(ctx context.Context, saved *domain.SavedPost) error
	Delete(ctx context.Context, userID, postID string) error
	ListByUser(ctx context.Context, userID string) ([]*domain.SavedPost, error)
	DeleteByUser(ctx context.Context, userID string) error
}
