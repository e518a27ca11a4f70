package ports

import (
	"context"

	"github.com/ashuestate/realty-api/internal/core/domain"
)

// CreatePostInput carries everything needed to create a listing.
type CreatePostInput struct {
	Title     string
	Price     int64
	Address   string
	City      string
	Bedroom   int
	Bathroom  int
	Type      string
	Property  string
	Latitude  float64
	Longitude float64
	Images    []string
	Detail    PostDetailInput
}

// PostDetailInput holds the long-form listing attributes.
type PostDetailInput struct {
	Description string
	Utilities   string
	Pet         string
	Income      string
	SizeSqm     int
	School      int
	Bus         int
	Restaurant  int
}

// UpdatePostInput carries a partial update of a listing and, optionally,
// its detail document.
type UpdatePostInput struct {
	Post   PostUpdate
	Detail *PostDetailUpdate
}

// PostWithDetail is the full listing view: the post joined with its detail
// document (nil when the detail record is missing).
type PostWithDetail struct {
	Post   *domain.Post       `json:"post"`
	Detail *domain.PostDetail `json:"detail"`
}

// PostService defines the listing use cases. Mutations take the verified
// caller identity and enforce role and ownership rules; existence is
// checked before ownership so a 403 never masks a 404.
type PostService interface {
	ListPosts(ctx context.Context, filter ListPostsFilter) ([]*domain.Post, error)
	GetPost(ctx context.Context, id string) (*PostWithDetail, error)
	CreatePost(ctx context.Context, ident domain.Identity, in CreatePostInput) (*domain.Post, error)
	UpdatePost(ctx context.Context, ident domain.Identity, id string, in UpdatePostInput) (*PostWithDetail, error)
	DeletePost(ctx context.Context, ident domain.Identity, id string) error
}
