package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/ashuestate/realty-api/internal/core/domain"
	"github.com/ashuestate/realty-api/internal/core/ports"
)

// PostService implements the listing use cases.
type PostService struct {
	posts    ports.PostRepository
	users    ports.UserRepository
	activity ports.ActivityRecorder
	logger   zerolog.Logger
}

func NewPostService(posts ports.PostRepository, users ports.UserRepository, activity ports.ActivityRecorder, logger zerolog.Logger) *PostService {
	return &PostService{posts: posts, users: users, activity: activity, logger: logger}
}

// ListPosts returns listings matching the public search filter.
func (s *PostService) ListPosts(ctx context.Context, filter ports.ListPostsFilter) ([]*domain.Post, error) {
	return s.posts.List(ctx, filter)
}

// GetPost returns a single listing joined with its detail document.
// A missing detail document is not an error; Detail is nil in that case.
func (s *PostService) GetPost(ctx context.Context, id string) (*ports.PostWithDetail, error) {
	post, err := s.posts.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	detail, err := s.posts.FindDetail(ctx, post.ID)
	if err != nil {
		detail = nil
	}
	return &ports.PostWithDetail{Post: post, Detail: detail}, nil
}

// CreatePost persists a new listing owned by the caller. Only owner
// accounts may create listings; the account type is re-read from the store
// rather than trusted from a stale token claim.
func (s *PostService) CreatePost(ctx context.Context, ident domain.Identity, in ports.CreatePostInput) (*domain.Post, error) {
	user, err := s.users.FindByID(ctx, ident.UserID)
	if err != nil {
		return nil, err
	}
	if user.Role != domain.RoleOwner {
		return nil, domain.ErrForbidden
	}

	now := time.Now().UTC()
	post := &domain.Post{
		OwnerID:   ident.UserID,
		Title:     in.Title,
		Price:     in.Price,
		Address:   in.Address,
		City:      in.City,
		Bedroom:   in.Bedroom,
		Bathroom:  in.Bathroom,
		Type:      in.Type,
		Property:  in.Property,
		Latitude:  in.Latitude,
		Longitude: in.Longitude,
		Images:    in.Images,
		CreatedAt: now,
		UpdatedAt: now,
	}
	detail := &domain.PostDetail{
		Description: in.Detail.Description,
		Utilities:   in.Detail.Utilities,
		Pet:         in.Detail.Pet,
		Income:      in.Detail.Income,
		SizeSqm:     in.Detail.SizeSqm,
		School:      in.Detail.School,
		Bus:         in.Detail.Bus,
		Restaurant:  in.Detail.Restaurant,
	}

	created, err := s.posts.Create(ctx, post, detail)
	if err != nil {
		s.logger.Error().Err(err).Str("owner_id", ident.UserID).Msg("failed to create post")
		return nil, err
	}

	s.activity.Record(domain.ActivityEvent{
		ActorID:   ident.UserID,
		Action:    domain.ActionPostCreated,
		TargetID:  created.ID,
		Timestamp: now,
	})
	s.logger.Info().Str("post_id", created.ID).Str("owner_id", ident.UserID).Msg("post created")
	return created, nil
}

// UpdatePost applies a partial update. Existence is checked before
// ownership: an absent post yields ErrPostNotFound, a post owned by someone
// else yields ErrForbidden.
func (s *PostService) UpdatePost(ctx context.Context, ident domain.Identity, id string, in ports.UpdatePostInput) (*ports.PostWithDetail, error) {
	post, err := s.posts.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !ident.Owns(post.OwnerID) {
		return nil, domain.ErrForbidden
	}

	if err := s.posts.Update(ctx, id, in.Post, in.Detail); err != nil {
		return nil, err
	}

	s.activity.Record(domain.ActivityEvent{
		ActorID:   ident.UserID,
		Action:    domain.ActionPostUpdated,
		TargetID:  id,
		Timestamp: time.Now().UTC(),
	})
	return s.GetPost(ctx, id)
}

// DeletePost removes a listing and everything hanging off it (detail
// document, saved-post edges). Same existence-then-ownership order as
// UpdatePost.
func (s *PostService) DeletePost(ctx context.Context, ident domain.Identity, id string) error {
	post, err := s.posts.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if !ident.Owns(post.OwnerID) {
		return domain.ErrForbidden
	}

	if err := s.posts.Delete(ctx, id); err != nil {
		s.logger.Error().Err(err).Str("post_id", id).Msg("failed to delete post")
		return err
	}

	s.activity.Record(domain.ActivityEvent{
		ActorID:   ident.UserID,
		Action:    domain.ActionPostDeleted,
		TargetID:  id,
		Timestamp: time.Now().UTC(),
	})
	s.logger.Info().Str("post_id", id).Msg("post deleted")
	return nil
}
