package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/ashuestate/realty-api/internal/core/domain"
	"github.com/ashuestate/realty-api/internal/core/ports"
)

// UserService implements profile and saved-post use cases.
type UserService struct {
	users    ports.UserRepository
	posts    ports.PostRepository
	saved    ports.SavedPostRepository
	activity ports.ActivityRecorder
	logger   zerolog.Logger
}

func NewUserService(users ports.UserRepository, posts ports.PostRepository, saved ports.SavedPostRepository, activity ports.ActivityRecorder, logger zerolog.Logger) *UserService {
	return &UserService{users: users, posts: posts, saved: saved, activity: activity, logger: logger}
}

func (s *UserService) ListUsers(ctx context.Context) ([]*domain.User, error) {
	return s.users.List(ctx)
}

func (s *UserService) GetUser(ctx context.Context, id string) (*domain.User, error) {
	return s.users.FindByID(ctx, id)
}

// UpdateUser applies a partial profile update. Only the profile owner may
// update it; existence is checked first so a 403 never masks a 404. A new
// password is re-hashed before it reaches the store.
func (s *UserService) UpdateUser(ctx context.Context, ident domain.Identity, id string, in ports.UpdateUserInput) (*domain.User, error) {
	if _, err := s.users.FindByID(ctx, id); err != nil {
		return nil, err
	}
	if !ident.Owns(id) {
		return nil, domain.ErrForbidden
	}

	upd := ports.UserUpdate{
		Username: in.Username,
		Email:    in.Email,
		Avatar:   in.Avatar,
	}
	if in.Password != nil && *in.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(*in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		h := string(hash)
		upd.PasswordHash = &h
	}

	updated, err := s.users.Update(ctx, id, upd)
	if err != nil {
		return nil, err
	}
	s.logger.Info().Str("user_id", id).Msg("profile updated")
	return updated, nil
}

// DeleteUser removes the caller's own account and cleans up their
// saved-post edges. Authored posts are left in place; removing them is a
// separate, explicit flow.
func (s *UserService) DeleteUser(ctx context.Context, ident domain.Identity, id string) error {
	if _, err := s.users.FindByID(ctx, id); err != nil {
		return err
	}
	if !ident.Owns(id) {
		return domain.ErrForbidden
	}

	if err := s.users.Delete(ctx, id); err != nil {
		return err
	}
	if err := s.saved.DeleteByUser(ctx, id); err != nil {
		s.logger.Warn().Err(err).Str("user_id", id).Msg("failed to clean up saved posts")
	}

	s.activity.Record(domain.ActivityEvent{
		ActorID:   ident.UserID,
		Action:    domain.ActionUserDeleted,
		TargetID:  id,
		Timestamp: time.Now().UTC(),
	})
	s.logger.Info().Str("user_id", id).Msg("user deleted")
	return nil
}

// ToggleSavedPost saves the post for the caller, or unsaves it when a
// bookmark already exists. The returned bool reports the resulting state.
func (s *UserService) ToggleSavedPost(ctx context.Context, ident domain.Identity, postID string) (bool, error) {
	if _, err := s.posts.FindByID(ctx, postID); err != nil {
		return false, err
	}

	now := time.Now().UTC()
	existing, err := s.saved.Find(ctx, ident.UserID, postID)
	if err != nil {
		return false, err
	}

	if existing != nil {
		if err := s.saved.Delete(ctx, ident.UserID, postID); err != nil {
			return false, err
		}
		s.activity.Record(domain.ActivityEvent{
			ActorID:   ident.UserID,
			Action:    domain.ActionPostUnsaved,
			TargetID:  postID,
			Timestamp: now,
		})
		return false, nil
	}

	if err := s.saved.Create(ctx, &domain.SavedPost{UserID: ident.UserID, PostID: postID, CreatedAt: now}); err != nil {
		return false, err
	}
	s.activity.Record(domain.ActivityEvent{
		ActorID:   ident.UserID,
		Action:    domain.ActionPostSaved,
		TargetID:  postID,
		Timestamp: now,
	})
	return true, nil
}

// ProfilePosts returns the caller's own listings and their saved listings,
// each joined with detail documents. Saved entries whose post has since
// been deleted are silently skipped.
func (s *UserService) ProfilePosts(ctx context.Context, ident domain.Identity) (*ports.ProfileFeed, error) {
	own, err := s.posts.FindByOwner(ctx, ident.UserID)
	if err != nil {
		return nil, err
	}

	feed := &ports.ProfileFeed{
		UserPosts:  make([]*ports.PostWithDetail, 0, len(own)),
		SavedPosts: []*ports.PostWithDetail{},
	}
	for _, p := range own {
		feed.UserPosts = append(feed.UserPosts, s.withDetail(ctx, p))
	}

	savedEdges, err := s.saved.ListByUser(ctx, ident.UserID)
	if err != nil {
		return nil, err
	}
	for _, edge := range savedEdges {
		post, err := s.posts.FindByID(ctx, edge.PostID)
		if err != nil {
			continue
		}
		feed.SavedPosts = append(feed.SavedPosts, s.withDetail(ctx, post))
	}
	return feed, nil
}

func (s *UserService) withDetail(ctx context.Context, post *domain.Post) *ports.PostWithDetail {
	detail, err := s.posts.FindDetail(ctx, post.ID)
	if err != nil {
		detail = nil
	}
	return &ports.PostWithDetail{Post: post, Detail: detail}
}
