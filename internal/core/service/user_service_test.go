package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/ashuestate/realty-api/internal/core/domain"
	"github.com/ashuestate/realty-api/internal/core/ports"
)

type stubSavedRepo struct {
	edges map[string]map[string]*domain.SavedPost // userID -> postID -> edge
}

func newStubSavedRepo() *stubSavedRepo {
	return &stubSavedRepo{edges: make(map[string]map[string]*domain.SavedPost)}
}

func (r *stubSavedRepo) Find(_ context.Context, userID, postID string) (*domain.SavedPost, error) {
	if edge, ok := r.edges[userID][postID]; ok {
		copy := *edge
		return &copy, nil
	}
	return nil, nil
}

func (r *stubSavedRepo) Create(_ context.Context, saved *domain.SavedPost) error {
	if r.edges[saved.UserID] == nil {
		r.edges[saved.UserID] = make(map[string]*domain.SavedPost)
	}
	copy := *saved
	r.edges[saved.UserID][saved.PostID] = &copy
	return nil
}

func (r *stubSavedRepo) Delete(_ context.Context, userID, postID string) error {
	delete(r.edges[userID], postID)
	return nil
}

func (r *stubSavedRepo) ListByUser(_ context.Context, userID string) ([]*domain.SavedPost, error) {
	var out []*domain.SavedPost
	for _, edge := range r.edges[userID] {
		copy := *edge
		out = append(out, &copy)
	}
	return out, nil
}

func (r *stubSavedRepo) DeleteByUser(_ context.Context, userID string) error {
	delete(r.edges, userID)
	return nil
}

func newUserFixture(t *testing.T) (*UserService, *stubUserRepo, *stubPostRepo, *stubSavedRepo) {
	t.Helper()
	users := newStubUserRepo()
	posts := newStubPostRepo()
	saved := newStubSavedRepo()
	svc := NewUserService(users, posts, saved, &recorderStub{}, zerolog.Nop())
	return svc, users, posts, saved
}

func TestUserService_UpdateUser_SelfOnly(t *testing.T) {
	svc, users, _, _ := newUserFixture(t)

	alice := seedUser(t, users, "alice", domain.RoleBuyer)
	bob := seedUser(t, users, "bob", domain.RoleBuyer)

	newName := "alice2"
	updated, err := svc.UpdateUser(context.Background(), domain.Identity{UserID: alice.ID}, alice.ID, ports.UpdateUserInput{Username: &newName})
	if err != nil {
		t.Fatalf("self update failed: %v", err)
	}
	if updated.Username != "alice2" {
		t.Fatalf("username not updated: %+v", updated)
	}

	if _, err := svc.UpdateUser(context.Background(), domain.Identity{UserID: bob.ID}, alice.ID, ports.UpdateUserInput{Username: &newName}); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden for updating another profile, got %v", err)
	}
}

func TestUserService_UpdateUser_MissingBeforeForbidden(t *testing.T) {
	svc, users, _, _ := newUserFixture(t)
	bob := seedUser(t, users, "bob", domain.RoleBuyer)

	if _, err := svc.UpdateUser(context.Background(), domain.Identity{UserID: bob.ID}, "missing", ports.UpdateUserInput{}); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUserService_UpdateUser_RehashesPassword(t *testing.T) {
	svc, users, _, _ := newUserFixture(t)
	alice := seedUser(t, users, "alice", domain.RoleBuyer)

	pw := "brand-new-pass"
	if _, err := svc.UpdateUser(context.Background(), domain.Identity{UserID: alice.ID}, alice.ID, ports.UpdateUserInput{Password: &pw}); err != nil {
		t.Fatalf("update failed: %v", err)
	}

	stored, _ := users.FindByID(context.Background(), alice.ID)
	if stored.PasswordHash == pw {
		t.Fatalf("password stored in plain text")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte(pw)); err != nil {
		t.Fatalf("stored hash does not match new password: %v", err)
	}
}

func TestUserService_DeleteUser(t *testing.T) {
	svc, users, posts, saved := newUserFixture(t)

	alice := seedUser(t, users, "alice", domain.RoleBuyer)
	bob := seedUser(t, users, "bob", domain.RoleBuyer)
	post, _ := posts.Create(context.Background(), &domain.Post{OwnerID: bob.ID, Title: "flat"}, nil)
	_ = saved.Create(context.Background(), &domain.SavedPost{UserID: alice.ID, PostID: post.ID})

	if err := svc.DeleteUser(context.Background(), domain.Identity{UserID: bob.ID}, alice.ID); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden for deleting another account, got %v", err)
	}

	if err := svc.DeleteUser(context.Background(), domain.Identity{UserID: alice.ID}, alice.ID); err != nil {
		t.Fatalf("self delete failed: %v", err)
	}
	if _, err := users.FindByID(context.Background(), alice.ID); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("user still present after delete")
	}
	edges, _ := saved.ListByUser(context.Background(), alice.ID)
	if len(edges) != 0 {
		t.Fatalf("saved-post edges not cleaned up: %+v", edges)
	}
}

func TestUserService_ToggleSavedPost(t *testing.T) {
	svc, users, posts, _ := newUserFixture(t)

	alice := seedUser(t, users, "alice", domain.RoleBuyer)
	owner := seedUser(t, users, "olivia", domain.RoleOwner)
	post, _ := posts.Create(context.Background(), &domain.Post{OwnerID: owner.ID, Title: "flat"}, nil)

	savedNow, err := svc.ToggleSavedPost(context.Background(), domain.Identity{UserID: alice.ID}, post.ID)
	if err != nil {
		t.Fatalf("first toggle failed: %v", err)
	}
	if !savedNow {
		t.Fatalf("expected post to be saved after first toggle")
	}

	savedNow, err = svc.ToggleSavedPost(context.Background(), domain.Identity{UserID: alice.ID}, post.ID)
	if err != nil {
		t.Fatalf("second toggle failed: %v", err)
	}
	if savedNow {
		t.Fatalf("expected post to be unsaved after second toggle")
	}

	if _, err := svc.ToggleSavedPost(context.Background(), domain.Identity{UserID: alice.ID}, "missing"); !errors.Is(err, domain.ErrPostNotFound) {
		t.Fatalf("expected ErrPostNotFound, got %v", err)
	}
}

func TestUserService_ProfilePosts(t *testing.T) {
	svc, users, posts, saved := newUserFixture(t)

	olivia := seedUser(t, users, "olivia", domain.RoleOwner)
	other := seedUser(t, users, "oscar", domain.RoleOwner)

	own, _ := posts.Create(context.Background(), &domain.Post{OwnerID: olivia.ID, Title: "mine"}, &domain.PostDetail{Description: "d"})
	bookmarked, _ := posts.Create(context.Background(), &domain.Post{OwnerID: other.ID, Title: "theirs"}, nil)
	_ = saved.Create(context.Background(), &domain.SavedPost{UserID: olivia.ID, PostID: bookmarked.ID})
	// Dangling edge: the post behind it no longer exists.
	_ = saved.Create(context.Background(), &domain.SavedPost{UserID: olivia.ID, PostID: "gone"})

	feed, err := svc.ProfilePosts(context.Background(), domain.Identity{UserID: olivia.ID})
	if err != nil {
		t.Fatalf("profile posts failed: %v", err)
	}
	if len(feed.UserPosts) != 1 || feed.UserPosts[0].Post.ID != own.ID {
		t.Fatalf("unexpected own posts: %+v", feed.UserPosts)
	}
	if feed.UserPosts[0].Detail == nil || feed.UserPosts[0].Detail.Description != "d" {
		t.Fatalf("detail not joined: %+v", feed.UserPosts[0])
	}
	if len(feed.SavedPosts) != 1 || feed.SavedPosts[0].Post.ID != bookmarked.ID {
		t.Fatalf("unexpected saved posts: %+v", feed.SavedPosts)
	}
}
