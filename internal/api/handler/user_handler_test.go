package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/ashuestate/realty-api/internal/api/middleware"
	"github.com/ashuestate/realty-api/internal/core/domain"
	"github.com/ashuestate/realty-api/internal/core/ports"
)

type stubUserService struct {
	listFn    func(ctx context.Context) ([]*domain.User, error)
	getFn     func(ctx context.Context, id string) (*domain.User, error)
	updateFn  func(ctx context.Context, ident domain.Identity, id string, in ports.UpdateUserInput) (*domain.User, error)
	deleteFn  func(ctx context.Context, ident domain.Identity, id string) error
	toggleFn  func(ctx context.Context, ident domain.Identity, postID string) (bool, error)
	profileFn func(ctx context.Context, ident domain.Identity) (*ports.ProfileFeed, error)
}

func (s *stubUserService) ListUsers(ctx context.Context) ([]*domain.User, error) {
	return s.listFn(ctx)
}

func (s *stubUserService) GetUser(ctx context.Context, id string) (*domain.User, error) {
	return s.getFn(ctx, id)
}

func (s *stubUserService) UpdateUser(ctx context.Context, ident domain.Identity, id string, in ports.UpdateUserInput) (*domain.User, error) {
	return s.updateFn(ctx, ident, id, in)
}

func (s *stubUserService) DeleteUser(ctx context.Context, ident domain.Identity, id string) error {
	return s.deleteFn(ctx, ident, id)
}

func (s *stubUserService) ToggleSavedPost(ctx context.Context, ident domain.Identity, postID string) (bool, error) {
	return s.toggleFn(ctx, ident, postID)
}

func (s *stubUserService) ProfilePosts(ctx context.Context, ident domain.Identity) (*ports.ProfileFeed, error) {
	return s.profileFn(ctx, ident)
}

func TestUserHandler_SavePost_Toggle(t *testing.T) {
	e := echo.New()
	e.Validator = NewValidator()

	saved := true
	stub := &stubUserService{
		toggleFn: func(_ context.Context, ident domain.Identity, postID string) (bool, error) {
			if ident.UserID != "user-1" || postID != "post-1" {
				t.Fatalf("unexpected args: %+v %s", ident, postID)
			}
			return saved, nil
		},
	}
	h := NewUserHandler(stub)

	run := func() map[string]any {
		c, rec := authedContext(e, http.MethodPost, "/api/users/save", `{"postId":"post-1"}`, domain.Identity{UserID: "user-1"})
		if err := h.SavePost(c); err != nil {
			t.Fatalf("handler error: %v", err)
		}
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		var resp map[string]any
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid json: %v", err)
		}
		return resp
	}

	if resp := run(); resp["message"] != "post saved" {
		t.Fatalf("unexpected message: %+v", resp)
	}
	saved = false
	if resp := run(); resp["message"] != "post removed from saved list" {
		t.Fatalf("unexpected message: %+v", resp)
	}
}

func TestUserHandler_SavePost_MissingPostID(t *testing.T) {
	e := echo.New()
	e.Validator = NewValidator()
	stub := &stubUserService{
		toggleFn: func(context.Context, domain.Identity, string) (bool, error) {
			t.Fatalf("service should not be called")
			return false, nil
		},
	}
	h := NewUserHandler(stub)

	c, _ := authedContext(e, http.MethodPost, "/api/users/save", `{}`, domain.Identity{UserID: "user-1"})

	err := h.SavePost(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestUserHandler_Update_PropagatesOwnershipError(t *testing.T) {
	e := echo.New()
	e.Validator = NewValidator()
	stub := &stubUserService{
		updateFn: func(context.Context, domain.Identity, string, ports.UpdateUserInput) (*domain.User, error) {
			return nil, domain.ErrForbidden
		},
	}
	h := NewUserHandler(stub)

	c, _ := authedContext(e, http.MethodPut, "/api/users/other", `{"username":"newname"}`, domain.Identity{UserID: "user-1"})
	c.SetParamNames("id")
	c.SetParamValues("other")

	if err := h.Update(c); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestUserHandler_ProfilePosts(t *testing.T) {
	e := echo.New()
	stub := &stubUserService{
		profileFn: func(_ context.Context, ident domain.Identity) (*ports.ProfileFeed, error) {
			if ident.UserID != "user-1" {
				t.Fatalf("unexpected identity: %+v", ident)
			}
			return &ports.ProfileFeed{
				UserPosts:  []*ports.PostWithDetail{{Post: &domain.Post{ID: "post-1"}}},
				SavedPosts: []*ports.PostWithDetail{},
			}, nil
		},
	}
	h := NewUserHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/api/users/profile-posts", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(middleware.IdentityKey, domain.Identity{UserID: "user-1"})

	if err := h.ProfilePosts(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var feed struct {
		UserPosts []json.RawMessage `json:"user_posts"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &feed); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(feed.UserPosts) != 1 {
		t.Fatalf("unexpected feed: %s", rec.Body.String())
	}
}

func TestUserHandler_Delete_RequiresIdentity(t *testing.T) {
	e := echo.New()
	stub := &stubUserService{
		deleteFn: func(context.Context, domain.Identity, string) error {
			t.Fatalf("service should not be called")
			return nil
		},
	}
	h := NewUserHandler(stub)

	req := httptest.NewRequest(http.MethodDelete, "/api/users/user-1", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.Delete(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}
