package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/ashuestate/realty-api/internal/core/domain"
	"github.com/ashuestate/realty-api/internal/token"
)

type denylistStub struct {
	revoked map[string]bool
	err     error
}

func (d *denylistStub) Revoke(_ context.Context, tokenID string, _ time.Time) error {
	if d.revoked == nil {
		d.revoked = make(map[string]bool)
	}
	d.revoked[tokenID] = true
	return nil
}

func (d *denylistStub) IsRevoked(_ context.Context, tokenID string) (bool, error) {
	if d.err != nil {
		return false, d.err
	}
	return d.revoked[tokenID], nil
}

func newTestManager(t *testing.T) *token.Manager {
	t.Helper()
	m, err := token.NewManager("secret", time.Hour)
	if err != nil {
		t.Fatalf("NewManager: %v", err)
	}
	return m
}

func requestWithCookie(value string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if value != "" {
		req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: value})
	}
	return req
}

func TestAuth_ValidToken(t *testing.T) {
	e := echo.New()
	tokens := newTestManager(t)
	signed, err := tokens.Issue(domain.Identity{UserID: "user-1", IsAdmin: true})
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	rec := httptest.NewRecorder()
	c := e.NewContext(requestWithCookie(signed), rec)

	called := false
	mw := Auth(tokens, &denylistStub{}, zerolog.Nop())
	handler := mw(func(c echo.Context) error {
		called = true
		ident, ok := c.Get(IdentityKey).(domain.Identity)
		if !ok {
			t.Fatalf("identity not set")
		}
		if ident.UserID != "user-1" || !ident.IsAdmin {
			t.Fatalf("unexpected identity: %+v", ident)
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
}

func TestAuth_MissingCookie(t *testing.T) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(requestWithCookie(""), rec)

	mw := Auth(newTestManager(t), &denylistStub{}, zerolog.Nop())
	handler := mw(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	err := handler(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
	if he.Message != "not authenticated" {
		t.Fatalf("unexpected message: %v", he.Message)
	}
}

func TestAuth_CorruptedToken(t *testing.T) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(requestWithCookie("garbage.token.value"), rec)

	mw := Auth(newTestManager(t), &denylistStub{}, zerolog.Nop())
	handler := mw(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	err := handler(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %v", err)
	}
	if he.Message != "token is not valid" {
		t.Fatalf("unexpected message: %v", he.Message)
	}
}

func TestAuth_ExpiredToken(t *testing.T) {
	e := echo.New()
	shortLived, err := token.NewManager("secret", time.Millisecond)
	if err != nil {
		t.Fatalf("NewManager: %v", err)
	}
	signed, _ := shortLived.Issue(domain.Identity{UserID: "user-1"})
	time.Sleep(5 * time.Millisecond)

	rec := httptest.NewRecorder()
	c := e.NewContext(requestWithCookie(signed), rec)

	mw := Auth(shortLived, &denylistStub{}, zerolog.Nop())
	handler := mw(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	errMw := handler(c)
	var he *echo.HTTPError
	if !errors.As(errMw, &he) || he.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for expired token, got %v", errMw)
	}
}

func TestAuth_RevokedToken(t *testing.T) {
	e := echo.New()
	tokens := newTestManager(t)
	signed, _ := tokens.Issue(domain.Identity{UserID: "user-1"})
	claims, err := tokens.Verify(signed)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}

	denylist := &denylistStub{}
	_ = denylist.Revoke(context.Background(), claims.TokenID, claims.ExpiresAt)

	rec := httptest.NewRecorder()
	c := e.NewContext(requestWithCookie(signed), rec)

	mw := Auth(tokens, denylist, zerolog.Nop())
	handler := mw(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	errMw := handler(c)
	var he *echo.HTTPError
	if !errors.As(errMw, &he) || he.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for revoked token, got %v", errMw)
	}
}

func TestAuth_DenylistUnavailableFailsOpen(t *testing.T) {
	e := echo.New()
	tokens := newTestManager(t)
	signed, _ := tokens.Issue(domain.Identity{UserID: "user-1"})

	rec := httptest.NewRecorder()
	c := e.NewContext(requestWithCookie(signed), rec)

	called := false
	mw := Auth(tokens, &denylistStub{err: errors.New("redis down")}, zerolog.Nop())
	handler := mw(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("expected request to pass when denylist is unavailable")
	}
}
