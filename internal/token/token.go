// Package token issues and verifies the signed session tokens carried by the
// session cookie. Tokens are HS256 JWTs with a 7-day lifetime; the claims are
// the user id, an optional isAdmin flag, and a random jti used for logout
// revocation.
package token

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/ashuestate/realty-api/internal/core/domain"
)

// DefaultTTL is the session lifetime baked into every issued token.
const DefaultTTL = 7 * 24 * time.Hour

// ErrMissingSecret is returned by NewManager when no signing secret is
// configured. The process must not start without one.
var ErrMissingSecret = errors.New("token: signing secret is empty")

// Claims is the verified content of a session token.
type Claims struct {
	UserID    string
	IsAdmin   bool
	TokenID   string
	ExpiresAt time.Time
}

// Identity converts the claims into the caller identity handlers consume.
func (c Claims) Identity() domain.Identity {
	return domain.Identity{UserID: c.UserID, IsAdmin: c.IsAdmin}
}

// Denylist tracks revoked token ids. Revoke entries only need to live until
// the token's natural expiry.
type Denylist interface {
	Revoke(ctx context.Context, tokenID string, until time.Time) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

// Manager signs and verifies session tokens with a symmetric secret.
type Manager struct {
	secret []byte
	ttl    time.Duration
}

// NewManager builds a Manager. The secret is mandatory; ttl defaults to
// DefaultTTL when non-positive.
func NewManager(secret string, ttl time.Duration) (*Manager, error) {
	if secret == "" {
		return nil, ErrMissingSecret
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Manager{secret: []byte(secret), ttl: ttl}, nil
}

// TTL returns the configured session lifetime.
func (m *Manager) TTL() time.Duration {
	return m.ttl
}

// Issue mints a fresh token for the identity. Re-issuing always produces a
// new expiry and jti; tokens carry no mutable state.
func (m *Manager) Issue(ident domain.Identity) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"id":  ident.UserID,
		"jti": newTokenID(),
		"iat": now.Unix(),
		"exp": now.Add(m.ttl).Unix(),
	}
	if ident.IsAdmin {
		claims["isAdmin"] = true
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := t.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Verify validates signature and expiry and extracts the claims. A token
// whose signature checks out but lacks the id claim is still rejected.
// All failure modes collapse into domain.ErrInvalidToken so the response
// never reveals whether the token was expired or tampered with.
func (m *Manager) Verify(raw string) (Claims, error) {
	mc := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(raw, mc, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return m.secret, nil
	})
	if err != nil || !tkn.Valid {
		return Claims{}, domain.ErrInvalidToken
	}

	id, _ := mc["id"].(string)
	if id == "" {
		return Claims{}, domain.ErrInvalidToken
	}

	claims := Claims{UserID: id}
	claims.IsAdmin, _ = mc["isAdmin"].(bool)
	claims.TokenID, _ = mc["jti"].(string)
	if exp, errExp := mc.GetExpirationTime(); errExp == nil && exp != nil {
		claims.ExpiresAt = exp.Time
	}
	return claims, nil
}

// newTokenID returns a 16-byte random hex id for the jti claim.
func newTokenID() string {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return fmt.Sprintf("%x", time.Now().UnixNano())
	}
	return hex.EncodeToString(b)
}
