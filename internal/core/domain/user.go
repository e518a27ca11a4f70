package domain

import (
	"errors"
	"time"
)

// Account types an actor can register with. Admin accounts are provisioned
// out of band; self-registration only accepts the first three.
const (
	RoleBuyer = "buyer"
	RoleOwner = "owner"
	RoleAgent = "agent"
	RoleAdmin = "admin"
)

var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrUserExists = errors.New("username or email already exists")
var ErrUserNotFound = errors.New("user not found")
var ErrNotAuthenticated = errors.New("not authenticated")
var ErrInvalidToken = errors.New("token is not valid")
var ErrForbidden = errors.New("not authorized")

// ValidRole reports whether role is one of the known account types.
func ValidRole(role string) bool {
	switch role {
	case RoleBuyer, RoleOwner, RoleAgent, RoleAdmin:
		return true
	}
	return false
}

// User models a registered account. PasswordHash never leaves the server;
// the json tag strips it from every response.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	Avatar       string    `json:"avatar,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// IsAdmin reports whether the account holds the admin role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// Identity is the authenticated caller, derived solely from a verified
// session token. It is the only value handlers may trust for authorization.
type Identity struct {
	UserID  string
	IsAdmin bool
}

// Owns reports whether the identity may mutate a resource owned by ownerID.
// Exact string equality; ids are fixed-format Mongo object ids.
func (i Identity) Owns(ownerID string) bool {
	return i.UserID == ownerID
}
