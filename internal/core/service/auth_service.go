package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/ashuestate/realty-api/internal/core/domain"
	"github.com/ashuestate/realty-api/internal/core/ports"
	"github.com/ashuestate/realty-api/internal/token"
)

// AuthService implements registration, login, logout, and session verify.
type AuthService struct {
	repo     ports.UserRepository
	tokens   *token.Manager
	denylist token.Denylist
	activity ports.ActivityRecorder
	logger   zerolog.Logger
}

func NewAuthService(repo ports.UserRepository, tokens *token.Manager, denylist token.Denylist, activity ports.ActivityRecorder, logger zerolog.Logger) *AuthService {
	return &AuthService{repo: repo, tokens: tokens, denylist: denylist, activity: activity, logger: logger}
}

// Register validates the input and persists a new user. No token is issued;
// the user logs in separately.
func (s *AuthService) Register(ctx context.Context, in ports.RegisterInput) (*domain.User, error) {
	if in.Username == "" || in.Email == "" || in.Password == "" {
		return nil, domain.ErrInvalidCredentials
	}
	if !domain.ValidRole(in.Role) || in.Role == domain.RoleAdmin {
		return nil, domain.ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: string(hash),
		Role:         in.Role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	s.activity.Record(domain.ActivityEvent{
		ActorID:   created.ID,
		Action:    domain.ActionUserRegistered,
		TargetID:  created.ID,
		Timestamp: now,
	})
	s.logger.Info().Str("username", created.Username).Str("role", created.Role).Msg("user registered")
	return created, nil
}

// Login checks the credentials and mints a session token. "No such user"
// and "wrong password" both surface as ErrInvalidCredentials so the
// response cannot be used for username enumeration.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, *domain.User, error) {
	if username == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	user, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	signed, err := s.tokens.Issue(domain.Identity{UserID: user.ID, IsAdmin: user.IsAdmin()})
	if err != nil {
		return "", nil, err
	}

	s.logger.Info().Str("username", user.Username).Msg("login")
	return signed, user, nil
}

// Logout revokes the session by denylisting the token's jti until its
// natural expiry. An absent or invalid token is ignored: the cookie is
// cleared either way, and logout must stay idempotent.
func (s *AuthService) Logout(ctx context.Context, rawToken string) error {
	if rawToken == "" {
		return nil
	}
	claims, err := s.tokens.Verify(rawToken)
	if err != nil || claims.TokenID == "" {
		return nil
	}
	if err := s.denylist.Revoke(ctx, claims.TokenID, claims.ExpiresAt); err != nil {
		s.logger.Warn().Err(err).Str("user_id", claims.UserID).Msg("failed to revoke session")
		return err
	}
	s.logger.Info().Str("user_id", claims.UserID).Msg("logout")
	return nil
}

// Verify returns the user record behind an authenticated session.
func (s *AuthService) Verify(ctx context.Context, userID string) (*domain.User, error) {
	return s.repo.FindByID(ctx, userID)
}
