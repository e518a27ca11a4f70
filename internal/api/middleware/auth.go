package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/ashuestate/realty-api/internal/api/metrics"
	"github.com/ashuestate/realty-api/internal/token"
)

// SessionCookieName is the cookie the session token travels in.
const SessionCookieName = "token"

// IdentityKey is the echo.Context key the verified identity is stored under.
// Handlers read it through handler.ctxIdentity, never directly.
const IdentityKey = "identity"

// Auth validates the session cookie and injects the caller identity into
// the context. A missing cookie is 401; a present but invalid, expired, or
// revoked token is 403. The two messages are fixed and carry no detail
// about why verification failed.
func Auth(tokens *token.Manager, denylist token.Denylist, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(SessionCookieName)
			if err != nil || cookie.Value == "" {
				metrics.AuthFailuresTotal.WithLabelValues("missing_cookie").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "not authenticated")
			}

			claims, err := tokens.Verify(cookie.Value)
			if err != nil {
				metrics.AuthFailuresTotal.WithLabelValues("invalid_token").Inc()
				return echo.NewHTTPError(http.StatusForbidden, "token is not valid")
			}

			if claims.TokenID != "" {
				revoked, err := denylist.IsRevoked(c.Request().Context(), claims.TokenID)
				if err != nil {
					// Denylist unavailable: fail open. Revocation is a
					// hardening on top of expiry, not the primary control.
					log.Warn().Err(err).Msg("denylist check failed, accepting token")
				} else if revoked {
					metrics.AuthFailuresTotal.WithLabelValues("revoked").Inc()
					return echo.NewHTTPError(http.StatusForbidden, "token is not valid")
				}
			}

			c.Set(IdentityKey, claims.Identity())
			return next(c)
		}
	}
}
