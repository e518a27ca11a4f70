package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ashuestate/realty-api/internal/core/domain"
)

// RequireAdmin enforces the isAdmin claim on the already-verified identity.
// The claim is trusted as of issuance time; a role change does not revoke
// live tokens. Must run after Auth.
func RequireAdmin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ident, ok := c.Get(IdentityKey).(domain.Identity)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "not authenticated")
			}
			if !ident.IsAdmin {
				return echo.NewHTTPError(http.StatusForbidden, "not authorized")
			}
			return next(c)
		}
	}
}
