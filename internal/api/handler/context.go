package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ashuestate/realty-api/internal/api/middleware"
	"github.com/ashuestate/realty-api/internal/core/domain"
)

// ctxIdentity extracts the identity injected by the Auth middleware.
// A missing identity means a protected route was registered without the
// middleware; reject with 401 rather than proceed unauthenticated.
func ctxIdentity(c echo.Context) (domain.Identity, error) {
	ident, ok := c.Get(middleware.IdentityKey).(domain.Identity)
	if !ok || ident.UserID == "" {
		return domain.Identity{}, echo.NewHTTPError(http.StatusUnauthorized, "not authenticated")
	}
	return ident, nil
}
