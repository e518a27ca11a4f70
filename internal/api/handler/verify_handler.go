package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// VerifyHandler exposes the auth probe endpoints used by the frontend to
// check session state without fetching the full user object.
type VerifyHandler struct{}

func NewVerifyHandler() *VerifyHandler {
	return &VerifyHandler{}
}

type probeResponse struct {
	Message string `json:"message"`
	UserID  string `json:"userId"`
}

// LoggedIn handles GET /api/verify/user. Reaching the handler proves the
// Auth middleware accepted the session.
//
// @Summary      Probe for a valid session
// @Tags         verify
// @Produce      json
// @Success      200  {object}  probeResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /api/verify/user [get]
func (h *VerifyHandler) LoggedIn(c echo.Context) error {
	ident, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, probeResponse{Message: "you are authenticated", UserID: ident.UserID})
}

// Admin handles GET /api/verify/admin. Runs behind Auth and RequireAdmin.
//
// @Summary      Probe for a valid admin session
// @Tags         verify
// @Produce      json
// @Success      200  {object}  probeResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /api/verify/admin [get]
func (h *VerifyHandler) Admin(c echo.Context) error {
	ident, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, probeResponse{Message: "you are authenticated as admin", UserID: ident.UserID})
}
