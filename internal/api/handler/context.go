package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/carelink/call-center-api/internal/core/domain"
)

// ctxUser extracts the acting user injected by the Auth middleware. Its
// presence proves the middleware ran; a handler reached without it is a
// routing mistake and fails closed.
func ctxUser(c echo.Context) (domain.User, error) {
	user, ok := c.Get("user").(domain.User)
	if !ok {
		return domain.User{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return user, nil
}
