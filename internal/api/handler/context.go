package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Ajayhariharan/activax/internal/api/middleware"
	"github.com/Ajayhariharan/activax/internal/core/domain"
)

// ctxUser extracts the session user injected by the Auth middleware and
// fast-fails when the middleware did not run.
func ctxUser(c echo.Context) (domain.User, error) {
	user, ok := c.Get(middleware.CurrentUserKey).(domain.User)
	if !ok {
		return domain.User{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication")
	}
	return user, nil
}
