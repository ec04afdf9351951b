package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/Ajayhariharan/activax/internal/core/ports"
)

// CurrentUserKey is the echo context key holding the authenticated user.
const CurrentUserKey = "current_user"

// Auth resolves the bearer token to the live session and injects the user
// into the context. Unauthenticated access to a guarded page is resolved by
// redirecting to /login, not by an error state.
func Auth(sessions ports.SessionService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := bearerToken(c)
			if token == "" {
				return c.Redirect(http.StatusFound, "/login")
			}

			user, err := sessions.Authenticate(c.Request().Context(), token)
			if err != nil {
				return c.Redirect(http.StatusFound, "/login")
			}

			c.Set(CurrentUserKey, *user)
			return next(c)
		}
	}
}

// OptionalAuth injects the user when a valid token is present but lets the
// request through either way. Used by routes that render both the
// authenticated and unauthenticated shape, like /sections.
func OptionalAuth(sessions ports.SessionService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if token := bearerToken(c); token != "" {
				if user, err := sessions.Authenticate(c.Request().Context(), token); err == nil {
					c.Set(CurrentUserKey, *user)
				}
			}
			return next(c)
		}
	}
}

func bearerToken(c echo.Context) string {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return ""
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return ""
	}
	return parts[1]
}
