package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Ajayhariharan/activax/internal/api/metrics"
	"github.com/Ajayhariharan/activax/internal/api/middleware"
	"github.com/Ajayhariharan/activax/internal/core/domain"
	"github.com/Ajayhariharan/activax/internal/core/ports"
	"github.com/Ajayhariharan/activax/internal/core/service"
)

type AuthHandler struct {
	sessions ports.SessionService
	users    ports.UserService
}

func NewAuthHandler(sessions ports.SessionService, users ports.UserService) *AuthHandler {
	return &AuthHandler{sessions: sessions, users: users}
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type authResponse struct {
	Token string    `json:"token,omitempty"`
	User  *userView `json:"user,omitempty"`
}

// Login authenticates a user and opens the session.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  authResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	token, user, err := h.sessions.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return err
	}
	metrics.LoginsTotal.WithLabelValues("success").Inc()

	view := newUserView(*user)
	return c.JSON(http.StatusOK, authResponse{Token: token, User: &view})
}

// Register creates a new account through the public registration form.
//
// @Summary      Register a new user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      userRequest  true  "Registration details"
// @Success      201   {object}  authResponse
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req userRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.users.Register(c.Request().Context(), req.toInput())
	if err != nil {
		return err
	}
	metrics.UserMutationsTotal.WithLabelValues("register").Inc()

	view := newUserView(*user)
	return c.JSON(http.StatusCreated, authResponse{User: &view})
}

// Logout clears the session.
//
// @Summary      Logout
// @Tags         auth
// @Success      204  "session cleared"
// @Router       /logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	h.sessions.Logout(c.Request().Context())
	return c.NoContent(http.StatusNoContent)
}

type sectionsResponse struct {
	Role     string   `json:"role,omitempty"`
	Sections []string `json:"sections"`
}

// Sections returns the navigable sections for the caller's role, or the
// unauthenticated pair when no session is active.
//
// @Summary      Navigable sections for the current role
// @Tags         auth
// @Produce      json
// @Success      200  {object}  sectionsResponse
// @Router       /sections [get]
func (h *AuthHandler) Sections(c echo.Context) error {
	role := ""
	if user, ok := c.Get(middleware.CurrentUserKey).(domain.User); ok {
		role = user.Role
	}
	return c.JSON(http.StatusOK, sectionsResponse{
		Role:     role,
		Sections: service.SectionsForRole(role),
	})
}
