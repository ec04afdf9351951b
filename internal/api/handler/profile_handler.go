package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Ajayhariharan/activax/internal/api/metrics"
	"github.com/Ajayhariharan/activax/internal/core/ports"
)

// ProfileHandler serves the self-service profile surface: viewing the own
// record, changing the password and replacing the avatar.
type ProfileHandler struct {
	users ports.UserService
}

func NewProfileHandler(users ports.UserService) *ProfileHandler {
	return &ProfileHandler{users: users}
}

// Get returns the caller's own record.
//
// @Summary      Current profile
// @Tags         profile
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  userView
// @Router       /profile [get]
func (h *ProfileHandler) Get(c echo.Context) error {
	actor, err := ctxUser(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, newUserView(actor))
}

type changePasswordRequest struct {
	OldPassword     string `json:"oldPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required,min=6"`
	ConfirmPassword string `json:"confirmPassword" validate:"required,eqfield=NewPassword"`
}

// ChangePassword rotates the caller's password. The change is reflected in
// the live session without re-login.
//
// @Summary      Change own password
// @Tags         profile
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      changePasswordRequest  true  "Old and new password"
// @Success      200   {object}  userView
// @Failure      422   {object}  map[string]string
// @Router       /profile/password [put]
func (h *ProfileHandler) ChangePassword(c echo.Context) error {
	actor, err := ctxUser(c)
	if err != nil {
		return err
	}

	var req changePasswordRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.users.ChangePassword(c.Request().Context(), actor, ports.ChangePasswordInput{
		OldPassword:     req.OldPassword,
		NewPassword:     req.NewPassword,
		ConfirmPassword: req.ConfirmPassword,
	})
	if err != nil {
		return err
	}
	metrics.UserMutationsTotal.WithLabelValues("password").Inc()
	return c.JSON(http.StatusOK, newUserView(*user))
}

type photoRequest struct {
	Image string `json:"image" validate:"required"`
}

// SetPhoto replaces the caller's avatar with a checked data-URI payload.
//
// @Summary      Replace own avatar
// @Tags         profile
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      photoRequest  true  "Base64 image data URI"
// @Success      200   {object}  userView
// @Failure      400   {object}  map[string]string
// @Router       /profile/photo [put]
func (h *ProfileHandler) SetPhoto(c echo.Context) error {
	actor, err := ctxUser(c)
	if err != nil {
		return err
	}

	var req photoRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.users.SetProfileImage(c.Request().Context(), actor, req.Image)
	if err != nil {
		return err
	}
	metrics.UserMutationsTotal.WithLabelValues("photo").Inc()
	return c.JSON(http.StatusOK, newUserView(*user))
}
