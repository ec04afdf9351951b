package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Ajayhariharan/activax/internal/api/metrics"
	"github.com/Ajayhariharan/activax/internal/core/domain"
	"github.com/Ajayhariharan/activax/internal/core/ports"
)

// PermissionHandler serves the Manager-only user-permissions surface: the
// team table and the draft lifecycle (begin, toggle, commit, discard).
type PermissionHandler struct {
	permissions ports.PermissionService
}

func NewPermissionHandler(permissions ports.PermissionService) *PermissionHandler {
	return &PermissionHandler{permissions: permissions}
}

type teamPermissionsView struct {
	User      userView            `json:"user"`
	Committed domain.Permissions  `json:"committed"`
	Draft     *domain.Permissions `json:"draft,omitempty"`
}

// Team lists the caller's team with committed matrices and open drafts.
//
// @Summary      Team permission table
// @Tags         permissions
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   teamPermissionsView
// @Failure      403  {object}  map[string]string
// @Router       /user-permissions [get]
func (h *PermissionHandler) Team(c echo.Context) error {
	actor, err := ctxUser(c)
	if err != nil {
		return err
	}

	rows, err := h.permissions.Team(actor)
	if err != nil {
		return err
	}
	out := make([]teamPermissionsView, 0, len(rows))
	for _, r := range rows {
		out = append(out, teamPermissionsView{
			User:      newUserView(r.User),
			Committed: r.Committed,
			Draft:     r.Draft,
		})
	}
	return c.JSON(http.StatusOK, out)
}

// Begin opens a draft for a team member, seeded from the committed matrix.
//
// @Summary      Begin a permission draft
// @Tags         permissions
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  int  true  "Target user id"
// @Success      200  {object}  domain.Permissions
// @Failure      403  {object}  map[string]string
// @Router       /user-permissions/{id}/draft [post]
func (h *PermissionHandler) Begin(c echo.Context) error {
	actor, err := ctxUser(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}

	draft, err := h.permissions.Begin(actor, id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, draft)
}

type toggleRequest struct {
	Field string `json:"field" validate:"required,oneof=view add edit delete"`
	Value bool   `json:"value"`
}

// Toggle applies a single-field transition to the draft.
//
// @Summary      Toggle one permission field in the draft
// @Tags         permissions
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int            true  "Target user id"
// @Param        body  body      toggleRequest  true  "Field and value"
// @Success      200   {object}  domain.Permissions
// @Failure      409   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /user-permissions/{id}/toggle [post]
func (h *PermissionHandler) Toggle(c echo.Context) error {
	actor, err := ctxUser(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req toggleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	next, err := h.permissions.Toggle(actor, id, req.Field, req.Value)
	if err != nil {
		if err == domain.ErrViewLocked {
			metrics.AuthzDenialsTotal.WithLabelValues("view_locked").Inc()
		}
		return err
	}
	return c.JSON(http.StatusOK, next)
}

// Commit persists the draft to the user record.
//
// @Summary      Commit a permission draft
// @Tags         permissions
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  int  true  "Target user id"
// @Success      200  {object}  userView
// @Failure      409  {object}  map[string]string
// @Router       /user-permissions/{id}/commit [post]
func (h *PermissionHandler) Commit(c echo.Context) error {
	actor, err := ctxUser(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}

	user, err := h.permissions.Commit(c.Request().Context(), actor, id)
	if err != nil {
		return err
	}
	metrics.PermissionCommitsTotal.Inc()
	return c.JSON(http.StatusOK, newUserView(*user))
}

// Discard drops the draft, leaving the committed matrix intact.
//
// @Summary      Discard a permission draft
// @Tags         permissions
// @Security     BearerAuth
// @Param        id  path  int  true  "Target user id"
// @Success      204  "draft discarded"
// @Router       /user-permissions/{id}/draft [delete]
func (h *PermissionHandler) Discard(c echo.Context) error {
	actor, err := ctxUser(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.permissions.Discard(actor, id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
