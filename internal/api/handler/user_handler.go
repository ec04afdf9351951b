package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/Ajayhariharan/activax/internal/api/metrics"
	"github.com/Ajayhariharan/activax/internal/core/domain"
	"github.com/Ajayhariharan/activax/internal/core/ports"
)

// UserHandler serves the registered-users surface: role-scoped listings and
// the create/update/delete actions.
type UserHandler struct {
	users ports.UserService
}

func NewUserHandler(users ports.UserService) *UserHandler {
	return &UserHandler{users: users}
}

type userListResponse struct {
	Tab   string     `json:"tab"`
	Items []userView `json:"items"`
}

// List returns users visible to the caller. Admins (and Managers for the
// managers tab) may select a tab: admins, managers (with team sizes) or
// users (optionally filtered by ?manager=all|unassigned|<id>, with resolved
// manager names). Without a tab the plain visibility subset is returned.
//
// @Summary      List visible users
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        tab      query     string  false  "admins | managers | users"
// @Param        manager  query     string  false  "all | unassigned | manager id"
// @Success      200      {object}  userListResponse
// @Failure      403      {object}  map[string]string
// @Router       /users [get]
func (h *UserHandler) List(c echo.Context) error {
	actor, err := ctxUser(c)
	if err != nil {
		return err
	}

	tab := c.QueryParam("tab")
	switch tab {
	case "admins":
		if actor.Role != domain.RoleAdmin {
			return domain.ErrForbidden
		}
		var admins []userView
		for _, u := range h.users.Visible(actor) {
			if u.Role == domain.RoleAdmin {
				admins = append(admins, newUserView(u))
			}
		}
		return c.JSON(http.StatusOK, userListResponse{Tab: tab, Items: admins})

	case "managers":
		summaries, err := h.users.Managers(actor)
		if err != nil {
			return err
		}
		items := make([]userView, 0, len(summaries))
		for _, m := range summaries {
			v := newUserView(m.User)
			size := m.TeamSize
			v.TeamSize = &size
			items = append(items, v)
		}
		return c.JSON(http.StatusOK, userListResponse{Tab: tab, Items: items})

	case "users":
		scope, ok := ports.ParseManagerScope(c.QueryParam("manager"))
		if !ok {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid manager filter")
		}
		rows, err := h.users.UsersTab(actor, scope)
		if err != nil {
			return err
		}
		items := make([]userView, 0, len(rows))
		for _, r := range rows {
			v := newUserView(r.User)
			v.ManagerName = r.ManagerName
			items = append(items, v)
		}
		return c.JSON(http.StatusOK, userListResponse{Tab: tab, Items: items})

	case "":
		return c.JSON(http.StatusOK, userListResponse{Items: newUserViews(h.users.Visible(actor))})
	}

	return echo.NewHTTPError(http.StatusBadRequest, "unknown tab")
}

// Create adds a user on behalf of an Admin or Manager.
//
// @Summary      Create a user
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      userRequest  true  "User details"
// @Success      201   {object}  userView
// @Failure      403   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /users [post]
func (h *UserHandler) Create(c echo.Context) error {
	actor, err := ctxUser(c)
	if err != nil {
		return err
	}

	var req userRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.users.Create(c.Request().Context(), actor, req.toInput())
	if err != nil {
		return err
	}
	metrics.UserMutationsTotal.WithLabelValues("create").Inc()
	return c.JSON(http.StatusCreated, newUserView(*user))
}

// Update edits a user record within the caller's mutation scope.
//
// @Summary      Update a user
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int          true  "User id"
// @Param        body  body      userRequest  true  "User details"
// @Success      200   {object}  userView
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /users/{id} [put]
func (h *UserHandler) Update(c echo.Context) error {
	actor, err := ctxUser(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req userRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.users.Update(c.Request().Context(), actor, id, req.toInput())
	if err != nil {
		return err
	}
	metrics.UserMutationsTotal.WithLabelValues("update").Inc()
	return c.JSON(http.StatusOK, newUserView(*user))
}

// Delete removes a user record. Admin only.
//
// @Summary      Delete a user
// @Tags         users
// @Security     BearerAuth
// @Param        id  path  int  true  "User id"
// @Success      204  "user removed"
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /users/{id} [delete]
func (h *UserHandler) Delete(c echo.Context) error {
	actor, err := ctxUser(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.users.Delete(c.Request().Context(), actor, id); err != nil {
		return err
	}
	metrics.UserMutationsTotal.WithLabelValues("delete").Inc()
	return c.NoContent(http.StatusNoContent)
}

type managerOption struct {
	ID       int64  `json:"id"`
	FullName string `json:"fullName"`
}

// Managers serves the manager roster. Authenticated Admins and Managers get
// the full summaries with team sizes; anyone else (the registration form's
// manager picker) gets id and name only.
//
// @Summary      List managers
// @Tags         users
// @Produce      json
// @Success      200  {array}  managerOption
// @Router       /managers [get]
func (h *UserHandler) Managers(c echo.Context) error {
	if actor, err := ctxUser(c); err == nil &&
		(actor.Role == domain.RoleAdmin || actor.Role == domain.RoleManager) {
		summaries, err := h.users.Managers(actor)
		if err != nil {
			return err
		}
		items := make([]userView, 0, len(summaries))
		for _, m := range summaries {
			v := newUserView(m.User)
			size := m.TeamSize
			v.TeamSize = &size
			items = append(items, v)
		}
		return c.JSON(http.StatusOK, items)
	}

	options := make([]managerOption, 0)
	for _, m := range h.users.ManagerOptions() {
		options = append(options, managerOption{ID: m.ID, FullName: m.FullName})
	}
	return c.JSON(http.StatusOK, options)
}

func pathID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	return id, nil
}
