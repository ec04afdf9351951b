package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/Ajayhariharan/activax/internal/api/metrics"
	"github.com/Ajayhariharan/activax/internal/core/domain"
	"github.com/Ajayhariharan/activax/internal/core/ports"
)

// ActivityHandler serves both journal surfaces: the owner's my-activity
// operations and the Admin/Manager user-activity oversight view.
type ActivityHandler struct {
	activities ports.ActivityService
}

func NewActivityHandler(activities ports.ActivityService) *ActivityHandler {
	return &ActivityHandler{activities: activities}
}

type activityRequest struct {
	Date string `json:"date,omitempty"`
	Text string `json:"text" validate:"required"`
}

type updateActivityRequest struct {
	Date string `json:"date,omitempty"`
	Text string `json:"text,omitempty"`
}

type activityView struct {
	ID        int64  `json:"id"`
	UserID    int64  `json:"userId"`
	Date      string `json:"date"`
	Text      string `json:"text"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt,omitempty"`
}

func newActivityView(a domain.Activity) activityView {
	v := activityView{
		ID:        a.ID,
		UserID:    a.UserID,
		Date:      a.Date,
		Text:      a.Text,
		CreatedAt: a.CreatedAt.Format(time.RFC3339),
	}
	if a.UpdatedAt != nil {
		v.UpdatedAt = a.UpdatedAt.Format(time.RFC3339)
	}
	return v
}

func newActivityViews(activities []domain.Activity) []activityView {
	out := make([]activityView, 0, len(activities))
	for _, a := range activities {
		out = append(out, newActivityView(a))
	}
	return out
}

// Mine lists the caller's own activities, newest first.
//
// @Summary      List own activities
// @Tags         activities
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   activityView
// @Failure      403  {object}  map[string]string
// @Router       /my-activity [get]
func (h *ActivityHandler) Mine(c echo.Context) error {
	actor, err := ctxUser(c)
	if err != nil {
		return err
	}
	items, err := h.activities.Mine(actor)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, newActivityViews(items))
}

// Add creates an activity owned by the caller. Requires the add grant.
//
// @Summary      Add an activity
// @Tags         activities
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      activityRequest  true  "Activity (date defaults to today)"
// @Success      201   {object}  activityView
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Router       /my-activity [post]
func (h *ActivityHandler) Add(c echo.Context) error {
	actor, err := ctxUser(c)
	if err != nil {
		return err
	}

	var req activityRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	created, err := h.activities.Add(c.Request().Context(), actor, req.Date, req.Text)
	if err != nil {
		return err
	}
	metrics.ActivityMutationsTotal.WithLabelValues("add").Inc()
	return c.JSON(http.StatusCreated, newActivityView(*created))
}

// Update edits an activity within the caller's mutation scope. Owners need
// the edit grant; Admin and Manager edit within their visible scope.
//
// @Summary      Update an activity
// @Tags         activities
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int                    true  "Activity id"
// @Param        body  body      updateActivityRequest  true  "Fields to change"
// @Success      200   {object}  activityView
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /my-activity/{id} [put]
func (h *ActivityHandler) Update(c echo.Context) error {
	actor, err := ctxUser(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req updateActivityRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	updated, err := h.activities.Update(c.Request().Context(), actor, id, req.Date, req.Text)
	if err != nil {
		return err
	}
	metrics.ActivityMutationsTotal.WithLabelValues("update").Inc()
	return c.JSON(http.StatusOK, newActivityView(*updated))
}

// Delete removes an activity within the caller's mutation scope.
//
// @Summary      Delete an activity
// @Tags         activities
// @Security     BearerAuth
// @Param        id  path  int  true  "Activity id"
// @Success      204  "activity removed"
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /my-activity/{id} [delete]
func (h *ActivityHandler) Delete(c echo.Context) error {
	actor, err := ctxUser(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.activities.Remove(c.Request().Context(), actor, id); err != nil {
		return err
	}
	metrics.ActivityMutationsTotal.WithLabelValues("delete").Inc()
	return c.NoContent(http.StatusNoContent)
}

// Browse is the Admin/Manager oversight listing, filtered by manager scope
// (?manager=all|unassigned|<id>), a specific user (?user=<id>) and an exact
// date (?date=YYYY-MM-DD). A Manager's scope is pinned to their own team.
//
// @Summary      Browse user activities
// @Tags         activities
// @Produce      json
// @Security     BearerAuth
// @Param        manager  query     string  false  "all | unassigned | manager id"
// @Param        user     query     int     false  "owning user id"
// @Param        date     query     string  false  "exact date YYYY-MM-DD"
// @Success      200      {array}   activityView
// @Failure      403      {object}  map[string]string
// @Router       /user-activity [get]
func (h *ActivityHandler) Browse(c echo.Context) error {
	actor, err := ctxUser(c)
	if err != nil {
		return err
	}

	scope, ok := ports.ParseManagerScope(c.QueryParam("manager"))
	if !ok {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid manager filter")
	}

	var userID int64
	if raw := c.QueryParam("user"); raw != "" && raw != "all" {
		userID, err = strconv.ParseInt(raw, 10, 64)
		if err != nil || userID <= 0 {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid user filter")
		}
	}

	date := c.QueryParam("date")
	if date != "" && !domain.ValidDate(date) {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid date filter")
	}

	items, err := h.activities.Browse(actor, ports.BrowseActivitiesInput{
		Scope:  scope,
		UserID: userID,
		Date:   date,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, newActivityViews(items))
}
