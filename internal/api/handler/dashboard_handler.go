package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Ajayhariharan/activax/internal/core/ports"
)

type DashboardHandler struct {
	dashboard ports.DashboardService
}

func NewDashboardHandler(dashboard ports.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboard: dashboard}
}

// Get returns the role-shaped dashboard aggregates for the caller.
//
// @Summary      Dashboard aggregates
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  ports.Dashboard
// @Router       /dashboard [get]
func (h *DashboardHandler) Get(c echo.Context) error {
	actor, err := ctxUser(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, h.dashboard.Build(actor))
}
