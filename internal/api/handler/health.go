package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/Ajayhariharan/activax/internal/infrastructure/db/sqlite"
)

type HealthHandler struct{}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

// Liveness reports whether the process is alive.
//
// @Summary      Liveness probe
// @Tags         health
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *HealthHandler) Liveness(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

type HealthDependenciesHandler struct {
	db *sqlite.Store
}

func NewHealthDependenciesHandler(db *sqlite.Store) *HealthDependenciesHandler {
	return &HealthDependenciesHandler{db: db}
}

// Readiness reports whether the durable store is reachable.
//
// @Summary      Readiness probe
// @Tags         health
// @Produce      json
// @Success      200  {object}  map[string]string
// @Failure      503  {object}  map[string]string
// @Router       /health/ready [get]
func (h *HealthDependenciesHandler) Readiness(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 2*time.Second)
	defer cancel()

	if err := h.db.Ping(ctx); err != nil {
		return c.JSON(http.StatusServiceUnavailable, map[string]string{
			"status": "degraded",
			"store":  err.Error(),
		})
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
