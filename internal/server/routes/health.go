package routes

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
)

// Pinger reports store reachability.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthRoutes registers the liveness and readiness checks.
type HealthRoutes struct {
	store Pinger
}

func NewHealthRoutes(store Pinger) *HealthRoutes {
	return &HealthRoutes{store: store}
}

// RegisterRoutes registers health endpoints.
func (h *HealthRoutes) RegisterRoutes(s *echo.Echo) {
	s.GET("/healthz", h.handleHealth)
}

func (h *HealthRoutes) handleHealth(c echo.Context) error {
	if h.store != nil {
		if err := h.store.Ping(c.Request().Context()); err != nil {
			return c.JSON(http.StatusServiceUnavailable, map[string]string{"status": "unavailable", "error": err.Error()})
		}
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
