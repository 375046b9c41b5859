package handlers

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"supplysight/internal/store"
)

// HealthHandlers handles liveness and readiness endpoints.
type HealthHandlers struct {
	store   *store.Store
	version string
}

func NewHealthHandlers(store *store.Store, version string) *HealthHandlers {
	return &HealthHandlers{store: store, version: version}
}

// HealthStatus represents the overall health status.
type HealthStatus struct {
	Status     string `json:"status"`
	Timestamp  string `json:"timestamp"`
	Version    string `json:"version"`
	Products   int    `json:"products"`
	Warehouses int    `json:"warehouses"`
}

// HealthCheck reports process health and store population.
func (h *HealthHandlers) HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, &HealthStatus{
		Status:     "healthy",
		Timestamp:  time.Now().UTC().Format(time.RFC3339),
		Version:    h.version,
		Products:   len(h.store.Products()),
		Warehouses: len(h.store.Warehouses()),
	})
}
