package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"supplysight/internal/analytics"
)

type KPIHandlers struct {
	analyticsService *analytics.Service
}

func NewKPIHandlers(analyticsService *analytics.Service) *KPIHandlers {
	return &KPIHandlers{analyticsService: analyticsService}
}

// rangeDays maps the wire range enum onto series lengths.
var rangeDays = map[string]int{
	"7d":  7,
	"14d": 14,
	"30d": 30,
}

// ListKPIs handles GET /v1/kpis?range=7d|14d|30d. The series runs oldest to
// newest and ends today.
func (h *KPIHandlers) ListKPIs(c echo.Context) error {
	r := c.QueryParam("range")
	if r == "" {
		r = "30d"
	}
	days, ok := rangeDays[r]
	if !ok {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid range: must be 7d, 14d, or 30d")
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"range": r,
		"kpis":  h.analyticsService.TrendSeries(days),
	})
}
