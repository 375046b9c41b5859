package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"supplysight/internal/services"
)

type WarehouseHandlers struct {
	warehouseService services.WarehouseService
}

func NewWarehouseHandlers(warehouseService services.WarehouseService) *WarehouseHandlers {
	return &WarehouseHandlers{warehouseService: warehouseService}
}

// ListWarehouses handles GET /v1/warehouses.
func (h *WarehouseHandlers) ListWarehouses(c echo.Context) error {
	warehouses := h.warehouseService.List(c.Request().Context())
	return c.JSON(http.StatusOK, map[string]interface{}{
		"warehouses": warehouses,
	})
}
