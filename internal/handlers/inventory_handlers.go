package handlers

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"supplysight/internal/analytics"
	"supplysight/internal/services"
)

// InventoryHandlers serves the two inventory mutations. The input checks
// here are the validation layer: malformed input is rejected before it
// reaches the mutation engine.
type InventoryHandlers struct {
	inventoryService services.InventoryService
	warehouseService services.WarehouseService
}

func NewInventoryHandlers(inventoryService services.InventoryService, warehouseService services.WarehouseService) *InventoryHandlers {
	return &InventoryHandlers{
		inventoryService: inventoryService,
		warehouseService: warehouseService,
	}
}

// UpdateDemandRequest represents the demand update payload. Warehouse is
// optional for backward compatibility; without it the update only succeeds
// while the product lives in a single warehouse.
type UpdateDemandRequest struct {
	Demand    int    `json:"demand"`
	Warehouse string `json:"warehouse,omitempty"`
}

// UpdateDemand handles PUT /v1/products/:id/demand.
func (h *InventoryHandlers) UpdateDemand(c echo.Context) error {
	ctx := c.Request().Context()

	id := c.Param("id")
	if id == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "Product ID is required")
	}

	var req UpdateDemandRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}
	if req.Demand < 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "Demand cannot be negative")
	}

	var (
		updated interface{}
		err     error
	)
	if req.Warehouse != "" {
		updated, err = h.applyDemand(ctx, id, req.Warehouse, req.Demand)
	} else {
		updated, err = h.applyLegacyDemand(ctx, id, req.Demand)
	}
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, updated)
}

func (h *InventoryHandlers) applyDemand(ctx context.Context, id, warehouse string, demand int) (ProductRow, error) {
	p, err := h.inventoryService.UpdateDemand(ctx, id, warehouse, demand)
	if err != nil {
		return ProductRow{}, err
	}
	return ProductRow{Product: p, Status: analytics.ClassifyProduct(p)}, nil
}

func (h *InventoryHandlers) applyLegacyDemand(ctx context.Context, id string, demand int) (ProductRow, error) {
	p, err := h.inventoryService.UpdateDemandByID(ctx, id, demand)
	if err != nil {
		return ProductRow{}, err
	}
	return ProductRow{Product: p, Status: analytics.ClassifyProduct(p)}, nil
}

// TransferStockRequest represents the stock transfer payload.
type TransferStockRequest struct {
	From string `json:"from"`
	To   string `json:"to"`
	Qty  int    `json:"qty"`
}

// TransferStock handles POST /v1/products/:id/transfers.
func (h *InventoryHandlers) TransferStock(c echo.Context) error {
	ctx := c.Request().Context()

	id := c.Param("id")
	if id == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "Product ID is required")
	}

	var req TransferStockRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}
	if req.From == "" || req.To == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "Source and destination warehouses are required")
	}
	if req.Qty <= 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "Quantity must be positive")
	}
	if _, err := h.warehouseService.GetByCode(ctx, req.To); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Unknown destination warehouse")
	}

	p, err := h.inventoryService.TransferStock(ctx, id, req.From, req.To, req.Qty)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, ProductRow{Product: p, Status: analytics.ClassifyProduct(p)})
}
