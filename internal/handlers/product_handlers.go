package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"supplysight/internal/analytics"
	"supplysight/internal/models"
	"supplysight/internal/services"
)

// ProductHandlers serves the product query surface.
type ProductHandlers struct {
	queryService services.QueryService
}

func NewProductHandlers(queryService services.QueryService) *ProductHandlers {
	return &ProductHandlers{queryService: queryService}
}

// ListProductsRequest represents the query parameters of the products
// endpoint. "All" (or absence) on status/warehouse means no filtering.
type ListProductsRequest struct {
	Search    string `query:"search"`
	Status    string `query:"status"`
	Warehouse string `query:"warehouse"`
}

// ProductRow is a product record labelled with its derived status.
type ProductRow struct {
	models.Product
	Status models.Status `json:"status"`
}

// ListProducts handles filtered product queries and returns the rows with
// the aggregate summary of the filtered set.
func (h *ProductHandlers) ListProducts(c echo.Context) error {
	ctx := c.Request().Context()

	var req ListProductsRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid query parameters")
	}

	filter := models.ProductFilter{Search: req.Search}

	switch req.Status {
	case "", "All":
	case string(models.StatusHealthy), string(models.StatusLow), string(models.StatusCritical):
		filter.Status = models.StatusFilter(req.Status)
	default:
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid status filter")
	}

	if req.Warehouse != "" && req.Warehouse != "All" {
		filter.Warehouse = req.Warehouse
	}

	products := h.queryService.FindProducts(ctx, filter)

	rows := make([]ProductRow, len(products))
	for i, p := range products {
		rows[i] = ProductRow{Product: p, Status: analytics.ClassifyProduct(p)}
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"products": rows,
		"summary":  analytics.Summarize(products),
	})
}
