package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"supplysight/internal/apperrors"
)

// httpError maps domain errors onto HTTP status codes. Validation and
// logical-state failures are the caller's to correct; nothing is retried
// server-side.
func httpError(err error) error {
	if ve, ok := apperrors.IsValidationError(err); ok {
		if len(ve.Details) > 0 {
			return echo.NewHTTPError(http.StatusBadRequest, map[string]interface{}{
				"message": ve.Message,
				"details": ve.Details,
			})
		}
		return echo.NewHTTPError(http.StatusBadRequest, ve.Message)
	}
	if apperrors.IsNotFound(err) {
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	}
	if apperrors.IsInsufficientStock(err) {
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	}
	return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
}
