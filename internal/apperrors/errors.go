package apperrors

import (
	"errors"
	"fmt"
)

// NotFoundError reports that a referenced product id, or (id, warehouse)
// pair, does not exist in the store.
type NotFoundError struct {
	Resource string
	Key      string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Resource, e.Key)
}

func NewNotFoundError(resource, key string) *NotFoundError {
	return &NotFoundError{Resource: resource, Key: key}
}

func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

// InsufficientStockError reports a transfer that exceeds the stock available
// at the source warehouse.
type InsufficientStockError struct {
	ID        string
	Warehouse string
	Available int
	Requested int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for product %q at %s: available %d, requested %d",
		e.ID, e.Warehouse, e.Available, e.Requested)
}

func NewInsufficientStockError(id, warehouse string, available, requested int) *InsufficientStockError {
	return &InsufficientStockError{ID: id, Warehouse: warehouse, Available: available, Requested: requested}
}

func IsInsufficientStock(err error) bool {
	var is *InsufficientStockError
	return errors.As(err, &is)
}

// ValidationDetail points at the offending input field.
type ValidationDetail struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError reports caller-supplied input that violates the numeric or
// referential constraints of a mutation.
type ValidationError struct {
	Message string
	Details []ValidationDetail
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidationError(message string, details ...ValidationDetail) *ValidationError {
	return &ValidationError{Message: message, Details: details}
}

func IsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
