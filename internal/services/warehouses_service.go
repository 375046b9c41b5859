package services

import (
	"context"

	"supplysight/internal/apperrors"
	"supplysight/internal/models"
)

// WarehouseSource is the read surface the warehouse service needs from the
// store.
type WarehouseSource interface {
	Warehouses() []models.Warehouse
	WarehouseByCode(code string) (models.Warehouse, bool)
}

type WarehouseService interface {
	List(ctx context.Context) []models.Warehouse
	GetByCode(ctx context.Context, code string) (models.Warehouse, error)
}

type warehouseService struct {
	source WarehouseSource
}

func NewWarehouseService(source WarehouseSource) WarehouseService {
	return &warehouseService{source: source}
}

func (s *warehouseService) List(ctx context.Context) []models.Warehouse {
	return s.source.Warehouses()
}

func (s *warehouseService) GetByCode(ctx context.Context, code string) (models.Warehouse, error) {
	w, ok := s.source.WarehouseByCode(code)
	if !ok {
		return models.Warehouse{}, apperrors.NewNotFoundError("warehouse", code)
	}
	return w, nil
}
