package services

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"supplysight/internal/apperrors"
	"supplysight/internal/models"
	"supplysight/internal/store"
)

// InventoryService is the only writer of the inventory store. Each mutation
// runs as one store transaction: its read-modify-write sequence holds the
// store's write lock, and nothing is published if any step fails.
type InventoryService interface {
	// UpdateDemand sets the demand forecast of the record with the compound
	// (id, warehouse) key.
	UpdateDemand(ctx context.Context, id, warehouse string, demand int) (models.Product, error)

	// UpdateDemandByID is the legacy single-key form. It only operates when
	// exactly one record exists for the id; once a transfer has split the
	// product across warehouses the call is ambiguous and is rejected.
	//
	// Deprecated: use UpdateDemand with an explicit warehouse code.
	UpdateDemandByID(ctx context.Context, id string, demand int) (models.Product, error)

	// TransferStock moves qty units of a product between warehouses,
	// creating the destination row if the product has none there. It returns
	// the mutated source record.
	TransferStock(ctx context.Context, id, from, to string, qty int) (models.Product, error)
}

type inventoryService struct {
	store  *store.Store
	logger *zap.Logger
}

func NewInventoryService(store *store.Store, logger *zap.Logger) InventoryService {
	return &inventoryService{store: store, logger: logger}
}

func (s *inventoryService) UpdateDemand(ctx context.Context, id, warehouse string, demand int) (models.Product, error) {
	var updated models.Product
	err := s.store.Update(func(tx *store.Tx) error {
		rec, ok := tx.Get(id, warehouse)
		if !ok {
			return apperrors.NewNotFoundError("product", id+"@"+warehouse)
		}
		tx.SetDemand(rec.RecordKey, demand)
		rec.Demand = demand
		updated = rec
		return nil
	})
	if err != nil {
		return models.Product{}, err
	}
	s.logger.Info("demand updated",
		zap.String("id", id),
		zap.String("warehouse", warehouse),
		zap.Int("demand", demand),
	)
	return updated, nil
}

func (s *inventoryService) UpdateDemandByID(ctx context.Context, id string, demand int) (models.Product, error) {
	var updated models.Product
	err := s.store.Update(func(tx *store.Tx) error {
		switch n := tx.Count(id); {
		case n == 0:
			return apperrors.NewNotFoundError("product", id)
		case n > 1:
			return apperrors.NewValidationError("ambiguous product identity",
				apperrors.ValidationDetail{Field: "warehouse", Message: "product exists in multiple warehouses; specify one"})
		}
		rec, _ := tx.First(id)
		tx.SetDemand(rec.RecordKey, demand)
		rec.Demand = demand
		updated = rec
		return nil
	})
	if err != nil {
		return models.Product{}, err
	}
	s.logger.Info("demand updated",
		zap.String("id", id),
		zap.String("warehouse", updated.Warehouse),
		zap.Int("demand", demand),
	)
	return updated, nil
}

func (s *inventoryService) TransferStock(ctx context.Context, id, from, to string, qty int) (models.Product, error) {
	if qty <= 0 {
		return models.Product{}, apperrors.NewValidationError("transfer quantity must be positive",
			apperrors.ValidationDetail{Field: "qty", Message: "must be greater than 0"})
	}
	if from == to {
		return models.Product{}, apperrors.NewValidationError("source and destination warehouses must differ",
			apperrors.ValidationDetail{Field: "to", Message: "must differ from source warehouse"})
	}

	var source models.Product
	err := s.store.Update(func(tx *store.Tx) error {
		src, ok := tx.Get(id, from)
		if !ok {
			return apperrors.NewNotFoundError("product", id+"@"+from)
		}
		if src.Stock < qty {
			return apperrors.NewInsufficientStockError(id, from, src.Stock, qty)
		}

		tx.SetStock(src.RecordKey, src.Stock-qty)

		if dest, ok := tx.Get(id, to); ok {
			tx.SetStock(dest.RecordKey, dest.Stock+qty)
		} else {
			// Fan-out: the product gains a second warehouse row sharing its
			// id. Demand is copied from the source, not reset.
			tx.Insert(models.Product{
				RecordKey: uuid.NewString(),
				ID:        src.ID,
				Name:      src.Name,
				SKU:       src.SKU,
				Warehouse: to,
				Stock:     qty,
				Demand:    src.Demand,
			})
		}

		src.Stock -= qty
		source = src
		return nil
	})
	if err != nil {
		return models.Product{}, err
	}
	s.logger.Info("stock transferred",
		zap.String("id", id),
		zap.String("from", from),
		zap.String("to", to),
		zap.Int("qty", qty),
	)
	return source, nil
}
