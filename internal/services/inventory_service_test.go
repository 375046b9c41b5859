package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"supplysight/internal/apperrors"
	"supplysight/internal/models"
	"supplysight/internal/store"
)

func newTestStore() *store.Store {
	return store.New(
		[]models.Product{
			{ID: "P-1", Name: "Hex Bolt", SKU: "HEX-1", Warehouse: "A", Stock: 100, Demand: 50},
			{ID: "P-2", Name: "Washer", SKU: "WSR-1", Warehouse: "B", Stock: 10, Demand: 20},
		},
		[]models.Warehouse{
			{Code: "A", Name: "Alpha"},
			{Code: "B", Name: "Beta"},
		},
	)
}

func newTestService(s *store.Store) InventoryService {
	return NewInventoryService(s, zap.NewNop())
}

func TestUpdateDemandByCompoundKey(t *testing.T) {
	s := newTestStore()
	svc := newTestService(s)

	updated, err := svc.UpdateDemand(context.Background(), "P-1", "A", 75)
	require.NoError(t, err)
	assert.Equal(t, 75, updated.Demand)
	assert.Equal(t, 100, updated.Stock)

	p, _ := s.ByIDAndWarehouse("P-1", "A")
	assert.Equal(t, 75, p.Demand)
}

func TestUpdateDemandUnknownPair(t *testing.T) {
	svc := newTestService(newTestStore())

	_, err := svc.UpdateDemand(context.Background(), "P-1", "B", 75)
	assert.True(t, apperrors.IsNotFound(err))
}

func TestUpdateDemandIsIdempotent(t *testing.T) {
	s := newTestStore()
	svc := newTestService(s)

	first, err := svc.UpdateDemand(context.Background(), "P-1", "A", 42)
	require.NoError(t, err)
	second, err := svc.UpdateDemand(context.Background(), "P-1", "A", 42)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	p, _ := s.ByIDAndWarehouse("P-1", "A")
	assert.Equal(t, 42, p.Demand)
}

func TestUpdateDemandByIDSingleRecord(t *testing.T) {
	s := newTestStore()
	svc := newTestService(s)

	updated, err := svc.UpdateDemandByID(context.Background(), "P-2", 5)
	require.NoError(t, err)
	assert.Equal(t, 5, updated.Demand)
	assert.Equal(t, "B", updated.Warehouse)
}

func TestUpdateDemandByIDUnknownProduct(t *testing.T) {
	svc := newTestService(newTestStore())

	_, err := svc.UpdateDemandByID(context.Background(), "P-999", 5)
	assert.True(t, apperrors.IsNotFound(err))
}

func TestUpdateDemandByIDAmbiguousAfterFanOut(t *testing.T) {
	s := newTestStore()
	svc := newTestService(s)

	_, err := svc.TransferStock(context.Background(), "P-1", "A", "B", 30)
	require.NoError(t, err)

	_, err = svc.UpdateDemandByID(context.Background(), "P-1", 99)
	ve, ok := apperrors.IsValidationError(err)
	require.True(t, ok)
	assert.Equal(t, "ambiguous product identity", ve.Message)

	// Neither row was touched.
	src, _ := s.ByIDAndWarehouse("P-1", "A")
	dst, _ := s.ByIDAndWarehouse("P-1", "B")
	assert.Equal(t, 50, src.Demand)
	assert.Equal(t, 50, dst.Demand)
}

func TestTransferStockBetweenExistingRows(t *testing.T) {
	s := store.New(
		[]models.Product{
			{ID: "P-1", Warehouse: "A", Stock: 100, Demand: 50},
			{RecordKey: "P-1-b", ID: "P-1", Warehouse: "B", Stock: 40, Demand: 10},
		},
		[]models.Warehouse{{Code: "A"}, {Code: "B"}},
	)
	svc := newTestService(s)

	source, err := svc.TransferStock(context.Background(), "P-1", "A", "B", 25)
	require.NoError(t, err)
	assert.Equal(t, 75, source.Stock)
	assert.Equal(t, 50, source.Demand)

	dst, _ := s.ByIDAndWarehouse("P-1", "B")
	assert.Equal(t, 65, dst.Stock)

	// Total stock across the two warehouses is conserved.
	assert.Equal(t, 140, source.Stock+dst.Stock)
	// No extra row was created.
	assert.Equal(t, 2, s.CountByID("P-1"))
}

func TestTransferStockCreatesDestinationRow(t *testing.T) {
	s := newTestStore()
	svc := newTestService(s)

	source, err := svc.TransferStock(context.Background(), "P-1", "A", "B", 30)
	require.NoError(t, err)
	assert.Equal(t, 70, source.Stock)
	assert.Equal(t, 50, source.Demand)

	dst, ok := s.ByIDAndWarehouse("P-1", "B")
	require.True(t, ok)
	assert.Equal(t, 30, dst.Stock)
	assert.Equal(t, 50, dst.Demand) // demand copied from the source
	assert.Equal(t, "Hex Bolt", dst.Name)
	assert.Equal(t, "HEX-1", dst.SKU)
	assert.Equal(t, "P-1", dst.ID)
	assert.NotEqual(t, source.RecordKey, dst.RecordKey)
}

func TestTransferStockInsufficientLeavesStoreUnchanged(t *testing.T) {
	s := newTestStore()
	svc := newTestService(s)

	_, err := svc.TransferStock(context.Background(), "P-1", "A", "B", 500)
	assert.True(t, apperrors.IsInsufficientStock(err))

	src, _ := s.ByIDAndWarehouse("P-1", "A")
	assert.Equal(t, 100, src.Stock)
	_, ok := s.ByIDAndWarehouse("P-1", "B")
	assert.False(t, ok)
}

func TestTransferStockUnknownSource(t *testing.T) {
	svc := newTestService(newTestStore())

	_, err := svc.TransferStock(context.Background(), "P-1", "B", "A", 10)
	assert.True(t, apperrors.IsNotFound(err))
}

func TestTransferStockRejectsBadInput(t *testing.T) {
	svc := newTestService(newTestStore())

	_, err := svc.TransferStock(context.Background(), "P-1", "A", "B", 0)
	_, ok := apperrors.IsValidationError(err)
	assert.True(t, ok)

	_, err = svc.TransferStock(context.Background(), "P-1", "A", "B", -5)
	_, ok = apperrors.IsValidationError(err)
	assert.True(t, ok)

	_, err = svc.TransferStock(context.Background(), "P-1", "A", "A", 10)
	_, ok = apperrors.IsValidationError(err)
	assert.True(t, ok)
}

func TestTransferThenSearchFindsBothRows(t *testing.T) {
	s := newTestStore()
	svc := newTestService(s)

	source, err := svc.TransferStock(context.Background(), "P-1", "A", "B", 30)
	require.NoError(t, err)
	assert.Equal(t, 70, source.Stock)
	assert.Equal(t, 50, source.Demand)

	result := FilterProducts(s.Products(), models.ProductFilter{Search: "P-1"})
	var ids []string
	for _, p := range result {
		if p.ID == "P-1" {
			ids = append(ids, p.Warehouse)
		}
	}
	assert.Equal(t, []string{"A", "B"}, ids)
}
