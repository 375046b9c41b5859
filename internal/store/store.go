package store

import (
	"sync"

	"supplysight/internal/models"
)

// Store holds the authoritative collection of product-stock records and the
// static warehouse set. It is pure storage plus lookup: no validation logic
// lives here. Construct one per process (or per test) with New; engines
// receive it by injection.
//
// Reads return copies, so a caller can never observe a half-written record.
// Writes go through Update, which serializes the whole read-modify-write
// sequence of a mutation under a single write lock.
type Store struct {
	mu sync.RWMutex

	records []*models.Product // insertion order; never re-sorted
	byKey   map[string]*models.Product

	warehouses []models.Warehouse
	byCode     map[string]models.Warehouse
}

// New builds a store seeded with the given products and warehouses. Seed
// products without a RecordKey get their ID as the key; insertion order is
// preserved as the store's iteration order.
func New(products []models.Product, warehouses []models.Warehouse) *Store {
	s := &Store{
		byKey:  make(map[string]*models.Product, len(products)),
		byCode: make(map[string]models.Warehouse, len(warehouses)),
	}
	for _, w := range warehouses {
		s.warehouses = append(s.warehouses, w)
		s.byCode[w.Code] = w
	}
	for _, p := range products {
		if p.RecordKey == "" {
			p.RecordKey = p.ID
		}
		rec := p
		s.records = append(s.records, &rec)
		s.byKey[rec.RecordKey] = &rec
	}
	return s
}

// Products returns a copy of every record in insertion order.
func (s *Store) Products() []models.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Product, len(s.records))
	for i, r := range s.records {
		out[i] = *r
	}
	return out
}

// ProductByKey looks a record up by its unique row key.
func (s *Store) ProductByKey(key string) (models.Product, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if r, ok := s.byKey[key]; ok {
		return *r, true
	}
	return models.Product{}, false
}

// FirstByID returns the first record with the given logical product id, in
// insertion order.
func (s *Store) FirstByID(id string) (models.Product, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, r := range s.records {
		if r.ID == id {
			return *r, true
		}
	}
	return models.Product{}, false
}

// ByIDAndWarehouse looks a record up by its compound logical key.
func (s *Store) ByIDAndWarehouse(id, warehouse string) (models.Product, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, r := range s.records {
		if r.ID == id && r.Warehouse == warehouse {
			return *r, true
		}
	}
	return models.Product{}, false
}

// CountByID reports how many warehouse rows share the given product id.
func (s *Store) CountByID(id string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	n := 0
	for _, r := range s.records {
		if r.ID == id {
			n++
		}
	}
	return n
}

// Warehouses returns the warehouse set in seed order.
func (s *Store) Warehouses() []models.Warehouse {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Warehouse, len(s.warehouses))
	copy(out, s.warehouses)
	return out
}

// WarehouseByCode looks a warehouse up by its unique code.
func (s *Store) WarehouseByCode(code string) (models.Warehouse, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	w, ok := s.byCode[code]
	return w, ok
}

// Update runs fn inside a write transaction. Stock/demand writes and record
// inserts staged on the Tx are committed only when fn returns nil; on error
// nothing is published. The write lock is held for the whole of fn, so a
// mutation's read-modify-write sequence never interleaves with another.
func (s *Store) Update(fn func(tx *Tx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx := &Tx{
		s:      s,
		stock:  make(map[string]int),
		demand: make(map[string]int),
	}
	if err := fn(tx); err != nil {
		return err
	}
	tx.commit()
	return nil
}

// Tx stages the writes of one mutation. Reads through the Tx observe staged
// state layered over the committed records.
type Tx struct {
	s       *Store
	stock   map[string]int // record key -> staged stock
	demand  map[string]int // record key -> staged demand
	inserts []models.Product
}

func (tx *Tx) view(r *models.Product) models.Product {
	p := *r
	if v, ok := tx.stock[p.RecordKey]; ok {
		p.Stock = v
	}
	if v, ok := tx.demand[p.RecordKey]; ok {
		p.Demand = v
	}
	return p
}

// Get returns the record with the given (id, warehouse) compound key, staged
// inserts included.
func (tx *Tx) Get(id, warehouse string) (models.Product, bool) {
	for _, r := range tx.s.records {
		if r.ID == id && r.Warehouse == warehouse {
			return tx.view(r), true
		}
	}
	for _, p := range tx.inserts {
		if p.ID == id && p.Warehouse == warehouse {
			return p, true
		}
	}
	return models.Product{}, false
}

// First returns the first record with the given product id in insertion
// order.
func (tx *Tx) First(id string) (models.Product, bool) {
	for _, r := range tx.s.records {
		if r.ID == id {
			return tx.view(r), true
		}
	}
	return models.Product{}, false
}

// Count reports how many rows share the product id, staged inserts included.
func (tx *Tx) Count(id string) int {
	n := 0
	for _, r := range tx.s.records {
		if r.ID == id {
			n++
		}
	}
	for _, p := range tx.inserts {
		if p.ID == id {
			n++
		}
	}
	return n
}

// SetStock stages a new stock value for the record with the given key.
func (tx *Tx) SetStock(recordKey string, stock int) {
	tx.stock[recordKey] = stock
}

// SetDemand stages a new demand value for the record with the given key.
func (tx *Tx) SetDemand(recordKey string, demand int) {
	tx.demand[recordKey] = demand
}

// Insert stages a new record; it is appended to the store's iteration order
// on commit.
func (tx *Tx) Insert(p models.Product) {
	tx.inserts = append(tx.inserts, p)
}

func (tx *Tx) commit() {
	for _, p := range tx.inserts {
		rec := p
		tx.s.records = append(tx.s.records, &rec)
		tx.s.byKey[rec.RecordKey] = &rec
	}
	for key, v := range tx.stock {
		if r, ok := tx.s.byKey[key]; ok {
			r.Stock = v
		}
	}
	for key, v := range tx.demand {
		if r, ok := tx.s.byKey[key]; ok {
			r.Demand = v
		}
	}
}
