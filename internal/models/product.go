package models

// Product is one product's inventory position at one warehouse. A logical
// product (same ID) can be spread across several warehouses; each row then
// keeps its own RecordKey.
type Product struct {
	RecordKey string `json:"record_key"`
	ID        string `json:"id"`
	Name      string `json:"name"`
	SKU       string `json:"sku"`
	Warehouse string `json:"warehouse"`
	Stock     int    `json:"stock"`
	Demand    int    `json:"demand"`
}

// Status is the derived stock-vs-demand label. It is computed on every read
// and never stored on the record.
type Status string

const (
	StatusHealthy  Status = "Healthy"
	StatusLow      Status = "Low"
	StatusCritical Status = "Critical"
)

// StatusFilter narrows a product query by derived status. The zero value
// matches every status.
type StatusFilter string

const (
	StatusFilterAny      StatusFilter = ""
	StatusFilterHealthy  StatusFilter = StatusFilter(StatusHealthy)
	StatusFilterLow      StatusFilter = StatusFilter(StatusLow)
	StatusFilterCritical StatusFilter = StatusFilter(StatusCritical)
)

// ProductFilter holds search and filter criteria for product queries.
// Zero values mean "no filtering" on that dimension; translating wire
// sentinels such as "All" into zero values is the HTTP layer's job.
type ProductFilter struct {
	Search    string       `json:"search,omitempty"`    // Case-insensitive substring on name, sku, or id
	Status    StatusFilter `json:"status,omitempty"`    // Derived status filter
	Warehouse string       `json:"warehouse,omitempty"` // Exact warehouse code
}
