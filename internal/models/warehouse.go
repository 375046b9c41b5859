package models

// Warehouse is a static reference entity; no mutation is exposed for it.
type Warehouse struct {
	Code    string `json:"code"`
	Name    string `json:"name"`
	City    string `json:"city"`
	Country string `json:"country"`
}
