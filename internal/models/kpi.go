package models

// KPIPoint is one day's aggregate stock/demand snapshot in a trend series.
type KPIPoint struct {
	Date        string `json:"date"` // YYYY-MM-DD
	TotalStock  int    `json:"stock"`
	TotalDemand int    `json:"demand"`
}

// Summary aggregates a product set for the dashboard KPI cards.
type Summary struct {
	TotalStock  int     `json:"total_stock"`
	TotalDemand int     `json:"total_demand"`
	FillRate    float64 `json:"fill_rate"` // percentage, 0 when total demand is 0
}
