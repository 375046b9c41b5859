package analytics

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"supplysight/internal/models"
)

const dateLayout = "2006-01-02"

// Classify derives the stock-vs-demand status label for one record. It is a
// pure function of the two integers and is recomputed on every read.
func Classify(stock, demand int) models.Status {
	switch {
	case stock > demand:
		return models.StatusHealthy
	case stock == demand:
		return models.StatusLow
	default:
		return models.StatusCritical
	}
}

// ClassifyProduct labels a product row; presentation layers use this instead
// of duplicating the threshold logic.
func ClassifyProduct(p models.Product) models.Status {
	return Classify(p.Stock, p.Demand)
}

// Summarize aggregates a product set into the dashboard KPI summary. It
// operates only on the set the caller passes (typically already filtered)
// and never reads the store directly.
//
// Fill rate is 100 * Σ min(stock, demand) / total demand, or 0 when the
// total demand is 0.
func Summarize(products []models.Product) models.Summary {
	var sum models.Summary
	var satisfiable int
	for _, p := range products {
		sum.TotalStock += p.Stock
		sum.TotalDemand += p.Demand
		satisfiable += min(p.Stock, p.Demand)
	}
	if sum.TotalDemand > 0 {
		sum.FillRate = 100 * float64(satisfiable) / float64(sum.TotalDemand)
	}
	return sum
}

// ProductSource is the read surface the trend service needs from the store.
type ProductSource interface {
	Products() []models.Product
}

// Service derives KPI trend series and records daily stock/demand snapshots.
type Service struct {
	source ProductSource
	logger *zap.Logger

	mu      sync.RWMutex
	history map[string]models.KPIPoint // keyed by date
	now     func() time.Time
}

func NewService(source ProductSource, logger *zap.Logger) *Service {
	return &Service{
		source:  source,
		logger:  logger,
		history: make(map[string]models.KPIPoint),
		now:     time.Now,
	}
}

// RecordSnapshot captures today's total stock and demand into the in-memory
// history, overwriting any earlier snapshot for the same day.
func (s *Service) RecordSnapshot(ctx context.Context) models.KPIPoint {
	sum := Summarize(s.source.Products())
	point := models.KPIPoint{
		Date:        s.now().Format(dateLayout),
		TotalStock:  sum.TotalStock,
		TotalDemand: sum.TotalDemand,
	}

	s.mu.Lock()
	s.history[point.Date] = point
	s.mu.Unlock()

	s.logger.Debug("recorded kpi snapshot",
		zap.String("date", point.Date),
		zap.Int("total_stock", point.TotalStock),
		zap.Int("total_demand", point.TotalDemand),
	)
	return point
}

// TrendSeries returns one KPI point per day for the last days days, oldest
// to newest, ending today. Days with a recorded snapshot use it; the rest
// carry the current store totals.
func (s *Service) TrendSeries(days int) []models.KPIPoint {
	sum := Summarize(s.source.Products())
	today := s.now()

	s.mu.RLock()
	defer s.mu.RUnlock()

	series := make([]models.KPIPoint, 0, days)
	for i := days - 1; i >= 0; i-- {
		date := today.AddDate(0, 0, -i).Format(dateLayout)
		if point, ok := s.history[date]; ok {
			series = append(series, point)
			continue
		}
		series = append(series, models.KPIPoint{
			Date:        date,
			TotalStock:  sum.TotalStock,
			TotalDemand: sum.TotalDemand,
		})
	}
	return series
}
