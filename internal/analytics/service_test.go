package analytics

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"supplysight/internal/models"
)

type staticSource struct {
	products []models.Product
}

func (s *staticSource) Products() []models.Product { return s.products }

func TestClassify(t *testing.T) {
	tests := []struct {
		name   string
		stock  int
		demand int
		want   models.Status
	}{
		{"stock above demand", 10, 5, models.StatusHealthy},
		{"stock equals demand", 5, 5, models.StatusLow},
		{"stock below demand", 5, 10, models.StatusCritical},
		{"both zero", 0, 0, models.StatusLow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.stock, tt.demand))
		})
	}
}

func TestSummarize(t *testing.T) {
	products := []models.Product{
		{Stock: 10, Demand: 5},
		{Stock: 3, Demand: 6},
	}

	sum := Summarize(products)
	assert.Equal(t, 13, sum.TotalStock)
	assert.Equal(t, 11, sum.TotalDemand)
	// 100 * (5 + 3) / 11
	assert.InDelta(t, 72.7272, sum.FillRate, 0.001)
}

func TestSummarizeZeroDemand(t *testing.T) {
	sum := Summarize([]models.Product{{Stock: 10, Demand: 0}})
	assert.Equal(t, 10, sum.TotalStock)
	assert.Equal(t, 0, sum.TotalDemand)
	assert.Equal(t, 0.0, sum.FillRate)
}

func TestSummarizeEmptySet(t *testing.T) {
	sum := Summarize(nil)
	assert.Equal(t, models.Summary{}, sum)
}

func TestTrendSeriesShape(t *testing.T) {
	source := &staticSource{products: []models.Product{
		{Stock: 100, Demand: 60},
		{Stock: 40, Demand: 40},
	}}
	svc := NewService(source, zap.NewNop())
	svc.now = func() time.Time { return time.Date(2025, 3, 15, 12, 0, 0, 0, time.UTC) }

	for _, days := range []int{7, 14, 30} {
		series := svc.TrendSeries(days)
		require.Len(t, series, days)
		assert.Equal(t, "2025-03-15", series[days-1].Date)

		// Oldest to newest, one point per day.
		for i := 1; i < len(series); i++ {
			assert.Less(t, series[i-1].Date, series[i].Date)
		}
		for _, point := range series {
			assert.Equal(t, 140, point.TotalStock)
			assert.Equal(t, 100, point.TotalDemand)
		}
	}

	assert.Equal(t, "2025-03-09", svc.TrendSeries(7)[0].Date)
}

func TestTrendSeriesUsesRecordedSnapshots(t *testing.T) {
	source := &staticSource{products: []models.Product{{Stock: 100, Demand: 60}}}
	svc := NewService(source, zap.NewNop())

	day := time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return day }
	point := svc.RecordSnapshot(context.Background())
	assert.Equal(t, "2025-03-14", point.Date)
	assert.Equal(t, 100, point.TotalStock)

	// Stock moves; the next day's series keeps yesterday's recorded totals.
	source.products = []models.Product{{Stock: 70, Demand: 60}}
	svc.now = func() time.Time { return day.AddDate(0, 0, 1) }

	series := svc.TrendSeries(7)
	require.Len(t, series, 7)
	yesterday := series[5]
	today := series[6]
	assert.Equal(t, "2025-03-14", yesterday.Date)
	assert.Equal(t, 100, yesterday.TotalStock)
	assert.Equal(t, "2025-03-15", today.Date)
	assert.Equal(t, 70, today.TotalStock)
}

func TestRecordSnapshotOverwritesSameDay(t *testing.T) {
	source := &staticSource{products: []models.Product{{Stock: 100, Demand: 60}}}
	svc := NewService(source, zap.NewNop())
	svc.now = func() time.Time { return time.Date(2025, 3, 15, 8, 0, 0, 0, time.UTC) }

	svc.RecordSnapshot(context.Background())
	source.products = []models.Product{{Stock: 80, Demand: 60}}
	svc.RecordSnapshot(context.Background())

	series := svc.TrendSeries(7)
	assert.Equal(t, 80, series[6].TotalStock)
}
