package background

import (
	"context"
	"time"

	"github.com/go-co-op/gocron/v2"
	"go.uber.org/zap"

	"supplysight/internal/analytics"
)

// SnapshotScheduler periodically records KPI stock/demand snapshots so the
// trend series reflects mutations over time instead of a flat synthetic
// line.
type SnapshotScheduler struct {
	scheduler    gocron.Scheduler
	analyticsSvc *analytics.Service
	logger       *zap.Logger
}

func NewSnapshotScheduler(analyticsSvc *analytics.Service, interval time.Duration, logger *zap.Logger) (*SnapshotScheduler, error) {
	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return nil, err
	}

	s := &SnapshotScheduler{
		scheduler:    scheduler,
		analyticsSvc: analyticsSvc,
		logger:       logger,
	}

	_, err = scheduler.NewJob(
		gocron.DurationJob(interval),
		gocron.NewTask(s.recordSnapshot, context.Background()),
		gocron.WithName("kpi-snapshot"),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		return nil, err
	}

	return s, nil
}

// Start records an initial snapshot and begins the periodic job.
func (s *SnapshotScheduler) Start() {
	s.analyticsSvc.RecordSnapshot(context.Background())
	s.scheduler.Start()
	s.logger.Info("kpi snapshot scheduler started")
}

// Stop shuts the scheduler down, waiting for a running job to finish.
func (s *SnapshotScheduler) Stop() error {
	s.logger.Info("stopping kpi snapshot scheduler")
	return s.scheduler.Shutdown()
}

func (s *SnapshotScheduler) recordSnapshot(ctx context.Context) {
	point := s.analyticsSvc.RecordSnapshot(ctx)
	s.logger.Info("kpi snapshot recorded",
		zap.String("date", point.Date),
		zap.Int("total_stock", point.TotalStock),
		zap.Int("total_demand", point.TotalDemand),
	)
}
