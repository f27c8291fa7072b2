package jobs

import (
	"context"
	"log/slog"
	"time"

	"workify/internal/pkg/metrics"

	"github.com/robfig/cron/v3"
)

// DefaultCategorySyncSchedule runs the resync every fifteen minutes.
const DefaultCategorySyncSchedule = "0 */15 * * * *"

const categorySyncTimeout = time.Minute

// CategoryCountSyncer recomputes every category counter and reports how many
// categories were updated.
type CategoryCountSyncer interface {
	Handle(ctx context.Context) (int64, error)
}

// CategorySyncJob periodically repairs the open-job counters, which drift when
// orders change status.
type CategorySyncJob struct {
	handler  CategoryCountSyncer
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewCategorySyncJob creates the job. schedule is a cron expression with a
// seconds field.
func NewCategorySyncJob(handler CategoryCountSyncer, schedule string, logger *slog.Logger) *CategorySyncJob {
	return &CategorySyncJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "category_sync_job"),
	}
}

// Start registers the schedule and starts the scheduler.
func (j *CategorySyncJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, j.Run); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Category sync job started", "schedule", j.schedule)
	return nil
}

// Run performs a single resync.
func (j *CategorySyncJob) Run() {
	ctx, cancel := context.WithTimeout(context.Background(), categorySyncTimeout)
	defer cancel()

	updated, err := j.handler.Handle(ctx)
	if err != nil {
		metrics.IncrementCategorySync(metrics.ResultFailure)
		j.logger.ErrorContext(ctx, "Category sync job failed", "error", err)
		return
	}

	metrics.IncrementCategorySync(metrics.ResultSuccess)
	j.logger.DebugContext(ctx, "Category counters recomputed", "categories", updated)
}

// Stop stops the scheduler and waits for a running resync to finish.
func (j *CategorySyncJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Category sync job stopped")
}
