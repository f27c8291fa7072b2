package jobs

import (
	"fmt"
	"log/slog"
)

type job interface {
	Start() error
	Stop()
}

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	jobs   []job
	logger *slog.Logger
}

// NewJobManager creates a job manager. An empty categorySyncSchedule disables
// the category sync job.
func NewJobManager(
	categorySyncHandler CategoryCountSyncer,
	categorySyncSchedule string,
	logger *slog.Logger,
) *JobManager {
	jm := &JobManager{logger: logger}
	if categorySyncSchedule != "" {
		jm.jobs = append(jm.jobs, NewCategorySyncJob(categorySyncHandler, categorySyncSchedule, logger))
	}
	return jm
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start; jobs already started are stopped.
func (jm *JobManager) StartAll() error {
	for i, j := range jm.jobs {
		if err := j.Start(); err != nil {
			for _, started := range jm.jobs[:i] {
				started.Stop()
			}
			return fmt.Errorf("failed to start job: %w", err)
		}
	}
	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	for _, j := range jm.jobs {
		j.Stop()
	}
}

// Len reports how many jobs are scheduled.
func (jm *JobManager) Len() int {
	return len(jm.jobs)
}
