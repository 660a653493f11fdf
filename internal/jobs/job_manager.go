package jobs

import (
	"fmt"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	orderBacklogJob *OrderBacklogJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	counter OrderCounter,
	backlogSchedule string,
	reg prometheus.Registerer,
	logger *slog.Logger,
) (*JobManager, error) {
	orderBacklogJob, err := NewOrderBacklogJob(counter, backlogSchedule, reg, logger)
	if err != nil {
		return nil, err
	}

	return &JobManager{
		orderBacklogJob: orderBacklogJob,
	}, nil
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.orderBacklogJob.Start(); err != nil {
		return fmt.Errorf("failed to start order backlog job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.orderBacklogJob.Stop()
}
