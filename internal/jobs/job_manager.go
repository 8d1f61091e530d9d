package jobs

import (
	"context"
	"fmt"
	"log/slog"

	"orderimport/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	directoryRefreshJob *DirectoryRefreshJob
}

// NewJobManager creates a job manager with the directory refresh job scheduled
// by refreshSpec.
func NewJobManager(
	refreshHandler commands.RefreshDirectoryCommandHandler,
	refreshSpec string,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		directoryRefreshJob: NewDirectoryRefreshJob(refreshHandler, refreshSpec, logger),
	}
}

// StartAll warms the directory once and then starts every schedule.
// A failed warm-up is returned; the schedules are not started in that case.
func (jm *JobManager) StartAll(ctx context.Context) error {
	if err := jm.directoryRefreshJob.RunOnce(ctx); err != nil {
		return fmt.Errorf("failed to warm customer directory: %w", err)
	}

	if err := jm.directoryRefreshJob.Start(); err != nil {
		return fmt.Errorf("failed to start directory refresh job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.directoryRefreshJob.Stop()
}
