package jobs

import (
	"context"
	"log/slog"

	"orderimport/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// DefaultDirectoryRefreshSpec reloads the customer directory every five minutes.
const DefaultDirectoryRefreshSpec = "0 */5 * * * *"

// DirectoryRefreshJob periodically reloads the cached customer directory.
type DirectoryRefreshJob struct {
	handler commands.RefreshDirectoryCommandHandler
	spec    string
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewDirectoryRefreshJob creates the job. spec is a six-field cron expression
// (with seconds); empty means DefaultDirectoryRefreshSpec.
func NewDirectoryRefreshJob(
	handler commands.RefreshDirectoryCommandHandler,
	spec string,
	logger *slog.Logger,
) *DirectoryRefreshJob {
	if spec == "" {
		spec = DefaultDirectoryRefreshSpec
	}
	return &DirectoryRefreshJob{
		handler: handler,
		spec:    spec,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "directory_refresh_job"),
	}
}

// Start schedules the refresh. It returns an error for an invalid cron spec.
func (j *DirectoryRefreshJob) Start() error {
	_, err := j.cron.AddFunc(j.spec, j.run)
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Directory refresh job started", "spec", j.spec)
	return nil
}

// Stop stops the scheduler and waits for a running refresh to finish.
func (j *DirectoryRefreshJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Directory refresh job stopped")
}

// RunOnce performs one refresh immediately, outside the schedule.
func (j *DirectoryRefreshJob) RunOnce(ctx context.Context) error {
	return j.handler.Handle(ctx, commands.NewRefreshDirectoryCommand())
}

func (j *DirectoryRefreshJob) run() {
	ctx := context.Background()
	if err := j.RunOnce(ctx); err != nil {
		j.logger.ErrorContext(ctx, "Directory refresh job failed", "error", err)
	}
}
