package jobs_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"orderimport/internal/core/application/usecases/commands"
	"orderimport/internal/jobs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingRefresher struct {
	calls atomic.Int32
	err   error
}

func (r *countingRefresher) Refresh(_ context.Context) error {
	r.calls.Add(1)
	return r.err
}

func TestDirectoryRefreshJob_RunsOnSchedule(t *testing.T) {
	refresher := &countingRefresher{}
	job := jobs.NewDirectoryRefreshJob(
		commands.NewRefreshDirectoryCommandHandler(refresher), "* * * * * *", slog.New(slog.DiscardHandler))

	require.NoError(t, job.Start())
	assert.Eventually(t, func() bool { return refresher.calls.Load() >= 1 }, 3*time.Second, 50*time.Millisecond)
	job.Stop()
}

func TestDirectoryRefreshJob_InvalidSpec(t *testing.T) {
	job := jobs.NewDirectoryRefreshJob(
		commands.NewRefreshDirectoryCommandHandler(&countingRefresher{}), "every now and then", slog.New(slog.DiscardHandler))

	require.Error(t, job.Start())
}

func TestDirectoryRefreshJob_FailureIsLogged(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&lockedWriter{w: &buf}, nil))
	refresher := &countingRefresher{err: errors.New("db down")}
	job := jobs.NewDirectoryRefreshJob(commands.NewRefreshDirectoryCommandHandler(refresher), "* * * * * *", logger)

	require.NoError(t, job.Start())
	assert.Eventually(t, func() bool { return refresher.calls.Load() >= 1 }, 3*time.Second, 50*time.Millisecond)
	job.Stop()

	assert.Contains(t, buf.String(), "Directory refresh job failed")
	assert.Contains(t, buf.String(), "component=directory_refresh_job")
}

func TestJobManager_StartAll_WarmsDirectoryFirst(t *testing.T) {
	refresher := &countingRefresher{}
	manager := jobs.NewJobManager(
		commands.NewRefreshDirectoryCommandHandler(refresher), "", slog.New(slog.DiscardHandler))

	require.NoError(t, manager.StartAll(t.Context()))
	assert.Equal(t, int32(1), refresher.calls.Load())
	manager.StopAll()
}

func TestJobManager_StartAll_WarmUpFailure(t *testing.T) {
	refresher := &countingRefresher{err: errors.New("db down")}
	manager := jobs.NewJobManager(
		commands.NewRefreshDirectoryCommandHandler(refresher), "", slog.New(slog.DiscardHandler))

	err := manager.StartAll(t.Context())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to warm customer directory")
}
