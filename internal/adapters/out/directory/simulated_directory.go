package directory

import (
	"context"
	"log/slog"
	"time"

	"orderimport/internal/core/domain/model/customer"
	"orderimport/internal/core/ports"
)

// DefaultLatency is the delay SimulatedDirectory applies when none is configured.
const DefaultLatency = 500 * time.Millisecond

// SimulatedDirectory answers lookups from a repository after a fixed delay, the
// way a remote customer service would. The wait is abandoned when ctx is done.
type SimulatedDirectory struct {
	repo    ports.CustomerRepository
	latency time.Duration
	logger  *slog.Logger
}

// NewSimulatedDirectory wraps repo. A negative latency is treated as zero.
func NewSimulatedDirectory(repo ports.CustomerRepository, latency time.Duration, logger *slog.Logger) *SimulatedDirectory {
	if latency < 0 {
		latency = 0
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &SimulatedDirectory{
		repo:    repo,
		latency: latency,
		logger:  logger.With("component", "simulated_directory"),
	}
}

func (d *SimulatedDirectory) Lookup(ctx context.Context, code string) (*customer.Customer, error) {
	timer := time.NewTimer(d.latency)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-timer.C:
	}

	c, err := d.repo.Get(ctx, code)
	if err != nil {
		d.logger.DebugContext(ctx, "customer lookup failed", "code", code, "error", err)
		return nil, err
	}
	return c, nil
}
