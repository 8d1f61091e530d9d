package directory

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"
	"time"

	"orderimport/internal/core/domain/model/customer"
	"orderimport/internal/core/ports"
	"orderimport/internal/pkg/errs"
)

// CachedDirectory serves lookups from an in-memory snapshot of the customer
// repository. A miss falls through to the repository and, when found, the
// customer is added to the snapshot. Refresh replaces the snapshot wholesale.
type CachedDirectory struct {
	uowFactory ports.UnitOfWorkFactory
	logger     *slog.Logger

	mu          sync.RWMutex
	byCode      map[string]*customer.Customer
	refreshedAt time.Time
}

func NewCachedDirectory(uowFactory ports.UnitOfWorkFactory, logger *slog.Logger) *CachedDirectory {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &CachedDirectory{
		uowFactory: uowFactory,
		logger:     logger.With("component", "cached_directory"),
		byCode:     make(map[string]*customer.Customer),
	}
}

func (d *CachedDirectory) Lookup(ctx context.Context, code string) (*customer.Customer, error) {
	code = strings.TrimSpace(code)

	d.mu.RLock()
	c, ok := d.byCode[code]
	d.mu.RUnlock()
	if ok {
		return c, nil
	}

	c, err := d.uowFactory.Create().CustomerRepository().Get(ctx, code)
	if err != nil {
		if !errors.Is(err, errs.ErrObjectNotFound) {
			d.logger.ErrorContext(ctx, "customer lookup failed", "code", code, "error", err)
		}
		return nil, err
	}

	d.mu.Lock()
	d.byCode[c.Code()] = c
	d.mu.Unlock()
	return c, nil
}

// Refresh reloads every customer from the repository. On error the previous
// snapshot is kept.
func (d *CachedDirectory) Refresh(ctx context.Context) error {
	customers, err := d.uowFactory.Create().CustomerRepository().GetAll(ctx)
	if err != nil {
		return err
	}

	snapshot := make(map[string]*customer.Customer, len(customers))
	for _, c := range customers {
		snapshot[c.Code()] = c
	}

	d.mu.Lock()
	d.byCode = snapshot
	d.refreshedAt = time.Now()
	d.mu.Unlock()

	d.logger.DebugContext(ctx, "customer snapshot refreshed", "customers", len(snapshot))
	return nil
}

// Size returns the number of cached customers.
func (d *CachedDirectory) Size() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.byCode)
}

// RefreshedAt returns the time of the last successful Refresh, zero if none.
func (d *CachedDirectory) RefreshedAt() time.Time {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.refreshedAt
}
