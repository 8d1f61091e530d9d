package directory

import (
	"context"
	"slices"
	"strings"
	"sync"

	"orderimport/internal/core/domain/model/customer"
	"orderimport/internal/pkg/errs"
)

// MemoryRepository is a ports.CustomerRepository kept in a map. It is safe for
// concurrent use.
type MemoryRepository struct {
	mu     sync.RWMutex
	byCode map[string]*customer.Customer
}

// NewMemoryRepository returns a repository holding customers.
// Returns errs.ObjectAlreadyExistsError when two customers share a code.
func NewMemoryRepository(customers ...*customer.Customer) (*MemoryRepository, error) {
	r := &MemoryRepository{byCode: make(map[string]*customer.Customer, len(customers))}
	for _, c := range customers {
		if err := r.add(c); err != nil {
			return nil, err
		}
	}
	return r, nil
}

func (r *MemoryRepository) Add(_ context.Context, c *customer.Customer) error {
	if err := c.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	return r.add(c)
}

func (r *MemoryRepository) Get(_ context.Context, code string) (*customer.Customer, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, errs.NewValueIsRequiredError("customer code")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.byCode[code]
	if !ok {
		return nil, errs.NewObjectNotFoundError("customer", code)
	}
	return c, nil
}

// GetAll returns every customer ordered by code.
func (r *MemoryRepository) GetAll(_ context.Context) ([]*customer.Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	codes := make([]string, 0, len(r.byCode))
	for code := range r.byCode {
		codes = append(codes, code)
	}
	slices.Sort(codes)

	customers := make([]*customer.Customer, 0, len(codes))
	for _, code := range codes {
		customers = append(customers, r.byCode[code])
	}
	return customers, nil
}

// add requires the write lock or exclusive access.
func (r *MemoryRepository) add(c *customer.Customer) error {
	if _, ok := r.byCode[c.Code()]; ok {
		return errs.NewObjectAlreadyExistsError("customer", c.Code())
	}
	r.byCode[c.Code()] = c
	return nil
}

// addAll inserts customers atomically: either all are added or none.
func (r *MemoryRepository) addAll(customers []*customer.Customer) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, c := range customers {
		if _, ok := r.byCode[c.Code()]; ok {
			return errs.NewObjectAlreadyExistsError("customer", c.Code())
		}
	}
	for _, c := range customers {
		r.byCode[c.Code()] = c
	}
	return nil
}
