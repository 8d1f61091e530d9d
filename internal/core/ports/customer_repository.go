// Package ports defines the contracts between the order import core and its
// infrastructure: customer persistence and customer lookup.
package ports

import (
	"context"

	"orderimport/internal/core/domain/model/customer"
)

// CustomerRepository defines the persistence contract for customers.
type CustomerRepository interface {
	// Add persists a new customer.
	// Returns errs.ObjectAlreadyExistsError when the customer code is taken.
	Add(ctx context.Context, customer *customer.Customer) error

	// Get retrieves a customer by its business code.
	// Returns errs.ObjectNotFoundError when no customer carries the code.
	Get(ctx context.Context, code string) (*customer.Customer, error)

	// GetAll retrieves every customer ordered by code.
	//
	// Example:
	//   customers, err := repo.GetAll(ctx)
	//   if err != nil {
	//       return fmt.Errorf("failed to load customers: %w", err)
	//   }
	GetAll(ctx context.Context) ([]*customer.Customer, error)
}
