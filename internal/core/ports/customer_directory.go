package ports

import (
	"context"

	"orderimport/internal/core/domain/model/customer"
)

// CustomerDirectory resolves a customer code to the customer's tax id and name.
// It is read-only and is queried independently of order parsing.
//
// Implementations may be slow (a remote service or a simulated delay) and must
// honour context cancellation.
type CustomerDirectory interface {
	// Lookup returns the customer registered under code.
	// Returns errs.ObjectNotFoundError when the code is unknown.
	Lookup(ctx context.Context, code string) (*customer.Customer, error)
}
