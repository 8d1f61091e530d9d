package commands

import (
	"errors"
	"fmt"

	"orderimport/internal/core/domain/model/customer"
	"orderimport/internal/pkg/errs"
	"orderimport/internal/pkg/guard"
)

var ErrSeedDirectoryCommandIsNotConstructed = errors.New(
	"SeedDirectoryCommand must be created via NewSeedDirectoryCommand constructor",
)

// SeedDirectoryCommand loads a batch of customers into the directory, skipping
// codes that are already registered. It is run once at startup.
type SeedDirectoryCommand struct {
	customers []*customer.Customer

	guard guard.ConstructorGuard
}

// NewSeedDirectoryCommand validates every customer in the batch.
func NewSeedDirectoryCommand(customers []*customer.Customer) (SeedDirectoryCommand, error) {
	errList := make([]error, 0)
	for i, c := range customers {
		if err := c.Validate(); err != nil {
			errList = append(errList, errs.NewValueIsInvalidErrorWithCause(fmt.Sprintf("customers[%d]", i), err))
		}
	}
	if err := errors.Join(errList...); err != nil {
		return SeedDirectoryCommand{}, err
	}

	return SeedDirectoryCommand{
		customers: customers,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c SeedDirectoryCommand) Validate() error {
	return c.guard.Validate(ErrSeedDirectoryCommandIsNotConstructed)
}

func (c SeedDirectoryCommand) Customers() []*customer.Customer {
	return c.customers
}
