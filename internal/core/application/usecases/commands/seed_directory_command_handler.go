package commands

import (
	"context"
	"errors"

	"orderimport/internal/pkg/errs"
)

// SeedDirectoryCommandHandler adds the seed customers that are not yet known.
type SeedDirectoryCommandHandler struct {
	uowFactory CustomerUoWFactory
}

func NewSeedDirectoryCommandHandler(uowFactory CustomerUoWFactory) SeedDirectoryCommandHandler {
	return SeedDirectoryCommandHandler{uowFactory: uowFactory}
}

// Handle writes the batch in one transaction and returns how many customers
// were added.
func (h SeedDirectoryCommandHandler) Handle(ctx context.Context, cmd SeedDirectoryCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.CustomerRepository()
	added := 0
	for _, c := range cmd.Customers() {
		_, err := repo.Get(ctx, c.Code())
		if err == nil {
			continue
		}
		if !errors.Is(err, errs.ErrObjectNotFound) {
			return 0, err
		}

		if err = repo.Add(ctx, c); err != nil {
			return 0, err
		}
		added++
	}

	if err := uow.Commit(ctx); err != nil {
		return 0, err
	}
	return added, nil
}
