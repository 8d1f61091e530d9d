package commands

import (
	"context"

	"orderimport/internal/core/domain/model/customer"
)

// RegisterCustomerCommandHandler persists new customers.
//
// Example:
//
//	handler := NewRegisterCustomerCommandHandler(uowFactory)
//	cmd, _ := NewRegisterCustomerCommand("2001", "321.654.987-04", "Ana Costa")
//
//	err := handler.Handle(ctx, cmd)
//	if errors.Is(err, errs.ErrObjectAlreadyExists) {
//	    // code already registered
//	}
type RegisterCustomerCommandHandler struct {
	uowFactory CustomerUoWFactory
}

func NewRegisterCustomerCommandHandler(uowFactory CustomerUoWFactory) RegisterCustomerCommandHandler {
	return RegisterCustomerCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle builds the customer and adds it within a transaction.
// A taken code yields errs.ObjectAlreadyExistsError and nothing is written.
func (h RegisterCustomerCommandHandler) Handle(ctx context.Context, cmd RegisterCustomerCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	c, err := customer.NewCustomer(cmd.CustomerID(), cmd.Code(), cmd.TaxID(), cmd.Name())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.CustomerRepository().Add(ctx, c); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
