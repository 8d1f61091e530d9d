package commands

import (
	"errors"
	"strings"

	"orderimport/internal/core/domain/model/kernel"
	"orderimport/internal/pkg/errs"
	"orderimport/internal/pkg/guard"
)

var ErrRegisterCustomerCommandIsNotConstructed = errors.New(
	"RegisterCustomerCommand must be created via NewRegisterCustomerCommand constructor",
)

// RegisterCustomerCommand adds a customer to the directory.
//
// Example:
//
//	cmd, err := NewRegisterCustomerCommand("1001", "123.456.789-01", "João Silva")
//	if err != nil {
//	    return fmt.Errorf("invalid customer data: %w", err)
//	}
//
//	handler := NewRegisterCustomerCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to register customer: %w", err)
//	}
type RegisterCustomerCommand struct { //nolint:recvcheck //using for validation
	customerID kernel.UUID
	code       string
	taxID      string
	name       string

	guard guard.ConstructorGuard
}

// NewRegisterCustomerCommand creates the command and assigns a fresh customer id.
// Code and tax id are required; the tax id format is checked by the domain.
func NewRegisterCustomerCommand(code, taxID, name string) (RegisterCustomerCommand, error) {
	command := RegisterCustomerCommand{
		guard: guard.NewConstructorGuard(),
		name:  strings.TrimSpace(name),
	}

	if err := errors.Join(
		command.setCustomerID(kernel.NewUUID()),
		command.setCode(code),
		command.setTaxID(taxID),
	); err != nil {
		return RegisterCustomerCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterCustomerCommand) Validate() error {
	return c.guard.Validate(ErrRegisterCustomerCommandIsNotConstructed)
}

func (c RegisterCustomerCommand) CustomerID() kernel.UUID {
	return c.customerID
}

func (c RegisterCustomerCommand) Code() string {
	return c.code
}

func (c RegisterCustomerCommand) TaxID() string {
	return c.taxID
}

func (c RegisterCustomerCommand) Name() string {
	return c.name
}

func (c *RegisterCustomerCommand) setCustomerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.customerID = id
	return nil
}

func (c *RegisterCustomerCommand) setCode(code string) error {
	code = strings.TrimSpace(code)
	if code == "" {
		return errs.NewValueIsRequiredError("customer code")
	}

	c.code = code
	return nil
}

func (c *RegisterCustomerCommand) setTaxID(taxID string) error {
	taxID = strings.TrimSpace(taxID)
	if taxID == "" {
		return errs.NewValueIsRequiredError("tax id")
	}

	c.taxID = taxID
	return nil
}
