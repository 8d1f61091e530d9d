package customer

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"orderimport/internal/core/domain/model/kernel"
	"orderimport/internal/pkg/errs"
)

// ErrCustomerIsNotConstructed is returned when a Customer was not created through NewCustomer.
var ErrCustomerIsNotConstructed = errors.New("Customer must be created via NewCustomer constructor")

// taxIDFormat accepts CPF digits with or without the usual punctuation, e.g.
// "123.456.789-01" or "12345678901". Check digits are not verified.
var taxIDFormat = regexp.MustCompile(`^\d{3}\.?\d{3}\.?\d{3}-?\d{2}$`)

// Customer is a directory entry.
//
// Customer follows these invariants:
//   - Must have a valid unique identifier
//   - Code is non-empty and trimmed
//   - Tax id is a CPF-shaped string
//   - Name is optional
type Customer struct {
	id    kernel.UUID
	code  string
	taxID string
	name  string

	isConstructed bool
}

// NewCustomer creates a Customer after validating every field.
//
// Example:
//
//	c, err := customer.NewCustomer(kernel.NewUUID(), "1001", "123.456.789-01", "João Silva")
//	if err != nil {
//	    // Handle validation error
//	}
func NewCustomer(id kernel.UUID, code, taxID, name string) (*Customer, error) {
	c := &Customer{
		name:          strings.TrimSpace(name),
		isConstructed: true,
	}

	if err := errors.Join(
		c.setID(id),
		c.setCode(code),
		c.setTaxID(taxID),
	); err != nil {
		return nil, err
	}

	return c, nil
}

// Validate ensures the Customer was created through NewCustomer.
func (c *Customer) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCustomerIsNotConstructed
	}
	return nil
}

// ID returns the internal identifier.
func (c *Customer) ID() kernel.UUID {
	return c.id
}

// Code returns the customer code used to look the customer up.
func (c *Customer) Code() string {
	return c.code
}

// TaxID returns the customer's CPF as registered.
func (c *Customer) TaxID() string {
	return c.taxID
}

// Name returns the customer name, possibly empty.
func (c *Customer) Name() string {
	return c.name
}

func (c *Customer) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Customer) setCode(code string) error {
	code = strings.TrimSpace(code)
	if code == "" {
		return errs.NewValueIsRequiredError("customer code")
	}
	c.code = code
	return nil
}

func (c *Customer) setTaxID(taxID string) error {
	taxID = strings.TrimSpace(taxID)
	if taxID == "" {
		return errs.NewValueIsRequiredError("tax id")
	}
	if !taxIDFormat.MatchString(taxID) {
		return errs.NewValueIsInvalidErrorWithCause("tax id", fmt.Errorf("%q is not a CPF", taxID))
	}
	c.taxID = taxID
	return nil
}
