package queries

import (
	"errors"
	"strings"

	"orderimport/internal/core/domain/model/kernel"
	"orderimport/internal/pkg/errs"
	"orderimport/internal/pkg/guard"
)

var ErrGetCustomerQueryIsNotConstructed = errors.New(
	"GetCustomerQuery must be created via NewGetCustomerQuery constructor",
)

// GetCustomerQuery looks one customer up by code.
type GetCustomerQuery struct {
	code string

	guard guard.ConstructorGuard
}

func NewGetCustomerQuery(code string) (GetCustomerQuery, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return GetCustomerQuery{}, errs.NewValueIsRequiredError("customer code")
	}
	return GetCustomerQuery{code: code, guard: guard.NewConstructorGuard()}, nil
}

func (q GetCustomerQuery) Validate() error {
	return q.guard.Validate(ErrGetCustomerQueryIsNotConstructed)
}

func (q GetCustomerQuery) Code() string {
	return q.code
}

// CustomerResponse is the read model of a directory entry.
type CustomerResponse struct {
	ID    kernel.UUID
	Code  string
	TaxID string
	Name  string
}
