package queries

import (
	"context"

	"orderimport/internal/core/domain/model/customer"
	"orderimport/internal/core/ports"
)

// GetCustomerQueryHandler reads through the customer directory.
// An unknown code yields errs.ObjectNotFoundError.
type GetCustomerQueryHandler struct {
	directory ports.CustomerDirectory
}

func NewGetCustomerQueryHandler(directory ports.CustomerDirectory) GetCustomerQueryHandler {
	return GetCustomerQueryHandler{directory: directory}
}

func (h GetCustomerQueryHandler) Handle(ctx context.Context, query GetCustomerQuery) (CustomerResponse, error) {
	if err := query.Validate(); err != nil {
		return CustomerResponse{}, err
	}

	c, err := h.directory.Lookup(ctx, query.Code())
	if err != nil {
		return CustomerResponse{}, err
	}
	return toCustomerResponse(c), nil
}

func toCustomerResponse(c *customer.Customer) CustomerResponse {
	return CustomerResponse{
		ID:    c.ID(),
		Code:  c.Code(),
		TaxID: c.TaxID(),
		Name:  c.Name(),
	}
}
