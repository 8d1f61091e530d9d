package queries

import (
	"context"
	"errors"

	"orderimport/internal/core/ports"
	"orderimport/internal/pkg/guard"
)

var ErrListCustomersQueryIsNotConstructed = errors.New(
	"ListCustomersQuery must be created via NewListCustomersQuery constructor",
)

// ListCustomersQuery retrieves every registered customer.
type ListCustomersQuery struct {
	guard guard.ConstructorGuard
}

func NewListCustomersQuery() ListCustomersQuery {
	return ListCustomersQuery{guard: guard.NewConstructorGuard()}
}

func (q ListCustomersQuery) Validate() error {
	return q.guard.Validate(ErrListCustomersQueryIsNotConstructed)
}

// ListCustomersQueryHandler reads the customer repository directly, bypassing
// any directory cache.
type ListCustomersQueryHandler struct {
	repo ports.CustomerRepository
}

func NewListCustomersQueryHandler(repo ports.CustomerRepository) ListCustomersQueryHandler {
	return ListCustomersQueryHandler{repo: repo}
}

// Handle returns customers ordered by code; never nil.
func (h ListCustomersQueryHandler) Handle(ctx context.Context, query ListCustomersQuery) ([]CustomerResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	customers, err := h.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	response := make([]CustomerResponse, 0, len(customers))
	for _, c := range customers {
		response = append(response, toCustomerResponse(c))
	}
	return response, nil
}
