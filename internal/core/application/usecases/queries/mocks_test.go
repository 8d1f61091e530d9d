package queries_test

import (
	"context"

	"orderimport/internal/core/domain/model/customer"

	"github.com/stretchr/testify/mock"
)

type MockCustomerDirectory struct {
	mock.Mock
}

func (m *MockCustomerDirectory) Lookup(ctx context.Context, code string) (*customer.Customer, error) {
	args := m.Called(ctx, code)
	c, _ := args.Get(0).(*customer.Customer)
	return c, args.Error(1)
}

type MockCustomerRepository struct {
	mock.Mock
}

func (m *MockCustomerRepository) Add(ctx context.Context, c *customer.Customer) error {
	return m.Called(ctx, c).Error(0)
}

func (m *MockCustomerRepository) Get(ctx context.Context, code string) (*customer.Customer, error) {
	args := m.Called(ctx, code)
	c, _ := args.Get(0).(*customer.Customer)
	return c, args.Error(1)
}

func (m *MockCustomerRepository) GetAll(ctx context.Context) ([]*customer.Customer, error) {
	args := m.Called(ctx)
	customers, _ := args.Get(0).([]*customer.Customer)
	return customers, args.Error(1)
}
