package directory

import (
	"context"
	"errors"
	"strings"

	"orderimport/internal/core/domain/model/customer"
	"orderimport/internal/core/ports"
	"orderimport/internal/pkg/errs"
)

// ErrNoActiveTransaction is returned by Commit and Rollback outside Begin.
var ErrNoActiveTransaction = errors.New("no active transaction")

// MemoryUnitOfWorkFactory creates units of work over a MemoryRepository.
type MemoryUnitOfWorkFactory struct {
	repo *MemoryRepository
}

func NewMemoryUnitOfWorkFactory(repo *MemoryRepository) *MemoryUnitOfWorkFactory {
	return &MemoryUnitOfWorkFactory{repo: repo}
}

func (f *MemoryUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &MemoryUnitOfWork{repo: f.repo}
}

// MemoryUnitOfWork stages added customers between Begin and Commit and applies
// them to the repository in one step. Without Begin, writes go straight through.
type MemoryUnitOfWork struct {
	repo   *MemoryRepository
	active bool
	staged []*customer.Customer
}

func (uow *MemoryUnitOfWork) Begin(_ context.Context) error {
	uow.active = true
	return nil
}

func (uow *MemoryUnitOfWork) Commit(_ context.Context) error {
	if !uow.active {
		return ErrNoActiveTransaction
	}

	staged := uow.staged
	uow.active, uow.staged = false, nil
	return uow.repo.addAll(staged)
}

func (uow *MemoryUnitOfWork) Rollback(_ context.Context) error {
	if !uow.active {
		return ErrNoActiveTransaction
	}

	uow.active, uow.staged = false, nil
	return nil
}

func (uow *MemoryUnitOfWork) CustomerRepository() ports.CustomerRepository {
	if !uow.active {
		return uow.repo
	}
	return stagingRepository{uow: uow}
}

// stagingRepository reads through the staged customers before the repository.
type stagingRepository struct {
	uow *MemoryUnitOfWork
}

func (s stagingRepository) Add(ctx context.Context, c *customer.Customer) error {
	if err := c.Validate(); err != nil {
		return err
	}
	if _, err := s.Get(ctx, c.Code()); err == nil {
		return errs.NewObjectAlreadyExistsError("customer", c.Code())
	}

	s.uow.staged = append(s.uow.staged, c)
	return nil
}

func (s stagingRepository) Get(ctx context.Context, code string) (*customer.Customer, error) {
	trimmed := strings.TrimSpace(code)
	for _, c := range s.uow.staged {
		if c.Code() == trimmed {
			return c, nil
		}
	}
	return s.uow.repo.Get(ctx, code)
}

func (s stagingRepository) GetAll(ctx context.Context) ([]*customer.Customer, error) {
	stored, err := s.uow.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return append(stored, s.uow.staged...), nil
}
