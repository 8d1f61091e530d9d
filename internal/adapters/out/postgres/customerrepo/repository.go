package customerrepo

import (
	"context"
	"errors"
	"strings"

	"orderimport/internal/core/domain/model/customer"
	"orderimport/internal/core/domain/model/kernel"
	"orderimport/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormCustomerRepository implements ports.CustomerRepository using GORM.
type GormCustomerRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormCustomerRepository creates a new GORM customer repository.
func NewGormCustomerRepository(db *gorm.DB, tracker aggregateTracker) *GormCustomerRepository {
	return &GormCustomerRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new customer. A taken code yields errs.ObjectAlreadyExistsError.
func (r *GormCustomerRepository) Add(ctx context.Context, c *customer.Customer) error {
	if err := c.Validate(); err != nil {
		return err
	}

	var existing int64
	if err := r.db.WithContext(ctx).Model(&CustomerDTO{}).Where("code = ?", c.Code()).Count(&existing).Error; err != nil {
		return err
	}
	if existing > 0 {
		return errs.NewObjectAlreadyExistsError("customer", c.Code())
	}

	dto := fromDomain(c)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewObjectAlreadyExistsError("customer", c.Code())
		}
		return err
	}

	r.tracker.TrackAggregate(c.ID(), c)
	return nil
}

// Get retrieves a customer by code.
func (r *GormCustomerRepository) Get(ctx context.Context, code string) (*customer.Customer, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, errs.NewValueIsRequiredError("customer code")
	}

	var dto CustomerDTO
	if err := r.db.WithContext(ctx).First(&dto, "code = ?", code).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("customer", code)
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAll retrieves every customer ordered by code.
func (r *GormCustomerRepository) GetAll(ctx context.Context) ([]*customer.Customer, error) {
	var dtos []CustomerDTO
	if err := r.db.WithContext(ctx).Order("code").Find(&dtos).Error; err != nil {
		return nil, err
	}

	customers := make([]*customer.Customer, 0, len(dtos))
	for _, dto := range dtos {
		c, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		customers = append(customers, c)
	}

	return customers, nil
}
