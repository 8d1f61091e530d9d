// Package customerrepo persists customers with GORM and maps them between the
// domain model and the customers table.
package customerrepo

import (
	"orderimport/internal/core/domain/model/customer"
	"orderimport/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// CustomerDTO represents the database structure for persisting customers.
type CustomerDTO struct {
	ID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	Code  string    `gorm:"type:varchar(64);not null;uniqueIndex"`
	TaxID string    `gorm:"type:varchar(32);not null"`
	Name  string    `gorm:"type:varchar(255);not null;default:''"`
}

// TableName overrides GORM's default "customer_dtos".
func (CustomerDTO) TableName() string {
	return "customers"
}

func fromDomain(c *customer.Customer) CustomerDTO {
	return CustomerDTO{
		ID:    c.ID().Bytes(),
		Code:  c.Code(),
		TaxID: c.TaxID(),
		Name:  c.Name(),
	}
}

func toDomain(dto CustomerDTO) (*customer.Customer, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return customer.NewCustomer(id, dto.Code, dto.TaxID, dto.Name)
}
