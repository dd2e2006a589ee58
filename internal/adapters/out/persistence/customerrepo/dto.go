// Package customerrepo maps customers to the customers table.
package customerrepo

import (
	"time"

	"pizzabot/internal/core/domain/model/customer"
	"pizzabot/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// CustomerDTO is the row shape of the customers table.
type CustomerDTO struct {
	ID        uuid.UUID `gorm:"size:36;primaryKey"`
	Name      string    `gorm:"size:255;not null"`
	Phone     *string   `gorm:"size:64"`
	CreatedAt time.Time `gorm:"not null;autoCreateTime:false"`
}

func (CustomerDTO) TableName() string {
	return "customers"
}

func fromDomain(c *customer.Customer) CustomerDTO {
	return CustomerDTO{
		ID:        c.ID().Bytes(),
		Name:      c.Name(),
		Phone:     c.Phone(),
		CreatedAt: c.CreatedAt().UTC(),
	}
}

func toDomain(dto CustomerDTO) (*customer.Customer, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	return customer.RestoreCustomer(id, dto.Name, dto.Phone, dto.CreatedAt)
}
