package customerrepo

import (
	"context"
	"errors"

	"pizzabot/internal/core/domain/model/customer"
	"pizzabot/internal/core/domain/model/kernel"
	"pizzabot/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormCustomerRepository implements ports.CustomerRepository using GORM.
type GormCustomerRepository struct {
	db *gorm.DB
}

func NewGormCustomerRepository(db *gorm.DB) *GormCustomerRepository {
	return &GormCustomerRepository{db: db}
}

// Add saves a new customer.
func (r *GormCustomerRepository) Add(ctx context.Context, c *customer.Customer) error {
	if err := c.Validate(); err != nil {
		return err
	}

	dto := fromDomain(c)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Get retrieves a customer by ID.
func (r *GormCustomerRepository) Get(ctx context.Context, id kernel.UUID) (*customer.Customer, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto CustomerDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("customer", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
