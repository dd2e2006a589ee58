package customer

import (
	"errors"
	"strings"
	"time"

	"pizzabot/internal/core/domain/model/kernel"
	"pizzabot/internal/pkg/errs"
)

var ErrCustomerIsNotConstructed = errors.New("Customer must be created via NewCustomer or RestoreCustomer constructor")

// Customer is the person an order is placed for. Customers are created lazily the
// first time a conversation names one and never change afterwards.
type Customer struct {
	id        kernel.UUID
	name      string
	phone     *string
	createdAt time.Time

	isConstructed bool
}

// NewCustomer trims name and phone. The name is required; an empty phone is stored
// as absent.
func NewCustomer(id kernel.UUID, name string, phone string, now time.Time) (*Customer, error) {
	var p *string
	if trimmed := strings.TrimSpace(phone); trimmed != "" {
		p = &trimmed
	}
	return RestoreCustomer(id, name, p, now)
}

// RestoreCustomer rebuilds a customer from persisted state.
func RestoreCustomer(id kernel.UUID, name string, phone *string, createdAt time.Time) (*Customer, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errs.NewValueIsRequiredError("customer name")
	}

	return &Customer{
		id:            id,
		name:          name,
		phone:         phone,
		createdAt:     createdAt,
		isConstructed: true,
	}, nil
}

func (c *Customer) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCustomerIsNotConstructed
	}
	return nil
}

func (c *Customer) ID() kernel.UUID      { return c.id }
func (c *Customer) Name() string         { return c.name }
func (c *Customer) CreatedAt() time.Time { return c.createdAt }

// Phone returns the phone number, or nil when none was given.
func (c *Customer) Phone() *string {
	return c.phone
}
