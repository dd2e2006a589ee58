// Package ports defines the repository and unit of work contracts between the
// ordering use cases and the storage adapters.
package ports

import (
	"context"

	"pizzabot/internal/core/domain/model/customer"
	"pizzabot/internal/core/domain/model/kernel"
)

// CustomerRepository defines the persistence contract for customers.
// Customers are immutable, so there is no Update.
type CustomerRepository interface {
	Add(ctx context.Context, c *customer.Customer) error

	// Get returns errs.ObjectNotFoundError when the customer does not exist.
	Get(ctx context.Context, id kernel.UUID) (*customer.Customer, error)
}
