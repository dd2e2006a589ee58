// Package commands contains the operations that change orders.
// Every command is built through a constructor that validates its input, and every
// handler runs its reads and writes inside one unit of work: Begin, deferred
// Rollback, repository calls, Commit.
package commands

import (
	"context"

	"pizzabot/internal/core/ports"
)

// transaction is the lifecycle half of a unit of work.
type transaction interface {
	Begin(ctx context.Context) error
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// OrderUoW is enough for handlers that only read and write orders (items, checkout,
// status changes, deletes).
type OrderUoW interface {
	transaction
	OrderRepository() ports.OrderRepository
}

type OrderUoWFactory interface {
	Create() OrderUoW
}

// UoW also exposes customers; start_order creates the customer and the order in
// the same transaction.
type UoW interface {
	transaction
	OrderRepository() ports.OrderRepository
	CustomerRepository() ports.CustomerRepository
}

type UoWFactory interface {
	Create() UoW
}
