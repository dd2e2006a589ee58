package ports

import (
	"context"
	"time"

	"pizzabot/internal/core/domain/model/kernel"
	"pizzabot/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Items and status updates are written as separate rows so concurrent tool calls
// never rewrite each other's lines.
type OrderRepository interface {
	// Add persists a new order together with its initial items and status history.
	Add(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order with its items and updates, both in insertion order.
	// Returns errs.ObjectNotFoundError when the order does not exist.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetForUpdate is Get plus a row lock on the order, held until the surrounding
	// transaction ends. Dialects without row locks (sqlite) rely on the database lock.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetByItemForUpdate locks and returns the order that owns itemID.
	// Returns errs.ObjectNotFoundError when no such item exists.
	GetByItemForUpdate(ctx context.Context, itemID kernel.UUID) (*order.Order, error)

	// AddItem inserts item for the order and touches the order's updated_at.
	AddItem(ctx context.Context, aggregate *order.Order, item order.Item) error

	// RemoveItem hard-deletes the item and touches the order's updated_at.
	RemoveItem(ctx context.Context, aggregate *order.Order, itemID kernel.UUID) error

	// AppendUpdate inserts the history row and stores the order's current status
	// and updated_at.
	AppendUpdate(ctx context.Context, aggregate *order.Order, update order.Update) error

	// Delete removes the order; items and updates go with it. Reports false when the
	// order did not exist.
	Delete(ctx context.Context, id kernel.UUID) (bool, error)

	// DeleteDraftsUpdatedBefore removes draft orders last touched before cutoff and
	// returns how many were removed.
	DeleteDraftsUpdatedBefore(ctx context.Context, cutoff time.Time) (int64, error)
}
