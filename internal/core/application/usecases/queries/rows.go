package queries

import (
	"database/sql"
	"time"

	"pizzabot/internal/core/domain/model/catalog"
	"pizzabot/internal/core/domain/model/kernel"
	"pizzabot/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// restoreItem validates a raw order_items row through the domain constructor so
// query totals follow the same rules as the aggregate.
func restoreItem(
	id uuid.UUID,
	itemType string,
	catalogID string,
	name string,
	size sql.NullString,
	qty int,
	unitPrice int64,
	createdAt time.Time,
) (order.Item, error) {
	itemID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return order.Item{}, err
	}
	t, err := order.ParseItemType(itemType)
	if err != nil {
		return order.Item{}, err
	}
	s := catalog.NoSize
	if size.Valid {
		if s, err = catalog.ParseSize(size.String); err != nil {
			return order.Item{}, err
		}
	}
	return order.RestoreItem(itemID, t, catalogID, name, s, qty, kernel.Money(unitPrice), createdAt)
}
