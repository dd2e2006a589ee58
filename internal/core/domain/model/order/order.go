package order

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"pizzabot/internal/core/domain/model/catalog"
	"pizzabot/internal/core/domain/model/kernel"
)

// Message texts recorded in the status history.
const (
	MessageCreated = "order created"
	MessagePlaced  = "order placed"
)

// Order is the aggregate root for one customer order: its lifecycle status, its
// items and its status history.
//
// Order follows these invariants:
//   - Items change only while the order is Draft
//   - Status moves only through Place (checkout) and Advance (admin), per Status rules
//   - Every status change appends exactly one Update
//   - Totals are computed from the items on demand
//   - Can only be created through NewOrder or RestoreOrder
type Order struct {
	id           kernel.UUID
	customerID   *kernel.UUID
	status       Status
	deliveryType DeliveryType
	address      string
	notes        string
	createdAt    time.Time
	updatedAt    time.Time
	items        []Item
	updates      []Update

	isConstructed bool
}

// NewOrder creates a Draft order and records the creation in its history.
// customerID is optional; anonymous orders are allowed. The address is kept even
// for pickup orders and is not required for delivery orders.
func NewOrder(
	id kernel.UUID,
	customerID *kernel.UUID,
	deliveryType DeliveryType,
	address string,
	notes string,
	now time.Time,
) (*Order, error) {
	created, err := NewUpdate(kernel.NewUUID(), Draft, MessageCreated, now)
	if err != nil {
		return nil, err
	}
	return RestoreOrder(id, customerID, Draft, deliveryType, address, notes, now, now, nil, []Update{created})
}

// RestoreOrder rebuilds an order from persisted state.
func RestoreOrder(
	id kernel.UUID,
	customerID *kernel.UUID,
	status Status,
	deliveryType DeliveryType,
	address string,
	notes string,
	createdAt time.Time,
	updatedAt time.Time,
	items []Item,
	updates []Update,
) (*Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if customerID != nil {
		if err := customerID.Validate(); err != nil {
			return nil, err
		}
	}
	if err := status.Validate(); err != nil {
		return nil, err
	}
	if err := deliveryType.Validate(); err != nil {
		return nil, err
	}

	return &Order{
		id:            id,
		customerID:    customerID,
		status:        status,
		deliveryType:  deliveryType,
		address:       strings.TrimSpace(address),
		notes:         strings.TrimSpace(notes),
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		items:         append([]Item(nil), items...),
		updates:       append([]Update(nil), updates...),
		isConstructed: true,
	}, nil
}

// Validate ensures the Order instance was built by a constructor.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

func (o *Order) ID() kernel.UUID            { return o.id }
func (o *Order) CustomerID() *kernel.UUID   { return o.customerID }
func (o *Order) Status() Status             { return o.status }
func (o *Order) DeliveryType() DeliveryType { return o.deliveryType }
func (o *Order) Address() string            { return o.address }
func (o *Order) Notes() string              { return o.notes }
func (o *Order) CreatedAt() time.Time       { return o.createdAt }
func (o *Order) UpdatedAt() time.Time       { return o.updatedAt }

// Items returns the current items in insertion order.
func (o *Order) Items() []Item {
	return append([]Item(nil), o.items...)
}

// Updates returns the status history, oldest first.
func (o *Order) Updates() []Update {
	return append([]Update(nil), o.updates...)
}

// Item finds an item by id.
func (o *Order) Item(id kernel.UUID) (Item, bool) {
	for _, item := range o.items {
		if item.id.IsEqual(id) {
			return item, true
		}
	}
	return Item{}, false
}

// Totals computes subtotal, tax, fee and total from the current items.
func (o *Order) Totals(menu *catalog.Catalog) (Totals, error) {
	return ComputeTotals(o.items, o.deliveryType, menu)
}

// AddItem appends item. Fails with ErrOrderLocked unless the order is Draft, and
// with ErrInvalidQuantity when the new subtotal would not fit in Money.
func (o *Order) AddItem(item Item, now time.Time) error {
	if !o.status.IsMutable() {
		return lockedError(o.status)
	}
	if err := item.id.Validate(); err != nil {
		return err
	}
	items := append(slices.Clip(o.items), item)
	if _, err := subtotalOf(items); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidQuantity, err)
	}
	o.items = items
	o.updatedAt = now
	return nil
}

// RemoveItem deletes the item with itemID. It reports false, without error, when the
// order has no such item. Fails with ErrOrderLocked unless the order is Draft.
func (o *Order) RemoveItem(itemID kernel.UUID, now time.Time) (bool, error) {
	if !o.status.IsMutable() {
		return false, lockedError(o.status)
	}
	for i, item := range o.items {
		if item.id.IsEqual(itemID) {
			o.items = append(o.items[:i:i], o.items[i+1:]...)
			o.updatedAt = now
			return true, nil
		}
	}
	return false, nil
}

// Checkout finalizes a Draft order: it must have at least one item. The order moves
// to Placed, an "order placed" update is appended and returned together with the
// final totals.
func (o *Order) Checkout(menu *catalog.Catalog, now time.Time) (Totals, Update, error) {
	if len(o.items) == 0 {
		return Totals{}, Update{}, ErrEmptyOrder
	}
	newStatus, err := o.status.Place()
	if err != nil {
		return Totals{}, Update{}, err
	}
	totals, err := o.Totals(menu)
	if err != nil {
		return Totals{}, Update{}, err
	}
	update, err := o.appendUpdate(newStatus, MessagePlaced, now)
	if err != nil {
		return Totals{}, Update{}, err
	}
	return totals, update, nil
}

// AdvanceStatus applies an admin-driven status change under policy and appends the
// matching update.
func (o *Order) AdvanceStatus(to Status, message string, policy TransitionPolicy, now time.Time) (Update, error) {
	newStatus, err := o.status.Advance(to, o.deliveryType, policy)
	if err != nil {
		return Update{}, err
	}
	return o.appendUpdate(newStatus, strings.TrimSpace(message), now)
}

func (o *Order) appendUpdate(status Status, message string, now time.Time) (Update, error) {
	update, err := NewUpdate(kernel.NewUUID(), status, message, now)
	if err != nil {
		return Update{}, err
	}
	o.status = status
	o.updatedAt = now
	o.updates = append(o.updates, update)
	return update, nil
}
