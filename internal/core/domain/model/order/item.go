package order

import (
	"fmt"
	"time"

	"pizzabot/internal/core/domain/model/catalog"
	"pizzabot/internal/core/domain/model/kernel"
	"pizzabot/internal/pkg/errs"
)

// MaxQuantity is the largest quantity a single order line accepts.
const MaxQuantity = 100

// ItemType tells pizzas (sized) from extras (unsized).
type ItemType int

const (
	UnknownItemType ItemType = iota
	PizzaItem
	ExtraItem
)

func ParseItemType(s string) (ItemType, error) {
	switch s {
	case "pizza":
		return PizzaItem, nil
	case "extra":
		return ExtraItem, nil
	}
	return UnknownItemType, errs.NewValueIsInvalidErrorWithCause("item type", fmt.Errorf("%q is not pizza or extra", s))
}

func (t ItemType) String() string {
	switch t {
	case PizzaItem:
		return "pizza"
	case ExtraItem:
		return "extra"
	case UnknownItemType:
	}
	return "unknown"
}

// Item is one order line. The unit price is captured from the catalog when the item
// is created and never recomputed, so later menu changes do not rewrite history.
// Items are immutable; they are either present on the order or removed.
type Item struct {
	id        kernel.UUID
	itemType  ItemType
	catalogID string
	name      string
	size      catalog.Size
	qty       int
	unitPrice kernel.Money
	createdAt time.Time
}

// NewPizzaItem prices a pizza from the catalog by id and size.
// Unknown ids and sizes fail with catalog.ErrUnknownItem, quantities outside
// 1..MaxQuantity with ErrInvalidQuantity.
func NewPizzaItem(
	id kernel.UUID,
	menu *catalog.Catalog,
	pizzaID string,
	size catalog.Size,
	qty int,
	now time.Time,
) (Item, error) {
	if err := validateQuantity(qty); err != nil {
		return Item{}, err
	}
	pizza, price, err := menu.PizzaPrice(pizzaID, size)
	if err != nil {
		return Item{}, err
	}
	return RestoreItem(id, PizzaItem, pizza.ID, pizza.Name, size, qty, price, now)
}

// NewExtraItem prices an extra from the catalog by id.
func NewExtraItem(id kernel.UUID, menu *catalog.Catalog, extraID string, qty int, now time.Time) (Item, error) {
	if err := validateQuantity(qty); err != nil {
		return Item{}, err
	}
	extra, err := menu.FindExtra(extraID)
	if err != nil {
		return Item{}, err
	}
	return RestoreItem(id, ExtraItem, extra.ID, extra.Name, catalog.NoSize, qty, extra.Price, now)
}

// RestoreItem rebuilds an item from persisted values.
func RestoreItem(
	id kernel.UUID,
	itemType ItemType,
	catalogID string,
	name string,
	size catalog.Size,
	qty int,
	unitPrice kernel.Money,
	createdAt time.Time,
) (Item, error) {
	if err := id.Validate(); err != nil {
		return Item{}, err
	}
	if itemType != PizzaItem && itemType != ExtraItem {
		return Item{}, errs.NewValueIsInvalidErrorWithCause("item type", fmt.Errorf("%d is not a valid item type", int(itemType)))
	}
	if itemType == PizzaItem && size == catalog.NoSize {
		return Item{}, errs.NewValueIsRequiredError("pizza size")
	}
	if itemType == ExtraItem && size != catalog.NoSize {
		return Item{}, errs.NewValueIsInvalidErrorWithCause("extra size", fmt.Errorf("extras are not sized, got %s", size))
	}
	if catalogID == "" {
		return Item{}, errs.NewValueIsRequiredError("item id")
	}
	if err := validateQuantity(qty); err != nil {
		return Item{}, err
	}
	if unitPrice < 0 {
		return Item{}, errs.NewValueIsOutOfRangeError("unit price", unitPrice, 0, "unbounded")
	}

	return Item{
		id:        id,
		itemType:  itemType,
		catalogID: catalogID,
		name:      name,
		size:      size,
		qty:       qty,
		unitPrice: unitPrice,
		createdAt: createdAt,
	}, nil
}

func (i Item) ID() kernel.UUID         { return i.id }
func (i Item) Type() ItemType          { return i.itemType }
func (i Item) CatalogID() string       { return i.catalogID }
func (i Item) Name() string            { return i.name }
func (i Item) Size() catalog.Size      { return i.size }
func (i Item) Quantity() int           { return i.qty }
func (i Item) UnitPrice() kernel.Money { return i.unitPrice }
func (i Item) CreatedAt() time.Time    { return i.createdAt }

// LineTotal is unit price × quantity.
func (i Item) LineTotal() (kernel.Money, error) {
	return i.unitPrice.Times(i.qty)
}

func validateQuantity(qty int) error {
	if qty <= 0 {
		return fmt.Errorf("%w: %d is not a positive integer", ErrInvalidQuantity, qty)
	}
	if qty > MaxQuantity {
		return fmt.Errorf("%w: %d is more than %d per line", ErrInvalidQuantity, qty, MaxQuantity)
	}
	return nil
}
