package order

import (
	"fmt"

	"pizzabot/internal/core/domain/model/catalog"
	"pizzabot/internal/core/domain/model/kernel"
)

// Totals are derived from the current items every time they are needed; they are
// never stored.
type Totals struct {
	Subtotal    kernel.Money
	DeliveryFee kernel.Money
	Tax         kernel.Money
	Total       kernel.Money
}

// ComputeTotals applies the catalog's tax rate to the subtotal and adds the delivery
// fee for delivery orders. Amounts that do not fit in Money fail with
// kernel.ErrMoneyOverflow.
func ComputeTotals(items []Item, deliveryType DeliveryType, menu *catalog.Catalog) (Totals, error) {
	subtotal, err := subtotalOf(items)
	if err != nil {
		return Totals{}, err
	}

	var fee kernel.Money
	if deliveryType == Delivery {
		fee = menu.DeliveryFee()
	}

	tax, err := subtotal.ApplyRate(menu.TaxRate())
	if err != nil {
		return Totals{}, fmt.Errorf("tax: %w", err)
	}
	total, err := subtotal.Plus(tax)
	if err == nil {
		total, err = total.Plus(fee)
	}
	if err != nil {
		return Totals{}, fmt.Errorf("total: %w", err)
	}

	return Totals{
		Subtotal:    subtotal,
		DeliveryFee: fee,
		Tax:         tax,
		Total:       total,
	}, nil
}

func subtotalOf(items []Item) (kernel.Money, error) {
	var subtotal kernel.Money
	for _, item := range items {
		line, err := item.LineTotal()
		if err != nil {
			return 0, fmt.Errorf("item %s: %w", item.id, err)
		}
		if subtotal, err = subtotal.Plus(line); err != nil {
			return 0, fmt.Errorf("subtotal: %w", err)
		}
	}
	return subtotal, nil
}
