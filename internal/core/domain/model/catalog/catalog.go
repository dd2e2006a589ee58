// Package catalog is the read-only menu: pizzas priced per size, unsized extras,
// the delivery fee and the tax rate. It is built once at startup and shared.
package catalog

import (
	"errors"
	"fmt"
	"strings"

	"pizzabot/internal/core/domain/model/kernel"
	"pizzabot/internal/pkg/errs"
)

// ErrUnknownItem is matched by every UnknownItemError.
var ErrUnknownItem = errors.New("unknown catalog item")

// UnknownItemError names the pizza or extra (and size) that the catalog does not offer.
type UnknownItemError struct {
	Kind string
	ID   string
	Size Size
}

func (e *UnknownItemError) Error() string {
	if e.Size != NoSize {
		return fmt.Sprintf("%s: %s %q is not available in size %s", ErrUnknownItem, e.Kind, e.ID, e.Size)
	}
	return fmt.Sprintf("%s: %s %q", ErrUnknownItem, e.Kind, e.ID)
}

func (e *UnknownItemError) Unwrap() error {
	return ErrUnknownItem
}

type Pizza struct {
	ID          string
	Name        string
	Description string
	Prices      map[Size]kernel.Money
}

// Price returns the price for size and whether the pizza is offered in it.
func (p Pizza) Price(size Size) (kernel.Money, bool) {
	price, ok := p.Prices[size]
	return price, ok
}

type Extra struct {
	ID    string
	Name  string
	Price kernel.Money
}

// Catalog is immutable after New; accessors return copies.
type Catalog struct {
	currency    string
	pizzas      []Pizza
	extras      []Extra
	deliveryFee kernel.Money
	taxRate     float64
}

// New validates and builds a catalog. Identifiers must be non-empty and unique per
// kind (compared case-insensitively), prices and the fee non-negative, and taxRate a
// fraction in [0, 1].
func New(currency string, pizzas []Pizza, extras []Extra, deliveryFee kernel.Money, taxRate float64) (*Catalog, error) {
	if deliveryFee < 0 {
		return nil, errs.NewValueIsOutOfRangeError("delivery fee", deliveryFee, 0, "unbounded")
	}
	if taxRate < 0 || taxRate > 1 {
		return nil, errs.NewValueIsOutOfRangeError("tax rate", taxRate, 0, 1)
	}

	seen := make(map[string]struct{}, len(pizzas))
	for _, p := range pizzas {
		key := normalizeID(p.ID)
		if key == "" {
			return nil, errs.NewValueIsRequiredError("pizza id")
		}
		if _, dup := seen[key]; dup {
			return nil, errs.NewValueIsInvalidErrorWithCause("pizza id", fmt.Errorf("%q is listed twice", p.ID))
		}
		seen[key] = struct{}{}
		if len(p.Prices) == 0 {
			return nil, errs.NewValueIsRequiredErrorWithCause("pizza sizes", fmt.Errorf("pizza %q has no prices", p.ID))
		}
		for size, price := range p.Prices {
			if size == NoSize {
				return nil, errs.NewValueIsInvalidErrorWithCause("pizza sizes", fmt.Errorf("pizza %q has an unsized price", p.ID))
			}
			if price < 0 {
				return nil, errs.NewValueIsOutOfRangeError("pizza price", price, 0, "unbounded")
			}
		}
	}

	seen = make(map[string]struct{}, len(extras))
	for _, e := range extras {
		key := normalizeID(e.ID)
		if key == "" {
			return nil, errs.NewValueIsRequiredError("extra id")
		}
		if _, dup := seen[key]; dup {
			return nil, errs.NewValueIsInvalidErrorWithCause("extra id", fmt.Errorf("%q is listed twice", e.ID))
		}
		seen[key] = struct{}{}
		if e.Price < 0 {
			return nil, errs.NewValueIsOutOfRangeError("extra price", e.Price, 0, "unbounded")
		}
	}

	c := &Catalog{
		currency:    currency,
		pizzas:      make([]Pizza, 0, len(pizzas)),
		extras:      append([]Extra(nil), extras...),
		deliveryFee: deliveryFee,
		taxRate:     taxRate,
	}
	for _, p := range pizzas {
		prices := make(map[Size]kernel.Money, len(p.Prices))
		for size, price := range p.Prices {
			prices[size] = price
		}
		p.Prices = prices
		c.pizzas = append(c.pizzas, p)
	}
	return c, nil
}

func (c *Catalog) Currency() string {
	return c.currency
}

func (c *Catalog) Pizzas() []Pizza {
	out := make([]Pizza, len(c.pizzas))
	copy(out, c.pizzas)
	return out
}

func (c *Catalog) Extras() []Extra {
	out := make([]Extra, len(c.extras))
	copy(out, c.extras)
	return out
}

func (c *Catalog) DeliveryFee() kernel.Money {
	return c.deliveryFee
}

// TaxRate is the fraction applied to the subtotal, e.g. 0.16.
func (c *Catalog) TaxRate() float64 {
	return c.taxRate
}

// FindPizza looks a pizza up by id, ignoring case and surrounding spaces.
func (c *Catalog) FindPizza(id string) (Pizza, error) {
	key := normalizeID(id)
	for _, p := range c.pizzas {
		if normalizeID(p.ID) == key {
			return p, nil
		}
	}
	return Pizza{}, &UnknownItemError{Kind: "pizza", ID: id}
}

// FindExtra looks an extra up by id, ignoring case and surrounding spaces.
func (c *Catalog) FindExtra(id string) (Extra, error) {
	key := normalizeID(id)
	for _, e := range c.extras {
		if normalizeID(e.ID) == key {
			return e, nil
		}
	}
	return Extra{}, &UnknownItemError{Kind: "extra", ID: id}
}

// PizzaPrice resolves the pizza and its current price for size.
func (c *Catalog) PizzaPrice(id string, size Size) (Pizza, kernel.Money, error) {
	p, err := c.FindPizza(id)
	if err != nil {
		return Pizza{}, 0, err
	}
	price, ok := p.Price(size)
	if !ok {
		return Pizza{}, 0, &UnknownItemError{Kind: "pizza", ID: id, Size: size}
	}
	return p, price, nil
}

// MenuText renders the menu for a chat transcript.
func (c *Catalog) MenuText() string {
	var b strings.Builder
	if c.currency != "" {
		fmt.Fprintf(&b, "Menu (prices in %s):\n", c.currency)
	} else {
		b.WriteString("Menu:\n")
	}

	b.WriteString("\nPizzas:\n")
	for _, p := range c.pizzas {
		prices := make([]string, 0, len(p.Prices))
		for _, size := range Sizes() {
			if price, ok := p.Price(size); ok {
				prices = append(prices, fmt.Sprintf("%s %d", size.Short(), price))
			}
		}
		fmt.Fprintf(&b, "- %s (%s): %s | %s\n", p.Name, p.ID, p.Description, strings.Join(prices, " / "))
	}

	b.WriteString("\nExtras:\n")
	for _, e := range c.extras {
		fmt.Fprintf(&b, "- %s (%s): %d\n", e.Name, e.ID, e.Price)
	}

	fmt.Fprintf(&b, "\nDelivery fee: %d", c.deliveryFee)
	return b.String()
}

func normalizeID(id string) string {
	return strings.ToLower(strings.TrimSpace(id))
}
