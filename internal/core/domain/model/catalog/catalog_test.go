package catalog_test

import (
	"testing"

	"pizzabot/internal/core/domain/model/catalog"
	"pizzabot/internal/core/domain/model/kernel"
	"pizzabot/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	c, err := catalog.New("PKR",
		[]catalog.Pizza{
			{
				ID:          "margherita",
				Name:        "Margherita",
				Description: "Tomato, mozzarella, basil",
				Prices:      map[catalog.Size]kernel.Money{catalog.Small: 899, catalog.Medium: 1199, catalog.Large: 1399},
			},
			{
				ID:     "Fajita",
				Name:   "Chicken Fajita",
				Prices: map[catalog.Size]kernel.Money{catalog.Medium: 1299},
			},
		},
		[]catalog.Extra{{ID: "cheese", Name: "Extra cheese", Price: 150}},
		200,
		0,
	)
	require.NoError(t, err)
	return c
}

func TestNew(t *testing.T) {
	t.Run("should reject duplicate pizza ids ignoring case", func(t *testing.T) {
		_, err := catalog.New("", []catalog.Pizza{
			{ID: "veggie", Prices: map[catalog.Size]kernel.Money{catalog.Small: 1}},
			{ID: " VEGGIE ", Prices: map[catalog.Size]kernel.Money{catalog.Small: 1}},
		}, nil, 0, 0)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject pizzas without prices", func(t *testing.T) {
		_, err := catalog.New("", []catalog.Pizza{{ID: "veggie"}}, nil, 0, 0)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should reject blank extra ids", func(t *testing.T) {
		_, err := catalog.New("", nil, []catalog.Extra{{ID: " "}}, 0, 0)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should reject tax rate outside a fraction", func(t *testing.T) {
		_, err := catalog.New("", nil, nil, 0, 16)

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("should reject negative delivery fee", func(t *testing.T) {
		_, err := catalog.New("", nil, nil, -1, 0)

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})
}

func TestCatalog_PizzaPrice(t *testing.T) {
	c := testCatalog(t)

	t.Run("should resolve price by id and size", func(t *testing.T) {
		p, price, err := c.PizzaPrice("margherita", catalog.Large)

		require.NoError(t, err)
		assert.Equal(t, "Margherita", p.Name)
		assert.Equal(t, kernel.Money(1399), price)
	})

	t.Run("should match ids case insensitively", func(t *testing.T) {
		p, price, err := c.PizzaPrice("  fajita ", catalog.Medium)

		require.NoError(t, err)
		assert.Equal(t, "Fajita", p.ID)
		assert.Equal(t, kernel.Money(1299), price)
	})

	t.Run("should fail for unknown pizza", func(t *testing.T) {
		_, _, err := c.PizzaPrice("hawaiian", catalog.Large)

		require.ErrorIs(t, err, catalog.ErrUnknownItem)
		assert.Contains(t, err.Error(), `pizza "hawaiian"`)
	})

	t.Run("should fail for size the pizza is not offered in", func(t *testing.T) {
		_, _, err := c.PizzaPrice("fajita", catalog.Large)

		require.ErrorIs(t, err, catalog.ErrUnknownItem)
		assert.Contains(t, err.Error(), "size large")
	})
}

func TestCatalog_FindExtra(t *testing.T) {
	c := testCatalog(t)

	e, err := c.FindExtra("CHEESE")
	require.NoError(t, err)
	assert.Equal(t, kernel.Money(150), e.Price)

	_, err = c.FindExtra("olives")
	require.ErrorIs(t, err, catalog.ErrUnknownItem)
}

func TestCatalog_AccessorsReturnCopies(t *testing.T) {
	c := testCatalog(t)

	pizzas := c.Pizzas()
	pizzas[0].Name = "changed"

	assert.Equal(t, "Margherita", c.Pizzas()[0].Name)
	assert.Equal(t, kernel.Money(200), c.DeliveryFee())
	assert.InDelta(t, 0.0, c.TaxRate(), 1e-9)
}

func TestCatalog_MenuText(t *testing.T) {
	text := testCatalog(t).MenuText()

	assert.Contains(t, text, "Menu (prices in PKR):")
	assert.Contains(t, text, "- Margherita (margherita): Tomato, mozzarella, basil | S 899 / M 1199 / L 1399")
	assert.Contains(t, text, "- Chicken Fajita (Fajita):  | M 1299")
	assert.Contains(t, text, "- Extra cheese (cheese): 150")
	assert.Contains(t, text, "Delivery fee: 200")
}

func TestParseSize(t *testing.T) {
	for input, want := range map[string]catalog.Size{"small": catalog.Small, " Medium ": catalog.Medium, "LARGE": catalog.Large} {
		got, err := catalog.ParseSize(input)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := catalog.ParseSize("family")
	require.ErrorIs(t, err, catalog.ErrUnknownItem)
	assert.Contains(t, err.Error(), `size "family"`)
}
