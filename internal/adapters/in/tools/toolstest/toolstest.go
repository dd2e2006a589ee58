// Package toolstest wires a complete tool registry over a throwaway sqlite store.
package toolstest

import (
	"testing"

	"pizzabot/internal/adapters/in/tools"
	"pizzabot/internal/adapters/out/persistence"
	"pizzabot/internal/adapters/out/persistence/persistencetest"
	"pizzabot/internal/core/application/usecases/commands"
	"pizzabot/internal/core/application/usecases/queries"
	"pizzabot/internal/core/domain/model/catalog"
	"pizzabot/internal/core/domain/model/kernel"
	"pizzabot/internal/core/domain/model/order"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type orderUoWFactory struct {
	factory *persistence.GormUnitOfWorkFactory
}

func (f orderUoWFactory) Create() commands.OrderUoW {
	return f.factory.Create()
}

type uowFactory struct {
	factory *persistence.GormUnitOfWorkFactory
}

func (f uowFactory) Create() commands.UoW {
	return f.factory.Create()
}

// Env is a registry together with the store and catalog behind it.
type Env struct {
	DB       *gorm.DB
	Menu     *catalog.Catalog
	Orders   commands.OrderUoWFactory
	Handlers tools.Handlers
	Registry *tools.Registry
}

// Menu is margherita (S 899, M 1199, L 1399), pepperoni (L 1699 only) and the
// cheese extra at 150, with a 200 delivery fee and no tax.
func Menu(t testing.TB) *catalog.Catalog {
	t.Helper()

	menu, err := catalog.New("PKR",
		[]catalog.Pizza{
			{
				ID:          "margherita",
				Name:        "Margherita",
				Description: "Tomato, mozzarella, basil",
				Prices: map[catalog.Size]kernel.Money{
					catalog.Small:  899,
					catalog.Medium: 1199,
					catalog.Large:  1399,
				},
			},
			{
				ID:     "pepperoni",
				Name:   "Pepperoni",
				Prices: map[catalog.Size]kernel.Money{catalog.Large: 1699},
			},
		},
		[]catalog.Extra{{ID: "cheese", Name: "Extra cheese", Price: 150}},
		200, 0,
	)
	require.NoError(t, err)
	return menu
}

// New builds an Env on a fresh store using menu and policy.
func New(t testing.TB, menu *catalog.Catalog, policy order.TransitionPolicy) *Env {
	t.Helper()

	db := persistencetest.NewSQLiteDB(t)
	factory := persistence.NewGormUnitOfWorkFactory(db)
	orders := orderUoWFactory{factory: factory}

	handlers := tools.Handlers{
		GetMenu:      queries.NewGetMenuQueryHandler(menu),
		GetOrder:     queries.NewGetOrderQueryHandler(db, menu),
		StartOrder:   commands.NewStartOrderCommandHandler(uowFactory{factory: factory}),
		AddPizza:     commands.NewAddPizzaCommandHandler(orders, menu),
		AddExtra:     commands.NewAddExtraCommandHandler(orders, menu),
		RemoveItem:   commands.NewRemoveItemCommandHandler(orders),
		Checkout:     commands.NewCheckoutCommandHandler(orders, menu),
		UpdateStatus: commands.NewUpdateOrderStatusCommandHandler(orders, policy),
	}

	return &Env{
		DB:       db,
		Menu:     menu,
		Orders:   orders,
		Handlers: handlers,
		Registry: tools.NewRegistry(handlers, zerolog.Nop()),
	}
}
