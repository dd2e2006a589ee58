package queries

import (
	"pizzabot/internal/core/domain/model/catalog"
	"pizzabot/internal/core/domain/model/kernel"
)

// MenuPizza lists the sizes a pizza is offered in, smallest first.
type MenuPizza struct {
	ID          string
	Name        string
	Description string
	Prices      []SizePrice
}

type SizePrice struct {
	Size  catalog.Size
	Price kernel.Money
}

type MenuExtra struct {
	ID    string
	Name  string
	Price kernel.Money
}

type GetMenuQueryResponse struct {
	MenuText    string
	Currency    string
	DeliveryFee kernel.Money
	TaxRate     float64
	Pizzas      []MenuPizza
	Extras      []MenuExtra
}
