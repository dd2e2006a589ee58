package queries

import (
	"pizzabot/internal/core/domain/model/catalog"
)

// GetMenuQueryHandler reads the in-memory catalog; it never touches the store.
type GetMenuQueryHandler struct {
	menu *catalog.Catalog
}

func NewGetMenuQueryHandler(menu *catalog.Catalog) GetMenuQueryHandler {
	return GetMenuQueryHandler{menu: menu}
}

func (h GetMenuQueryHandler) Handle() GetMenuQueryResponse {
	pizzas := make([]MenuPizza, 0, len(h.menu.Pizzas()))
	for _, p := range h.menu.Pizzas() {
		prices := make([]SizePrice, 0, len(p.Prices))
		for _, size := range catalog.Sizes() {
			if price, ok := p.Price(size); ok {
				prices = append(prices, SizePrice{Size: size, Price: price})
			}
		}
		pizzas = append(pizzas, MenuPizza{ID: p.ID, Name: p.Name, Description: p.Description, Prices: prices})
	}

	extras := make([]MenuExtra, 0, len(h.menu.Extras()))
	for _, e := range h.menu.Extras() {
		extras = append(extras, MenuExtra{ID: e.ID, Name: e.Name, Price: e.Price})
	}

	return GetMenuQueryResponse{
		MenuText:    h.menu.MenuText(),
		Currency:    h.menu.Currency(),
		DeliveryFee: h.menu.DeliveryFee(),
		TaxRate:     h.menu.TaxRate(),
		Pizzas:      pizzas,
		Extras:      extras,
	}
}
