package tools

import (
	"time"

	"pizzabot/internal/core/application/usecases/queries"
	"pizzabot/internal/core/domain/model/order"
)

// OrderPayload is the order as shown to the model and the admin view.
type OrderPayload struct {
	Order   OrderHeader   `json:"order"`
	Items   []ItemPayload `json:"items"`
	Updates []UpdateLine  `json:"updates"`
	Totals  TotalsPayload `json:"totals"`
}

type OrderHeader struct {
	ID           string    `json:"id"`
	CustomerID   string    `json:"customer_id,omitempty"`
	CustomerName string    `json:"customer_name,omitempty"`
	Phone        string    `json:"phone,omitempty"`
	Status       string    `json:"status"`
	DeliveryType string    `json:"delivery_type"`
	Address      string    `json:"address,omitempty"`
	Notes        string    `json:"notes,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type ItemPayload struct {
	ID        string    `json:"id"`
	ItemType  string    `json:"item_type"`
	ItemID    string    `json:"item_id"`
	ItemName  string    `json:"item_name"`
	Size      string    `json:"size,omitempty"`
	Qty       int       `json:"qty"`
	UnitPrice int64     `json:"unit_price"`
	LineTotal int64     `json:"line_total"`
	CreatedAt time.Time `json:"created_at"`
}

type UpdateLine struct {
	ID        string    `json:"id"`
	Status    string    `json:"status"`
	Message   string    `json:"message,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type TotalsPayload struct {
	Subtotal    int64 `json:"subtotal"`
	DeliveryFee int64 `json:"delivery_fee"`
	Tax         int64 `json:"tax"`
	Total       int64 `json:"total"`
}

type StartOrderPayload struct {
	OrderID string `json:"order_id"`
}

type RemoveItemPayload struct {
	OK bool `json:"ok"`
}

type CheckoutPayload struct {
	Order  OrderPayload  `json:"order"`
	Totals TotalsPayload `json:"totals"`
}

type MenuPayload struct {
	MenuText    string         `json:"menu_text"`
	Currency    string         `json:"currency"`
	DeliveryFee int64          `json:"delivery_fee"`
	TaxPercent  float64        `json:"tax_percent"`
	Pizzas      []PizzaPayload `json:"pizzas"`
	Extras      []ExtraPayload `json:"extras"`
}

type PizzaPayload struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Description string           `json:"description,omitempty"`
	Sizes       map[string]int64 `json:"sizes"`
}

type ExtraPayload struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Price int64  `json:"price"`
}

// NewOrderPayload converts a query result to its wire shape.
func NewOrderPayload(details queries.GetOrderQueryResponse) OrderPayload {
	header := OrderHeader{
		ID:           details.Order.ID.String(),
		CustomerName: details.Order.CustomerName,
		Phone:        details.Order.CustomerPhone,
		Status:       details.Order.Status.String(),
		DeliveryType: details.Order.DeliveryType.String(),
		Address:      details.Order.Address,
		Notes:        details.Order.Notes,
		CreatedAt:    details.Order.CreatedAt,
		UpdatedAt:    details.Order.UpdatedAt,
	}
	if details.Order.CustomerID != nil {
		header.CustomerID = details.Order.CustomerID.String()
	}

	items := make([]ItemPayload, 0, len(details.Items))
	for _, item := range details.Items {
		items = append(items, ItemPayload{
			ID:        item.ID.String(),
			ItemType:  item.ItemType.String(),
			ItemID:    item.ItemID,
			ItemName:  item.ItemName,
			Size:      item.Size.String(),
			Qty:       item.Qty,
			UnitPrice: int64(item.UnitPrice),
			LineTotal: int64(item.LineTotal),
			CreatedAt: item.CreatedAt,
		})
	}

	updates := make([]UpdateLine, 0, len(details.Updates))
	for _, update := range details.Updates {
		updates = append(updates, UpdateLine{
			ID:        update.ID.String(),
			Status:    update.Status.String(),
			Message:   update.Message,
			CreatedAt: update.CreatedAt,
		})
	}

	return OrderPayload{
		Order:   header,
		Items:   items,
		Updates: updates,
		Totals:  NewTotalsPayload(details.Totals),
	}
}

func NewTotalsPayload(totals order.Totals) TotalsPayload {
	return TotalsPayload{
		Subtotal:    int64(totals.Subtotal),
		DeliveryFee: int64(totals.DeliveryFee),
		Tax:         int64(totals.Tax),
		Total:       int64(totals.Total),
	}
}

func NewMenuPayload(menu queries.GetMenuQueryResponse) MenuPayload {
	pizzas := make([]PizzaPayload, 0, len(menu.Pizzas))
	for _, p := range menu.Pizzas {
		sizes := make(map[string]int64, len(p.Prices))
		for _, sp := range p.Prices {
			sizes[sp.Size.String()] = int64(sp.Price)
		}
		pizzas = append(pizzas, PizzaPayload{ID: p.ID, Name: p.Name, Description: p.Description, Sizes: sizes})
	}

	extras := make([]ExtraPayload, 0, len(menu.Extras))
	for _, e := range menu.Extras {
		extras = append(extras, ExtraPayload{ID: e.ID, Name: e.Name, Price: int64(e.Price)})
	}

	return MenuPayload{
		MenuText:    menu.MenuText,
		Currency:    menu.Currency,
		DeliveryFee: int64(menu.DeliveryFee),
		TaxPercent:  menu.TaxRate,
		Pizzas:      pizzas,
		Extras:      extras,
	}
}
