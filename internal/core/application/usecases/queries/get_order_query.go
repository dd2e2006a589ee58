// Package queries contains read-only views over the order store. Handlers read
// with raw SQL through GORM and never go through the aggregates' repositories.
package queries

import (
	"errors"
	"time"

	"pizzabot/internal/core/domain/model/catalog"
	"pizzabot/internal/core/domain/model/kernel"
	"pizzabot/internal/core/domain/model/order"
	"pizzabot/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery fetches one order with its items, status history and totals.
//
// Example:
//
//	query, err := NewGetOrderQuery(orderID)
//	if err != nil {
//	    return err
//	}
//	details, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return err
//	}
//	fmt.Printf("%s: %s, total %s\n", details.Order.ID, details.Order.Status, details.Totals.Total)
type GetOrderQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetOrderQuery(orderID kernel.UUID) (GetOrderQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderQuery{}, err
	}
	return GetOrderQuery{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

func (q GetOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

// OrderView is the order header. Customer fields are empty for anonymous orders.
type OrderView struct {
	ID            kernel.UUID
	CustomerID    *kernel.UUID
	CustomerName  string
	CustomerPhone string
	Status        order.Status
	DeliveryType  order.DeliveryType
	Address       string
	Notes         string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type ItemView struct {
	ID        kernel.UUID
	ItemType  order.ItemType
	ItemID    string
	ItemName  string
	Size      catalog.Size
	Qty       int
	UnitPrice kernel.Money
	LineTotal kernel.Money
	CreatedAt time.Time
}

type UpdateView struct {
	ID        kernel.UUID
	Status    order.Status
	Message   string
	CreatedAt time.Time
}

// GetOrderQueryResponse lists items and updates in insertion order. Totals are
// recomputed from the items on every call.
type GetOrderQueryResponse struct {
	Order   OrderView
	Items   []ItemView
	Updates []UpdateView
	Totals  order.Totals
}
