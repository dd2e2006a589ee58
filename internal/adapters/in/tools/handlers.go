package tools

import (
	"context"

	"pizzabot/internal/core/application/usecases/commands"
	"pizzabot/internal/core/application/usecases/queries"
	"pizzabot/internal/core/domain/model/kernel"
)

// Handlers are the use cases the tools run. Every field must be set.
type Handlers struct {
	GetMenu      queries.GetMenuQueryHandler
	GetOrder     queries.GetOrderQueryHandler
	StartOrder   commands.StartOrderCommandHandler
	AddPizza     commands.AddPizzaCommandHandler
	AddExtra     commands.AddExtraCommandHandler
	RemoveItem   commands.RemoveItemCommandHandler
	Checkout     commands.CheckoutCommandHandler
	UpdateStatus commands.UpdateOrderStatusCommandHandler
}

func (h Handlers) tools() []Tool {
	return []Tool{
		h.getMenuTool(),
		h.startOrderTool(),
		h.addPizzaTool(),
		h.addExtraTool(),
		h.removeItemTool(),
		h.checkoutTool(),
		h.getOrderStatusTool(),
		h.adminUpdateStatusTool(),
	}
}

// orderPayload reads the order back after a command so the caller sees the stored
// state, totals included.
func (h Handlers) orderPayload(ctx context.Context, orderID kernel.UUID) (OrderPayload, error) {
	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return OrderPayload{}, err
	}
	details, err := h.GetOrder.Handle(ctx, query)
	if err != nil {
		return OrderPayload{}, err
	}
	return NewOrderPayload(details), nil
}

func quantity(qty *int) int {
	if qty == nil {
		return 1
	}
	return *qty
}
