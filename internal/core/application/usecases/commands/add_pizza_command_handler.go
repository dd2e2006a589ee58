package commands

import (
	"context"
	"time"

	"pizzabot/internal/core/domain/model/catalog"
	"pizzabot/internal/core/domain/model/order"
)

// AddPizzaCommandHandler prices the pizza from the catalog and appends it to a draft
// order. The unit price is fixed at this moment.
type AddPizzaCommandHandler struct {
	uowFactory OrderUoWFactory
	menu       *catalog.Catalog
}

func NewAddPizzaCommandHandler(uowFactory OrderUoWFactory, menu *catalog.Catalog) AddPizzaCommandHandler {
	return AddPizzaCommandHandler{uowFactory: uowFactory, menu: menu}
}

// Handle fails with catalog.ErrUnknownItem before touching the store, with
// errs.ErrObjectNotFound for a missing order and with order.ErrOrderLocked once the
// order has left draft.
func (h AddPizzaCommandHandler) Handle(ctx context.Context, cmd AddPizzaCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if _, _, err := h.menu.PizzaPrice(cmd.PizzaID(), cmd.Size()); err != nil {
		return err
	}

	return addItem(ctx, h.uowFactory, cmd.OrderID(), func(now time.Time) (order.Item, error) {
		return order.NewPizzaItem(cmd.ItemID(), h.menu, cmd.PizzaID(), cmd.Size(), cmd.Qty(), now)
	})
}
