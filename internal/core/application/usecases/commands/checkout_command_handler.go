package commands

import (
	"context"
	"time"

	"pizzabot/internal/core/domain/model/catalog"
	"pizzabot/internal/core/domain/model/order"
)

// CheckoutCommandHandler places a draft order and reports its final totals.
type CheckoutCommandHandler struct {
	uowFactory OrderUoWFactory
	menu       *catalog.Catalog
}

func NewCheckoutCommandHandler(uowFactory OrderUoWFactory, menu *catalog.Catalog) CheckoutCommandHandler {
	return CheckoutCommandHandler{uowFactory: uowFactory, menu: menu}
}

// Handle fails with order.ErrEmptyOrder for an order without items and with
// order.ErrInvalidTransition when the order is no longer draft. In both cases the
// stored order is unchanged.
func (h CheckoutCommandHandler) Handle(ctx context.Context, cmd CheckoutCommand) (order.Totals, error) {
	if err := cmd.Validate(); err != nil {
		return order.Totals{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return order.Totals{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return order.Totals{}, err
	}

	totals, update, err := o.Checkout(h.menu, time.Now().UTC())
	if err != nil {
		return order.Totals{}, err
	}

	if err = orderRepo.AppendUpdate(ctx, o, update); err != nil {
		return order.Totals{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return order.Totals{}, err
	}

	return totals, nil
}
