package commands

import (
	"context"
	"time"

	"pizzabot/internal/core/domain/model/customer"
	"pizzabot/internal/core/domain/model/kernel"
	"pizzabot/internal/core/domain/model/order"
)

// StartOrderCommandHandler creates the customer (when named) and the draft order in
// one transaction, so a failed order never leaves a stray customer behind.
type StartOrderCommandHandler struct {
	uowFactory UoWFactory
}

func NewStartOrderCommandHandler(uowFactory UoWFactory) StartOrderCommandHandler {
	return StartOrderCommandHandler{uowFactory: uowFactory}
}

// Handle persists the new order with status draft and its "order created" update.
func (h StartOrderCommandHandler) Handle(ctx context.Context, cmd StartOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	now := time.Now().UTC()
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	var customerID *kernel.UUID
	if cmd.HasCustomer() {
		c, err := customer.NewCustomer(kernel.NewUUID(), cmd.CustomerName(), cmd.Phone(), now)
		if err != nil {
			return err
		}
		if err = uow.CustomerRepository().Add(ctx, c); err != nil {
			return err
		}
		id := c.ID()
		customerID = &id
	}

	o, err := order.NewOrder(cmd.OrderID(), customerID, cmd.DeliveryType(), cmd.Address(), cmd.Notes(), now)
	if err != nil {
		return err
	}

	if err = uow.OrderRepository().Add(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
