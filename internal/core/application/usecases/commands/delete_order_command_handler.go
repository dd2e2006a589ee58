package commands

import (
	"context"
)

type DeleteOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewDeleteOrderCommandHandler(uowFactory OrderUoWFactory) DeleteOrderCommandHandler {
	return DeleteOrderCommandHandler{uowFactory: uowFactory}
}

// Handle reports false when there was no such order.
func (h DeleteOrderCommandHandler) Handle(ctx context.Context, cmd DeleteOrderCommand) (bool, error) {
	if err := cmd.Validate(); err != nil {
		return false, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return false, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	deleted, err := uow.OrderRepository().Delete(ctx, cmd.OrderID())
	if err != nil {
		return false, err
	}

	if err = uow.Commit(ctx); err != nil {
		return false, err
	}

	return deleted, nil
}
