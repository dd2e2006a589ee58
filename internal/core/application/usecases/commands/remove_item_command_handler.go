package commands

import (
	"context"
	"errors"
	"time"

	"pizzabot/internal/pkg/errs"
)

// RemoveItemCommandHandler hard-deletes an item from its draft order.
type RemoveItemCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewRemoveItemCommandHandler(uowFactory OrderUoWFactory) RemoveItemCommandHandler {
	return RemoveItemCommandHandler{uowFactory: uowFactory}
}

// Handle reports whether an item was removed. An unknown item id is not an error and
// yields false, which makes retried removals harmless. Removing from an order that
// has left draft fails with order.ErrOrderLocked.
func (h RemoveItemCommandHandler) Handle(ctx context.Context, cmd RemoveItemCommand) (bool, error) {
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

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.GetByItemForUpdate(ctx, cmd.ItemID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	removed, err := o.RemoveItem(cmd.ItemID(), time.Now().UTC())
	if err != nil || !removed {
		return false, err
	}

	if err = orderRepo.RemoveItem(ctx, o, cmd.ItemID()); err != nil {
		return false, err
	}

	if err = uow.Commit(ctx); err != nil {
		return false, err
	}

	return true, nil
}
