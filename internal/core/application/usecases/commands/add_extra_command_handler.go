package commands

import (
	"context"
	"time"

	"pizzabot/internal/core/domain/model/catalog"
	"pizzabot/internal/core/domain/model/kernel"
	"pizzabot/internal/core/domain/model/order"
)

// AddExtraCommandHandler prices the extra from the catalog and appends it to a draft
// order.
type AddExtraCommandHandler struct {
	uowFactory OrderUoWFactory
	menu       *catalog.Catalog
}

func NewAddExtraCommandHandler(uowFactory OrderUoWFactory, menu *catalog.Catalog) AddExtraCommandHandler {
	return AddExtraCommandHandler{uowFactory: uowFactory, menu: menu}
}

func (h AddExtraCommandHandler) Handle(ctx context.Context, cmd AddExtraCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if _, err := h.menu.FindExtra(cmd.ExtraID()); err != nil {
		return err
	}

	return addItem(ctx, h.uowFactory, cmd.OrderID(), func(now time.Time) (order.Item, error) {
		return order.NewExtraItem(cmd.ItemID(), h.menu, cmd.ExtraID(), cmd.Qty(), now)
	})
}

// addItem locks the order, then builds the item with the current time so
// created_at and updated_at follow the order in which writers got the lock.
func addItem(
	ctx context.Context,
	uowFactory OrderUoWFactory,
	orderID kernel.UUID,
	newItem func(now time.Time) (order.Item, error),
) error {
	uow := uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.GetForUpdate(ctx, orderID)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	item, err := newItem(now)
	if err != nil {
		return err
	}
	if err = o.AddItem(item, now); err != nil {
		return err
	}

	if err = orderRepo.AddItem(ctx, o, item); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
