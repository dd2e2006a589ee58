package commands

import (
	"context"
	"time"

	"pizzabot/internal/core/domain/model/order"
)

// UpdateOrderStatusCommandHandler applies admin status changes under the configured
// transition policy.
type UpdateOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
	policy     order.TransitionPolicy
}

func NewUpdateOrderStatusCommandHandler(
	uowFactory OrderUoWFactory,
	policy order.TransitionPolicy,
) UpdateOrderStatusCommandHandler {
	return UpdateOrderStatusCommandHandler{uowFactory: uowFactory, policy: policy}
}

// Handle appends exactly one update carrying the message. Rejected transitions fail
// with order.ErrInvalidTransition and leave the order untouched.
func (h UpdateOrderStatusCommandHandler) Handle(ctx context.Context, cmd UpdateOrderStatusCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	update, err := o.AdvanceStatus(cmd.Status(), cmd.Message(), h.policy, time.Now().UTC())
	if err != nil {
		return err
	}

	if err = orderRepo.AppendUpdate(ctx, o, update); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
