package commands

import (
	"errors"

	"pizzabot/internal/core/domain/model/kernel"
	"pizzabot/internal/pkg/guard"
)

var ErrDeleteOrderCommandIsNotConstructed = errors.New(
	"DeleteOrderCommand must be created via NewDeleteOrderCommand constructor",
)

// DeleteOrderCommand removes an order with its items and history.
type DeleteOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

func NewDeleteOrderCommand(orderID kernel.UUID) (DeleteOrderCommand, error) {
	if err := orderID.Validate(); err != nil {
		return DeleteOrderCommand{}, err
	}
	return DeleteOrderCommand{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

func (c DeleteOrderCommand) Validate() error {
	return c.guard.Validate(ErrDeleteOrderCommandIsNotConstructed)
}

func (c DeleteOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}
