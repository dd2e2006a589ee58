package commands

import (
	"errors"

	"pizzabot/internal/core/domain/model/kernel"
	"pizzabot/internal/pkg/guard"
)

var ErrCheckoutCommandIsNotConstructed = errors.New(
	"CheckoutCommand must be created via NewCheckoutCommand constructor",
)

// CheckoutCommand finalizes a draft order.
type CheckoutCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

func NewCheckoutCommand(orderID kernel.UUID) (CheckoutCommand, error) {
	if err := orderID.Validate(); err != nil {
		return CheckoutCommand{}, err
	}
	return CheckoutCommand{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

func (c CheckoutCommand) Validate() error {
	return c.guard.Validate(ErrCheckoutCommandIsNotConstructed)
}

func (c CheckoutCommand) OrderID() kernel.UUID {
	return c.orderID
}
