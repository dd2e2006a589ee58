package commands

import (
	"errors"
	"strings"

	"pizzabot/internal/core/domain/model/kernel"
	"pizzabot/internal/core/domain/model/order"
	"pizzabot/internal/pkg/guard"
)

var ErrUpdateOrderStatusCommandIsNotConstructed = errors.New(
	"UpdateOrderStatusCommand must be created via NewUpdateOrderStatusCommand constructor",
)

// UpdateOrderStatusCommand is the admin request to move an order along its lifecycle.
type UpdateOrderStatusCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	status  order.Status
	message string

	guard guard.ConstructorGuard
}

// NewUpdateOrderStatusCommand parses status by name; unrecognized names fail with
// order.ErrInvalidStatus.
func NewUpdateOrderStatusCommand(orderID kernel.UUID, status string, message string) (UpdateOrderStatusCommand, error) {
	cmd := UpdateOrderStatusCommand{
		message: strings.TrimSpace(message),
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setStatus(status),
	); err != nil {
		return UpdateOrderStatusCommand{}, err
	}

	return cmd, nil
}

func (c UpdateOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderStatusCommandIsNotConstructed)
}

func (c UpdateOrderStatusCommand) OrderID() kernel.UUID { return c.orderID }
func (c UpdateOrderStatusCommand) Status() order.Status { return c.status }
func (c UpdateOrderStatusCommand) Message() string      { return c.message }

func (c *UpdateOrderStatusCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *UpdateOrderStatusCommand) setStatus(status string) error {
	s, err := order.ParseStatus(status)
	if err != nil {
		return err
	}

	c.status = s
	return nil
}
