package commands

import (
	"errors"
	"strings"

	"pizzabot/internal/core/domain/model/kernel"
	"pizzabot/internal/core/domain/model/order"
	"pizzabot/internal/pkg/guard"
)

var ErrStartOrderCommandIsNotConstructed = errors.New(
	"StartOrderCommand must be created via NewStartOrderCommand constructor",
)

// StartOrderCommand opens a new draft order, optionally for a named customer.
//
// Example:
//
//	orderID := kernel.NewUUID()
//	cmd, err := NewStartOrderCommand(orderID, "delivery", "Ayesha", "0300-1234567", "12 Mall Road", "")
//	if err != nil {
//	    return err
//	}
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return err
//	}
type StartOrderCommand struct { //nolint:recvcheck //using for validation
	orderID      kernel.UUID
	deliveryType order.DeliveryType
	customerName string
	phone        string
	address      string
	notes        string

	guard guard.ConstructorGuard
}

// NewStartOrderCommand validates the order id and delivery type. An empty customer
// name means an anonymous order; phone is ignored without a name.
func NewStartOrderCommand(
	orderID kernel.UUID,
	deliveryType string,
	customerName string,
	phone string,
	address string,
	notes string,
) (StartOrderCommand, error) {
	cmd := StartOrderCommand{
		customerName: strings.TrimSpace(customerName),
		phone:        strings.TrimSpace(phone),
		address:      strings.TrimSpace(address),
		notes:        strings.TrimSpace(notes),
		guard:        guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setDeliveryType(deliveryType),
	); err != nil {
		return StartOrderCommand{}, err
	}

	return cmd, nil
}

func (c StartOrderCommand) Validate() error {
	return c.guard.Validate(ErrStartOrderCommandIsNotConstructed)
}

func (c StartOrderCommand) OrderID() kernel.UUID             { return c.orderID }
func (c StartOrderCommand) DeliveryType() order.DeliveryType { return c.deliveryType }
func (c StartOrderCommand) CustomerName() string             { return c.customerName }
func (c StartOrderCommand) Phone() string                    { return c.phone }
func (c StartOrderCommand) Address() string                  { return c.address }
func (c StartOrderCommand) Notes() string                    { return c.notes }
func (c StartOrderCommand) HasCustomer() bool                { return c.customerName != "" }

func (c *StartOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *StartOrderCommand) setDeliveryType(deliveryType string) error {
	dt, err := order.ParseDeliveryType(deliveryType)
	if err != nil {
		return err
	}

	c.deliveryType = dt
	return nil
}
