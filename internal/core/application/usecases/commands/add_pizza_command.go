package commands

import (
	"errors"
	"fmt"
	"strings"

	"pizzabot/internal/core/domain/model/catalog"
	"pizzabot/internal/core/domain/model/kernel"
	"pizzabot/internal/core/domain/model/order"
	"pizzabot/internal/pkg/errs"
	"pizzabot/internal/pkg/guard"
)

var ErrAddPizzaCommandIsNotConstructed = errors.New(
	"AddPizzaCommand must be created via NewAddPizzaCommand constructor",
)

// AddPizzaCommand adds qty pizzas of one size to a draft order.
// itemID is chosen by the caller so the new line can be reported back.
type AddPizzaCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	itemID  kernel.UUID
	pizzaID string
	size    catalog.Size
	qty     int

	guard guard.ConstructorGuard
}

// NewAddPizzaCommand validates ids, size and quantity. An unparseable size is reported
// as catalog.ErrUnknownItem.
func NewAddPizzaCommand(orderID, itemID kernel.UUID, pizzaID string, size string, qty int) (AddPizzaCommand, error) {
	cmd := AddPizzaCommand{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setItemID(itemID),
		cmd.setPizzaID(pizzaID),
		cmd.setSize(size),
		cmd.setQty(qty),
	); err != nil {
		return AddPizzaCommand{}, err
	}

	return cmd, nil
}

func (c AddPizzaCommand) Validate() error {
	return c.guard.Validate(ErrAddPizzaCommandIsNotConstructed)
}

func (c AddPizzaCommand) OrderID() kernel.UUID { return c.orderID }
func (c AddPizzaCommand) ItemID() kernel.UUID  { return c.itemID }
func (c AddPizzaCommand) PizzaID() string      { return c.pizzaID }
func (c AddPizzaCommand) Size() catalog.Size   { return c.size }
func (c AddPizzaCommand) Qty() int             { return c.qty }

func (c *AddPizzaCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *AddPizzaCommand) setItemID(itemID kernel.UUID) error {
	if err := itemID.Validate(); err != nil {
		return err
	}

	c.itemID = itemID
	return nil
}

func (c *AddPizzaCommand) setPizzaID(pizzaID string) error {
	pizzaID = strings.TrimSpace(pizzaID)
	if pizzaID == "" {
		return errs.NewValueIsRequiredError("pizza_id")
	}

	c.pizzaID = pizzaID
	return nil
}

func (c *AddPizzaCommand) setSize(size string) error {
	s, err := catalog.ParseSize(size)
	if err != nil {
		return err
	}

	c.size = s
	return nil
}

func (c *AddPizzaCommand) setQty(qty int) error {
	if err := checkQty(qty); err != nil {
		return err
	}

	c.qty = qty
	return nil
}

func checkQty(qty int) error {
	if qty <= 0 || qty > order.MaxQuantity {
		return fmt.Errorf("%w: qty must be between 1 and %d, got %d", order.ErrInvalidQuantity, order.MaxQuantity, qty)
	}
	return nil
}
