package commands

import (
	"errors"
	"strings"

	"pizzabot/internal/core/domain/model/kernel"
	"pizzabot/internal/pkg/errs"
	"pizzabot/internal/pkg/guard"
)

var ErrAddExtraCommandIsNotConstructed = errors.New(
	"AddExtraCommand must be created via NewAddExtraCommand constructor",
)

// AddExtraCommand adds qty of an unsized extra to a draft order.
type AddExtraCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	itemID  kernel.UUID
	extraID string
	qty     int

	guard guard.ConstructorGuard
}

func NewAddExtraCommand(orderID, itemID kernel.UUID, extraID string, qty int) (AddExtraCommand, error) {
	cmd := AddExtraCommand{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setItemID(itemID),
		cmd.setExtraID(extraID),
		cmd.setQty(qty),
	); err != nil {
		return AddExtraCommand{}, err
	}

	return cmd, nil
}

func (c AddExtraCommand) Validate() error {
	return c.guard.Validate(ErrAddExtraCommandIsNotConstructed)
}

func (c AddExtraCommand) OrderID() kernel.UUID { return c.orderID }
func (c AddExtraCommand) ItemID() kernel.UUID  { return c.itemID }
func (c AddExtraCommand) ExtraID() string      { return c.extraID }
func (c AddExtraCommand) Qty() int             { return c.qty }

func (c *AddExtraCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *AddExtraCommand) setItemID(itemID kernel.UUID) error {
	if err := itemID.Validate(); err != nil {
		return err
	}

	c.itemID = itemID
	return nil
}

func (c *AddExtraCommand) setExtraID(extraID string) error {
	extraID = strings.TrimSpace(extraID)
	if extraID == "" {
		return errs.NewValueIsRequiredError("extra_id")
	}

	c.extraID = extraID
	return nil
}

func (c *AddExtraCommand) setQty(qty int) error {
	if err := checkQty(qty); err != nil {
		return err
	}

	c.qty = qty
	return nil
}
