package commands

import (
	"errors"

	"pizzabot/internal/core/domain/model/kernel"
	"pizzabot/internal/pkg/guard"
)

var ErrRemoveItemCommandIsNotConstructed = errors.New(
	"RemoveItemCommand must be created via NewRemoveItemCommand constructor",
)

// RemoveItemCommand deletes one order line by its item id.
type RemoveItemCommand struct { //nolint:recvcheck //using for validation
	itemID kernel.UUID

	guard guard.ConstructorGuard
}

func NewRemoveItemCommand(itemID kernel.UUID) (RemoveItemCommand, error) {
	if err := itemID.Validate(); err != nil {
		return RemoveItemCommand{}, err
	}
	return RemoveItemCommand{itemID: itemID, guard: guard.NewConstructorGuard()}, nil
}

func (c RemoveItemCommand) Validate() error {
	return c.guard.Validate(ErrRemoveItemCommandIsNotConstructed)
}

func (c RemoveItemCommand) ItemID() kernel.UUID {
	return c.itemID
}
