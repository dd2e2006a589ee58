package commands

import (
	"errors"
	"time"

	"pizzabot/internal/pkg/errs"
	"pizzabot/internal/pkg/guard"
)

var ErrDeleteStaleDraftsCommandIsNotConstructed = errors.New(
	"DeleteStaleDraftsCommand must be created via NewDeleteStaleDraftsCommand constructor",
)

// DeleteStaleDraftsCommand removes drafts nobody has touched for longer than ttl.
type DeleteStaleDraftsCommand struct { //nolint:recvcheck //using for validation
	ttl time.Duration

	guard guard.ConstructorGuard
}

func NewDeleteStaleDraftsCommand(ttl time.Duration) (DeleteStaleDraftsCommand, error) {
	if ttl <= 0 {
		return DeleteStaleDraftsCommand{}, errs.NewValueIsOutOfRangeError("draft ttl", ttl, "1ns", "unbounded")
	}
	return DeleteStaleDraftsCommand{ttl: ttl, guard: guard.NewConstructorGuard()}, nil
}

func (c DeleteStaleDraftsCommand) Validate() error {
	return c.guard.Validate(ErrDeleteStaleDraftsCommandIsNotConstructed)
}

func (c DeleteStaleDraftsCommand) TTL() time.Duration {
	return c.ttl
}
