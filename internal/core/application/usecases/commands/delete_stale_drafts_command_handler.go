package commands

import (
	"context"
	"time"
)

type DeleteStaleDraftsCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewDeleteStaleDraftsCommandHandler(uowFactory OrderUoWFactory) DeleteStaleDraftsCommandHandler {
	return DeleteStaleDraftsCommandHandler{uowFactory: uowFactory}
}

// Handle returns the number of drafts removed.
func (h DeleteStaleDraftsCommandHandler) Handle(ctx context.Context, cmd DeleteStaleDraftsCommand) (int64, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	cutoff := time.Now().UTC().Add(-cmd.TTL())
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	n, err := uow.OrderRepository().DeleteDraftsUpdatedBefore(ctx, cutoff)
	if err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return n, nil
}
