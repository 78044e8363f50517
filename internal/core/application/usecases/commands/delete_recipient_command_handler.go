package commands

import (
	"context"

	"fastfeet/internal/core/ports"
)

// DeleteRecipientCommandHandler removes recipients.
type DeleteRecipientCommandHandler struct {
	uowFactory RecipientUoWFactory
	cache      ports.RecipientCache
}

// NewDeleteRecipientCommandHandler creates a handler for recipient removal.
func NewDeleteRecipientCommandHandler(
	uowFactory RecipientUoWFactory,
	cache ports.RecipientCache,
) DeleteRecipientCommandHandler {
	return DeleteRecipientCommandHandler{
		uowFactory: uowFactory,
		cache:      cache,
	}
}

// Handle locks and deletes the recipient in one transaction.
// Returns errs.ObjectNotFoundError if the recipient does not exist.
func (h *DeleteRecipientCommandHandler) Handle(ctx context.Context, cmd DeleteRecipientCommand) error {
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

	repo := uow.RecipientRepository()
	if _, err := repo.GetForUpdate(ctx, cmd.ID()); err != nil {
		return err
	}

	if err := repo.Delete(ctx, cmd.ID()); err != nil {
		return err
	}

	if err := uow.Commit(ctx); err != nil {
		return err
	}

	h.cache.Invalidate(ctx, ports.RecipientCacheKey(cmd.ID()))
	return nil
}
