package commands

import (
	"context"

	"fastfeet/internal/core/domain/model/recipient"
	"fastfeet/internal/core/ports"
)

// UpdateRecipientCommandHandler applies partial updates to recipients.
//
// The recipient row is locked for the duration of the transaction, so a
// concurrent update or delete of the same id waits and then observes the
// committed state. Cached read models are evicted after commit.
type UpdateRecipientCommandHandler struct {
	uowFactory RecipientUoWFactory
	cache      ports.RecipientCache
}

// NewUpdateRecipientCommandHandler creates a handler for recipient updates.
func NewUpdateRecipientCommandHandler(
	uowFactory RecipientUoWFactory,
	cache ports.RecipientCache,
) UpdateRecipientCommandHandler {
	return UpdateRecipientCommandHandler{
		uowFactory: uowFactory,
		cache:      cache,
	}
}

// Handle loads the recipient under lock, applies the patch and persists it.
// Returns errs.ObjectNotFoundError if the recipient does not exist.
func (h *UpdateRecipientCommandHandler) Handle(
	ctx context.Context,
	cmd UpdateRecipientCommand,
) (*recipient.Recipient, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.RecipientRepository()
	aggregate, err := repo.GetForUpdate(ctx, cmd.ID())
	if err != nil {
		return nil, err
	}

	// An empty patch writes nothing and keeps updated_at untouched.
	if cmd.Patch().IsEmpty() {
		return aggregate, uow.Commit(ctx)
	}

	if err = aggregate.Update(cmd.Patch()); err != nil {
		return nil, err
	}

	if err = repo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.cache.Invalidate(ctx, ports.RecipientCacheKey(aggregate.ID()))
	return aggregate, nil
}
