package commands

import (
	"context"

	"fastfeet/internal/core/domain/model/recipient"
)

// CreateRecipientCommandHandler persists new recipients.
//
// Example:
//
//	handler := NewCreateRecipientCommandHandler(uowFactory)
//	created, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("recipient creation failed: %w", err)
//	}
//	fmt.Println(created.ID())
type CreateRecipientCommandHandler struct {
	uowFactory RecipientUoWFactory
}

// NewCreateRecipientCommandHandler creates a handler for recipient creation.
func NewCreateRecipientCommandHandler(uowFactory RecipientUoWFactory) CreateRecipientCommandHandler {
	return CreateRecipientCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle creates the recipient inside a transaction and returns it with the
// identity assigned by the store.
func (h *CreateRecipientCommandHandler) Handle(
	ctx context.Context,
	cmd CreateRecipientCommand,
) (*recipient.Recipient, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	aggregate, err := recipient.NewRecipient(cmd.Name(), cmd.Address())
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	created, err := uow.RecipientRepository().Add(ctx, aggregate)
	if err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return created, nil
}
