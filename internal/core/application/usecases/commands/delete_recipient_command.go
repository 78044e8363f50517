package commands

import (
	"errors"

	"fastfeet/internal/pkg/guard"
)

var (
	ErrDeleteRecipientCommandIsNotConstructed = errors.New(
		"DeleteRecipientCommand must be created via NewDeleteRecipientCommand constructor",
	)
)

// DeleteRecipientCommand represents the removal of a recipient.
type DeleteRecipientCommand struct {
	id int64

	guard guard.ConstructorGuard
}

// NewDeleteRecipientCommand validates that id is a positive identifier.
func NewDeleteRecipientCommand(id int64) (DeleteRecipientCommand, error) {
	if id <= 0 {
		return DeleteRecipientCommand{}, ErrRecipientIDIsInvalid
	}

	return DeleteRecipientCommand{
		id:    id,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteRecipientCommand) Validate() error {
	return c.guard.Validate(ErrDeleteRecipientCommandIsNotConstructed)
}

// ID returns the identifier of the recipient to delete.
func (c DeleteRecipientCommand) ID() int64 {
	return c.id
}
