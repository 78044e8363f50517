package commands

import (
	"errors"
	"strings"

	"fastfeet/internal/core/domain/model/recipient"
	"fastfeet/internal/pkg/errs"
	"fastfeet/internal/pkg/guard"
)

var (
	ErrUpdateRecipientCommandIsNotConstructed = errors.New(
		"UpdateRecipientCommand must be created via NewUpdateRecipientCommand constructor",
	)
	ErrRecipientIDIsInvalid = errs.NewValueIsInvalidError("id")
)

// UpdateRecipientCommand represents a partial update of a recipient.
// Fields absent from the patch keep their stored values.
type UpdateRecipientCommand struct { //nolint:recvcheck //using for validation
	id    int64
	patch recipient.Patch

	guard guard.ConstructorGuard
}

// NewUpdateRecipientCommand validates the id and rejects blank values for
// mandatory fields present in the patch. Existence is checked by the handler.
func NewUpdateRecipientCommand(id int64, patch recipient.Patch) (UpdateRecipientCommand, error) {
	cmd := UpdateRecipientCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setID(id),
		cmd.setPatch(patch),
	); err != nil {
		return UpdateRecipientCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateRecipientCommand) Validate() error {
	return c.guard.Validate(ErrUpdateRecipientCommandIsNotConstructed)
}

// ID returns the identifier of the recipient to update.
func (c UpdateRecipientCommand) ID() int64 {
	return c.id
}

// Patch returns the fields to change.
func (c UpdateRecipientCommand) Patch() recipient.Patch {
	return c.patch
}

func (c *UpdateRecipientCommand) setID(id int64) error {
	if id <= 0 {
		return ErrRecipientIDIsInvalid
	}

	c.id = id
	return nil
}

func (c *UpdateRecipientCommand) setPatch(patch recipient.Patch) error {
	if err := errors.Join(
		notBlank("name", patch.Name),
		notBlank("street", patch.Address.Street),
		notBlank("city", patch.Address.City),
		notBlank("state", patch.Address.State),
		notBlank("cep", patch.Address.CEP),
	); err != nil {
		return err
	}

	c.patch = patch
	return nil
}

func notBlank(name string, value *string) error {
	if value != nil && strings.TrimSpace(*value) == "" {
		return errs.NewValueIsRequiredError(name)
	}
	return nil
}
