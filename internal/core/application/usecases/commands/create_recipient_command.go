package commands

import (
	"errors"
	"strings"

	"fastfeet/internal/core/domain/model/kernel"
	"fastfeet/internal/pkg/errs"
	"fastfeet/internal/pkg/guard"
)

var (
	ErrCreateRecipientCommandIsNotConstructed = errors.New(
		"CreateRecipientCommand must be created via NewCreateRecipientCommand constructor",
	)
)

// CreateRecipientCommand represents a request to register a new delivery recipient.
//
// Example:
//
//	cmd, err := NewCreateRecipientCommand("Acme", kernel.AddressFields{
//	    Street: "Main St",
//	    City:   "LA",
//	    State:  "CA",
//	    CEP:    "90001",
//	})
//	if err != nil {
//	    return fmt.Errorf("invalid recipient data: %w", err)
//	}
//
//	created, err := handler.Handle(ctx, cmd)
type CreateRecipientCommand struct { //nolint:recvcheck //using for validation
	name    string
	address kernel.Address

	guard guard.ConstructorGuard
}

// NewCreateRecipientCommand validates that name and the mandatory address
// fields are present. Every violation is reported in the returned error.
func NewCreateRecipientCommand(name string, address kernel.AddressFields) (CreateRecipientCommand, error) {
	cmd := CreateRecipientCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setName(name),
		cmd.setAddress(address),
	); err != nil {
		return CreateRecipientCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateRecipientCommand) Validate() error {
	return c.guard.Validate(ErrCreateRecipientCommandIsNotConstructed)
}

// Name returns the recipient name.
func (c CreateRecipientCommand) Name() string {
	return c.name
}

// Address returns the validated postal address.
func (c CreateRecipientCommand) Address() kernel.Address {
	return c.address
}

func (c *CreateRecipientCommand) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("name")
	}

	c.name = name
	return nil
}

func (c *CreateRecipientCommand) setAddress(fields kernel.AddressFields) error {
	address, err := kernel.NewAddress(fields)
	if err != nil {
		return err
	}

	c.address = address
	return nil
}
