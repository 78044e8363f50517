package recipient

import (
	"errors"
	"strings"
	"time"

	"fastfeet/internal/core/domain/model/kernel"
	"fastfeet/internal/pkg/errs"
)

var (
	// ErrRecipientIsNotConstructed is returned when a Recipient literal is used.
	ErrRecipientIsNotConstructed = errors.New("Recipient must be created via NewRecipient or RestoreRecipient")

	// ErrIDIsInvalid is returned when restoring a recipient without a store identity.
	ErrIDIsInvalid = errs.NewValueIsInvalidError("id")
)

// Patch describes a partial update. Nil fields are left untouched.
type Patch struct {
	Name    *string
	Address kernel.AddressPatch
}

// IsEmpty reports whether the patch changes nothing.
func (p Patch) IsEmpty() bool {
	return p.Name == nil && p.Address.IsEmpty()
}

// Recipient is the aggregate root for delivery recipients.
type Recipient struct {
	id        int64
	name      string
	address   kernel.Address
	createdAt time.Time
	updatedAt time.Time

	isConstructed bool
}

// NewRecipient creates a recipient that has not been persisted yet.
//
// Example:
//
//	addr, _ := kernel.NewAddress(kernel.AddressFields{Street: "Main St", City: "LA", State: "CA", CEP: "90001"})
//	r, err := recipient.NewRecipient("Acme", addr)
func NewRecipient(name string, address kernel.Address) (*Recipient, error) {
	r := &Recipient{isConstructed: true}

	if err := errors.Join(r.setName(name), r.setAddress(address)); err != nil {
		return nil, err
	}

	return r, nil
}

// RestoreRecipient rebuilds a persisted recipient. Used by repositories only.
func RestoreRecipient(
	id int64,
	name string,
	address kernel.Address,
	createdAt time.Time,
	updatedAt time.Time,
) (*Recipient, error) {
	r := &Recipient{
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		isConstructed: true,
	}

	var idErr error
	if id <= 0 {
		idErr = ErrIDIsInvalid
	}
	r.id = id

	if err := errors.Join(idErr, r.setName(name), r.setAddress(address)); err != nil {
		return nil, err
	}

	return r, nil
}

// Validate ensures the recipient was created through a constructor.
func (r *Recipient) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrRecipientIsNotConstructed
	}
	return nil
}

// Update applies patch atomically: on error the recipient is left unchanged.
func (r *Recipient) Update(patch Patch) error {
	if err := r.Validate(); err != nil {
		return err
	}

	name := r.name
	var nameErr error
	if patch.Name != nil {
		name = *patch.Name
		nameErr = validateName(name)
	}

	address, addrErr := r.address.Apply(patch.Address)
	if err := errors.Join(nameErr, addrErr); err != nil {
		return err
	}

	r.name = name
	r.address = address
	return nil
}

// IsPersisted reports whether the store has assigned an identity.
func (r *Recipient) IsPersisted() bool {
	return r.id > 0
}

func (r *Recipient) ID() int64 {
	return r.id
}

func (r *Recipient) Name() string {
	return r.name
}

func (r *Recipient) Address() kernel.Address {
	return r.address
}

func (r *Recipient) CreatedAt() time.Time {
	return r.createdAt
}

func (r *Recipient) UpdatedAt() time.Time {
	return r.updatedAt
}

func (r *Recipient) setName(name string) error {
	if err := validateName(name); err != nil {
		return err
	}

	r.name = name
	return nil
}

func (r *Recipient) setAddress(address kernel.Address) error {
	if err := address.Validate(); err != nil {
		return err
	}

	r.address = address
	return nil
}

func validateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("name")
	}
	return nil
}
