package kernel

import (
	"errors"
	"strings"

	"fastfeet/internal/pkg/errs"
	"fastfeet/internal/pkg/guard"
)

// ErrAddressIsNotConstructed is returned when an Address literal is used.
var ErrAddressIsNotConstructed = errs.NewValueIsRequiredError("address must be created via NewAddress")

// AddressFields is the plain data carried by an Address.
// Street, City, State and CEP are mandatory; Line, Number and Complement
// are optional and nil when absent.
type AddressFields struct {
	// Line is a free-form address line (e.g. a building or district name).
	Line       *string
	Street     string
	Number     *string
	Complement *string
	City       string
	State      string
	// CEP is the Brazilian postal code.
	CEP string
}

// AddressPatch lists the address fields to change. Nil fields keep their value.
type AddressPatch struct {
	Line       *string
	Street     *string
	Number     *string
	Complement *string
	City       *string
	State      *string
	CEP        *string
}

// IsEmpty reports whether the patch changes nothing.
func (p AddressPatch) IsEmpty() bool {
	return p.Line == nil && p.Street == nil && p.Number == nil && p.Complement == nil &&
		p.City == nil && p.State == nil && p.CEP == nil
}

// Address is the postal address of a recipient.
//
// Example:
//
//	addr, err := kernel.NewAddress(kernel.AddressFields{
//	    Street: "Main St",
//	    City:   "LA",
//	    State:  "CA",
//	    CEP:    "90001",
//	})
type Address struct { //nolint:recvcheck //using for validation
	fields AddressFields
	guard  guard.ConstructorGuard
}

// NewAddress validates that every mandatory field is non-blank.
// All violations are reported together.
func NewAddress(fields AddressFields) (Address, error) {
	if err := errors.Join(
		required("street", fields.Street),
		required("city", fields.City),
		required("state", fields.State),
		required("cep", fields.CEP),
	); err != nil {
		return Address{}, err
	}

	return Address{
		fields: AddressFields{
			Line:       clone(fields.Line),
			Street:     fields.Street,
			Number:     clone(fields.Number),
			Complement: clone(fields.Complement),
			City:       fields.City,
			State:      fields.State,
			CEP:        fields.CEP,
		},
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate reports whether a was built by NewAddress.
func (a Address) Validate() error {
	return a.guard.Validate(ErrAddressIsNotConstructed)
}

// Apply returns a new Address with the patch applied. The receiver is not modified.
func (a Address) Apply(patch AddressPatch) (Address, error) {
	if err := a.Validate(); err != nil {
		return Address{}, err
	}

	next := a.Fields()
	if patch.Line != nil {
		next.Line = patch.Line
	}
	if patch.Street != nil {
		next.Street = *patch.Street
	}
	if patch.Number != nil {
		next.Number = patch.Number
	}
	if patch.Complement != nil {
		next.Complement = patch.Complement
	}
	if patch.City != nil {
		next.City = *patch.City
	}
	if patch.State != nil {
		next.State = *patch.State
	}
	if patch.CEP != nil {
		next.CEP = *patch.CEP
	}

	return NewAddress(next)
}

// Fields returns a copy of the address data.
func (a Address) Fields() AddressFields {
	return AddressFields{
		Line:       clone(a.fields.Line),
		Street:     a.fields.Street,
		Number:     clone(a.fields.Number),
		Complement: clone(a.fields.Complement),
		City:       a.fields.City,
		State:      a.fields.State,
		CEP:        a.fields.CEP,
	}
}

func (a Address) Line() *string       { return clone(a.fields.Line) }
func (a Address) Street() string      { return a.fields.Street }
func (a Address) Number() *string     { return clone(a.fields.Number) }
func (a Address) Complement() *string { return clone(a.fields.Complement) }
func (a Address) City() string        { return a.fields.City }
func (a Address) State() string       { return a.fields.State }
func (a Address) CEP() string         { return a.fields.CEP }

func required(name, value string) error {
	if strings.TrimSpace(value) == "" {
		return errs.NewValueIsRequiredError(name)
	}
	return nil
}

func clone(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}
