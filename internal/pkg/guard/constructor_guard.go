// Package guard provides ConstructorGuard, a marker embedded in value objects,
// commands and queries so that zero values created with a struct literal can be
// told apart from values built by their constructor.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific error is given.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard records whether its owner went through a constructor.
//
// Example:
//
//	type GetRecipientQuery struct {
//	    id    int64
//	    guard guard.ConstructorGuard
//	}
//
//	func NewGetRecipientQuery(id int64) (GetRecipientQuery, error) {
//	    ...
//	    return GetRecipientQuery{id: id, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (q GetRecipientQuery) Validate() error {
//	    return q.guard.Validate(ErrGetRecipientQueryIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard marked as constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil for a constructed guard. For a zero value it returns
// validationError, or ErrDefaultConstructorGuard when validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
