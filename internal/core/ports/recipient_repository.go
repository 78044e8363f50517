// Package ports defines the contracts between the FastFeet core and its adapters.
// These interfaces establish the boundaries between application use cases and
// infrastructure, enabling dependency inversion and testability.
package ports

import (
	"context"

	"fastfeet/internal/core/domain/model/recipient"
)

// RecipientRepository defines the persistence contract for recipient aggregates.
type RecipientRepository interface {
	// Add persists a new recipient and returns it with its store-assigned
	// identity and timestamps.
	Add(ctx context.Context, aggregate *recipient.Recipient) (*recipient.Recipient, error)

	// Update persists changes to an existing recipient.
	// Returns errs.ObjectNotFoundError if the recipient no longer exists.
	Update(ctx context.Context, aggregate *recipient.Recipient) error

	// Get retrieves a recipient by identifier.
	// Returns errs.ObjectNotFoundError if no record exists.
	Get(ctx context.Context, id int64) (*recipient.Recipient, error)

	// GetForUpdate retrieves a recipient and locks its row until the
	// surrounding transaction ends, so concurrent writers on the same id
	// are serialised. Must be called inside a unit of work.
	GetForUpdate(ctx context.Context, id int64) (*recipient.Recipient, error)

	// Delete removes a recipient.
	// Returns errs.ObjectNotFoundError if no record exists.
	Delete(ctx context.Context, id int64) error
}
