// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"fastfeet/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// RecipientRepoFactory provides access to the recipient repository within a transaction.
	RecipientRepoFactory interface {
		RecipientRepository() ports.RecipientRepository
	}

	// RecipientUoW manages transactions for recipient operations.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   repo := uow.RecipientRepository()
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	RecipientUoW interface {
		TxManager
		RecipientRepoFactory
	}

	// RecipientUoWFactory creates new recipient unit of work instances.
	RecipientUoWFactory interface {
		Create() RecipientUoW
	}
)
