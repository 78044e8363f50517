// Package postgres provides the GORM-based persistence adapter of FastFeet:
// connection setup, schema migration and the Unit of Work that command
// handlers use to group repository calls into one transaction.
//
// Usage:
//
//	factory := NewGormUnitOfWorkFactory(db)
//	uow := factory.Create()
//
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer uow.Rollback(ctx)
//
//	repo := uow.RecipientRepository()
//	r, err := repo.GetForUpdate(ctx, id)
//	if err != nil {
//	    return err
//	}
//	// mutate r
//	if err := repo.Update(ctx, r); err != nil {
//	    return err
//	}
//
//	return uow.Commit(ctx)
//
// Rollback after a successful Commit is a no-op returning
// gorm.ErrInvalidTransaction, so the deferred call is always safe.
//
// Each UnitOfWork instance owns at most one transaction; goroutines must not
// share an instance.
package postgres

import (
	"context"

	"fastfeet/internal/adapters/out/postgres/recipientrepo"
	"fastfeet/internal/core/ports"

	"gorm.io/gorm"
)

// GormUnitOfWorkFactory creates UnitOfWork instances using GORM database connections.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

// NewGormUnitOfWorkFactory creates a factory for GORM-based unit of work instances.
func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// Create produces a new UnitOfWork with no active transaction.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{db: f.db}
}

// GormUnitOfWork coordinates a database transaction for one business operation.
type GormUnitOfWork struct {
	db *gorm.DB
	tx *gorm.DB
}

// Begin starts the transaction. Calling Begin while a transaction is active is a no-op.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	tx := uow.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return tx.Error
	}

	uow.tx = tx
	return nil
}

// Commit finalizes the transaction.
// Returns gorm.ErrInvalidTransaction if no transaction is active.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return err
}

// Rollback discards the transaction.
// Returns gorm.ErrInvalidTransaction if no transaction is active.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	return err
}

// RecipientRepository returns a repository bound to the active transaction,
// or to the plain connection when no transaction is active.
func (uow *GormUnitOfWork) RecipientRepository() ports.RecipientRepository {
	db := uow.db
	if uow.tx != nil {
		db = uow.tx
	}
	return recipientrepo.NewGormRecipientRepository(db)
}
