// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"marketnav/internal/domain/repository"
	"marketnav/internal/errors"

	"gorm.io/gorm"
)

// gormTransactionManager implements repository.TransactionManager on top of gorm transactions
type gormTransactionManager struct {
	db *gorm.DB
}

// gormRepositoryFactory hands out repositories bound to one open transaction
type gormRepositoryFactory struct {
	tx *gorm.DB
}

// NewNavigationSessionRepository creates a navigation session repository bound to the transaction.
func (f *gormRepositoryFactory) NewNavigationSessionRepository() repository.NavigationSessionRepository {
	return NewNavigationSessionRepository(f.tx)
}

// NewTransactionManager is the constructor for gormTransactionManager.
func NewTransactionManager(db *gorm.DB) repository.TransactionManager {
	return &gormTransactionManager{db: db}
}

// Execute runs fn inside a transaction on the primary. The transaction commits when fn
// returns nil and rolls back on an error or panic; fn's error is returned untouched so
// callers can match sentinel errors.
func (tm *gormTransactionManager) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	var fnErr error

	err := tm.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		fnErr = fn(&gormRepositoryFactory{tx: tx})

		return fnErr
	})
	if fnErr != nil {
		return fnErr
	}
	if err != nil {
		return errors.Wrap(err, "navigation transaction")
	}

	return nil
}
