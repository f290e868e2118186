package repository

import "context"

// TransactionManager runs a unit of work atomically without exposing the database driver to use cases.
type TransactionManager interface {
	// Execute runs fn within a transaction. An error from fn rolls the transaction back and is returned as is.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory provides repositories bound to the open transaction.
type RepositoryFactory interface {
	// NewNavigationSessionRepository returns a NavigationSessionRepository bound to the current transaction.
	NewNavigationSessionRepository() NavigationSessionRepository
}
