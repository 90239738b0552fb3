package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each command.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary. Between Begin and
// Commit (or Rollback) no other unit of work observes or changes the state, so
// a read followed by a write inside one unit of work is atomic.
type UnitOfWork interface {
	// Begin starts the transaction.
	Begin(ctx context.Context) error

	// Commit applies the staged changes and ends the transaction.
	Commit(ctx context.Context) error

	// Rollback discards staged changes. After Commit it is a no-op.
	Rollback(ctx context.Context) error

	// DroneRepository returns a repository bound to the current transaction.
	DroneRepository() DroneRepository

	// OrderRepository returns a repository bound to the current transaction.
	OrderRepository() OrderRepository
}
