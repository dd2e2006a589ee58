package ports

import "context"

// UnitOfWorkFactory hands out a fresh UnitOfWork per command. Instances are not
// shared between goroutines.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork scopes one logical order operation to a single transaction. Callers
// Begin, defer Rollback and Commit on success; Rollback after Commit is a no-op.
type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error

	// Repositories below are bound to the open transaction, or to the plain
	// connection when Begin was not called.
	OrderRepository() OrderRepository
	CustomerRepository() CustomerRepository
}
