// Package persistence implements the store: connection setup for the supported
// dialects, schema migration and a GORM-based unit of work.
//
// Every compound operation runs inside one transaction:
//
//	uow := factory.Create()
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() {
//	    _ = uow.Rollback(ctx)
//	}()
//
//	o, err := uow.OrderRepository().GetForUpdate(ctx, orderID)
//	...
//	return uow.Commit(ctx)
//
// Rollback after a successful Commit is a no-op returning gorm.ErrInvalidTransaction,
// so the deferred call is safe on every exit path.
package persistence

import (
	"context"

	"pizzabot/internal/adapters/out/persistence/customerrepo"
	"pizzabot/internal/adapters/out/persistence/orderrepo"
	"pizzabot/internal/core/ports"

	"gorm.io/gorm"
)

// GormUnitOfWorkFactory hands out units of work sharing one *gorm.DB pool.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{db: f.db}
}

// GormUnitOfWork holds at most one open transaction. Repositories handed out before
// Begin run on the pool directly.
type GormUnitOfWork struct {
	db *gorm.DB
	tx *gorm.DB
}

// Begin is a no-op while a transaction is already open.
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

func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	return uow.finish(func(tx *gorm.DB) *gorm.DB { return tx.Commit() })
}

func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	return uow.finish(func(tx *gorm.DB) *gorm.DB { return tx.Rollback() })
}

// finish ends the open transaction either way and forgets it, even on error.
func (uow *GormUnitOfWork) finish(end func(*gorm.DB) *gorm.DB) error {
	tx := uow.tx
	if tx == nil {
		return gorm.ErrInvalidTransaction
	}
	uow.tx = nil
	return end(tx).Error
}

func (uow *GormUnitOfWork) OrderRepository() ports.OrderRepository {
	return orderrepo.NewGormOrderRepository(uow.conn())
}

func (uow *GormUnitOfWork) CustomerRepository() ports.CustomerRepository {
	return customerrepo.NewGormCustomerRepository(uow.conn())
}

func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}
