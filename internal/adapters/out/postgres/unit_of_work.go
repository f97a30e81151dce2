// Package postgres wires the GORM-backed repositories into a unit of work so
// command handlers can commit order, crop, and party changes atomically.
package postgres

import (
	"context"

	"farmlink/internal/adapters/out/postgres/croprepo"
	"farmlink/internal/adapters/out/postgres/orderrepo"
	"farmlink/internal/adapters/out/postgres/partyrepo"
	"farmlink/internal/core/domain/model/kernel"
	"farmlink/internal/core/ports"

	"gorm.io/gorm"
)

var _ ports.UnitOfWorkFactory = &GormUnitOfWorkFactory{}

// GormUnitOfWorkFactory produces one unit of work per command so concurrent
// handlers never share transaction state.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

// NewGormUnitOfWorkFactory creates a factory bound to a database handle.
func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// Create returns a fresh unit of work.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:                f.db,
		trackedAggregates: make(map[kernel.UUID]any),
	}
}

var _ ports.UnitOfWork = &GormUnitOfWork{}

// GormUnitOfWork manages a single database transaction and hands out
// repositories bound to it.
type GormUnitOfWork struct {
	db *gorm.DB
	tx *gorm.DB

	trackedAggregates map[kernel.UUID]any
}

// Begin starts a transaction. Calling Begin on an open transaction is a no-op
// so nested handler helpers can share the outer transaction.
func (u *GormUnitOfWork) Begin(ctx context.Context) error {
	if u.tx != nil {
		return nil
	}

	tx := u.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return tx.Error
	}

	u.tx = tx
	return nil
}

// Commit commits the current transaction.
func (u *GormUnitOfWork) Commit(ctx context.Context) error {
	if u.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := u.tx.WithContext(ctx).Commit().Error
	u.tx = nil
	return err
}

// Rollback rolls back the current transaction. Safe to defer after Begin:
// rolling back an already committed unit of work is a no-op.
func (u *GormUnitOfWork) Rollback(_ context.Context) error {
	if u.tx == nil {
		return nil
	}

	err := u.tx.Rollback().Error
	u.tx = nil
	return err
}

// TrackAggregate remembers an aggregate loaded or stored during this unit of
// work. Repositories call it on every read and write.
func (u *GormUnitOfWork) TrackAggregate(id kernel.UUID, aggregate any) {
	u.trackedAggregates[id] = aggregate
}

// OrderRepository returns an order repository bound to the current transaction.
func (u *GormUnitOfWork) OrderRepository() ports.OrderRepository {
	return orderrepo.NewGormOrderRepository(u.handle(), u)
}

// CropRepository returns a crop repository bound to the current transaction.
func (u *GormUnitOfWork) CropRepository() ports.CropRepository {
	return croprepo.NewGormCropRepository(u.handle(), u)
}

// PartyRepository returns a party repository bound to the current transaction.
func (u *GormUnitOfWork) PartyRepository() ports.PartyRepository {
	return partyrepo.NewGormPartyRepository(u.handle(), u)
}

func (u *GormUnitOfWork) handle() *gorm.DB {
	if u.tx != nil {
		return u.tx
	}
	return u.db
}
