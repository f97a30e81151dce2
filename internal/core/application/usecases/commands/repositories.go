// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS
// architecture. All commands follow a consistent pattern: validation,
// transaction management, and persistence.
package commands

import (
	"context"

	"farmlink/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// CropRepoFactory provides access to the crop repository within a transaction.
	CropRepoFactory interface {
		CropRepository() ports.CropRepository
	}

	// PartyRepoFactory provides access to the party repository within a transaction.
	PartyRepoFactory interface {
		PartyRepository() ports.PartyRepository
	}

	// OrderUoW manages transactions for order-only operations.
	// Used by commands that touch a single order aggregate.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// CropUoW manages transactions for crop-only operations.
	CropUoW interface {
		TxManager
		CropRepoFactory
	}

	// CropUoWFactory creates new crop unit of work instances.
	CropUoWFactory interface {
		Create() CropUoW
	}

	// MarketUoW manages transactions that span orders, crops, and parties.
	// Used by order placement and cancellation, which move crop inventory
	// and party counters together with the order.
	MarketUoW interface {
		TxManager
		OrderRepoFactory
		CropRepoFactory
		PartyRepoFactory
	}

	// MarketUoWFactory creates new cross-aggregate unit of work instances.
	MarketUoWFactory interface {
		Create() MarketUoW
	}
)
