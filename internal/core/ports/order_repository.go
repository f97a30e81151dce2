// Package ports defines the contracts between the application core and the
// infrastructure adapters: repositories, the unit of work, the payment
// gateway, and the notification sink.
package ports

import (
	"context"
	"time"

	"farmlink/internal/core/domain/model/kernel"
	"farmlink/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate. The write is
	// conditional on the order still holding fromStatus in storage; a
	// ConflictError is returned when a concurrent writer got there first.
	Update(ctx context.Context, aggregate *order.Order, fromStatus order.Status) error

	// Get retrieves an order aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// Assign writes the transporter onto the order only while the order is
	// still unassigned. A ConflictError is returned when another transporter
	// won the race.
	Assign(ctx context.Context, aggregate *order.Order) error

	// GetAllUnassigned retrieves confirmed orders that no transporter has
	// accepted yet, for the transporter's pickup feed.
	GetAllUnassigned(ctx context.Context) ([]*order.Order, error)

	// GetAllSettledBefore retrieves paid orders whose payout legs are still
	// processing and that were settled at or before the cutoff. Used by the
	// transfer completion sweep.
	GetAllSettledBefore(ctx context.Context, cutoff time.Time) ([]*order.Order, error)
}
