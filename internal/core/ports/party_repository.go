package ports

import (
	"context"

	"farmlink/internal/core/domain/model/kernel"
	"farmlink/internal/core/domain/model/party"
)

// PartyRepository defines the persistence contract for marketplace parties.
type PartyRepository interface {
	// Add persists a new party to storage.
	Add(ctx context.Context, aggregate *party.Party) error

	// Get retrieves a party by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*party.Party, error)

	// IncrementTotalOrders atomically bumps the party's order counter.
	IncrementTotalOrders(ctx context.Context, id kernel.UUID) error
}
