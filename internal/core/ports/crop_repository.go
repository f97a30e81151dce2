package ports

import (
	"context"

	"farmlink/internal/core/domain/model/crop"
	"farmlink/internal/core/domain/model/kernel"
)

// CropRepository defines the persistence contract for crop aggregates.
type CropRepository interface {
	// Add persists a new crop aggregate to storage.
	Add(ctx context.Context, aggregate *crop.Crop) error

	// Get retrieves a crop aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*crop.Crop, error)

	// Reserve atomically decrements the crop's available quantity. The
	// decrement only applies while the listing is available and holds at
	// least qty units; otherwise an ObjectNotFoundError is returned and
	// nothing changes. Emptying the listing flips it to out_of_stock.
	Reserve(ctx context.Context, id kernel.UUID, qty float64) error

	// Release atomically returns qty units to the crop's available quantity
	// and re-opens the listing.
	Release(ctx context.Context, id kernel.UUID, qty float64) error
}
