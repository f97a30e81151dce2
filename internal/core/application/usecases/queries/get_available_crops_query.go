package queries

import (
	"errors"
	"time"

	"farmlink/internal/core/domain/model/crop"
	"farmlink/internal/core/domain/model/kernel"
	"farmlink/internal/pkg/guard"
)

var ErrGetAvailableCropsQueryIsNotConstructed = errors.New(
	"GetAvailableCropsQuery must be created via NewGetAvailableCropsQuery constructor",
)

// GetAvailableCropsQuery retrieves crop listings restaurants can order from.
// An empty category matches every category.
type GetAvailableCropsQuery struct {
	category crop.Category

	guard guard.ConstructorGuard
}

// NewGetAvailableCropsQuery creates a query for the crop catalogue.
func NewGetAvailableCropsQuery(category crop.Category) (GetAvailableCropsQuery, error) {
	if category != "" {
		if err := category.Validate(); err != nil {
			return GetAvailableCropsQuery{}, err
		}
	}

	return GetAvailableCropsQuery{
		category: category,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetAvailableCropsQuery) Validate() error {
	return q.guard.Validate(ErrGetAvailableCropsQueryIsNotConstructed)
}

// Category returns the optional category filter.
func (q GetAvailableCropsQuery) Category() crop.Category { return q.category }

// GetAvailableCropsQueryResponse is one listing in the crop catalogue.
type GetAvailableCropsQueryResponse struct {
	ID                kernel.UUID
	FarmerID          kernel.UUID
	Name              string
	Category          string
	Price             float64
	Unit              string
	AvailableQuantity float64
	Organic           bool
	Quality           string
	HarvestDate       time.Time
}
