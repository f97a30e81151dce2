package queries

import (
	"errors"

	"farmlink/internal/core/domain/model/kernel"
	"farmlink/internal/pkg/guard"
)

var ErrGetUnassignedOrdersQueryIsNotConstructed = errors.New(
	"GetUnassignedOrdersQuery must be created via NewGetUnassignedOrdersQuery constructor",
)

// GetUnassignedOrdersQuery retrieves confirmed orders that no transporter
// has accepted yet. This feeds the transporters' pickup board.
type GetUnassignedOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetUnassignedOrdersQuery creates a query for the pickup board.
// This is a parameterless query.
func NewGetUnassignedOrdersQuery() GetUnassignedOrdersQuery {
	return GetUnassignedOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetUnassignedOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetUnassignedOrdersQueryIsNotConstructed)
}

// GetUnassignedOrdersQueryResponse is one order on the pickup board. The
// delivery fee shown is the transporter's payout for the run.
type GetUnassignedOrdersQueryResponse struct {
	ID          kernel.UUID
	Pickup      kernel.GeoPoint
	Delivery    kernel.GeoPoint
	DistanceKm  float64
	TotalWeight float64
	DeliveryFee int
}
