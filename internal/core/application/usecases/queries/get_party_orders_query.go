// Package queries contains read-only operations over the marketplace data.
// Query handlers read straight from the database and return flat response
// structs instead of rehydrating full aggregates.
package queries

import (
	"errors"
	"time"

	"farmlink/internal/core/domain/model/kernel"
	"farmlink/internal/pkg/guard"
)

var ErrGetPartyOrdersQueryIsNotConstructed = errors.New(
	"GetPartyOrdersQuery must be created via NewGetPartyOrdersQuery constructor",
)

// GetPartyOrdersQuery retrieves the order history of one party, in any of
// its roles.
type GetPartyOrdersQuery struct {
	partyID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetPartyOrdersQuery creates a query for a party's orders.
func NewGetPartyOrdersQuery(partyID kernel.UUID) (GetPartyOrdersQuery, error) {
	if err := partyID.Validate(); err != nil {
		return GetPartyOrdersQuery{}, err
	}

	return GetPartyOrdersQuery{
		partyID: partyID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetPartyOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetPartyOrdersQueryIsNotConstructed)
}

// PartyID returns the party whose orders are requested.
func (q GetPartyOrdersQuery) PartyID() kernel.UUID { return q.partyID }

// GetPartyOrdersQueryResponse is one order row in a party's history.
type GetPartyOrdersQueryResponse struct {
	ID            kernel.UUID
	Status        string
	PaymentStatus string
	TotalAmount   float64
	DeliveryFee   int
	CreatedAt     time.Time
}
