package queries

import (
	"errors"

	"farmlink/internal/core/domain/model/kernel"
	"farmlink/internal/pkg/guard"
)

var ErrGetTransporterEarningsQueryIsNotConstructed = errors.New(
	"GetTransporterEarningsQuery must be created via NewGetTransporterEarningsQuery constructor",
)

// GetTransporterEarningsQuery totals a transporter's delivery fees over
// completed runs.
type GetTransporterEarningsQuery struct {
	transporterID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetTransporterEarningsQuery creates a query for transporter earnings.
func NewGetTransporterEarningsQuery(transporterID kernel.UUID) (GetTransporterEarningsQuery, error) {
	if err := transporterID.Validate(); err != nil {
		return GetTransporterEarningsQuery{}, err
	}

	return GetTransporterEarningsQuery{
		transporterID: transporterID,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetTransporterEarningsQuery) Validate() error {
	return q.guard.Validate(ErrGetTransporterEarningsQueryIsNotConstructed)
}

// TransporterID returns the transporter whose earnings are requested.
func (q GetTransporterEarningsQuery) TransporterID() kernel.UUID { return q.transporterID }

// GetTransporterEarningsQueryResponse sums a transporter's delivered runs.
// Settled counts the deliveries whose payout leg already completed.
type GetTransporterEarningsQueryResponse struct {
	TransporterID kernel.UUID
	DeliveredRuns int
	TotalEarnings int
	SettledRuns   int
}
