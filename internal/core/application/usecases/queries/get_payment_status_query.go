package queries

import (
	"errors"
	"time"

	"farmlink/internal/core/domain/model/kernel"
	"farmlink/internal/pkg/guard"
)

var ErrGetPaymentStatusQueryIsNotConstructed = errors.New(
	"GetPaymentStatusQuery must be created via NewGetPaymentStatusQuery constructor",
)

// GetPaymentStatusQuery retrieves the settlement state of one order. Only
// the order's parties (farmer, restaurant, assigned transporter) may read it.
type GetPaymentStatusQuery struct {
	orderID  kernel.UUID
	callerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetPaymentStatusQuery creates a query for an order's payment status.
func NewGetPaymentStatusQuery(orderID, callerID kernel.UUID) (GetPaymentStatusQuery, error) {
	if err := errors.Join(orderID.Validate(), callerID.Validate()); err != nil {
		return GetPaymentStatusQuery{}, err
	}

	return GetPaymentStatusQuery{
		orderID:  orderID,
		callerID: callerID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetPaymentStatusQuery) Validate() error {
	return q.guard.Validate(ErrGetPaymentStatusQueryIsNotConstructed)
}

// OrderID returns the order whose payment status is requested.
func (q GetPaymentStatusQuery) OrderID() kernel.UUID { return q.orderID }

// CallerID returns the party requesting the status.
func (q GetPaymentStatusQuery) CallerID() kernel.UUID { return q.callerID }

// GetPaymentStatusQueryResponse is the settlement view of one order. The
// transfer statuses and settlement time are empty until the order is paid.
// AmountDue is the goods total plus the restaurant's delivery share, the sum
// a gateway payment order is opened for.
type GetPaymentStatusQueryResponse struct {
	OrderID                   kernel.UUID
	AmountDue                 float64
	PaymentStatus             string
	PaymentRef                string
	FarmerTransferStatus      string
	TransporterTransferStatus string
	SettledAt                 *time.Time
}
