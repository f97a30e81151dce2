package order

import (
	"fmt"

	"farmlink/internal/pkg/errs"
)

// PaymentStatus is the settlement state of an order. It moves independently
// of the delivery Status: an order is settled only after it was delivered.
//
//	pending ──> paid ──> refunded
//	               └──> disputed
type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "pending"
	PaymentPaid     PaymentStatus = "paid"
	PaymentDisputed PaymentStatus = "disputed"
	PaymentRefunded PaymentStatus = "refunded"
)

// Validate checks the payment status against the known set.
func (p PaymentStatus) Validate() error {
	switch p {
	case PaymentPending, PaymentPaid, PaymentDisputed, PaymentRefunded:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("payment status",
			fmt.Errorf("%q is not a valid payment status", string(p)))
	}
}

// String implements fmt.Stringer.
func (p PaymentStatus) String() string {
	return string(p)
}

// TransferStatus tracks the payout leg to a single recipient (the farmer or
// the transporter). Settlement opens both legs as processing; the deferred
// completion sweep moves them to completed.
type TransferStatus string

const (
	TransferPending    TransferStatus = "pending"
	TransferProcessing TransferStatus = "processing"
	TransferCompleted  TransferStatus = "completed"
	TransferFailed     TransferStatus = "failed"
)

// Validate checks the transfer status against the known set.
func (t TransferStatus) Validate() error {
	switch t {
	case TransferPending, TransferProcessing, TransferCompleted, TransferFailed:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("transfer status",
			fmt.Errorf("%q is not a valid transfer status", string(t)))
	}
}

// String implements fmt.Stringer.
func (t TransferStatus) String() string {
	return string(t)
}
