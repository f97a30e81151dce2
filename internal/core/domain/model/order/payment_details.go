package order

import "time"

// PaymentDetails is set exactly once, when the restaurant settles a delivered
// order. It carries the external payment reference and one payout leg per
// recipient.
type PaymentDetails struct {
	paymentRef                string
	farmerTransferStatus      TransferStatus
	transporterTransferStatus TransferStatus
	settledAt                 time.Time
}

// RestorePaymentDetails rebuilds payment details from persistence.
func RestorePaymentDetails(
	paymentRef string,
	farmerTransferStatus TransferStatus,
	transporterTransferStatus TransferStatus,
	settledAt time.Time,
) PaymentDetails {
	return PaymentDetails{
		paymentRef:                paymentRef,
		farmerTransferStatus:      farmerTransferStatus,
		transporterTransferStatus: transporterTransferStatus,
		settledAt:                 settledAt,
	}
}

func (p PaymentDetails) PaymentRef() string { return p.paymentRef }
func (p PaymentDetails) FarmerTransferStatus() TransferStatus {
	return p.farmerTransferStatus
}
func (p PaymentDetails) TransporterTransferStatus() TransferStatus {
	return p.transporterTransferStatus
}
func (p PaymentDetails) SettledAt() time.Time { return p.settledAt }

// RefundDetails records a refund issued against a settled order.
type RefundDetails struct {
	amount     float64
	reason     string
	refundedAt time.Time
}

// RestoreRefundDetails rebuilds refund details from persistence.
func RestoreRefundDetails(amount float64, reason string, refundedAt time.Time) RefundDetails {
	return RefundDetails{amount: amount, reason: reason, refundedAt: refundedAt}
}

func (r RefundDetails) Amount() float64       { return r.amount }
func (r RefundDetails) Reason() string        { return r.reason }
func (r RefundDetails) RefundedAt() time.Time { return r.refundedAt }
