package ports

import "context"

// PaymentGateway defines the contract with the external payment provider.
// The gateway is an optional capability: when the provider credentials are
// not configured, IsAvailable reports false and settlement operations fail
// with a DependencyUnavailableError instead of reaching the network.
type PaymentGateway interface {
	// IsAvailable reports whether the gateway is configured and usable.
	IsAvailable() bool

	// CreatePaymentOrder opens a payment order with the provider for the
	// given amount in rupees and returns the provider's order reference.
	CreatePaymentOrder(ctx context.Context, amount float64, receipt string) (string, error)

	// VerifySignature checks the provider's callback signature for a
	// completed payment. An invalid signature is an UnauthorizedError.
	VerifySignature(gatewayOrderRef, paymentRef, signature string) error

	// Refund issues a refund against a captured payment.
	Refund(ctx context.Context, paymentRef string, amount float64) error
}
