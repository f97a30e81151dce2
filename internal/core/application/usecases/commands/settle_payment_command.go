package commands

import (
	"errors"

	"farmlink/internal/core/domain/model/kernel"
	"farmlink/internal/pkg/errs"
	"farmlink/internal/pkg/guard"
)

var ErrSettlePaymentCommandIsNotConstructed = errors.New(
	"SettlePaymentCommand must be created via NewSettlePaymentCommand constructor",
)

// SettlePaymentCommand records the restaurant's payment for a delivered
// order. The gateway references and signature come from the payment
// provider's completion callback.
type SettlePaymentCommand struct { //nolint:recvcheck //using for validation
	orderID         kernel.UUID
	callerID        kernel.UUID
	gatewayOrderRef string
	paymentRef      string
	signature       string

	guard guard.ConstructorGuard
}

// NewSettlePaymentCommand creates a command to settle an order.
func NewSettlePaymentCommand(
	orderID kernel.UUID,
	callerID kernel.UUID,
	gatewayOrderRef string,
	paymentRef string,
	signature string,
) (SettlePaymentCommand, error) {
	cmd := SettlePaymentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderID.Validate(),
		callerID.Validate(),
	); err != nil {
		return SettlePaymentCommand{}, err
	}
	if paymentRef == "" {
		return SettlePaymentCommand{}, errs.NewValueIsRequiredError("paymentRef")
	}

	cmd.orderID = orderID
	cmd.callerID = callerID
	cmd.gatewayOrderRef = gatewayOrderRef
	cmd.paymentRef = paymentRef
	cmd.signature = signature
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SettlePaymentCommand) Validate() error {
	return c.guard.Validate(ErrSettlePaymentCommandIsNotConstructed)
}

func (c SettlePaymentCommand) OrderID() kernel.UUID    { return c.orderID }
func (c SettlePaymentCommand) CallerID() kernel.UUID   { return c.callerID }
func (c SettlePaymentCommand) GatewayOrderRef() string { return c.gatewayOrderRef }
func (c SettlePaymentCommand) PaymentRef() string      { return c.paymentRef }
func (c SettlePaymentCommand) Signature() string       { return c.signature }
