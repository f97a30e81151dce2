package commands

import (
	"errors"

	"farmlink/internal/core/domain/model/kernel"
	"farmlink/internal/pkg/errs"
	"farmlink/internal/pkg/guard"
)

var ErrRefundPaymentCommandIsNotConstructed = errors.New(
	"RefundPaymentCommand must be created via NewRefundPaymentCommand constructor",
)

// RefundPaymentCommand reverses payment on a settled order. A zero amount
// refunds the full sum the restaurant paid: the goods total plus its half of
// the delivery fee.
type RefundPaymentCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	amount  float64
	reason  string

	guard guard.ConstructorGuard
}

// NewRefundPaymentCommand creates a command to refund a payment.
func NewRefundPaymentCommand(orderID kernel.UUID, amount float64, reason string) (RefundPaymentCommand, error) {
	cmd := RefundPaymentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := orderID.Validate(); err != nil {
		return RefundPaymentCommand{}, err
	}
	if amount < 0 {
		return RefundPaymentCommand{}, errs.NewValueIsInvalidError("amount")
	}
	if reason == "" {
		return RefundPaymentCommand{}, errs.NewValueIsRequiredError("reason")
	}

	cmd.orderID = orderID
	cmd.amount = amount
	cmd.reason = reason
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RefundPaymentCommand) Validate() error {
	return c.guard.Validate(ErrRefundPaymentCommandIsNotConstructed)
}

func (c RefundPaymentCommand) OrderID() kernel.UUID { return c.orderID }
func (c RefundPaymentCommand) Amount() float64      { return c.amount }
func (c RefundPaymentCommand) Reason() string       { return c.reason }
