package commands

import (
	"errors"

	"farmlink/internal/core/domain/model/kernel"
	"farmlink/internal/pkg/guard"
)

var ErrConfirmOrderCommandIsNotConstructed = errors.New(
	"ConfirmOrderCommand must be created via NewConfirmOrderCommand constructor",
)

// ConfirmOrderCommand represents the farmer's acceptance of a pending order.
type ConfirmOrderCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	callerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewConfirmOrderCommand creates a command to confirm a pending order.
func NewConfirmOrderCommand(orderID, callerID kernel.UUID) (ConfirmOrderCommand, error) {
	cmd := ConfirmOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderID.Validate(),
		callerID.Validate(),
	); err != nil {
		return ConfirmOrderCommand{}, err
	}

	cmd.orderID = orderID
	cmd.callerID = callerID
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ConfirmOrderCommand) Validate() error {
	return c.guard.Validate(ErrConfirmOrderCommandIsNotConstructed)
}

func (c ConfirmOrderCommand) OrderID() kernel.UUID  { return c.orderID }
func (c ConfirmOrderCommand) CallerID() kernel.UUID { return c.callerID }
