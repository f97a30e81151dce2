package commands

import (
	"errors"

	"farmlink/internal/core/domain/model/kernel"
	"farmlink/internal/pkg/guard"
)

var ErrMarkPickedUpCommandIsNotConstructed = errors.New(
	"MarkPickedUpCommand must be created via NewMarkPickedUpCommand constructor",
)

// MarkPickedUpCommand records that the assigned transporter collected the
// order at the farm.
type MarkPickedUpCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	callerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewMarkPickedUpCommand creates a command to mark an order picked up.
func NewMarkPickedUpCommand(orderID, callerID kernel.UUID) (MarkPickedUpCommand, error) {
	cmd := MarkPickedUpCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderID.Validate(),
		callerID.Validate(),
	); err != nil {
		return MarkPickedUpCommand{}, err
	}

	cmd.orderID = orderID
	cmd.callerID = callerID
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkPickedUpCommand) Validate() error {
	return c.guard.Validate(ErrMarkPickedUpCommandIsNotConstructed)
}

func (c MarkPickedUpCommand) OrderID() kernel.UUID  { return c.orderID }
func (c MarkPickedUpCommand) CallerID() kernel.UUID { return c.callerID }
