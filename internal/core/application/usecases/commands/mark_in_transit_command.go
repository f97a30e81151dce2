package commands

import (
	"errors"

	"farmlink/internal/core/domain/model/kernel"
	"farmlink/internal/pkg/guard"
)

var ErrMarkInTransitCommandIsNotConstructed = errors.New(
	"MarkInTransitCommand must be created via NewMarkInTransitCommand constructor",
)

// MarkInTransitCommand records that the transporter left the farm with the
// order.
type MarkInTransitCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	callerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewMarkInTransitCommand creates a command to mark an order in transit.
func NewMarkInTransitCommand(orderID, callerID kernel.UUID) (MarkInTransitCommand, error) {
	cmd := MarkInTransitCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderID.Validate(),
		callerID.Validate(),
	); err != nil {
		return MarkInTransitCommand{}, err
	}

	cmd.orderID = orderID
	cmd.callerID = callerID
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkInTransitCommand) Validate() error {
	return c.guard.Validate(ErrMarkInTransitCommandIsNotConstructed)
}

func (c MarkInTransitCommand) OrderID() kernel.UUID  { return c.orderID }
func (c MarkInTransitCommand) CallerID() kernel.UUID { return c.callerID }
