package commands

import (
	"errors"

	"farmlink/internal/core/domain/model/kernel"
	"farmlink/internal/pkg/guard"
)

var ErrMarkDeliveredCommandIsNotConstructed = errors.New(
	"MarkDeliveredCommand must be created via NewMarkDeliveredCommand constructor",
)

// MarkDeliveredCommand records the handover of an order at the restaurant.
type MarkDeliveredCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	callerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewMarkDeliveredCommand creates a command to mark an order delivered.
func NewMarkDeliveredCommand(orderID, callerID kernel.UUID) (MarkDeliveredCommand, error) {
	cmd := MarkDeliveredCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderID.Validate(),
		callerID.Validate(),
	); err != nil {
		return MarkDeliveredCommand{}, err
	}

	cmd.orderID = orderID
	cmd.callerID = callerID
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkDeliveredCommand) Validate() error {
	return c.guard.Validate(ErrMarkDeliveredCommandIsNotConstructed)
}

func (c MarkDeliveredCommand) OrderID() kernel.UUID  { return c.orderID }
func (c MarkDeliveredCommand) CallerID() kernel.UUID { return c.callerID }
