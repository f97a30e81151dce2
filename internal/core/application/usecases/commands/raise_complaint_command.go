package commands

import (
	"errors"

	"farmlink/internal/core/domain/model/kernel"
	"farmlink/internal/pkg/errs"
	"farmlink/internal/pkg/guard"
)

var ErrRaiseComplaintCommandIsNotConstructed = errors.New(
	"RaiseComplaintCommand must be created via NewRaiseComplaintCommand constructor",
)

// RaiseComplaintCommand files a complaint against an order on behalf of the
// farmer or the restaurant.
type RaiseComplaintCommand struct { //nolint:recvcheck //using for validation
	orderID     kernel.UUID
	callerID    kernel.UUID
	description string

	guard guard.ConstructorGuard
}

// NewRaiseComplaintCommand creates a command to raise a complaint.
func NewRaiseComplaintCommand(
	orderID kernel.UUID,
	callerID kernel.UUID,
	description string,
) (RaiseComplaintCommand, error) {
	cmd := RaiseComplaintCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderID.Validate(),
		callerID.Validate(),
	); err != nil {
		return RaiseComplaintCommand{}, err
	}
	if description == "" {
		return RaiseComplaintCommand{}, errs.NewValueIsRequiredError("description")
	}

	cmd.orderID = orderID
	cmd.callerID = callerID
	cmd.description = description
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RaiseComplaintCommand) Validate() error {
	return c.guard.Validate(ErrRaiseComplaintCommandIsNotConstructed)
}

func (c RaiseComplaintCommand) OrderID() kernel.UUID  { return c.orderID }
func (c RaiseComplaintCommand) CallerID() kernel.UUID { return c.callerID }
func (c RaiseComplaintCommand) Description() string   { return c.description }
