package commands

import (
	"errors"

	"farmlink/internal/core/domain/model/kernel"
	"farmlink/internal/pkg/errs"
	"farmlink/internal/pkg/guard"
)

var ErrResolveComplaintCommandIsNotConstructed = errors.New(
	"ResolveComplaintCommand must be created via NewResolveComplaintCommand constructor",
)

// ResolveComplaintCommand closes an open complaint with a resolution note.
type ResolveComplaintCommand struct { //nolint:recvcheck //using for validation
	orderID     kernel.UUID
	complaintID kernel.UUID
	resolution  string

	guard guard.ConstructorGuard
}

// NewResolveComplaintCommand creates a command to resolve a complaint.
func NewResolveComplaintCommand(
	orderID kernel.UUID,
	complaintID kernel.UUID,
	resolution string,
) (ResolveComplaintCommand, error) {
	cmd := ResolveComplaintCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderID.Validate(),
		complaintID.Validate(),
	); err != nil {
		return ResolveComplaintCommand{}, err
	}
	if resolution == "" {
		return ResolveComplaintCommand{}, errs.NewValueIsRequiredError("resolution")
	}

	cmd.orderID = orderID
	cmd.complaintID = complaintID
	cmd.resolution = resolution
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ResolveComplaintCommand) Validate() error {
	return c.guard.Validate(ErrResolveComplaintCommandIsNotConstructed)
}

func (c ResolveComplaintCommand) OrderID() kernel.UUID     { return c.orderID }
func (c ResolveComplaintCommand) ComplaintID() kernel.UUID { return c.complaintID }
func (c ResolveComplaintCommand) Resolution() string       { return c.resolution }
