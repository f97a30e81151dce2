package commands

import (
	"errors"
	"time"

	"farmlink/internal/pkg/errs"
	"farmlink/internal/pkg/guard"
)

var ErrCompleteTransfersCommandIsNotConstructed = errors.New(
	"CompleteTransfersCommand must be created via NewCompleteTransfersCommand constructor",
)

// CompleteTransfersCommand finishes the payout legs of every order that was
// settled at or before the cutoff and is still processing. The settlement
// sweep job issues it on a schedule, which makes completion survive process
// restarts.
type CompleteTransfersCommand struct { //nolint:recvcheck //using for validation
	cutoff time.Time

	guard guard.ConstructorGuard
}

// NewCompleteTransfersCommand creates a command to complete pending transfers.
func NewCompleteTransfersCommand(cutoff time.Time) (CompleteTransfersCommand, error) {
	if cutoff.IsZero() {
		return CompleteTransfersCommand{}, errs.NewValueIsRequiredError("cutoff")
	}

	return CompleteTransfersCommand{
		cutoff: cutoff,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CompleteTransfersCommand) Validate() error {
	return c.guard.Validate(ErrCompleteTransfersCommandIsNotConstructed)
}

// Cutoff returns the settlement time at or before which payouts are due.
func (c CompleteTransfersCommand) Cutoff() time.Time { return c.cutoff }
