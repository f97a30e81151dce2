package commands

import (
	"errors"

	"farmlink/internal/core/domain/model/kernel"
	"farmlink/internal/pkg/errs"
	"farmlink/internal/pkg/guard"
)

var ErrVerifyQualityCommandIsNotConstructed = errors.New(
	"VerifyQualityCommand must be created via NewVerifyQualityCommand constructor",
)

// VerifyQualityCommand records the transporter's quality check at pickup.
// The score grades the produce from 1 (unusable) to 5 (excellent).
type VerifyQualityCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	callerID kernel.UUID
	score    int
	notes    string

	guard guard.ConstructorGuard
}

// NewVerifyQualityCommand creates a command to verify order quality.
func NewVerifyQualityCommand(
	orderID kernel.UUID,
	callerID kernel.UUID,
	score int,
	notes string,
) (VerifyQualityCommand, error) {
	cmd := VerifyQualityCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderID.Validate(),
		callerID.Validate(),
	); err != nil {
		return VerifyQualityCommand{}, err
	}
	if score < 1 || score > 5 {
		return VerifyQualityCommand{}, errs.NewValueIsOutOfRangeError("score", score, 1, 5)
	}

	cmd.orderID = orderID
	cmd.callerID = callerID
	cmd.score = score
	cmd.notes = notes
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c VerifyQualityCommand) Validate() error {
	return c.guard.Validate(ErrVerifyQualityCommandIsNotConstructed)
}

func (c VerifyQualityCommand) OrderID() kernel.UUID  { return c.orderID }
func (c VerifyQualityCommand) CallerID() kernel.UUID { return c.callerID }
func (c VerifyQualityCommand) Score() int            { return c.score }
func (c VerifyQualityCommand) Notes() string         { return c.notes }
