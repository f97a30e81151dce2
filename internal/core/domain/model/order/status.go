package order

import (
	"fmt"

	"farmlink/internal/pkg/errs"
)

// wrongState is returned for every failed transition precondition. It is the
// same not-found kind callers get for an order that does not exist, and it
// never names the current status, so order state cannot be inferred from
// transition errors.
func wrongState() error {
	return errs.NewObjectNotFoundError("status", "order")
}

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions so orders can only
// move forward through the delivery workflow.
//
// State transitions:
//
//	pending ──> confirmed ──> picked_up ──> in_transit ──> delivered
//	   │             │            │              │
//	   │             │            └──────────────┴──> delivered
//	   └─────────────┴──> cancelled
//
// delivered and cancelled are terminal: no transition leaves them.
type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusPickedUp  Status = "picked_up"
	StatusInTransit Status = "in_transit"
	StatusDelivered Status = "delivered"
	StatusCancelled Status = "cancelled"
)

// Validate checks the status against the known set.
func (s Status) Validate() error {
	switch s {
	case StatusPending, StatusConfirmed, StatusPickedUp, StatusInTransit,
		StatusDelivered, StatusCancelled:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%q is not a valid order status", string(s)))
	}
}

// String implements fmt.Stringer.
func (s Status) String() string {
	return string(s)
}

// IsTerminal reports whether the status admits no further transitions.
func (s Status) IsTerminal() bool {
	return s == StatusDelivered || s == StatusCancelled
}

// Confirm transitions the status to confirmed.
//
// Valid transitions:
//   - pending -> confirmed
//
// Returns the new status, or a not-found error if the order is not pending.
func (s Status) Confirm() (Status, error) {
	if s != StatusPending {
		return "", wrongState()
	}
	return StatusConfirmed, nil
}

// Cancel transitions the status to cancelled.
//
// Valid transitions:
//   - pending -> cancelled
//   - confirmed -> cancelled
//
// Once a transporter has picked the order up it can no longer be cancelled.
func (s Status) Cancel() (Status, error) {
	if s != StatusPending && s != StatusConfirmed {
		return "", wrongState()
	}
	return StatusCancelled, nil
}

// PickUp transitions the status to picked_up.
//
// Valid transitions:
//   - confirmed -> picked_up
func (s Status) PickUp() (Status, error) {
	if s != StatusConfirmed {
		return "", wrongState()
	}
	return StatusPickedUp, nil
}

// StartTransit transitions the status to in_transit.
//
// Valid transitions:
//   - picked_up -> in_transit
func (s Status) StartTransit() (Status, error) {
	if s != StatusPickedUp {
		return "", wrongState()
	}
	return StatusInTransit, nil
}

// Deliver transitions the status to delivered.
//
// Valid transitions:
//   - picked_up -> delivered
//   - in_transit -> delivered
//
// A transporter may mark delivery straight from picked_up; the in_transit
// leg is optional for short routes.
func (s Status) Deliver() (Status, error) {
	if s != StatusPickedUp && s != StatusInTransit {
		return "", wrongState()
	}
	return StatusDelivered, nil
}
