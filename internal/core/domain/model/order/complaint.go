package order

import (
	"time"

	"farmlink/internal/core/domain/model/kernel"
	"farmlink/internal/pkg/errs"
)

// Complaint is a grievance raised against an order by the farmer or the
// restaurant. The complaint log is append-only: complaints are resolved in
// place, never removed.
type Complaint struct {
	id          kernel.UUID
	raisedBy    kernel.UUID
	description string
	raisedAt    time.Time
	resolved    bool
	resolution  string
	resolvedAt  *time.Time
}

func newComplaint(raisedBy kernel.UUID, description string, raisedAt time.Time) (Complaint, error) {
	if err := raisedBy.Validate(); err != nil {
		return Complaint{}, err
	}
	if description == "" {
		return Complaint{}, errs.NewValueIsRequiredError("description")
	}
	return Complaint{
		id:          kernel.NewUUID(),
		raisedBy:    raisedBy,
		description: description,
		raisedAt:    raisedAt,
	}, nil
}

// RestoreComplaint rebuilds a complaint from persistence.
func RestoreComplaint(
	id kernel.UUID,
	raisedBy kernel.UUID,
	description string,
	raisedAt time.Time,
	resolved bool,
	resolution string,
	resolvedAt *time.Time,
) Complaint {
	return Complaint{
		id:          id,
		raisedBy:    raisedBy,
		description: description,
		raisedAt:    raisedAt,
		resolved:    resolved,
		resolution:  resolution,
		resolvedAt:  resolvedAt,
	}
}

func (c Complaint) ID() kernel.UUID        { return c.id }
func (c Complaint) RaisedBy() kernel.UUID  { return c.raisedBy }
func (c Complaint) Description() string    { return c.description }
func (c Complaint) RaisedAt() time.Time    { return c.raisedAt }
func (c Complaint) Resolved() bool         { return c.resolved }
func (c Complaint) Resolution() string     { return c.resolution }
func (c Complaint) ResolvedAt() *time.Time { return c.resolvedAt }
