package order

import (
	"time"

	"farmlink/internal/core/domain/model/kernel"
	"farmlink/internal/pkg/errs"
)

// QualityVerification records the transporter's quality check at pickup.
// At most one verification exists per order and it never changes once set.
type QualityVerification struct {
	verifiedBy kernel.UUID
	score      int
	notes      string
	verifiedAt time.Time
}

func newQualityVerification(
	verifiedBy kernel.UUID,
	score int,
	notes string,
	verifiedAt time.Time,
) (QualityVerification, error) {
	if err := verifiedBy.Validate(); err != nil {
		return QualityVerification{}, err
	}
	if score < 1 || score > 5 {
		return QualityVerification{}, errs.NewValueIsOutOfRangeError("score", score, 1, 5)
	}
	return QualityVerification{
		verifiedBy: verifiedBy,
		score:      score,
		notes:      notes,
		verifiedAt: verifiedAt,
	}, nil
}

// RestoreQualityVerification rebuilds a verification from persistence.
func RestoreQualityVerification(
	verifiedBy kernel.UUID,
	score int,
	notes string,
	verifiedAt time.Time,
) QualityVerification {
	return QualityVerification{
		verifiedBy: verifiedBy,
		score:      score,
		notes:      notes,
		verifiedAt: verifiedAt,
	}
}

func (q QualityVerification) VerifiedBy() kernel.UUID { return q.verifiedBy }
func (q QualityVerification) Score() int              { return q.score }
func (q QualityVerification) Notes() string           { return q.notes }
func (q QualityVerification) VerifiedAt() time.Time   { return q.verifiedAt }
