package crop

import (
	"fmt"

	"farmlink/internal/pkg/errs"
)

// Unit is the sale unit a crop is listed in. Weight-based pricing converts
// units to kilograms through one of the default tables below.
type Unit string

const (
	UnitKg      Unit = "kg"
	UnitDozen   Unit = "dozen"
	UnitPiece   Unit = "piece"
	UnitQuintal Unit = "quintal"
	UnitTon     Unit = "ton"
	UnitBunch   Unit = "bunch"
	UnitBag     Unit = "bag"
)

// Validate checks the unit against the known set.
func (u Unit) Validate() error {
	switch u {
	case UnitKg, UnitDozen, UnitPiece, UnitQuintal, UnitTon, UnitBunch, UnitBag:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("unit",
			fmt.Errorf("%q is not a valid unit", string(u)))
	}
}

// String implements fmt.Stringer.
func (u Unit) String() string {
	return string(u)
}

// DefaultWeightPerUnit returns the fallback weight in kilograms for one unit
// of a manually listed crop, used when the farmer does not supply an explicit
// weightPerUnit. Unknown units default to 1 kg.
func DefaultWeightPerUnit(u Unit) float64 {
	switch u {
	case UnitKg:
		return 1
	case UnitDozen:
		return 0.12
	case UnitPiece:
		return 0.1
	case UnitQuintal:
		return 100
	case UnitTon:
		return 1000
	case UnitBunch:
		return 0.5
	case UnitBag:
		return 30
	default:
		return 1
	}
}

// VoiceDefaultWeightPerUnit returns the fallback weight in kilograms for one
// unit of a voice-listed crop. The voice pipeline historically shipped with
// its own table whose values disagree with DefaultWeightPerUnit for several
// units (dozen 0.5 vs 0.12, piece 0.3 vs 0.1, bunch 0.2 vs 0.5, bag 50 vs
// 30). Which table is authoritative is an open question; both are preserved
// as-is, keyed to their call sites, rather than silently merged.
func VoiceDefaultWeightPerUnit(u Unit) float64 {
	switch u {
	case UnitKg:
		return 1
	case UnitDozen:
		return 0.5
	case UnitPiece:
		return 0.3
	case UnitBunch:
		return 0.2
	case UnitBag:
		return 50
	default:
		return 1
	}
}
