package crop

import (
	"fmt"

	"farmlink/internal/pkg/errs"
)

// Status is the listing state of a crop. Reservation flips an emptied listing
// to StatusOutOfStock; releasing reserved quantity (order cancellation)
// returns it to StatusAvailable. StatusSold marks listings the farmer closed.
type Status string

const (
	StatusAvailable  Status = "available"
	StatusSold       Status = "sold"
	StatusOutOfStock Status = "out_of_stock"
)

// Validate checks the status against the known set.
func (s Status) Validate() error {
	switch s {
	case StatusAvailable, StatusSold, StatusOutOfStock:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("crop status",
			fmt.Errorf("%q is not a valid crop status", string(s)))
	}
}

// String implements fmt.Stringer.
func (s Status) String() string {
	return string(s)
}
