package dateset

import "github.com/cockroachdb/errors"

var (
	// ErrInvalidRange is returned when an interval would end before it starts
	// or when one of its dates is outside [MinDate, MaxDate].
	ErrInvalidRange = errors.New("invalid date range")

	// ErrUnsupportedOperand is returned by Lift for values that are neither
	// dates nor date sets.
	ErrUnsupportedOperand = errors.New("unsupported operand")

	// ErrNotCanonical is returned by Validate.
	ErrNotCanonical = errors.New("date set is not canonical")
)
