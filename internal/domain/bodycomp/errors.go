package bodycomp

import (
	"errors"
	"fmt"
)

var (
	// ErrNoHeightStandard is returned when the rounded height has no row in
	// the weight standards.
	ErrNoHeightStandard = errors.New("no standard for height")
	// ErrInvalidMeasurement reports a tape measurement the formula cannot use.
	ErrInvalidMeasurement = errors.New("invalid measurement")
)

// HeightError carries the requested height and the tabulated range.
type HeightError struct {
	Height int
	Min    int
	Max    int
}

func (e *HeightError) Error() string {
	return fmt.Sprintf("no standard for height %d\" (tabulated %d\"-%d\")", e.Height, e.Min, e.Max)
}

func (e *HeightError) Unwrap() error { return ErrNoHeightStandard }
