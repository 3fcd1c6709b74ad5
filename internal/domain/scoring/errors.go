package scoring

import "errors"

// Sentinel error kinds for the calculator.
var (
	// ErrInvalidSelection reports an event choice that breaks the selection
	// contract: exactly one upper-body event and exactly one cardio event.
	ErrInvalidSelection = errors.New("invalid event selection")
	// ErrInvalidInput reports a raw value that cannot be scored, such as a
	// negative rep count or a missing timed result.
	ErrInvalidInput = errors.New("invalid input")
)
