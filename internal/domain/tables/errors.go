package tables

import "errors"

// Sentinel error kinds for table lookups. These allow errors.Is/As from callers.
var (
	// ErrMissingEntry reports a gender/bracket/event combination with no
	// tabulated standard. It indicates a data gap, never a user mistake.
	ErrMissingEntry = errors.New("missing table entry")
	// ErrInvalidGender reports a gender string outside {male, female}.
	ErrInvalidGender = errors.New("invalid gender")
)
