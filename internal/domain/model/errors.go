package model

import "errors"

var (
	// ErrInvalidMarine reports a roster record that fails validation.
	ErrInvalidMarine = errors.New("invalid marine")
	// ErrInvalidClock reports a malformed MM:SS value.
	ErrInvalidClock = errors.New("invalid clock value")
	// ErrEmptySubmission reports a submission carrying no test record.
	ErrEmptySubmission = errors.New("submission has no pft, cft or body record")
)
