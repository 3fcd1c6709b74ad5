package types

import "errors"

// Outcomes of the roster pipeline that callers map onto their own surface.
var (
	ErrBackpressure = errors.New("submission queue is full")
	ErrNotStarted   = errors.New("roster pipeline not started")
)
