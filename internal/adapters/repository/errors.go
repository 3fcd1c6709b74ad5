package repository

import "errors"

var (
	ErrNotFound     = errors.New("marine not found")
	ErrNotRanked    = errors.New("marine has no score on this board")
	ErrInvalidLimit = errors.New("invalid leaderboard limit")
	ErrInvalidBoard = errors.New("invalid leaderboard")
	ErrEmptyID      = errors.New("empty marine id")
)
