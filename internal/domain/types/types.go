// Package types contains read shapes shared by the store and the API.
package types

import (
	"fmt"
	"strings"
)

// Board names a ranking: one per fitness test.
type Board string

const (
	BoardPFT Board = "pft"
	BoardCFT Board = "cft"
)

// Boards lists every ranking the store maintains.
var Boards = []Board{BoardPFT, BoardCFT}

// ParseBoard accepts "pft" or "cft" in any case. Empty defaults to PFT.
func ParseBoard(s string) (Board, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", string(BoardPFT):
		return BoardPFT, nil
	case string(BoardCFT):
		return BoardCFT, nil
	default:
		return "", fmt.Errorf("unknown board %q", s)
	}
}

// Entry is one leaderboard line. Equal totals share a rank.
type Entry struct {
	Rank           int    `json:"rank"`
	MarineID       string `json:"marine_id"`
	Name           string `json:"name"`
	Total          int    `json:"total"`
	Classification string `json:"classification"`
}

// Brackets reports both age groupings that apply to one age.
type Brackets struct {
	Age     int    `json:"age" yaml:"age"`
	Fitness string `json:"fitness_bracket" yaml:"fitness_bracket"`
	Weight  string `json:"weight_bracket" yaml:"weight_bracket"`
}

// Receipt acknowledges a roster submission.
type Receipt struct {
	SubmissionID string `json:"submission_id"`
	MarineID     string `json:"marine_id"`
	Duplicate    bool   `json:"duplicate"`
}

// Stats is a point-in-time view of the roster pipeline.
type Stats struct {
	Started        bool   `json:"started"`
	WorkerCount    int    `json:"worker_count"`
	QueueCapacity  int    `json:"queue_capacity"`
	QueueLength    int    `json:"queue_length"`
	DedupeCapacity int    `json:"dedupe_capacity"`
	DedupeEntries  int64  `json:"dedupe_entries"`
	RosterSize     int    `json:"roster_size"`
	TableRevision  string `json:"table_revision"`
}
