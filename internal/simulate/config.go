// Package simulate generates a synthetic roster, submits it to a running
// proctord, and checks the resulting leaderboards.
package simulate

import (
	"runtime"
	"time"
)

// Config holds configuration for a simulation run.
type Config struct {
	BaseURL    string        // Base URL of the service
	Marines    int           // Number of Marines to generate
	TopN       int           // Number of leaderboard entries to fetch per test
	Workers    int           // Number of concurrent submitters
	Timeout    time.Duration // HTTP request timeout
	Settle     time.Duration // Longest wait for the roster to be scored
	Seed       uint64        // Generator seed; zero picks one from the clock
	OutputFile string        // Optional JSON dump of the generated submissions
}

// DefaultConfig returns the settings used when no flags are given.
func DefaultConfig() Config {
	return Config{
		BaseURL: "http://localhost:9080",
		Marines: 1000,
		TopN:    10,
		Workers: runtime.NumCPU() * 2,
		Timeout: 30 * time.Second,
		Settle:  30 * time.Second,
	}
}

// Stats holds run statistics.
type Stats struct {
	Generated    int           `json:"generated" yaml:"generated"`
	Submitted    int           `json:"submitted" yaml:"submitted"`
	Accepted     int           `json:"accepted" yaml:"accepted"`
	Duplicate    int           `json:"duplicate" yaml:"duplicate"`
	Rejected     int           `json:"rejected" yaml:"rejected"`
	Failed       int           `json:"failed" yaml:"failed"`
	Scored       int           `json:"scored" yaml:"scored"`
	PFTLeaders   int           `json:"pft_leaders" yaml:"pft_leaders"`
	CFTLeaders   int           `json:"cft_leaders" yaml:"cft_leaders"`
	Duration     time.Duration `json:"duration" yaml:"duration"`
	PerSecond    float64       `json:"submissions_per_second" yaml:"submissions_per_second"`
	Inconsistent []string      `json:"inconsistencies,omitempty" yaml:"inconsistencies,omitempty"`
}
