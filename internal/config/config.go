// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Provide New() to build a Config with defaults.
// - Load layers a YAML file and PROCTOR_ environment variables over New().
// - External errors are wrapped with this package's sentinel errors.
package config

import (
	"runtime"
	"time"
)

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// LogFormat selects the log handler: text or json.
	LogFormat string `koanf:"log_format"`

	// Addr configures the HTTP listen address, e.g. ":9080".
	Addr string `koanf:"addr"`

	// QueueSize bounds the in-memory roster submission queue.
	QueueSize int `koanf:"queue_size"`

	// WorkerCount sets the number of scoring workers.
	WorkerCount int `koanf:"worker_count"`

	// DedupeSize sets the size of the submission id deduplication cache.
	DedupeSize int `koanf:"dedupe_size"`

	// MaxLeaderboardLimit caps GET /leaderboard?limit.
	MaxLeaderboardLimit int `koanf:"max_leaderboard_limit"`

	// SnapshotIntervalMS controls how often leaderboard snapshots are published.
	SnapshotIntervalMS int `koanf:"snapshot_interval_ms"`

	// TopCacheSize is the number of entries kept in each published snapshot.
	TopCacheSize int `koanf:"top_cache_size"`

	// CORSAllowedOrigins lists origins allowed to call the HTTP API.
	CORSAllowedOrigins []string `koanf:"cors_allowed_origins"`

	// AltitudeDefault marks every request as taken at altitude.
	AltitudeDefault bool `koanf:"altitude_default"`
}

// New creates a Config populated with defaults.
func New() *Config {
	return &Config{
		LogLevel:            "info",
		LogFormat:           "text",
		Addr:                ":9080",
		QueueSize:           10_000,
		WorkerCount:         runtime.NumCPU() * 2,
		DedupeSize:          50_000,
		MaxLeaderboardLimit: 100,
		SnapshotIntervalMS:  1000,
		TopCacheSize:        100,
		CORSAllowedOrigins:  []string{"*"},
	}
}

// SnapshotInterval returns SnapshotIntervalMS as a duration.
func (c *Config) SnapshotInterval() time.Duration {
	return time.Duration(c.SnapshotIntervalMS) * time.Millisecond
}

// Validate reports the first invalid setting wrapped in ErrInvalidConfig.
func (c *Config) Validate() error {
	switch {
	case c.Addr == "":
		return invalid("addr must not be empty")
	case c.MaxLeaderboardLimit < 1:
		return invalid("max_leaderboard_limit must be at least 1")
	case c.QueueSize < 1:
		return invalid("queue_size must be at least 1")
	case c.WorkerCount < 1:
		return invalid("worker_count must be at least 1")
	case c.SnapshotIntervalMS < 1:
		return invalid("snapshot_interval_ms must be at least 1")
	}
	switch c.LogFormat {
	case "", "text", "json":
	default:
		return invalid("log_format must be text or json")
	}
	return nil
}
