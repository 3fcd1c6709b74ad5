package repository

import "time"

// Option applies a configuration option to the TreapStore.
type Option func(*TreapStore)

// WithSnapshotInterval sets how often leaderboard snapshots are rebuilt.
func WithSnapshotInterval(d time.Duration) Option {
	return func(s *TreapStore) {
		if d > 0 {
			s.snapshotInterval = d
		}
	}
}

// WithTopCacheSize sets how many leaders each snapshot keeps.
func WithTopCacheSize(n int) Option {
	return func(s *TreapStore) {
		if n > 0 {
			s.topCacheSize = n
		}
	}
}
