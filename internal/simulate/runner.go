package simulate

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"github.com/okian/proctor/internal/domain/model"
	"github.com/okian/proctor/internal/domain/types"
	"github.com/okian/proctor/pkg/logger"
)

const (
	directoryPermission = 0o750
	pollInterval        = 100 * time.Millisecond
)

// Run generates cfg.Marines submissions, submits them concurrently, waits
// for the roster to be scored, and verifies both leaderboards.
func Run(ctx context.Context, cfg Config) (*Stats, error) {
	log := logger.Named("simulate")
	start := time.Now()
	stats := &Stats{}
	client := NewClient(cfg.BaseURL, cfg.Timeout)

	log.Info(ctx, "starting roster simulation",
		logger.String("baseURL", cfg.BaseURL),
		logger.Int("marines", cfg.Marines),
		logger.Int("workers", cfg.Workers),
	)

	if err := client.Health(ctx); err != nil {
		return nil, fmt.Errorf("service health check failed: %w", err)
	}

	before, err := client.Stats(ctx)
	if err != nil {
		return nil, fmt.Errorf("read stats: %w", err)
	}

	subs := NewGenerator(cfg.Seed).Generate(cfg.Marines)
	stats.Generated = len(subs)

	submit(ctx, client, cfg.Workers, subs, stats)

	scored, err := waitForRoster(ctx, client, before.RosterSize+stats.Accepted, cfg.Settle)
	if err != nil {
		return nil, err
	}
	stats.Scored = scored - before.RosterSize

	for _, b := range types.Boards {
		entries, err := client.Leaderboard(ctx, b, cfg.TopN)
		if err != nil {
			return nil, fmt.Errorf("%s leaderboard: %w", b, err)
		}
		if b == types.BoardCFT {
			stats.CFTLeaders = len(entries)
		} else {
			stats.PFTLeaders = len(entries)
		}
		if err := VerifyLeaderboard(entries); err != nil {
			stats.Inconsistent = append(stats.Inconsistent, fmt.Sprintf("%s: %v", b, err))
		}
		if len(entries) > 0 {
			top := entries[0]
			got, err := client.Rank(ctx, b, top.MarineID)
			if err != nil || got.Rank != top.Rank || got.Total != top.Total {
				stats.Inconsistent = append(stats.Inconsistent, fmt.Sprintf("%s: rank lookup for %s disagrees with leaderboard", b, top.MarineID))
			}
		}
	}

	if cfg.OutputFile != "" {
		if err := saveSubmissions(cfg.OutputFile, subs); err != nil {
			log.Warn(ctx, "failed to save submissions", logger.Error(err))
		}
	}

	stats.Duration = time.Since(start)
	if stats.Duration > 0 {
		stats.PerSecond = float64(stats.Submitted) / stats.Duration.Seconds()
	}
	log.Info(ctx, "simulation completed",
		logger.Int("accepted", stats.Accepted),
		logger.Int("scored", stats.Scored),
		logger.Int("inconsistencies", len(stats.Inconsistent)),
		logger.Duration("duration", stats.Duration),
	)
	return stats, nil
}

// submit fans submissions out to a fixed set of workers.
func submit(ctx context.Context, client *Client, workers int, subs []model.Submission, stats *Stats) {
	if workers < 1 {
		workers = 1
	}
	var submitted, accepted, duplicate, rejected, failed atomic.Int64

	ch := make(chan model.Submission, workers*2)
	var wg sync.WaitGroup
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for sub := range ch {
				outcome, _ := client.Submit(ctx, sub)
				submitted.Add(1)
				switch outcome {
				case OutcomeAccepted:
					accepted.Add(1)
				case OutcomeDuplicate:
					duplicate.Add(1)
				case OutcomeRejected:
					rejected.Add(1)
				default:
					failed.Add(1)
				}
			}
		}()
	}

	go func() {
		defer close(ch)
		for _, s := range subs {
			select {
			case <-ctx.Done():
				return
			case ch <- s:
			}
		}
	}()
	wg.Wait()

	stats.Submitted = int(submitted.Load())
	stats.Accepted = int(accepted.Load())
	stats.Duplicate = int(duplicate.Load())
	stats.Rejected = int(rejected.Load())
	stats.Failed = int(failed.Load())
}

// waitForRoster polls /stats until the roster holds want Marines or settle
// elapses, and returns the last roster size seen.
func waitForRoster(ctx context.Context, client *Client, want int, settle time.Duration) (int, error) {
	deadline := time.Now().Add(settle)
	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()
	for {
		st, err := client.Stats(ctx)
		if err != nil {
			return 0, fmt.Errorf("read stats: %w", err)
		}
		if st.RosterSize >= want || time.Now().After(deadline) {
			return st.RosterSize, nil
		}
		select {
		case <-ctx.Done():
			return st.RosterSize, ctx.Err()
		case <-ticker.C:
		}
	}
}

func saveSubmissions(filename string, subs []model.Submission) error {
	if dir := filepath.Dir(filename); dir != "." {
		if err := os.MkdirAll(dir, directoryPermission); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}
	data, err := json.MarshalIndent(subs, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal submissions: %w", err)
	}
	return os.WriteFile(filename, data, 0o600)
}
