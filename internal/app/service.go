// Package service provides the core business service that implements
// the dependencies required by the HTTP API and the CLI.
package service

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"sync"
	"time"

	"github.com/google/uuid"

	eventqueue "github.com/okian/proctor/internal/adapters/mq/queue"
	workerpool "github.com/okian/proctor/internal/adapters/mq/worker"
	repository "github.com/okian/proctor/internal/adapters/repository"
	"github.com/okian/proctor/internal/domain/bodycomp"
	"github.com/okian/proctor/internal/domain/dedupe"
	"github.com/okian/proctor/internal/domain/model"
	"github.com/okian/proctor/internal/domain/scoring"
	"github.com/okian/proctor/internal/domain/tables"
	"github.com/okian/proctor/internal/domain/types"
	"github.com/okian/proctor/pkg/logger"
	"github.com/okian/proctor/pkg/metrics"
)

// Test names used in scorecard errors and metrics labels.
const (
	TestPFT  = "pft"
	TestCFT  = "cft"
	TestBody = "body"
)

// Service implements the API dependencies for the fitness scoring system.
type Service struct {
	mu sync.RWMutex

	// Core components
	calc     *scoring.Calculator
	assessor *bodycomp.Assessor
	roster   *repository.TreapStore
	deduper  dedupe.Deduper
	queue    eventqueue.Queue
	pool     *workerpool.Pool

	// Configuration
	workerCount      int
	queueSize        int
	dedupeSize       int
	snapshotInterval time.Duration
	topCacheSize     int
	altitudeDefault  bool
	tables           *tables.Tables

	// State
	started bool
	now     func() time.Time

	logger logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithWorkerCount sets the number of worker goroutines.
func WithWorkerCount(count int) Option {
	return func(s *Service) {
		if count > 0 {
			s.workerCount = count
		}
	}
}

// WithQueueSize sets the maximum size of the submission queue.
func WithQueueSize(size int) Option {
	return func(s *Service) {
		if size > 0 {
			s.queueSize = size
		}
	}
}

// WithDedupeSize sets the size of the deduplication cache.
func WithDedupeSize(size int) Option {
	return func(s *Service) {
		if size > 0 {
			s.dedupeSize = size
		}
	}
}

// WithSnapshotInterval sets how often leaderboard snapshots are published.
func WithSnapshotInterval(d time.Duration) Option {
	return func(s *Service) {
		if d > 0 {
			s.snapshotInterval = d
		}
	}
}

// WithTopCacheSize sets the number of entries kept per snapshot.
func WithTopCacheSize(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.topCacheSize = n
		}
	}
}

// WithAltitudeDefault marks every scored test as taken at altitude.
func WithAltitudeDefault(on bool) Option {
	return func(s *Service) {
		s.altitudeDefault = on
	}
}

// WithTables replaces the scoring data set.
func WithTables(t *tables.Tables) Option {
	return func(s *Service) {
		if t != nil {
			s.tables = t
		}
	}
}

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithClock overrides the time source used for ages and timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// New constructs a new Service. The synchronous scoring operations work
// immediately; the roster pipeline needs Start.
func New(opts ...Option) *Service {
	s := &Service{
		workerCount:      runtime.NumCPU() * 2,
		queueSize:        10_000,
		dedupeSize:       50_000,
		snapshotInterval: time.Second,
		topCacheSize:     100,
		tables:           tables.Default(),
		now:              time.Now,
	}

	for _, opt := range opts {
		opt(s)
	}

	s.calc = scoring.NewCalculator(scoring.WithTables(s.tables))
	s.assessor = bodycomp.NewAssessor(bodycomp.WithTables(s.tables))
	if s.logger == nil {
		s.logger = logger.Get().Named("service")
	}
	return s
}

// Start initializes and starts the roster pipeline.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}

	s.logger.Info(ctx, "starting proctor service...")

	s.roster = repository.NewTreapStore(ctx,
		repository.WithSnapshotInterval(s.snapshotInterval),
		repository.WithTopCacheSize(s.topCacheSize),
	)
	s.deduper = dedupe.NewInMemoryDeduper(
		dedupe.WithMaxSize(s.dedupeSize),
	)
	s.queue = eventqueue.NewInMemoryQueue(
		eventqueue.WithCapacity(s.queueSize),
	)

	s.pool = workerpool.NewPool(s.workerCount, s.queue, s, s.roster)
	s.pool.Start(ctx)

	s.started = true
	s.logger.Info(ctx, "proctor service started",
		logger.Int("workers", s.workerCount),
		logger.Int("queueSize", s.queueSize),
		logger.Int("dedupeSize", s.dedupeSize),
		logger.String("tables", s.tables.Revision()),
	)
	return nil
}

// Stop drains the queue, stops the workers, and closes the roster store.
func (s *Service) Stop(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return nil
	}

	s.logger.Info(ctx, "stopping proctor service...")

	var err error
	if s.pool != nil {
		if perr := s.pool.Shutdown(ctx); perr != nil {
			err = fmt.Errorf("shutdown worker pool: %w", perr)
		}
	}
	if s.roster != nil {
		_ = s.roster.Close()
	}

	s.started = false
	s.logger.Info(ctx, "proctor service stopped")
	return err
}

// Started reports whether the roster pipeline is running.
func (s *Service) Started() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.started
}

// Tables returns the scoring data set in use.
func (s *Service) Tables() *tables.Tables { return s.tables }

// ScorePFT scores one Physical Fitness Test.
func (s *Service) ScorePFT(ctx context.Context, in scoring.Input) (scoring.Result, error) {
	start := time.Now()
	in.Altitude = in.Altitude || s.altitudeDefault
	res, err := s.calc.ScorePFT(in)
	s.observe(ctx, TestPFT, start, string(res.Classification), err)
	return res, err
}

// ScoreCFT scores one Combat Fitness Test.
func (s *Service) ScoreCFT(ctx context.Context, in scoring.Input) (scoring.CombatResult, error) {
	start := time.Now()
	in.Altitude = in.Altitude || s.altitudeDefault
	res, err := s.calc.ScoreCFT(in)
	s.observe(ctx, TestCFT, start, string(res.Classification), err)
	return res, err
}

// Assess runs the height/weight and body-fat assessment.
func (s *Service) Assess(ctx context.Context, in bodycomp.Input) (bodycomp.Assessment, error) {
	start := time.Now()
	res, err := s.assessor.Assess(in)
	outcome := "fail"
	if res.Passed {
		outcome = "pass"
	}
	s.observe(ctx, TestBody, start, outcome, err)
	return res, err
}

// Brackets returns the fitness and weight brackets for an age.
func (s *Service) Brackets(age int) types.Brackets {
	return types.Brackets{
		Age:     age,
		Fitness: string(tables.AgeBracketFor(age)),
		Weight:  string(tables.WeightAgeBracketFor(age)),
	}
}

// Instructions returns the tape measurement instructions for a gender.
func (s *Service) Instructions(gender string) ([]bodycomp.Instruction, error) {
	g, err := tables.ParseGender(gender)
	if err != nil {
		return nil, err
	}
	return bodycomp.Instructions(g), nil
}

func (s *Service) observe(ctx context.Context, test string, start time.Time, outcome string, err error) {
	metrics.RecordScoringLatency(float64(time.Since(start).Microseconds()) / 1000)
	if err != nil {
		metrics.RecordScoringError(test, errorKind(err))
		s.logger.Debug(ctx, "scoring rejected",
			logger.String("test", test),
			logger.Error(err),
		)
		return
	}
	metrics.RecordScore(test, outcome)
}

func errorKind(err error) string {
	switch {
	case errors.Is(err, tables.ErrMissingEntry):
		return "missing_table_entry"
	case errors.Is(err, bodycomp.ErrNoHeightStandard):
		return "no_height_standard"
	case errors.Is(err, tables.ErrInvalidGender):
		return "invalid_gender"
	case errors.Is(err, scoring.ErrInvalidSelection):
		return "invalid_selection"
	default:
		return "invalid_input"
	}
}

// ScoreSubmission scores every record present on a submission. Failures
// of individual tests are kept on the scorecard rather than returned, so a
// Marine with a bad CFT entry still gets a PFT ranking.
func (s *Service) ScoreSubmission(ctx context.Context, sub model.Submission) (model.Scorecard, error) { //nolint:gocritic // hugeParam: matches worker.Scorer
	card := model.Scorecard{
		Marine:       sub.Marine,
		SubmissionID: sub.SubmissionID,
		Revision:     s.tables.Revision(),
		SubmittedAt:  sub.TS,
		ScoredAt:     s.now().UTC(),
	}
	fail := func(test string, err error) {
		if card.Errors == nil {
			card.Errors = make(map[string]string)
		}
		card.Errors[test] = err.Error()
	}

	if sub.PFT != nil {
		if res, err := s.ScorePFT(ctx, sub.PFTInput()); err != nil {
			fail(TestPFT, err)
		} else {
			card.PFT = &res
		}
	}
	if sub.CFT != nil {
		if res, err := s.ScoreCFT(ctx, sub.CFTInput()); err != nil {
			fail(TestCFT, err)
		} else {
			card.CFT = &res
		}
	}
	if sub.Body != nil {
		if res, err := s.Assess(ctx, sub.BodyInput()); err != nil {
			fail(TestBody, err)
		} else {
			card.Body = &res
		}
	}
	return card, nil
}

// Submit validates a roster submission and queues it for scoring. Missing
// submission and marine ids are generated. A submission id already seen is
// reported as a duplicate and not queued again.
func (s *Service) Submit(ctx context.Context, sub model.Submission) (types.Receipt, error) { //nolint:gocritic // hugeParam: value copy is normalized in place
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.started {
		return types.Receipt{}, types.ErrNotStarted
	}

	if err := sub.Marine.Normalize(s.now()); err != nil {
		return types.Receipt{}, err
	}
	if err := sub.Validate(); err != nil {
		return types.Receipt{}, err
	}
	if sub.SubmissionID == "" {
		sub.SubmissionID = uuid.NewString()
	}
	if sub.Marine.ID == "" {
		sub.Marine.ID = uuid.NewString()
	}
	if sub.TS.IsZero() {
		sub.TS = s.now().UTC()
	}

	res := types.Receipt{SubmissionID: sub.SubmissionID, MarineID: sub.Marine.ID}

	if s.deduper.SeenAndRecord(ctx, sub.SubmissionID) {
		metrics.RecordSubmissionDuplicate()
		s.logger.Debug(ctx, "duplicate submission detected, skipping",
			logger.String("submission_id", sub.SubmissionID),
		)
		res.Duplicate = true
		return res, nil
	}

	if !s.queue.Enqueue(ctx, sub) {
		// Let the client retry the same id.
		s.deduper.Unrecord(ctx, sub.SubmissionID)
		return res, types.ErrBackpressure
	}
	s.logger.Debug(ctx, "submission queued",
		logger.String("submission_id", sub.SubmissionID),
		logger.String("marine_id", sub.Marine.ID),
	)
	return res, nil
}

// Get returns the latest scorecard of a Marine.
func (s *Service) Get(ctx context.Context, marineID string) (model.Scorecard, error) {
	if err := s.ready(); err != nil {
		return model.Scorecard{}, err
	}
	return s.roster.Get(ctx, marineID)
}

// Remove deletes a Marine from the roster and both rankings.
func (s *Service) Remove(ctx context.Context, marineID string) error {
	if err := s.ready(); err != nil {
		return err
	}
	if err := s.roster.Remove(ctx, marineID); err != nil {
		return err
	}
	metrics.UpdateRosterSize(s.roster.Count(ctx))
	return nil
}

// List returns every scorecard on the roster.
func (s *Service) List(ctx context.Context) ([]model.Scorecard, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	return s.roster.List(ctx), nil
}

// TopN returns the top n entries of a ranking.
func (s *Service) TopN(ctx context.Context, board types.Board, n int) ([]types.Entry, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	return s.roster.TopN(ctx, board, n)
}

// Rank returns one Marine's entry on a ranking.
func (s *Service) Rank(ctx context.Context, board types.Board, marineID string) (types.Entry, error) {
	if err := s.ready(); err != nil {
		return types.Entry{}, err
	}
	return s.roster.Rank(ctx, board, marineID)
}

// Snapshot returns the last published view of a ranking.
func (s *Service) Snapshot(board types.Board) (*repository.Snapshot, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	return s.roster.Snapshot(board), nil
}

func (s *Service) ready() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.started {
		return types.ErrNotStarted
	}
	return nil
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats(ctx context.Context) types.Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	st := types.Stats{
		Started:        s.started,
		WorkerCount:    s.workerCount,
		QueueCapacity:  s.queueSize,
		DedupeCapacity: s.dedupeSize,
		TableRevision:  s.tables.Revision(),
	}

	if s.started {
		st.QueueLength = s.queue.Len(ctx)
		st.DedupeEntries = s.deduper.Size()
		st.RosterSize = s.roster.Count(ctx)

		metrics.UpdateQueueSize(st.QueueLength, s.queueSize)
		metrics.UpdateRosterSize(st.RosterSize)
	}

	return st
}
