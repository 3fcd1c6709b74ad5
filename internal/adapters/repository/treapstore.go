package repository

import (
	"context"
	"math/rand/v2"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/okian/proctor/internal/domain/model"
	"github.com/okian/proctor/internal/domain/types"
	"github.com/okian/proctor/pkg/metrics"
)

// Each board is a treap keyed by (total DESC, id ASC), so an in-order walk
// yields the leaderboard from best to worst. Priorities are random.

type node struct {
	id    string
	total int
	prio  uint64
	left  *node
	right *node
	size  int
}

func nsize(n *node) int {
	if n == nil {
		return 0
	}
	return n.size
}

func fix(n *node) {
	if n != nil {
		n.size = 1 + nsize(n.left) + nsize(n.right)
	}
}

// less reports whether (aTotal, aID) ranks before (bTotal, bID).
func less(aTotal int, aID string, bTotal int, bID string) bool {
	if aTotal != bTotal {
		return aTotal > bTotal
	}
	return aID < bID
}

func rotateRight(y *node) *node {
	x := y.left
	y.left = x.right
	x.right = y
	fix(y)
	fix(x)
	return x
}

func rotateLeft(x *node) *node {
	y := x.right
	x.right = y.left
	y.left = x
	fix(x)
	fix(y)
	return y
}

func insert(n *node, id string, total int) *node {
	if n == nil {
		return &node{id: id, total: total, prio: rand.Uint64(), size: 1}
	}
	if less(total, id, n.total, n.id) {
		n.left = insert(n.left, id, total)
		if n.left.prio > n.prio {
			n = rotateRight(n)
		}
	} else {
		n.right = insert(n.right, id, total)
		if n.right.prio > n.prio {
			n = rotateLeft(n)
		}
	}
	fix(n)
	return n
}

func deleteNode(n *node, id string, total int) *node {
	if n == nil {
		return nil
	}
	switch {
	case total == n.total && id == n.id:
		if n.left == nil {
			return n.right
		}
		if n.right == nil {
			return n.left
		}
		if n.left.prio > n.right.prio {
			n = rotateRight(n)
			n.right = deleteNode(n.right, id, total)
		} else {
			n = rotateLeft(n)
			n.left = deleteNode(n.left, id, total)
		}
	case less(total, id, n.total, n.id):
		n.left = deleteNode(n.left, id, total)
	default:
		n.right = deleteNode(n.right, id, total)
	}
	fix(n)
	return n
}

// countAbove returns how many nodes have a total strictly above total.
func countAbove(n *node, total int) int {
	c := 0
	for n != nil {
		if n.total > total {
			c += 1 + nsize(n.left)
			n = n.right
		} else {
			n = n.left
		}
	}
	return c
}

// walk visits nodes in rank order until visit returns false.
func walk(n *node, visit func(*node) bool) bool {
	if n == nil {
		return true
	}
	if !walk(n.left, visit) {
		return false
	}
	if !visit(n) {
		return false
	}
	return walk(n.right, visit)
}

// board is one ranking: the treap plus each member's current total.
type board struct {
	root   *node
	totals map[string]int
}

func (b *board) set(id string, total int) {
	if old, ok := b.totals[id]; ok {
		if old == total {
			return
		}
		b.root = deleteNode(b.root, id, old)
	}
	b.totals[id] = total
	b.root = insert(b.root, id, total)
}

func (b *board) remove(id string) {
	if old, ok := b.totals[id]; ok {
		b.root = deleteNode(b.root, id, old)
		delete(b.totals, id)
	}
}

// Snapshot is an immutable view of one board's leaders.
type Snapshot struct {
	Board       types.Board   `json:"board"`
	GeneratedAt time.Time     `json:"generated_at"`
	Count       int           `json:"count"`
	Top         []types.Entry `json:"top"`
}

// TreapStore is the in-memory Store.
type TreapStore struct {
	mu               sync.RWMutex
	cards            map[string]model.Scorecard
	boards           map[types.Board]*board
	snapshotInterval time.Duration
	topCacheSize     int

	snapshots atomic.Pointer[map[types.Board]*Snapshot]

	wg       sync.WaitGroup
	stopOnce sync.Once
	stopChan chan struct{}
}

var _ Store = (*TreapStore)(nil)

// NewTreapStore creates a store and starts its snapshot loop, which ends
// with ctx or Close.
func NewTreapStore(ctx context.Context, opts ...Option) *TreapStore {
	s := &TreapStore{
		cards:            make(map[string]model.Scorecard),
		boards:           make(map[types.Board]*board, len(types.Boards)),
		snapshotInterval: time.Second,
		topCacheSize:     100,
		stopChan:         make(chan struct{}),
	}
	for _, b := range types.Boards {
		s.boards[b] = &board{totals: make(map[string]int)}
	}
	for _, opt := range opts {
		opt(s)
	}

	s.Publish()
	s.wg.Add(1)
	go s.snapshotLoop(ctx)
	return s
}

func (s *TreapStore) snapshotLoop(ctx context.Context) {
	defer s.wg.Done()
	ticker := time.NewTicker(s.snapshotInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-s.stopChan:
			return
		case <-ticker.C:
			s.Publish()
		}
	}
}

// Close stops the snapshot loop.
func (s *TreapStore) Close() error {
	s.stopOnce.Do(func() { close(s.stopChan) })
	s.wg.Wait()
	return nil
}

func boardTotal(card model.Scorecard, b types.Board) (int, bool) {
	if b == types.BoardCFT {
		return card.CFTTotal()
	}
	return card.PFTTotal()
}

func (s *TreapStore) Upsert(_ context.Context, card model.Scorecard) error {
	start := time.Now()
	defer func() {
		metrics.RecordRepositoryUpdateLatency(float64(time.Since(start).Microseconds()) / 1000)
	}()

	id := card.Marine.ID
	if id == "" {
		return ErrEmptyID
	}

	s.mu.Lock()
	if prev, ok := s.cards[id]; ok && !card.Supersedes(prev) {
		s.mu.Unlock()
		return nil
	}
	s.cards[id] = card
	for name, b := range s.boards {
		if total, ok := boardTotal(card, name); ok {
			b.set(id, total)
		} else {
			b.remove(id)
		}
	}
	n := len(s.cards)
	s.mu.Unlock()

	metrics.UpdateRosterSize(n)
	return nil
}

func (s *TreapStore) Get(_ context.Context, marineID string) (model.Scorecard, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	card, ok := s.cards[marineID]
	if !ok {
		return model.Scorecard{}, ErrNotFound
	}
	return card, nil
}

func (s *TreapStore) Remove(_ context.Context, marineID string) error {
	s.mu.Lock()
	if _, ok := s.cards[marineID]; !ok {
		s.mu.Unlock()
		return ErrNotFound
	}
	delete(s.cards, marineID)
	for _, b := range s.boards {
		b.remove(marineID)
	}
	n := len(s.cards)
	s.mu.Unlock()

	metrics.UpdateRosterSize(n)
	return nil
}

func (s *TreapStore) List(_ context.Context) []model.Scorecard {
	s.mu.RLock()
	out := make([]model.Scorecard, 0, len(s.cards))
	for _, c := range s.cards {
		out = append(out, c)
	}
	s.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool { return out[i].Marine.ID < out[j].Marine.ID })
	return out
}

func (s *TreapStore) Rank(_ context.Context, name types.Board, marineID string) (types.Entry, error) {
	start := time.Now()
	defer func() {
		metrics.RecordRepositoryQueryLatency(float64(time.Since(start).Microseconds()) / 1000)
	}()

	s.mu.RLock()
	defer s.mu.RUnlock()

	b, ok := s.boards[name]
	if !ok {
		return types.Entry{}, ErrInvalidBoard
	}
	card, ok := s.cards[marineID]
	if !ok {
		metrics.RecordErrorByComponent("repository", "not_found")
		return types.Entry{}, ErrNotFound
	}
	total, ok := b.totals[marineID]
	if !ok {
		return types.Entry{}, ErrNotRanked
	}
	return s.entry(card, name, total, countAbove(b.root, total)+1), nil
}

func (s *TreapStore) TopN(_ context.Context, name types.Board, n int) ([]types.Entry, error) {
	start := time.Now()
	defer func() {
		metrics.RecordRepositoryQueryLatency(float64(time.Since(start).Microseconds()) / 1000)
	}()

	if n < 1 {
		metrics.RecordErrorByComponent("repository", "invalid_limit")
		return nil, ErrInvalidLimit
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	b, ok := s.boards[name]
	if !ok {
		return nil, ErrInvalidBoard
	}
	return s.top(name, b, n), nil
}

// top collects up to n entries. Caller holds s.mu.
func (s *TreapStore) top(name types.Board, b *board, n int) []types.Entry {
	out := make([]types.Entry, 0, min(n, len(b.totals)))
	walk(b.root, func(nd *node) bool {
		rank := len(out) + 1
		if last := len(out) - 1; last >= 0 && out[last].Total == nd.total {
			rank = out[last].Rank
		}
		out = append(out, s.entry(s.cards[nd.id], name, nd.total, rank))
		return len(out) < n
	})
	return out
}

func (s *TreapStore) entry(card model.Scorecard, name types.Board, total, rank int) types.Entry {
	e := types.Entry{
		Rank:     rank,
		MarineID: card.Marine.ID,
		Name:     card.Marine.DisplayName(),
		Total:    total,
	}
	switch {
	case name == types.BoardPFT && card.PFT != nil:
		e.Classification = string(card.PFT.Classification)
	case name == types.BoardCFT && card.CFT != nil:
		e.Classification = string(card.CFT.Classification)
	}
	return e
}

func (s *TreapStore) Count(_ context.Context) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.cards)
}

// Publish rebuilds the snapshot of every board now.
func (s *TreapStore) Publish() {
	start := time.Now()
	s.mu.RLock()
	snaps := make(map[types.Board]*Snapshot, len(s.boards))
	for name, b := range s.boards {
		snaps[name] = &Snapshot{
			Board:       name,
			GeneratedAt: start,
			Count:       len(b.totals),
			Top:         s.top(name, b, s.topCacheSize),
		}
	}
	s.mu.RUnlock()

	s.snapshots.Store(&snaps)
	metrics.RecordSnapshot(float64(time.Since(start).Microseconds())/1000, start.Unix())
}

// Snapshot returns the latest published snapshot of a board, or nil.
func (s *TreapStore) Snapshot(name types.Board) *Snapshot {
	snaps := s.snapshots.Load()
	if snaps == nil {
		return nil
	}
	return (*snaps)[name]
}
