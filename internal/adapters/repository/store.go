// Package repository stores scored roster cards and ranks them per test.
package repository

import (
	"context"

	"github.com/okian/proctor/internal/domain/model"
	"github.com/okian/proctor/internal/domain/types"
)

// Store provides read/write access to the roster and its rankings.
type Store interface {
	// Upsert stores card under its Marine id, replacing any earlier card
	// and moving the Marine on every board. A card submitted before the
	// stored one is dropped.
	Upsert(ctx context.Context, card model.Scorecard) error

	// Get returns the card for a Marine or ErrNotFound.
	Get(ctx context.Context, marineID string) (model.Scorecard, error)

	// Remove drops a Marine from the roster and every board.
	Remove(ctx context.Context, marineID string) error

	// List returns every card ordered by Marine id.
	List(ctx context.Context) []model.Scorecard

	// Rank returns the Marine's line on board. Ties share a rank.
	Rank(ctx context.Context, board types.Board, marineID string) (types.Entry, error)

	// TopN returns up to n lines of board ordered total DESC then id ASC.
	TopN(ctx context.Context, board types.Board, n int) ([]types.Entry, error)

	// Count returns the number of Marines on the roster.
	Count(ctx context.Context) int
}
