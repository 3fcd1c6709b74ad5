package repository

import (
	"context"
	"fmt"
	"math/rand/v2"
	"testing"

	"github.com/okian/proctor/internal/domain/types"
)

const benchRoster = 100_000

func populated(b *testing.B) *TreapStore {
	b.Helper()
	ctx := context.Background()
	store := NewTreapStore(ctx)
	b.Cleanup(func() { _ = store.Close() })
	for i := range benchRoster {
		_ = store.Upsert(ctx, card(fmt.Sprintf("m%d", i), rand.IntN(301), rand.IntN(301)))
	}
	return store
}

// Mixed load: 40% upserts, 30% rank lookups, 20% TopN, 10% counts.
func BenchmarkTreapStore_MixedLoad(b *testing.B) {
	ctx := context.Background()
	store := populated(b)

	b.ResetTimer()
	b.ReportAllocs()
	b.RunParallel(func(pb *testing.PB) {
		i := 0
		for pb.Next() {
			id := fmt.Sprintf("m%d", i%benchRoster)
			board := types.Boards[i%len(types.Boards)]
			switch op := i % 10; {
			case op < 4:
				_ = store.Upsert(ctx, card(id, rand.IntN(301), rand.IntN(301)))
			case op < 7:
				_, _ = store.Rank(ctx, board, id)
			case op < 9:
				_, _ = store.TopN(ctx, board, 10+i%100)
			default:
				store.Count(ctx)
			}
			i++
		}
	})
}

func BenchmarkTreapStore_TopN(b *testing.B) {
	ctx := context.Background()
	store := populated(b)

	b.ResetTimer()
	b.ReportAllocs()
	for i := range b.N {
		_, _ = store.TopN(ctx, types.BoardPFT, 10+i%100)
	}
}

func BenchmarkTreapStore_Upsert(b *testing.B) {
	ctx := context.Background()
	store := populated(b)

	b.ResetTimer()
	b.ReportAllocs()
	for i := range b.N {
		_ = store.Upsert(ctx, card(fmt.Sprintf("m%d", i%benchRoster), i%301, -1))
	}
}
