package simulate

import (
	"fmt"

	"github.com/okian/proctor/internal/domain/types"
)

// VerifyLeaderboard checks that a leaderboard read from rank 1 is ordered
// by total, then marine id, and uses competition ranking: equal totals
// share a rank and the next distinct total skips the shared positions.
func VerifyLeaderboard(entries []types.Entry) error {
	for i, e := range entries {
		if i == 0 {
			if e.Rank != 1 {
				return fmt.Errorf("first entry %s has rank %d", e.MarineID, e.Rank)
			}
			continue
		}
		prev := entries[i-1]
		switch {
		case e.Total > prev.Total:
			return fmt.Errorf("entry %d (%s, %d) outranks entry %d (%s, %d)", i, e.MarineID, e.Total, i-1, prev.MarineID, prev.Total)
		case e.Total == prev.Total:
			if e.Rank != prev.Rank {
				return fmt.Errorf("tied entries %s and %s have ranks %d and %d", prev.MarineID, e.MarineID, prev.Rank, e.Rank)
			}
			if e.MarineID < prev.MarineID {
				return fmt.Errorf("tied entries %s and %s are out of id order", prev.MarineID, e.MarineID)
			}
		default:
			if e.Rank != i+1 {
				return fmt.Errorf("entry %s at position %d has rank %d", e.MarineID, i+1, e.Rank)
			}
		}
	}
	return nil
}
