// Package scoring maps raw fitness-test performances to points and
// classifications. Every function here is pure: results depend only on the
// arguments and the read-only tables, so a Calculator may be shared freely.
package scoring

import (
	"math"

	"github.com/okian/proctor/internal/domain/tables"
)

// ScoreEvent scores value against s.
//
// Reps: value >= Max caps at MaxPts, value < Min is 0, otherwise the points
// are interpolated from (Min, MinPts) to (Max, MaxPts).
// Time: value <= Min caps at MaxPts, value > Max is 0, otherwise the points
// are interpolated from (Max, MinPts) to (Min, MaxPts).
// The interpolated value is rounded half away from zero exactly once.
func ScoreEvent(value int, s tables.Standard, d tables.Direction) int {
	span := float64(s.Max - s.Min)
	ptsSpan := float64(s.MaxPts - s.MinPts)

	if d == tables.Time {
		switch {
		case value <= s.Min:
			return s.MaxPts
		case value > s.Max:
			return 0
		}
		pos := float64(value-s.Min) / span
		return int(math.Round(float64(s.MaxPts) - pos*ptsSpan))
	}

	switch {
	case value >= s.Max:
		return s.MaxPts
	case value < s.Min:
		return 0
	}
	pos := float64(value-s.Min) / span
	return int(math.Round(float64(s.MinPts) + pos*ptsSpan))
}

// ScorePlank walks a descending breakpoint curve. At or above the first
// breakpoint the cap is returned; between two breakpoints the points are
// interpolated; below the lowest non-zero breakpoint the result is 0.
func ScorePlank(seconds int, curve []tables.Breakpoint) int {
	if len(curve) == 0 {
		return 0
	}
	if seconds >= curve[0].Seconds {
		return curve[0].Points
	}
	for i := 1; i < len(curve); i++ {
		hi, lo := curve[i-1], curve[i]
		if lo.Points == 0 {
			break
		}
		if seconds < lo.Seconds {
			continue
		}
		pos := float64(seconds-lo.Seconds) / float64(hi.Seconds-lo.Seconds)
		return int(math.Round(float64(lo.Points) + pos*float64(hi.Points-lo.Points)))
	}
	return 0
}

// Option applies a configuration option to the Calculator.
type Option func(*Calculator)

// WithTables replaces the pinned data set, mainly for tests.
func WithTables(t *tables.Tables) Option {
	return func(c *Calculator) {
		if t != nil {
			c.tables = t
		}
	}
}

// Calculator binds the scoring primitives to a data set.
type Calculator struct {
	tables *tables.Tables
}

// NewCalculator creates a calculator over the default tables.
func NewCalculator(opts ...Option) *Calculator {
	c := &Calculator{tables: tables.Default()}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Tables exposes the data set the calculator scores against.
func (c *Calculator) Tables() *tables.Tables { return c.tables }

// Score looks up the standard for ev and scores value. Timed events are
// shifted by the altitude offsets when altitude is set.
func (c *Calculator) Score(ev tables.Event, g tables.Gender, b tables.AgeBracket, value int, altitude bool) (int, error) {
	if ev == tables.Plank {
		return c.ScorePlank(value), nil
	}
	s, err := c.tables.Lookup(ev, g, b)
	if err != nil {
		return 0, err
	}
	d := ev.Direction()
	if altitude && d == tables.Time {
		s = c.tables.Altitude().Adjust(s)
	}
	return ScoreEvent(value, s, d), nil
}

// ScorePlank scores a plank hold against the calculator's curve.
func (c *Calculator) ScorePlank(seconds int) int {
	return ScorePlank(seconds, c.tables.PlankCurve())
}
