// Package tables holds the pinned scoring data used by the calculators:
// event standards keyed by gender and age bracket, the plank breakpoint
// curve, classification thresholds, and the body-composition limits.
//
// All data is read-only after package initialization and safe to share
// between any number of goroutines.
package tables

import (
	"fmt"
	"strings"
)

// Revision names the order the data set was transcribed from.
const Revision = "MCO 6100.13A w/CH-4 (2022-03-23); MCO 6110.3A w/CH-4"

// Gender selects a disjoint sub-table for every scored event.
type Gender string

const (
	Male   Gender = "male"
	Female Gender = "female"
)

// ParseGender normalizes s and returns the matching Gender.
func ParseGender(s string) (Gender, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "male", "m":
		return Male, nil
	case "female", "f":
		return Female, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidGender, s)
	}
}

// Valid reports whether g is one of the two tabulated genders.
func (g Gender) Valid() bool { return g == Male || g == Female }

// AgeBracket is one of the eight fitness-event age ranges.
type AgeBracket string

const (
	Age17To20 AgeBracket = "17-20"
	Age21To25 AgeBracket = "21-25"
	Age26To30 AgeBracket = "26-30"
	Age31To35 AgeBracket = "31-35"
	Age36To40 AgeBracket = "36-40"
	Age41To45 AgeBracket = "41-45"
	Age46To50 AgeBracket = "46-50"
	Age51Plus AgeBracket = "51+"
)

// AgeBrackets lists the fitness brackets in ascending order.
var AgeBrackets = []AgeBracket{
	Age17To20, Age21To25, Age26To30, Age31To35,
	Age36To40, Age41To45, Age46To50, Age51Plus,
}

// AgeBracketFor maps an age onto its fitness bracket. Ages below 17 fall
// into the youngest bracket so the mapping is total.
func AgeBracketFor(age int) AgeBracket {
	switch {
	case age <= 20:
		return Age17To20
	case age <= 25:
		return Age21To25
	case age <= 30:
		return Age26To30
	case age <= 35:
		return Age31To35
	case age <= 40:
		return Age36To40
	case age <= 45:
		return Age41To45
	case age <= 50:
		return Age46To50
	default:
		return Age51Plus
	}
}

// WeightAgeBracket is the coarser age grouping used only by the
// height/weight standards. Its boundaries differ from AgeBracket.
type WeightAgeBracket string

const (
	WeightAge17To20 WeightAgeBracket = "17-20"
	WeightAge21To27 WeightAgeBracket = "21-27"
	WeightAge28To39 WeightAgeBracket = "28-39"
	WeightAge40Plus WeightAgeBracket = "40+"
)

// WeightAgeBracketFor maps an age onto its weight-standard bracket.
func WeightAgeBracketFor(age int) WeightAgeBracket {
	switch {
	case age <= 20:
		return WeightAge17To20
	case age <= 27:
		return WeightAge21To27
	case age <= 39:
		return WeightAge28To39
	default:
		return WeightAge40Plus
	}
}

// Event identifies a scored event.
type Event string

const (
	PullUps           Event = "pullups"
	PushUps           Event = "pushups"
	Plank             Event = "plank"
	Run               Event = "run"
	Row               Event = "row"
	MovementToContact Event = "mtc"
	AmmoLift          Event = "ammo_lift"
	ManeuverUnderFire Event = "manuf"
)

var eventLabels = map[Event]string{
	PullUps:           "Pull-ups",
	PushUps:           "Push-ups",
	Plank:             "Plank",
	Run:               "3-Mile Run",
	Row:               "5k Row",
	MovementToContact: "Movement to Contact",
	AmmoLift:          "Ammunition Lift",
	ManeuverUnderFire: "Maneuver Under Fire",
}

// Label returns the display name printed on score sheets.
func (e Event) Label() string {
	if l, ok := eventLabels[e]; ok {
		return l
	}
	return string(e)
}

// Direction tells whether a larger raw value is a better performance.
type Direction int

const (
	// Reps: higher is better.
	Reps Direction = iota
	// Time: lower is better.
	Time
)

func (d Direction) String() string {
	if d == Time {
		return "time"
	}
	return "reps"
}

// Direction returns how the event's raw value is compared.
func (e Event) Direction() Direction {
	switch e {
	case Run, Row, MovementToContact, ManeuverUnderFire:
		return Time
	default:
		return Reps
	}
}

// Standard is the scoring quadruple for one (event, gender, bracket).
//
// For rep events Min is the fewest passing reps and Max the reps that earn
// MaxPts. For timed events Min is the fastest (best) time and Max the slowest
// passing time, both in seconds.
type Standard struct {
	Min    int `json:"min"`
	Max    int `json:"max"`
	MinPts int `json:"min_pts"`
	MaxPts int `json:"max_pts"`
}

// AltitudeAdjustment holds the seconds added to timed thresholds when a test
// is run at altitude.
type AltitudeAdjustment struct {
	Best  int // added to the fastest-time threshold
	Worst int // added to the slowest-passing threshold
}

// Adjust returns s shifted for altitude.
func (a AltitudeAdjustment) Adjust(s Standard) Standard {
	s.Min += a.Best
	s.Max += a.Worst
	return s
}

// Breakpoint is one step of the plank curve.
type Breakpoint struct {
	Seconds int
	Points  int
}

// Thresholds are the combined-point cut lines and the per-event floor.
type Thresholds struct {
	FirstClass    int
	SecondClass   int
	ThirdClass    int
	MinEventScore int
}

type eventTable map[Gender]map[AgeBracket]Standard

// Tables is an immutable data set. Use Default for the pinned revision.
type Tables struct {
	revision      string
	events        map[Event]eventTable
	plank         []Breakpoint
	thresholds    Thresholds
	altitude      AltitudeAdjustment
	weight        map[Gender]map[int]map[WeightAgeBracket]int
	bodyFatLimits map[Gender]int
	minHeight     int
	maxHeight     int
}

var defaultTables = build()

// Default returns the shared pinned data set.
func Default() *Tables { return defaultTables }

func build() *Tables {
	t := &Tables{
		revision: Revision,
		events: map[Event]eventTable{
			PullUps:           pullUps,
			PushUps:           pushUps,
			Run:               run3Mile,
			Row:               row5K,
			MovementToContact: movementToContact,
			AmmoLift:          ammoLift,
			ManeuverUnderFire: maneuverUnderFire,
		},
		plank: plankCurve,
		thresholds: Thresholds{
			FirstClass:    235,
			SecondClass:   200,
			ThirdClass:    150,
			MinEventScore: 40,
		},
		altitude:      AltitudeAdjustment{Best: 30, Worst: 60},
		weight:        weightStandards,
		bodyFatLimits: map[Gender]int{Male: 18, Female: 26},
	}
	t.minHeight, t.maxHeight = heightRange(weightStandards[Male])
	return t
}

func heightRange(rows map[int]map[WeightAgeBracket]int) (lo, hi int) {
	first := true
	for h := range rows {
		if first || h < lo {
			lo = h
		}
		if first || h > hi {
			hi = h
		}
		first = false
	}
	return lo, hi
}

// Revision returns the source revision the data was taken from.
func (t *Tables) Revision() string { return t.revision }

// Lookup returns the standard for ev at gender g and bracket b.
func (t *Tables) Lookup(ev Event, g Gender, b AgeBracket) (Standard, error) {
	if !g.Valid() {
		return Standard{}, fmt.Errorf("%w: %w: %q", ErrMissingEntry, ErrInvalidGender, string(g))
	}
	tbl, ok := t.events[ev]
	if !ok {
		return Standard{}, fmt.Errorf("%w: event %s", ErrMissingEntry, ev)
	}
	s, ok := tbl[g][b]
	if !ok {
		return Standard{}, fmt.Errorf("%w: %s/%s/%s", ErrMissingEntry, ev, g, b)
	}
	return s, nil
}

// Has reports whether ev is tabulated for g and b. The 5k row exists only
// for the two oldest brackets.
func (t *Tables) Has(ev Event, g Gender, b AgeBracket) bool {
	_, err := t.Lookup(ev, g, b)
	return err == nil
}

// PlankCurve returns a copy of the plank breakpoints, descending by time.
func (t *Tables) PlankCurve() []Breakpoint {
	out := make([]Breakpoint, len(t.plank))
	copy(out, t.plank)
	return out
}

// Thresholds returns the classification cut lines.
func (t *Tables) Thresholds() Thresholds { return t.thresholds }

// Altitude returns the altitude offsets for timed events.
func (t *Tables) Altitude() AltitudeAdjustment { return t.altitude }

// MaxWeight returns the maximum allowed weight in pounds for a whole-inch
// height. ok is false when the height is outside the tabulated range.
func (t *Tables) MaxWeight(g Gender, heightInches int, b WeightAgeBracket) (lbs int, ok bool) {
	row, ok := t.weight[g][heightInches]
	if !ok {
		return 0, false
	}
	lbs, ok = row[b]
	return lbs, ok
}

// HeightRange returns the shortest and tallest tabulated heights in inches.
func (t *Tables) HeightRange() (minInches, maxInches int) {
	return t.minHeight, t.maxHeight
}

// BodyFatLimit returns the maximum allowed body-fat percent for g.
func (t *Tables) BodyFatLimit(g Gender) (int, error) {
	limit, ok := t.bodyFatLimits[g]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrInvalidGender, string(g))
	}
	return limit, nil
}
