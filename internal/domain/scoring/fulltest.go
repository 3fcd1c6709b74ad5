package scoring

import (
	"fmt"

	"github.com/okian/proctor/internal/domain/tables"
)

// EventScore is the scored line for one event.
type EventScore struct {
	Event  tables.Event `json:"event"`
	Label  string       `json:"label"`
	Raw    int          `json:"raw"`
	Points int          `json:"points"`
}

// Selection carries the caller's event choices and raw results for a PFT.
// Eligibility for the row is the caller's policy; the calculator only
// requires that a table entry exists.
type Selection struct {
	Upper         tables.Event // PullUps or PushUps
	UpperReps     int
	PlankSeconds  int
	Cardio        tables.Event // Run or Row
	CardioSeconds int
}

// CombatSelection carries the raw results for a CFT.
type CombatSelection struct {
	MTCSeconds      int
	AmmoLiftReps    int
	ManeuverSeconds int
}

// TestOptions holds conditions that apply to the whole test.
type TestOptions struct {
	Altitude bool
}

// Result is a scored PFT.
type Result struct {
	Gender         tables.Gender     `json:"gender"`
	AgeBracket     tables.AgeBracket `json:"age_bracket"`
	Altitude       bool              `json:"altitude"`
	UpperBody      EventScore        `json:"upper_body"`
	Core           EventScore        `json:"core"`
	Cardio         EventScore        `json:"cardio"`
	TotalPoints    int               `json:"total_points"`
	Classification Classification    `json:"classification"`
	Grade          string            `json:"grade"`
	PassedMinimums bool              `json:"passed_minimums"`
	FailedEvents   []tables.Event    `json:"failed_events"`
}

// CombatResult is a scored CFT.
type CombatResult struct {
	Gender         tables.Gender     `json:"gender"`
	AgeBracket     tables.AgeBracket `json:"age_bracket"`
	Altitude       bool              `json:"altitude"`
	MTC            EventScore        `json:"mtc"`
	AmmoLift       EventScore        `json:"ammo_lift"`
	Maneuver       EventScore        `json:"maneuver"`
	TotalPoints    int               `json:"total_points"`
	Classification Classification    `json:"classification"`
	Grade          string            `json:"grade"`
	PassedMinimums bool              `json:"passed_minimums"`
	Passed         bool              `json:"passed"`
	FailedEvents   []tables.Event    `json:"failed_events"`
}

// ComputeFullTest scores the three PFT events, classifies the total, and
// forces Fail when any event is below the minimum event score.
func (c *Calculator) ComputeFullTest(g tables.Gender, age int, sel Selection, opts TestOptions) (Result, error) {
	if sel.Upper != tables.PullUps && sel.Upper != tables.PushUps {
		return Result{}, fmt.Errorf("%w: upper body event %q", ErrInvalidSelection, sel.Upper)
	}
	if sel.Cardio != tables.Run && sel.Cardio != tables.Row {
		return Result{}, fmt.Errorf("%w: cardio event %q", ErrInvalidSelection, sel.Cardio)
	}

	bracket := tables.AgeBracketFor(age)
	events := [3]struct {
		ev  tables.Event
		raw int
	}{
		{sel.Upper, sel.UpperReps},
		{tables.Plank, sel.PlankSeconds},
		{sel.Cardio, sel.CardioSeconds},
	}

	var scored [3]EventScore
	for i, e := range events {
		pts, err := c.Score(e.ev, g, bracket, e.raw, opts.Altitude)
		if err != nil {
			return Result{}, fmt.Errorf("score %s: %w", e.ev, err)
		}
		scored[i] = EventScore{Event: e.ev, Label: e.ev.Label(), Raw: e.raw, Points: pts}
	}

	total, class, failed := c.summarize(scored[:])
	return Result{
		Gender:         g,
		AgeBracket:     bracket,
		Altitude:       opts.Altitude,
		UpperBody:      scored[0],
		Core:           scored[1],
		Cardio:         scored[2],
		TotalPoints:    total,
		Classification: class,
		Grade:          class.Grade(),
		PassedMinimums: len(failed) == 0,
		FailedEvents:   failed,
	}, nil
}

// ComputeCombatTest scores the three CFT events with the same minimum-event
// override as the PFT. Passed additionally requires the third-class total.
func (c *Calculator) ComputeCombatTest(g tables.Gender, age int, sel CombatSelection, opts TestOptions) (CombatResult, error) {
	bracket := tables.AgeBracketFor(age)
	events := [3]struct {
		ev  tables.Event
		raw int
	}{
		{tables.MovementToContact, sel.MTCSeconds},
		{tables.AmmoLift, sel.AmmoLiftReps},
		{tables.ManeuverUnderFire, sel.ManeuverSeconds},
	}

	var scored [3]EventScore
	for i, e := range events {
		pts, err := c.Score(e.ev, g, bracket, e.raw, opts.Altitude)
		if err != nil {
			return CombatResult{}, fmt.Errorf("score %s: %w", e.ev, err)
		}
		scored[i] = EventScore{Event: e.ev, Label: e.ev.Label(), Raw: e.raw, Points: pts}
	}

	total, class, failed := c.summarize(scored[:])
	minimums := len(failed) == 0
	return CombatResult{
		Gender:         g,
		AgeBracket:     bracket,
		Altitude:       opts.Altitude,
		MTC:            scored[0],
		AmmoLift:       scored[1],
		Maneuver:       scored[2],
		TotalPoints:    total,
		Classification: class,
		Grade:          class.Grade(),
		PassedMinimums: minimums,
		Passed:         minimums && total >= c.tables.Thresholds().ThirdClass,
		FailedEvents:   failed,
	}, nil
}

// summarize totals the events and applies the minimum-event override.
func (c *Calculator) summarize(scored []EventScore) (int, Classification, []tables.Event) {
	th := c.tables.Thresholds()
	total := 0
	failed := make([]tables.Event, 0, len(scored))
	for _, s := range scored {
		total += s.Points
		if s.Points < th.MinEventScore {
			failed = append(failed, s.Event)
		}
	}
	class := Classify(total, th)
	if len(failed) > 0 {
		class = Fail
	}
	return total, class, failed
}
