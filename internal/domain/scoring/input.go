package scoring

import (
	"fmt"
	"strings"

	"github.com/okian/proctor/internal/domain/tables"
)

// Input is the per-individual record handed over by form front-ends.
// Exactly one of PullUps/PushUps and exactly one of RunSeconds/RowSeconds
// (matching CardioEvent) must be set for a PFT.
type Input struct {
	Gender          string `json:"gender" yaml:"gender"`
	Age             int    `json:"age" yaml:"age"`
	PullUps         *int   `json:"pull_ups,omitempty" yaml:"pull_ups,omitempty"`
	PushUps         *int   `json:"push_ups,omitempty" yaml:"push_ups,omitempty"`
	PlankSeconds    int    `json:"plank_seconds" yaml:"plank_seconds"`
	CardioEvent     string `json:"cardio_event" yaml:"cardio_event"`
	RunSeconds      *int   `json:"run_seconds,omitempty" yaml:"run_seconds,omitempty"`
	RowSeconds      *int   `json:"row_seconds,omitempty" yaml:"row_seconds,omitempty"`
	Altitude        bool   `json:"is_altitude" yaml:"is_altitude"`
	MTCSeconds      int    `json:"mtc_seconds" yaml:"mtc_seconds"`
	AmmoLiftReps    int    `json:"ammo_lift_reps" yaml:"ammo_lift_reps"`
	ManeuverSeconds int    `json:"maneuver_seconds" yaml:"maneuver_seconds"`
}

// Selection validates the PFT fields of in and converts them.
func (in Input) Selection() (Selection, error) {
	var sel Selection
	switch {
	case in.PullUps != nil && in.PushUps != nil:
		return sel, fmt.Errorf("%w: pull-ups and push-ups are mutually exclusive", ErrInvalidSelection)
	case in.PullUps != nil:
		sel.Upper, sel.UpperReps = tables.PullUps, *in.PullUps
	case in.PushUps != nil:
		sel.Upper, sel.UpperReps = tables.PushUps, *in.PushUps
	default:
		return sel, fmt.Errorf("%w: one of pull-ups or push-ups is required", ErrInvalidSelection)
	}

	cardio := strings.ToLower(strings.TrimSpace(in.CardioEvent))
	if cardio == "" {
		cardio = string(tables.Run)
	}
	switch tables.Event(cardio) {
	case tables.Run:
		if in.RowSeconds != nil {
			return sel, fmt.Errorf("%w: row time given for a run", ErrInvalidSelection)
		}
		if in.RunSeconds == nil {
			return sel, fmt.Errorf("%w: run time is required", ErrInvalidSelection)
		}
		sel.Cardio, sel.CardioSeconds = tables.Run, *in.RunSeconds
	case tables.Row:
		if in.RunSeconds != nil {
			return sel, fmt.Errorf("%w: run time given for a row", ErrInvalidSelection)
		}
		if in.RowSeconds == nil {
			return sel, fmt.Errorf("%w: row time is required", ErrInvalidSelection)
		}
		sel.Cardio, sel.CardioSeconds = tables.Row, *in.RowSeconds
	default:
		return sel, fmt.Errorf("%w: cardio event %q", ErrInvalidSelection, in.CardioEvent)
	}

	switch {
	case sel.UpperReps < 0:
		return sel, fmt.Errorf("%w: negative repetitions", ErrInvalidInput)
	case in.PlankSeconds < 0:
		return sel, fmt.Errorf("%w: negative plank time", ErrInvalidInput)
	case sel.CardioSeconds <= 0:
		return sel, fmt.Errorf("%w: %s time must be positive", ErrInvalidInput, sel.Cardio.Label())
	}
	sel.PlankSeconds = in.PlankSeconds
	return sel, nil
}

// CombatSelection validates the CFT fields of in and converts them.
func (in Input) CombatSelection() (CombatSelection, error) {
	switch {
	case in.MTCSeconds <= 0:
		return CombatSelection{}, fmt.Errorf("%w: movement to contact time must be positive", ErrInvalidInput)
	case in.ManeuverSeconds <= 0:
		return CombatSelection{}, fmt.Errorf("%w: maneuver under fire time must be positive", ErrInvalidInput)
	case in.AmmoLiftReps < 0:
		return CombatSelection{}, fmt.Errorf("%w: negative ammunition lifts", ErrInvalidInput)
	}
	return CombatSelection{
		MTCSeconds:      in.MTCSeconds,
		AmmoLiftReps:    in.AmmoLiftReps,
		ManeuverSeconds: in.ManeuverSeconds,
	}, nil
}

// ScorePFT validates in and computes its full test.
func (c *Calculator) ScorePFT(in Input) (Result, error) {
	g, err := tables.ParseGender(in.Gender)
	if err != nil {
		return Result{}, err
	}
	sel, err := in.Selection()
	if err != nil {
		return Result{}, err
	}
	return c.ComputeFullTest(g, in.Age, sel, TestOptions{Altitude: in.Altitude})
}

// ScoreCFT validates in and computes its combat test.
func (c *Calculator) ScoreCFT(in Input) (CombatResult, error) {
	g, err := tables.ParseGender(in.Gender)
	if err != nil {
		return CombatResult{}, err
	}
	sel, err := in.CombatSelection()
	if err != nil {
		return CombatResult{}, err
	}
	return c.ComputeCombatTest(g, in.Age, sel, TestOptions{Altitude: in.Altitude})
}
