// Package bodycomp checks height/weight standards and, when those are
// exceeded, estimates body fat from tape measurements.
package bodycomp

import (
	"fmt"
	"math"

	"github.com/okian/proctor/internal/domain/tables"
)

// Input is one body-composition measurement record. Hips is only read
// for females.
type Input struct {
	Gender  string  `json:"gender" yaml:"gender"`
	Age     int     `json:"age" yaml:"age"`
	Height  float64 `json:"height_inches" yaml:"height_inches"`
	Weight  float64 `json:"weight_lbs" yaml:"weight_lbs"`
	Neck    float64 `json:"neck_inches,omitempty" yaml:"neck_inches,omitempty"`
	Abdomen float64 `json:"abdomen_inches,omitempty" yaml:"abdomen_inches,omitempty"`
	Hips    float64 `json:"hips_inches,omitempty" yaml:"hips_inches,omitempty"`
}

// WeightCheck is the outcome of the height/weight screen.
type WeightCheck struct {
	Height         int                     `json:"height_inches"`
	Bracket        tables.WeightAgeBracket `json:"bracket"`
	MaxWeight      int                     `json:"max_weight"`
	ActualWeight   float64                 `json:"actual_weight"`
	OverBy         float64                 `json:"over_by"`
	WithinStandard bool                    `json:"within_standard"`
	RequiresTape   bool                    `json:"requires_tape"`
}

// Measurements are the tape values after regulatory rounding.
type Measurements struct {
	Neck    float64 `json:"neck"`
	Abdomen float64 `json:"abdomen"`
	Hips    float64 `json:"hips"`
}

// BodyFatCheck is the outcome of the tape test.
type BodyFatCheck struct {
	CircumferenceValue float64      `json:"circumference_value"`
	BodyFatPercent     int          `json:"body_fat_percent"`
	MaxAllowed         int          `json:"max_allowed"`
	OverBy             int          `json:"over_by"`
	WithinStandard     bool         `json:"within_standard"`
	Measurements       Measurements `json:"measurements"`
}

// Assessment combines both checks. BodyFat is nil when no tape was needed.
type Assessment struct {
	Weight       WeightCheck   `json:"weight_check"`
	RequiresTape bool          `json:"requires_tape"`
	BodyFat      *BodyFatCheck `json:"body_fat_check"`
	Passed       bool          `json:"passed"`
	Message      string        `json:"message"`
}

// Option applies a configuration option to the Assessor.
type Option func(*Assessor)

// WithTables replaces the data set the assessor reads.
func WithTables(t *tables.Tables) Option {
	return func(a *Assessor) {
		if t != nil {
			a.tables = t
		}
	}
}

// Assessor evaluates body composition against a data set.
type Assessor struct {
	tables *tables.Tables
}

// NewAssessor creates an assessor over the default tables.
func NewAssessor(opts ...Option) *Assessor {
	a := &Assessor{tables: tables.Default()}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// CheckWeightStandard rounds height to the nearest inch and compares weight
// with the maximum for the weight-age bracket.
func (a *Assessor) CheckWeightStandard(g tables.Gender, age int, heightInches, weight float64) (WeightCheck, error) {
	if !g.Valid() {
		return WeightCheck{}, fmt.Errorf("%w: %q", tables.ErrInvalidGender, string(g))
	}
	height := int(math.Round(heightInches))
	bracket := tables.WeightAgeBracketFor(age)
	maxWeight, ok := a.tables.MaxWeight(g, height, bracket)
	if !ok {
		lo, hi := a.tables.HeightRange()
		return WeightCheck{}, &HeightError{Height: height, Min: lo, Max: hi}
	}

	over := weight > float64(maxWeight)
	wc := WeightCheck{
		Height:         height,
		Bracket:        bracket,
		MaxWeight:      maxWeight,
		ActualWeight:   weight,
		WithinStandard: !over,
		RequiresTape:   over,
	}
	if over {
		wc.OverBy = weight - float64(maxWeight)
	}
	return wc, nil
}

// CalculateBodyFat applies the circumference formula for g. Neck is rounded
// up and abdomen and hips are rounded down to the nearest half inch.
func (a *Assessor) CalculateBodyFat(g tables.Gender, heightInches, neck, abdomen, hips float64) (BodyFatCheck, error) {
	limit, err := a.tables.BodyFatLimit(g)
	if err != nil {
		return BodyFatCheck{}, err
	}
	if heightInches <= 0 {
		return BodyFatCheck{}, fmt.Errorf("%w: height must be positive", ErrInvalidMeasurement)
	}
	switch {
	case neck <= 0:
		return BodyFatCheck{}, fmt.Errorf("%w: neck measurement is required", ErrInvalidMeasurement)
	case abdomen <= 0:
		return BodyFatCheck{}, fmt.Errorf("%w: abdomen measurement is required", ErrInvalidMeasurement)
	case g == tables.Female && hips <= 0:
		return BodyFatCheck{}, fmt.Errorf("%w: hips measurement is required for females", ErrInvalidMeasurement)
	}

	m := Measurements{
		Neck:    RoundUpHalf(neck),
		Abdomen: RoundDownHalf(abdomen),
	}
	var cv, pct float64
	switch g {
	case tables.Male:
		cv = m.Abdomen - m.Neck
		if cv <= 0 {
			return BodyFatCheck{}, fmt.Errorf("%w: abdomen must exceed neck", ErrInvalidMeasurement)
		}
		pct = 86.010*math.Log10(cv) - 70.041*math.Log10(heightInches) + 36.76
	default:
		m.Hips = RoundDownHalf(hips)
		cv = m.Abdomen + m.Hips - m.Neck
		if cv <= 0 {
			return BodyFatCheck{}, fmt.Errorf("%w: abdomen plus hips must exceed neck", ErrInvalidMeasurement)
		}
		pct = 163.205*math.Log10(cv) - 97.684*math.Log10(heightInches) - 78.387
	}

	bf := int(math.Round(pct))
	if bf < 0 {
		bf = 0
	}
	check := BodyFatCheck{
		CircumferenceValue: cv,
		BodyFatPercent:     bf,
		MaxAllowed:         limit,
		WithinStandard:     bf <= limit,
		Measurements:       m,
	}
	if !check.WithinStandard {
		check.OverBy = bf - limit
	}
	return check, nil
}

// Assess screens weight first and only runs the tape test when the weight
// standard is exceeded. The tape result then decides alone.
func (a *Assessor) Assess(in Input) (Assessment, error) {
	g, err := tables.ParseGender(in.Gender)
	if err != nil {
		return Assessment{}, err
	}
	wc, err := a.CheckWeightStandard(g, in.Age, in.Height, in.Weight)
	if err != nil {
		return Assessment{}, err
	}
	if wc.WithinStandard {
		return Assessment{
			Weight:  wc,
			Passed:  true,
			Message: "Within height/weight standards",
		}, nil
	}

	bf, err := a.CalculateBodyFat(g, in.Height, in.Neck, in.Abdomen, in.Hips)
	if err != nil {
		return Assessment{}, err
	}
	res := Assessment{
		Weight:       wc,
		RequiresTape: true,
		BodyFat:      &bf,
		Passed:       bf.WithinStandard,
	}
	if bf.WithinStandard {
		res.Message = fmt.Sprintf("Over weight standard but within body fat limit (%d%%)", bf.BodyFatPercent)
	} else {
		res.Message = fmt.Sprintf("Exceeds body fat standard: %d%% (max %d%%)", bf.BodyFatPercent, bf.MaxAllowed)
	}
	return res, nil
}

// RoundUpHalf rounds v up to the nearest half inch.
func RoundUpHalf(v float64) float64 { return math.Ceil(v*2) / 2 }

// RoundDownHalf rounds v down to the nearest half inch.
func RoundDownHalf(v float64) float64 { return math.Floor(v*2) / 2 }
