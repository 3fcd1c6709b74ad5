// Package model contains the roster records passed between layers.
package model

import (
	"fmt"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/okian/proctor/internal/domain/bodycomp"
	"github.com/okian/proctor/internal/domain/scoring"
	"github.com/okian/proctor/internal/domain/tables"
)

// MinAge is the youngest age accepted on a roster.
const MinAge = 17

// Marine identifies the person being tested.
type Marine struct {
	ID            string `json:"id" yaml:"id"`
	Rank          string `json:"rank" yaml:"rank"`
	LastName      string `json:"last_name" yaml:"last_name"`
	FirstName     string `json:"first_name" yaml:"first_name"`
	MiddleInitial string `json:"middle_initial,omitempty" yaml:"middle_initial,omitempty"`
	EDIPI         string `json:"edipi,omitempty" yaml:"edipi,omitempty"`
	DOB           string `json:"dob,omitempty" yaml:"dob,omitempty"` // YYYY-MM-DD
	Gender        string `json:"gender" yaml:"gender"`
	Age           int    `json:"age" yaml:"age"`
}

// DisplayName renders "Rank Last, First M.".
func (m Marine) DisplayName() string {
	var b strings.Builder
	if m.Rank != "" {
		b.WriteString(m.Rank)
		b.WriteByte(' ')
	}
	b.WriteString(m.LastName)
	b.WriteString(", ")
	b.WriteString(m.FirstName)
	if m.MiddleInitial != "" {
		b.WriteByte(' ')
		r, _ := utf8.DecodeRuneInString(m.MiddleInitial)
		b.WriteRune(unicode.ToUpper(r))
		b.WriteByte('.')
	}
	return b.String()
}

// Normalize trims names and fills Age from DOB when Age is unset.
func (m *Marine) Normalize(now time.Time) error {
	m.LastName = strings.TrimSpace(m.LastName)
	m.FirstName = strings.TrimSpace(m.FirstName)
	m.MiddleInitial = strings.TrimSpace(m.MiddleInitial)
	if m.Age == 0 && m.DOB != "" {
		dob, err := time.Parse(time.DateOnly, m.DOB)
		if err != nil {
			return fmt.Errorf("%w: dob %q", ErrInvalidMarine, m.DOB)
		}
		m.Age = AgeOn(dob, now)
	}
	if g, err := tables.ParseGender(m.Gender); err == nil {
		m.Gender = string(g)
	}
	return nil
}

// Validate checks the roster rules: names present, known rank and gender,
// and age at least MinAge.
func (m Marine) Validate() error {
	switch {
	case m.LastName == "":
		return fmt.Errorf("%w: last name is required", ErrInvalidMarine)
	case m.FirstName == "":
		return fmt.Errorf("%w: first name is required", ErrInvalidMarine)
	case m.Rank != "" && !ValidRank(m.Rank):
		return fmt.Errorf("%w: unknown rank %q", ErrInvalidMarine, m.Rank)
	case m.Age < MinAge:
		return fmt.Errorf("%w: age %d is below %d", ErrInvalidMarine, m.Age, MinAge)
	}
	if _, err := tables.ParseGender(m.Gender); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidMarine, err)
	}
	return nil
}

// AgeOn returns the whole-year age on day at for someone born on dob.
func AgeOn(dob, at time.Time) int {
	age := at.Year() - dob.Year()
	if at.Month() < dob.Month() || (at.Month() == dob.Month() && at.Day() < dob.Day()) {
		age--
	}
	if age < 0 {
		return 0
	}
	return age
}

// Submission is one roster entry queued for scoring. Gender and age on the
// test records are taken from Marine.
type Submission struct {
	SubmissionID string          `json:"submission_id" yaml:"submission_id"`
	Marine       Marine          `json:"marine" yaml:"marine"`
	PFT          *scoring.Input  `json:"pft,omitempty" yaml:"pft,omitempty"`
	CFT          *scoring.Input  `json:"cft,omitempty" yaml:"cft,omitempty"`
	Body         *bodycomp.Input `json:"body,omitempty" yaml:"body,omitempty"`
	Altitude     bool            `json:"is_altitude" yaml:"is_altitude"`
	TS           time.Time       `json:"ts" yaml:"ts,omitempty"`
}

// Validate checks the Marine and that at least one test record is present.
func (s Submission) Validate() error {
	if s.PFT == nil && s.CFT == nil && s.Body == nil {
		return ErrEmptySubmission
	}
	return s.Marine.Validate()
}

// PFTInput returns the PFT record with the Marine's gender, age and the
// submission's altitude flag applied.
func (s Submission) PFTInput() scoring.Input {
	in := *s.PFT
	in.Gender, in.Age = s.Marine.Gender, s.Marine.Age
	in.Altitude = in.Altitude || s.Altitude
	return in
}

// CFTInput returns the CFT record with the Marine's gender and age applied.
func (s Submission) CFTInput() scoring.Input {
	in := *s.CFT
	in.Gender, in.Age = s.Marine.Gender, s.Marine.Age
	in.Altitude = in.Altitude || s.Altitude
	return in
}

// BodyInput returns the body record with the Marine's gender and age applied.
func (s Submission) BodyInput() bodycomp.Input {
	in := *s.Body
	in.Gender, in.Age = s.Marine.Gender, s.Marine.Age
	return in
}

// Scorecard is the scored form of a Submission.
type Scorecard struct {
	Marine       Marine                `json:"marine"`
	SubmissionID string                `json:"submission_id"`
	PFT          *scoring.Result       `json:"pft,omitempty"`
	CFT          *scoring.CombatResult `json:"cft,omitempty"`
	Body         *bodycomp.Assessment  `json:"body,omitempty"`
	Errors       map[string]string     `json:"errors,omitempty"`
	Revision     string                `json:"table_revision"`
	SubmittedAt  time.Time             `json:"submitted_at"`
	ScoredAt     time.Time             `json:"scored_at"`
}

// Supersedes reports whether c should replace prev for the same Marine.
// Later submissions win; equal timestamps fall back to the submission id.
func (c Scorecard) Supersedes(prev Scorecard) bool {
	if !c.SubmittedAt.Equal(prev.SubmittedAt) {
		return c.SubmittedAt.After(prev.SubmittedAt)
	}
	return c.SubmissionID >= prev.SubmissionID
}

// PFTTotal returns the PFT total and whether a PFT was scored.
func (c Scorecard) PFTTotal() (int, bool) {
	if c.PFT == nil {
		return 0, false
	}
	return c.PFT.TotalPoints, true
}

// CFTTotal returns the CFT total and whether a CFT was scored.
func (c Scorecard) CFTTotal() (int, bool) {
	if c.CFT == nil {
		return 0, false
	}
	return c.CFT.TotalPoints, true
}
