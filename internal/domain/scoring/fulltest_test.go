package scoring_test

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/okian/proctor/internal/domain/scoring"
	"github.com/okian/proctor/internal/domain/tables"
	. "github.com/smartystreets/goconvey/convey"
)

func intPtr(v int) *int { return &v }

func TestComputeFullTest(t *testing.T) {
	Convey("Given a male aged 24 with pull-ups, plank and run", t, func() {
		calc := scoring.NewCalculator()
		sel := scoring.Selection{
			Upper:         tables.PullUps,
			UpperReps:     15,
			PlankSeconds:  150,
			Cardio:        tables.Run,
			CardioSeconds: 1200,
		}

		res, err := calc.ComputeFullTest(tables.Male, 24, sel, scoring.TestOptions{})
		So(err, ShouldBeNil)

		Convey("Then each event is scored against the 21-25 tables", func() {
			So(res.AgeBracket, ShouldEqual, tables.Age21To25)
			So(res.UpperBody.Points, ShouldEqual, 73)
			So(res.Core.Points, ShouldEqual, 75)
			So(res.Cardio.Points, ShouldEqual, 88)
			So(res.UpperBody.Label, ShouldEqual, tables.PullUps.Label())
		})

		Convey("Then the total and class follow the thresholds", func() {
			So(res.TotalPoints, ShouldEqual, 236)
			So(res.Classification, ShouldEqual, scoring.FirstClass)
			So(res.Grade, ShouldEqual, "A")
			So(res.PassedMinimums, ShouldBeTrue)
			So(res.FailedEvents, ShouldBeEmpty)
		})

		Convey("Then recomputing yields byte-identical JSON", func() {
			again, err := calc.ComputeFullTest(tables.Male, 24, sel, scoring.TestOptions{})
			So(err, ShouldBeNil)
			a, _ := json.Marshal(res)
			b, _ := json.Marshal(again)
			So(string(a), ShouldEqual, string(b))
		})
	})

	Convey("Given a strong total with a failed plank", t, func() {
		calc := scoring.NewCalculator()
		sel := scoring.Selection{
			Upper: tables.PullUps, UpperReps: 23,
			PlankSeconds: 69,
			Cardio:       tables.Run, CardioSeconds: 1080,
		}

		res, err := calc.ComputeFullTest(tables.Male, 30, sel, scoring.TestOptions{})
		So(err, ShouldBeNil)

		Convey("Then the result is Fail and the plank is listed", func() {
			So(res.TotalPoints, ShouldEqual, 200)
			So(res.Classification, ShouldEqual, scoring.Fail)
			So(res.PassedMinimums, ShouldBeFalse)
			So(res.FailedEvents, ShouldResemble, []tables.Event{tables.Plank})
		})
	})

	Convey("Given a row selected for a bracket without row standards", t, func() {
		calc := scoring.NewCalculator()
		sel := scoring.Selection{
			Upper: tables.PushUps, UpperReps: 50,
			PlankSeconds: 120,
			Cardio:       tables.Row, CardioSeconds: 1500,
		}

		_, err := calc.ComputeFullTest(tables.Female, 30, sel, scoring.TestOptions{})

		Convey("Then the missing table entry surfaces", func() {
			So(errors.Is(err, tables.ErrMissingEntry), ShouldBeTrue)
		})
	})

	Convey("Given a row for a 46-year-old", t, func() {
		calc := scoring.NewCalculator()
		sel := scoring.Selection{
			Upper: tables.PushUps, UpperReps: 40,
			PlankSeconds: 120,
			Cardio:       tables.Row, CardioSeconds: 1500,
		}

		res, err := calc.ComputeFullTest(tables.Male, 46, sel, scoring.TestOptions{})

		Convey("Then the row is scored", func() {
			So(err, ShouldBeNil)
			So(res.Cardio.Event, ShouldEqual, tables.Row)
			So(res.AgeBracket, ShouldEqual, tables.Age46To50)
		})
	})

	Convey("Given an invalid event selection", t, func() {
		calc := scoring.NewCalculator()
		_, err := calc.ComputeFullTest(tables.Male, 24, scoring.Selection{
			Upper: tables.Run, Cardio: tables.Run, CardioSeconds: 1200,
		}, scoring.TestOptions{})

		So(errors.Is(err, scoring.ErrInvalidSelection), ShouldBeTrue)
	})
}

func TestComputeCombatTest(t *testing.T) {
	Convey("Given a male aged 22 at the CFT caps", t, func() {
		calc := scoring.NewCalculator()
		res, err := calc.ComputeCombatTest(tables.Male, 22, scoring.CombatSelection{
			MTCSeconds: 158, AmmoLiftReps: 106, ManeuverSeconds: 134,
		}, scoring.TestOptions{})
		So(err, ShouldBeNil)

		Convey("Then the result is a first-class pass", func() {
			So(res.TotalPoints, ShouldEqual, 300)
			So(res.Classification, ShouldEqual, scoring.FirstClass)
			So(res.Passed, ShouldBeTrue)
		})
	})

	Convey("Given a CFT with too few ammunition lifts", t, func() {
		calc := scoring.NewCalculator()
		res, err := calc.ComputeCombatTest(tables.Male, 22, scoring.CombatSelection{
			MTCSeconds: 158, AmmoLiftReps: 10, ManeuverSeconds: 134,
		}, scoring.TestOptions{})
		So(err, ShouldBeNil)

		Convey("Then it fails on the minimum even with 200 points", func() {
			So(res.TotalPoints, ShouldEqual, 200)
			So(res.Classification, ShouldEqual, scoring.Fail)
			So(res.PassedMinimums, ShouldBeFalse)
			So(res.Passed, ShouldBeFalse)
			So(res.FailedEvents, ShouldResemble, []tables.Event{tables.AmmoLift})
		})
	})
}

func TestScoreInput(t *testing.T) {
	Convey("Given a form record", t, func() {
		calc := scoring.NewCalculator()
		in := scoring.Input{
			Gender:       "M",
			Age:          24,
			PullUps:      intPtr(15),
			PlankSeconds: 150,
			CardioEvent:  "run",
			RunSeconds:   intPtr(1200),
		}

		Convey("When it is complete", func() {
			res, err := calc.ScorePFT(in)

			Convey("Then it scores like the direct call", func() {
				So(err, ShouldBeNil)
				So(res.TotalPoints, ShouldEqual, 236)
			})
		})

		Convey("When both upper body events are set", func() {
			in.PushUps = intPtr(40)
			_, err := calc.ScorePFT(in)

			Convey("Then the selection is rejected", func() {
				So(errors.Is(err, scoring.ErrInvalidSelection), ShouldBeTrue)
			})
		})

		Convey("When the run time is zero", func() {
			in.RunSeconds = intPtr(0)
			_, err := calc.ScorePFT(in)

			Convey("Then the input is rejected", func() {
				So(errors.Is(err, scoring.ErrInvalidInput), ShouldBeTrue)
			})
		})

		Convey("When a row time is given for a run", func() {
			in.RowSeconds = intPtr(1500)
			_, err := calc.ScorePFT(in)

			So(errors.Is(err, scoring.ErrInvalidSelection), ShouldBeTrue)
		})

		Convey("When the gender is unknown", func() {
			in.Gender = "x"
			_, err := calc.ScorePFT(in)

			So(errors.Is(err, tables.ErrInvalidGender), ShouldBeTrue)
		})

		Convey("When the calculator is handed an untabulated gender directly", func() {
			sel, err := in.Selection()
			So(err, ShouldBeNil)
			_, err = calc.ComputeFullTest(tables.Gender("x"), 24, sel, scoring.TestOptions{})

			So(errors.Is(err, tables.ErrMissingEntry), ShouldBeTrue)
			So(errors.Is(err, tables.ErrInvalidGender), ShouldBeTrue)
		})

		Convey("When CFT fields are missing", func() {
			_, err := calc.ScoreCFT(in)

			So(errors.Is(err, scoring.ErrInvalidInput), ShouldBeTrue)
		})
	})
}
