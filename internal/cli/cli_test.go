package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/okian/proctor/internal/domain/bodycomp"
	"github.com/okian/proctor/internal/domain/model"
	"github.com/okian/proctor/internal/domain/scoring"
	"github.com/okian/proctor/internal/domain/types"
	. "github.com/smartystreets/goconvey/convey"
)

func run(args ...string) (string, error) {
	cmd := NewRootCommand()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

var pftArgs = []string{"pft", "--age", "24", "--pull-ups", "15", "--plank", "2:30", "--run", "20:00"}

func TestPFTCommand(t *testing.T) {
	Convey("Given a first class PFT on the command line", t, func() {
		Convey("When printed as text", func() {
			out, err := run(pftArgs...)
			So(err, ShouldBeNil)
			So(out, ShouldContainSubstring, "Pull-ups")
			So(out, ShouldContainSubstring, "3-Mile Run")
			So(out, ShouldContainSubstring, "20:00")
			So(out, ShouldContainSubstring, "236")
			So(out, ShouldContainSubstring, "First (A)")
		})

		Convey("When printed as JSON", func() {
			out, err := run(append(pftArgs, "--format", "json")...)
			So(err, ShouldBeNil)
			var res scoring.Result
			So(json.Unmarshal([]byte(out), &res), ShouldBeNil)
			So(res.TotalPoints, ShouldEqual, 236)
			So(res.Classification, ShouldEqual, scoring.FirstClass)
			So(res.Grade, ShouldEqual, "A")
		})

		Convey("When printed as YAML the API field names are kept", func() {
			out, err := run(append(pftArgs, "-f", "yaml")...)
			So(err, ShouldBeNil)
			So(out, ShouldContainSubstring, "total_points: 236")
			So(out, ShouldContainSubstring, "classification: First")
			So(out, ShouldNotContainSubstring, "{")
		})

		Convey("When the run is replaced by a row", func() {
			out, err := run("pft", "--age", "24", "--push-ups", "60", "--plank", "2:30", "--row", "20:00", "-f", "json")
			So(err, ShouldBeNil)
			var res scoring.Result
			So(json.Unmarshal([]byte(out), &res), ShouldBeNil)
			So(res.Cardio.Label, ShouldEqual, "5k Row")
		})
	})

	Convey("Given invalid PFT input", t, func() {
		Convey("A malformed clock is rejected", func() {
			_, err := run("pft", "--age", "24", "--pull-ups", "15", "--plank", "2:75", "--run", "20:00")
			So(err, ShouldNotBeNil)
		})

		Convey("Both upper-body events are rejected", func() {
			_, err := run("pft", "--age", "24", "--pull-ups", "15", "--push-ups", "40", "--plank", "2:30", "--run", "20:00")
			So(err, ShouldNotBeNil)
		})

		Convey("An unknown format is rejected", func() {
			_, err := run(append(pftArgs, "--format", "xml")...)
			So(err, ShouldNotBeNil)
		})
	})
}

func TestConfigAndInputFiles(t *testing.T) {
	Convey("Given a config file that sets the format and age", t, func() {
		cfg := writeFile(t, ".proctorrc.yaml", "format: json\nage: 24\n")

		Convey("Then flags not given on the command line come from the file", func() {
			out, err := run("pft", "--config", cfg, "--pull-ups", "15", "--plank", "2:30", "--run", "20:00")
			So(err, ShouldBeNil)
			var res scoring.Result
			So(json.Unmarshal([]byte(out), &res), ShouldBeNil)
			So(res.TotalPoints, ShouldEqual, 236)
		})

		Convey("Then explicit flags win over the file", func() {
			out, err := run("pft", "--config", cfg, "-f", "yaml", "--pull-ups", "15", "--plank", "2:30", "--run", "20:00")
			So(err, ShouldBeNil)
			So(out, ShouldContainSubstring, "total_points: 236")
		})
	})

	Convey("Given a missing config file", t, func() {
		_, err := run("brackets", "30", "--config", filepath.Join(t.TempDir(), "missing.yaml"))
		So(err, ShouldNotBeNil)
	})

	Convey("Given a PFT record file", t, func() {
		rec := writeFile(t, "pft.yaml", "gender: male\nage: 24\npull_ups: 15\nplank_seconds: 150\nrun_seconds: 1200\n")
		out, err := run("pft", "--input", rec, "-f", "json")
		So(err, ShouldBeNil)
		var res scoring.Result
		So(json.Unmarshal([]byte(out), &res), ShouldBeNil)
		So(res.TotalPoints, ShouldEqual, 236)
	})
}

func TestLookupCommands(t *testing.T) {
	Convey("brackets prints both groupings", t, func() {
		out, err := run("brackets", "24", "-f", "json")
		So(err, ShouldBeNil)
		var b types.Brackets
		So(json.Unmarshal([]byte(out), &b), ShouldBeNil)
		So(b.Fitness, ShouldEqual, "21-25")
		So(b.Weight, ShouldEqual, "21-27")

		_, err = run("brackets", "old")
		So(err, ShouldNotBeNil)
	})

	Convey("instructions lists hips only for females", t, func() {
		out, err := run("instructions", "female")
		So(err, ShouldBeNil)
		So(out, ShouldContainSubstring, "hips")

		out, err = run("instructions", "male")
		So(err, ShouldBeNil)
		So(out, ShouldNotContainSubstring, "hips")

		_, err = run("instructions", "other")
		So(err, ShouldNotBeNil)
	})
}

func TestBodyCommand(t *testing.T) {
	Convey("Given a Marine within height and weight", t, func() {
		out, err := run("body", "--age", "24", "--height", "70", "--weight", "190", "-f", "json")
		So(err, ShouldBeNil)
		var as bodycomp.Assessment
		So(json.Unmarshal([]byte(out), &as), ShouldBeNil)
		So(as.Passed, ShouldBeTrue)
		So(as.RequiresTape, ShouldBeFalse)

		Convey("The text card shows the verdict", func() {
			out, err := run("body", "--age", "24", "--height", "70", "--weight", "190")
			So(err, ShouldBeNil)
			So(out, ShouldContainSubstring, "Within height/weight standards")
		})
	})

	Convey("Given a height off the chart", t, func() {
		_, err := run("body", "--age", "24", "--height", "90", "--weight", "190")
		So(err, ShouldNotBeNil)
	})
}

func TestRosterCommand(t *testing.T) {
	Convey("Given a roster file", t, func() {
		roster := writeFile(t, "roster.yaml", `
- submission_id: s1
  marine: {id: a, rank: Cpl, last_name: Alpha, first_name: Pat, gender: male, age: 24}
  pft: {pull_ups: 15, plank_seconds: 150, run_seconds: 1200}
- submission_id: s2
  marine: {id: b, rank: Sgt, last_name: Bravo, first_name: Lee, gender: male, age: 24}
  pft: {pull_ups: 15, plank_seconds: 150, run_seconds: 1200}
- submission_id: s3
  marine: {id: c, rank: Pvt, last_name: Charlie, first_name: Sam, gender: male, age: 24}
  pft: {pull_ups: 23, plank_seconds: 69, run_seconds: 1080}
- submission_id: s4
  marine: {rank: General, last_name: Nobody, first_name: X, gender: male, age: 30}
  pft: {pull_ups: 10, plank_seconds: 100, run_seconds: 1500}
`)

		Convey("When it is scored", func() {
			out, err := run("roster", roster, "-f", "json")
			So(err, ShouldBeNil)
			var rep RosterReport
			So(json.Unmarshal([]byte(out), &rep), ShouldBeNil)

			Convey("Then ties share a rank and the next rank skips", func() {
				pft := rep.Boards["pft"]
				So(len(pft), ShouldEqual, 3)
				So(pft[0].MarineID, ShouldEqual, "a")
				So(pft[1].Rank, ShouldEqual, 1)
				So(pft[2].MarineID, ShouldEqual, "c")
				So(pft[2].Rank, ShouldEqual, 3)
				So(rep.Boards["cft"], ShouldBeEmpty)
			})

			Convey("Then invalid Marines are reported", func() {
				So(len(rep.Scorecards), ShouldEqual, 3)
				So(len(rep.Rejected), ShouldEqual, 1)
			})
		})

		Convey("When printed as text", func() {
			out, err := run("roster", roster)
			So(err, ShouldBeNil)
			So(out, ShouldContainSubstring, "PFT leaderboard")
			So(out, ShouldContainSubstring, "Cpl Alpha, Pat")
			So(out, ShouldContainSubstring, "rejected")
		})
	})

	Convey("scoreRoster works on an empty roster", t, func() {
		rep, err := scoreRoster(context.Background(), []model.Submission{}, 5, time.Second)
		So(err, ShouldBeNil)
		So(rep.Boards["pft"], ShouldBeEmpty)
	})
}

func TestSimulateCommand(t *testing.T) {
	Convey("simulate fails when proctord is unreachable", t, func() {
		_, err := run("simulate", "--url", "http://127.0.0.1:1", "--marines", "1", "--timeout", "1s")
		So(err, ShouldNotBeNil)
	})
}
