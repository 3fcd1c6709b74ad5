package api_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/okian/proctor/internal/adapters/http/api"
	repository "github.com/okian/proctor/internal/adapters/repository"
	service "github.com/okian/proctor/internal/app"
	"github.com/okian/proctor/internal/domain/model"
	"github.com/okian/proctor/internal/domain/types"
	. "github.com/smartystreets/goconvey/convey"
)

// mockDependencies scores with a real, unstarted service and fakes the
// roster pipeline.
type mockDependencies struct {
	*service.Service

	submitted []model.Submission
	submitErr error
	duplicate bool

	cards   map[string]model.Scorecard
	top     []types.Entry
	lastN   int
	lastB   types.Board
	rank    types.Entry
	rankErr error
}

func newMockDependencies() *mockDependencies {
	return &mockDependencies{
		Service: service.New(),
		cards:   make(map[string]model.Scorecard),
	}
}

func (m *mockDependencies) Submit(_ context.Context, sub model.Submission) (types.Receipt, error) {
	if m.submitErr != nil {
		return types.Receipt{}, m.submitErr
	}
	m.submitted = append(m.submitted, sub)
	return types.Receipt{SubmissionID: sub.SubmissionID, MarineID: sub.Marine.ID, Duplicate: m.duplicate}, nil
}

func (m *mockDependencies) Get(_ context.Context, id string) (model.Scorecard, error) {
	card, ok := m.cards[id]
	if !ok {
		return model.Scorecard{}, repository.ErrNotFound
	}
	return card, nil
}

func (m *mockDependencies) Remove(_ context.Context, id string) error {
	if _, ok := m.cards[id]; !ok {
		return repository.ErrNotFound
	}
	delete(m.cards, id)
	return nil
}

func (m *mockDependencies) List(_ context.Context) ([]model.Scorecard, error) {
	out := make([]model.Scorecard, 0, len(m.cards))
	for _, c := range m.cards {
		out = append(out, c)
	}
	return out, nil
}

func (m *mockDependencies) TopN(_ context.Context, b types.Board, n int) ([]types.Entry, error) {
	m.lastB, m.lastN = b, n
	if n > len(m.top) {
		return m.top, nil
	}
	return m.top[:n], nil
}

func (m *mockDependencies) Rank(_ context.Context, b types.Board, _ string) (types.Entry, error) {
	m.lastB = b
	return m.rank, m.rankErr
}

func (m *mockDependencies) GetStats(_ context.Context) types.Stats {
	return types.Stats{Started: true, WorkerCount: 4, RosterSize: len(m.cards)}
}

func newMux(deps api.Dependencies, opts ...api.ServerOption) *http.ServeMux {
	mux := http.NewServeMux()
	api.NewServer(deps, opts...).Register(context.Background(), mux)
	return mux
}

func do(h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func decodeError(w *httptest.ResponseRecorder) string {
	var body struct {
		Code string `json:"code"`
	}
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	return body.Code
}

func TestServer_Register(t *testing.T) {
	Convey("Given a registered API server", t, func() {
		deps := newMockDependencies()
		mux := newMux(deps)

		Convey("Then the health endpoint reports ok", func() {
			w := do(mux, "GET", "/healthz", "")
			So(w.Code, ShouldEqual, http.StatusOK)
			So(w.Body.String(), ShouldContainSubstring, `"ok"`)
		})

		Convey("Then the metrics endpoint serves Prometheus text", func() {
			w := do(mux, "GET", "/metrics", "")
			So(w.Code, ShouldEqual, http.StatusOK)
			So(w.Body.String(), ShouldContainSubstring, "# HELP")
		})

		Convey("Then stats are served as JSON", func() {
			w := do(mux, "GET", "/stats", "")
			So(w.Code, ShouldEqual, http.StatusOK)
			So(w.Body.String(), ShouldContainSubstring, `"worker_count":4`)
		})

		Convey("Then unknown paths return 404", func() {
			w := do(mux, "GET", "/unknown", "")
			So(w.Code, ShouldEqual, http.StatusNotFound)
		})

		Convey("Then a wrong method is rejected", func() {
			w := do(mux, "GET", "/pft", "")
			So(w.Code, ShouldEqual, http.StatusMethodNotAllowed)
		})
	})
}

func TestScoringEndpoints(t *testing.T) {
	Convey("Given a registered API server", t, func() {
		mux := newMux(newMockDependencies())

		Convey("When a valid PFT is posted", func() {
			w := do(mux, "POST", "/pft", `{"gender":"male","age":24,"pull_ups":15,"plank_seconds":150,"run_seconds":1200}`)

			Convey("Then the scored result is returned", func() {
				So(w.Code, ShouldEqual, http.StatusOK)
				var res struct {
					Total int    `json:"total_points"`
					Class string `json:"classification"`
				}
				So(json.Unmarshal(w.Body.Bytes(), &res), ShouldBeNil)
				So(res.Total, ShouldEqual, 236)
			})
		})

		Convey("When the PFT body is malformed", func() {
			w := do(mux, "POST", "/pft", `{"gender":`)

			So(w.Code, ShouldEqual, http.StatusBadRequest)
			So(decodeError(w), ShouldEqual, "bad_request")
		})

		Convey("When the PFT has an unknown field", func() {
			w := do(mux, "POST", "/pft", `{"gender":"male","age":24,"sit_ups":50}`)

			So(w.Code, ShouldEqual, http.StatusBadRequest)
		})

		Convey("When both upper body events are given", func() {
			w := do(mux, "POST", "/pft", `{"gender":"male","age":24,"pull_ups":10,"push_ups":50,"plank_seconds":150,"run_seconds":1200}`)

			So(w.Code, ShouldEqual, http.StatusBadRequest)
			So(decodeError(w), ShouldEqual, "bad_request")
		})

		Convey("When a row is requested for an age with no row table", func() {
			w := do(mux, "POST", "/pft", `{"gender":"male","age":24,"pull_ups":10,"plank_seconds":150,"cardio_event":"row","row_seconds":1500}`)

			So(w.Code, ShouldEqual, http.StatusUnprocessableEntity)
			So(decodeError(w), ShouldEqual, "missing_table_entry")
		})

		Convey("When a CFT is posted", func() {
			w := do(mux, "POST", "/cft", `{"gender":"male","age":24,"mtc_seconds":170,"ammo_lift_reps":100,"maneuver_seconds":140}`)

			So(w.Code, ShouldEqual, http.StatusOK)
			So(w.Body.String(), ShouldContainSubstring, "total_points")
		})

		Convey("When a body composition is posted", func() {
			w := do(mux, "POST", "/bodycomp", `{"gender":"male","age":24,"height_inches":70,"weight_lbs":190}`)

			So(w.Code, ShouldEqual, http.StatusOK)
			So(w.Body.String(), ShouldContainSubstring, "Within height/weight standards")
		})

		Convey("When the height is outside the weight table", func() {
			w := do(mux, "POST", "/bodycomp", `{"gender":"male","age":24,"height_inches":50,"weight_lbs":190}`)

			So(w.Code, ShouldEqual, http.StatusUnprocessableEntity)
			So(decodeError(w), ShouldEqual, "no_height_standard")
		})

		Convey("When an overweight female omits the hips measurement", func() {
			w := do(mux, "POST", "/bodycomp", `{"gender":"female","age":30,"height_inches":64,"weight_lbs":200,"neck_inches":13,"abdomen_inches":40}`)

			So(w.Code, ShouldEqual, http.StatusBadRequest)
			So(decodeError(w), ShouldEqual, "bad_request")
		})

		Convey("When brackets are requested", func() {
			w := do(mux, "GET", "/brackets?age=28", "")
			bad := do(mux, "GET", "/brackets?age=abc", "")

			So(w.Code, ShouldEqual, http.StatusOK)
			So(w.Body.String(), ShouldContainSubstring, `"fitness_bracket":"26-30"`)
			So(w.Body.String(), ShouldContainSubstring, `"weight_bracket":"28-39"`)
			So(bad.Code, ShouldEqual, http.StatusBadRequest)
		})

		Convey("When instructions are requested", func() {
			w := do(mux, "GET", "/instructions?gender=female", "")
			bad := do(mux, "GET", "/instructions?gender=x", "")

			So(w.Code, ShouldEqual, http.StatusOK)
			So(bad.Code, ShouldEqual, http.StatusBadRequest)
		})
	})
}

func TestRosterEndpoints(t *testing.T) {
	Convey("Given a registered API server", t, func() {
		deps := newMockDependencies()
		mux := newMux(deps)
		body := `{"submission_id":"s-1","marine":{"id":"m-1","last_name":"Smith","first_name":"John","gender":"male","age":24},"pft":{"pull_ups":15,"plank_seconds":150,"run_seconds":1200}}`

		Convey("When a new submission is posted", func() {
			w := do(mux, "POST", "/roster", body)

			Convey("Then it is accepted for async scoring", func() {
				So(w.Code, ShouldEqual, http.StatusAccepted)
				So(w.Body.String(), ShouldContainSubstring, `"status":"accepted"`)
				So(len(deps.submitted), ShouldEqual, 1)
				So(deps.submitted[0].PFT, ShouldNotBeNil)
			})
		})

		Convey("When the submission was already seen", func() {
			deps.duplicate = true
			w := do(mux, "POST", "/roster", body)

			So(w.Code, ShouldEqual, http.StatusOK)
			So(w.Body.String(), ShouldContainSubstring, `"duplicate":true`)
		})

		Convey("When the queue is full", func() {
			deps.submitErr = types.ErrBackpressure
			w := do(mux, "POST", "/roster", body)

			So(w.Code, ShouldEqual, http.StatusTooManyRequests)
			So(decodeError(w), ShouldEqual, "backpressure")
		})

		Convey("When the Marine is invalid", func() {
			deps.submitErr = model.ErrInvalidMarine
			w := do(mux, "POST", "/roster", body)

			So(w.Code, ShouldEqual, http.StatusBadRequest)
		})

		Convey("When the pipeline is not running", func() {
			deps.submitErr = types.ErrNotStarted
			w := do(mux, "POST", "/roster", body)

			So(w.Code, ShouldEqual, http.StatusServiceUnavailable)
		})

		Convey("When a scorecard exists", func() {
			deps.cards["m-1"] = model.Scorecard{Marine: model.Marine{ID: "m-1", LastName: "Smith"}}

			Convey("Then it can be fetched, listed and removed", func() {
				So(do(mux, "GET", "/roster/m-1", "").Code, ShouldEqual, http.StatusOK)
				So(do(mux, "GET", "/roster", "").Body.String(), ShouldContainSubstring, "Smith")
				So(do(mux, "DELETE", "/roster/m-1", "").Code, ShouldEqual, http.StatusNoContent)
				So(do(mux, "GET", "/roster/m-1", "").Code, ShouldEqual, http.StatusNotFound)
			})
		})

		Convey("When a missing Marine is removed", func() {
			w := do(mux, "DELETE", "/roster/nobody", "")

			So(w.Code, ShouldEqual, http.StatusNotFound)
			So(decodeError(w), ShouldEqual, "not_found")
		})
	})
}

func TestLeaderboardEndpoints(t *testing.T) {
	Convey("Given a server with a leaderboard capped at 5", t, func() {
		deps := newMockDependencies()
		deps.top = []types.Entry{
			{Rank: 1, MarineID: "a", Total: 280},
			{Rank: 1, MarineID: "b", Total: 280},
			{Rank: 3, MarineID: "c", Total: 240},
		}
		mux := newMux(deps, api.WithMaxLeaderboardLimit(5))

		Convey("When the CFT board is requested with a limit", func() {
			w := do(mux, "GET", "/leaderboard?test=cft&limit=2", "")

			Convey("Then the board and limit are passed through", func() {
				So(w.Code, ShouldEqual, http.StatusOK)
				So(deps.lastB, ShouldEqual, types.BoardCFT)
				So(deps.lastN, ShouldEqual, 2)
				var got []types.Entry
				So(json.Unmarshal(w.Body.Bytes(), &got), ShouldBeNil)
				So(len(got), ShouldEqual, 2)
			})
		})

		Convey("When no limit is given", func() {
			w := do(mux, "GET", "/leaderboard", "")

			So(w.Code, ShouldEqual, http.StatusOK)
			So(deps.lastB, ShouldEqual, types.BoardPFT)
			So(deps.lastN, ShouldEqual, 5)
		})

		Convey("When the limit is invalid or too large", func() {
			So(do(mux, "GET", "/leaderboard?limit=0", "").Code, ShouldEqual, http.StatusBadRequest)
			So(do(mux, "GET", "/leaderboard?limit=x", "").Code, ShouldEqual, http.StatusBadRequest)
			So(decodeError(do(mux, "GET", "/leaderboard?limit=6", "")), ShouldEqual, "limit_exceeded")
		})

		Convey("When the test name is unknown", func() {
			So(do(mux, "GET", "/leaderboard?test=acft", "").Code, ShouldEqual, http.StatusBadRequest)
		})

		Convey("When a rank is requested", func() {
			deps.rank = types.Entry{Rank: 3, MarineID: "c", Total: 240}
			w := do(mux, "GET", "/rank/c?test=cft", "")

			So(w.Code, ShouldEqual, http.StatusOK)
			So(deps.lastB, ShouldEqual, types.BoardCFT)
			So(w.Body.String(), ShouldContainSubstring, `"rank":3`)
		})

		Convey("When the Marine has no ranking", func() {
			deps.rankErr = repository.ErrNotRanked
			w := do(mux, "GET", "/rank/zz", "")

			So(w.Code, ShouldEqual, http.StatusNotFound)
		})
	})
}

func TestCORS(t *testing.T) {
	Convey("Given a server restricted to one origin", t, func() {
		deps := newMockDependencies()
		server := api.NewServer(deps, api.WithCORSOrigins([]string{"https://forms.example"}))
		mux := http.NewServeMux()
		server.Register(context.Background(), mux)
		h := server.Handler(mux)

		Convey("When a preflight comes from the allowed origin", func() {
			req := httptest.NewRequest(http.MethodOptions, "/pft", nil)
			req.Header.Set("Origin", "https://forms.example")
			req.Header.Set("Access-Control-Request-Method", http.MethodPost)
			w := httptest.NewRecorder()
			h.ServeHTTP(w, req)

			So(w.Header().Get("Access-Control-Allow-Origin"), ShouldEqual, "https://forms.example")
		})

		Convey("When a request comes from another origin", func() {
			req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
			req.Header.Set("Origin", "https://evil.example")
			w := httptest.NewRecorder()
			h.ServeHTTP(w, req)

			So(w.Header().Get("Access-Control-Allow-Origin"), ShouldBeEmpty)
		})
	})
}

func TestErrorKinds(t *testing.T) {
	Convey("Given wrapped API errors", t, func() {
		inner := model.ErrInvalidMarine
		err := api.WrapKind("api.op", api.ErrBadRequest, inner)

		So(err.Error(), ShouldContainSubstring, "api.op")
		So(errors.Is(err, api.ErrBadRequest), ShouldBeTrue)
		So(errors.Is(err, model.ErrInvalidMarine), ShouldBeTrue)
	})
}
