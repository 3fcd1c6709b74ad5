// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/okian/proctor/internal/domain/types"
)

const (
	defaultMaxLimit = 100
	maxBodyBytes    = 1 << 20
)

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to implementations in other packages.
type Dependencies interface {
	ScoringDependencies
	RosterDependencies
	LeaderboardDependencies
	RankDependencies
	StatsProvider
}

// Entry mirrors the read shape returned by leaderboard queries.
type Entry = types.Entry

// Server wires HTTP routes for the business API.
type Server struct {
	healthHandler      *HealthHandler
	statsHandler       *StatsHandler
	scoringHandler     *ScoringHandler
	rosterHandler      *RosterHandler
	leaderboardHandler *LeaderboardHandler
	rankHandler        *RankHandler
	corsOrigins        []string
}

// ServerOption configures a Server.
type ServerOption func(*serverConfig)

type serverConfig struct {
	maxLimit    int
	corsOrigins []string
}

// WithMaxLeaderboardLimit caps GET /leaderboard?limit.
func WithMaxLeaderboardLimit(n int) ServerOption {
	return func(c *serverConfig) {
		if n > 0 {
			c.maxLimit = n
		}
	}
}

// WithCORSOrigins sets the origins allowed by the CORS middleware.
func WithCORSOrigins(origins []string) ServerOption {
	return func(c *serverConfig) {
		c.corsOrigins = origins
	}
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies, opts ...ServerOption) *Server {
	cfg := serverConfig{maxLimit: defaultMaxLimit}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Server{
		healthHandler:      NewHealthHandler(),
		statsHandler:       NewStatsHandler(deps),
		scoringHandler:     NewScoringHandler(deps),
		rosterHandler:      NewRosterHandler(deps),
		leaderboardHandler: NewLeaderboardHandler(deps, cfg.maxLimit),
		rankHandler:        NewRankHandler(deps),
		corsOrigins:        cfg.corsOrigins,
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(_ context.Context, mux *http.ServeMux) {
	mux.HandleFunc("GET /healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	mux.Handle("GET /metrics", NewMetricsHandler())
	mux.HandleFunc("GET /stats", MetricsMiddleware(s.statsHandler.HandleStats, "stats"))

	mux.HandleFunc("POST /pft", MetricsMiddleware(s.scoringHandler.HandlePFT, "pft"))
	mux.HandleFunc("POST /cft", MetricsMiddleware(s.scoringHandler.HandleCFT, "cft"))
	mux.HandleFunc("POST /bodycomp", MetricsMiddleware(s.scoringHandler.HandleBodyComp, "bodycomp"))
	mux.HandleFunc("GET /brackets", MetricsMiddleware(s.scoringHandler.HandleBrackets, "brackets"))
	mux.HandleFunc("GET /instructions", MetricsMiddleware(s.scoringHandler.HandleInstructions, "instructions"))

	mux.HandleFunc("POST /roster", MetricsMiddleware(s.rosterHandler.HandleSubmit, "roster"))
	mux.HandleFunc("GET /roster", MetricsMiddleware(s.rosterHandler.HandleList, "roster"))
	mux.HandleFunc("GET /roster/{id}", MetricsMiddleware(s.rosterHandler.HandleGet, "roster_item"))
	mux.HandleFunc("DELETE /roster/{id}", MetricsMiddleware(s.rosterHandler.HandleDelete, "roster_item"))

	mux.HandleFunc("GET /leaderboard", MetricsMiddleware(s.leaderboardHandler.HandleGetLeaderboard, "leaderboard"))
	mux.HandleFunc("GET /rank/{id}", MetricsMiddleware(s.rankHandler.HandleGetRank, "rank"))
}

// Handler wraps h with the CORS policy configured on the server.
func (s *Server) Handler(h http.Handler) http.Handler {
	return CORS(s.corsOrigins)(h)
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}

// writeFailure classifies err and writes the matching error response.
func writeFailure(w http.ResponseWriter, err error) {
	status, code := classify(err)
	writeError(w, status, code, err)
}

// decodeJSON reads one JSON document into v, rejecting unknown fields.
func decodeJSON(r *http.Request, v any) error {
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("decode body: %w", err)
	}
	return nil
}
