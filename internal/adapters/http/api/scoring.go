package api

import (
	"context"
	"net/http"
	"strconv"

	"github.com/okian/proctor/internal/domain/bodycomp"
	"github.com/okian/proctor/internal/domain/scoring"
	"github.com/okian/proctor/internal/domain/types"
)

// ScoringDependencies defines the synchronous scoring operations.
type ScoringDependencies interface {
	ScorePFT(ctx context.Context, in scoring.Input) (scoring.Result, error)
	ScoreCFT(ctx context.Context, in scoring.Input) (scoring.CombatResult, error)
	Assess(ctx context.Context, in bodycomp.Input) (bodycomp.Assessment, error)
	Brackets(age int) types.Brackets
	Instructions(gender string) ([]bodycomp.Instruction, error)
}

// ScoringHandler handles one-off scoring requests.
type ScoringHandler struct {
	deps ScoringDependencies
}

// NewScoringHandler creates a new scoring handler.
func NewScoringHandler(deps ScoringDependencies) *ScoringHandler {
	return &ScoringHandler{deps: deps}
}

// HandlePFT handles POST /pft requests.
func (h *ScoringHandler) HandlePFT(w http.ResponseWriter, r *http.Request) {
	const op = "api.score_pft"
	var in scoring.Input
	if err := decodeJSON(r, &in); err != nil {
		writeFailure(w, WrapKind(op, ErrBadRequest, err))
		return
	}
	res, err := h.deps.ScorePFT(r.Context(), in)
	if err != nil {
		writeFailure(w, Wrap(op, err))
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// HandleCFT handles POST /cft requests.
func (h *ScoringHandler) HandleCFT(w http.ResponseWriter, r *http.Request) {
	const op = "api.score_cft"
	var in scoring.Input
	if err := decodeJSON(r, &in); err != nil {
		writeFailure(w, WrapKind(op, ErrBadRequest, err))
		return
	}
	res, err := h.deps.ScoreCFT(r.Context(), in)
	if err != nil {
		writeFailure(w, Wrap(op, err))
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// HandleBodyComp handles POST /bodycomp requests.
func (h *ScoringHandler) HandleBodyComp(w http.ResponseWriter, r *http.Request) {
	const op = "api.assess_body"
	var in bodycomp.Input
	if err := decodeJSON(r, &in); err != nil {
		writeFailure(w, WrapKind(op, ErrBadRequest, err))
		return
	}
	res, err := h.deps.Assess(r.Context(), in)
	if err != nil {
		writeFailure(w, Wrap(op, err))
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// HandleBrackets handles GET /brackets?age=N requests.
func (h *ScoringHandler) HandleBrackets(w http.ResponseWriter, r *http.Request) {
	const op = "api.brackets"
	age, err := strconv.Atoi(r.URL.Query().Get("age"))
	if err != nil || age < 0 {
		writeFailure(w, NewKind(op, ErrBadRequest))
		return
	}
	writeJSON(w, http.StatusOK, h.deps.Brackets(age))
}

// HandleInstructions handles GET /instructions?gender=g requests.
func (h *ScoringHandler) HandleInstructions(w http.ResponseWriter, r *http.Request) {
	const op = "api.instructions"
	steps, err := h.deps.Instructions(r.URL.Query().Get("gender"))
	if err != nil {
		writeFailure(w, Wrap(op, err))
		return
	}
	writeJSON(w, http.StatusOK, steps)
}
