package api

import (
	"context"
	"net/http"

	"github.com/okian/proctor/internal/domain/model"
	"github.com/okian/proctor/internal/domain/types"
)

// RosterDependencies defines the roster pipeline operations.
type RosterDependencies interface {
	// Submit queues a submission for async scoring. A full queue is
	// reported with types.ErrBackpressure.
	Submit(ctx context.Context, sub model.Submission) (types.Receipt, error)
	Get(ctx context.Context, marineID string) (model.Scorecard, error)
	Remove(ctx context.Context, marineID string) error
	List(ctx context.Context) ([]model.Scorecard, error)
}

// RosterHandler handles roster requests.
type RosterHandler struct {
	deps RosterDependencies
}

// NewRosterHandler creates a new roster handler.
func NewRosterHandler(deps RosterDependencies) *RosterHandler {
	return &RosterHandler{deps: deps}
}

type ackResponse struct {
	Status string `json:"status"`
	types.Receipt
}

// HandleSubmit handles POST /roster requests.
func (h *RosterHandler) HandleSubmit(w http.ResponseWriter, r *http.Request) {
	const op = "api.submit_roster"
	var sub model.Submission
	if err := decodeJSON(r, &sub); err != nil {
		writeFailure(w, WrapKind(op, ErrBadRequest, err))
		return
	}

	receipt, err := h.deps.Submit(r.Context(), sub)
	if err != nil {
		writeFailure(w, Wrap(op, err))
		return
	}
	if receipt.Duplicate {
		writeJSON(w, http.StatusOK, ackResponse{Status: "duplicate", Receipt: receipt})
		return
	}
	writeJSON(w, http.StatusAccepted, ackResponse{Status: "accepted", Receipt: receipt})
}

// HandleList handles GET /roster requests.
func (h *RosterHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	const op = "api.list_roster"
	cards, err := h.deps.List(r.Context())
	if err != nil {
		writeFailure(w, Wrap(op, err))
		return
	}
	writeJSON(w, http.StatusOK, cards)
}

// HandleGet handles GET /roster/{id} requests.
func (h *RosterHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	const op = "api.get_scorecard"
	card, err := h.deps.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		writeFailure(w, Wrap(op, err))
		return
	}
	writeJSON(w, http.StatusOK, card)
}

// HandleDelete handles DELETE /roster/{id} requests.
func (h *RosterHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	const op = "api.remove_marine"
	if err := h.deps.Remove(r.Context(), r.PathValue("id")); err != nil {
		writeFailure(w, Wrap(op, err))
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
