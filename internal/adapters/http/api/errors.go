package api

import (
	"errors"
	"fmt"
	"net/http"

	repository "github.com/okian/proctor/internal/adapters/repository"
	"github.com/okian/proctor/internal/domain/bodycomp"
	"github.com/okian/proctor/internal/domain/model"
	"github.com/okian/proctor/internal/domain/scoring"
	"github.com/okian/proctor/internal/domain/tables"
	"github.com/okian/proctor/internal/domain/types"
)

// ErrBadRequest marks malformed requests rejected by the handlers.
// Pipeline failures keep their types sentinels.
var ErrBadRequest = errors.New("bad request")

// Error records the handler operation and the kind of failure.
type Error struct {
	Op   string
	Kind error
	Err  error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return e.Op + ": " + e.Kind.Error()
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

// NewKind returns an error of kind raised by op.
func NewKind(op string, kind error) error {
	return &Error{Op: op, Kind: kind}
}

// WrapKind tags err with op and kind.
func WrapKind(op string, kind, err error) error {
	return &Error{Op: op, Kind: kind, Err: err}
}

// Wrap tags err with op, keeping its own kind.
func Wrap(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}

// classify maps an error onto an HTTP status and response code.
func classify(err error) (int, string) {
	switch {
	case errors.Is(err, types.ErrBackpressure):
		return http.StatusTooManyRequests, "backpressure"
	case errors.Is(err, types.ErrNotStarted):
		return http.StatusServiceUnavailable, "unavailable"
	case errors.Is(err, repository.ErrNotFound), errors.Is(err, repository.ErrNotRanked):
		return http.StatusNotFound, "not_found"
	case errors.Is(err, tables.ErrMissingEntry):
		return http.StatusUnprocessableEntity, "missing_table_entry"
	case errors.Is(err, bodycomp.ErrNoHeightStandard):
		return http.StatusUnprocessableEntity, "no_height_standard"
	case errors.Is(err, ErrBadRequest),
		errors.Is(err, tables.ErrInvalidGender),
		errors.Is(err, scoring.ErrInvalidSelection),
		errors.Is(err, scoring.ErrInvalidInput),
		errors.Is(err, bodycomp.ErrInvalidMeasurement),
		errors.Is(err, model.ErrInvalidMarine),
		errors.Is(err, model.ErrEmptySubmission),
		errors.Is(err, repository.ErrInvalidLimit),
		errors.Is(err, repository.ErrInvalidBoard),
		errors.Is(err, repository.ErrEmptyID):
		return http.StatusBadRequest, "bad_request"
	default:
		return http.StatusInternalServerError, "internal_error"
	}
}
