package events

import (
	"errors"
	"net/http"
)

// Domain errors for event and bout operations.
var (
	ErrNotFound        = errors.New("event not found")
	ErrBoutNotFound    = errors.New("bout not found")
	ErrDuplicate       = errors.New("event already exists")
	ErrInvalidEvent    = errors.New("invalid event")
	ErrInvalidBout     = errors.New("invalid bout")
	ErrSameFighter     = errors.New("bout requires two distinct fighters")
	ErrUnknownMethod   = errors.New("unknown result method")
	ErrWinnerRequired  = errors.New("decisive result requires a winner")
	ErrWinnerForbidden = errors.New("non-decisive result cannot name a winner")
	ErrWinnerNotBooked = errors.New("winner is not a participant in the bout")
	ErrBoutCompleted   = errors.New("bout result already recorded")
)

// MapHTTPStatus maps event domain errors to appropriate HTTP status codes.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrNotFound) || errors.Is(err, ErrBoutNotFound) {
		return http.StatusNotFound
	}
	if errors.Is(err, ErrDuplicate) || errors.Is(err, ErrBoutCompleted) {
		return http.StatusConflict
	}
	if errors.Is(err, ErrInvalidEvent) ||
		errors.Is(err, ErrInvalidBout) ||
		errors.Is(err, ErrSameFighter) ||
		errors.Is(err, ErrUnknownMethod) ||
		errors.Is(err, ErrWinnerRequired) ||
		errors.Is(err, ErrWinnerForbidden) ||
		errors.Is(err, ErrWinnerNotBooked) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
