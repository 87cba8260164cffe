package fighters

import (
	"errors"
	"net/http"
)

// Domain errors for fighter operations.
var (
	ErrNotFound           = errors.New("fighter not found")
	ErrDuplicate          = errors.New("fighter already exists")
	ErrInvalidFighter     = errors.New("invalid fighter")
	ErrUnknownWeightClass = errors.New("unknown weight class")
	ErrNoDisciplines      = errors.New("at least one discipline required")
	ErrUnknownDiscipline  = errors.New("unknown discipline")
	ErrCombatIDExhausted  = errors.New("combat id generation exhausted retries")
)

// MapHTTPStatus maps fighter domain errors to appropriate HTTP status codes.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrNotFound) {
		return http.StatusNotFound
	}
	if errors.Is(err, ErrDuplicate) {
		return http.StatusConflict
	}
	if errors.Is(err, ErrInvalidFighter) ||
		errors.Is(err, ErrUnknownWeightClass) ||
		errors.Is(err, ErrNoDisciplines) ||
		errors.Is(err, ErrUnknownDiscipline) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
