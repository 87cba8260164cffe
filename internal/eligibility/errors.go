package eligibility

import (
	"errors"
	"net/http"
)

// Domain errors for eligibility operations.
var (
	ErrNotFound           = errors.New("ruleset not found")
	ErrDuplicate          = errors.New("ruleset already exists")
	ErrCheckNotFound      = errors.New("eligibility check not found")
	ErrFighterNotFound    = errors.New("fighter not found")
	ErrSuspensionNotFound = errors.New("suspension not found")
	ErrSuspensionLifted   = errors.New("suspension already lifted")
	ErrInvalidSuspension  = errors.New("invalid suspension")
)

// ConfigurationError indicates the evaluation was invoked against a broken
// policy surface: an unknown document type or a checklist entry outside the
// fixed vocabulary. It is fatal to the evaluation call and always
// propagates to the caller.
type ConfigurationError struct {
	Detail string
}

func (e *ConfigurationError) Error() string {
	return "eligibility configuration error: " + e.Detail
}

// DataQualityWarning flags an unmodeled bout-result method. The suspension
// tracker fails open to zero days for such methods, but the miss must be
// surfaced for logging and alerting, never swallowed.
type DataQualityWarning struct {
	Method string
}

func (w *DataQualityWarning) Error() string {
	return "unmodeled bout result method: " + w.Method
}

// MapHTTPStatus maps eligibility domain errors to HTTP status codes.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrCheckNotFound) ||
		errors.Is(err, ErrFighterNotFound) ||
		errors.Is(err, ErrSuspensionNotFound) {
		return http.StatusNotFound
	}
	if errors.Is(err, ErrDuplicate) || errors.Is(err, ErrSuspensionLifted) {
		return http.StatusConflict
	}
	if errors.Is(err, ErrInvalidSuspension) {
		return http.StatusBadRequest
	}
	var cfgErr *ConfigurationError
	if errors.As(err, &cfgErr) {
		return http.StatusUnprocessableEntity
	}
	return http.StatusInternalServerError
}
