// Package events implements the event and bout domain for Ringside:
// fight cards scheduled by promotions, the bouts on them, and the
// recording of bout results that feed fighter records and medical
// suspension windows.
package events

import (
	"slices"
	"time"

	"github.com/google/uuid"

	"ringside/internal/eligibility"
)

// Event lifecycle states.
const (
	EventScheduled = "scheduled"
	EventCompleted = "completed"
	EventCancelled = "cancelled"
)

// Bout lifecycle states.
const (
	BoutScheduled = "scheduled"
	BoutCompleted = "completed"
	BoutCancelled = "cancelled"
)

// Result methods describe how a completed bout ended. Winner-relative
// suspension windows are derived downstream; the stored method is
// fighter-neutral.
var ResultMethods = []string{
	"knockout",
	"tko",
	"submission",
	"decision",
	"draw",
	"no_contest",
}

// decisiveMethods are the result methods that require a winner.
var decisiveMethods = []string{"knockout", "tko", "submission", "decision"}

// Event represents a fight card sanctioned by a promotion.
type Event struct {
	ID             uuid.UUID        `json:"id"`
	OrganizationID uuid.UUID        `json:"organization_id"`
	Name           string           `json:"name"`
	Date           eligibility.Date `json:"date"`
	Venue          string           `json:"venue"`
	City           string           `json:"city"`
	Country        string           `json:"country"`
	Status         string           `json:"status"`
	CreatedAt      time.Time        `json:"created_at"`
	UpdatedAt      time.Time        `json:"updated_at"`
}

// Bout represents a single matchup on an event card. Position orders the
// card from the opener upward; higher positions sit closer to the main
// event. Result fields are null until the bout completes.
type Bout struct {
	ID              uuid.UUID  `json:"id"`
	EventID         uuid.UUID  `json:"event_id"`
	FighterAID      uuid.UUID  `json:"fighter_a_id"`
	FighterBID      uuid.UUID  `json:"fighter_b_id"`
	WeightClass     string     `json:"weight_class"`
	Discipline      string     `json:"discipline"`
	Position        int        `json:"position"`
	ScheduledRounds int        `json:"scheduled_rounds"`
	Status          string     `json:"status"`
	ResultMethod    *string    `json:"result_method,omitempty"`
	WinnerID        *uuid.UUID `json:"winner_id,omitempty"`
	ResultRound     *int       `json:"result_round,omitempty"`
	ResultTime      *string    `json:"result_time,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

// CreateEventCommand carries the data needed to schedule a new event.
type CreateEventCommand struct {
	OrganizationID uuid.UUID        `json:"organization_id"`
	Name           string           `json:"name"`
	Date           eligibility.Date `json:"date"`
	Venue          string           `json:"venue"`
	City           string           `json:"city"`
	Country        string           `json:"country"`
}

// Validate checks required event fields.
func (c CreateEventCommand) Validate() error {
	if c.OrganizationID == uuid.Nil || c.Name == "" || c.Date.IsZero() {
		return ErrInvalidEvent
	}
	return nil
}

// CreateBoutCommand carries the data needed to book a bout onto an event.
type CreateBoutCommand struct {
	FighterAID      uuid.UUID `json:"fighter_a_id"`
	FighterBID      uuid.UUID `json:"fighter_b_id"`
	WeightClass     string    `json:"weight_class"`
	Discipline      string    `json:"discipline"`
	Position        int       `json:"position"`
	ScheduledRounds int       `json:"scheduled_rounds"`
}

// Validate checks bout booking constraints.
func (c CreateBoutCommand) Validate() error {
	if c.FighterAID == uuid.Nil || c.FighterBID == uuid.Nil {
		return ErrInvalidBout
	}
	if c.FighterAID == c.FighterBID {
		return ErrSameFighter
	}
	if c.Position < 1 {
		return ErrInvalidBout
	}
	if c.ScheduledRounds < 1 {
		return ErrInvalidBout
	}
	return nil
}

// RecordResultCommand records how a bout ended. WinnerID is required for
// decisive methods and must be absent for draws and no contests.
type RecordResultCommand struct {
	Method   string     `json:"method"`
	WinnerID *uuid.UUID `json:"winner_id,omitempty"`
	Round    *int       `json:"round,omitempty"`
	Time     *string    `json:"time,omitempty"`
}

// Validate checks the result against the method vocabulary and its
// winner requirement.
func (c RecordResultCommand) Validate() error {
	if !slices.Contains(ResultMethods, c.Method) {
		return ErrUnknownMethod
	}
	if slices.Contains(decisiveMethods, c.Method) {
		if c.WinnerID == nil {
			return ErrWinnerRequired
		}
	} else if c.WinnerID != nil {
		return ErrWinnerForbidden
	}
	return nil
}
