package eligibility

import (
	"time"

	"github.com/google/uuid"
)

// MedicalSuspension is a commission-issued suspension record: a manual
// hold placed on a fighter outside the bout-derived windows, carrying a
// reason, a minimum window, and optionally a clearance requirement that
// keeps it binding until a physician lifts it.
type MedicalSuspension struct {
	ID                uuid.UUID  `json:"id"`
	FighterID         uuid.UUID  `json:"fighter_id"`
	IssuedBy          *uuid.UUID `json:"issued_by,omitempty"`
	Reason            string     `json:"reason"`
	StartDate         Date       `json:"start_date"`
	EndDate           Date       `json:"end_date"`
	ClearanceRequired bool       `json:"clearance_required"`
	LiftReason        *string    `json:"lift_reason,omitempty"`
	LiftedAt          *time.Time `json:"lifted_at,omitempty"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
}

// Binding reports whether the suspension holds at asOf. A lifted
// suspension never binds. Clearance-required suspensions bind until
// explicitly lifted, regardless of the elapsed window; the rest lapse
// once asOf reaches the end date.
func (s *MedicalSuspension) Binding(asOf Date) bool {
	if s.LiftedAt != nil {
		return false
	}
	if s.ClearanceRequired {
		return true
	}
	return asOf.Before(s.EndDate)
}

// IssueSuspensionCommand carries the data needed to place a manual
// suspension on a fighter. StartDate defaults to today when zero; the
// end date is derived as StartDate + MinimumDays.
type IssueSuspensionCommand struct {
	FighterID         uuid.UUID  `json:"fighter_id"`
	IssuedBy          *uuid.UUID `json:"issued_by,omitempty"`
	Reason            string     `json:"reason"`
	StartDate         Date       `json:"start_date,omitzero"`
	MinimumDays       int        `json:"minimum_days"`
	ClearanceRequired bool       `json:"clearance_required"`
}

// Validate checks required fields and the minimum window.
func (c IssueSuspensionCommand) Validate() error {
	if c.FighterID == uuid.Nil || c.Reason == "" {
		return ErrInvalidSuspension
	}
	if c.MinimumDays < 1 {
		return ErrInvalidSuspension
	}
	return nil
}

// LiftSuspensionCommand clears a manual suspension with a recorded reason.
type LiftSuspensionCommand struct {
	Reason string `json:"reason"`
}

// Validate requires a lift reason for the audit trail.
func (c LiftSuspensionCommand) Validate() error {
	if c.Reason == "" {
		return ErrInvalidSuspension
	}
	return nil
}

// IssuedSuspension folds a fighter's commission-issued records into a
// single verdict: the binding record ending last wins. The verdict's
// Method carries the issuing reason.
func IssuedSuspension(records []MedicalSuspension, asOf Date) Suspension {
	var verdict Suspension
	for i := range records {
		s := &records[i]
		if !s.Binding(asOf) {
			continue
		}
		if !verdict.Active || s.EndDate.After(verdict.Until) {
			verdict = Suspension{
				Active: true,
				Until:  s.EndDate,
				Method: s.Reason,
			}
		}
	}
	return verdict
}
