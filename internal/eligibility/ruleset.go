package eligibility

import (
	"time"

	"github.com/google/uuid"
)

// Requirement is a single entry in a commission's ruleset: the document
// type a fighter must hold and whether it blocks eligibility.
type Requirement struct {
	Name           string       `json:"name"`
	Description    *string      `json:"description,omitempty"`
	DocumentType   DocumentType `json:"document_type"`
	Required       bool         `json:"required"`
	ExpirationDays *int         `json:"expiration_days,omitempty"`
	SortOrder      int          `json:"sort_order"`
}

// Ruleset is a commission's required-document checklist for a discipline.
// Requirements are versioned as a unit: every update bumps Version.
type Ruleset struct {
	ID           uuid.UUID     `json:"id"`
	CommissionID uuid.UUID     `json:"commission_id"`
	Discipline   string        `json:"discipline"`
	Name         string        `json:"name"`
	Description  *string       `json:"description,omitempty"`
	Requirements []Requirement `json:"requirements"`
	Version      int           `json:"version"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`
}

// Checklist returns the required document types in requirement order.
// Optional requirements do not gate eligibility and are excluded.
func (r *Ruleset) Checklist() []DocumentType {
	checklist := make([]DocumentType, 0, len(r.Requirements))
	for _, req := range r.Requirements {
		if req.Required {
			checklist = append(checklist, req.DocumentType)
		}
	}
	return checklist
}

// CreateRulesetCommand carries the data needed to register a new ruleset.
type CreateRulesetCommand struct {
	CommissionID uuid.UUID     `json:"commission_id"`
	Discipline   string        `json:"discipline"`
	Name         string        `json:"name"`
	Description  *string       `json:"description,omitempty"`
	Requirements []Requirement `json:"requirements"`
}

// UpdateRequirementsCommand replaces a ruleset's requirement list,
// bumping its version.
type UpdateRequirementsCommand struct {
	Requirements []Requirement `json:"requirements"`
}

// Check is a persisted eligibility evaluation: the verdict the engine
// produced for a fighter at a point in time, retained as audit history.
type Check struct {
	ID        uuid.UUID  `json:"id"`
	FighterID uuid.UUID  `json:"fighter_id"`
	RulesetID *uuid.UUID `json:"ruleset_id,omitempty"`
	Status    Status     `json:"status"`
	Reasons   []string   `json:"reasons"`
	AsOf      Date       `json:"as_of"`
	CheckedAt time.Time  `json:"checked_at"`
}
