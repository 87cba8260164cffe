package eligibility

import (
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/google/uuid"

	"ringside/pkg/query"
	"ringside/pkg/repository"
)

var rulesetProjection = query.
	NewProjectionMap("public", "rulesets", "r").
	Project("id", "ID").
	Project("commission_id", "CommissionID").
	Project("discipline", "Discipline").
	Project("name", "Name").
	Project("description", "Description").
	Project("requirements", "Requirements").
	Project("version", "Version").
	Project("created_at", "CreatedAt").
	Project("updated_at", "UpdatedAt")

var rulesetDefaultSort = query.SortField{
	Field: "Name",
}

var checkProjection = query.
	NewProjectionMap("public", "eligibility_checks", "c").
	Project("id", "ID").
	Project("fighter_id", "FighterID").
	Project("ruleset_id", "RulesetID").
	Project("status", "Status").
	Project("reasons", "Reasons").
	Project("as_of", "AsOf").
	Project("checked_at", "CheckedAt")

var checkDefaultSort = query.SortField{
	Field:      "CheckedAt",
	Descending: true,
}

var suspensionProjection = query.
	NewProjectionMap("public", "suspensions", "s").
	Project("id", "ID").
	Project("fighter_id", "FighterID").
	Project("issued_by", "IssuedBy").
	Project("reason", "Reason").
	Project("start_date", "StartDate").
	Project("end_date", "EndDate").
	Project("clearance_required", "ClearanceRequired").
	Project("lift_reason", "LiftReason").
	Project("lifted_at", "LiftedAt").
	Project("created_at", "CreatedAt").
	Project("updated_at", "UpdatedAt")

var suspensionDefaultSort = query.SortField{
	Field:      "EndDate",
	Descending: true,
}

// RulesetFilters contains optional filtering criteria for ruleset queries.
// Nil fields are ignored.
type RulesetFilters struct {
	CommissionID *uuid.UUID `json:"commission_id,omitempty"`
	Discipline   *string    `json:"discipline,omitempty"`
}

// Apply adds filter conditions to a query builder.
func (f RulesetFilters) Apply(b *query.Builder) *query.Builder {
	return b.
		WhereEquals("CommissionID", f.CommissionID).
		WhereEquals("Discipline", f.Discipline)
}

// RulesetFiltersFromQuery extracts filter values from URL query parameters.
func RulesetFiltersFromQuery(values url.Values) RulesetFilters {
	var f RulesetFilters

	if c := values.Get("commission_id"); c != "" {
		if id, err := uuid.Parse(c); err == nil {
			f.CommissionID = &id
		}
	}

	if d := values.Get("discipline"); d != "" {
		f.Discipline = &d
	}

	return f
}

func scanRuleset(s repository.Scanner) (Ruleset, error) {
	var (
		rs           Ruleset
		requirements []byte
	)

	err := s.Scan(
		&rs.ID,
		&rs.CommissionID,
		&rs.Discipline,
		&rs.Name,
		&rs.Description,
		&requirements,
		&rs.Version,
		&rs.CreatedAt,
		&rs.UpdatedAt,
	)
	if err != nil {
		return Ruleset{}, err
	}

	if err := json.Unmarshal(requirements, &rs.Requirements); err != nil {
		return Ruleset{}, fmt.Errorf("decode requirements: %w", err)
	}

	return rs, nil
}

func scanCheck(s repository.Scanner) (Check, error) {
	var (
		c       Check
		reasons []byte
	)

	err := s.Scan(
		&c.ID,
		&c.FighterID,
		&c.RulesetID,
		&c.Status,
		&reasons,
		&c.AsOf,
		&c.CheckedAt,
	)
	if err != nil {
		return Check{}, err
	}

	if err := json.Unmarshal(reasons, &c.Reasons); err != nil {
		return Check{}, fmt.Errorf("decode reasons: %w", err)
	}

	return c, nil
}

func scanDocumentEvidence(s repository.Scanner) (DocumentEvidence, error) {
	var d DocumentEvidence
	err := s.Scan(&d.Type, &d.Status, &d.ExpirationDate)
	return d, err
}

func scanSuspension(s repository.Scanner) (MedicalSuspension, error) {
	var m MedicalSuspension
	err := s.Scan(
		&m.ID,
		&m.FighterID,
		&m.IssuedBy,
		&m.Reason,
		&m.StartDate,
		&m.EndDate,
		&m.ClearanceRequired,
		&m.LiftReason,
		&m.LiftedAt,
		&m.CreatedAt,
		&m.UpdatedAt,
	)
	return m, err
}
