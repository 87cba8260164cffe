package fighters

import (
	"encoding/json"
	"fmt"
	"net/url"

	"ringside/pkg/query"
	"ringside/pkg/repository"
)

var projection = query.
	NewProjectionMap("public", "fighters", "f").
	Project("id", "ID").
	Project("combat_id", "CombatID").
	Project("name", "Name").
	Project("date_of_birth", "DateOfBirth").
	Project("country_of_birth", "CountryOfBirth").
	Project("current_residence", "CurrentResidence").
	Project("weight_class", "WeightClass").
	Project("disciplines", "Disciplines").
	Project("record", "Record").
	Project("gym", "Gym").
	Project("verification_status", "VerificationStatus").
	Project("eligibility_status", "EligibilityStatus").
	Project("created_at", "CreatedAt").
	Project("updated_at", "UpdatedAt")

var defaultSort = query.SortField{
	Field: "Name",
}

// Filters contains optional filtering criteria for fighter queries.
// Nil fields are ignored. Name uses case-insensitive contains matching;
// the rest use exact matching.
type Filters struct {
	Name               *string `json:"name,omitempty"`
	CombatID           *string `json:"combat_id,omitempty"`
	WeightClass        *string `json:"weight_class,omitempty"`
	VerificationStatus *string `json:"verification_status,omitempty"`
	EligibilityStatus  *string `json:"eligibility_status,omitempty"`
}

// Apply adds filter conditions to a query builder.
func (f Filters) Apply(b *query.Builder) *query.Builder {
	return b.
		WhereContains("Name", f.Name).
		WhereEquals("CombatID", f.CombatID).
		WhereEquals("WeightClass", f.WeightClass).
		WhereEquals("VerificationStatus", f.VerificationStatus).
		WhereEquals("EligibilityStatus", f.EligibilityStatus)
}

// FiltersFromQuery extracts filter values from URL query parameters.
func FiltersFromQuery(values url.Values) Filters {
	var f Filters

	if n := values.Get("name"); n != "" {
		f.Name = &n
	}

	if c := values.Get("combat_id"); c != "" {
		f.CombatID = &c
	}

	if w := values.Get("weight_class"); w != "" {
		f.WeightClass = &w
	}

	if v := values.Get("verification_status"); v != "" {
		f.VerificationStatus = &v
	}

	if e := values.Get("eligibility_status"); e != "" {
		f.EligibilityStatus = &e
	}

	return f
}

func scanFighter(s repository.Scanner) (Fighter, error) {
	var (
		f           Fighter
		disciplines []byte
	)

	err := s.Scan(
		&f.ID,
		&f.CombatID,
		&f.Name,
		&f.DateOfBirth,
		&f.CountryOfBirth,
		&f.CurrentResidence,
		&f.WeightClass,
		&disciplines,
		&f.Record,
		&f.Gym,
		&f.VerificationStatus,
		&f.EligibilityStatus,
		&f.CreatedAt,
		&f.UpdatedAt,
	)
	if err != nil {
		return Fighter{}, err
	}

	if err := json.Unmarshal(disciplines, &f.Disciplines); err != nil {
		return Fighter{}, fmt.Errorf("decode disciplines: %w", err)
	}

	return f, nil
}
