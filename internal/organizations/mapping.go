package organizations

import (
	"net/url"

	"ringside/pkg/query"
	"ringside/pkg/repository"
)

var projection = query.
	NewProjectionMap("public", "organizations", "o").
	Project("id", "ID").
	Project("name", "Name").
	Project("type", "Type").
	Project("jurisdiction", "Jurisdiction").
	Project("contact_email", "ContactEmail").
	Project("website", "Website").
	Project("verification_status", "VerificationStatus").
	Project("created_at", "CreatedAt").
	Project("updated_at", "UpdatedAt")

var defaultSort = query.SortField{
	Field: "Name",
}

// Filters contains optional filtering criteria for organization queries.
// Nil fields are ignored. Name uses case-insensitive contains matching;
// the rest use exact matching.
type Filters struct {
	Name               *string `json:"name,omitempty"`
	Type               *string `json:"type,omitempty"`
	Jurisdiction       *string `json:"jurisdiction,omitempty"`
	VerificationStatus *string `json:"verification_status,omitempty"`
}

// Apply adds filter conditions to a query builder.
func (f Filters) Apply(b *query.Builder) *query.Builder {
	return b.
		WhereContains("Name", f.Name).
		WhereEquals("Type", f.Type).
		WhereEquals("Jurisdiction", f.Jurisdiction).
		WhereEquals("VerificationStatus", f.VerificationStatus)
}

// FiltersFromQuery extracts filter values from URL query parameters.
func FiltersFromQuery(values url.Values) Filters {
	var f Filters

	if n := values.Get("name"); n != "" {
		f.Name = &n
	}

	if t := values.Get("type"); t != "" {
		f.Type = &t
	}

	if j := values.Get("jurisdiction"); j != "" {
		f.Jurisdiction = &j
	}

	if v := values.Get("verification_status"); v != "" {
		f.VerificationStatus = &v
	}

	return f
}

func scanOrganization(s repository.Scanner) (Organization, error) {
	var o Organization
	err := s.Scan(
		&o.ID,
		&o.Name,
		&o.Type,
		&o.Jurisdiction,
		&o.ContactEmail,
		&o.Website,
		&o.VerificationStatus,
		&o.CreatedAt,
		&o.UpdatedAt,
	)
	return o, err
}
