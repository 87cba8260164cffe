package events

import (
	"net/url"

	"github.com/google/uuid"

	"ringside/pkg/query"
	"ringside/pkg/repository"
)

var projection = query.
	NewProjectionMap("public", "events", "e").
	Project("id", "ID").
	Project("organization_id", "OrganizationID").
	Project("name", "Name").
	Project("date", "Date").
	Project("venue", "Venue").
	Project("city", "City").
	Project("country", "Country").
	Project("status", "Status").
	Project("created_at", "CreatedAt").
	Project("updated_at", "UpdatedAt")

var defaultSort = query.SortField{
	Field:      "Date",
	Descending: true,
}

// Filters contains optional filtering criteria for event queries.
// Nil fields are ignored. Name, Venue, and City use case-insensitive
// contains matching; the rest use exact matching.
type Filters struct {
	OrganizationID *uuid.UUID `json:"organization_id,omitempty"`
	Name           *string    `json:"name,omitempty"`
	Venue          *string    `json:"venue,omitempty"`
	City           *string    `json:"city,omitempty"`
	Country        *string    `json:"country,omitempty"`
	Status         *string    `json:"status,omitempty"`
}

// Apply adds filter conditions to a query builder.
func (f Filters) Apply(b *query.Builder) *query.Builder {
	return b.
		WhereEquals("OrganizationID", f.OrganizationID).
		WhereContains("Name", f.Name).
		WhereContains("Venue", f.Venue).
		WhereContains("City", f.City).
		WhereEquals("Country", f.Country).
		WhereEquals("Status", f.Status)
}

// FiltersFromQuery extracts filter values from URL query parameters.
func FiltersFromQuery(values url.Values) Filters {
	var f Filters

	if oid := values.Get("organization_id"); oid != "" {
		if id, err := uuid.Parse(oid); err == nil {
			f.OrganizationID = &id
		}
	}

	if n := values.Get("name"); n != "" {
		f.Name = &n
	}

	if v := values.Get("venue"); v != "" {
		f.Venue = &v
	}

	if c := values.Get("city"); c != "" {
		f.City = &c
	}

	if co := values.Get("country"); co != "" {
		f.Country = &co
	}

	if s := values.Get("status"); s != "" {
		f.Status = &s
	}

	return f
}

func scanEvent(s repository.Scanner) (Event, error) {
	var e Event
	err := s.Scan(
		&e.ID,
		&e.OrganizationID,
		&e.Name,
		&e.Date,
		&e.Venue,
		&e.City,
		&e.Country,
		&e.Status,
		&e.CreatedAt,
		&e.UpdatedAt,
	)
	return e, err
}

func scanBout(s repository.Scanner) (Bout, error) {
	var b Bout
	err := s.Scan(
		&b.ID,
		&b.EventID,
		&b.FighterAID,
		&b.FighterBID,
		&b.WeightClass,
		&b.Discipline,
		&b.Position,
		&b.ScheduledRounds,
		&b.Status,
		&b.ResultMethod,
		&b.WinnerID,
		&b.ResultRound,
		&b.ResultTime,
		&b.CreatedAt,
		&b.UpdatedAt,
	)
	return b, err
}
