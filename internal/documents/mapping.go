package documents

import (
	"net/url"

	"github.com/google/uuid"

	"ringside/pkg/query"
	"ringside/pkg/repository"
)

var projection = query.
	NewProjectionMap("public", "documents", "d").
	Project("id", "ID").
	Project("fighter_id", "FighterID").
	Project("type", "Type").
	Project("status", "Status").
	Project("filename", "Filename").
	Project("content_type", "ContentType").
	Project("size_bytes", "SizeBytes").
	Project("page_count", "PageCount").
	Project("storage_key", "StorageKey").
	Project("issue_date", "IssueDate").
	Project("expiration_date", "ExpirationDate").
	Project("ai_confidence", "AIConfidence").
	Project("provider", "Provider").
	Project("notes", "Notes").
	Project("version", "Version").
	Project("uploaded_at", "UploadedAt").
	Project("updated_at", "UpdatedAt")

var defaultSort = query.SortField{
	Field:      "UploadedAt",
	Descending: true,
}

// Filters contains optional filtering criteria for document queries.
// Nil fields are ignored. FighterID, Type, and Status use exact
// matching. Filename and Provider use case-insensitive contains matching.
type Filters struct {
	FighterID *uuid.UUID `json:"fighter_id,omitempty"`
	Type      *string    `json:"type,omitempty"`
	Status    *string    `json:"status,omitempty"`
	Filename  *string    `json:"filename,omitempty"`
	Provider  *string    `json:"provider,omitempty"`
}

// Apply adds filter conditions to a query builder.
func (f Filters) Apply(b *query.Builder) *query.Builder {
	return b.
		WhereEquals("FighterID", f.FighterID).
		WhereEquals("Type", f.Type).
		WhereEquals("Status", f.Status).
		WhereContains("Filename", f.Filename).
		WhereContains("Provider", f.Provider)
}

// FiltersFromQuery extracts filter values from URL query parameters.
func FiltersFromQuery(values url.Values) Filters {
	var f Filters

	if fid := values.Get("fighter_id"); fid != "" {
		if id, err := uuid.Parse(fid); err == nil {
			f.FighterID = &id
		}
	}

	if t := values.Get("type"); t != "" {
		f.Type = &t
	}

	if s := values.Get("status"); s != "" {
		f.Status = &s
	}

	if fn := values.Get("filename"); fn != "" {
		f.Filename = &fn
	}

	if p := values.Get("provider"); p != "" {
		f.Provider = &p
	}

	return f
}

func scanDocument(s repository.Scanner) (Document, error) {
	var d Document
	err := s.Scan(
		&d.ID,
		&d.FighterID,
		&d.Type,
		&d.Status,
		&d.Filename,
		&d.ContentType,
		&d.SizeBytes,
		&d.PageCount,
		&d.StorageKey,
		&d.IssueDate,
		&d.ExpirationDate,
		&d.AIConfidence,
		&d.Provider,
		&d.Notes,
		&d.Version,
		&d.UploadedAt,
		&d.UpdatedAt,
	)
	return d, err
}
