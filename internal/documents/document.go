// Package documents implements the compliance document domain for
// Ringside. It provides types, data access, and business logic for
// medical and licensing document upload, review workflow, versioning,
// and blob storage integration.
package documents

import (
	"time"

	"github.com/google/uuid"

	"ringside/internal/eligibility"
)

// Document represents a medical or licensing artifact attached to a
// fighter. Version increments per (fighter, type); a re-uploaded blood
// test supersedes prior versions for eligibility purposes only once it
// is verified. Expiration is stored, never recomputed here: freshness
// relative to a date is the eligibility engine's concern.
type Document struct {
	ID             uuid.UUID                  `json:"id"`
	FighterID      uuid.UUID                  `json:"fighter_id"`
	Type           eligibility.DocumentType   `json:"type"`
	Status         eligibility.DocumentStatus `json:"status"`
	Filename       string                     `json:"filename"`
	ContentType    string                     `json:"content_type"`
	SizeBytes      int64                      `json:"size_bytes"`
	PageCount      *int                       `json:"page_count"`
	StorageKey     string                     `json:"storage_key"`
	IssueDate      *eligibility.Date          `json:"issue_date,omitempty"`
	ExpirationDate *eligibility.Date          `json:"expiration_date,omitempty"`
	AIConfidence   *float64                   `json:"ai_confidence,omitempty"`
	Provider       *string                    `json:"provider,omitempty"`
	Notes          *string                    `json:"notes,omitempty"`
	Version        int                        `json:"version"`
	UploadedAt     time.Time                  `json:"uploaded_at"`
	UpdatedAt      time.Time                  `json:"updated_at"`
}

// CreateCommand carries the data needed to upload and register a new
// document. Data holds the raw file bytes. PageCount is optional and may
// be extracted by the caller via pdfcpu; nil values are stored as NULL.
type CreateCommand struct {
	FighterID      uuid.UUID
	Type           eligibility.DocumentType
	Data           []byte
	Filename       string
	ContentType    string
	IssueDate      *eligibility.Date
	ExpirationDate *eligibility.Date
	Provider       *string
	PageCount      *int
}

// Validate checks the command against the document type vocabulary.
func (c CreateCommand) Validate() error {
	if c.FighterID == uuid.Nil || c.Filename == "" || len(c.Data) == 0 {
		return ErrInvalidFile
	}
	if !eligibility.KnownDocumentType(c.Type) {
		return ErrUnknownType
	}
	return nil
}

// ReviewCommand advances a document through its verification workflow.
// ExpirationDate may be supplied by the reviewer; when absent on
// verification, it is derived from the issue date and the expiration
// policy for the document type. AIConfidence is reported by the upstream
// extraction collaborator when one populated the review fields.
type ReviewCommand struct {
	Status         eligibility.DocumentStatus `json:"status"`
	IssueDate      *eligibility.Date          `json:"issue_date,omitempty"`
	ExpirationDate *eligibility.Date          `json:"expiration_date,omitempty"`
	AIConfidence   *float64                   `json:"ai_confidence,omitempty"`
	Notes          *string                    `json:"notes,omitempty"`
}

// allowedTransition reports whether a stored status may move to next.
// Expired is a computed freshness state, never written through review.
func allowedTransition(from, to eligibility.DocumentStatus) bool {
	switch from {
	case eligibility.DocumentPending:
		return to == eligibility.DocumentProcessing ||
			to == eligibility.DocumentVerified ||
			to == eligibility.DocumentRejected
	case eligibility.DocumentProcessing:
		return to == eligibility.DocumentVerified ||
			to == eligibility.DocumentRejected
	default:
		return false
	}
}
