// Package organizations implements the organization domain for Ringside:
// the promotions, athletic commissions, and gyms that sanction events,
// publish rulesets, and employ fighters.
package organizations

import (
	"slices"
	"time"

	"github.com/google/uuid"

	"ringside/internal/eligibility"
)

// Types is the fixed vocabulary of organization kinds.
var Types = []string{
	"promotion",
	"commission",
	"gym",
}

// Organization represents a sanctioning or participating body.
// Jurisdiction is meaningful for commissions; it scopes the rulesets
// the body publishes.
type Organization struct {
	ID                 uuid.UUID                      `json:"id"`
	Name               string                         `json:"name"`
	Type               string                         `json:"type"`
	Jurisdiction       *string                        `json:"jurisdiction,omitempty"`
	ContactEmail       *string                        `json:"contact_email,omitempty"`
	Website            *string                        `json:"website,omitempty"`
	VerificationStatus eligibility.VerificationStatus `json:"verification_status"`
	CreatedAt          time.Time                      `json:"created_at"`
	UpdatedAt          time.Time                      `json:"updated_at"`
}

// CreateCommand carries the data needed to register a new organization.
type CreateCommand struct {
	Name         string  `json:"name"`
	Type         string  `json:"type"`
	Jurisdiction *string `json:"jurisdiction,omitempty"`
	ContactEmail *string `json:"contact_email,omitempty"`
	Website      *string `json:"website,omitempty"`
}

// Validate checks the command against the fixed type vocabulary.
func (c CreateCommand) Validate() error {
	if c.Name == "" {
		return ErrInvalidOrganization
	}
	if !slices.Contains(Types, c.Type) {
		return ErrUnknownType
	}
	return nil
}

// VerifyCommand sets an organization's verification outcome.
type VerifyCommand struct {
	VerificationStatus eligibility.VerificationStatus `json:"verification_status"`
}
