// Package fighters implements the fighter domain for Ringside.
// It provides types, data access, and business logic for fighter
// registration, CombatID assignment, record tracking, and verification.
package fighters

import (
	"slices"
	"time"

	"github.com/google/uuid"

	"ringside/internal/eligibility"
)

// WeightClasses is the fixed set of recognized weight classes.
var WeightClasses = []string{
	"Strawweight",
	"Flyweight",
	"Bantamweight",
	"Featherweight",
	"Lightweight",
	"Welterweight",
	"Middleweight",
	"Light Heavyweight",
	"Heavyweight",
}

// Disciplines is the fixed vocabulary of combat disciplines.
var Disciplines = []string{
	"MMA",
	"Boxing",
	"Muay Thai",
	"Kickboxing",
	"BJJ",
	"Wrestling",
	"Judo",
	"Karate",
	"Taekwondo",
}

// Fighter represents a registered combat-sports participant.
// EligibilityStatus is derived: it is only ever written by the eligibility
// engine, recomputed whenever a document or bout result changes.
type Fighter struct {
	ID                 uuid.UUID        `json:"id"`
	CombatID           string           `json:"combat_id"`
	Name               string           `json:"name"`
	DateOfBirth        eligibility.Date `json:"date_of_birth"`
	CountryOfBirth     string           `json:"country_of_birth"`
	CurrentResidence   string           `json:"current_residence"`
	WeightClass        string           `json:"weight_class"`
	Disciplines        []string         `json:"disciplines"`
	Record             string           `json:"record"`
	Gym                *string          `json:"gym,omitempty"`
	VerificationStatus string           `json:"verification_status"`
	EligibilityStatus  string           `json:"eligibility_status"`
	CreatedAt          time.Time        `json:"created_at"`
	UpdatedAt          time.Time        `json:"updated_at"`
}

// CreateCommand carries the data needed to register a new fighter.
// The CombatID is generated, not supplied.
type CreateCommand struct {
	Name             string           `json:"name"`
	DateOfBirth      eligibility.Date `json:"date_of_birth"`
	CountryOfBirth   string           `json:"country_of_birth"`
	CurrentResidence string           `json:"current_residence"`
	WeightClass      string           `json:"weight_class"`
	Disciplines      []string         `json:"disciplines"`
	Gym              *string          `json:"gym,omitempty"`
}

// Validate checks the command against the fixed vocabularies.
func (c CreateCommand) Validate() error {
	if c.Name == "" {
		return ErrInvalidFighter
	}
	if !slices.Contains(WeightClasses, c.WeightClass) {
		return ErrUnknownWeightClass
	}
	if len(c.Disciplines) == 0 {
		return ErrNoDisciplines
	}
	for _, d := range c.Disciplines {
		if !slices.Contains(Disciplines, d) {
			return ErrUnknownDiscipline
		}
	}
	return nil
}

// UpdateCommand carries mutable profile fields.
type UpdateCommand struct {
	Name             string   `json:"name"`
	CountryOfBirth   string   `json:"country_of_birth"`
	CurrentResidence string   `json:"current_residence"`
	WeightClass      string   `json:"weight_class"`
	Disciplines      []string `json:"disciplines"`
	Gym              *string  `json:"gym,omitempty"`
}

// Validate checks the command against the fixed vocabularies.
func (c UpdateCommand) Validate() error {
	return CreateCommand{
		Name:        c.Name,
		WeightClass: c.WeightClass,
		Disciplines: c.Disciplines,
	}.Validate()
}

// VerifyCommand sets a fighter's identity verification outcome.
type VerifyCommand struct {
	VerificationStatus eligibility.VerificationStatus `json:"verification_status"`
}
