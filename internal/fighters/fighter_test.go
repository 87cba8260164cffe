package fighters

import (
	"errors"
	"testing"
	"time"

	"ringside/internal/eligibility"
)

func TestCreateCommandValidate(t *testing.T) {
	valid := CreateCommand{
		Name:             "Amanda Nunes",
		DateOfBirth:      eligibility.NewDate(1988, time.May, 30),
		CountryOfBirth:   "Brazil",
		CurrentResidence: "USA",
		WeightClass:      "Bantamweight",
		Disciplines:      []string{"MMA", "BJJ"},
	}

	tests := []struct {
		name     string
		mutate   func(*CreateCommand)
		expected error
	}{
		{
			name:   "valid command",
			mutate: func(c *CreateCommand) {},
		},
		{
			name:     "missing name",
			mutate:   func(c *CreateCommand) { c.Name = "" },
			expected: ErrInvalidFighter,
		},
		{
			name:     "unknown weight class",
			mutate:   func(c *CreateCommand) { c.WeightClass = "Cruiserweight" },
			expected: ErrUnknownWeightClass,
		},
		{
			name:     "no disciplines",
			mutate:   func(c *CreateCommand) { c.Disciplines = nil },
			expected: ErrNoDisciplines,
		},
		{
			name:     "unknown discipline",
			mutate:   func(c *CreateCommand) { c.Disciplines = []string{"MMA", "Sumo"} },
			expected: ErrUnknownDiscipline,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := valid
			tt.mutate(&cmd)

			err := cmd.Validate()
			if tt.expected == nil {
				if err != nil {
					t.Errorf("expected valid command, got %v", err)
				}
				return
			}
			if !errors.Is(err, tt.expected) {
				t.Errorf("expected %v, got %v", tt.expected, err)
			}
		})
	}
}

func TestUpdateCommandValidate(t *testing.T) {
	cmd := UpdateCommand{
		Name:        "Amanda Nunes",
		WeightClass: "Featherweight",
		Disciplines: []string{"MMA"},
	}
	if err := cmd.Validate(); err != nil {
		t.Errorf("expected valid command, got %v", err)
	}

	cmd.WeightClass = "Openweight"
	if !errors.Is(cmd.Validate(), ErrUnknownWeightClass) {
		t.Error("expected unknown weight class to be rejected")
	}
}
