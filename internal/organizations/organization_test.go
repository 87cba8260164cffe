package organizations

import (
	"errors"
	"testing"
)

func TestCreateCommandValidate(t *testing.T) {
	jurisdiction := "Nevada"

	tests := []struct {
		name     string
		cmd      CreateCommand
		expected error
	}{
		{
			name: "valid promotion",
			cmd:  CreateCommand{Name: "Apex Fighting Championship", Type: "promotion"},
		},
		{
			name: "valid commission with jurisdiction",
			cmd:  CreateCommand{Name: "Nevada State Athletic Commission", Type: "commission", Jurisdiction: &jurisdiction},
		},
		{
			name: "valid gym",
			cmd:  CreateCommand{Name: "City Kickboxing", Type: "gym"},
		},
		{
			name:     "missing name",
			cmd:      CreateCommand{Type: "promotion"},
			expected: ErrInvalidOrganization,
		},
		{
			name:     "unknown type",
			cmd:      CreateCommand{Name: "Apex", Type: "federation"},
			expected: ErrUnknownType,
		},
		{
			name:     "empty type",
			cmd:      CreateCommand{Name: "Apex"},
			expected: ErrUnknownType,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cmd.Validate()
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
