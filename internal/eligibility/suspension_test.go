package eligibility

import (
	"testing"
	"time"
)

func TestLatestBout(t *testing.T) {
	day1 := NewDate(2026, time.January, 10)
	day2 := NewDate(2026, time.February, 20)

	tests := []struct {
		name     string
		bouts    []BoutOutcome
		expected *BoutOutcome
	}{
		{
			name:     "empty history",
			bouts:    nil,
			expected: nil,
		},
		{
			name: "latest date wins",
			bouts: []BoutOutcome{
				{Date: day2, Position: 1, Method: "decision_win"},
				{Date: day1, Position: 10, Method: "knockout_loss"},
			},
			expected: &BoutOutcome{Date: day2, Position: 1, Method: "decision_win"},
		},
		{
			name: "position breaks same-day ties",
			bouts: []BoutOutcome{
				{Date: day1, Position: 3, Method: "decision_win"},
				{Date: day1, Position: 7, Method: "tko_loss"},
				{Date: day1, Position: 5, Method: "draw"},
			},
			expected: &BoutOutcome{Date: day1, Position: 7, Method: "tko_loss"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			latest := LatestBout(tt.bouts)
			if tt.expected == nil {
				if latest != nil {
					t.Errorf("expected nil, got %+v", latest)
				}
				return
			}
			if latest == nil {
				t.Fatal("expected a bout, got nil")
			}
			if !latest.Date.Equal(tt.expected.Date) || latest.Position != tt.expected.Position || latest.Method != tt.expected.Method {
				t.Errorf("expected %+v, got %+v", tt.expected, latest)
			}
		})
	}
}

func TestActiveSuspension(t *testing.T) {
	policy := DefaultSuspensionPolicy()
	boutDate := NewDate(2026, time.February, 1)

	tests := []struct {
		name      string
		last      *BoutOutcome
		asOf      Date
		active    bool
		until     Date
		warning   bool
	}{
		{
			name: "no bout history",
			last: nil,
			asOf: boutDate,
		},
		{
			name:   "knockout loss inside window",
			last:   &BoutOutcome{Date: boutDate, Method: MethodKnockoutLoss},
			asOf:   boutDate.AddDays(15),
			active: true,
			until:  boutDate.AddDays(30),
		},
		{
			name: "knockout loss window elapsed",
			last: &BoutOutcome{Date: boutDate, Method: MethodKnockoutLoss},
			asOf: boutDate.AddDays(30),
		},
		{
			name:   "day before lapse still active",
			last:   &BoutOutcome{Date: boutDate, Method: MethodDecisionLoss},
			asOf:   boutDate.AddDays(6),
			active: true,
			until:  boutDate.AddDays(7),
		},
		{
			name: "win carries no suspension or warning",
			last: &BoutOutcome{Date: boutDate, Method: "knockout_win"},
			asOf: boutDate,
		},
		{
			name: "draw carries no suspension or warning",
			last: &BoutOutcome{Date: boutDate, Method: "draw"},
			asOf: boutDate,
		},
		{
			name:    "unmodeled method fails open with warning",
			last:    &BoutOutcome{Date: boutDate, Method: "doctor_stoppage"},
			asOf:    boutDate,
			warning: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			suspension, warning := ActiveSuspension(tt.last, tt.asOf, policy)

			if suspension.Active != tt.active {
				t.Errorf("expected active=%v, got %v", tt.active, suspension.Active)
			}
			if tt.active && !suspension.Until.Equal(tt.until) {
				t.Errorf("expected until %s, got %s", tt.until, suspension.Until)
			}
			if (warning != nil) != tt.warning {
				t.Errorf("expected warning=%v, got %v", tt.warning, warning)
			}
		})
	}
}

func TestActiveSuspensionWarningDetail(t *testing.T) {
	boutDate := NewDate(2026, time.February, 1)
	_, warning := ActiveSuspension(
		&BoutOutcome{Date: boutDate, Method: "forfeit"},
		boutDate,
		DefaultSuspensionPolicy(),
	)
	if warning == nil {
		t.Fatal("expected a data quality warning")
	}
	if warning.Method != "forfeit" {
		t.Errorf("expected method %q in warning, got %q", "forfeit", warning.Method)
	}
}
