package fighters

import (
	"fmt"
	"strconv"
	"strings"
)

// Record holds a fighter's win-loss-draw totals.
type Record struct {
	Wins   int `json:"wins"`
	Losses int `json:"losses"`
	Draws  int `json:"draws"`
}

// FormatRecord renders totals in canonical "W-L" form, appending draws
// only when non-zero.
func FormatRecord(wins, losses, draws int) string {
	if draws > 0 {
		return fmt.Sprintf("%d-%d-%d", wins, losses, draws)
	}
	return fmt.Sprintf("%d-%d", wins, losses)
}

// String renders the record in canonical form.
func (r Record) String() string {
	return FormatRecord(r.Wins, r.Losses, r.Draws)
}

// ParseRecord decodes a "W-L" or "W-L-D" string. Record display is
// informational, not safety-critical, so malformed input degrades to
// zero-valued fields rather than failing: missing draws default to zero
// and non-numeric segments parse as zero.
func ParseRecord(s string) Record {
	parts := strings.Split(s, "-")

	segment := func(i int) int {
		if i >= len(parts) {
			return 0
		}
		n, err := strconv.Atoi(strings.TrimSpace(parts[i]))
		if err != nil || n < 0 {
			return 0
		}
		return n
	}

	return Record{
		Wins:   segment(0),
		Losses: segment(1),
		Draws:  segment(2),
	}
}
