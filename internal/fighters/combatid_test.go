package fighters

import (
	"strings"
	"testing"
)

func fixedSuffix(s string) SuffixSource {
	return func(length int) string { return s[:length] }
}

func TestGenerateCombatID(t *testing.T) {
	tests := []struct {
		name     string
		fighter  string
		expected string
	}{
		{
			name:     "spaces stripped before prefix",
			fighter:  "Jon Jones",
			expected: "JONJABC123",
		},
		{
			name:     "long name truncates",
			fighter:  "Alexander Volkanovski",
			expected: "ALEXABC123",
		},
		{
			name:     "short name pads with X",
			fighter:  "Bo",
			expected: "BOXXABC123",
		},
		{
			name:     "empty name is all padding",
			fighter:  "",
			expected: "XXXXABC123",
		},
		{
			name:     "lowercase uppercased",
			fighter:  "conor mcgregor",
			expected: "CONOABC123",
		},
		{
			name:     "multiple spaces skipped",
			fighter:  "A B C D E",
			expected: "ABCDABC123",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id := GenerateCombatID(tt.fighter, fixedSuffix("ABC123"))
			if id != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, id)
			}
		})
	}
}

func TestGenerateCombatIDMultibyte(t *testing.T) {
	// Prefix length counts runes, not bytes.
	id := GenerateCombatID("José Aldo", fixedSuffix("ABC123"))
	if id != "JOSÉABC123" {
		t.Errorf("expected %q, got %q", "JOSÉABC123", id)
	}
}

func TestGenerateCombatIDDistribution(t *testing.T) {
	// A repeated name only differs in its random suffix; across many
	// draws the identifiers should be well-formed and collide at most
	// a handful of times.
	const runs = 1000

	seen := make(map[string]struct{}, runs)
	for i := 0; i < runs; i++ {
		id := GenerateCombatID("Jon Jones", NanoidSuffix)
		if len(id) != combatIDPrefixLen+combatIDSuffixLen {
			t.Fatalf("expected %d characters, got %d: %q", combatIDPrefixLen+combatIDSuffixLen, len(id), id)
		}
		if !strings.HasPrefix(id, "JONJ") {
			t.Fatalf("expected prefix %q, got %q", "JONJ", id)
		}
		for _, r := range id[combatIDPrefixLen:] {
			if !strings.ContainsRune(combatIDAlphabet, r) {
				t.Fatalf("suffix character %q outside the allowed alphabet in %q", r, id)
			}
		}
		seen[id] = struct{}{}
	}

	// 36^6 possible suffixes make collisions across 1000 draws rare;
	// tolerate a few so the test stays deterministic in practice.
	if len(seen) < runs-5 {
		t.Errorf("expected at least %d distinct identifiers, got %d", runs-5, len(seen))
	}
}

func TestNanoidSuffix(t *testing.T) {
	suffix := NanoidSuffix(6)
	if len(suffix) != 6 {
		t.Fatalf("expected 6 characters, got %d: %q", len(suffix), suffix)
	}
	for _, r := range suffix {
		if !strings.ContainsRune(combatIDAlphabet, r) {
			t.Errorf("character %q outside the allowed alphabet", r)
		}
	}
}
