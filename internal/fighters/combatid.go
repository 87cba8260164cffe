package fighters

import (
	"strings"
	"unicode"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

const (
	combatIDPrefixLen = 4
	combatIDSuffixLen = 6
	combatIDAlphabet  = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"
)

// SuffixSource produces the random portion of a CombatID. Injecting the
// source keeps identity generation reproducible in tests.
type SuffixSource func(length int) string

// NanoidSuffix is the default SuffixSource, backed by nanoid over the
// uppercase alphanumeric alphabet.
func NanoidSuffix(length int) string {
	return gonanoid.MustGenerate(combatIDAlphabet, length)
}

// GenerateCombatID builds a CombatID candidate: a deterministic 4-character
// prefix from the name (uppercased, spaces stripped, padded with 'X')
// followed by a 6-character suffix from the source. Uniqueness is not
// guaranteed here; the caller verifies global uniqueness and retries with
// a fresh suffix on collision.
func GenerateCombatID(name string, suffix SuffixSource) string {
	var (
		prefix strings.Builder
		count  int
	)
	for _, r := range name {
		if unicode.IsSpace(r) {
			continue
		}
		prefix.WriteRune(unicode.ToUpper(r))
		count++
		if count >= combatIDPrefixLen {
			break
		}
	}
	for ; count < combatIDPrefixLen; count++ {
		prefix.WriteByte('X')
	}

	return prefix.String() + suffix(combatIDSuffixLen)
}
