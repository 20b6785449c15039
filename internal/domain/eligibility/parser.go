package eligibility

import (
	"regexp"
	"strings"
)

// Parser narrows ranged eligibility from a unit's free-text equipment note
type Parser interface {
	// RangedKeys returns the equipment keys named by a "ranged only" clause.
	// matched is false when the text has no such clause.
	RangedKeys(text string) (keys []string, matched bool)
}

// DefaultNames maps display names used in unit notes to equipment keys
var DefaultNames = map[string]string{
	"pistol":    "pistol",
	"autogun":   "autoPistol",
	"war cross": "battleCross",
}

// rangedOnly matches "Ranged only: A, B" and the Russian "Дальн. только A, B".
// Both words must stand alone. The captured list runs to the end of the
// sentence.
var rangedOnly = regexp.MustCompile(`(?i)(?:^|[^\p{L}])(?:ranged|дальн\.?)\s*:?\s*(?:only|только)(?:\s*:\s*|\s+)([^.\n]+)`)

var listSeparator = regexp.MustCompile(`[,;]`)

// TextParser resolves names in "ranged only" clauses through a dictionary.
// Names missing from the dictionary are dropped.
type TextParser struct {
	names map[string]string
}

// NewTextParser creates a TextParser. A nil dictionary means DefaultNames.
func NewTextParser(names map[string]string) *TextParser {
	if names == nil {
		names = DefaultNames
	}

	normalized := make(map[string]string, len(names))
	for name, key := range names {
		normalized[normalizeName(name)] = key
	}

	return &TextParser{names: normalized}
}

// RangedKeys implements Parser
func (p *TextParser) RangedKeys(text string) ([]string, bool) {
	m := rangedOnly.FindStringSubmatch(text)
	if m == nil {
		return nil, false
	}

	var keys []string
	for _, name := range listSeparator.Split(m[1], -1) {
		if key, ok := p.names[normalizeName(name)]; ok {
			keys = append(keys, key)
		}
	}
	return keys, true
}

func normalizeName(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(name)), " ")
}
