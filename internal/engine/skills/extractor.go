// Package skills extracts canonical skill names from free text using a fixed
// vocabulary with alias variants, and defines the fuzzy equivalence rule
// shared with the role-fit scorer.
package skills

import (
	"regexp"
	"strings"
)

type skillPattern struct {
	name     string
	patterns []*regexp.Regexp
}

// Extractor matches the skill vocabulary against resume text. It compiles
// all patterns once and is immutable afterwards, so a single instance can be
// shared across concurrent analyses.
type Extractor struct {
	entries []skillPattern
}

// NewExtractor compiles the built-in vocabulary and alias variants.
func NewExtractor() *Extractor {
	entries := make([]skillPattern, 0, len(vocabulary))
	for _, name := range vocabulary {
		lower := strings.ToLower(name)
		patterns := []*regexp.Regexp{wordPattern(lower)}
		for _, alias := range variations[lower] {
			patterns = append(patterns, wordPattern(alias))
		}
		entries = append(entries, skillPattern{name: name, patterns: patterns})
	}
	return &Extractor{entries: entries}
}

func wordPattern(term string) *regexp.Regexp {
	return regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(term) + `\b`)
}

// Extract returns the deduplicated set of canonical skill names found in
// text. It never fails; text with no recognizable skills yields an empty
// slice. Vocabulary order is preserved in the result.
func (e *Extractor) Extract(text string) []string {
	if text == "" {
		return nil
	}

	var found []string
	seen := make(map[string]bool)
	for _, entry := range e.entries {
		if seen[entry.name] {
			continue
		}
		for _, p := range entry.patterns {
			if p.MatchString(text) {
				found = append(found, entry.name)
				seen[entry.name] = true
				break
			}
		}
	}
	return found
}

// Equivalent reports whether two skill strings refer to the same skill:
// either one is a case-insensitive substring of the other, or both belong to
// the same alias pair.
func Equivalent(a, b string) bool {
	la := strings.ToLower(a)
	lb := strings.ToLower(b)

	if strings.Contains(la, lb) || strings.Contains(lb, la) {
		return true
	}

	for _, pair := range aliasPairs {
		aIn := la == pair[0] || la == pair[1]
		bIn := lb == pair[0] || lb == pair[1]
		if aIn && bIn {
			return true
		}
	}
	return false
}
