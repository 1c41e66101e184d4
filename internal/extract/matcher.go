// Package extract turns raw posting text into canonical skill mentions by
// exact phrase matching against the taxonomy. It is the reference
// implementation of the extraction collaborator the engine consumes; any
// other implementation of Extractor can replace it.
package extract

import (
	"sort"
	"strings"
	"unicode"

	"github.com/agenthands/skillgraph/internal/core/model"
)

// Extractor is the narrow interface the engine's callers depend on: a pure
// function from text to canonical skill ids.
type Extractor interface {
	Extract(text string) []string
}

// PhraseMatcher matches taxonomy skill phrases case-insensitively on token
// boundaries, so "power bi" and "Power BI" both resolve to the canonical
// "Power BI" and "scalpel" never matches "scala".
type PhraseMatcher struct {
	phrases   map[string]string // joined lowercase tokens -> canonical name
	maxTokens int
}

var _ Extractor = (*PhraseMatcher)(nil)

func NewPhraseMatcher(taxonomy *model.Taxonomy) *PhraseMatcher {
	m := &PhraseMatcher{phrases: make(map[string]string)}
	for _, name := range taxonomy.Vocabulary() {
		tokens := tokenize(name)
		if len(tokens) == 0 {
			continue
		}
		m.phrases[strings.Join(tokens, " ")] = name
		if len(tokens) > m.maxTokens {
			m.maxTokens = len(tokens)
		}
	}
	return m
}

// Extract returns the sorted set of canonical skills mentioned in text.
func (m *PhraseMatcher) Extract(text string) []string {
	tokens := tokenize(text)
	found := make(map[string]struct{})

	for i := range tokens {
		for n := 1; n <= m.maxTokens && i+n <= len(tokens); n++ {
			key := strings.Join(tokens[i:i+n], " ")
			if name, ok := m.phrases[key]; ok {
				found[name] = struct{}{}
			}
		}
	}

	out := make([]string, 0, len(found))
	for name := range found {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// tokenize lowercases and splits on non-word runes, keeping + # . inside
// tokens so "c++", "c#" and "node.js" survive, with trailing dots dropped.
func tokenize(text string) []string {
	var tokens []string
	var current strings.Builder

	flush := func() {
		t := strings.TrimRight(current.String(), ".")
		current.Reset()
		if t != "" {
			tokens = append(tokens, t)
		}
	}

	for _, r := range strings.ToLower(text) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '+' || r == '#' || r == '.' {
			current.WriteRune(r)
		} else {
			flush()
		}
	}
	flush()
	return tokens
}
