package model

import (
	"sort"
	"strings"
)

// TaxonomySkill is one entry of the skill taxonomy.
type TaxonomySkill struct {
	Name     string `toml:"name" json:"name"`
	Category string `toml:"category" json:"category,omitempty"`
}

// Taxonomy is the canonical skill vocabulary. Skill names are case-insensitive:
// "python", "Python" and " PYTHON " all resolve to the same canonical entry.
// The vocabulary order is fixed at construction time so job vectors built from
// the same taxonomy are always comparable.
type Taxonomy struct {
	skills     []TaxonomySkill
	vocabulary []string          // canonical names, sorted
	canonical  map[string]string // normalized key -> canonical name
	categories map[string]string // canonical name -> category
}

// NewTaxonomy builds a taxonomy from skill entries. Later duplicates of the
// same normalized name are ignored.
func NewTaxonomy(skills []TaxonomySkill) *Taxonomy {
	t := &Taxonomy{
		canonical:  make(map[string]string, len(skills)),
		categories: make(map[string]string, len(skills)),
	}
	for _, s := range skills {
		name := strings.TrimSpace(s.Name)
		if name == "" {
			continue
		}
		key := NormalizeSkill(name)
		if _, ok := t.canonical[key]; ok {
			continue
		}
		t.canonical[key] = name
		t.categories[name] = s.Category
		t.skills = append(t.skills, TaxonomySkill{Name: name, Category: s.Category})
		t.vocabulary = append(t.vocabulary, name)
	}
	sort.Strings(t.vocabulary)
	return t
}

// NormalizeSkill maps a raw mention to its lookup key: trimmed and lowercased.
func NormalizeSkill(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Canonical resolves a raw skill mention to its canonical name.
// Returns false if the skill is not part of the taxonomy.
func (t *Taxonomy) Canonical(raw string) (string, bool) {
	name, ok := t.canonical[NormalizeSkill(raw)]
	return name, ok
}

// Category returns the category of a canonical skill name, or "" if unknown.
func (t *Taxonomy) Category(name string) string {
	return t.categories[name]
}

// Vocabulary returns the full ordered skill vocabulary (sorted canonical names).
// Callers must not modify the returned slice.
func (t *Taxonomy) Vocabulary() []string {
	return t.vocabulary
}

// Skills returns the taxonomy entries in insertion order.
func (t *Taxonomy) Skills() []TaxonomySkill {
	return t.skills
}

// Len returns the vocabulary size.
func (t *Taxonomy) Len() int {
	return len(t.vocabulary)
}
