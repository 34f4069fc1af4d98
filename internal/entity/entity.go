// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package entity defines the canonical representation of a detected name
// mention. Producers (statistical and pattern recognizers) emit raw mentions;
// the constructor here turns them into scored, normalized, immutable values.
package entity

import "strings"

// Category classifies what kind of real-world thing a mention denotes.
type Category string

const (
	CategoryPerson       Category = "PERSON"
	CategoryOrganization Category = "ORGANIZATION"
	CategoryLocation     Category = "LOCATION"
	CategoryOther        Category = "OTHER"
)

// CategoryFromLabel maps a raw recognizer label to a Category. Statistical
// models emit a variety of tag sets (PERSON/PER, ORG, GPE/LOC); everything
// unrecognized becomes OTHER rather than being dropped.
func CategoryFromLabel(label string) Category {
	switch strings.ToUpper(strings.TrimSpace(label)) {
	case "PERSON", "PER", "PEOPLE":
		return CategoryPerson
	case "ORG", "ORGANIZATION":
		return CategoryOrganization
	case "GPE", "LOC", "LOCATION":
		return CategoryLocation
	default:
		return CategoryOther
	}
}

// Span locates a mention inside the source text it was detected in. Offsets
// are byte positions and are not meaningful across languages.
type Span struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// maxContextLen bounds the retained context window. Context is kept for
// explanation and audit only, never for scoring beyond keyword presence.
const maxContextLen = 200

// Entity is a detected name mention. Immutable once constructed: the
// normalized key is computed and the confidence clamped at creation time,
// never left to callers.
type Entity struct {
	Name          string   `json:"name"`
	NormalizedKey string   `json:"-"`
	Category      Category `json:"category"`
	Span          Span     `json:"span"`
	Language      string   `json:"language"`
	Source        string   `json:"source"`
	Confidence    float64  `json:"confidence"`
	Context       string   `json:"context,omitempty"`
}

// New constructs an Entity, computing the normalized key, clamping confidence
// into [0,1] and bounding the context window.
func New(name string, category Category, span Span, language, source string, confidence float64, context string) Entity {
	name = strings.TrimSpace(name)
	return Entity{
		Name:          name,
		NormalizedKey: NormalizeName(name),
		Category:      category,
		Span:          span,
		Language:      language,
		Source:        source,
		Confidence:    clamp01(confidence),
		Context:       truncateContext(context),
	}
}

// IsPersonLike reports whether the entity denotes an individual human, either
// by category or by a person-tagged producer source.
func (e Entity) IsPersonLike() bool {
	if e.Category == CategoryPerson {
		return true
	}
	return strings.Contains(strings.ToLower(e.Source), "person")
}

// Persons filters an entity sequence down to person-like entities.
func Persons(entities []Entity) []Entity {
	var persons []Entity
	for _, e := range entities {
		if e.IsPersonLike() {
			persons = append(persons, e)
		}
	}
	return persons
}

// Names returns the display names of a sequence of entities, in order.
func Names(entities []Entity) []string {
	names := make([]string, 0, len(entities))
	for _, e := range entities {
		names = append(names, e.Name)
	}
	return names
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func truncateContext(context string) string {
	context = strings.TrimSpace(context)
	runes := []rune(context)
	if len(runes) <= maxContextLen {
		return context
	}
	return string(runes[:maxContextLen]) + "..."
}
