// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package match compares a target name against a deduplicated entity set and
// produces the final screening decision when no generative judgment is
// available.
package match

import (
	"strings"

	"adverse-screen/internal/entity"
)

// Kind distinguishes how a candidate matched the target.
type Kind string

const (
	KindExact   Kind = "EXACT"
	KindPartial Kind = "PARTIAL"
)

// Candidate pairs an entity with the way it matched the target. Candidates
// are produced per query and discarded once a decision is computed.
type Candidate struct {
	Entity entity.Entity
	Kind   Kind
}

// Matches holds the exact and partial candidates for one target query.
type Matches struct {
	Exact   []entity.Entity
	Partial []entity.Entity
}

// FindMatches computes exact and fuzzy candidates for a target name against a
// person-like entity set. Matching is case- and diacritic-insensitive via
// normalization, but otherwise exact-substring, never phonetic.
//
// EXACT: the entity's normalized key equals the normalized target.
// PARTIAL: one normalized string is a substring of the other (covers a
// surname-only mention of a full-name target and vice versa); entities that
// already matched exactly are not repeated as partial.
func FindMatches(targetName string, entities []entity.Entity) Matches {
	target := entity.NormalizeName(targetName)
	var matches Matches
	if target == "" {
		return matches
	}

	for _, e := range entities {
		key := e.NormalizedKey
		if key == "" {
			continue
		}
		switch {
		case key == target:
			matches.Exact = append(matches.Exact, e)
		case strings.Contains(key, target) || strings.Contains(target, key):
			matches.Partial = append(matches.Partial, e)
		}
	}
	return matches
}

// Candidates flattens Matches into tagged candidates, exact first.
func (m Matches) Candidates() []Candidate {
	candidates := make([]Candidate, 0, len(m.Exact)+len(m.Partial))
	for _, e := range m.Exact {
		candidates = append(candidates, Candidate{Entity: e, Kind: KindExact})
	}
	for _, e := range m.Partial {
		candidates = append(candidates, Candidate{Entity: e, Kind: KindPartial})
	}
	return candidates
}
