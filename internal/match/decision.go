// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package match

import (
	"fmt"
	"strings"

	"adverse-screen/internal/entity"
)

// Result is the screening outcome token.
type Result string

const (
	ResultMatch     Result = "MATCH"
	ResultNoMatch   Result = "NO_MATCH"
	ResultUncertain Result = "UNCERTAIN"
)

// Method identifiers for the deterministic decision paths.
const (
	MethodFallback        = "rule-based fallback"
	MethodExactMatch      = "rule-based exact match"
	MethodSimilarityMatch = "rule-based similarity match"
	MethodNoMatch         = "rule-based no match"
)

// Decision is the sole externally visible output of a screening run.
// Immutable once constructed. Explanation is plain text with no embedded
// newlines.
type Decision struct {
	Result           Result   `json:"result"`
	Confidence       float64  `json:"confidence"`
	Explanation      string   `json:"explanation"`
	Method           string   `json:"method"`
	EntitiesAnalyzed []string `json:"entities_analyzed"`
}

// IsMatch reports whether the decision flags the article for analyst review.
func (d Decision) IsMatch() bool {
	return d.Result == ResultMatch
}

// Similarity threshold for the fuzzy step. Intentionally high: near-identical
// multi-token overlap (minor reordering, a dropped middle name) counts as the
// same person, while names that merely share one token do not. Common
// nicknames (Ben/Benjamin) are NOT handled here; that is the generative
// path's job.
const similarityThreshold = 0.8

// Decide is the conservative decision path used when no generative judgment
// is available or trusted. Precedence is strict: absence of persons, then
// exact equality, then token-overlap similarity, then no-match.
func Decide(targetName string, entities []entity.Entity) Decision {
	persons := entity.Persons(entities)
	names := entity.Names(persons)

	if strings.TrimSpace(targetName) == "" {
		return Decision{
			Result:           ResultUncertain,
			Confidence:       0.5,
			Explanation:      "Empty target name provided; nothing to match.",
			Method:           MethodFallback,
			EntitiesAnalyzed: names,
		}
	}

	// Absence of person mentions is itself strong evidence here.
	if len(persons) == 0 {
		return Decision{
			Result:           ResultNoMatch,
			Confidence:       0.95,
			Explanation:      fmt.Sprintf("No individual person entities found in article for target '%s'.", targetName),
			Method:           MethodFallback,
			EntitiesAnalyzed: []string{},
		}
	}

	// Exact matches short-circuit before any fuzzy computation runs.
	target := entity.NormalizeName(targetName)
	for _, p := range persons {
		if p.NormalizedKey == target {
			return Decision{
				Result:           ResultMatch,
				Confidence:       0.98,
				Explanation:      fmt.Sprintf("Exact name match found: '%s' matches '%s' in article.", targetName, p.Name),
				Method:           MethodExactMatch,
				EntitiesAnalyzed: names,
			}
		}
	}

	targetTokens := nameTokens(targetName)
	var best *entity.Entity
	bestScore := 0.0
	for i, p := range persons {
		score := jaccard(targetTokens, nameTokens(p.Name))
		if score > bestScore {
			bestScore = score
			best = &persons[i]
		}
	}

	if best != nil && bestScore >= similarityThreshold {
		return Decision{
			Result:           ResultMatch,
			Confidence:       0.85,
			Explanation:      fmt.Sprintf("High similarity match: '%s' closely matches '%s' in article.", targetName, best.Name),
			Method:           MethodSimilarityMatch,
			EntitiesAnalyzed: names,
		}
	}

	considered := names
	if len(considered) > 3 {
		considered = considered[:3]
	}
	return Decision{
		Result:           ResultNoMatch,
		Confidence:       0.90,
		Explanation:      fmt.Sprintf("No sufficiently similar names found for '%s' among persons in article: %s.", targetName, strings.Join(considered, ", ")),
		Method:           MethodNoMatch,
		EntitiesAnalyzed: names,
	}
}

// nameTokens splits a name into its normalized whitespace-delimited tokens,
// keeping only tokens longer than 2 characters so particles and initials do
// not inflate the overlap.
func nameTokens(name string) map[string]struct{} {
	tokens := make(map[string]struct{})
	for _, token := range strings.Fields(entity.NormalizeName(name)) {
		if len([]rune(token)) > 2 {
			tokens[token] = struct{}{}
		}
	}
	return tokens
}

// jaccard computes |a ∩ b| / |a ∪ b| over token sets.
func jaccard(a, b map[string]struct{}) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	intersection := 0
	for token := range a {
		if _, ok := b[token]; ok {
			intersection++
		}
	}
	union := len(a) + len(b) - intersection
	if union == 0 {
		return 0
	}
	return float64(intersection) / float64(union)
}
