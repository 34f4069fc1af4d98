// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package score assigns a confidence in [0.1, 1.0] to a raw name mention
// before it becomes an Entity. The policy is additive: a provenance-dependent
// base plus shape, language and context adjustments, clamped at the end.
package score

import (
	"strings"
	"unicode"
)

// Base confidences by provenance. Pattern-based detection is inherently
// noisier than statistical-model output, so it starts lower.
const (
	BaseStatistical = 0.85
	BasePattern     = 0.70
)

// Adjustment weights.
const (
	bonusMultiToken  = 0.10
	bonusProperCase  = 0.05
	bonusNativeChars = 0.10
	bonusContextWord = 0.15
	penaltyDigit     = 0.20
)

// Final clamp range. Confidence is never driven to exactly zero so a mention
// is never silently invisible to downstream review.
const (
	floorConfidence = 0.1
	ceilConfidence  = 1.0
)

// Scorer scores mentions using per-language signal tables.
type Scorer struct {
	// Accented characters that suggest a genuine native-language name rather
	// than a transliteration artifact.
	nativeChars map[string]string

	// Closed per-language lists of person-indicating context keywords:
	// titles and role words seen around individual names in news text.
	personIndicators map[string][]string
}

// NewScorer creates a scorer with the built-in language tables for the
// supported article languages (en, es, fr, de).
func NewScorer() *Scorer {
	return &Scorer{
		nativeChars: map[string]string{
			"es": "áéíóúñ",
			"fr": "àâäéèêëíìîïóòôöúùûüç",
			"de": "äöüß",
		},
		personIndicators: map[string][]string{
			"es": {"señor", "señora", "don", "doña", "presidente", "presidenta", "director", "directora", "fiscal", "juez", "jueza"},
			"fr": {"monsieur", "madame", "président", "présidente", "directeur", "directrice", "procureur", "procureure", "juge"},
			"de": {"herr", "frau", "präsident", "präsidentin", "direktor", "direktorin", "staatsanwalt", "staatsanwältin", "richter", "richterin", "minister", "ministerin"},
			"en": {"mr", "mrs", "ms", "dr", "president", "director", "prosecutor", "judge", "minister"},
		},
	}
}

// BaseForSource picks the provenance base confidence from a producer source
// tag (e.g. "prose-en", "pattern-de").
func BaseForSource(source string) float64 {
	if strings.Contains(strings.ToLower(source), "pattern") {
		return BasePattern
	}
	return BaseStatistical
}

// Score computes the confidence for a mention. Each adjustment is independent;
// the result is clamped into [0.1, 1.0] at the end.
func (s *Scorer) Score(mention string, base float64, context, language string) float64 {
	confidence := base
	tokens := strings.Fields(mention)

	// Multi-token names are less likely to be false positives.
	if len(tokens) >= 2 {
		confidence += bonusMultiToken
	}

	// Proper-noun shape: every token starts with an upper-case letter.
	if len(tokens) > 0 && allUpperInitial(tokens) {
		confidence += bonusProperCase
	}

	// Language-appropriate accented characters are a weak nativeness signal.
	if chars, ok := s.nativeChars[language]; ok && strings.ContainsAny(strings.ToLower(mention), chars) {
		confidence += bonusNativeChars
	}

	// Person-indicating keyword in the surrounding context.
	if s.contextIndicatesPerson(context, language) {
		confidence += bonusContextWord
	}

	// Names should not contain digits.
	if strings.ContainsFunc(mention, unicode.IsDigit) {
		confidence -= penaltyDigit
	}

	if confidence < floorConfidence {
		return floorConfidence
	}
	if confidence > ceilConfidence {
		return ceilConfidence
	}
	return confidence
}

func (s *Scorer) contextIndicatesPerson(context, language string) bool {
	indicators, ok := s.personIndicators[language]
	if !ok || context == "" {
		return false
	}
	lower := strings.ToLower(context)
	for _, indicator := range indicators {
		if strings.Contains(lower, indicator) {
			return true
		}
	}
	return false
}

func allUpperInitial(tokens []string) bool {
	for _, token := range tokens {
		for _, r := range token {
			if !unicode.IsUpper(r) {
				return false
			}
			break
		}
	}
	return true
}
