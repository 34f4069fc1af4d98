// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package llm holds the generative judgment path: prompt construction, the
// OpenAI-backed matcher and translator, and the tolerant response parser.
package llm

import (
	"regexp"
	"strconv"
	"strings"

	"adverse-screen/internal/match"
)

// maxExplanationRunes bounds the explanation kept from a model response.
const maxExplanationRunes = 200

// Each field is extracted independently so a malformed or missing field
// never poisons the others. The primary patterns expect the bold markdown
// the prompt asks for; the loose ones accept the label without markup.
// Matching is case-insensitive throughout, and the explanation runs across
// lines until a blank line or the end of the response.
var (
	resultPattern      = regexp.MustCompile(`(?i)\*\*RESULT:\*\*\s*(MATCH|NO_MATCH|UNCERTAIN)`)
	resultLoose        = regexp.MustCompile(`(?i)RESULT:\s*(MATCH|NO_MATCH|UNCERTAIN)`)
	confidencePattern  = regexp.MustCompile(`(?i)\*\*CONFIDENCE:\*\*\s*([0-9]*\.?[0-9]+)`)
	confidenceLoose    = regexp.MustCompile(`(?i)CONFIDENCE:\s*([0-9]*\.?[0-9]+)`)
	explanationPattern = regexp.MustCompile(`(?is)\*\*EXPLANATION:\*\*\s*(.+?)(?:\n\n|$)`)
	explanationLoose   = regexp.MustCompile(`(?is)EXPLANATION:\s*(.+?)(?:\n\n|$)`)
)

// Parse turns a raw model response into a Decision. It never returns an
// error: a response that yields nothing parseable becomes an UNCERTAIN
// decision carrying the truncated raw text, which an analyst can read.
func Parse(raw, method string) match.Decision {
	decision := match.Decision{
		Result:           match.ResultUncertain,
		Confidence:       0.5,
		Explanation:      truncate(flatten(raw)),
		Method:           method,
		EntitiesAnalyzed: []string{},
	}

	if m := firstGroup(resultPattern, resultLoose, raw); m != "" {
		decision.Result = match.Result(strings.ToUpper(m))
	}

	if m := firstGroup(confidencePattern, confidenceLoose, raw); m != "" {
		if v, err := strconv.ParseFloat(m, 64); err == nil {
			decision.Confidence = clamp01(v)
		}
	}

	if m := firstGroup(explanationPattern, explanationLoose, raw); m != "" {
		decision.Explanation = truncate(flatten(m))
	}

	return decision
}

// firstGroup returns submatch 1 of the first pattern that matches.
func firstGroup(primary, loose *regexp.Regexp, raw string) string {
	if m := primary.FindStringSubmatch(raw); m != nil {
		return m[1]
	}
	if m := loose.FindStringSubmatch(raw); m != nil {
		return m[1]
	}
	return ""
}

// flatten collapses all whitespace runs, including newlines, to single
// spaces. Explanations are single-line by contract.
func flatten(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func truncate(s string) string {
	runes := []rune(s)
	if len(runes) <= maxExplanationRunes {
		return s
	}
	return string(runes[:maxExplanationRunes]) + "..."
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
