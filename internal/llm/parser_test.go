// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package llm

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"adverse-screen/internal/entity"
	"adverse-screen/internal/match"
)

func TestParse_WellFormed(t *testing.T) {
	raw := "**RESULT:** MATCH\n**CONFIDENCE:** 0.93\n**EXPLANATION:** The article names the same person."
	d := Parse(raw, "openai gpt-4o-mini")

	assert.Equal(t, match.ResultMatch, d.Result)
	assert.Equal(t, 0.93, d.Confidence)
	assert.Equal(t, "The article names the same person.", d.Explanation)
	assert.Equal(t, "openai gpt-4o-mini", d.Method)
}

func TestParse_LooseLabels(t *testing.T) {
	raw := "RESULT: NO_MATCH\nCONFIDENCE: 0.8\nEXPLANATION: Different individuals."
	d := Parse(raw, "openai gpt-4o-mini")

	assert.Equal(t, match.ResultNoMatch, d.Result)
	assert.Equal(t, 0.8, d.Confidence)
	assert.Equal(t, "Different individuals.", d.Explanation)
}

func TestParse_Garbage(t *testing.T) {
	raw := "I am not sure what you are asking me to do here."
	d := Parse(raw, "openai gpt-4o-mini")

	assert.Equal(t, match.ResultUncertain, d.Result)
	assert.Equal(t, 0.5, d.Confidence)
	assert.Equal(t, raw, d.Explanation)
}

func TestParse_GarbageTruncated(t *testing.T) {
	raw := strings.Repeat("blah ", 100)
	d := Parse(raw, "openai gpt-4o-mini")

	assert.Equal(t, match.ResultUncertain, d.Result)
	assert.True(t, strings.HasSuffix(d.Explanation, "..."))
	assert.LessOrEqual(t, len([]rune(d.Explanation)), 203)
}

func TestParse_FieldsIndependent(t *testing.T) {
	// Only the result is present; the other fields keep their defaults.
	d := Parse("**RESULT:** UNCERTAIN", "openai gpt-4o-mini")
	assert.Equal(t, match.ResultUncertain, d.Result)
	assert.Equal(t, 0.5, d.Confidence)

	// Only the confidence is present.
	d = Parse("**CONFIDENCE:** 0.75", "openai gpt-4o-mini")
	assert.Equal(t, match.ResultUncertain, d.Result)
	assert.Equal(t, 0.75, d.Confidence)
}

func TestParse_ConfidenceClamped(t *testing.T) {
	d := Parse("**RESULT:** MATCH\n**CONFIDENCE:** 7.5", "openai gpt-4o-mini")
	assert.Equal(t, 1.0, d.Confidence)
}

func TestParse_ExplanationFlattened(t *testing.T) {
	raw := "**RESULT:** MATCH\n**CONFIDENCE:** 0.9\n**EXPLANATION:** spans   multiple\twords"
	d := Parse(raw, "openai gpt-4o-mini")
	assert.NotContains(t, d.Explanation, "\n")
	assert.Equal(t, "spans multiple words", d.Explanation)
}

func TestParse_MultilineExplanation(t *testing.T) {
	// The explanation runs until a blank line, not the first newline.
	raw := "**RESULT:** MATCH\n**CONFIDENCE:** 0.9\n**EXPLANATION:** The article names the same person\nand the context agrees.\n\nAdditional notes follow."
	d := Parse(raw, "openai gpt-4o-mini")
	assert.Equal(t, "The article names the same person and the context agrees.", d.Explanation)
	assert.NotContains(t, d.Explanation, "Additional notes")
}

func TestParse_LowercaseLabels(t *testing.T) {
	raw := "result: MATCH\nconfidence: 0.7\nexplanation: Same person."
	d := Parse(raw, "openai gpt-4o-mini")

	assert.Equal(t, match.ResultMatch, d.Result)
	assert.Equal(t, 0.7, d.Confidence)
	assert.Equal(t, "Same person.", d.Explanation)
}

func TestParse_LowercaseResultValue(t *testing.T) {
	d := Parse("RESULT: match", "openai gpt-4o-mini")
	assert.Equal(t, match.ResultMatch, d.Result)
}

func TestParse_NeverEmptyMethod(t *testing.T) {
	d := Parse("", "openai gpt-4o")
	assert.Equal(t, "openai gpt-4o", d.Method)
	assert.NotNil(t, d.EntitiesAnalyzed)
}

func TestBuildPrompt(t *testing.T) {
	prompt := BuildPrompt("Anne Brorhilker", "Die Ermittlerin...", "The investigator...", "de", nil)
	assert.Contains(t, prompt, "Anne Brorhilker")
	assert.Contains(t, prompt, "No person names were detected")
	assert.Contains(t, prompt, "English translation")
}

func TestBuildPrompt_NameComparison(t *testing.T) {
	entities := []entity.Entity{
		entity.New("Anne Brorhilker", entity.CategoryPerson, entity.Span{}, "de", "pattern-de", 0.9, ""),
		entity.New("Brorhilker", entity.CategoryPerson, entity.Span{}, "de", "pattern-de", 0.7, ""),
	}
	prompt := BuildPrompt("Anne Brorhilker", "text", "", "de", entities)
	assert.Contains(t, prompt, "EXACT: Anne Brorhilker")
	assert.Contains(t, prompt, "PARTIAL: Brorhilker")
}

func TestExcerpt_Bounded(t *testing.T) {
	long := strings.Repeat("ä", 1000)
	got := excerpt(long)
	assert.Equal(t, excerptRunes+3, len([]rune(got)))
	assert.True(t, strings.HasSuffix(got, "..."))
}
