// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package match

import (
	"strings"
	"testing"

	"adverse-screen/internal/entity"

	"github.com/stretchr/testify/assert"
)

func TestDecide_NoEntities(t *testing.T) {
	d := Decide("John Smith", nil)
	assert.Equal(t, ResultNoMatch, d.Result)
	assert.InDelta(t, 0.95, d.Confidence, 1e-9)
	assert.Contains(t, d.Explanation, "No individual person entities")
	assert.Equal(t, MethodFallback, d.Method)
	assert.Empty(t, d.EntitiesAnalyzed)
}

func TestDecide_NoPersonsAmongEntities(t *testing.T) {
	entities := []entity.Entity{
		entity.New("Deutsche Bank", entity.CategoryOrganization, entity.Span{}, "de", "prose-de", 0.9, ""),
	}
	d := Decide("John Smith", entities)
	assert.Equal(t, ResultNoMatch, d.Result)
	assert.InDelta(t, 0.95, d.Confidence, 1e-9)
}

func TestDecide_ExactMatch(t *testing.T) {
	d := Decide("Anne Brorhilker", []entity.Entity{person("Anne Brorhilker", 1.0)})
	assert.Equal(t, ResultMatch, d.Result)
	assert.InDelta(t, 0.98, d.Confidence, 1e-9)
	assert.Equal(t, MethodExactMatch, d.Method)
	assert.Equal(t, []string{"Anne Brorhilker"}, d.EntitiesAnalyzed)
}

func TestDecide_ExactMatchIgnoresCaseAndDiacritics(t *testing.T) {
	d := Decide("anne brorhilker", []entity.Entity{person("Änne Brörhilker", 1.0)})
	assert.Equal(t, ResultMatch, d.Result)
	assert.InDelta(t, 0.98, d.Confidence, 1e-9)
}

func TestDecide_DifferentFirstName(t *testing.T) {
	// "annie" and "anne" are distinct tokens; overlap is only "brorhilker",
	// Jaccard 1/3, well below the threshold.
	d := Decide("Annie Brorhilker", []entity.Entity{person("Anne Brorhilker", 1.0)})
	assert.Equal(t, ResultNoMatch, d.Result)
	assert.InDelta(t, 0.90, d.Confidence, 1e-9)
	assert.Equal(t, MethodNoMatch, d.Method)
}

func TestDecide_NicknameNotHandled(t *testing.T) {
	// "ben" != "benjamin" as tokens, so the overlap is "limbach" alone:
	// Jaccard 1/2 < 0.8. Common-nickname matching is deliberately left to the
	// generative judgment path; the deterministic engine stays literal.
	d := Decide("Ben Limbach", []entity.Entity{person("Benjamin Limbach", 1.0)})
	assert.Equal(t, ResultNoMatch, d.Result)
	assert.InDelta(t, 0.90, d.Confidence, 1e-9)
}

func TestDecide_TokenReorderingMatches(t *testing.T) {
	// Identical token sets in a different order: Jaccard 1.0.
	d := Decide("Brorhilker Anne Marie", []entity.Entity{person("Anne Marie Brorhilker", 1.0)})
	assert.Equal(t, ResultMatch, d.Result)
	assert.InDelta(t, 0.85, d.Confidence, 1e-9)
	assert.Equal(t, MethodSimilarityMatch, d.Method)
	assert.Contains(t, d.Explanation, "Anne Marie Brorhilker")
}

func TestDecide_SharedSingleTokenRejected(t *testing.T) {
	// One shared surname among otherwise different names must not match.
	d := Decide("Maria Schmidt", []entity.Entity{person("Johann Schmidt", 1.0)})
	assert.Equal(t, ResultNoMatch, d.Result)
}

func TestDecide_ListsUpToThreeCandidates(t *testing.T) {
	entities := []entity.Entity{
		person("Alpha Aardvark", 1.0),
		person("Beta Brontes", 1.0),
		person("Gamma Garibaldi", 1.0),
		person("Delta Donatello", 1.0),
	}
	d := Decide("Zeta Zimmermann", entities)
	assert.Equal(t, ResultNoMatch, d.Result)
	// All four names are analyzed, but the explanation cites at most three.
	assert.Len(t, d.EntitiesAnalyzed, 4)
	assert.Equal(t, 2, strings.Count(d.Explanation, ","), "explanation should cite at most three candidates: %s", d.Explanation)
	assert.NotContains(t, d.Explanation, "Delta Donatello")
}

func TestDecide_EmptyTarget(t *testing.T) {
	d := Decide("   ", []entity.Entity{person("Anne Brorhilker", 1.0)})
	assert.Equal(t, ResultUncertain, d.Result)
	assert.InDelta(t, 0.5, d.Confidence, 1e-9)
}

func TestDecide_ExplanationHasNoNewlines(t *testing.T) {
	decisions := []Decision{
		Decide("Anne Brorhilker", []entity.Entity{person("Anne Brorhilker", 1.0)}),
		Decide("John Smith", nil),
		Decide("Annie Brorhilker", []entity.Entity{person("Anne Brorhilker", 1.0)}),
	}
	for _, d := range decisions {
		assert.NotContains(t, d.Explanation, "\n")
	}
}

func TestJaccard(t *testing.T) {
	cases := []struct {
		name string
		a, b string
		want float64
	}{
		{"identical", "anne brorhilker", "anne brorhilker", 1.0},
		{"disjoint", "annie smith", "anne brorhilker", 0.0},
		{"half overlap", "ben limbach", "benjamin limbach", 1.0 / 3.0},
		{"empty", "", "anne", 0.0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := jaccard(nameTokens(tc.a), nameTokens(tc.b))
			assert.InDelta(t, tc.want, got, 1e-9)
		})
	}
}
