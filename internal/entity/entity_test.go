// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package entity

import (
	"strings"
	"testing"
)

func TestNew_ComputesNormalizedKey(t *testing.T) {
	e := New("  Anne Brorhilker ", CategoryPerson, Span{Start: 10, End: 25}, "de", "pattern-de", 0.9, "ctx")
	if e.Name != "Anne Brorhilker" {
		t.Errorf("name not trimmed: %q", e.Name)
	}
	if e.NormalizedKey != "anne brorhilker" {
		t.Errorf("normalized key = %q", e.NormalizedKey)
	}
}

func TestNew_ClampsConfidence(t *testing.T) {
	cases := []struct {
		in   float64
		want float64
	}{
		{-0.5, 0.0},
		{0.0, 0.0},
		{0.42, 0.42},
		{1.0, 1.0},
		{1.7, 1.0},
	}
	for _, tc := range cases {
		e := New("X Y", CategoryPerson, Span{}, "en", "prose-en", tc.in, "")
		if e.Confidence != tc.want {
			t.Errorf("confidence %v clamped to %v, want %v", tc.in, e.Confidence, tc.want)
		}
	}
}

func TestNew_BoundsContext(t *testing.T) {
	long := strings.Repeat("x", 500)
	e := New("A B", CategoryPerson, Span{}, "en", "prose-en", 1, long)
	if len([]rune(e.Context)) > maxContextLen+3 {
		t.Errorf("context not bounded: %d runes", len([]rune(e.Context)))
	}
	if !strings.HasSuffix(e.Context, "...") {
		t.Error("truncated context should carry ellipsis")
	}
}

func TestIsPersonLike(t *testing.T) {
	byCategory := New("Anne Brorhilker", CategoryPerson, Span{}, "de", "prose-de", 1, "")
	if !byCategory.IsPersonLike() {
		t.Error("PERSON category should be person-like")
	}
	bySource := New("Anne Brorhilker", CategoryOther, Span{}, "de", "person-pattern-de", 1, "")
	if !bySource.IsPersonLike() {
		t.Error("person-tagged source should be person-like")
	}
	org := New("Deutsche Bank", CategoryOrganization, Span{}, "de", "prose-de", 1, "")
	if org.IsPersonLike() {
		t.Error("organization should not be person-like")
	}
}

func TestCategoryFromLabel(t *testing.T) {
	cases := []struct {
		label string
		want  Category
	}{
		{"PERSON", CategoryPerson},
		{"PER", CategoryPerson},
		{"per", CategoryPerson},
		{"ORG", CategoryOrganization},
		{"GPE", CategoryLocation},
		{"LOC", CategoryLocation},
		{"MONEY", CategoryOther},
		{"", CategoryOther},
	}
	for _, tc := range cases {
		if got := CategoryFromLabel(tc.label); got != tc.want {
			t.Errorf("CategoryFromLabel(%q) = %v, want %v", tc.label, got, tc.want)
		}
	}
}

func TestPersonsAndNames(t *testing.T) {
	entities := []Entity{
		New("Anne Brorhilker", CategoryPerson, Span{}, "de", "prose-de", 1, ""),
		New("Deutsche Bank", CategoryOrganization, Span{}, "de", "prose-de", 0.9, ""),
		New("Benjamin Limbach", CategoryPerson, Span{}, "de", "pattern-de", 0.8, ""),
	}
	persons := Persons(entities)
	if len(persons) != 2 {
		t.Fatalf("expected 2 persons, got %d", len(persons))
	}
	names := Names(persons)
	if names[0] != "Anne Brorhilker" || names[1] != "Benjamin Limbach" {
		t.Errorf("unexpected names: %v", names)
	}
}
