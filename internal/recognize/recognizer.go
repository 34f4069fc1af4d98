// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package recognize produces raw name mentions from article text. Two
// producers exist: a statistical recognizer backed by a trained NER model and
// a pattern recognizer with per-language name shapes. Both emit unscored
// mentions; confidence assignment happens downstream.
package recognize

import (
	"unicode/utf8"
)

// Mention is a raw detected occurrence of a name-like string, with provenance
// and position. Mentions carry no confidence; the scorer assigns one when the
// mention becomes an Entity.
type Mention struct {
	Name     string
	Label    string // raw producer label: PERSON, ORG, GPE, ...
	Start    int    // byte offset into the source text
	End      int
	Language string
	Source   string // producer tag, e.g. "prose-en", "pattern-de"
	Context  string
}

// Recognizer proposes mentions for a text in a given language.
type Recognizer interface {
	Name() string
	Recognize(text, language string) []Mention
}

// contextWindow is the number of bytes kept on each side of a mention.
const contextWindow = 75

// contextAround extracts a bounded window of text surrounding [start, end),
// adjusted to rune boundaries so multi-byte characters are never split.
func contextAround(text string, start, end int) string {
	from := start - contextWindow
	if from < 0 {
		from = 0
	}
	to := end + contextWindow
	if to > len(text) {
		to = len(text)
	}
	for from > 0 && !utf8.RuneStart(text[from]) {
		from--
	}
	for to < len(text) && !utf8.RuneStart(text[to]) {
		to++
	}
	return text[from:to]
}
