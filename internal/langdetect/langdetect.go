// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package langdetect guesses an article's language from function-word
// frequency. Only the screening languages are distinguished; anything
// ambiguous falls back to English, which keeps the pipeline conservative
// since the English recognizers always run on the translated text anyway.
package langdetect

import (
	"strings"
)

// stopwords per language. Function words are near-universal in running
// text, so a handful per language separates articles reliably.
var stopwords = map[string][]string{
	"en": {"the", "and", "of", "to", "in", "that", "is", "was", "for", "with", "his", "her", "has", "have"},
	"es": {"el", "la", "los", "las", "de", "del", "que", "en", "un", "una", "por", "para", "con", "su"},
	"fr": {"le", "la", "les", "des", "de", "du", "et", "que", "dans", "pour", "une", "qui", "est", "sur"},
	"de": {"der", "die", "das", "und", "ist", "nicht", "ein", "eine", "mit", "für", "von", "dem", "den", "auf"},
}

// minHits is the minimum stopword count before a guess beats the English
// default. Very short texts do not carry enough signal.
const minHits = 2

// Detect returns the ISO 639-1 code of the text's most likely language
// among the supported set, defaulting to "en".
func Detect(text string) string {
	sets := make(map[string]map[string]bool, len(stopwords))
	for lang, words := range stopwords {
		set := make(map[string]bool, len(words))
		for _, w := range words {
			set[w] = true
		}
		sets[lang] = set
	}

	counts := make(map[string]int, len(stopwords))
	for _, token := range strings.Fields(strings.ToLower(text)) {
		token = strings.Trim(token, ".,;:!?\"'()[]«»¿¡")
		for lang, set := range sets {
			if set[token] {
				counts[lang]++
			}
		}
	}

	best, bestCount := "en", 0
	// Deterministic tie-break: fixed iteration order, English wins ties.
	for _, lang := range []string{"en", "es", "fr", "de"} {
		if counts[lang] > bestCount {
			best, bestCount = lang, counts[lang]
		}
	}
	if bestCount < minHits {
		return "en"
	}
	return best
}

// Supported reports whether the pattern recognizers cover the language.
func Supported(lang string) bool {
	_, ok := stopwords[lang]
	return ok
}
