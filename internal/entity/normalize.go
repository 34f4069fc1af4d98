// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package entity

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// stripMarks decomposes to NFD, drops combining diacritical marks and
// recomposes. "Müller" and "Muller" reduce to the same base form.
var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// NormalizeName produces the diacritic-free, case-folded comparison key for a
// name. It lowercases, trims, and collapses internal whitespace runs to a
// single space. The result is used only for equality and grouping, never for
// display.
//
// Known limitation: non-Latin scripts (Cyrillic, CJK, Arabic) pass through
// case-folded but otherwise unmodified. Diacritic stripping only helps for
// Latin-derived scripts, which covers the supported article languages.
func NormalizeName(name string) string {
	stripped, _, err := transform.String(stripMarks, name)
	if err != nil {
		// Unexpected script or malformed input: degrade to case folding
		// rather than failing.
		stripped = name
	}
	return strings.Join(strings.Fields(strings.ToLower(stripped)), " ")
}
