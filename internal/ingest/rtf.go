// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package ingest

import (
	"strconv"
	"strings"
)

// skipDestinations are RTF groups whose content is metadata, not article
// text. Their entire group body is discarded.
var skipDestinations = map[string]bool{
	"fonttbl":    true,
	"colortbl":   true,
	"stylesheet": true,
	"info":       true,
	"pict":       true,
	"header":     true,
	"footer":     true,
}

// stripRTF extracts the plain text from an RTF document. It handles the
// subset of the format that word processors actually emit for text
// documents: control words, hex escapes, unicode escapes, and destination
// groups. Unknown control words are ignored, which degrades to readable
// text on exotic inputs.
func stripRTF(src string) string {
	var out strings.Builder
	i := 0
	n := len(src)
	// Depth at which a skip destination started; -1 when not skipping.
	skipDepth := -1
	depth := 0

	for i < n {
		c := src[i]
		switch c {
		case '{':
			depth++
			i++
		case '}':
			depth--
			if skipDepth >= 0 && depth < skipDepth {
				skipDepth = -1
			}
			i++
		case '\\':
			i++
			if i >= n {
				break
			}
			// Escaped literal.
			if src[i] == '\\' || src[i] == '{' || src[i] == '}' {
				if skipDepth < 0 {
					out.WriteByte(src[i])
				}
				i++
				continue
			}
			// Hex escape \'hh in cp1252.
			if src[i] == '\'' && i+2 < n {
				if b, err := strconv.ParseUint(src[i+1:i+3], 16, 8); err == nil {
					if skipDepth < 0 {
						out.WriteRune(cp1252Rune(byte(b)))
					}
					i += 3
					continue
				}
			}
			word, param, next := readControlWord(src, i)
			i = next
			if skipDepth >= 0 {
				continue
			}
			switch word {
			case "par", "line", "sect", "page":
				out.WriteByte('\n')
			case "tab", "cell":
				out.WriteByte(' ')
			case "emdash", "endash":
				out.WriteByte('-')
			case "lquote", "rquote":
				out.WriteByte('\'')
			case "ldblquote", "rdblquote":
				out.WriteByte('"')
			case "u":
				// \uN gives a signed 16-bit code point, followed by a
				// fallback character that must be consumed. The fallback
				// may itself be a \'hh hex escape.
				if param < 0 {
					param += 65536
				}
				out.WriteRune(rune(param))
				if i+3 < n && src[i] == '\\' && src[i+1] == '\'' {
					i += 4
				} else if i < n && src[i] != '\\' && src[i] != '{' && src[i] != '}' {
					i++
				}
			default:
				if skipDestinations[word] {
					skipDepth = depth
				}
			}
		default:
			if skipDepth < 0 && c != '\n' && c != '\r' {
				out.WriteByte(c)
			}
			i++
		}
	}

	return collapseBlankRuns(out.String())
}

// readControlWord parses the control word starting at src[i] (just past the
// backslash) and returns the word, its numeric parameter (0 when absent),
// and the index past the word and its optional delimiting space.
func readControlWord(src string, i int) (word string, param int, next int) {
	n := len(src)
	start := i
	for i < n && isASCIILetter(src[i]) {
		i++
	}
	word = src[start:i]

	numStart := i
	if i < n && (src[i] == '-' || isASCIIDigit(src[i])) {
		i++
		for i < n && isASCIIDigit(src[i]) {
			i++
		}
		param, _ = strconv.Atoi(src[numStart:i])
	}
	// A single space terminates the control word and is part of it.
	if i < n && src[i] == ' ' {
		i++
	}
	return word, param, i
}

func isASCIILetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isASCIIDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// cp1252Rune maps a Windows-1252 byte to its rune. Bytes 0x80..0x9F differ
// from Latin-1 and carry the punctuation news text actually uses.
func cp1252Rune(b byte) rune {
	if r, ok := cp1252High[b]; ok {
		return r
	}
	return rune(b)
}

var cp1252High = map[byte]rune{
	0x80: '€', 0x82: '‚', 0x84: '„', 0x85: '…',
	0x91: '‘', 0x92: '’', 0x93: '“', 0x94: '”',
	0x96: '–', 0x97: '—', 0xA0: ' ',
}

// collapseBlankRuns reduces runs of blank lines to a single newline and
// trims trailing spaces that control-word stripping leaves behind.
func collapseBlankRuns(text string) string {
	lines := strings.Split(text, "\n")
	var kept []string
	for _, line := range lines {
		line = strings.TrimRight(line, " \t")
		if line == "" && len(kept) > 0 && kept[len(kept)-1] == "" {
			continue
		}
		kept = append(kept, line)
	}
	return strings.Join(kept, "\n")
}
