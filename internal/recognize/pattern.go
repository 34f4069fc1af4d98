// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package recognize

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// languageShape holds the building blocks for one language's name patterns.
type languageShape struct {
	upper     string // upper-case letter class, including accented forms
	lower     string // lower-case letter class
	particles string // lowercase name particles joined by |
	titles    string // personal titles joined by |
	stopwords []string
	// leading lists capitalized function and role words that precede a
	// name inside a capitalized run (articles, sentence starters, job
	// titles) and are stripped from the front of a candidate.
	leading []string
	// roleSuffixes catches compound role nouns that cannot be listed
	// exhaustively (German builds them freely: Justizminister,
	// Chefermittlerin). A leading token ending in one of these is filler.
	roleSuffixes []string
}

var shapes = map[string]languageShape{
	"en": {
		upper:     "A-Z",
		lower:     "a-z",
		particles: "van|de|da",
		titles:    `Mr\.|Mrs\.|Ms\.|Dr\.|Prof\.`,
		stopwords: []string{"however", "therefore", "although", "meanwhile", "furthermore", "nevertheless"},
		leading: []string{
			"the", "a", "an", "this", "that", "his", "her", "their",
			"president", "prosecutor", "minister", "judge", "senator",
			"mayor", "chancellor", "director", "chief", "attorney", "justice",
		},
	},
	"es": {
		upper:     "A-ZÁÉÍÓÚÑ",
		lower:     "a-záéíóúñ",
		particles: "de|del|la|los|y|e",
		titles:    `Don|Doña|Sr\.|Sra\.|Dr\.|Dra\.`,
		stopwords: []string{"según", "aunque", "también", "después", "durante", "mientras", "entonces", "además"},
		leading: []string{
			"el", "la", "los", "las", "un", "una", "su",
			"señor", "señora", "don", "doña", "presidente", "presidenta",
			"ministro", "ministra", "fiscal", "juez", "jueza", "director", "directora",
		},
	},
	"fr": {
		upper:     "A-ZÀÂÄÉÈÊËÎÏÔÖÛÜÇ",
		lower:     "a-zàâäéèêëíìîïóòôöúùûüç",
		particles: "de|du|des|le|la",
		titles:    `M\.|Mme|Mlle|Dr\.|Pr\.`,
		stopwords: []string{"selon", "depuis", "pendant", "maintenant", "toujours", "encore", "ainsi", "donc"},
		leading: []string{
			"le", "la", "les", "un", "une", "son", "sa",
			"monsieur", "madame", "président", "présidente",
			"ministre", "procureur", "procureure", "juge", "directeur", "directrice",
		},
	},
	"de": {
		upper:     "A-ZÄÖÜ",
		lower:     "a-zäöüß",
		particles: "von|zu|van|der",
		titles:    `Herr|Frau|Dr\.|Prof\.`,
		stopwords: []string{"jedoch", "außerdem", "während", "bereits", "dennoch", "schließlich", "allerdings"},
		leading: []string{
			"der", "die", "das", "dem", "den", "ein", "eine",
			"im", "am", "herr", "frau",
		},
		roleSuffixes: []string{
			"minister", "ministerin", "präsident", "präsidentin",
			"anwalt", "anwältin", "richter", "richterin",
			"ermittler", "ermittlerin", "direktor", "direktorin",
			"sprecher", "sprecherin", "kanzler", "kanzlerin",
		},
	},
}

type languagePatterns struct {
	// fullName matches an unbounded run of capitalized tokens, optionally
	// with lowercase particles between them. Trimming the run down to the
	// actual name happens in post-processing, not in the pattern.
	fullName *regexp.Regexp
	// titled matches a personal title followed by a name; the name is
	// submatch 1.
	titled       *regexp.Regexp
	stopwords    map[string]bool
	leading      map[string]bool
	roleSuffixes []string
}

// isFiller reports whether a lowercased token is a non-name token that can
// be stripped from the front of a capitalized run.
func (p languagePatterns) isFiller(token string) bool {
	if p.leading[token] || p.stopwords[token] {
		return true
	}
	for _, suffix := range p.roleSuffixes {
		if strings.HasSuffix(token, suffix) {
			return true
		}
	}
	return false
}

// PatternRecognizer detects person names with per-language regular
// expressions. Noisier than the statistical recognizer, so its mentions carry
// a pattern source tag and start from a lower base confidence.
type PatternRecognizer struct {
	patterns map[string]languagePatterns
}

// NewPatternRecognizer compiles the name patterns for all supported
// languages.
func NewPatternRecognizer() *PatternRecognizer {
	r := &PatternRecognizer{patterns: make(map[string]languagePatterns, len(shapes))}
	for lang, shape := range shapes {
		word := fmt.Sprintf(`[%s][%s]+`, shape.upper, shape.lower)
		fullName := fmt.Sprintf(`%[1]s(?:\s+(?:(?:%[2]s)\s+)?%[1]s)+`, word, shape.particles)
		titled := fmt.Sprintf(`(?:%[2]s)\s+(%[1]s(?:\s+%[1]s)*)`, word, shape.titles)

		stopwords := make(map[string]bool, len(shape.stopwords))
		for _, w := range shape.stopwords {
			stopwords[w] = true
		}
		leading := make(map[string]bool, len(shape.leading))
		for _, w := range shape.leading {
			leading[w] = true
		}

		r.patterns[lang] = languagePatterns{
			fullName:     regexp.MustCompile(fullName),
			titled:       regexp.MustCompile(titled),
			stopwords:    stopwords,
			leading:      leading,
			roleSuffixes: shape.roleSuffixes,
		}
	}
	return r
}

func (r *PatternRecognizer) Name() string { return "pattern" }

// Recognize returns person-name mentions found by the language's patterns.
// Unsupported languages yield no mentions rather than mis-applying another
// language's shapes.
//
// A capitalized run is trimmed before emission: leading articles, titles and
// role nouns are stripped, so "Die Chefermittlerin Anne Brorhilker" yields
// "Anne Brorhilker", not the run as matched. Runs of three or more remaining
// tokens additionally emit their trailing two-token sub-span, which recovers
// the bare name when an unlisted role word survives the strip.
func (r *PatternRecognizer) Recognize(text, language string) []Mention {
	patterns, ok := r.patterns[language]
	if !ok {
		return nil
	}

	source := "pattern-" + language
	var mentions []Mention
	seen := make(map[[2]int]bool)

	add := func(start, end int) {
		name := strings.TrimSpace(text[start:end])
		if !r.plausibleName(name, patterns) {
			return
		}
		key := [2]int{start, end}
		if seen[key] {
			return
		}
		seen[key] = true
		mentions = append(mentions, Mention{
			Name:     name,
			Label:    "PERSON",
			Start:    start,
			End:      end,
			Language: language,
			Source:   source,
			Context:  contextAround(text, start, end),
		})
	}

	for _, loc := range patterns.fullName.FindAllStringIndex(text, -1) {
		run := text[loc[0]:loc[1]]
		tokens := tokenSpans(run)

		// Strip leading filler, keeping at least one token so the loop
		// cannot run off the end.
		first := 0
		for first < len(tokens)-1 && patterns.isFiller(strings.ToLower(run[tokens[first][0]:tokens[first][1]])) {
			first++
		}
		name := tokens[first:]
		if len(name) < 2 {
			continue
		}

		// Runs longer than a plausible full name are headline noise;
		// only their trailing sub-span is worth emitting.
		if len(name) <= 4 {
			add(loc[0]+name[0][0], loc[0]+name[len(name)-1][1])
		}
		if len(name) >= 3 {
			j := len(name) - 2
			// A particle cannot start a sub-span; widen to include the
			// token before it.
			if j > 0 && startsLower(run[name[j][0]:name[j][1]]) {
				j--
			}
			add(loc[0]+name[j][0], loc[0]+name[len(name)-1][1])
		}
	}

	for _, loc := range patterns.titled.FindAllStringSubmatchIndex(text, -1) {
		// Submatch 1 is the name following the title.
		if loc[2] >= 0 {
			add(loc[2], loc[3])
		}
	}

	return mentions
}

// plausibleName filters out the obvious non-names: digits, known sentence
// adverbs that happen to be capitalized at sentence starts, single
// characters.
func (r *PatternRecognizer) plausibleName(name string, patterns languagePatterns) bool {
	if len(name) < 2 {
		return false
	}
	if strings.ContainsFunc(name, unicode.IsDigit) {
		return false
	}
	for _, token := range strings.Fields(strings.ToLower(name)) {
		if patterns.stopwords[token] {
			return false
		}
	}
	return true
}

// tokenSpans returns the byte spans of whitespace-delimited tokens in s.
func tokenSpans(s string) [][2]int {
	var spans [][2]int
	start := -1
	for i, r := range s {
		if unicode.IsSpace(r) {
			if start >= 0 {
				spans = append(spans, [2]int{start, i})
				start = -1
			}
		} else if start < 0 {
			start = i
		}
	}
	if start >= 0 {
		spans = append(spans, [2]int{start, len(s)})
	}
	return spans
}

func startsLower(token string) bool {
	r, _ := utf8.DecodeRuneInString(token)
	return unicode.IsLower(r)
}

// SupportedLanguages lists the languages with compiled patterns.
func (r *PatternRecognizer) SupportedLanguages() []string {
	langs := make([]string, 0, len(r.patterns))
	for lang := range r.patterns {
		langs = append(langs, lang)
	}
	return langs
}
