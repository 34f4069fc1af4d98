// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package recognize

import (
	"strings"

	"github.com/jdkato/prose/v2"
)

// StatisticalRecognizer extracts entities with the prose NER model. The
// bundled model is English-only, so this recognizer only runs on English text
// (which in the screening pipeline includes the machine-translated article).
type StatisticalRecognizer struct{}

// NewStatisticalRecognizer returns the prose-backed recognizer.
func NewStatisticalRecognizer() *StatisticalRecognizer {
	return &StatisticalRecognizer{}
}

func (r *StatisticalRecognizer) Name() string { return "prose" }

// Recognize runs the statistical model over English text. prose reports
// entity text and label but no offsets, so spans are recovered by scanning
// forward through the source text.
func (r *StatisticalRecognizer) Recognize(text, language string) []Mention {
	if language != "en" || strings.TrimSpace(text) == "" {
		return nil
	}

	doc, err := prose.NewDocument(text)
	if err != nil {
		// A text the tokenizer cannot handle yields no mentions; the
		// pattern recognizer still gets its chance.
		return nil
	}

	var mentions []Mention
	cursor := 0
	for _, ent := range doc.Entities() {
		name := strings.TrimSpace(ent.Text)
		if name == "" {
			continue
		}

		start := strings.Index(text[cursor:], name)
		if start < 0 {
			// Tokenization may have rewritten whitespace; fall back to a
			// search from the beginning before giving up on the span.
			start = strings.Index(text, name)
			if start < 0 {
				start = cursor
			}
		} else {
			start += cursor
		}
		end := start + len(name)
		if end > len(text) {
			end = len(text)
		}
		cursor = end

		mentions = append(mentions, Mention{
			Name:     name,
			Label:    ent.Label,
			Start:    start,
			End:      end,
			Language: language,
			Source:   "prose-en",
			Context:  contextAround(text, start, end),
		})
	}

	return mentions
}
