// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package llm

import (
	"fmt"
	"strings"

	"adverse-screen/internal/entity"
	"adverse-screen/internal/match"
)

// excerptRunes is how much of each article version goes into the prompt.
// The opening of an adverse media article names its subjects; the tail
// rarely adds identity signal worth the tokens.
const excerptRunes = 500

// systemPrompt frames the model as a compliance analyst. The instructions
// mirror screening practice: treat nicknames and transliterations as the
// same person, never guess toward NO_MATCH, and answer in a fixed format
// the parser can extract field by field.
const systemPrompt = `You are a compliance analyst performing adverse media screening. Given a target name and the person names found in a news article, decide whether the article refers to the target individual.

Guidelines:
- Nicknames, diminutives and transliterations count as the same person (Ben/Benjamin, Bill/William, Aleksandr/Alexander).
- Different word order or a missing middle name still counts as the same person.
- A shared surname alone is NOT a match.
- When the evidence is genuinely ambiguous, answer UNCERTAIN. A missed match is a regulatory failure; when in doubt, do not answer NO_MATCH.

Respond in exactly this format:
**RESULT:** MATCH, NO_MATCH, or UNCERTAIN
**CONFIDENCE:** a number between 0.0 and 1.0
**EXPLANATION:** one sentence explaining the decision`

// BuildPrompt assembles the user message for one screening judgment.
func BuildPrompt(targetName, originalText, translatedText, language string, entities []entity.Entity) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Target name: %s\n\n", targetName)

	persons := entity.Persons(entities)
	if len(persons) == 0 {
		b.WriteString("No person names were detected in the article.\n\n")
	} else {
		b.WriteString("Person names detected in the article:\n")
		for _, p := range persons {
			fmt.Fprintf(&b, "- %s (confidence %.2f)\n", p.Name, p.Confidence)
			if p.Context != "" {
				fmt.Fprintf(&b, "  context: %s\n", flatten(p.Context))
			}
		}
		b.WriteString("\n")

		// Pre-computed string comparison gives the model an anchor, and
		// gives the analyst reading the transcript the same evidence the
		// fallback path would have used.
		if candidates := match.FindMatches(targetName, persons).Candidates(); len(candidates) > 0 {
			b.WriteString("Deterministic name comparison:\n")
			for _, c := range candidates {
				fmt.Fprintf(&b, "- %s: %s\n", c.Kind, c.Entity.Name)
			}
			b.WriteString("\n")
		}
	}

	fmt.Fprintf(&b, "Article language: %s\n\n", language)
	fmt.Fprintf(&b, "Article excerpt (original):\n%s\n", excerpt(originalText))
	if translatedText != "" && translatedText != originalText {
		fmt.Fprintf(&b, "\nArticle excerpt (English translation):\n%s\n", excerpt(translatedText))
	}

	b.WriteString("\nDoes this article refer to the target individual?")
	return b.String()
}

// excerpt returns the leading portion of text, bounded and rune-safe.
func excerpt(text string) string {
	text = strings.TrimSpace(text)
	runes := []rune(text)
	if len(runes) <= excerptRunes {
		return text
	}
	return string(runes[:excerptRunes]) + "..."
}
