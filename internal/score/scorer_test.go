// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package score

import "testing"

func TestScore_AlwaysInRange(t *testing.T) {
	s := NewScorer()
	cases := []struct {
		name     string
		mention  string
		base     float64
		context  string
		language string
	}{
		{"empty mention", "", BasePattern, "", "en"},
		{"digit heavy", "Agent 007", 0.2, "", "en"},
		{"very low base", "x", 0.0, "", "en"},
		{"everything boosted", "Frau Änne Müller", BaseStatistical, "Frau Richterin am Gericht", "de"},
		{"unsupported language", "山田 太郎", BaseStatistical, "", "ja"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := s.Score(tc.mention, tc.base, tc.context, tc.language)
			if got < 0.1 || got > 1.0 {
				t.Errorf("Score(%q) = %v, outside [0.1, 1.0]", tc.mention, got)
			}
		})
	}
}

func TestScore_MultiTokenBonus(t *testing.T) {
	s := NewScorer()
	single := s.Score("Brorhilker", BaseStatistical, "", "en")
	multi := s.Score("Anne Brorhilker", BaseStatistical, "", "en")
	if multi <= single {
		t.Errorf("multi-token name should score higher: single=%v multi=%v", single, multi)
	}
}

func TestScore_ProperCaseBonus(t *testing.T) {
	s := NewScorer()
	proper := s.Score("Anne Brorhilker", BasePattern, "", "en")
	lower := s.Score("anne brorhilker", BasePattern, "", "en")
	if proper <= lower {
		t.Errorf("proper-cased name should score higher: proper=%v lower=%v", proper, lower)
	}
}

func TestScore_NativeCharBonus(t *testing.T) {
	// BasePattern keeps the sums below the ceiling so the bonus is
	// observable: a proper-cased multi-token mention at BaseStatistical
	// already saturates the clamp.
	s := NewScorer()
	accented := s.Score("Jürgen Möller", BasePattern, "", "de")
	plain := s.Score("Jurgen Moller", BasePattern, "", "de")
	if accented <= plain {
		t.Errorf("native accented name should score higher: accented=%v plain=%v", accented, plain)
	}
	// The same accents carry no signal for a language they don't belong to.
	misplaced := s.Score("Jürgen Möller", BasePattern, "", "en")
	if misplaced != plain {
		t.Errorf("accent bonus applied for wrong language: misplaced=%v plain=%v", misplaced, plain)
	}
}

func TestScore_ContextKeywordBonus(t *testing.T) {
	s := NewScorer()
	withContext := s.Score("Anne Brorhilker", BasePattern, "die Staatsanwältin Anne Brorhilker sagte", "de")
	withoutContext := s.Score("Anne Brorhilker", BasePattern, "in einem Brief an die Behörde", "de")
	if withContext <= withoutContext {
		t.Errorf("person-indicating context should score higher: with=%v without=%v", withContext, withoutContext)
	}
}

func TestScore_FeminineRoleForms(t *testing.T) {
	s := NewScorer()
	feminine := s.Score("Anne Brorhilker", BasePattern, "die Staatsanwältin sagte aus", "de")
	masculine := s.Score("Benjamin Limbach", BasePattern, "der Staatsanwalt sagte aus", "de")
	if feminine != masculine {
		t.Errorf("feminine role form should carry the same bonus: feminine=%v masculine=%v", feminine, masculine)
	}
}

func TestScore_DigitPenalty(t *testing.T) {
	s := NewScorer()
	clean := s.Score("John Smith", BaseStatistical, "", "en")
	digits := s.Score("John Smith2", BaseStatistical, "", "en")
	if digits >= clean {
		t.Errorf("digits should lower the score: clean=%v digits=%v", clean, digits)
	}
}

func TestScore_NeverZero(t *testing.T) {
	s := NewScorer()
	got := s.Score("x1", 0.0, "", "en")
	if got < 0.1 {
		t.Errorf("score floor violated: %v", got)
	}
}

func TestBaseForSource(t *testing.T) {
	if BaseForSource("pattern-de") != BasePattern {
		t.Error("pattern sources should use the pattern base")
	}
	if BaseForSource("prose-en") != BaseStatistical {
		t.Error("statistical sources should use the statistical base")
	}
}
