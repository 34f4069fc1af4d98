// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package screen runs the adverse media screening pipeline: ingest,
// language detection, translation, recognition, scoring, deduplication and
// the final match decision.
package screen

import (
	"context"
	"time"

	"adverse-screen/internal/dedupe"
	"adverse-screen/internal/entity"
	"adverse-screen/internal/ingest"
	"adverse-screen/internal/langdetect"
	"adverse-screen/internal/llm"
	"adverse-screen/internal/match"
	"adverse-screen/internal/observability"
	"adverse-screen/internal/recognize"
	"adverse-screen/internal/score"
)

// Judge produces the final decision for a screening request. The LLM
// matcher implements this; tests substitute deterministic fakes.
type Judge interface {
	Match(ctx context.Context, req llm.MatchRequest) match.Decision
}

// Options configures a Screener.
type Options struct {
	Recognizers []recognize.Recognizer
	Translator  llm.Translator
	Judge       Judge
	Observer    *observability.StandardObserver
	// MaxArticleChars truncates oversized articles before recognition.
	// Zero means no limit.
	MaxArticleChars int
}

// Screener orchestrates one screening run per call. Safe for concurrent
// use: all state is read-only after construction.
type Screener struct {
	recognizers []recognize.Recognizer
	scorer      *score.Scorer
	translator  llm.Translator
	judge       Judge
	observer    *observability.StandardObserver
	maxChars    int
}

// NewScreener builds a Screener. Missing options get working defaults: the
// two standard recognizers, a passthrough translator, and the rule-based
// decision path.
func NewScreener(opts Options) *Screener {
	recognizers := opts.Recognizers
	if len(recognizers) == 0 {
		recognizers = []recognize.Recognizer{
			recognize.NewStatisticalRecognizer(),
			recognize.NewPatternRecognizer(),
		}
	}
	translator := opts.Translator
	if translator == nil {
		translator = llm.PassthroughTranslator{}
	}
	return &Screener{
		recognizers: recognizers,
		scorer:      score.NewScorer(),
		translator:  translator,
		judge:       opts.Judge,
		observer:    opts.Observer,
		maxChars:    opts.MaxArticleChars,
	}
}

// ScreenFile loads the document at path and screens it against targetName.
func (s *Screener) ScreenFile(ctx context.Context, path, targetName string) (*Report, error) {
	doc, err := ingest.ReadDocument(path)
	if err != nil {
		return nil, err
	}
	report := s.Screen(ctx, doc.Text, targetName)
	report.DocumentPath = doc.Path
	return report, nil
}

// Screen runs the pipeline over article text. It never fails: recognition
// and judgment degrade toward the conservative rule-based decision, and the
// report records what actually ran.
func (s *Screener) Screen(ctx context.Context, text, targetName string) *Report {
	start := time.Now()
	done := s.observer.StartTiming("screener", "screen", "")

	text = truncateRunes(text, s.maxChars)
	language := langdetect.Detect(text)

	// Translation failure is survivable: the pattern recognizer still
	// covers the original language.
	translated := text
	didTranslate := false
	if language != "en" {
		if english, err := s.translator.Translate(ctx, text, language); err == nil && english != text {
			translated = english
			didTranslate = true
		}
	}

	entities := s.recognizeAll(text, translated, language)

	var decision match.Decision
	if s.judge != nil {
		decision = s.judge.Match(ctx, llm.MatchRequest{
			TargetName:     targetName,
			OriginalText:   text,
			TranslatedText: translated,
			Language:       language,
			Entities:       entities,
		})
	} else {
		decision = match.Decide(targetName, entities)
	}

	report := &Report{
		TargetName: targetName,
		Language:   language,
		Translated: didTranslate,
		Decision:   decision,
		Entities:   entities,
		DurationMs: time.Since(start).Milliseconds(),
		ScreenedAt: start.UTC(),
	}

	done(true, map[string]interface{}{
		"language":     language,
		"entity_count": len(entities),
		"result":       string(decision.Result),
	})
	return report
}

// recognizeAll runs every recognizer over the original text and, when a
// translation exists, over the English text too, then scores and
// deduplicates the combined mentions.
func (s *Screener) recognizeAll(original, translated, language string) []entity.Entity {
	var mentions []recognize.Mention
	for _, r := range s.recognizers {
		mentions = append(mentions, r.Recognize(original, language)...)
		if language != "en" {
			mentions = append(mentions, r.Recognize(translated, "en")...)
		}
	}

	entities := make([]entity.Entity, 0, len(mentions))
	for _, m := range mentions {
		confidence := s.scorer.Score(m.Name, score.BaseForSource(m.Source), m.Context, m.Language)
		entities = append(entities, entity.New(
			m.Name,
			entity.CategoryFromLabel(m.Label),
			entity.Span{Start: m.Start, End: m.End},
			m.Language,
			m.Source,
			confidence,
			m.Context,
		))
	}

	return dedupe.Deduplicate(entities)
}

// truncateRunes bounds text to limit runes. Zero or negative limit means
// unbounded.
func truncateRunes(text string, limit int) string {
	if limit <= 0 {
		return text
	}
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	return string(runes[:limit])
}
