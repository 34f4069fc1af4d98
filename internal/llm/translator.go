// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package llm

import (
	"context"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	"adverse-screen/internal/observability"
	"adverse-screen/internal/resilience"
)

// Translator renders article text into English for the statistical
// recognizer. Implementations must return the input unchanged rather than
// fail the pipeline when translation is unavailable.
type Translator interface {
	Translate(ctx context.Context, text, sourceLanguage string) (string, error)
}

// PassthroughTranslator returns text unchanged. Used for English input and
// when the generative path is disabled.
type PassthroughTranslator struct{}

func (PassthroughTranslator) Translate(_ context.Context, text, _ string) (string, error) {
	return text, nil
}

// OpenAITranslator translates with a chat completion. Translation quality
// only needs to preserve names and surrounding role words, which even small
// models do reliably.
type OpenAITranslator struct {
	client   *openai.Client
	model    string
	observer *observability.StandardObserver
}

// NewOpenAITranslator builds a translator over an existing client.
func NewOpenAITranslator(client *openai.Client, model string, observer *observability.StandardObserver) *OpenAITranslator {
	return &OpenAITranslator{client: client, model: model, observer: observer}
}

// Translate returns the English rendering of text. On any failure the
// original text comes back with the error so callers can degrade to
// pattern-only recognition.
func (t *OpenAITranslator) Translate(ctx context.Context, text, sourceLanguage string) (string, error) {
	if t.client == nil || strings.TrimSpace(text) == "" || sourceLanguage == "en" {
		return text, nil
	}

	done := t.observer.StartTiming("translator", "translate", "")

	translated, err := resilience.RetryWithResult(ctx, resilience.JudgmentRetryConfig(), func(ctx context.Context) (string, error) {
		resp, err := t.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
			Model:       t.model,
			Temperature: 0.0,
			Messages: []openai.ChatCompletionMessage{
				{
					Role:    openai.ChatMessageRoleSystem,
					Content: "Translate the user's text to English. Preserve all person and organization names exactly as written, including titles. Output only the translation.",
				},
				{
					Role:    openai.ChatMessageRoleUser,
					Content: text,
				},
			},
		})
		if err != nil {
			return "", err
		}
		if len(resp.Choices) == 0 {
			return "", fmt.Errorf("empty translation response")
		}
		return strings.TrimSpace(resp.Choices[0].Message.Content), nil
	})

	if err != nil {
		done(false, map[string]interface{}{"error": err.Error(), "language": sourceLanguage})
		return text, err
	}
	if translated == "" {
		done(false, map[string]interface{}{"language": sourceLanguage})
		return text, fmt.Errorf("blank translation returned")
	}

	done(true, map[string]interface{}{"language": sourceLanguage, "chars": len(translated)})
	return translated, nil
}
