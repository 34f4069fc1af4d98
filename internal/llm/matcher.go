// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package llm

import (
	"context"
	"fmt"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"adverse-screen/internal/entity"
	"adverse-screen/internal/match"
	"adverse-screen/internal/observability"
	"adverse-screen/internal/resilience"
)

// minUsableResponse is the shortest model response worth parsing. Anything
// shorter cannot contain the three required fields.
const minUsableResponse = 20

// MatchRequest carries everything the judgment needs about one screening.
type MatchRequest struct {
	TargetName     string
	OriginalText   string
	TranslatedText string
	Language       string
	Entities       []entity.Entity
}

// Matcher produces screening decisions through a chat model, degrading to
// the deterministic rule-based path whenever the model cannot be used or
// returns something unusable. Every failure path yields a valid Decision.
type Matcher struct {
	client   *openai.Client
	model    string
	timeout  time.Duration
	breaker  *resilience.CircuitBreaker
	observer *observability.StandardObserver
}

// NewMatcher builds a Matcher. A nil client is allowed and pins the matcher
// to the rule-based path, which keeps offline runs and tests simple.
func NewMatcher(client *openai.Client, model string, timeout time.Duration, observer *observability.StandardObserver) *Matcher {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Matcher{
		client:   client,
		model:    model,
		timeout:  timeout,
		breaker:  resilience.NewCircuitBreaker(resilience.DefaultCircuitBreakerConfig("llm-matcher")),
		observer: observer,
	}
}

// Match returns the screening decision for one article and target.
func (m *Matcher) Match(ctx context.Context, req MatchRequest) match.Decision {
	if m.client == nil {
		return match.Decide(req.TargetName, req.Entities)
	}

	done := m.observer.StartTiming("matcher", "judge", "")

	raw, err := m.complete(ctx, req)
	if err != nil {
		done(false, map[string]interface{}{"error": err.Error(), "fallback": true})
		return match.Decide(req.TargetName, req.Entities)
	}
	if len(strings.TrimSpace(raw)) < minUsableResponse {
		done(false, map[string]interface{}{"fallback": true, "reason": "short response"})
		return match.Decide(req.TargetName, req.Entities)
	}

	decision := Parse(raw, "openai "+m.model)
	decision.EntitiesAnalyzed = entity.Names(entity.Persons(req.Entities))

	done(true, map[string]interface{}{
		"result":     string(decision.Result),
		"confidence": decision.Confidence,
	})
	return decision
}

// complete runs one chat completion under the timeout, retry policy and
// circuit breaker.
func (m *Matcher) complete(ctx context.Context, req MatchRequest) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, m.timeout)
	defer cancel()

	prompt := BuildPrompt(req.TargetName, req.OriginalText, req.TranslatedText, req.Language, req.Entities)

	var raw string
	err := resilience.RetryWithCircuitBreaker(ctx, resilience.JudgmentRetryConfig(), m.breaker, func(ctx context.Context) error {
		resp, err := m.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
			Model:       m.model,
			Temperature: 0.1,
			MaxTokens:   500,
			Messages: []openai.ChatCompletionMessage{
				{
					Role:    openai.ChatMessageRoleSystem,
					Content: systemPrompt,
				},
				{
					Role:    openai.ChatMessageRoleUser,
					Content: prompt,
				},
			},
		})
		if err != nil {
			return err
		}
		if len(resp.Choices) == 0 {
			return fmt.Errorf("empty completion response")
		}
		raw = resp.Choices[0].Message.Content
		return nil
	})
	if err != nil {
		return "", err
	}
	return raw, nil
}
