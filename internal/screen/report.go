// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package screen

import (
	"time"

	"adverse-screen/internal/entity"
	"adverse-screen/internal/match"
)

// Report is the complete outcome of screening one article against one
// target name. It carries the decision plus the evidence that produced it,
// so formatters can render both a one-line verdict and a full audit view.
type Report struct {
	TargetName   string          `json:"target_name"`
	DocumentPath string          `json:"document_path,omitempty"`
	Language     string          `json:"language"`
	Translated   bool            `json:"translated"`
	Decision     match.Decision  `json:"decision"`
	Entities     []entity.Entity `json:"entities"`
	DurationMs   int64           `json:"duration_ms"`
	ScreenedAt   time.Time       `json:"screened_at"`
}
