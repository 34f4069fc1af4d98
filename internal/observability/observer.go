// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package observability provides leveled operation logging for the screening
// pipeline components.
package observability

import (
	"encoding/json"
	"io"
	"time"
)

// StandardObserver implements observability for all components
type StandardObserver struct {
	level  ObservabilityLevel
	writer io.Writer
}

type ObservabilityLevel int

const (
	ObservabilityOff     ObservabilityLevel = 0
	ObservabilityMetrics ObservabilityLevel = 1
	ObservabilityDebug   ObservabilityLevel = 2
)

// NewStandardObserver creates observability component
func NewStandardObserver(level ObservabilityLevel, writer io.Writer) *StandardObserver {
	return &StandardObserver{
		level:  level,
		writer: writer,
	}
}

// StartTiming returns a function to complete timing
func (o *StandardObserver) StartTiming(component, operation, documentPath string) func(success bool, metadata map[string]interface{}) {
	start := time.Now()

	return func(success bool, metadata map[string]interface{}) {
		duration := time.Since(start)

		o.LogOperation(StandardObservabilityData{
			Component:    component,
			Operation:    operation,
			DocumentPath: documentPath,
			DurationMs:   duration.Milliseconds(),
			Success:      success,
			Metadata:     metadata,
		})
	}
}

// LogOperation logs operation data
func (o *StandardObserver) LogOperation(data StandardObservabilityData) {
	if o == nil || o.level == ObservabilityOff || o.writer == nil {
		return
	}

	data.RequestID = "req-" + time.Now().Format("20060102-150405")

	// Only emit JSON records in debug mode
	if o.level == ObservabilityDebug {
		json.NewEncoder(o.writer).Encode(data)
	}
}

// StandardObservabilityData for all components
type StandardObservabilityData struct {
	Component    string                 `json:"component"`
	Operation    string                 `json:"operation"`
	RequestID    string                 `json:"request_id"`
	DocumentPath string                 `json:"document_path,omitempty"`
	TargetName   string                 `json:"target_name,omitempty"`
	Language     string                 `json:"language,omitempty"`
	DurationMs   int64                  `json:"duration_ms,omitempty"`
	Success      bool                   `json:"success"`
	Error        string                 `json:"error,omitempty"`
	EntityCount  int                    `json:"entity_count,omitempty"`
	Metadata     map[string]interface{} `json:"metadata,omitempty"`
}
