// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package formatters

import (
	"encoding/json"
	"fmt"

	"adverse-screen/internal/screen"
)

// JSONFormatter renders the report as indented JSON for downstream tooling.
type JSONFormatter struct{}

func init() {
	Register(&JSONFormatter{})
}

func (f *JSONFormatter) Name() string { return "json" }

func (f *JSONFormatter) Description() string {
	return "Machine-readable screening report"
}

func (f *JSONFormatter) FileExtension() string { return ".json" }

func (f *JSONFormatter) Format(report *screen.Report, options FormatterOptions) (string, error) {
	if report == nil {
		return "", fmt.Errorf("nil report")
	}

	out := report
	if !options.Verbose {
		// The compact form drops per-entity evidence.
		trimmed := *report
		trimmed.Entities = nil
		out = &trimmed
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return "", fmt.Errorf("error marshaling report: %w", err)
	}
	return string(data) + "\n", nil
}
