// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package formatters

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"adverse-screen/internal/match"
	"adverse-screen/internal/screen"
)

// TextFormatter renders a human-readable screening summary for terminals.
type TextFormatter struct{}

func init() {
	Register(&TextFormatter{})
}

func (f *TextFormatter) Name() string { return "text" }

func (f *TextFormatter) Description() string {
	return "Human-readable screening summary"
}

func (f *TextFormatter) FileExtension() string { return ".txt" }

// Format renders the report. Color is applied per result unless disabled.
func (f *TextFormatter) Format(report *screen.Report, options FormatterOptions) (string, error) {
	if report == nil {
		return "", fmt.Errorf("nil report")
	}

	resultColor := colorForResult(report.Decision.Result, options.NoColor)

	var b strings.Builder
	b.WriteString("Adverse Media Screening Result\n")
	b.WriteString("==============================\n\n")
	fmt.Fprintf(&b, "Target:     %s\n", report.TargetName)
	if report.DocumentPath != "" {
		fmt.Fprintf(&b, "Document:   %s\n", report.DocumentPath)
	}
	fmt.Fprintf(&b, "Language:   %s", report.Language)
	if report.Translated {
		b.WriteString(" (translated to English)")
	}
	b.WriteString("\n\n")

	fmt.Fprintf(&b, "Result:     %s\n", resultColor(string(report.Decision.Result)))
	fmt.Fprintf(&b, "Confidence: %.2f\n", report.Decision.Confidence)
	fmt.Fprintf(&b, "Method:     %s\n", report.Decision.Method)
	fmt.Fprintf(&b, "Reason:     %s\n", report.Decision.Explanation)

	if options.Verbose && len(report.Entities) > 0 {
		b.WriteString("\nDetected entities:\n")
		for _, e := range report.Entities {
			if !showConfidence(e.Confidence, options.ConfidenceLevel) {
				continue
			}
			fmt.Fprintf(&b, "  - %-30s %-13s %.2f  [%s]\n", e.Name, e.Category, e.Confidence, e.Source)
		}
	}

	if report.DurationMs > 0 {
		fmt.Fprintf(&b, "\nCompleted in %dms\n", report.DurationMs)
	}

	return b.String(), nil
}

// showConfidence applies the confidence-level display filter. An empty
// filter shows everything.
func showConfidence(confidence float64, levels map[string]bool) bool {
	if len(levels) == 0 || levels["all"] {
		return true
	}
	switch {
	case confidence >= 0.8:
		return levels["high"]
	case confidence >= 0.5:
		return levels["medium"]
	default:
		return levels["low"]
	}
}

// colorForResult picks the sprint function for a result value.
func colorForResult(result match.Result, noColor bool) func(a ...interface{}) string {
	if noColor {
		return fmt.Sprint
	}
	switch result {
	case match.ResultMatch:
		return color.New(color.FgRed, color.Bold).SprintFunc()
	case match.ResultNoMatch:
		return color.New(color.FgGreen).SprintFunc()
	default:
		return color.New(color.FgYellow).SprintFunc()
	}
}
