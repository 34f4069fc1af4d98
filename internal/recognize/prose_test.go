// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package recognize

import (
	"strings"
	"testing"
)

func TestStatisticalRecognizer_English(t *testing.T) {
	r := NewStatisticalRecognizer()
	text := "Prosecutor Anne Brorhilker criticized Justice Minister Benjamin Limbach over the Cum-Ex investigation in Cologne."
	mentions := r.Recognize(text, "en")
	if len(mentions) == 0 {
		t.Fatal("expected entities in English text")
	}

	found := false
	for _, m := range mentions {
		if strings.Contains(m.Name, "Brorhilker") {
			found = true
			if m.Start < 0 || m.End > len(text) || m.Start >= m.End {
				t.Errorf("bad span [%d, %d)", m.Start, m.End)
			}
			if !strings.Contains(text[m.Start:m.End], "Brorhilker") {
				t.Errorf("span does not cover the name: %q", text[m.Start:m.End])
			}
		}
		if m.Source != "prose-en" {
			t.Errorf("source = %q", m.Source)
		}
	}
	if !found {
		t.Error("Brorhilker not detected by statistical model")
	}
}

func TestStatisticalRecognizer_NonEnglish(t *testing.T) {
	r := NewStatisticalRecognizer()
	if got := r.Recognize("Anne Brorhilker kritisiert den Minister.", "de"); got != nil {
		t.Errorf("non-English text should be skipped, got %d mentions", len(got))
	}
}

func TestStatisticalRecognizer_Empty(t *testing.T) {
	r := NewStatisticalRecognizer()
	if got := r.Recognize("   ", "en"); got != nil {
		t.Errorf("blank text should yield no mentions, got %d", len(got))
	}
}

func TestStatisticalRecognizer_RepeatedName(t *testing.T) {
	r := NewStatisticalRecognizer()
	text := "John Smith met investors. Later John Smith resigned."
	mentions := r.Recognize(text, "en")

	// Repeated names must resolve to distinct, advancing spans.
	var starts []int
	for _, m := range mentions {
		if m.Name == "John Smith" {
			starts = append(starts, m.Start)
		}
	}
	for i := 1; i < len(starts); i++ {
		if starts[i] <= starts[i-1] {
			t.Errorf("repeated mention spans should advance: %v", starts)
		}
	}
}
