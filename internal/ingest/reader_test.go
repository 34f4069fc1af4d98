// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package ingest

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeTemp(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestReadDocument_PlainText(t *testing.T) {
	path := writeTemp(t, "article.txt", []byte("Anne Brorhilker led the Cum-Ex investigation.\r\n"))
	doc, err := ReadDocument(path)
	if err != nil {
		t.Fatal(err)
	}
	if doc.Format != "text" {
		t.Errorf("format = %q", doc.Format)
	}
	if doc.Text != "Anne Brorhilker led the Cum-Ex investigation." {
		t.Errorf("text = %q", doc.Text)
	}
}

func TestReadDocument_UnknownExtensionFallsBackToText(t *testing.T) {
	path := writeTemp(t, "article.article", []byte("plain content"))
	doc, err := ReadDocument(path)
	if err != nil {
		t.Fatal(err)
	}
	if doc.Format != "text" || doc.Text != "plain content" {
		t.Errorf("got format=%q text=%q", doc.Format, doc.Text)
	}
}

func TestReadDocument_Windows1252(t *testing.T) {
	// "Müller" with 0xFC for ü, invalid as UTF-8.
	raw := []byte{'M', 0xFC, 'l', 'l', 'e', 'r'}
	path := writeTemp(t, "legacy.txt", raw)
	doc, err := ReadDocument(path)
	if err != nil {
		t.Fatal(err)
	}
	if doc.Text != "Müller" {
		t.Errorf("decoded = %q", doc.Text)
	}
}

func TestReadDocument_Missing(t *testing.T) {
	if _, err := ReadDocument(filepath.Join(t.TempDir(), "nope.txt")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestReadDocument_Directory(t *testing.T) {
	if _, err := ReadDocument(t.TempDir()); err == nil {
		t.Fatal("expected error for directory")
	}
}

func TestReadDocument_RTF(t *testing.T) {
	rtf := `{\rtf1\ansi{\fonttbl{\f0 Times New Roman;}}
\f0\fs24 Die Ermittlerin Anne Brorhilker\par kritisiert den Minister.\par}`
	path := writeTemp(t, "article.rtf", []byte(rtf))
	doc, err := ReadDocument(path)
	if err != nil {
		t.Fatal(err)
	}
	if doc.Format != "rtf" {
		t.Errorf("format = %q", doc.Format)
	}
	if !strings.Contains(doc.Text, "Anne Brorhilker") {
		t.Errorf("font table leaked or text lost: %q", doc.Text)
	}
	if strings.Contains(doc.Text, "Times New Roman") {
		t.Errorf("font table should be stripped: %q", doc.Text)
	}
	if !strings.Contains(doc.Text, "kritisiert den Minister.") {
		t.Errorf("paragraph after \\par lost: %q", doc.Text)
	}
}

func TestStripRTF_Escapes(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"hex umlaut", `M\'fcller`, "Müller"},
		{"unicode escape", `Jos\u233?`, "José"},
		{"negative unicode wraps", `\u-3996?`, string(rune(61540))},
		{"unicode with hex fallback", `Jos\u233\'e9 Maria`, "José Maria"},
		{"escaped braces", `a\{b\}c`, "a{b}c"},
		{"line break", `one\line two`, "one\ntwo"},
		{"smart quote", `\rquote s`, "'s"},
		{"em dash control", `a\emdash b`, "a-b"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := stripRTF(tt.in); got != tt.want {
				t.Errorf("stripRTF(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestStripRTF_SkipsInfoGroup(t *testing.T) {
	in := `{\rtf1{\info{\author Secret Author}}Visible text}`
	got := stripRTF(in)
	if strings.Contains(got, "Secret") {
		t.Errorf("info group leaked: %q", got)
	}
	if !strings.Contains(got, "Visible text") {
		t.Errorf("body lost: %q", got)
	}
}

func TestDecodeText_ValidUTF8PassesThrough(t *testing.T) {
	in := []byte("José María")
	if got := decodeText(in); got != "José María" {
		t.Errorf("got %q", got)
	}
}

func TestNormalizeText(t *testing.T) {
	if got := normalizeText("a\r\nb\rc\n"); got != "a\nb\nc" {
		t.Errorf("got %q", got)
	}
}
