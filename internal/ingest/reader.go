// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package ingest loads article documents from disk and produces clean plain
// text regardless of the source format. Supported formats are plain text,
// RTF, and PDF; selection is by file extension.
package ingest

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// maxDocumentBytes caps how much of a document is read. Adverse media
// articles are short; anything beyond this is almost certainly not an
// article and would only slow recognition down.
const maxDocumentBytes = 10 << 20 // 10 MB

// Document is the text extracted from one input file.
type Document struct {
	Path   string
	Format string // "text", "rtf", or "pdf"
	Text   string
}

// ReadDocument loads the file at path and extracts its plain text. The
// format is chosen by extension; unknown extensions are treated as plain
// text since most adverse media feeds deliver bare .txt articles.
func ReadDocument(path string) (*Document, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("cannot access document: %w", err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("document path is a directory: %s", path)
	}
	if info.Size() > maxDocumentBytes {
		return nil, fmt.Errorf("document too large (%d bytes, limit %d)", info.Size(), maxDocumentBytes)
	}

	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".pdf":
		text, err := extractPDFText(path)
		if err != nil {
			return nil, fmt.Errorf("pdf extraction failed: %w", err)
		}
		return &Document{Path: path, Format: "pdf", Text: normalizeText(text)}, nil

	case ".rtf":
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("cannot read document: %w", err)
		}
		return &Document{Path: path, Format: "rtf", Text: normalizeText(stripRTF(string(raw)))}, nil

	default:
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("cannot read document: %w", err)
		}
		return &Document{Path: path, Format: "text", Text: normalizeText(decodeText(raw))}, nil
	}
}

// decodeText turns raw bytes into a UTF-8 string. Valid UTF-8 passes
// through; otherwise Windows-1252 is assumed, which covers the legacy
// encodings seen in European news exports and never fails to decode.
func decodeText(raw []byte) string {
	if utf8.Valid(raw) {
		return string(raw)
	}
	decoded, err := charmap.Windows1252.NewDecoder().Bytes(raw)
	if err == nil {
		return string(decoded)
	}
	decoded, err = charmap.ISO8859_1.NewDecoder().Bytes(raw)
	if err == nil {
		return string(decoded)
	}
	// Last resort: keep the valid runs and drop invalid bytes.
	return strings.ToValidUTF8(string(raw), "")
}

// normalizeText standardizes line endings and trims trailing whitespace so
// downstream offsets are stable across platforms.
func normalizeText(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	return strings.TrimSpace(text)
}
