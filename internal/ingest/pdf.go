// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package ingest

import (
	"bytes"
	"fmt"

	"github.com/ledongthuc/pdf"
)

// maxPDFPages bounds extraction work. An adverse media article that runs
// past this is truncated rather than rejected.
const maxPDFPages = 50

// extractPDFText pulls plain text out of a PDF document page by page.
func extractPDFText(filePath string) (string, error) {
	f, r, err := pdf.Open(filePath)
	if err != nil {
		return "", fmt.Errorf("error opening PDF: %v", err)
	}
	defer f.Close()

	pageCount := r.NumPage()
	if pageCount > maxPDFPages {
		pageCount = maxPDFPages
	}

	var buf bytes.Buffer
	failedPages := 0
	for i := 1; i <= pageCount; i++ {
		p := r.Page(i)
		if p.V.IsNull() {
			failedPages++
			continue
		}
		text, err := extractPageText(p)
		if err != nil {
			failedPages++
			continue
		}
		if buf.Len() > 0 {
			buf.WriteString("\n\n")
		}
		buf.WriteString(text)
	}

	if buf.Len() == 0 {
		return "", fmt.Errorf("no extractable text in %d pages (%d failed)", pageCount, failedPages)
	}
	return buf.String(), nil
}

// extractPageText reads a page's text rows, preserving line structure so
// the recognizers see sentence-shaped input.
func extractPageText(p pdf.Page) (text string, err error) {
	// The pdf library panics on some malformed content streams.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("page extraction panic: %v", r)
		}
	}()

	rows, err := p.GetTextByRow()
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	for _, row := range rows {
		for i, word := range row.Content {
			if i > 0 {
				buf.WriteByte(' ')
			}
			buf.WriteString(word.S)
		}
		buf.WriteByte('\n')
	}
	return buf.String(), nil
}
