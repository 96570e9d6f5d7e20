// Package pdf extracts the plain-text layer of an uploaded resume.
//
// We use the ledongthuc/pdf library for text extraction.
// It's a pure Go implementation — no CGO or external dependencies required.
package pdf

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/Shimizu-Technology/resume-ai/internal/apperrors"
)

// ExtractionResult holds the output from a PDF text extraction.
type ExtractionResult struct {
	Text      string // Page texts concatenated in page order
	PageCount int
	WordCount int
}

// Extract reads a PDF held in memory and returns the text of every page,
// concatenated in page order. No separators are inserted between pages.
//
// A PDF without a text layer (an image-only scan) is not an error; it
// produces an empty Text. Every parse failure wraps
// apperrors.ErrMalformedDocument.
func Extract(data []byte) (result *ExtractionResult, err error) {
	if !ValidatePDF(data) {
		return nil, fmt.Errorf("%w: missing %%PDF- header", apperrors.ErrMalformedDocument)
	}

	// The parser panics on some corrupt object graphs instead of returning
	// an error. Those are still malformed documents.
	defer func() {
		if r := recover(); r != nil {
			result = nil
			err = fmt.Errorf("%w: %v", apperrors.ErrMalformedDocument, r)
		}
	}()

	pdfReader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to open PDF: %v", apperrors.ErrMalformedDocument, err)
	}

	pageCount := pdfReader.NumPage()

	var allText strings.Builder
	for i := 1; i <= pageCount; i++ {
		page := pdfReader.Page(i)
		if page.V.IsNull() {
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			return nil, fmt.Errorf("%w: page %d: %v", apperrors.ErrMalformedDocument, i, err)
		}
		// The library writes "\n" at every BT operator to separate text
		// objects; the first one on a page separates nothing.
		allText.WriteString(strings.TrimPrefix(text, "\n"))
	}

	extractedText := allText.String()
	return &ExtractionResult{
		Text:      extractedText,
		PageCount: pageCount,
		WordCount: countWords(extractedText),
	}, nil
}

// countWords counts the number of words in a text string.
func countWords(text string) int {
	return len(strings.Fields(text))
}

// ValidatePDF checks if the data looks like a valid PDF by checking the magic bytes.
func ValidatePDF(data []byte) bool {
	// PDF files start with "%PDF-"
	return len(data) >= 5 && string(data[:5]) == "%PDF-"
}
