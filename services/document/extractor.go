package document

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

// ExtractionResult holds the output of a PDF text extraction.
type ExtractionResult struct {
	Text      string
	PageCount int
}

// TextExtractor converts an uploaded binary document into plain text.
type TextExtractor interface {
	Extract(data []byte) (*ExtractionResult, error)
}

// PDFExtractor extracts text with the pure-Go ledongthuc/pdf reader, so no
// external extraction binary is needed at deploy time.
type PDFExtractor struct{}

func (PDFExtractor) Extract(data []byte) (*ExtractionResult, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("failed to open PDF: %w", err)
	}

	pageCount := reader.NumPage()
	var sb strings.Builder
	for i := 1; i <= pageCount; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			// Image-only pages have no text layer; skip them.
			continue
		}
		if sb.Len() > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(strings.TrimSpace(text))
	}

	return &ExtractionResult{
		Text:      strings.TrimSpace(sb.String()),
		PageCount: pageCount,
	}, nil
}
