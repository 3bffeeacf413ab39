// Package ocr turns PDF files into pages of plain text and table rows.
package ocr

import (
	"context"

	"github.com/rotisserie/eris"

	"github.com/sells-group/answer-cli/internal/config"
)

// Table is a list of rows, each row a list of cell strings. An empty cell
// is kept as "" so callers can decide how to fill it.
type Table [][]string

// Page is one PDF page in document order.
type Page struct {
	Number int
	Text   string
	Tables []Table
}

// Extractor extracts pages from PDF files.
type Extractor interface {
	ExtractPages(ctx context.Context, pdfPath string) ([]Page, error)
}

// NewExtractor creates an Extractor based on config.
func NewExtractor(cfg config.OCRConfig) (Extractor, error) {
	switch cfg.Provider {
	case "local", "":
		return NewPdfToText(cfg.PdfToTextPath), nil
	case "mistral":
		if cfg.MistralKey == "" {
			return nil, eris.New("ocr: mistral provider requires mistral_api_key")
		}
		return NewMistralOCR(cfg.MistralKey, cfg.MistralModel), nil
	default:
		return nil, eris.Errorf("ocr: unknown provider %q", cfg.Provider)
	}
}
