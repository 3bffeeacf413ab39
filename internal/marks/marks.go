// Package marks answers "total X marks of students who scored N or more in
// Y in groups A-B" questions from a PDF of per-group mark tables.
package marks

import (
	"context"
	"strconv"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/sells-group/answer-cli/internal/ocr"
)

// ProcessingError wraps every failure of Compute.
type ProcessingError struct {
	Err error
}

func (e *ProcessingError) Error() string {
	return "an error occurred while processing the PDF: " + e.Err.Error()
}

func (e *ProcessingError) Unwrap() error {
	return e.Err
}

// Aggregator sums subject marks read from PDFs.
type Aggregator struct {
	extractor ocr.Extractor
}

// NewAggregator creates an Aggregator reading pages with extractor.
func NewAggregator(extractor ocr.Extractor) *Aggregator {
	return &Aggregator{extractor: extractor}
}

// Compute answers question from the PDF at pdfPath and returns the total
// as text. Any failure is returned as a *ProcessingError.
func (a *Aggregator) Compute(ctx context.Context, pdfPath, question string) (string, error) {
	total, err := a.compute(ctx, pdfPath, question)
	if err != nil {
		return "", &ProcessingError{Err: err}
	}
	return strconv.FormatFloat(total, 'f', -1, 64), nil
}

func (a *Aggregator) compute(ctx context.Context, pdfPath, question string) (float64, error) {
	params, err := ParseQuestion(question)
	if err != nil {
		return 0, err
	}

	pages, err := a.extractor.ExtractPages(ctx, pdfPath)
	if err != nil {
		return 0, eris.Wrap(err, "marks: extract pages")
	}

	records, stats := RecordsFromPages(pages)
	zap.L().Debug("marks: parsed PDF",
		zap.String("pdf", pdfPath),
		zap.Int("pages", stats.Pages),
		zap.Int("ungrouped_pages", stats.UngroupedPages),
		zap.Int("rows", stats.Rows),
		zap.Int("dropped_rows", stats.DroppedRows),
	)

	return Total(records, params)
}

// Total sums the target subject over records in the group range whose
// filter subject score is at least the minimum.
func Total(records []Record, p Params) (float64, error) {
	target := subjectIndex(p.TargetSubject)
	filter := subjectIndex(p.FilterSubject)
	if target < 0 || filter < 0 {
		return 0, eris.Errorf("marks: invalid subject name: %s or %s", p.FilterSubject, p.TargetSubject)
	}

	var total float64
	for _, r := range records {
		if r.Group < p.GroupStart || r.Group > p.GroupEnd {
			continue
		}
		if r.Scores[filter] < p.MinMarks {
			continue
		}
		total += r.Scores[target]
	}
	return total, nil
}
