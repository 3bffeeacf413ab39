package marks

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/answer-cli/internal/ocr"
)

type stubExtractor struct {
	pages []ocr.Page
	err   error
}

func (s *stubExtractor) ExtractPages(_ context.Context, _ string) ([]ocr.Page, error) {
	return s.pages, s.err
}

func groupPage(group string, rows ...[]string) ocr.Page {
	table := ocr.Table{{"Maths", "Physics", "English", "Economics", "Biology"}}
	table = append(table, rows...)
	return ocr.Page{Text: "Student Marks - " + group, Tables: []ocr.Table{table}}
}

func samplePages() []ocr.Page {
	return []ocr.Page{
		groupPage("Group 1",
			[]string{"70", "10", "10", "5", "1"},
			[]string{"20", "10", "10", "7", "1"},
		),
		groupPage("Group 2",
			[]string{"69", "10", "10", "11", "1"},
			[]string{"68", "10", "10", "13", "1"},
			[]string{"90", "x", "10", "17", "1"},
		),
		groupPage("Group 3",
			[]string{"100", "10", "10", "19", "1"},
		),
		{Text: "Appendix", Tables: []ocr.Table{{{"99", "99", "99", "99", "99"}}}},
	}
}

func TestTotal(t *testing.T) {
	records, _ := RecordsFromPages(samplePages())

	total, err := Total(records, Params{
		TargetSubject: "Economics",
		MinMarks:      69,
		FilterSubject: "Maths",
		GroupStart:    1,
		GroupEnd:      2,
	})
	require.NoError(t, err)
	// Group 1 row 1 (5) + group 2 row 1 (11); the non-numeric row and
	// group 3 are excluded.
	assert.InDelta(t, 16, total, 0.001)
}

func TestTotal_CaseInsensitiveSubjects(t *testing.T) {
	records, _ := RecordsFromPages(samplePages())

	total, err := Total(records, Params{
		TargetSubject: "economics",
		MinMarks:      0,
		FilterSubject: "MATHS",
		GroupStart:    3,
		GroupEnd:      3,
	})
	require.NoError(t, err)
	assert.InDelta(t, 19, total, 0.001)
}

func TestTotal_UnknownSubject(t *testing.T) {
	_, err := Total(nil, Params{TargetSubject: "Chemistry", FilterSubject: "Maths"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid subject name")
}

func TestCompute(t *testing.T) {
	agg := NewAggregator(&stubExtractor{pages: samplePages()})

	got, err := agg.Compute(context.Background(), "marks.pdf",
		"What is the total Economics marks of students who scored 69 or more marks in Maths in groups 1-2 (including both groups)?")
	require.NoError(t, err)
	assert.Equal(t, "16", got)
}

func TestCompute_FractionalTotal(t *testing.T) {
	pages := []ocr.Page{groupPage("Group 1", []string{"50", "1", "1", "1", "2.5"})}
	agg := NewAggregator(&stubExtractor{pages: pages})

	got, err := agg.Compute(context.Background(), "marks.pdf",
		"total Biology marks of students who scored 10 or more marks in Maths in groups 1-1")
	require.NoError(t, err)
	assert.Equal(t, "2.5", got)
}

func TestCompute_NoMatchingRows(t *testing.T) {
	agg := NewAggregator(&stubExtractor{pages: samplePages()})

	got, err := agg.Compute(context.Background(), "marks.pdf",
		"total Maths marks of students who scored 101 or more marks in Maths in groups 1-3")
	require.NoError(t, err)
	assert.Equal(t, "0", got)
}

func TestCompute_UnparseableQuestion(t *testing.T) {
	agg := NewAggregator(&stubExtractor{pages: samplePages()})

	_, err := agg.Compute(context.Background(), "marks.pdf", "How many students are there?")
	require.Error(t, err)

	var perr *ProcessingError
	require.True(t, errors.As(err, &perr))
	assert.True(t, errors.Is(err, ErrUnparseableQuestion))
	assert.Contains(t, err.Error(), "an error occurred while processing the PDF")
	assert.Contains(t, err.Error(), "could not extract parameters")
}

func TestCompute_ExtractorError(t *testing.T) {
	agg := NewAggregator(&stubExtractor{err: errors.New("pdftotext failed")})

	_, err := agg.Compute(context.Background(), "marks.pdf",
		"total Maths marks of students who scored 1 or more marks in Maths in groups 1-3")
	require.Error(t, err)

	var perr *ProcessingError
	require.True(t, errors.As(err, &perr))
	assert.Contains(t, err.Error(), "pdftotext failed")
}

func TestCompute_WithPdfToText(t *testing.T) {
	// Fake pdftotext printing two layout pages and an unlabelled third one.
	tmpDir := t.TempDir()
	fakeBin := filepath.Join(tmpDir, "pdftotext")
	script := "#!/bin/sh\n" +
		"printf 'Student Marks - Group 5\\n\\n  Maths   Physics   English   Economics   Biology\\n  80      11        12        13          14\\n  40      21        22        23          24\\n\\f'\n" +
		"printf 'Student Marks - Group 6\\n\\n  Maths   Physics   English   Economics   Biology\\n  75      31        32        33          34\\n\\f'\n" +
		"printf 'Summary\\n\\n  90      41        42        43          44\\n\\f'\n"
	require.NoError(t, os.WriteFile(fakeBin, []byte(script), 0755))

	agg := NewAggregator(ocr.NewPdfToText(fakeBin))
	got, err := agg.Compute(context.Background(), "marks.pdf",
		"What is the total Physics marks of students who scored 70 or more marks in Maths in groups 5-6?")
	require.NoError(t, err)
	assert.Equal(t, "42", got)
}

func TestCompute_WithPdfToTextBlankCell(t *testing.T) {
	// The second student has no Physics mark; the row still counts.
	tmpDir := t.TempDir()
	fakeBin := filepath.Join(tmpDir, "pdftotext")
	script := "#!/bin/sh\n" +
		"printf 'Student Marks - Group 1\\n\\n  Maths   Physics   English   Economics   Biology\\n  70      10        50        40          60\\n  80                50        45          60\\n  50      12        50        99          60\\n\\f'\n"
	require.NoError(t, os.WriteFile(fakeBin, []byte(script), 0755))

	agg := NewAggregator(ocr.NewPdfToText(fakeBin))
	got, err := agg.Compute(context.Background(), "marks.pdf",
		"What is the total Economics marks of students who scored 60 or more marks in Maths in groups 1-1?")
	require.NoError(t, err)
	assert.Equal(t, "85", got)

	got, err = agg.Compute(context.Background(), "marks.pdf",
		"What is the total Physics marks of students who scored 60 or more marks in Maths in groups 1-1?")
	require.NoError(t, err)
	assert.Equal(t, "10", got)
}
