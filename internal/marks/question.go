package marks

import (
	"regexp"
	"strconv"

	"github.com/rotisserie/eris"
)

// ErrUnparseableQuestion is returned when a question does not follow the
// "total X marks of students who scored N or more marks in Y in groups A-B"
// phrasing.
var ErrUnparseableQuestion = eris.New("marks: could not extract parameters from the question")

var questionRe = regexp.MustCompile(`(?i)total\s+(\w+)\s+marks\s+of\s+students\s+who\s+scored\s+(\d+)\s+or\s+more\s+marks\s+in\s+(\w+)\s+in\s+groups\s+(\d+)-(\d+)`)

// Params are the filter and aggregation inputs named by a question.
type Params struct {
	TargetSubject string
	MinMarks      float64
	FilterSubject string
	GroupStart    int
	GroupEnd      int
}

// ParseQuestion extracts Params from question.
func ParseQuestion(question string) (Params, error) {
	m := questionRe.FindStringSubmatch(question)
	if m == nil {
		return Params{}, ErrUnparseableQuestion
	}

	minMarks, err := strconv.Atoi(m[2])
	if err != nil {
		return Params{}, eris.Wrapf(ErrUnparseableQuestion, "min marks %q", m[2])
	}
	start, err := strconv.Atoi(m[4])
	if err != nil {
		return Params{}, eris.Wrapf(ErrUnparseableQuestion, "group start %q", m[4])
	}
	end, err := strconv.Atoi(m[5])
	if err != nil {
		return Params{}, eris.Wrapf(ErrUnparseableQuestion, "group end %q", m[5])
	}

	return Params{
		TargetSubject: m[1],
		MinMarks:      float64(minMarks),
		FilterSubject: m[3],
		GroupStart:    start,
		GroupEnd:      end,
	}, nil
}
