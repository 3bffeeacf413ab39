package marks

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/sells-group/answer-cli/internal/ocr"
)

// Subjects are the five score columns of every marks table, in order.
var Subjects = [5]string{"Maths", "Physics", "English", "Economics", "Biology"}

var groupRe = regexp.MustCompile(`Group\s+(\d+)`)

// Record is one student's scores within a group.
type Record struct {
	Group  int
	Scores [5]float64
}

// subjectIndex finds subject among Subjects ignoring case, or returns -1.
func subjectIndex(subject string) int {
	for i, s := range Subjects {
		if strings.EqualFold(s, subject) {
			return i
		}
	}
	return -1
}

// PageGroup returns the number from the first "Group N" label in text.
func PageGroup(text string) (int, bool) {
	m := groupRe.FindStringSubmatch(text)
	if m == nil {
		return 0, false
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	return n, true
}

// Stats counts what RecordsFromPages kept and dropped.
type Stats struct {
	Pages          int
	UngroupedPages int
	Rows           int
	DroppedRows    int
}

// RecordsFromPages builds records from every five-cell table row on pages
// carrying a group label. Blank cells count as zero; rows with any other
// non-numeric cell, such as header rows, are dropped.
func RecordsFromPages(pages []ocr.Page) ([]Record, Stats) {
	var (
		records []Record
		stats   Stats
	)
	for _, page := range pages {
		stats.Pages++
		group, ok := PageGroup(page.Text)
		if !ok {
			stats.UngroupedPages++
			continue
		}

		for _, table := range page.Tables {
			for _, row := range table {
				if len(row) != len(Subjects) {
					continue
				}
				stats.Rows++
				rec, ok := parseRow(group, row)
				if !ok {
					stats.DroppedRows++
					continue
				}
				records = append(records, rec)
			}
		}
	}
	return records, stats
}

func parseRow(group int, row []string) (Record, bool) {
	rec := Record{Group: group}
	for i, cell := range row {
		cell = strings.TrimSpace(cell)
		if cell == "" {
			cell = "0"
		}
		v, err := strconv.ParseFloat(cell, 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			return Record{}, false
		}
		rec.Scores[i] = v
	}
	return rec, true
}
