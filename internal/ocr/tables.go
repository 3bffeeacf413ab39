package ocr

import (
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"
)

var (
	layoutCellRe   = regexp.MustCompile(`\S+(?: \S+)*`)
	separatorRowRe = regexp.MustCompile(`^\|?\s*:?-{3,}:?\s*(\|\s*:?-{3,}:?\s*)*\|?$`)
)

// layoutCell is a run of text in a layout line. start and end are rune
// columns.
type layoutCell struct {
	start, end int
	text       string
}

func layoutCells(line string) []layoutCell {
	locs := layoutCellRe.FindAllStringIndex(line, -1)
	cells := make([]layoutCell, len(locs))
	for i, loc := range locs {
		text := line[loc[0]:loc[1]]
		start := utf8.RuneCountInString(line[:loc[0]])
		cells[i] = layoutCell{start: start, end: start + utf8.RuneCountInString(text), text: text}
	}
	return cells
}

// LayoutTables groups consecutive multi-column lines of pdftotext -layout
// output into tables. Cells are separated by runs of two or more spaces.
// A blank line or a single-column line ends the current table.
//
// Columns are the merged character spans of all cells in a table, so a
// blank cell in one row comes back as "" instead of shifting the cells
// after it.
func LayoutTables(text string) []Table {
	var (
		tables []Table
		block  [][]layoutCell
	)
	flush := func() {
		if len(block) > 0 {
			tables = append(tables, alignColumns(block))
			block = nil
		}
	}

	for _, line := range strings.Split(text, "\n") {
		cells := layoutCells(line)
		if len(cells) < 2 {
			flush()
			continue
		}
		block = append(block, cells)
	}
	flush()

	return tables
}

func alignColumns(rows [][]layoutCell) Table {
	var all []layoutCell
	for _, row := range rows {
		all = append(all, row...)
	}
	sort.SliceStable(all, func(i, j int) bool { return all[i].start < all[j].start })

	var cols []layoutCell
	for _, c := range all {
		if n := len(cols); n > 0 && c.start < cols[n-1].end {
			if c.end > cols[n-1].end {
				cols[n-1].end = c.end
			}
			continue
		}
		cols = append(cols, layoutCell{start: c.start, end: c.end})
	}

	table := make(Table, len(rows))
	for i, row := range rows {
		out := make([]string, len(cols))
		for _, c := range row {
			col := sort.Search(len(cols), func(j int) bool { return cols[j].end > c.start })
			if out[col] != "" {
				out[col] += " "
			}
			out[col] += c.text
		}
		table[i] = out
	}
	return table
}

// MarkdownTables collects GitHub-style pipe tables from markdown. Alignment
// rows are skipped and empty cells are kept as "".
func MarkdownTables(markdown string) []Table {
	var (
		tables  []Table
		current Table
	)
	flush := func() {
		if len(current) > 0 {
			tables = append(tables, current)
			current = nil
		}
	}

	for _, line := range strings.Split(markdown, "\n") {
		trimmed := strings.TrimSpace(line)
		if !strings.HasPrefix(trimmed, "|") {
			flush()
			continue
		}
		if separatorRowRe.MatchString(trimmed) {
			continue
		}
		current = append(current, splitPipeRow(trimmed))
	}
	flush()

	return tables
}

func splitPipeRow(line string) []string {
	line = strings.TrimPrefix(line, "|")
	line = strings.TrimSuffix(line, "|")
	cells := strings.Split(line, "|")
	for i, c := range cells {
		cells[i] = strings.TrimSpace(c)
	}
	return cells
}
