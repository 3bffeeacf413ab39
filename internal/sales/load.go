package sales

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/tealeg/xlsx/v2"
)

// ErrLoad is returned when the sales log cannot be read.
var ErrLoad = eris.New("sales: error reading sales log")

// Record is one sales transaction.
type Record struct {
	Product string
	City    string
	Sales   float64
	// HasSales is false when the quantity was missing or not numeric. Such
	// rows never pass a threshold filter.
	HasSales bool

	PhoneticKey   string
	ClusteredCity string
}

// LoadRecords reads a sales log. JSON arrays are the default format; .csv
// and .xlsx files with product, city and sales header columns are also
// accepted. Missing cities are replaced with unknownCity.
func LoadRecords(ctx context.Context, path, unknownCity string) ([]Record, error) {
	var (
		records []Record
		err     error
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		records, err = loadCSV(path)
	case ".xlsx":
		records, err = loadXLSX(path)
	default:
		records, err = loadJSON(ctx, path)
	}
	if err != nil {
		return nil, eris.Wrapf(ErrLoad, "%s: %v", path, err)
	}

	for i := range records {
		if records[i].City == "" {
			records[i].City = unknownCity
		}
	}
	return records, nil
}

// quantity accepts JSON numbers, numeric strings and null.
type quantity struct {
	value float64
	ok    bool
}

func (q *quantity) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if s == "null" {
		return nil
	}
	if unq, err := strconv.Unquote(s); err == nil {
		s = unq
	}
	q.value, q.ok = parseSales(s)
	return nil
}

// parseSales parses a quantity. NaN and infinities count as missing.
func parseSales(s string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

type jsonRecord struct {
	Product *string  `json:"product"`
	City    *string  `json:"city"`
	Sales   quantity `json:"sales"`
}

func loadJSON(ctx context.Context, path string) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, eris.Wrap(err, "json: open file")
	}
	defer f.Close() //nolint:errcheck

	decoder := json.NewDecoder(f)

	tok, err := decoder.Token()
	if err != nil {
		return nil, eris.Wrap(err, "json: read opening token")
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '[' {
		return nil, eris.Errorf("json: expected '[', got %v", tok)
	}

	var records []Record
	for decoder.More() {
		if ctx.Err() != nil {
			return nil, eris.Wrap(ctx.Err(), "json: context cancelled")
		}

		var item jsonRecord
		if err := decoder.Decode(&item); err != nil {
			return nil, eris.Wrapf(err, "json: decode element %d", len(records))
		}
		records = append(records, Record{
			Product:  strings.TrimSpace(deref(item.Product)),
			City:     strings.TrimSpace(deref(item.City)),
			Sales:    item.Sales.value,
			HasSales: item.Sales.ok,
		})
	}

	if _, err := decoder.Token(); err != nil && err != io.EOF {
		return nil, eris.Wrap(err, "json: read closing token")
	}
	return records, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func loadCSV(path string) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, eris.Wrap(err, "csv: open file")
	}
	defer f.Close() //nolint:errcheck

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1 // allow variable fields

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, eris.Wrap(err, "csv: read rows")
	}
	return fromRows(rows)
}

func loadXLSX(path string) ([]Record, error) {
	f, err := xlsx.OpenFile(path)
	if err != nil {
		return nil, eris.Wrap(err, "xlsx: open file")
	}
	if len(f.Sheets) == 0 {
		return nil, eris.New("xlsx: workbook has no sheets")
	}

	var rows [][]string
	for _, row := range f.Sheets[0].Rows {
		cells := make([]string, len(row.Cells))
		for j, cell := range row.Cells {
			cells[j] = cell.String()
		}
		rows = append(rows, cells)
	}
	return fromRows(rows)
}

// fromRows maps a header row plus data rows onto records.
func fromRows(rows [][]string) ([]Record, error) {
	if len(rows) == 0 {
		return nil, nil
	}

	cols := map[string]int{"product": -1, "city": -1, "sales": -1}
	for i, h := range rows[0] {
		name := strings.ToLower(strings.TrimSpace(h))
		if _, ok := cols[name]; ok {
			cols[name] = i
		}
	}
	for name, idx := range cols {
		if idx < 0 {
			return nil, eris.Errorf("missing %q column", name)
		}
	}

	cell := func(row []string, name string) string {
		idx := cols[name]
		if idx >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[idx])
	}

	records := make([]Record, 0, len(rows)-1)
	for _, row := range rows[1:] {
		rec := Record{
			Product: cell(row, "product"),
			City:    cell(row, "city"),
		}
		rec.Sales, rec.HasSales = parseSales(cell(row, "sales"))
		records = append(records, rec)
	}
	return records, nil
}
