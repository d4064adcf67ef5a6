package energy

import (
	"encoding/csv"
	"fmt"
	"strings"

	"energycli/internal/errors"
)

// headerRowCount is the number of metadata rows preceding the data:
// group, series, unit and source key, one cell per data column.
const headerRowCount = 4

// Parse reads raw CSV text into a Table. The first four rows carry the
// column metadata and every following row is "date,v1,...,vN". Header
// rows must all have the same cell count N and data rows exactly N+1
// cells; anything else is rejected rather than repaired.
func Parse(text string) (*Table, error) {
	text = strings.TrimPrefix(text, "\ufeff")

	reader := csv.NewReader(strings.NewReader(text))
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, errors.NewParseError("malformed CSV input", err)
	}
	if len(records) < headerRowCount {
		return nil, errors.NewParseError(
			fmt.Sprintf("input has %d rows, need at least %d header rows", len(records), headerRowCount), nil)
	}

	return buildTable(records[:headerRowCount], records[headerRowCount:])
}

// buildTable assembles a Table from four header rows of N cells each and
// data rows of N+1 cells. Both readers funnel through here so the
// structural rules and the error wording stay identical.
func buildTable(headers [][]string, data [][]string) (*Table, error) {
	width := len(headers[0])
	for i, h := range headers[1:] {
		if len(h) != width {
			return nil, errors.NewParseError(
				fmt.Sprintf("header row %d has %d cells, header row 1 has %d", i+2, len(h), width), nil)
		}
	}
	if width == 0 {
		return nil, errors.NewParseError("input has no data columns", nil)
	}

	groups, names, units, keys := headers[0], headers[1], headers[2], headers[3]
	columns := make([]ColumnHeader, width)
	for i := 0; i < width; i++ {
		columns[i] = ColumnHeader{
			Group:     strings.TrimSpace(groups[i]),
			Series:    strings.TrimSpace(names[i]),
			Unit:      strings.TrimSpace(units[i]),
			SourceKey: strings.TrimSpace(keys[i]),
			Index:     i,
		}
	}

	rows := make([]Row, 0, len(data))
	seen := make(map[string]bool, len(data))
	for n, raw := range data {
		line := n + headerRowCount + 1
		if len(raw) != width+1 {
			return nil, errors.NewParseError(
				fmt.Sprintf("row %d has %d cells, want %d", line, len(raw), width+1), nil)
		}

		date, err := NormalizeMonth(raw[0])
		if err != nil {
			return nil, errors.NewParseError(fmt.Sprintf("row %d has an invalid date", line), err)
		}
		if seen[date] {
			return nil, errors.NewParseError(fmt.Sprintf("row %d repeats month %s", line, date), nil)
		}
		seen[date] = true

		cells := make([]string, width)
		for i := range cells {
			cells[i] = strings.TrimSpace(raw[i+1])
		}
		rows = append(rows, Row{Date: date, Cells: cells})
	}

	return &Table{Columns: columns, Rows: rows}, nil
}
