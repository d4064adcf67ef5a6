package energy

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"energycli/internal/errors"
)

// workbookMagic is the ZIP local file header every .xlsx starts with.
var workbookMagic = []byte{0x50, 0x4B, 0x03, 0x04}

// IsWorkbook reports whether data looks like an xlsx workbook. The check
// works on content rather than file extension so piped input is detected
// the same way as files.
func IsWorkbook(data []byte) bool {
	return bytes.HasPrefix(data, workbookMagic)
}

// ParseWorkbook reads the first sheet of an xlsx workbook into a Table.
// Workbooks keep all rows on one grid, so the header rows carry an unused
// corner cell above the date column; it is skipped. Stored rows drop
// trailing blank cells, so every row is padded back to the grid width
// before the structural rules from Parse apply.
func ParseWorkbook(data []byte) (*Table, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, errors.NewParseError("cannot open workbook", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.NewParseError("workbook has no sheets", nil)
	}
	sheet := sheets[0]

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, errors.NewParseError(fmt.Sprintf("cannot read sheet %q", sheet), err)
	}
	if len(rows) < headerRowCount {
		return nil, errors.NewParseError(
			fmt.Sprintf("sheet %q has %d rows, need at least %d header rows", sheet, len(rows), headerRowCount), nil)
	}

	width := 0
	for _, row := range rows {
		if len(row) > width {
			width = len(row)
		}
	}
	if width < 2 {
		return nil, errors.NewParseError(fmt.Sprintf("sheet %q has no data columns", sheet), nil)
	}

	grid := make([][]string, len(rows))
	for i, row := range rows {
		padded := make([]string, width)
		copy(padded, row)
		grid[i] = padded
	}

	headers := make([][]string, headerRowCount)
	for i := 0; i < headerRowCount; i++ {
		headers[i] = grid[i][1:]
	}

	return buildTable(headers, grid[headerRowCount:])
}
