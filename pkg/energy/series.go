package energy

import (
	"fmt"

	"energycli/internal/errors"
)

// BySeries converts a Table into one SeriesRecord per data column,
// preserving column order. Within each record the observations keep the
// chronological order of the input rows; absent cells contribute
// nothing. A non-numeric cell aborts the whole conversion.
func BySeries(t *Table) ([]SeriesRecord, error) {
	records := make([]SeriesRecord, 0, len(t.Columns))
	for _, col := range t.Columns {
		rec := SeriesRecord{
			Group:     col.Group,
			Series:    col.Series,
			Unit:      col.Unit,
			SourceKey: col.SourceKey,
			Data:      make([]DataPoint, 0, len(t.Rows)),
		}
		for _, row := range t.Rows {
			value, ok, err := parseCell(row.Cells[col.Index])
			if err != nil {
				return nil, conversionError(col, row, err)
			}
			if !ok {
				continue
			}
			rec.Data = append(rec.Data, DataPoint{Date: row.Date, Value: value})
		}
		records = append(records, rec)
	}
	return records, nil
}

// TransformBySeries parses raw CSV text and aggregates it by series.
func TransformBySeries(text string) ([]SeriesRecord, error) {
	table, err := Parse(text)
	if err != nil {
		return nil, err
	}
	return BySeries(table)
}

func conversionError(col ColumnHeader, row Row, cause error) error {
	return errors.NewValueConversionError(
		fmt.Sprintf("series %q at %s: cell %q is not a number", col.Series, row.Date, row.Cells[col.Index]), cause)
}
