package energy

// ByDate converts a Table into one DateRecord per data row, preserving
// row order. Entries within a record follow column order. A month whose
// series all lack observations still yields a record, just with no
// entries. The error policy matches BySeries.
func ByDate(t *Table) ([]DateRecord, error) {
	records := make([]DateRecord, 0, len(t.Rows))
	for _, row := range t.Rows {
		rec := DateRecord{
			Date: row.Date,
			Data: make([]DateEntry, 0, len(t.Columns)),
		}
		for _, col := range t.Columns {
			value, ok, err := parseCell(row.Cells[col.Index])
			if err != nil {
				return nil, conversionError(col, row, err)
			}
			if !ok {
				continue
			}
			rec.Data = append(rec.Data, DateEntry{
				Group:     col.Group,
				Series:    col.Series,
				Unit:      col.Unit,
				SourceKey: col.SourceKey,
				Value:     value,
			})
		}
		records = append(records, rec)
	}
	return records, nil
}

// TransformByDate parses raw CSV text and aggregates it by month.
func TransformByDate(text string) ([]DateRecord, error) {
	table, err := Parse(text)
	if err != nil {
		return nil, err
	}
	return ByDate(table)
}
