// Package energy converts wide-format monthly energy review tables into
// series-oriented or date-oriented records.
//
// The input is a table whose first four rows name, per data column, the
// group, series, unit and source key, and whose remaining rows hold one
// month of observations each: a "YYYY-MM" date followed by one value per
// column. Parse reads that shape from CSV text and ParseWorkbook reads
// the same grid from an xlsx workbook.
//
// Two aggregations are provided:
//
// BySeries: one record per column, carrying all of that series'
// observations in chronological order.
//
// ByDate: one record per month, carrying the observations of every
// series that reported a value.
//
// Cells that are empty or hold the "--" token are absent observations;
// they are skipped, never zero-filled.
//
// Example usage:
//
//	records, err := energy.TransformBySeries(csvText)
//	if err != nil {
//		return err
//	}
//	obs, ok := energy.Lookup(records, "crude oil", 1999, time.October)
package energy
