package energy

// ColumnHeader describes one data column of a monthly review table.
// The four metadata fields come from the four header rows of the input,
// zipped positionally. Index is the column's position among the data
// columns, starting at zero after the date column.
type ColumnHeader struct {
	Group     string `json:"group"`
	Series    string `json:"series"`
	Unit      string `json:"unit"`
	SourceKey string `json:"source_key"`
	Index     int    `json:"-"`
}

// Row is one data row of the table: a normalized "YYYY-MM" month key and
// the raw cell text of every data column. Cells[i] belongs to the column
// with Index i; an empty cell means the series has no observation that
// month.
type Row struct {
	Date  string   `json:"date"`
	Cells []string `json:"cells"`
}

// Table is the parsed form of a monthly review: the column headers in
// input order and the data rows in input order. It is the common input
// of both aggregations.
type Table struct {
	Columns []ColumnHeader `json:"columns"`
	Rows    []Row          `json:"rows"`
}

// DataPoint is a single dated observation of a series.
type DataPoint struct {
	Date  string  `json:"date"`
	Value float64 `json:"value"`
}

// SeriesRecord groups all observations of one series. Data holds the
// points in chronological input order and is never nil, so a series
// without observations serializes as an empty array.
type SeriesRecord struct {
	Group     string      `json:"group"`
	Series    string      `json:"series"`
	Unit      string      `json:"unit"`
	SourceKey string      `json:"source_key"`
	Data      []DataPoint `json:"data"`
}

// DateEntry is one series observation inside a DateRecord.
type DateEntry struct {
	Group     string  `json:"group"`
	Series    string  `json:"series"`
	Unit      string  `json:"unit"`
	SourceKey string  `json:"source_key"`
	Value     float64 `json:"value"`
}

// DateRecord groups the observations of all series for one month. Data
// holds the entries in column order and is never nil.
type DateRecord struct {
	Date string      `json:"date"`
	Data []DateEntry `json:"data"`
}

// Observation is a flattened single-point result returned by Lookup.
type Observation struct {
	Group     string  `json:"group"`
	Series    string  `json:"series"`
	Unit      string  `json:"unit"`
	SourceKey string  `json:"source_key"`
	Date      string  `json:"date"`
	Value     float64 `json:"value"`
}
