package energy

import (
	"strconv"
	"strings"
)

// missingToken marks withheld or not-yet-published observations in the
// source files. It produces no data point, same as an empty cell.
const missingToken = "--"

// parseCell converts one data cell. The ok result is false for an absent
// observation (empty cell or the missing-data token). Thousands
// separators are accepted.
func parseCell(cell string) (value float64, ok bool, err error) {
	cell = strings.TrimSpace(cell)
	if cell == "" || cell == missingToken {
		return 0, false, nil
	}
	value, err = strconv.ParseFloat(strings.ReplaceAll(cell, ",", ""), 64)
	if err != nil {
		return 0, false, err
	}
	return value, true, nil
}
