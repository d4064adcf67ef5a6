package energy

import (
	"fmt"
	"strings"
	"time"
)

// Lookup scans series records for the observation of a given month. The
// series is matched by case-insensitive substring; when the first
// matching series has no observation that month, later matches are still
// considered. The second result is false when nothing matches.
func Lookup(records []SeriesRecord, seriesContains string, year int, month time.Month) (Observation, bool) {
	date := fmt.Sprintf("%04d-%02d", year, int(month))
	needle := strings.ToLower(seriesContains)

	for _, rec := range records {
		if !strings.Contains(strings.ToLower(rec.Series), needle) {
			continue
		}
		for _, point := range rec.Data {
			if point.Date == date {
				return Observation{
					Group:     rec.Group,
					Series:    rec.Series,
					Unit:      rec.Unit,
					SourceKey: rec.SourceKey,
					Date:      point.Date,
					Value:     point.Value,
				}, true
			}
		}
	}
	return Observation{}, false
}
