package energy

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Month token shapes seen in published review files. Besides the plain
// "YYYY-MM" key, spreadsheet round-trips mangle month headers into
// "Jan-97" (month name plus two-digit year) and "1-Jan" (two-digit year
// plus month name, read back as a day-of-month).
var (
	monthKeyRe = regexp.MustCompile(`^(\d{4})-(\d{1,2})$`)
	monYearRe  = regexp.MustCompile(`^([A-Za-z]{3})-(\d{1,2})$`)
	yearMonRe  = regexp.MustCompile(`^(\d{1,2})-([A-Za-z]{3})$`)
)

var monthNames = map[string]time.Month{
	"jan": time.January,
	"feb": time.February,
	"mar": time.March,
	"apr": time.April,
	"may": time.May,
	"jun": time.June,
	"jul": time.July,
	"aug": time.August,
	"sep": time.September,
	"oct": time.October,
	"nov": time.November,
	"dec": time.December,
}

// NormalizeMonth canonicalizes a date cell to the "YYYY-MM" month key.
// Two-digit years of 90 and above resolve to the 1900s, all others to
// the 2000s, matching how the source files are published.
func NormalizeMonth(token string) (string, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return "", fmt.Errorf("empty month token")
	}

	if m := monthKeyRe.FindStringSubmatch(token); m != nil {
		month, _ := strconv.Atoi(m[2])
		if month < 1 || month > 12 {
			return "", fmt.Errorf("month %d out of range in %q", month, token)
		}
		return fmt.Sprintf("%s-%02d", m[1], month), nil
	}

	if m := monYearRe.FindStringSubmatch(token); m != nil {
		month, ok := monthNumber(m[1])
		if !ok {
			return "", fmt.Errorf("unknown month name in %q", token)
		}
		yy, _ := strconv.Atoi(m[2])
		return fmt.Sprintf("%04d-%02d", expandYear(yy), month), nil
	}

	if m := yearMonRe.FindStringSubmatch(token); m != nil {
		month, ok := monthNumber(m[2])
		if !ok {
			return "", fmt.Errorf("unknown month name in %q", token)
		}
		yy, _ := strconv.Atoi(m[1])
		return fmt.Sprintf("%04d-%02d", expandYear(yy), month), nil
	}

	return "", fmt.Errorf("unrecognized month token %q", token)
}

func monthNumber(name string) (time.Month, bool) {
	month, ok := monthNames[strings.ToLower(name)]
	return month, ok
}

func expandYear(yy int) int {
	if yy >= 90 {
		return 1900 + yy
	}
	return 2000 + yy
}
