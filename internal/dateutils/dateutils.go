// Package dateutils provides common date operations used throughout the
// application.
package dateutils

import (
	"fmt"
	"strings"
	"time"
)

// DateLayoutISO is the calendar date layout UBL documents use.
const DateLayoutISO = "2006-01-02"

// ParseUBLDate parses a UBL calendar date (YYYY-MM-DD). Some emitters append
// a timezone designator to the date, so a trailing Z or offset is tolerated.
func ParseUBLDate(dateStr string) (time.Time, error) {
	dateStr = strings.TrimSpace(dateStr)
	if dateStr == "" {
		return time.Time{}, fmt.Errorf("empty date string")
	}

	// Strip a trailing zone designator if present (2024-01-10Z, 2024-01-10+01:00)
	if len(dateStr) > len(DateLayoutISO) {
		dateStr = dateStr[:len(DateLayoutISO)]
	}

	t, err := time.Parse(DateLayoutISO, dateStr)
	if err != nil {
		return time.Time{}, fmt.Errorf("unable to parse date '%s': %w", dateStr, err)
	}
	return t, nil
}

// NormalizeUBLDate parses and re-formats a UBL date to the canonical
// YYYY-MM-DD form. It returns an error for anything that is not a date.
func NormalizeUBLDate(dateStr string) (string, error) {
	t, err := ParseUBLDate(dateStr)
	if err != nil {
		return "", err
	}
	return ToISODate(t), nil
}

// ToISODate formats a time.Time value as an ISO date (YYYY-MM-DD)
func ToISODate(date time.Time) string {
	return date.Format(DateLayoutISO)
}
