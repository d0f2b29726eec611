// Package dates normalizes due-date strings to canonical UTC instants.
package dates

import (
	"regexp"
	"time"
)

// Canonical is the layout of a canonical instant: UTC with millisecond
// precision, the format the Tasks API uses for due dates.
const Canonical = "2006-01-02T15:04:05.000Z"

const bareDateLayout = "2006-01-02"

var bareDatePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// timestampLayouts are tried in order for full timestamps.
// The offset-less layout is interpreted as UTC.
var timestampLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
}

// IsBareDate reports whether raw has the exact YYYY-MM-DD shape.
func IsBareDate(raw string) bool {
	return bareDatePattern.MatchString(raw)
}

// Normalize converts a date-only or timestamp string to a canonical
// UTC instant. Date-only input is pinned to UTC midnight so that later
// date-only comparisons are stable regardless of the local zone.
// Returns false for empty or unparsable input.
func Normalize(raw string) (string, bool) {
	if raw == "" {
		return "", false
	}
	if IsBareDate(raw) {
		t, err := time.Parse(bareDateLayout, raw)
		if err != nil {
			return "", false
		}
		return t.UTC().Format(Canonical), true
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.UTC().Format(Canonical), true
		}
	}
	return "", false
}

// DateOnly extracts the UTC calendar date (YYYY-MM-DD) of an instant.
// Returns false for empty or unparsable input.
func DateOnly(instant string) (string, bool) {
	if instant == "" {
		return "", false
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, instant); err == nil {
			return t.UTC().Format(bareDateLayout), true
		}
	}
	return "", false
}
