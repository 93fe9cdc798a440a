// Package dayfilter selects records by calendar day in the process local timezone.
package dayfilter

import (
	"fmt"
	"time"
)

const DateLayout = "2006-01-02"

// SameDay reports whether a and b fall on the same local calendar day.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.In(time.Local).Date()
	by, bm, bd := b.In(time.Local).Date()
	return ay == by && am == bm && ad == bd
}

// FilterByDay returns the records whose timestamp falls on day, in input order.
// The result is never nil.
func FilterByDay[T any](records []T, day time.Time, timestampOf func(T) time.Time) []T {
	result := make([]T, 0, len(records))
	for _, r := range records {
		if SameDay(timestampOf(r), day) {
			result = append(result, r)
		}
	}
	return result
}

// ParseDay parses YYYY-MM-DD in local time. An empty string means today.
func ParseDay(s string) (time.Time, error) {
	if s == "" {
		return StartOfDay(time.Now()), nil
	}
	day, err := time.ParseInLocation(DateLayout, s, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD: %w", s, err)
	}
	return day, nil
}

// StartOfDay truncates t to local midnight.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.In(time.Local).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

// Bounds returns [start, end) of the local day containing t.
func Bounds(t time.Time) (time.Time, time.Time) {
	start := StartOfDay(t)
	return start, start.AddDate(0, 0, 1)
}
