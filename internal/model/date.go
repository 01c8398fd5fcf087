package model

import (
	"fmt"
	"time"
)

// DateFormat is the canonical storage form for calendar dates. Fixed-width
// ISO, so lexicographic comparison of two date strings orders them correctly.
const DateFormat = "2006-01-02"

// ParseDate parses a canonical yyyy-MM-dd string into a UTC midnight time.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateFormat, s)
}

// FormatDate renders a time as a canonical date string.
func FormatDate(t time.Time) string {
	return t.Format(DateFormat)
}

// NormalizeDate accepts the date-like forms callers submit (canonical date
// strings, RFC 3339 timestamps) and returns the canonical yyyy-MM-dd form.
func NormalizeDate(s string) (string, error) {
	if s == "" {
		return "", fmt.Errorf("empty date")
	}
	if t, err := time.Parse(DateFormat, s); err == nil {
		return FormatDate(t), nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return FormatDate(t), nil
	}
	return "", fmt.Errorf("unrecognized date %q", s)
}

// AddDays shifts a canonical date string by n calendar days.
func AddDays(date string, n int) (string, error) {
	t, err := ParseDate(date)
	if err != nil {
		return "", err
	}
	return FormatDate(t.AddDate(0, 0, n)), nil
}

// DaysBetween returns the number of calendar days from a to b. Negative when
// b is before a.
func DaysBetween(a, b string) (int, error) {
	ta, err := ParseDate(a)
	if err != nil {
		return 0, err
	}
	tb, err := ParseDate(b)
	if err != nil {
		return 0, err
	}
	return int(tb.Sub(ta).Hours() / 24), nil
}

// MonthBounds returns the first and last day of a month as canonical date
// strings.
func MonthBounds(year int, month time.Month) (first, last string) {
	start := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, -1)
	return FormatDate(start), FormatDate(end)
}

// EachDay returns every canonical date string in [start, end] inclusive.
// Returns nil when start is after end.
func EachDay(start, end string) ([]string, error) {
	ts, err := ParseDate(start)
	if err != nil {
		return nil, err
	}
	te, err := ParseDate(end)
	if err != nil {
		return nil, err
	}
	var days []string
	for d := ts; !d.After(te); d = d.AddDate(0, 0, 1) {
		days = append(days, FormatDate(d))
	}
	return days, nil
}
