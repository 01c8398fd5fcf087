package service

import (
	"time"

	"deptcal/internal/model"
)

// WeekdayOccurrence returns which occurrence of its weekday the date is
// within its own month, 1-based ("2nd Tuesday" returns 2).
func WeekdayOccurrence(t time.Time) int {
	return (t.Day()-1)/7 + 1
}

// WeekdayCount returns how many times the weekday occurs in the given month.
func WeekdayCount(year int, month time.Month, weekday time.Weekday) int {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	lastDay := first.AddDate(0, 1, -1).Day()

	// Day of month of the weekday's first occurrence.
	offset := (int(weekday) - int(first.Weekday()) + 7) % 7
	return (lastDay-offset-1)/7 + 1
}

// NthWeekday returns the date of the nth occurrence of the weekday in the
// given month, clamping n to the month's last occurrence when it has fewer.
func NthWeekday(year int, month time.Month, weekday time.Weekday, n int) time.Time {
	if count := WeekdayCount(year, month, weekday); n > count {
		n = count
	}
	if n < 1 {
		n = 1
	}
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	offset := (int(weekday) - int(first.Weekday()) + 7) % 7
	return first.AddDate(0, 0, offset+(n-1)*7)
}

// ProjectDate maps a date into another month preserving its
// weekday-of-month position: the kth occurrence of weekday W lands on the
// kth occurrence of W in the destination month, clamped to the last
// occurrence when the destination has fewer. Recurring weekly commitments
// stay in their weekly slot this way, which a plain day-offset shift would
// break.
func ProjectDate(date string, toYear int, toMonth time.Month) (string, error) {
	t, err := model.ParseDate(date)
	if err != nil {
		return "", err
	}
	projected := NthWeekday(toYear, toMonth, t.Weekday(), WeekdayOccurrence(t))
	return model.FormatDate(projected), nil
}
