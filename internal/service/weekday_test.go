package service

import (
	"testing"
	"time"

	"deptcal/internal/model"
)

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := model.ParseDate(s)
	if err != nil {
		t.Fatalf("parse %s: %v", s, err)
	}
	return d
}

func TestWeekdayOccurrence(t *testing.T) {
	tests := []struct {
		date string
		want int
	}{
		{"2025-11-01", 1}, // 1st Saturday
		{"2025-11-04", 1}, // 1st Tuesday
		{"2025-11-11", 2}, // 2nd Tuesday
		{"2025-11-25", 4}, // 4th Tuesday
		{"2025-11-29", 5}, // 5th Saturday
	}
	for _, tt := range tests {
		if got := WeekdayOccurrence(mustDate(t, tt.date)); got != tt.want {
			t.Errorf("WeekdayOccurrence(%s) = %d, want %d", tt.date, got, tt.want)
		}
	}
}

func TestWeekdayCount(t *testing.T) {
	tests := []struct {
		year    int
		month   time.Month
		weekday time.Weekday
		want    int
	}{
		{2025, time.November, time.Saturday, 5},
		{2025, time.November, time.Tuesday, 4},
		{2025, time.December, time.Tuesday, 5},
		{2025, time.December, time.Saturday, 4},
		{2024, time.February, time.Thursday, 5}, // leap February
		{2024, time.February, time.Friday, 4},
	}
	for _, tt := range tests {
		if got := WeekdayCount(tt.year, tt.month, tt.weekday); got != tt.want {
			t.Errorf("WeekdayCount(%d, %s, %s) = %d, want %d", tt.year, tt.month, tt.weekday, got, tt.want)
		}
	}
}

func TestNthWeekday(t *testing.T) {
	tests := []struct {
		name    string
		year    int
		month   time.Month
		weekday time.Weekday
		n       int
		want    string
	}{
		{name: "2nd Tuesday of November", year: 2025, month: time.November, weekday: time.Tuesday, n: 2, want: "2025-11-11"},
		{name: "4th Tuesday of December", year: 2025, month: time.December, weekday: time.Tuesday, n: 4, want: "2025-12-23"},
		{name: "clamps past last occurrence", year: 2025, month: time.December, weekday: time.Saturday, n: 5, want: "2025-12-27"},
		{name: "1st Sunday", year: 2025, month: time.November, weekday: time.Sunday, n: 1, want: "2025-11-02"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := model.FormatDate(NthWeekday(tt.year, tt.month, tt.weekday, tt.n))
			if got != tt.want {
				t.Errorf("NthWeekday = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestProjectDate(t *testing.T) {
	tests := []struct {
		name   string
		date   string
		toYear int
		toMon  time.Month
		want   string
	}{
		{name: "4th Tuesday maps to 4th Tuesday", date: "2025-11-25", toYear: 2025, toMon: time.December, want: "2025-12-23"},
		{name: "2nd Tuesday maps to 2nd Tuesday", date: "2025-11-11", toYear: 2025, toMon: time.December, want: "2025-12-09"},
		{name: "5th Saturday clamps to last Saturday", date: "2025-11-29", toYear: 2025, toMon: time.December, want: "2025-12-27"},
		{name: "backward to a month with the slot", date: "2025-12-23", toYear: 2025, toMon: time.November, want: "2025-11-25"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ProjectDate(tt.date, tt.toYear, tt.toMon)
			if err != nil {
				t.Fatalf("ProjectDate: %v", err)
			}
			if got != tt.want {
				t.Errorf("ProjectDate(%s -> %d-%02d) = %s, want %s", tt.date, tt.toYear, tt.toMon, got, tt.want)
			}
		})
	}
}
