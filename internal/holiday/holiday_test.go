package holiday

import (
	"testing"
	"time"
)

func date(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		t.Fatalf("parse %q: %v", s, err)
	}
	return d
}

func TestKoreanFixedHolidays(t *testing.T) {
	k := NewKorean()

	tests := []struct {
		date string
		name string
	}{
		{"2025-01-01", "신정"},
		{"2025-03-01", "삼일절"},
		{"2025-05-05", "어린이날"},
		{"2025-06-06", "현충일"},
		{"2025-08-15", "광복절"},
		{"2025-10-03", "개천절"},
		{"2025-10-09", "한글날"},
		{"2025-12-25", "성탄절"},
		// Fixed holidays hold for years the lunar table does not cover.
		{"2030-01-01", "신정"},
		{"2030-12-25", "성탄절"},
	}
	for _, tt := range tests {
		name, ok := k.Name(date(t, tt.date))
		if !ok {
			t.Errorf("%s: expected a holiday", tt.date)
			continue
		}
		if name != tt.name {
			t.Errorf("%s: got %q, want %q", tt.date, name, tt.name)
		}
	}
}

func TestKoreanLunarHolidays(t *testing.T) {
	k := NewKorean()

	holidays := []string{
		"2025-01-28", "2025-01-29", "2025-01-30", // 설날
		"2025-05-06",                             // 대체공휴일
		"2025-10-05", "2025-10-06", "2025-10-07", // 추석
		"2025-10-08", // 대체공휴일
		"2026-02-17", // 설날
		"2026-05-24", // 부처님오신날
	}
	for _, d := range holidays {
		if !k.IsHoliday(date(t, d)) {
			t.Errorf("%s should be a holiday", d)
		}
	}

	workdays := []string{
		"2025-01-27",
		"2025-02-01",
		"2025-11-25",
		"2025-12-23",
		"2026-02-20",
	}
	for _, d := range workdays {
		if k.IsHoliday(date(t, d)) {
			t.Errorf("%s should not be a holiday", d)
		}
	}
}

func TestKoreanTimeOfDayIrrelevant(t *testing.T) {
	k := NewKorean()

	midnight := time.Date(2025, 12, 25, 0, 0, 0, 0, time.UTC)
	evening := time.Date(2025, 12, 25, 23, 59, 0, 0, time.UTC)
	if !k.IsHoliday(midnight) || !k.IsHoliday(evening) {
		t.Error("holiday lookup should depend on the date only")
	}
}

func TestKoreanCachesYearTable(t *testing.T) {
	k := NewKorean()

	d := date(t, "2024-02-10")
	first := k.IsHoliday(d)
	second := k.IsHoliday(d)
	if !first || first != second {
		t.Error("repeated lookups must agree")
	}
	if len(k.byYear) != 1 {
		t.Errorf("cache holds %d year tables, want 1", len(k.byYear))
	}
}
