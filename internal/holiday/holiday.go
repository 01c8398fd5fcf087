package holiday

import (
	"sync"
	"time"
)

// Oracle answers whether a calendar date is a public holiday. Implementations
// must be referentially transparent: projections and month copies call it
// repeatedly with logically equal dates.
type Oracle interface {
	IsHoliday(t time.Time) bool
}

// Korean is an Oracle for South Korean public holidays. Fixed solar holidays
// are computed for any year; lunar-calendar holidays and their substitute
// days come from a per-year table, so years outside the table only know the
// solar ones.
type Korean struct {
	mu     sync.Mutex
	byYear map[int]map[string]string
}

func NewKorean() *Korean {
	return &Korean{byYear: make(map[int]map[string]string)}
}

func (k *Korean) IsHoliday(t time.Time) bool {
	_, ok := k.Name(t)
	return ok
}

// Name returns the holiday name for a date, if any.
func (k *Korean) Name(t time.Time) (string, bool) {
	k.mu.Lock()
	table, ok := k.byYear[t.Year()]
	if !ok {
		table = holidaysForYear(t.Year())
		k.byYear[t.Year()] = table
	}
	k.mu.Unlock()

	name, ok := table[t.Format("2006-01-02")]
	return name, ok
}

// holidaysForYear builds the holiday table for one year, keyed by
// yyyy-MM-dd.
func holidaysForYear(year int) map[string]string {
	holidays := make(map[string]string)

	// Fixed solar holidays.
	holidays[formatDate(year, 1, 1)] = "신정"
	holidays[formatDate(year, 3, 1)] = "삼일절"
	holidays[formatDate(year, 5, 5)] = "어린이날"
	holidays[formatDate(year, 6, 6)] = "현충일"
	holidays[formatDate(year, 8, 15)] = "광복절"
	holidays[formatDate(year, 10, 3)] = "개천절"
	holidays[formatDate(year, 10, 9)] = "한글날"
	holidays[formatDate(year, 12, 25)] = "성탄절"

	// Lunar-calendar holidays and official substitute days, per year.
	for _, h := range lunarHolidays[year] {
		holidays[h.date] = h.name
	}

	return holidays
}

type entry struct {
	date string
	name string
}

// lunarHolidays lists Seollal, Buddha's Birthday and Chuseok (with their
// substitute days) for the years the calendar covers.
var lunarHolidays = map[int][]entry{
	2024: {
		{"2024-02-09", "설날 연휴"},
		{"2024-02-10", "설날"},
		{"2024-02-11", "설날 연휴"},
		{"2024-02-12", "대체공휴일"},
		{"2024-05-15", "부처님오신날"},
		{"2024-09-16", "추석 연휴"},
		{"2024-09-17", "추석"},
		{"2024-09-18", "추석 연휴"},
	},
	2025: {
		{"2025-01-28", "설날 연휴"},
		{"2025-01-29", "설날"},
		{"2025-01-30", "설날 연휴"},
		{"2025-05-06", "대체공휴일"},
		{"2025-10-05", "추석 연휴"},
		{"2025-10-06", "추석"},
		{"2025-10-07", "추석 연휴"},
		{"2025-10-08", "대체공휴일"},
	},
	2026: {
		{"2026-02-16", "설날 연휴"},
		{"2026-02-17", "설날"},
		{"2026-02-18", "설날 연휴"},
		{"2026-05-24", "부처님오신날"},
		{"2026-05-25", "대체공휴일"},
		{"2026-09-24", "추석 연휴"},
		{"2026-09-25", "추석"},
		{"2026-09-26", "추석 연휴"},
	},
}

// formatDate formats a date as yyyy-MM-dd.
func formatDate(year, month, day int) string {
	return time.Date(year, time.Month(month), day, 12, 0, 0, 0, time.UTC).Format("2006-01-02")
}
