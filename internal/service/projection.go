package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"deptcal/internal/model"
)

// MonthView is the per-day mapping a month render consumes: canonical date
// string to the ordered events shown in that cell.
type MonthView map[string][]model.Event

// ProjectMonth assembles the month view for (year, month). Single-day
// records in the month bucket by their date; period groups are deduplicated
// by the (periodStart, periodEnd, title) identity and contribute one entry
// per day of the intersection of their interval with the month. Within each
// bucket, period entries sort before single-day ones, stable otherwise, and
// no id appears twice.
func (s *ScheduleService) ProjectMonth(ctx context.Context, year int, month time.Month) (MonthView, error) {
	view := make(MonthView)
	if !s.available() {
		return view, nil
	}

	first, last := model.MonthBounds(year, month)

	inMonth, err := s.store.ListByDateRange(ctx, first, last)
	if err != nil {
		return nil, fmt.Errorf("project month %d-%02d: %w", year, month, err)
	}
	for i := range inMonth {
		if inMonth[i].IsPeriod() {
			continue
		}
		view[inMonth[i].Date] = append(view[inMonth[i].Date], inMonth[i])
	}

	all, err := s.store.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("project month %d-%02d: %w", year, month, err)
	}

	type groupKey struct {
		start, end, title string
	}
	seen := make(map[groupKey]bool)
	for i := range all {
		ev := all[i]
		if !ev.IsPeriod() {
			continue
		}
		key := groupKey{*ev.PeriodStart, *ev.PeriodEnd, ev.Title}
		if seen[key] {
			continue
		}
		seen[key] = true

		// Only the in-month slice of the group's interval contributes here;
		// an adjacent month's projection picks up its own slice from the
		// same stored records.
		start := maxDate(*ev.PeriodStart, first)
		end := minDate(*ev.PeriodEnd, last)
		if start > end {
			continue
		}
		days, err := model.EachDay(start, end)
		if err != nil {
			return nil, fmt.Errorf("project month %d-%02d: %w", year, month, err)
		}
		for _, day := range days {
			if containsID(view[day], ev.ID) {
				continue
			}
			view[day] = append(view[day], ev)
		}
	}

	for day := range view {
		bucket := view[day]
		sort.SliceStable(bucket, func(i, j int) bool {
			return bucket[i].IsPeriod() && !bucket[j].IsPeriod()
		})
	}

	return view, nil
}

// Flatten returns the view's events deduplicated by id, in ascending date
// order.
func (v MonthView) Flatten() []model.Event {
	days := make([]string, 0, len(v))
	for day := range v {
		days = append(days, day)
	}
	sort.Strings(days)

	seen := make(map[string]bool)
	var out []model.Event
	for _, day := range days {
		for _, ev := range v[day] {
			if seen[ev.ID] {
				continue
			}
			seen[ev.ID] = true
			out = append(out, ev)
		}
	}
	return out
}

func containsID(events []model.Event, id string) bool {
	for i := range events {
		if events[i].ID == id {
			return true
		}
	}
	return false
}

func maxDate(a, b string) string {
	if a > b {
		return a
	}
	return b
}

func minDate(a, b string) string {
	if a < b {
		return a
	}
	return b
}
