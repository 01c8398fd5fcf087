package service

import (
	"context"
	"fmt"
	"time"

	"deptcal/internal/holiday"
	"deptcal/internal/logging"
	"deptcal/internal/model"
)

// CopyService projects every event of one month into another month,
// preserving weekday-of-month positions and skipping holidays.
type CopyService struct {
	schedule *ScheduleService
	holidays holiday.Oracle
}

func NewCopyService(schedule *ScheduleService, holidays holiday.Oracle) *CopyService {
	return &CopyService{schedule: schedule, holidays: holidays}
}

// CopyMonth copies the source month's events into the destination month and
// returns how many logical events were created. Per event:
//
//   - an event sitting on a holiday is never copied;
//   - the destination date is the weekday-positional projection of the
//     source date (clamped to the destination month's last occurrence of
//     that weekday);
//   - an event whose projected date (for periods: either projected bound)
//     lands on a holiday is dropped, with no fallback to adjacent days;
//   - every copy gets fresh ids and goes through the standard save path,
//     which re-expands periods into per-day records.
//
// Copies are written one by one; a failure partway leaves the events copied
// so far in place.
func (c *CopyService) CopyMonth(ctx context.Context, fromYear int, fromMonth time.Month, toYear int, toMonth time.Month) (int, error) {
	view, err := c.schedule.ProjectMonth(ctx, fromYear, fromMonth)
	if err != nil {
		return 0, fmt.Errorf("copy month: %w", err)
	}

	copied := 0
	for _, ev := range view.Flatten() {
		input, ok, err := c.projectEvent(ev, toYear, toMonth)
		if err != nil {
			return copied, fmt.Errorf("copy month: %w", err)
		}
		if !ok {
			continue
		}
		if _, err := c.schedule.Create(ctx, input); err != nil {
			logging.Error("month copy failed partway", "copied", copied, "err", err)
			return copied, fmt.Errorf("copy month: %w", err)
		}
		copied++
	}
	return copied, nil
}

// projectEvent computes the destination shape of one source event. ok is
// false when the event is dropped by a holiday rule.
func (c *CopyService) projectEvent(ev model.Event, toYear int, toMonth time.Month) (EventInput, bool, error) {
	srcDate, err := model.ParseDate(ev.Date)
	if err != nil {
		return EventInput{}, false, err
	}
	if c.holidays.IsHoliday(srcDate) {
		return EventInput{}, false, nil
	}

	input := EventInput{
		Title:             ev.Title,
		Color:             ev.Color,
		ExcludeFromExport: ev.ExcludeFromExport,
	}

	if !ev.IsMultiDay() {
		dest, err := ProjectDate(ev.Date, toYear, toMonth)
		if err != nil {
			return EventInput{}, false, err
		}
		if c.isHolidayDate(dest) {
			return EventInput{}, false, nil
		}
		input.Start = dest
		input.End = dest
		return input, true, nil
	}

	// Period bounds project independently through the same weekday-position
	// mapping; only the bounds are holiday-checked, interior days are not.
	newStart, err := ProjectDate(*ev.PeriodStart, toYear, toMonth)
	if err != nil {
		return EventInput{}, false, err
	}
	newEnd, err := ProjectDate(*ev.PeriodEnd, toYear, toMonth)
	if err != nil {
		return EventInput{}, false, err
	}
	if c.isHolidayDate(newStart) || c.isHolidayDate(newEnd) {
		return EventInput{}, false, nil
	}
	// Clamping can reorder the projected bounds; keep the range valid.
	if newStart > newEnd {
		newStart, newEnd = newEnd, newStart
	}
	input.Start = newStart
	input.End = newEnd
	return input, true, nil
}

func (c *CopyService) isHolidayDate(date string) bool {
	t, err := model.ParseDate(date)
	if err != nil {
		return false
	}
	return c.holidays.IsHoliday(t)
}
