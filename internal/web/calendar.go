package web

import (
	"embed"
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"time"

	"deptcal/internal/logging"
	"deptcal/internal/model"
)

//go:embed templates/calendar.html
var templateFS embed.FS

var calendarTemplate = template.Must(template.ParseFS(templateFS, "templates/calendar.html"))

type calendarEvent struct {
	Title      string
	Background string
	Text       string
	Period     bool
}

type calendarCell struct {
	Day      int
	Date     string
	Holiday  string
	Saturday bool
	Sunday   bool
	Events   []calendarEvent
}

type calendarPage struct {
	Heading  string
	WeekDays []string
	Leading  []struct{}
	Cells    []calendarCell
}

// handleCalendarPage renders the month grid as static HTML. The export
// capture loads this page; ?exclude=1 hides events flagged
// excludeFromExport. The root element carries data-ready="true" so the
// capture knows rendering is done.
func (s *Server) handleCalendarPage(w http.ResponseWriter, r *http.Request) {
	year, month, err := monthParams(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	excludeHidden := r.URL.Query().Get("exclude") == "1"

	view, err := s.schedule.ProjectMonth(r.Context(), year, month)
	if err != nil {
		logging.Error("render calendar", "year", year, "month", int(month), "err", err)
		writeError(w, http.StatusInternalServerError, errors.New("failed to render calendar"))
		return
	}

	page := calendarPage{
		Heading:  fmt.Sprintf("%d년 %02d월", year, int(month)),
		WeekDays: []string{"일", "월", "화", "수", "목", "금", "토"},
	}

	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	page.Leading = make([]struct{}, int(first.Weekday()))

	firstStr, lastStr := model.MonthBounds(year, month)
	days, _ := model.EachDay(firstStr, lastStr)
	for i, day := range days {
		t, _ := model.ParseDate(day)
		cell := calendarCell{
			Day:      i + 1,
			Date:     day,
			Saturday: t.Weekday() == time.Saturday,
			Sunday:   t.Weekday() == time.Sunday,
		}
		if name, ok := s.holidays.Name(t); ok {
			cell.Holiday = name
		}
		for _, ev := range view[day] {
			if excludeHidden && ev.ExcludeFromExport {
				continue
			}
			color := model.ColorByID(ev.Color)
			cell.Events = append(cell.Events, calendarEvent{
				Title:      ev.Title,
				Background: color.Background,
				Text:       color.Text,
				Period:     ev.IsPeriod(),
			})
		}
		page.Cells = append(page.Cells, cell)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := calendarTemplate.Execute(w, page); err != nil {
		logging.Error("render calendar template", "err", err)
	}
}
