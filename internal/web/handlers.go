package web

import (
	"errors"
	"fmt"
	"net/http"
	"path/filepath"
	"strconv"
	"time"

	"deptcal/internal/export"
	"deptcal/internal/logging"
	"deptcal/internal/model"
	"deptcal/internal/repository"
	"deptcal/internal/service"
)

type eventRequest struct {
	Title             string `json:"title"`
	Start             string `json:"start"`
	End               string `json:"end"`
	Color             string `json:"color"`
	ExcludeFromExport bool   `json:"excludeFromExport"`
}

func (r eventRequest) input() service.EventInput {
	return service.EventInput{
		Title:             r.Title,
		Start:             r.Start,
		End:               r.End,
		Color:             r.Color,
		ExcludeFromExport: r.ExcludeFromExport,
	}
}

// monthParams reads year/month query parameters, defaulting to the current
// month.
func monthParams(r *http.Request) (int, time.Month, error) {
	now := time.Now()
	year, month := now.Year(), now.Month()

	if raw := r.URL.Query().Get("year"); raw != "" {
		y, err := strconv.Atoi(raw)
		if err != nil {
			return 0, 0, fmt.Errorf("invalid year %q", raw)
		}
		year = y
	}
	if raw := r.URL.Query().Get("month"); raw != "" {
		m, err := strconv.Atoi(raw)
		if err != nil || m < 1 || m > 12 {
			return 0, 0, fmt.Errorf("invalid month %q", raw)
		}
		month = time.Month(m)
	}
	return year, month, nil
}

func (s *Server) handleMonth(w http.ResponseWriter, r *http.Request) {
	year, month, err := monthParams(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	view, err := s.schedule.ProjectMonth(r.Context(), year, month)
	if err != nil {
		logging.Error("project month", "year", year, "month", int(month), "err", err)
		writeError(w, http.StatusInternalServerError, errors.New("failed to load month"))
		return
	}

	first, last := model.MonthBounds(year, month)
	days, _ := model.EachDay(first, last)
	holidays := make(map[string]string)
	for _, day := range days {
		t, _ := model.ParseDate(day)
		if name, ok := s.holidays.Name(t); ok {
			holidays[day] = name
		}
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"year":     year,
		"month":    int(month),
		"days":     view,
		"holidays": holidays,
	})
}

func (s *Server) handleColors(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, model.ColorOptions)
}

func (s *Server) handleCreateEvent(w http.ResponseWriter, r *http.Request) {
	var req eventRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	events, err := s.schedule.Create(r.Context(), req.input())
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	writeJSON(w, http.StatusCreated, events)
}

func (s *Server) handleUpdateEvent(w http.ResponseWriter, r *http.Request) {
	var req eventRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	old, err := s.schedule.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			writeError(w, http.StatusNotFound, err)
			return
		}
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	events, err := s.schedule.Replace(r.Context(), old, req.input())
	if err != nil {
		logging.Error("replace event", "id", old.ID, "err", err)
		writeError(w, http.StatusInternalServerError, errors.New("failed to update event"))
		return
	}
	writeJSON(w, http.StatusOK, events)
}

func (s *Server) handleDeleteEvent(w http.ResponseWriter, r *http.Request) {
	event, err := s.schedule.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			writeError(w, http.StatusNotFound, err)
			return
		}
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	if err := s.schedule.Delete(r.Context(), event); err != nil {
		logging.Error("delete event", "id", event.ID, "err", err)
		writeError(w, http.StatusInternalServerError, errors.New("failed to delete event"))
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleMoveEvent(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Date string `json:"date"`
	}
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	event, err := s.schedule.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			writeError(w, http.StatusNotFound, err)
			return
		}
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	if err := s.schedule.Move(r.Context(), event, req.Date); err != nil {
		logging.Error("move event", "id", event.ID, "date", req.Date, "err", err)
		writeError(w, http.StatusInternalServerError, errors.New("failed to move event"))
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleCopyMonth(w http.ResponseWriter, r *http.Request) {
	var req struct {
		FromYear  int `json:"fromYear"`
		FromMonth int `json:"fromMonth"`
		ToYear    int `json:"toYear"`
		ToMonth   int `json:"toMonth"`
	}
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if req.FromMonth < 1 || req.FromMonth > 12 || req.ToMonth < 1 || req.ToMonth > 12 {
		writeError(w, http.StatusBadRequest, errors.New("month must be 1..12"))
		return
	}

	count, err := s.copier.CopyMonth(r.Context(),
		req.FromYear, time.Month(req.FromMonth),
		req.ToYear, time.Month(req.ToMonth))
	if err != nil {
		logging.Error("copy month", "err", err)
		writeError(w, http.StatusInternalServerError, errors.New("failed to copy month"))
		return
	}
	writeJSON(w, http.StatusOK, map[string]int{"copied": count})
}

// handleImport replaces the whole stored schedule with the submitted record
// list. Backs spreadsheet imports, where the client has already expanded
// periods into per-day rows.
func (s *Server) handleImport(w http.ResponseWriter, r *http.Request) {
	var events []model.Event
	if err := decodeJSON(r, &events); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if len(events) == 0 {
		writeError(w, http.StatusBadRequest, errors.New("no events supplied"))
		return
	}

	if err := s.schedule.ReplaceAll(r.Context(), events); err != nil {
		logging.Error("import events", "count", len(events), "err", err)
		writeError(w, http.StatusInternalServerError, errors.New("failed to import events"))
		return
	}
	writeJSON(w, http.StatusOK, map[string]int{"imported": len(events)})
}

// handleExport renders the month grid in a headless browser and writes a
// PNG, excluding events flagged excludeFromExport.
func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	year, month, err := monthParams(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	url := fmt.Sprintf("http://%s/calendar?year=%d&month=%d&exclude=1", s.cfg.Listen, year, int(month))
	output := filepath.Join(s.cfg.Export.OutputDir, fmt.Sprintf("calendar-%d-%02d.png", year, int(month)))

	err = export.CapturePNG(r.Context(), export.Options{
		URL:        url,
		OutputPath: output,
		Width:      s.cfg.Export.Width,
		Height:     s.cfg.Export.Height,
	})
	if err != nil {
		logging.Error("export calendar", "year", year, "month", int(month), "err", err)
		writeError(w, http.StatusInternalServerError, errors.New("failed to export calendar"))
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"path": output})
}
