package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"deptcal/internal/logging"
	"deptcal/internal/model"
	"deptcal/internal/repository"
)

// EventInput represents data required to create or replace a logical event.
// Start and End are inclusive calendar dates; when they differ the event is
// saved as a period and materialized into one record per covered day.
type EventInput struct {
	Title             string
	Start             string
	End               string
	Color             string
	ExcludeFromExport bool
}

// ScheduleService owns the event lifecycle: expansion of period events into
// per-day records, group resolution by the (periodStart, periodEnd, title)
// identity, and the delete-then-reinsert mutation protocol.
//
// A nil store degrades every operation to a logged no-op with empty results,
// so an unconfigured deployment renders an empty calendar instead of
// failing.
type ScheduleService struct {
	store repository.EventStore
}

func NewScheduleService(store repository.EventStore) *ScheduleService {
	return &ScheduleService{store: store}
}

func (s *ScheduleService) available() bool {
	if s.store == nil {
		logging.Warn("event store is not configured, operation skipped")
		return false
	}
	return true
}

// Store exposes the underlying store for collaborating services.
func (s *ScheduleService) Store() repository.EventStore {
	return s.store
}

func (s *ScheduleService) validate(input EventInput) error {
	if strings.TrimSpace(input.Title) == "" {
		return fmt.Errorf("title is required")
	}
	start, err := model.NormalizeDate(input.Start)
	if err != nil {
		return fmt.Errorf("start date: %w", err)
	}
	end, err := model.NormalizeDate(input.End)
	if err != nil {
		return fmt.Errorf("end date: %w", err)
	}
	if start > end {
		return fmt.Errorf("start date %s is after end date %s", start, end)
	}
	return nil
}

// Expand materializes a multi-day event into one record per day in
// [start, end], each with a fresh id and identical period bounds. Pure:
// nothing is persisted. Callers only invoke this when start != end; a
// same-day save takes the single-record path and carries no period bounds.
func Expand(title, start, end, color string, excludeFromExport bool) ([]model.Event, error) {
	days, err := model.EachDay(start, end)
	if err != nil {
		return nil, err
	}
	events := make([]model.Event, 0, len(days))
	for _, day := range days {
		ps, pe := start, end
		events = append(events, model.Event{
			ID:                uuid.NewString(),
			Title:             title,
			Date:              day,
			PeriodStart:       &ps,
			PeriodEnd:         &pe,
			Color:             color,
			ExcludeFromExport: excludeFromExport,
		})
	}
	return events, nil
}

// Create validates the input and inserts a new logical event: one record
// when start == end, a full period expansion otherwise. Returns the stored
// records.
func (s *ScheduleService) Create(ctx context.Context, input EventInput) ([]model.Event, error) {
	if err := s.validate(input); err != nil {
		return nil, err
	}
	if !s.available() {
		return nil, nil
	}
	return s.insert(ctx, input)
}

// insert writes the record set for input, assuming validation already
// passed. Store calls are sequential and not transactional: a failure
// partway leaves the records written so far in place.
func (s *ScheduleService) insert(ctx context.Context, input EventInput) ([]model.Event, error) {
	start, _ := model.NormalizeDate(input.Start)
	end, _ := model.NormalizeDate(input.End)
	color := model.NormalizeColor(input.Color)

	var events []model.Event
	if start == end {
		events = []model.Event{{
			ID:                uuid.NewString(),
			Title:             input.Title,
			Date:              start,
			Color:             color,
			ExcludeFromExport: input.ExcludeFromExport,
		}}
	} else {
		expanded, err := Expand(input.Title, start, end, color, input.ExcludeFromExport)
		if err != nil {
			return nil, err
		}
		events = expanded
	}

	for i := range events {
		if err := s.saveRecord(ctx, &events[i]); err != nil {
			logging.Error("insert failed partway", "written", i, "total", len(events), "err", err)
			return nil, fmt.Errorf("save event: %w", err)
		}
	}
	return events, nil
}

// saveRecord normalizes, validates and upserts one record.
func (s *ScheduleService) saveRecord(ctx context.Context, event *model.Event) error {
	if err := event.Normalize(); err != nil {
		return err
	}
	if err := event.Validate(); err != nil {
		return err
	}
	return s.store.Put(ctx, event)
}

// ResolveGroup returns the ids of every stored record belonging to the same
// logical event. Multi-day period records are matched across the whole store
// by the (periodStart, periodEnd, title) triple; anything else resolves to
// the record itself.
func (s *ScheduleService) ResolveGroup(ctx context.Context, event *model.Event) ([]string, error) {
	if !event.IsMultiDay() {
		return []string{event.ID}, nil
	}
	if !s.available() {
		return nil, nil
	}

	all, err := s.store.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("resolve group: %w", err)
	}
	var ids []string
	for i := range all {
		if all[i].SameGroup(event) {
			ids = append(ids, all[i].ID)
		}
	}
	return ids, nil
}

// Replace swaps a logical event for new values: the old group is deleted in
// full, then the new record set is inserted. The two phases are independent
// store calls with no rollback; if the insert fails after the delete
// succeeded the event is gone, and the error tells the caller so.
func (s *ScheduleService) Replace(ctx context.Context, old *model.Event, input EventInput) ([]model.Event, error) {
	if err := s.validate(input); err != nil {
		return nil, err
	}
	if !s.available() {
		return nil, nil
	}

	if err := s.deleteGroup(ctx, old); err != nil {
		return nil, err
	}
	events, err := s.insert(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("old records deleted but replacement not stored: %w", err)
	}
	return events, nil
}

// Delete removes every record of the logical event the given record belongs
// to.
func (s *ScheduleService) Delete(ctx context.Context, event *model.Event) error {
	if !s.available() {
		return nil
	}
	return s.deleteGroup(ctx, event)
}

func (s *ScheduleService) deleteGroup(ctx context.Context, event *model.Event) error {
	ids, err := s.ResolveGroup(ctx, event)
	if err != nil {
		return err
	}
	for i, id := range ids {
		if err := s.store.Delete(ctx, id); err != nil {
			logging.Error("group delete failed partway", "deleted", i, "total", len(ids), "err", err)
			return fmt.Errorf("delete event %s: %w", id, err)
		}
	}
	return nil
}

// Get fetches one record by id.
func (s *ScheduleService) Get(ctx context.Context, id string) (*model.Event, error) {
	if !s.available() {
		return nil, repository.ErrNotFound
	}
	return s.store.Get(ctx, id)
}

// Move relocates a logical event so that the grabbed record lands on
// targetDate. A single-day event just changes its date and keeps its id. For
// a period event the whole group shifts: the grabbed day keeps its offset
// from the period start, and the group is deleted and re-expanded at the new
// position with fresh ids.
func (s *ScheduleService) Move(ctx context.Context, event *model.Event, targetDate string) error {
	target, err := model.NormalizeDate(targetDate)
	if err != nil {
		return fmt.Errorf("target date: %w", err)
	}
	if !s.available() {
		return nil
	}

	if !event.IsMultiDay() {
		moved := *event
		moved.Date = target
		moved.PeriodStart = nil
		moved.PeriodEnd = nil
		return s.saveRecord(ctx, &moved)
	}

	offset, err := model.DaysBetween(*event.PeriodStart, event.Date)
	if err != nil {
		return err
	}
	length, err := model.DaysBetween(*event.PeriodStart, *event.PeriodEnd)
	if err != nil {
		return err
	}
	newStart, err := model.AddDays(target, -offset)
	if err != nil {
		return err
	}
	newEnd, err := model.AddDays(newStart, length)
	if err != nil {
		return err
	}

	_, err = s.Replace(ctx, event, EventInput{
		Title:             event.Title,
		Start:             newStart,
		End:               newEnd,
		Color:             event.Color,
		ExcludeFromExport: event.ExcludeFromExport,
	})
	return err
}

// ReplaceAll drops every stored record and saves the given list, keeping
// caller-supplied ids and assigning fresh ones where missing. Used by bulk
// import. Same no-rollback caveat as Replace.
func (s *ScheduleService) ReplaceAll(ctx context.Context, events []model.Event) error {
	if !s.available() {
		return nil
	}

	existing, err := s.store.ListAll(ctx)
	if err != nil {
		return fmt.Errorf("replace all: %w", err)
	}
	for _, e := range existing {
		if err := s.store.Delete(ctx, e.ID); err != nil {
			return fmt.Errorf("replace all: delete %s: %w", e.ID, err)
		}
	}
	for i := range events {
		if events[i].ID == "" {
			events[i].ID = uuid.NewString()
		}
		if err := s.saveRecord(ctx, &events[i]); err != nil {
			return fmt.Errorf("replace all: save %s: %w", events[i].ID, err)
		}
	}
	return nil
}
