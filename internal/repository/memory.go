package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"deptcal/internal/model"
)

// MemoryStore is a map-backed EventStore. It backs tests and ad-hoc runs
// without a database file.
type MemoryStore struct {
	mu     sync.RWMutex
	events map[string]model.Event
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{events: make(map[string]model.Event)}
}

func (s *MemoryStore) Put(_ context.Context, event *model.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	if existing, ok := s.events[event.ID]; ok {
		event.CreatedAt = existing.CreatedAt
	} else if event.CreatedAt.IsZero() {
		event.CreatedAt = now
	}
	event.UpdatedAt = now
	s.events[event.ID] = *event
	return nil
}

func (s *MemoryStore) Get(_ context.Context, id string) (*model.Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	event, ok := s.events[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &event, nil
}

func (s *MemoryStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.events, id)
	return nil
}

func (s *MemoryStore) ListAll(_ context.Context) ([]model.Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.sortedLocked(func(model.Event) bool { return true }), nil
}

func (s *MemoryStore) ListByDateRange(_ context.Context, from, to string) ([]model.Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.sortedLocked(func(e model.Event) bool {
		return e.Date >= from && e.Date <= to
	}), nil
}

func (s *MemoryStore) Count(_ context.Context) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return int64(len(s.events)), nil
}

func (s *MemoryStore) sortedLocked(keep func(model.Event) bool) []model.Event {
	out := make([]model.Event, 0, len(s.events))
	for _, e := range s.events {
		if keep(e) {
			out = append(out, e)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date < out[j].Date
		}
		return out[i].ID < out[j].ID
	})
	return out
}
