package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"deptcal/internal/model"
)

// EventRepository is the SQLite-backed EventStore.
type EventRepository struct {
	db *gorm.DB
}

func NewEventRepository(db *gorm.DB) *EventRepository {
	return &EventRepository{db: db}
}

// Put upserts the record under its caller-assigned id. Timestamps are
// stamped by the store on write.
func (r *EventRepository) Put(ctx context.Context, event *model.Event) error {
	if err := r.db.WithContext(ctx).Save(event).Error; err != nil {
		return fmt.Errorf("put event %s: %w", event.ID, err)
	}
	return nil
}

func (r *EventRepository) Get(ctx context.Context, id string) (*model.Event, error) {
	var event model.Event
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&event).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get event %s: %w", id, err)
	}
	return &event, nil
}

// Delete removes a record by id. Deleting an id that does not exist is not
// an error.
func (r *EventRepository) Delete(ctx context.Context, id string) error {
	if err := r.db.WithContext(ctx).Where("id = ?", id).
		Delete(&model.Event{}).Error; err != nil {
		return fmt.Errorf("delete event %s: %w", id, err)
	}
	return nil
}

func (r *EventRepository) ListAll(ctx context.Context) ([]model.Event, error) {
	var events []model.Event
	if err := r.db.WithContext(ctx).Order("date asc").Find(&events).Error; err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	return events, nil
}

func (r *EventRepository) ListByDateRange(ctx context.Context, from, to string) ([]model.Event, error) {
	var events []model.Event
	if err := r.db.WithContext(ctx).Where("date >= ? AND date <= ?", from, to).
		Order("date asc").
		Find(&events).Error; err != nil {
		return nil, fmt.Errorf("list events %s..%s: %w", from, to, err)
	}
	return events, nil
}

func (r *EventRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Event{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("count events: %w", err)
	}
	return count, nil
}
