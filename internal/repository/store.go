package repository

import (
	"context"
	"errors"

	"deptcal/internal/model"
)

// ErrNotFound is returned by Get when no record has the requested id.
var ErrNotFound = errors.New("event not found")

// EventStore is the document-store contract the calendar core runs against.
// Records are keyed by caller-supplied id; Put is an upsert, Delete is
// idempotent, and list operations return records in ascending date order.
type EventStore interface {
	Put(ctx context.Context, event *model.Event) error
	Get(ctx context.Context, id string) (*model.Event, error)
	Delete(ctx context.Context, id string) error
	ListAll(ctx context.Context) ([]model.Event, error)
	ListByDateRange(ctx context.Context, from, to string) ([]model.Event, error)
	Count(ctx context.Context) (int64, error)
}
