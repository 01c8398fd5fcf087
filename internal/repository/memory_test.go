package repository

import (
	"context"
	"errors"
	"testing"

	"deptcal/internal/model"
)

func TestMemoryStoreRoundTrip(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	ev := model.Event{ID: "a", Title: "청년회", Date: "2025-11-01", Color: "yellow"}
	if err := store.Put(ctx, &ev); err != nil {
		t.Fatalf("Put: %v", err)
	}
	if ev.CreatedAt.IsZero() || ev.UpdatedAt.IsZero() {
		t.Error("Put did not stamp timestamps")
	}

	got, err := store.Get(ctx, "a")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Title != "청년회" {
		t.Errorf("Title = %q", got.Title)
	}

	count, _ := store.Count(ctx)
	if count != 1 {
		t.Errorf("Count = %d", count)
	}
}

func TestMemoryStoreGetMissing(t *testing.T) {
	store := NewMemoryStore()
	if _, err := store.Get(context.Background(), "missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestMemoryStorePutPreservesCreatedAt(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	ev := model.Event{ID: "a", Title: "v1", Date: "2025-11-01"}
	store.Put(ctx, &ev)
	created := ev.CreatedAt

	update := model.Event{ID: "a", Title: "v2", Date: "2025-11-02"}
	store.Put(ctx, &update)

	got, _ := store.Get(ctx, "a")
	if !got.CreatedAt.Equal(created) {
		t.Error("update changed CreatedAt")
	}
	if got.Title != "v2" || got.Date != "2025-11-02" {
		t.Errorf("update not applied: %+v", got)
	}
}

func TestMemoryStoreDeleteIdempotent(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	store.Put(ctx, &model.Event{ID: "a", Title: "x", Date: "2025-11-01"})
	if err := store.Delete(ctx, "a"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := store.Delete(ctx, "a"); err != nil {
		t.Errorf("second Delete: %v", err)
	}
	count, _ := store.Count(ctx)
	if count != 0 {
		t.Errorf("Count = %d", count)
	}
}

func TestMemoryStoreListOrdering(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	store.Put(ctx, &model.Event{ID: "b", Title: "x", Date: "2025-11-02"})
	store.Put(ctx, &model.Event{ID: "c", Title: "x", Date: "2025-11-01"})
	store.Put(ctx, &model.Event{ID: "a", Title: "x", Date: "2025-11-02"})

	all, _ := store.ListAll(ctx)
	var order []string
	for _, ev := range all {
		order = append(order, ev.ID)
	}
	want := []string{"c", "a", "b"}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("order = %v, want %v", order, want)
		}
	}

	ranged, _ := store.ListByDateRange(ctx, "2025-11-02", "2025-11-30")
	if len(ranged) != 2 {
		t.Errorf("range returned %d records, want 2", len(ranged))
	}
}
