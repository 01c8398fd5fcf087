package service

import (
	"context"
	"testing"

	"deptcal/internal/model"
)

func TestSeedIfEmptyPopulatesFreshStore(t *testing.T) {
	svc, store := newTestService(t)
	ctx := context.Background()

	if err := svc.SeedIfEmpty(ctx); err != nil {
		t.Fatalf("SeedIfEmpty: %v", err)
	}

	all, err := store.ListAll(ctx)
	if err != nil {
		t.Fatalf("ListAll: %v", err)
	}
	if len(all) != 27 {
		t.Fatalf("seeded %d records, want 27 (20 singles + 7 retreat days)", len(all))
	}

	retreat := 0
	for _, ev := range all {
		if err := ev.Validate(); err != nil {
			t.Errorf("seed record %s invalid: %v", ev.ID, err)
		}
		if ev.IsPeriod() {
			retreat++
			if *ev.PeriodStart != "2025-11-05" || *ev.PeriodEnd != "2025-11-11" {
				t.Errorf("retreat record %s bounds = %s..%s", ev.ID, *ev.PeriodStart, *ev.PeriodEnd)
			}
		}
	}
	if retreat != 7 {
		t.Errorf("retreat materialized into %d records, want 7", retreat)
	}
}

func TestSeedIfEmptySkipsNonEmptyStore(t *testing.T) {
	svc, store := newTestService(t)
	ctx := context.Background()

	existing := model.Event{ID: "keep-me", Title: "기존 일정", Date: "2025-10-01", Color: "blue"}
	if err := store.Put(ctx, &existing); err != nil {
		t.Fatalf("Put: %v", err)
	}

	if err := svc.SeedIfEmpty(ctx); err != nil {
		t.Fatalf("SeedIfEmpty: %v", err)
	}

	all, _ := store.ListAll(ctx)
	if len(all) != 1 {
		t.Fatalf("store holds %d records after skip, want 1", len(all))
	}
	if all[0].ID != "keep-me" {
		t.Errorf("existing record replaced by %s", all[0].ID)
	}
}

func TestSeedIfEmptyNilStore(t *testing.T) {
	svc := NewScheduleService(nil)
	if err := svc.SeedIfEmpty(context.Background()); err != nil {
		t.Fatalf("nil store seed should no-op, got %v", err)
	}
}
