package service

import (
	"context"
	"fmt"

	"deptcal/internal/logging"
	"deptcal/internal/model"
)

// SeedIfEmpty populates a fresh store with the canned department schedule
// for 2025-11 and 2025-12, one record at a time through the standard save
// path. A store holding even one record is left untouched.
func (s *ScheduleService) SeedIfEmpty(ctx context.Context) error {
	if !s.available() {
		return nil
	}

	count, err := s.store.Count(ctx)
	if err != nil {
		return fmt.Errorf("seed: %w", err)
	}
	if count > 0 {
		logging.Debug("store already has data, skipping seed", "count", count)
		return nil
	}

	seeds := seedEvents()
	logging.Info("seeding initial schedule", "events", len(seeds))
	for i := range seeds {
		if err := s.saveRecord(ctx, &seeds[i]); err != nil {
			return fmt.Errorf("seed %s: %w", seeds[i].ID, err)
		}
	}
	return nil
}

func period(start, end string) (*string, *string) {
	return &start, &end
}

// seedEvents returns the initial 2025-11 / 2025-12 department schedule. The
// retreat on 11-05..11-11 is a period group and is stored pre-materialized,
// one record per day.
func seedEvents() []model.Event {
	events := []model.Event{
		{ID: "initial_2025-11-01_1", Title: "대학부 15:00~16:30 전p", Date: "2025-11-01", Color: "blue"},
		{ID: "initial_2025-11-01_2", Title: "청년회", Date: "2025-11-01", Color: "yellow"},
		{ID: "initial_2025-11-02_1", Title: "전체 임원모임", Date: "2025-11-02", Color: "gray", ExcludeFromExport: true},
		{ID: "initial_2025-11-02_2", Title: "전국청년임원수련회", Date: "2025-11-02", Color: "gray"},
		{ID: "initial_2025-11-04_1", Title: "구역 : 22윤", Date: "2025-11-04", Color: "blue"},
		{ID: "initial_2025-11-12_1", Title: "수요예배 후 구역장모임", Date: "2025-11-12", Color: "green"},
		{ID: "initial_2025-11-15_1", Title: "대학부 15:00~16:30 전p", Date: "2025-11-15", Color: "blue"},
		{ID: "initial_2025-11-16_1", Title: "심방 : 3구역", Date: "2025-11-16", Color: "pink", ExcludeFromExport: true},
		{ID: "initial_2025-11-18_1", Title: "구역 : 15최", Date: "2025-11-18", Color: "blue"},
		{ID: "initial_2025-11-22_1", Title: "청년회 찬양연습", Date: "2025-11-22", Color: "yellow"},
		{ID: "initial_2025-11-25_1", Title: "화요 셀모임", Date: "2025-11-25", Color: "orange"},
		{ID: "initial_2025-11-30_1", Title: "월말 감사예배", Date: "2025-11-30", Color: "light-green"},
		{ID: "initial_2025-12-02_1", Title: "구역 : 22윤", Date: "2025-12-02", Color: "blue"},
		{ID: "initial_2025-12-06_1", Title: "대학부 15:00~16:30 전p", Date: "2025-12-06", Color: "blue"},
		{ID: "initial_2025-12-07_1", Title: "전체 임원모임", Date: "2025-12-07", Color: "gray", ExcludeFromExport: true},
		{ID: "initial_2025-12-14_1", Title: "심방 : 7구역", Date: "2025-12-14", Color: "pink", ExcludeFromExport: true},
		{ID: "initial_2025-12-20_1", Title: "성탄 찬양연습", Date: "2025-12-20", Color: "yellow"},
		{ID: "initial_2025-12-24_1", Title: "성탄전야 모임", Date: "2025-12-24", Color: "dark-blue"},
		{ID: "initial_2025-12-25_1", Title: "성탄예배", Date: "2025-12-25", Color: "light-gray"},
		{ID: "initial_2025-12-28_1", Title: "연말 정리모임", Date: "2025-12-28", Color: "light-green"},
	}

	// 청년 캔버라 수련회, 2025-11-05 ~ 2025-11-11.
	retreatDays, _ := model.EachDay("2025-11-05", "2025-11-11")
	for _, day := range retreatDays {
		ps, pe := period("2025-11-05", "2025-11-11")
		events = append(events, model.Event{
			ID:          "initial_" + day + "_retreat",
			Title:       "청년 캔버라 수련회 (5-11)",
			Date:        day,
			PeriodStart: ps,
			PeriodEnd:   pe,
			Color:       "dark-blue",
		})
	}
	return events
}
