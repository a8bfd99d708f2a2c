package checkin

import (
	"context"
	"path/filepath"
	"testing"
	"time"
)

func testStore(t *testing.T) *SQLiteStore {
	t.Helper()
	s, err := NewSQLite(filepath.Join(t.TempDir(), "checkins.db"))
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestAppendAndRecent(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()
	base := time.Date(2026, 8, 20, 9, 0, 0, 0, time.UTC)

	records := []Record{
		{TS: base, Score: 40, Note: "meh"},
		{TS: base.Add(24 * time.Hour), Score: 80, Note: ""},
		{TS: base.Add(48 * time.Hour), Score: 60, Note: "better"},
	}
	for _, rec := range records {
		if err := s.Append(ctx, rec); err != nil {
			t.Fatalf("append failed: %v", err)
		}
	}

	got, err := s.Recent(ctx, 2)
	if err != nil {
		t.Fatalf("recent failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 records, got %d", len(got))
	}
	// Newest first.
	if got[0].Score != 60 || got[1].Score != 80 {
		t.Fatalf("unexpected order: %+v", got)
	}
	if got[0].Note != "better" {
		t.Fatalf("note lost: %+v", got[0])
	}
	if !got[0].TS.Equal(base.Add(48 * time.Hour)) {
		t.Fatalf("timestamp mismatch: %s", got[0].TS)
	}
}

func TestRecentEmptyStore(t *testing.T) {
	s := testStore(t)
	got, err := s.Recent(context.Background(), 10)
	if err != nil {
		t.Fatalf("recent failed: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected no records, got %d", len(got))
	}
}

func TestDailyAverages(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()
	day1 := time.Date(2026, 8, 20, 9, 0, 0, 0, time.UTC)
	day2 := day1.Add(24 * time.Hour)

	for _, rec := range []Record{
		{TS: day1, Score: 40},
		{TS: day1.Add(6 * time.Hour), Score: 80},
		{TS: day2, Score: 100},
	} {
		if err := s.Append(ctx, rec); err != nil {
			t.Fatalf("append failed: %v", err)
		}
	}

	got, err := s.DailyAverages(ctx, 14)
	if err != nil {
		t.Fatalf("daily averages failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 days, got %d", len(got))
	}
	// Ascending by date, with day one averaged.
	if got[0].Date != "2026-08-20" || got[0].Score != 60 {
		t.Fatalf("unexpected first day: %+v", got[0])
	}
	if got[1].Date != "2026-08-21" || got[1].Score != 100 {
		t.Fatalf("unexpected second day: %+v", got[1])
	}
}

func TestHappyDays(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()
	now := time.Date(2026, 8, 27, 12, 0, 0, 0, time.UTC)

	for _, rec := range []Record{
		{TS: now.Add(-24 * time.Hour), Score: 80},  // happy
		{TS: now.Add(-48 * time.Hour), Score: 60},  // happy, at the threshold
		{TS: now.Add(-72 * time.Hour), Score: 40},  // not happy
		{TS: now.Add(-30 * 24 * time.Hour), Score: 100}, // outside the window
	} {
		if err := s.Append(ctx, rec); err != nil {
			t.Fatalf("append failed: %v", err)
		}
	}

	happy, err := s.HappyDays(ctx, now)
	if err != nil {
		t.Fatalf("happy days failed: %v", err)
	}
	if happy != 2 {
		t.Fatalf("expected 2 happy days, got %d", happy)
	}
}

func TestHappyDaysCalendarWindow(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()
	now := time.Date(2026, 8, 27, 12, 0, 0, 0, time.UTC)

	// 2026-08-20 sits inside a rolling 168h window but is the eighth
	// calendar day back, so it must not count.
	for _, rec := range []Record{
		{TS: time.Date(2026, 8, 20, 18, 0, 0, 0, time.UTC), Score: 100},
		{TS: time.Date(2026, 8, 21, 6, 0, 0, 0, time.UTC), Score: 80},
		{TS: now, Score: 90},
	} {
		if err := s.Append(ctx, rec); err != nil {
			t.Fatalf("append failed: %v", err)
		}
	}

	happy, err := s.HappyDays(ctx, now)
	if err != nil {
		t.Fatalf("happy days failed: %v", err)
	}
	if happy != 2 {
		t.Fatalf("expected 2 happy days, got %d", happy)
	}
}

func TestHappyDaysAveragesWithinDay(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()
	now := time.Date(2026, 8, 27, 12, 0, 0, 0, time.UTC)
	day := now.Add(-24 * time.Hour)

	// 80 and 20 average to 50, below the threshold.
	for _, rec := range []Record{
		{TS: day, Score: 80},
		{TS: day.Add(2 * time.Hour), Score: 20},
	} {
		if err := s.Append(ctx, rec); err != nil {
			t.Fatalf("append failed: %v", err)
		}
	}

	happy, err := s.HappyDays(ctx, now)
	if err != nil {
		t.Fatalf("happy days failed: %v", err)
	}
	if happy != 0 {
		t.Fatalf("expected 0 happy days, got %d", happy)
	}
}
