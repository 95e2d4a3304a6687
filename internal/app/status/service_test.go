package status

import (
	"errors"
	"testing"
	"time"

	"store-status-service/internal/store"
	"store-status-service/internal/testutil"
)

func newSampleService(t *testing.T) *Service {
	t.Helper()
	s := store.NewMemoryStore()
	s.SetCalendar(testutil.SampleCalendar())
	return NewService(s, Options{Location: testutil.StoreZone})
}

func TestServiceWithoutCalendar(t *testing.T) {
	svc := NewService(store.NewMemoryStore(), Options{})
	now := time.Now()

	if _, err := svc.Status(now, 0); !errors.Is(err, ErrNoCalendar) {
		t.Fatalf("expected ErrNoCalendar, got %v", err)
	}
	if _, err := svc.Today(now, 0); !errors.Is(err, ErrNoCalendar) {
		t.Fatalf("expected ErrNoCalendar, got %v", err)
	}
	if _, err := svc.Rows(now, 0); !errors.Is(err, ErrNoCalendar) {
		t.Fatalf("expected ErrNoCalendar, got %v", err)
	}
	if _, err := svc.Holidays(now, 0); !errors.Is(err, ErrNoCalendar) {
		t.Fatalf("expected ErrNoCalendar, got %v", err)
	}
	if _, err := svc.Profile(); !errors.Is(err, ErrNoCalendar) {
		t.Fatalf("expected ErrNoCalendar, got %v", err)
	}
}

func TestServiceDefaults(t *testing.T) {
	svc := NewService(store.NewMemoryStore(), Options{WindowDays: 99})
	if svc.ClosingSoonMinutes() != DefaultClosingSoonMinutes {
		t.Fatalf("unexpected threshold %d", svc.ClosingSoonMinutes())
	}
	if svc.WindowDays() != DefaultWindowDays {
		t.Fatalf("unexpected window %d", svc.WindowDays())
	}
}

func TestServiceConvertsToStoreTime(t *testing.T) {
	svc := newSampleService(t)
	// 20:00 UTC Friday is 06:00 Saturday in the store zone.
	res, err := svc.Status(time.Date(2026, 10, 23, 20, 0, 0, 0, time.UTC), 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.DayName != "Saturday" || res.Label != "Closed • Opens 7:30 am" {
		t.Fatalf("unexpected result %+v", res)
	}
}

func TestServiceThresholdOverride(t *testing.T) {
	svc := newSampleService(t)
	now := testutil.At(2026, 10, 26, 18, 30)

	res, _ := svc.Status(now, 0)
	if res.ClosingSoon {
		t.Fatalf("expected default threshold to leave 90 minutes open, got %+v", res)
	}
	res, _ = svc.Status(now, 120)
	if !res.ClosingSoon || res.Label != "Open now • Closing soon (90 min) • Closes 8:00 pm" {
		t.Fatalf("expected override threshold to apply, got %+v", res)
	}
}

func TestServiceTodayNotices(t *testing.T) {
	svc := newSampleService(t)

	xmas, err := svc.Today(testutil.At(2026, 12, 25, 9, 0), 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if xmas.Badge != "CLOSED" || xmas.HoursText != "Closed" || xmas.Notice != "Closed today — Christmas Day." {
		t.Fatalf("unexpected christmas summary %+v", xmas)
	}

	boxing, _ := svc.Today(testutil.At(2026, 12, 26, 9, 0), 0)
	if boxing.Badge != "OPEN" || boxing.Notice != "Public holiday: Boxing Day. Hours may differ." {
		t.Fatalf("unexpected boxing day summary %+v", boxing)
	}

	plain, _ := svc.Today(testutil.At(2026, 10, 19, 19, 30), 0)
	if plain.Badge != "CLOSING SOON" || plain.Notice != "" || plain.Date != "2026-10-19" {
		t.Fatalf("unexpected plain summary %+v", plain)
	}
}

func TestServiceRowsAndHolidays(t *testing.T) {
	svc := newSampleService(t)

	rows, err := svc.Rows(testutil.At(2026, 12, 24, 9, 0), 0)
	if err != nil || len(rows) != DefaultWindowDays {
		t.Fatalf("expected %d rows, got %d (%v)", DefaultWindowDays, len(rows), err)
	}

	all, _ := svc.Holidays(time.Now(), 0)
	if len(all) != 5 {
		t.Fatalf("expected every holiday, got %d", len(all))
	}
	window, _ := svc.Holidays(testutil.At(2026, 12, 20, 9, 0), 7)
	if len(window) != 2 || window[0].Name != "Christmas Day" {
		t.Fatalf("unexpected holiday window %+v", window)
	}
}

func TestServiceReplaceCalendar(t *testing.T) {
	svc := newSampleService(t)
	cal := testutil.SampleCalendar()
	cal.Profile.Name = "Replaced"
	svc.ReplaceCalendar(cal)

	profile, err := svc.Profile()
	if err != nil || profile.Name != "Replaced" {
		t.Fatalf("expected replaced profile, got %+v (%v)", profile, err)
	}
}
