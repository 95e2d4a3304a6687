package store

import (
	"sync"
	"testing"

	"store-status-service/internal/testutil"
)

func TestMemoryStoreEmpty(t *testing.T) {
	s := NewMemoryStore()
	if _, ok := s.Calendar(); ok {
		t.Fatalf("expected empty store to report not loaded")
	}
	if s.Loaded() {
		t.Fatalf("expected Loaded to be false")
	}
}

func TestMemoryStoreSetAndGet(t *testing.T) {
	s := NewMemoryStore()
	s.SetCalendar(testutil.SampleCalendar())

	cal, ok := s.Calendar()
	if !ok {
		t.Fatalf("expected calendar to be loaded")
	}
	if cal.Source != "test" || cal.Holidays.Len() != 5 {
		t.Fatalf("unexpected calendar %+v", cal)
	}
}

func TestMemoryStoreSetReplacesCalendar(t *testing.T) {
	s := NewMemoryStore()
	first := testutil.SampleCalendar()
	s.SetCalendar(first)

	second := testutil.SampleCalendar()
	second.Source = "reloaded"
	s.SetCalendar(second)

	cal, _ := s.Calendar()
	if cal.Source != "reloaded" {
		t.Fatalf("expected replaced calendar, got %s", cal.Source)
	}
}

func TestMemoryStoreConcurrentAccess(t *testing.T) {
	s := NewMemoryStore()
	cal := testutil.SampleCalendar()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			s.SetCalendar(cal)
		}()
		go func() {
			defer wg.Done()
			s.Calendar()
		}()
	}
	wg.Wait()

	if !s.Loaded() {
		t.Fatalf("expected calendar to be loaded after writers finish")
	}
}
