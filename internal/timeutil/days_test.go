package timeutil

import (
	"testing"
	"time"
)

func TestAddDaysCrossesMonthAndDST(t *testing.T) {
	loc, err := time.LoadLocation("Australia/Sydney")
	if err != nil {
		t.Skipf("tzdata unavailable: %v", err)
	}
	// DST starts in Sydney on 2026-10-04.
	start := time.Date(2026, 10, 3, 23, 59, 0, 0, loc)
	got := AddDays(start, 1)
	if FormatDate(got) != "2026-10-04" || got.Hour() != 12 {
		t.Fatalf("expected noon on 2026-10-04, got %s", got)
	}
	if FormatDate(AddDays(time.Date(2026, 12, 31, 8, 0, 0, 0, loc), 1)) != "2027-01-01" {
		t.Fatal("expected year rollover")
	}
}

func TestWalkDaysStopsAtFirstAccepted(t *testing.T) {
	start := time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC)
	var visited []int
	offset, day, ok := WalkDays(start, 7, func(i int, d time.Time) bool {
		visited = append(visited, i)
		return d.Weekday() == time.Thursday
	})
	if !ok || offset != 3 || FormatDate(day) != "2026-10-22" {
		t.Fatalf("unexpected result offset=%d day=%s ok=%v", offset, day, ok)
	}
	if len(visited) != 4 {
		t.Fatalf("expected 4 visits, got %v", visited)
	}
}

func TestWalkDaysClampsHorizon(t *testing.T) {
	calls := 0
	_, _, ok := WalkDays(time.Now(), 100, func(int, time.Time) bool {
		calls++
		return false
	})
	if ok {
		t.Fatal("expected no accepted day")
	}
	if calls != MaxHorizonDays {
		t.Fatalf("expected %d visits, got %d", MaxHorizonDays, calls)
	}
}

func TestSameDate(t *testing.T) {
	a := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	b := time.Date(2026, 1, 1, 23, 59, 0, 0, time.UTC)
	if !SameDate(a, b) {
		t.Fatal("expected same date")
	}
	if SameDate(a, b.Add(time.Minute)) {
		t.Fatal("expected different dates")
	}
}
