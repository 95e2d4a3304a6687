package status

import (
	"testing"
	"time"

	"store-status-service/internal/domain/closures"
	"store-status-service/internal/domain/holidays"
	"store-status-service/internal/domain/hours"
	"store-status-service/internal/testutil"
	"store-status-service/internal/timeutil"
)

func sampleEngine() *Engine {
	return NewEngine(CalendarTables(testutil.SampleCalendar()))
}

// stubTables lets tests force closures by predicate.
type stubTables struct {
	week   hours.Week
	closed func(day time.Time) bool
}

func (s stubTables) DaySchedule(day time.Weekday) (hours.DaySchedule, bool) {
	return s.week.For(day)
}

func (s stubTables) Holiday(time.Time) (holidays.Holiday, bool) {
	return holidays.Holiday{}, false
}

func (s stubTables) ForcedClosure(day time.Time) closures.ForcedClosure {
	if s.closed != nil && s.closed(day) {
		return closures.ForcedClosure{Closed: true, Reason: "Stocktake", Note: closures.DefaultNote}
	}
	return closures.ForcedClosure{}
}

func TestStatusLabels(t *testing.T) {
	cases := []struct {
		name      string
		now       time.Time
		threshold int
		open      bool
		soon      bool
		state     State
		label     string
	}{
		{"saturday before opening", testutil.At(2026, 10, 24, 6, 0), 45, false, false, StateClosed, "Closed • Opens 7:30 am"},
		{"sunday closing soon", testutil.At(2026, 10, 25, 19, 30), 45, true, true, StateClosingSoon, "Open now • Closing soon (30 min) • Closes 8:00 pm"},
		{"monday early resolves to today", testutil.At(2026, 10, 26, 5, 0), 45, false, false, StateClosed, "Closed • Opens 6:30 am"},
		{"monday mid morning", testutil.At(2026, 10, 26, 10, 0), 45, true, false, StateOpen, "Open now • Closes 8:00 pm"},
		{"monday at opening minute", testutil.At(2026, 10, 26, 6, 30), 45, true, false, StateOpen, "Open now • Closes 8:00 pm"},
		{"monday at close minute", testutil.At(2026, 10, 26, 20, 0), 45, false, false, StateClosed, "Closed • Opens Tue 6:30 am"},
		{"friday night rolls to saturday", testutil.At(2026, 10, 23, 22, 15), 45, false, false, StateClosed, "Closed • Opens Sat 7:30 am"},
		{"saturday night rolls to sunday", testutil.At(2026, 10, 24, 21, 0), 45, false, false, StateClosed, "Closed • Opens Sun 7:30 am"},
		{"threshold boundary is inclusive", testutil.At(2026, 10, 26, 19, 15), 45, true, true, StateClosingSoon, "Open now • Closing soon (45 min) • Closes 8:00 pm"},
		{"one minute past threshold", testutil.At(2026, 10, 26, 19, 14), 45, true, false, StateOpen, "Open now • Closes 8:00 pm"},
		{"negative threshold uses default", testutil.At(2026, 10, 26, 19, 20), -1, true, true, StateClosingSoon, "Open now • Closing soon (40 min) • Closes 8:00 pm"},
		{"zero threshold never closing soon", testutil.At(2026, 10, 26, 19, 59), 0, true, false, StateOpen, "Open now • Closes 8:00 pm"},
	}

	e := sampleEngine()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := e.Status(tc.now, tc.threshold)
			if got.IsOpen != tc.open || got.ClosingSoon != tc.soon || got.State != tc.state {
				t.Fatalf("unexpected flags %+v", got)
			}
			if got.Label != tc.label {
				t.Fatalf("label = %q, want %q", got.Label, tc.label)
			}
			if got.DayName != timeutil.WeekdayName(tc.now) {
				t.Fatalf("unexpected day name %s", got.DayName)
			}
			if got.IsOpen && (got.MinutesToClose == nil || got.NextOpen != nil) {
				t.Fatalf("open result should carry minutes to close only: %+v", got)
			}
			if !got.IsOpen && got.MinutesToClose != nil {
				t.Fatalf("closed result should not carry minutes to close: %+v", got)
			}
		})
	}
}

func TestStatusMinutesToClose(t *testing.T) {
	got := sampleEngine().Status(testutil.At(2026, 10, 25, 19, 30), 45)
	if got.MinutesToClose == nil || *got.MinutesToClose != 30 {
		t.Fatalf("expected 30 minutes to close, got %+v", got.MinutesToClose)
	}
}

func TestOpenThroughoutHalfOpenInterval(t *testing.T) {
	e := sampleEngine()
	day := testutil.At(2026, 10, 27, 0, 0) // Tuesday
	for m := 0; m < 24*60; m++ {
		now := day.Add(time.Duration(m) * time.Minute)
		got := e.Status(now, 45)
		want := m >= 6*60+30 && m < 20*60
		if got.IsOpen != want {
			t.Fatalf("minute %d: isOpen=%v want %v", m, got.IsOpen, want)
		}
		if got.IsOpen {
			left := 20*60 - m
			if got.ClosingSoon != (left <= 45) {
				t.Fatalf("minute %d: closingSoon=%v with %d left", m, got.ClosingSoon, left)
			}
		}
	}
}

func TestForcedClosureOverridesSchedule(t *testing.T) {
	// 2025-12-25 is a Thursday, inside normal weekday hours at 10:00.
	got := sampleEngine().Status(testutil.At(2025, 12, 25, 10, 0), 45)
	if got.IsOpen || !got.ForcedClosed || got.State != StateClosedForced {
		t.Fatalf("expected forced closure, got %+v", got)
	}
	if got.ForcedReason == nil || *got.ForcedReason != "Christmas Day" {
		t.Fatalf("unexpected reason %+v", got.ForcedReason)
	}
	// Boxing Day has already opened by this clock time, so the search moves on to Saturday.
	if got.Label != "Closed today • Christmas Day • Opens Sat 7:30 am" {
		t.Fatalf("unexpected label %q", got.Label)
	}
	if got.NextOpen == nil || got.NextOpen.Date != "2025-12-27" || got.NextOpen.OffsetDays != 2 {
		t.Fatalf("unexpected next open %+v", got.NextOpen)
	}
	if got.Badge() != "CLOSED" {
		t.Fatalf("unexpected badge %s", got.Badge())
	}
}

func TestForcedClosureNextOpenFollowsClock(t *testing.T) {
	cases := []struct {
		name string
		now  time.Time
		want string
		date string
	}{
		{"early christmas thursday", testutil.At(2025, 12, 25, 3, 0), "Closed today • Christmas Day • Opens Fri 6:30 am", "2025-12-26"},
		{"just before boxing day opens", testutil.At(2025, 12, 25, 6, 29), "Closed today • Christmas Day • Opens Fri 6:30 am", "2025-12-26"},
		{"at boxing day opening", testutil.At(2025, 12, 25, 6, 30), "Closed today • Christmas Day • Opens Sat 7:30 am", "2025-12-27"},
		{"late christmas friday", testutil.At(2026, 12, 25, 23, 0), "Closed today • Christmas Day • Opens Sun 7:30 am", "2026-12-27"},
	}
	for _, tc := range cases {
		got := sampleEngine().Status(tc.now, 45)
		if got.Label != tc.want {
			t.Fatalf("%s: unexpected label %q", tc.name, got.Label)
		}
		if got.NextOpen == nil || got.NextOpen.Date != tc.date {
			t.Fatalf("%s: unexpected next open %+v", tc.name, got.NextOpen)
		}
	}
}

func TestForcedClosureWithoutNextOpen(t *testing.T) {
	e := NewEngine(stubTables{week: testutil.SampleWeek(), closed: func(time.Time) bool { return true }})
	got := e.Status(testutil.At(2026, 10, 26, 10, 0), 45)
	if got.Label != "Closed today • Stocktake" || got.NextOpen != nil {
		t.Fatalf("unexpected result %+v", got)
	}
}

func TestMissingScheduleDegrades(t *testing.T) {
	week := hours.NewWeek(hours.Day(time.Monday, "06:30", "20:00"))
	e := NewEngine(stubTables{week: week})

	got := e.Status(testutil.At(2026, 10, 27, 10, 0), 45) // Tuesday
	if got.IsOpen || got.Label != "Hours unavailable" || got.State != StateClosed {
		t.Fatalf("unexpected result %+v", got)
	}

	empty := NewEngine(stubTables{})
	if got := empty.Status(testutil.At(2026, 10, 26, 10, 0), 45); got.Label != "Hours unavailable" {
		t.Fatalf("unexpected label for empty week %q", got.Label)
	}
}

func TestSameWeekdayNextWeekIsNotToday(t *testing.T) {
	week := hours.NewWeek(hours.Day(time.Monday, "06:30", "20:00"))
	e := NewEngine(stubTables{week: week})

	got := e.Status(testutil.At(2026, 10, 26, 21, 0), 45)
	if got.Label != "Closed • Opens Mon 6:30 am" {
		t.Fatalf("unexpected label %q", got.Label)
	}
	if got.NextOpen == nil || got.NextOpen.OffsetDays != 7 || got.NextOpen.Date != "2026-11-02" {
		t.Fatalf("unexpected next open %+v", got.NextOpen)
	}
}

func TestNoNextOpenWithinHorizon(t *testing.T) {
	today := testutil.At(2026, 10, 26, 21, 0)
	e := NewEngine(stubTables{
		week:   testutil.SampleWeek(),
		closed: func(d time.Time) bool { return !timeutil.SameDate(d, today) },
	})
	got := e.Status(today, 45)
	if got.Label != "Closed • Hours unavailable" || got.NextOpen != nil {
		t.Fatalf("unexpected result %+v", got)
	}
}

func TestNextOpenNeverBeyondHorizon(t *testing.T) {
	week := hours.NewWeek(hours.Day(time.Monday, "06:30", "20:00"))
	now := testutil.At(2026, 10, 26, 21, 0)
	// The following Monday is closed; the one after sits 14 days out, past the horizon.
	e := NewEngine(stubTables{
		week:   week,
		closed: func(d time.Time) bool { return timeutil.FormatDate(d) == "2026-11-02" },
	})
	if _, ok := e.NextOpen(now); ok {
		t.Fatal("expected no opening within the horizon")
	}
	if got := e.Status(now, 45); got.Label != "Closed • Hours unavailable" {
		t.Fatalf("unexpected label %q", got.Label)
	}
}

func TestNextOpen(t *testing.T) {
	e := sampleEngine()
	next, ok := e.NextOpen(testutil.At(2026, 10, 24, 6, 0))
	if !ok {
		t.Fatal("expected next opening")
	}
	want := testutil.At(2026, 10, 24, 7, 30)
	if !next.At.Equal(want) || next.OffsetDays != 0 || next.Opens != "7:30 am" || next.DayName != "Saturday" {
		t.Fatalf("unexpected next opening %+v", next)
	}

	// While open, today is not a candidate.
	next, ok = e.NextOpen(testutil.At(2026, 10, 24, 12, 0))
	if !ok || next.Date != "2026-10-25" {
		t.Fatalf("expected Sunday, got %+v", next)
	}
}

func TestStatusIsIdempotent(t *testing.T) {
	e := sampleEngine()
	now := testutil.At(2026, 10, 25, 19, 30)
	a, b := e.Status(now, 45), e.Status(now, 45)
	if a.Label != b.Label || *a.MinutesToClose != *b.MinutesToClose {
		t.Fatalf("expected identical results, got %+v and %+v", a, b)
	}
}

func TestBadge(t *testing.T) {
	cases := map[string]Result{
		"OPEN":         {IsOpen: true},
		"CLOSING SOON": {IsOpen: true, ClosingSoon: true},
		"CLOSED":       {},
	}
	for want, r := range cases {
		if got := r.Badge(); got != want {
			t.Fatalf("Badge() = %s, want %s", got, want)
		}
	}
	if !StateClosingSoon.Open() || StateClosedForced.Open() {
		t.Fatal("unexpected State.Open results")
	}
}
