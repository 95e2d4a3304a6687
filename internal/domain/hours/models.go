package hours

import (
	"encoding/json"
	"fmt"
	"time"

	"store-status-service/internal/timeutil"
)

// DaySchedule holds same-day opening hours for one weekday. Open must be before Close.
type DaySchedule struct {
	Day   time.Weekday
	Open  timeutil.TimeOfDay
	Close timeutil.TimeOfDay
}

// Day builds a DaySchedule from "HH:MM" strings; it panics on malformed input and is meant for static tables.
func Day(day time.Weekday, open, close string) DaySchedule {
	return DaySchedule{
		Day:   day,
		Open:  timeutil.MustParseClock(open),
		Close: timeutil.MustParseClock(close),
	}
}

// Contains reports whether the minute-of-day falls in the half-open interval [Open, Close).
func (d DaySchedule) Contains(minutes int) bool {
	return minutes >= d.Open.Minutes() && minutes < d.Close.Minutes()
}

// RangeText renders "6:30 am – 8:00 pm".
func (d DaySchedule) RangeText() string {
	return timeutil.FormatClock(d.Open) + " – " + timeutil.FormatClock(d.Close)
}

// Validate checks the clock values and ordering.
func (d DaySchedule) Validate() error {
	if !d.Open.Valid() || !d.Close.Valid() {
		return fmt.Errorf("%s: clock time out of range", d.Day)
	}
	if !d.Open.Before(d.Close) {
		return fmt.Errorf("%s: open %s must be before close %s", d.Day, d.Open, d.Close)
	}
	return nil
}

type dayScheduleJSON struct {
	Day   string `json:"day"`
	Open  string `json:"open"`
	Close string `json:"close"`
}

// MarshalJSON renders the weekday by name and times as "HH:MM".
func (d DaySchedule) MarshalJSON() ([]byte, error) {
	return json.Marshal(dayScheduleJSON{
		Day:   d.Day.String(),
		Open:  d.Open.String(),
		Close: d.Close.String(),
	})
}

// Week is the weekly operating-hours table, one entry per weekday.
type Week struct {
	days []DaySchedule
}

// NewWeek builds a Week from the given entries. Lookups return the first entry for a weekday.
func NewWeek(days ...DaySchedule) Week {
	copied := make([]DaySchedule, len(days))
	copy(copied, days)
	return Week{days: copied}
}

// For returns the schedule for a weekday, if any.
func (w Week) For(day time.Weekday) (DaySchedule, bool) {
	for _, d := range w.days {
		if d.Day == day {
			return d, true
		}
	}
	return DaySchedule{}, false
}

// Days returns a copy of the entries in table order.
func (w Week) Days() []DaySchedule {
	out := make([]DaySchedule, len(w.days))
	copy(out, w.days)
	return out
}

// Missing lists weekdays without an entry, Monday first.
func (w Week) Missing() []time.Weekday {
	var missing []time.Weekday
	for i := 1; i <= 7; i++ {
		day := time.Weekday(i % 7)
		if _, ok := w.For(day); !ok {
			missing = append(missing, day)
		}
	}
	return missing
}

// Validate rejects invalid entries and duplicate weekdays. Gaps are allowed and degrade at lookup time.
func (w Week) Validate() error {
	seen := make(map[time.Weekday]struct{}, len(w.days))
	for _, d := range w.days {
		if _, dup := seen[d.Day]; dup {
			return fmt.Errorf("%s: duplicate schedule entry", d.Day)
		}
		seen[d.Day] = struct{}{}
		if err := d.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// MarshalJSON renders the table as an array of day entries.
func (w Week) MarshalJSON() ([]byte, error) {
	if w.days == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(w.days)
}
