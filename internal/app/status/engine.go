package status

import (
	"time"

	"store-status-service/internal/domain/hours"
	"store-status-service/internal/timeutil"
)

const (
	// DefaultClosingSoonMinutes is the threshold used when callers pass a negative one.
	DefaultClosingSoonMinutes = 45
	// SearchHorizonDays bounds the next-open search.
	SearchHorizonDays = timeutil.MaxHorizonDays
)

// Engine derives open/closed status from a static calendar and a caller-supplied instant.
// It holds no clock and no mutable state; every call recomputes from scratch.
type Engine struct {
	tables Tables
}

// NewEngine constructs an Engine over the given tables.
func NewEngine(tables Tables) *Engine {
	return &Engine{tables: tables}
}

// Status evaluates the store at now, which must already be in store local time.
// A negative threshold falls back to DefaultClosingSoonMinutes.
func (e *Engine) Status(now time.Time, closingSoonMinutes int) Result {
	if closingSoonMinutes < 0 {
		closingSoonMinutes = DefaultClosingSoonMinutes
	}
	dayName := timeutil.WeekdayName(now)

	if fc := e.tables.ForcedClosure(now); fc.Closed {
		reason := fc.Reason
		res := Result{
			DayName:      dayName,
			ForcedClosed: true,
			ForcedReason: &reason,
			State:        StateClosedForced,
		}
		// Search starts tomorrow at the current clock time, so tomorrow only counts before it opens.
		if next, ok := e.search(timeutil.AddDays(now, 1), timeutil.ClockOf(now).Minutes(), true, 1); ok {
			res.NextOpen = &next
		}
		res.Label = forcedLabel(reason, res.NextOpen)
		return res
	}

	today, ok := e.tables.DaySchedule(now.Weekday())
	if !ok {
		return Result{DayName: dayName, Label: labelHoursUnavailable, State: StateClosed}
	}

	minutesNow := timeutil.ClockOf(now).Minutes()
	if today.Contains(minutesNow) {
		left := today.Close.Minutes() - minutesNow
		soon := left <= closingSoonMinutes
		res := Result{
			IsOpen:         true,
			ClosingSoon:    soon,
			MinutesToClose: &left,
			DayName:        dayName,
			State:          StateOpen,
			Label:          openLabel(today.Close),
		}
		if soon {
			res.State = StateClosingSoon
			res.Label = closingSoonLabel(left, today.Close)
		}
		return res
	}

	res := Result{DayName: dayName, State: StateClosed}
	next, ok := e.search(now, minutesNow, true, 0)
	if !ok {
		res.Label = labelClosedHoursUnavailable
		return res
	}
	res.NextOpen = &next
	if next.OffsetDays == 0 {
		res.Label = closedOpensTodayLabel(next)
	} else {
		res.Label = closedOpensLaterLabel(next)
	}
	return res
}

// NextOpen returns the next opening at or after now. Today only counts while now is before its opening time.
func (e *Engine) NextOpen(now time.Time) (NextOpening, bool) {
	return e.search(now, timeutil.ClockOf(now).Minutes(), true, 0)
}

// search walks forward from start and accepts the first day that is not force-closed and has
// hours. When gateFirst is set, offset 0 is accepted only if minutesNow is before its opening.
// shift converts walk offsets into offsets from the caller's now.
func (e *Engine) search(start time.Time, minutesNow int, gateFirst bool, shift int) (NextOpening, bool) {
	var sched hours.DaySchedule
	offset, day, ok := timeutil.WalkDays(start, SearchHorizonDays, func(i int, d time.Time) bool {
		if e.tables.ForcedClosure(d).Closed {
			return false
		}
		s, ok := e.tables.DaySchedule(d.Weekday())
		if !ok {
			return false
		}
		if i == 0 && gateFirst && minutesNow >= s.Open.Minutes() {
			return false
		}
		sched = s
		return true
	})
	if !ok {
		return NextOpening{}, false
	}
	return NextOpening{
		Date:       timeutil.FormatDate(day),
		DayName:    timeutil.WeekdayName(day),
		Opens:      timeutil.FormatClock(sched.Open),
		OffsetDays: offset + shift,
		At:         sched.Open.On(day),
	}, true
}
