package status

import (
	"time"

	"store-status-service/internal/domain"
	"store-status-service/internal/domain/closures"
	"store-status-service/internal/domain/holidays"
	"store-status-service/internal/domain/hours"
)

// Tables is the read-only calendar the engine evaluates against.
// Tests substitute alternate calendars through it.
type Tables interface {
	DaySchedule(day time.Weekday) (hours.DaySchedule, bool)
	Holiday(day time.Time) (holidays.Holiday, bool)
	ForcedClosure(day time.Time) closures.ForcedClosure
}

type calendarTables struct {
	cal domain.Calendar
}

// CalendarTables adapts a domain.Calendar to Tables.
func CalendarTables(cal domain.Calendar) Tables {
	return calendarTables{cal: cal}
}

func (c calendarTables) DaySchedule(day time.Weekday) (hours.DaySchedule, bool) {
	return c.cal.Week.For(day)
}

func (c calendarTables) Holiday(day time.Time) (holidays.Holiday, bool) {
	return c.cal.Holidays.Lookup(day)
}

func (c calendarTables) ForcedClosure(day time.Time) closures.ForcedClosure {
	return c.cal.Closures.Evaluate(day)
}
