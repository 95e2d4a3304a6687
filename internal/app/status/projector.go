package status

import (
	"time"

	"store-status-service/internal/domain/closures"
	"store-status-service/internal/domain/holidays"
	"store-status-service/internal/domain/hours"
	"store-status-service/internal/timeutil"
)

const (
	// DefaultWindowDays is the usual hours-table length.
	DefaultWindowDays = 7
	// MaxWindowDays is the longest projection supported.
	MaxWindowDays = timeutil.MaxHorizonDays
)

// Row is one day of the upcoming hours table. Rows are immutable once built.
type Row struct {
	Date          string                 `json:"date"`
	ShortDate     string                 `json:"label"`
	DayName       string                 `json:"dayName"`
	IsToday       bool                   `json:"isToday"`
	BaseHours     *hours.DaySchedule     `json:"baseHours"`
	Holiday       *holidays.Holiday      `json:"holiday"`
	ForcedClosure closures.ForcedClosure `json:"forcedClosure"`
}

// HoursText renders the hours cell: forced closure, then weekly hours, then a dash.
func (r Row) HoursText() string {
	switch {
	case r.ForcedClosure.Closed:
		return "Closed"
	case r.BaseHours != nil:
		return r.BaseHours.RangeText()
	default:
		return "—"
	}
}

// ShowHoliday reports whether the holiday flag is displayed; forced closure suppresses it.
func (r Row) ShowHoliday() bool {
	return r.Holiday != nil && !r.ForcedClosure.Closed
}

// Note returns the secondary line under the row, if any.
func (r Row) Note() string {
	switch {
	case r.ForcedClosure.Closed:
		note := r.ForcedClosure.Note
		if note == "" {
			note = closures.DefaultNote
		}
		return r.ForcedClosure.Reason + " • " + note
	case r.ShowHoliday():
		return r.Holiday.Name + " • Hours may differ"
	default:
		return ""
	}
}

// Tags returns the badges shown beside the row label.
func (r Row) Tags() []string {
	tags := []string{}
	if r.ForcedClosure.Closed {
		tags = append(tags, "Closed")
	}
	if r.ShowHoliday() {
		tags = append(tags, "Public holiday")
	}
	return tags
}

// Day builds the row for the calendar day of day.
func (e *Engine) Day(day time.Time, isToday bool) Row {
	d := timeutil.Noon(day)
	row := Row{
		Date:          timeutil.FormatDate(d),
		ShortDate:     timeutil.FormatShortDate(d),
		DayName:       timeutil.WeekdayName(d),
		IsToday:       isToday,
		ForcedClosure: e.tables.ForcedClosure(d),
	}
	if sched, ok := e.tables.DaySchedule(d.Weekday()); ok {
		row.BaseHours = &sched
	}
	if h, ok := e.tables.Holiday(d); ok {
		row.Holiday = &h
	}
	return row
}

// Rows projects windowDays consecutive days starting at now's calendar day.
// The window is capped at MaxWindowDays; the first row is today.
func (e *Engine) Rows(now time.Time, windowDays int) []Row {
	if windowDays <= 0 {
		return []Row{}
	}
	if windowDays > MaxWindowDays {
		windowDays = MaxWindowDays
	}
	rows := make([]Row, 0, windowDays)
	timeutil.WalkDays(now, windowDays, func(i int, d time.Time) bool {
		rows = append(rows, e.Day(d, i == 0))
		return false
	})
	return rows
}
