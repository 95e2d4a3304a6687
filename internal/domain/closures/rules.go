package closures

import (
	"fmt"
	"time"

	"github.com/rickar/cal/v2"
)

// AnnualRule closes the store on a date that recurs every year.
type AnnualRule struct {
	Reason string
	Note   string
	spec   *cal.Holiday
}

// FixedDate closes on the same month and day every year.
func FixedDate(month time.Month, day int, reason string) *AnnualRule {
	return &AnnualRule{
		Reason: reason,
		Note:   DefaultNote,
		spec: &cal.Holiday{
			Name:  reason,
			Month: month,
			Day:   day,
			Func:  cal.CalcDayOfMonth,
		},
	}
}

// NthWeekday closes on the nth weekday of a month every year; negative n counts from the month's end.
func NthWeekday(month time.Month, weekday time.Weekday, n int, reason string) *AnnualRule {
	return &AnnualRule{
		Reason: reason,
		Note:   DefaultNote,
		spec: &cal.Holiday{
			Name:    reason,
			Month:   month,
			Weekday: weekday,
			Offset:  n,
			Func:    cal.CalcWeekdayOffset,
		},
	}
}

// WithNote replaces the display note.
func (r *AnnualRule) WithNote(note string) *AnnualRule {
	if note != "" {
		r.Note = note
	}
	return r
}

// Between limits the rule to the inclusive year range; zero leaves a bound open.
func (r *AnnualRule) Between(startYear, endYear int) *AnnualRule {
	r.spec.StartYear = startYear
	r.spec.EndYear = endYear
	return r
}

// Match compares the year's occurrence with the calendar fields of day; the year itself is ignored.
func (r *AnnualRule) Match(day time.Time) (ForcedClosure, bool) {
	if r == nil || r.spec == nil {
		return ForcedClosure{}, false
	}
	actual, ok := r.occurrence(day.Year())
	if !ok {
		return ForcedClosure{}, false
	}
	if actual.Month() != day.Month() || actual.Day() != day.Day() {
		return ForcedClosure{}, false
	}
	return ForcedClosure{Closed: true, Reason: r.Reason, Note: r.Note}, true
}

// OccursOn returns the rule's date in year, if the rule applies that year.
func (r *AnnualRule) OccursOn(year int) (time.Time, bool) {
	if r == nil || r.spec == nil {
		return time.Time{}, false
	}
	return r.occurrence(year)
}

// occurrence drops dates that time.Date normalised out of the rule's month, such as Feb 29 in a
// common year or a fifth weekday the month does not have.
func (r *AnnualRule) occurrence(year int) (time.Time, bool) {
	actual, _ := r.spec.Calc(year)
	if actual.IsZero() || actual.Month() != r.spec.Month {
		return time.Time{}, false
	}
	return actual, true
}

// MaxDay returns the largest day number month can have, counting Feb 29.
func MaxDay(month time.Month) int {
	switch month {
	case time.February:
		return 29
	case time.April, time.June, time.September, time.November:
		return 30
	default:
		return 31
	}
}

func (r *AnnualRule) String() string {
	if r.spec.Func == nil {
		return r.Reason
	}
	if r.spec.Weekday != 0 || r.spec.Offset != 0 {
		return fmt.Sprintf("%s (%s #%d in %s)", r.Reason, r.spec.Weekday, r.spec.Offset, r.spec.Month)
	}
	return fmt.Sprintf("%s (%s %d)", r.Reason, r.spec.Month, r.spec.Day)
}
