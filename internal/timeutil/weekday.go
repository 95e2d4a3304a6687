package timeutil

import (
	"strings"
	"time"
)

var shortNames = map[string]string{
	"Monday":    "Mon",
	"Tuesday":   "Tue",
	"Wednesday": "Wed",
	"Thursday":  "Thu",
	"Friday":    "Fri",
	"Saturday":  "Sat",
	"Sunday":    "Sun",
}

// WeekdayName returns the full English weekday name of t.
func WeekdayName(t time.Time) string {
	return t.Weekday().String()
}

// ShortDayName abbreviates a full weekday name to three letters.
// Unrecognised names are returned unchanged.
func ShortDayName(name string) string {
	if short, ok := shortNames[name]; ok {
		return short
	}
	return name
}

// ParseWeekday resolves a full English weekday name, ignoring case and surrounding space.
func ParseWeekday(name string) (time.Weekday, bool) {
	name = strings.TrimSpace(name)
	for d := time.Sunday; d <= time.Saturday; d++ {
		if strings.EqualFold(d.String(), name) {
			return d, true
		}
	}
	return time.Sunday, false
}
