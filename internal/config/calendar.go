package config

import "strings"

// CalendarConfig selects where the store calendar is loaded from.
type CalendarConfig struct {
	Provider string // "builtin" or "file"
	File     string
}

func loadCalendar() CalendarConfig {
	return CalendarConfig{
		Provider: strings.ToLower(strings.TrimSpace(envOrDefault(envCalendarSource, defaultCalendarSource))),
		File:     envOrDefault(envCalendarFile, defaultCalendarFile),
	}
}
