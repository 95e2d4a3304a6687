package file

import (
	"fmt"
	"strings"
	"time"

	"store-status-service/internal/domain"
	"store-status-service/internal/domain/closures"
	"store-status-service/internal/domain/holidays"
	"store-status-service/internal/domain/hours"
	"store-status-service/internal/providers"
	"store-status-service/internal/timeutil"
)

// mapCalendar converts and validates a decoded document. Warnings describe accepted but
// suspicious input, such as two holidays on one date.
func mapCalendar(doc calendarDoc) (domain.Calendar, []string, error) {
	week, err := mapWeek(doc.Hours)
	if err != nil {
		return domain.Calendar{}, nil, err
	}
	registry, warnings, err := mapHolidays(doc.Holidays)
	if err != nil {
		return domain.Calendar{}, nil, err
	}
	policy := closures.Default()
	if doc.Closures != nil {
		if policy, err = mapClosures(*doc.Closures); err != nil {
			return domain.Calendar{}, nil, err
		}
	}
	return domain.Calendar{
		Week:     week,
		Holidays: registry,
		Closures: policy,
		Profile:  mapProfile(doc.Profile),
		Source:   Name,
	}, warnings, nil
}

func mapWeek(days []dayDoc) (hours.Week, error) {
	entries := make([]hours.DaySchedule, 0, len(days))
	seen := make(map[time.Weekday]bool, len(days))
	for i, d := range days {
		field := fmt.Sprintf("hours[%d]", i)
		weekday, ok := timeutil.ParseWeekday(d.Day)
		if !ok {
			return hours.Week{}, providers.Invalid(Name, field+".day", fmt.Sprintf("unknown weekday %q", d.Day))
		}
		if seen[weekday] {
			return hours.Week{}, providers.Invalid(Name, field+".day", fmt.Sprintf("duplicate entry for %s", weekday))
		}
		seen[weekday] = true

		open, err := timeutil.ParseClock(d.Open)
		if err != nil {
			return hours.Week{}, providers.Invalid(Name, field+".open", err.Error())
		}
		closeAt, err := timeutil.ParseClock(d.Close)
		if err != nil {
			return hours.Week{}, providers.Invalid(Name, field+".close", err.Error())
		}
		entry := hours.DaySchedule{Day: weekday, Open: open, Close: closeAt}
		if err := entry.Validate(); err != nil {
			return hours.Week{}, providers.Invalid(Name, field, err.Error())
		}
		entries = append(entries, entry)
	}
	return hours.NewWeek(entries...), nil
}

// mapHolidays keeps entries in file order. A repeated date is kept and reported; lookups use the first.
func mapHolidays(docs []holidayDoc) (holidays.Registry, []string, error) {
	entries := make([]holidays.Holiday, 0, len(docs))
	first := make(map[string]string, len(docs))
	var warnings []string
	for i, h := range docs {
		field := fmt.Sprintf("holidays[%d]", i)
		scope, err := holidays.ParseScope(h.Scope)
		if err != nil {
			return holidays.Registry{}, nil, providers.Invalid(Name, field+".scope", err.Error())
		}
		entry := holidays.Holiday{
			Date:   strings.TrimSpace(h.Date),
			Name:   strings.TrimSpace(h.Name),
			Scope:  scope,
			Region: strings.TrimSpace(h.Region),
		}
		if err := entry.Validate(); err != nil {
			return holidays.Registry{}, nil, providers.Invalid(Name, field, err.Error())
		}
		if name, dup := first[entry.Date]; dup {
			warnings = append(warnings, fmt.Sprintf("%s.date: %s already holds %q; %q is shadowed", field, entry.Date, name, entry.Name))
		} else {
			first[entry.Date] = entry.Name
		}
		entries = append(entries, entry)
	}
	return holidays.NewRegistry(entries...), warnings, nil
}

func mapClosures(docs []closureDoc) (closures.Policy, error) {
	policy := make(closures.Policy, 0, len(docs))
	for i, c := range docs {
		field := fmt.Sprintf("closures[%d]", i)
		if strings.TrimSpace(c.Reason) == "" {
			return nil, providers.Invalid(Name, field+".reason", "reason required")
		}
		if c.Month < 1 || c.Month > 12 {
			return nil, providers.Invalid(Name, field+".month", fmt.Sprintf("month %d out of range", c.Month))
		}

		var rule *closures.AnnualRule
		switch {
		case c.Weekday != "":
			weekday, ok := timeutil.ParseWeekday(c.Weekday)
			if !ok {
				return nil, providers.Invalid(Name, field+".weekday", fmt.Sprintf("unknown weekday %q", c.Weekday))
			}
			if c.Nth == 0 || c.Nth < -5 || c.Nth > 5 {
				return nil, providers.Invalid(Name, field+".nth", "nth must be 1..5 or -1..-5")
			}
			rule = closures.NthWeekday(time.Month(c.Month), weekday, c.Nth, c.Reason)
		case c.Day != 0:
			if limit := closures.MaxDay(time.Month(c.Month)); c.Day < 1 || c.Day > limit {
				return nil, providers.Invalid(Name, field+".day", fmt.Sprintf("day %d out of range for %s (1..%d)", c.Day, time.Month(c.Month), limit))
			}
			rule = closures.FixedDate(time.Month(c.Month), c.Day, c.Reason)
		default:
			return nil, providers.Invalid(Name, field, "either day or weekday+nth is required")
		}
		if c.FromYear != 0 && c.ToYear != 0 && c.FromYear > c.ToYear {
			return nil, providers.Invalid(Name, field+".to_year", "to_year before from_year")
		}
		policy = append(policy, rule.WithNote(c.Note).Between(c.FromYear, c.ToYear))
	}
	return policy, nil
}

func mapProfile(p profileDoc) domain.Profile {
	specials := make([]domain.Special, 0, len(p.Specials))
	for _, s := range p.Specials {
		enabled := true
		if s.Enabled != nil {
			enabled = *s.Enabled
		}
		specials = append(specials, domain.Special{
			Enabled:     enabled,
			Badge:       s.Badge,
			Title:       s.Title,
			Description: s.Desc,
		})
	}
	return domain.Profile{
		Name:         p.Name,
		Address:      p.Address,
		PhoneDisplay: p.PhoneDisplay,
		PhoneTel:     p.PhoneTel,
		MapsQuery:    p.MapsQuery,
		ReviewsURL:   p.ReviewsURL,
		LastUpdated:  p.LastUpdated,
		Specials:     specials,
	}
}
