package builtin

import (
	"context"
	"time"

	"store-status-service/internal/domain"
	"store-status-service/internal/domain/closures"
	"store-status-service/internal/domain/holidays"
	"store-status-service/internal/domain/hours"
	"store-status-service/internal/providers"
)

// Name identifies the built-in calendar in logs and metrics.
const Name = "builtin"

// Provider serves the compiled-in Hawthorne Corner Store calendar.
type Provider struct {
	now func() time.Time
}

// New creates a built-in provider with a time source.
func New() *Provider {
	return &Provider{now: time.Now}
}

// Name implements providers.Named.
func (p *Provider) Name() string {
	return Name
}

// Load returns the built-in calendar. It only fails if the compiled tables are malformed.
func (p *Provider) Load(ctx context.Context) (domain.Calendar, error) {
	if err := ctx.Err(); err != nil {
		return domain.Calendar{}, err
	}
	cal := Calendar()
	if err := cal.Validate(); err != nil {
		return domain.Calendar{}, providers.Invalid(Name, "calendar", err.Error())
	}
	cal.LoadedAt = p.now()
	return cal, nil
}

// Calendar returns a fresh copy of the built-in tables.
func Calendar() domain.Calendar {
	return domain.Calendar{
		Week:     Week(),
		Holidays: Holidays(),
		Closures: closures.Default(),
		Profile:  Profile(),
		Source:   Name,
	}
}

// Week is the regular trading week.
func Week() hours.Week {
	return hours.NewWeek(
		hours.Day(time.Monday, "06:30", "20:00"),
		hours.Day(time.Tuesday, "06:30", "20:00"),
		hours.Day(time.Wednesday, "06:30", "20:00"),
		hours.Day(time.Thursday, "06:30", "20:00"),
		hours.Day(time.Friday, "06:30", "20:00"),
		hours.Day(time.Saturday, "07:30", "20:00"),
		hours.Day(time.Sunday, "07:30", "20:00"),
	)
}

func national(date, name string) holidays.Holiday {
	return holidays.Holiday{Date: date, Name: name, Scope: holidays.ScopeNational}
}

func qld(date, name string) holidays.Holiday {
	return holidays.Holiday{Date: date, Name: name, Scope: holidays.ScopeRegional, Region: "QLD"}
}

// Holidays lists national and Queensland public holidays. Extend as new years are gazetted.
func Holidays() holidays.Registry {
	return holidays.NewRegistry(
		national("2025-12-25", "Christmas Day"),
		national("2025-12-26", "Boxing Day"),

		national("2026-01-01", "New Year’s Day"),
		national("2026-01-26", "Australia Day"),
		national("2026-04-03", "Good Friday"),
		national("2026-04-04", "Easter Saturday"),
		national("2026-04-06", "Easter Monday"),
		national("2026-04-25", "Anzac Day"),
		national("2026-12-25", "Christmas Day"),
		national("2026-12-26", "Boxing Day"),

		qld("2026-05-04", "Labour Day (QLD)"),
		qld("2026-10-05", "King’s Birthday (QLD)"),
	)
}

// Profile is the static store page information.
func Profile() domain.Profile {
	return domain.Profile{
		Name:         "Hawthorne Corner Store",
		Address:      "331 Hawthorne Rd, Hawthorne, QLD",
		PhoneDisplay: "(07) 3399 6611",
		PhoneTel:     "+61733996611",
		MapsQuery:    "Hawthorne Corner Store Hawthorne QLD",
		ReviewsURL:   "https://www.google.com/search?q=Hawthorne+Corner+Store+Hawthorne+QLD&hl=en",
		LastUpdated:  "December 2025",
		Specials: []domain.Special{
			{Enabled: true, Badge: "Featured", Title: "Featured picks", Description: "Our best long-running specials."},
			{Enabled: true, Badge: "Ongoing", Title: "Ongoing specials", Description: "Deals that stick around for weeks or months."},
			{Enabled: true, Badge: "Popular", Title: "New / popular stock", Description: "Imported snacks, drinks and what people ask for most."},
		},
	}
}
