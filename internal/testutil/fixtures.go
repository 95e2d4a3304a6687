package testutil

import (
	"time"

	"store-status-service/internal/domain"
	"store-status-service/internal/domain/closures"
	"store-status-service/internal/domain/holidays"
	"store-status-service/internal/domain/hours"
)

// StoreZone is a fixed UTC+10 zone matching Brisbane without tzdata.
var StoreZone = time.FixedZone("AEST", 10*60*60)

// At builds an instant in StoreZone.
func At(year int, month time.Month, day, hour, minute int) time.Time {
	return time.Date(year, month, day, hour, minute, 0, 0, StoreZone)
}

// SampleWeek returns Mon–Fri 06:30–20:00 and Sat–Sun 07:30–20:00.
func SampleWeek() hours.Week {
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

// SampleHolidays returns a handful of dated holidays around Christmas 2025/2026.
func SampleHolidays() holidays.Registry {
	return holidays.NewRegistry(
		holidays.Holiday{Date: "2025-12-25", Name: "Christmas Day", Scope: holidays.ScopeNational},
		holidays.Holiday{Date: "2025-12-26", Name: "Boxing Day", Scope: holidays.ScopeNational},
		holidays.Holiday{Date: "2026-10-05", Name: "King's Birthday (QLD)", Scope: holidays.ScopeRegional, Region: "QLD"},
		holidays.Holiday{Date: "2026-12-25", Name: "Christmas Day", Scope: holidays.ScopeNational},
		holidays.Holiday{Date: "2026-12-26", Name: "Boxing Day", Scope: holidays.ScopeNational},
	)
}

// SampleProfile returns a minimal store profile.
func SampleProfile() domain.Profile {
	return domain.Profile{
		Name:         "Test Corner Store",
		Address:      "1 Test St, Testville",
		PhoneDisplay: "(07) 0000 0000",
		PhoneTel:     "+61700000000",
		MapsQuery:    "Test Corner Store",
		Specials: []domain.Special{
			{Enabled: true, Badge: "Featured", Title: "Featured picks", Description: "Always on"},
			{Enabled: false, Badge: "Hidden", Title: "Draft", Description: "Not yet"},
		},
	}
}

// SampleCalendar bundles the sample week, holidays, the Christmas closure and profile.
func SampleCalendar() domain.Calendar {
	return domain.Calendar{
		Week:     SampleWeek(),
		Holidays: SampleHolidays(),
		Closures: closures.Default(),
		Profile:  SampleProfile(),
		Source:   "test",
	}
}
