package domain

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"store-status-service/internal/domain/holidays"
	"store-status-service/internal/domain/hours"
)

func TestProfileLinks(t *testing.T) {
	p := Profile{MapsQuery: "Hawthorne Corner Store Hawthorne QLD", PhoneTel: "+61733996611"}
	if got := p.MapsLink(); got != "https://www.google.com/maps/search/?api=1&query=Hawthorne+Corner+Store+Hawthorne+QLD" {
		t.Fatalf("unexpected maps link %s", got)
	}
	if got := p.MapsEmbed(); !strings.HasSuffix(got, "&output=embed") || !strings.Contains(got, "q=Hawthorne+Corner") {
		t.Fatalf("unexpected maps embed %s", got)
	}
	if got := p.TelLink(); got != "tel:+61733996611" {
		t.Fatalf("unexpected tel link %s", got)
	}
	if (Profile{}).MapsLink() != "" || (Profile{}).TelLink() != "" {
		t.Fatal("expected empty links for empty profile")
	}
}

func TestProfileResponseOnlyEnabledSpecials(t *testing.T) {
	p := Profile{
		Name: "Corner",
		Specials: []Special{
			{Enabled: true, Badge: "Featured", Title: "A"},
			{Enabled: false, Badge: "Hidden", Title: "B"},
		},
	}
	resp := NewProfileResponse(p)
	if len(resp.Specials) != 1 || resp.Specials[0].Title != "A" {
		t.Fatalf("unexpected specials %+v", resp.Specials)
	}

	data, err := json.Marshal(resp)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if strings.Contains(string(data), "Hidden") {
		t.Fatalf("disabled special leaked: %s", data)
	}
}

func TestCalendarValidate(t *testing.T) {
	good := Calendar{
		Week:     hours.NewWeek(hours.Day(time.Monday, "06:30", "20:00")),
		Holidays: holidays.NewRegistry(holidays.Holiday{Date: "2026-01-01", Name: "New Year's Day", Scope: holidays.ScopeNational}),
	}
	if err := good.Validate(); err != nil {
		t.Fatalf("expected valid calendar, got %v", err)
	}
	bad := good
	bad.Holidays = holidays.NewRegistry(holidays.Holiday{Date: "not-a-date", Name: "x", Scope: holidays.ScopeNational})
	if err := bad.Validate(); err == nil {
		t.Fatal("expected holiday validation error")
	}
}
