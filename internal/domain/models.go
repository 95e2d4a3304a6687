package domain

import (
	"net/url"
	"time"

	"store-status-service/internal/domain/closures"
	"store-status-service/internal/domain/holidays"
	"store-status-service/internal/domain/hours"
)

// Calendar bundles the static tables the status engine reads.
type Calendar struct {
	Week     hours.Week
	Holidays holidays.Registry
	Closures closures.Policy
	Profile  Profile
	Source   string
	LoadedAt time.Time
}

// Validate checks the weekly table and holiday registry.
func (c Calendar) Validate() error {
	if err := c.Week.Validate(); err != nil {
		return err
	}
	return c.Holidays.Validate()
}

// Special is a promotional card shown on the store page.
type Special struct {
	Enabled     bool   `json:"-"`
	Badge       string `json:"badge"`
	Title       string `json:"title"`
	Description string `json:"desc"`
}

// Profile is static store information consumed verbatim by presentation.
type Profile struct {
	Name         string    `json:"name"`
	Address      string    `json:"address"`
	PhoneDisplay string    `json:"phoneDisplay"`
	PhoneTel     string    `json:"phoneTel"`
	MapsQuery    string    `json:"mapsQuery"`
	ReviewsURL   string    `json:"reviewsUrl,omitempty"`
	LastUpdated  string    `json:"lastUpdated,omitempty"`
	Specials     []Special `json:"-"`
}

// MapsLink returns a Google Maps search link for the store.
func (p Profile) MapsLink() string {
	if p.MapsQuery == "" {
		return ""
	}
	return "https://www.google.com/maps/search/?api=1&query=" + url.QueryEscape(p.MapsQuery)
}

// MapsEmbed returns an embeddable Google Maps URL for the store.
func (p Profile) MapsEmbed() string {
	if p.MapsQuery == "" {
		return ""
	}
	return "https://www.google.com/maps?q=" + url.QueryEscape(p.MapsQuery) + "&output=embed"
}

// TelLink returns a tel: URI for the store phone.
func (p Profile) TelLink() string {
	if p.PhoneTel == "" {
		return ""
	}
	return "tel:" + p.PhoneTel
}

// ActiveSpecials returns enabled specials in order.
func (p Profile) ActiveSpecials() []Special {
	out := make([]Special, 0, len(p.Specials))
	for _, s := range p.Specials {
		if s.Enabled {
			out = append(out, s)
		}
	}
	return out
}

// ProfileResponse is the payload returned by /store.
type ProfileResponse struct {
	Profile
	MapsLink  string    `json:"mapsLink,omitempty"`
	MapsEmbed string    `json:"mapsEmbed,omitempty"`
	TelLink   string    `json:"telLink,omitempty"`
	Specials  []Special `json:"specials"`
}

// NewProfileResponse builds a ProfileResponse payload.
func NewProfileResponse(p Profile) ProfileResponse {
	return ProfileResponse{
		Profile:   p,
		MapsLink:  p.MapsLink(),
		MapsEmbed: p.MapsEmbed(),
		TelLink:   p.TelLink(),
		Specials:  p.ActiveSpecials(),
	}
}
