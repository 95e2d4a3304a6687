package holidays

import (
	"fmt"
	"strings"
	"time"

	"store-status-service/internal/timeutil"
)

// Scope distinguishes nationwide holidays from state or regional ones.
type Scope string

const (
	ScopeNational Scope = "National"
	ScopeRegional Scope = "Regional"
)

// ParseScope resolves a scope name, case-insensitively. Empty means National.
func ParseScope(value string) (Scope, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "national", "":
		return ScopeNational, nil
	case "regional":
		return ScopeRegional, nil
	default:
		return "", fmt.Errorf("unknown holiday scope %q", value)
	}
}

// Holiday is a dated public holiday. Date is YYYY-MM-DD.
type Holiday struct {
	Date   string `json:"date"`
	Name   string `json:"name"`
	Scope  Scope  `json:"scope"`
	Region string `json:"region,omitempty"`
}

// Validate checks the date format and name.
func (h Holiday) Validate() error {
	if _, err := timeutil.ParseDate(h.Date); err != nil {
		return fmt.Errorf("holiday %q: invalid date %q", h.Name, h.Date)
	}
	if strings.TrimSpace(h.Name) == "" {
		return fmt.Errorf("holiday on %s: name required", h.Date)
	}
	if h.Scope != ScopeNational && h.Scope != ScopeRegional {
		return fmt.Errorf("holiday %q: unknown scope %q", h.Name, h.Scope)
	}
	return nil
}

// Registry is a static list of dated holidays.
// Dates are expected to be unique; lookups return the first match.
type Registry struct {
	entries []Holiday
}

// NewRegistry builds a Registry in the given order.
func NewRegistry(entries ...Holiday) Registry {
	copied := make([]Holiday, len(entries))
	copy(copied, entries)
	return Registry{entries: copied}
}

// Lookup returns the holiday on the calendar day of t, using t's own date fields.
func (r Registry) Lookup(t time.Time) (Holiday, bool) {
	iso := timeutil.FormatDate(t)
	for _, h := range r.entries {
		if h.Date == iso {
			return h, true
		}
	}
	return Holiday{}, false
}

// All returns a copy of every entry.
func (r Registry) All() []Holiday {
	out := make([]Holiday, len(r.entries))
	copy(out, r.entries)
	return out
}

// Len reports the number of entries.
func (r Registry) Len() int {
	return len(r.entries)
}

// Between returns entries dated within [from, from+days), in registry order.
func (r Registry) Between(from time.Time, days int) []Holiday {
	if days <= 0 {
		return []Holiday{}
	}
	start := timeutil.FormatDate(from)
	end := timeutil.FormatDate(timeutil.AddDays(from, days))
	out := []Holiday{}
	for _, h := range r.entries {
		// ISO dates order lexically.
		if h.Date >= start && h.Date < end {
			out = append(out, h)
		}
	}
	return out
}

// Validate checks every entry.
func (r Registry) Validate() error {
	for _, h := range r.entries {
		if err := h.Validate(); err != nil {
			return err
		}
	}
	return nil
}
