package providers

import (
	"strings"
	"time"
)

// ResolveTimezone returns the IANA location named by tz, or nil if it is empty or unknown.
// "Local" is rejected so store time never silently follows the host's zone.
func ResolveTimezone(tz string) *time.Location {
	tz = strings.TrimSpace(tz)
	if tz == "" || strings.EqualFold(tz, "local") {
		return nil
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return nil
	}
	return loc
}
