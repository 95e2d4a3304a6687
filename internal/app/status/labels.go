package status

import (
	"fmt"

	"store-status-service/internal/timeutil"
)

const (
	labelHoursUnavailable       = "Hours unavailable"
	labelClosedHoursUnavailable = "Closed • Hours unavailable"
)

func openLabel(closes timeutil.TimeOfDay) string {
	return "Open now • Closes " + timeutil.FormatClock(closes)
}

func closingSoonLabel(minutes int, closes timeutil.TimeOfDay) string {
	return fmt.Sprintf("Open now • Closing soon (%d min) • Closes %s", minutes, timeutil.FormatClock(closes))
}

func closedOpensTodayLabel(next NextOpening) string {
	return "Closed • Opens " + next.Opens
}

func closedOpensLaterLabel(next NextOpening) string {
	return "Closed • Opens " + timeutil.ShortDayName(next.DayName) + " " + next.Opens
}

func forcedLabel(reason string, next *NextOpening) string {
	if next == nil {
		return "Closed today • " + reason
	}
	return "Closed today • " + reason + " • Opens " + timeutil.ShortDayName(next.DayName) + " " + next.Opens
}
