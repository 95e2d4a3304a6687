package status

import "time"

// State is the exclusive status of the store at an instant.
type State string

const (
	StateOpen         State = "open"
	StateClosingSoon  State = "closing_soon"
	StateClosedForced State = "closed_forced"
	StateClosed       State = "closed"
)

// Open reports whether the state is one of the open states.
func (s State) Open() bool {
	return s == StateOpen || s == StateClosingSoon
}

// NextOpening is the first accepted opening found by the forward search.
type NextOpening struct {
	Date       string    `json:"date"`
	DayName    string    `json:"dayName"`
	Opens      string    `json:"opens"`
	OffsetDays int       `json:"offsetDays"`
	At         time.Time `json:"at"`
}

// Result is the derived store status at an instant. It is recomputed on demand.
type Result struct {
	IsOpen         bool         `json:"isOpen"`
	ClosingSoon    bool         `json:"closingSoon"`
	MinutesToClose *int         `json:"minutesToClose"`
	DayName        string       `json:"dayName"`
	Label          string       `json:"label"`
	ForcedClosed   bool         `json:"forcedClosed"`
	ForcedReason   *string      `json:"forcedReason"`
	State          State        `json:"state"`
	NextOpen       *NextOpening `json:"nextOpen,omitempty"`
}

// Badge returns the short pill text for the status.
func (r Result) Badge() string {
	switch {
	case r.IsOpen && r.ClosingSoon:
		return "CLOSING SOON"
	case r.IsOpen:
		return "OPEN"
	default:
		return "CLOSED"
	}
}
