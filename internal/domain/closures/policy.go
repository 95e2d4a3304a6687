package closures

import "time"

// DefaultNote is attached to closures that do not set their own note.
const DefaultNote = "Closed all day"

// ForcedClosure is the outcome of evaluating the closure policy for one calendar day.
type ForcedClosure struct {
	Closed bool   `json:"closed"`
	Reason string `json:"reason,omitempty"`
	Note   string `json:"note,omitempty"`
}

// Rule decides whether a calendar day is a forced closure.
type Rule interface {
	Match(day time.Time) (ForcedClosure, bool)
}

// Policy is an ordered list of rules; the first matching rule wins.
type Policy []Rule

// Evaluate returns the first matching closure for the calendar day of day, or an open result.
func (p Policy) Evaluate(day time.Time) ForcedClosure {
	for _, rule := range p {
		if rule == nil {
			continue
		}
		if fc, ok := rule.Match(day); ok {
			return fc
		}
	}
	return ForcedClosure{}
}

// Default returns the store's standing closures: Christmas Day every year.
func Default() Policy {
	return Policy{FixedDate(time.December, 25, "Christmas Day")}
}
