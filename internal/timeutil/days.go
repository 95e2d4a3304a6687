package timeutil

import "time"

// MaxHorizonDays bounds every forward day scan.
const MaxHorizonDays = 14

// Noon pins t to 12:00 on its calendar day so day arithmetic is immune to DST shifts.
func Noon(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 12, 0, 0, 0, t.Location())
}

// AddDays returns noon of the calendar day n days after t.
func AddDays(t time.Time, n int) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day()+n, 12, 0, 0, 0, t.Location())
}

// SameDate reports whether a and b fall on the same calendar day (by their own fields).
func SameDate(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// WalkDays visits up to horizon consecutive calendar days starting at start
// (offset 0) and stops at the first day for which visit returns true.
// It returns that offset and day; ok is false if no day was accepted.
// Horizons above MaxHorizonDays are clamped.
func WalkDays(start time.Time, horizon int, visit func(offset int, day time.Time) bool) (offset int, day time.Time, ok bool) {
	if horizon > MaxHorizonDays {
		horizon = MaxHorizonDays
	}
	for i := 0; i < horizon; i++ {
		d := AddDays(start, i)
		if visit(i, d) {
			return i, d, true
		}
	}
	return -1, time.Time{}, false
}
