package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"store-status-service/internal/timeutil"
)

var (
	errInvalidAt        = errors.New("invalid at (expected RFC3339 timestamp)")
	errInvalidThreshold = errors.New("invalid threshold (expected minutes between 1 and 1440)")
	errInvalidDays      = errors.New("invalid days (expected 1 to 14)")
	errInvalidFrom      = errors.New("invalid from (expected YYYY-MM-DD)")
	errInvalidSpan      = errors.New("invalid days (expected a positive number)")
)

const maxThresholdMinutes = 24 * 60

// instantParam reads ?at=; absent means now.
func instantParam(r *http.Request, now time.Time) (time.Time, error) {
	raw := strings.TrimSpace(r.URL.Query().Get("at"))
	if raw == "" {
		return now, nil
	}
	at, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, errInvalidAt
	}
	return at, nil
}

// positiveIntParam reads a bounded positive integer; absent returns 0.
func positiveIntParam(r *http.Request, name string, max int, invalid error) (int, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return 0, nil
	}
	val, err := strconv.Atoi(raw)
	if err != nil || val <= 0 || (max > 0 && val > max) {
		return 0, invalid
	}
	return val, nil
}

// dateParam reads ?from= as a calendar day in loc; absent returns ok=false.
func dateParam(r *http.Request, loc *time.Location) (time.Time, bool, error) {
	raw := strings.TrimSpace(r.URL.Query().Get("from"))
	if raw == "" {
		return time.Time{}, false, nil
	}
	day, err := timeutil.ParseDateIn(raw, loc)
	if err != nil {
		return time.Time{}, false, errInvalidFrom
	}
	return day, true, nil
}
