package status

import (
	"errors"
	"time"

	"store-status-service/internal/domain"
	"store-status-service/internal/domain/holidays"
	"store-status-service/internal/timeutil"
)

// ErrNoCalendar is returned before any calendar has been loaded.
var ErrNoCalendar = errors.New("calendar not loaded")

// Store defines the contract for holding the active calendar.
type Store interface {
	Calendar() (domain.Calendar, bool)
	SetCalendar(cal domain.Calendar)
}

// Options tunes a Service.
type Options struct {
	Location           *time.Location
	ClosingSoonMinutes int
	WindowDays         int
}

// Service evaluates status against whichever calendar the Store currently holds.
type Service struct {
	store Store
	opts  Options
}

// NewService constructs a Service with the provided Store. Zero options take defaults.
func NewService(store Store, opts Options) *Service {
	if opts.Location == nil {
		opts.Location = time.Local
	}
	if opts.ClosingSoonMinutes <= 0 {
		opts.ClosingSoonMinutes = DefaultClosingSoonMinutes
	}
	if opts.WindowDays <= 0 || opts.WindowDays > MaxWindowDays {
		opts.WindowDays = DefaultWindowDays
	}
	return &Service{store: store, opts: opts}
}

// Today is the summary shown at the top of the page.
type Today struct {
	Status    Result `json:"status"`
	Badge     string `json:"badge"`
	Date      string `json:"date"`
	HoursText string `json:"hoursText"`
	Notice    string `json:"notice,omitempty"`
}

// Location returns the store's time zone.
func (s *Service) Location() *time.Location {
	return s.opts.Location
}

// Local converts t into store local time.
func (s *Service) Local(t time.Time) time.Time {
	return t.In(s.opts.Location)
}

// ClosingSoonMinutes returns the configured threshold.
func (s *Service) ClosingSoonMinutes() int {
	return s.opts.ClosingSoonMinutes
}

// WindowDays returns the configured default projection length.
func (s *Service) WindowDays() int {
	return s.opts.WindowDays
}

// Engine returns an engine over the active calendar.
func (s *Service) Engine() (*Engine, error) {
	cal, ok := s.store.Calendar()
	if !ok {
		return nil, ErrNoCalendar
	}
	return NewEngine(CalendarTables(cal)), nil
}

// Status evaluates the store at now with the given threshold; threshold <= 0 uses the configured one.
func (s *Service) Status(now time.Time, threshold int) (Result, error) {
	engine, err := s.Engine()
	if err != nil {
		return Result{}, err
	}
	if threshold <= 0 {
		threshold = s.opts.ClosingSoonMinutes
	}
	return engine.Status(s.Local(now), threshold), nil
}

// Today evaluates status plus today's hours text and notice.
func (s *Service) Today(now time.Time, threshold int) (Today, error) {
	engine, err := s.Engine()
	if err != nil {
		return Today{}, err
	}
	if threshold <= 0 {
		threshold = s.opts.ClosingSoonMinutes
	}
	local := s.Local(now)
	res := engine.Status(local, threshold)
	row := engine.Day(local, true)

	out := Today{
		Status:    res,
		Badge:     res.Badge(),
		Date:      row.Date,
		HoursText: row.HoursText(),
	}
	switch {
	case row.ForcedClosure.Closed:
		out.Notice = "Closed today — " + row.ForcedClosure.Reason + "."
	case row.Holiday != nil:
		out.Notice = "Public holiday: " + row.Holiday.Name + ". Hours may differ."
	}
	return out, nil
}

// Rows projects the hours table; days <= 0 uses the configured window.
func (s *Service) Rows(now time.Time, days int) ([]Row, error) {
	engine, err := s.Engine()
	if err != nil {
		return nil, err
	}
	if days <= 0 {
		days = s.opts.WindowDays
	}
	return engine.Rows(s.Local(now), days), nil
}

// Holidays returns registry entries in [from, from+days); days <= 0 returns every entry.
func (s *Service) Holidays(from time.Time, days int) ([]holidays.Holiday, error) {
	cal, ok := s.store.Calendar()
	if !ok {
		return nil, ErrNoCalendar
	}
	if days <= 0 {
		return cal.Holidays.All(), nil
	}
	return cal.Holidays.Between(timeutil.Noon(s.Local(from)), days), nil
}

// Profile returns the static store profile.
func (s *Service) Profile() (domain.Profile, error) {
	cal, ok := s.store.Calendar()
	if !ok {
		return domain.Profile{}, ErrNoCalendar
	}
	return cal.Profile, nil
}

// ReplaceCalendar swaps in a freshly loaded calendar.
func (s *Service) ReplaceCalendar(cal domain.Calendar) {
	s.store.SetCalendar(cal)
}
