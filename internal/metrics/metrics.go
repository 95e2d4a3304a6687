package metrics

import (
	"sync"
	"time"
)

type providerStats struct {
	loads       int
	failures    int
	lastLatency time.Duration
	lastSuccess time.Time
}

// Recorder captures lightweight, in-memory metrics about calendar loads and status
// evaluations, and forwards them to OpenTelemetry instruments when configured.
type Recorder struct {
	mu        sync.Mutex
	stats     map[string]*providerStats
	states    map[string]int
	lastState string
	otel      *otelInstruments
}

func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{
		stats:  make(map[string]*providerStats),
		states: make(map[string]int),
		otel:   otel,
	}
}

// RecordCalendarLoad increments counters for a calendar load and stores the last observed latency.
func (r *Recorder) RecordCalendarLoad(provider string, duration time.Duration, err error) {
	if r == nil {
		return
	}

	r.mu.Lock()
	stats := r.ensureStatsLocked(provider)
	stats.loads++
	stats.lastLatency = duration
	if err != nil {
		stats.failures++
	} else {
		stats.lastSuccess = time.Now()
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordCalendarLoad(provider, duration, err)
	}
}

// RecordStatusEvaluation counts an evaluated status by state and remembers the latest one.
func (r *Recorder) RecordStatusEvaluation(state string) {
	if r == nil {
		return
	}

	r.mu.Lock()
	r.states[state]++
	r.lastState = state
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordStatusEvaluation(state)
	}
}

// CalendarLoads returns the total loads recorded for a provider.
func (r *Recorder) CalendarLoads(provider string) int {
	return r.Snapshot(provider).Loads
}

// CalendarLoadFailures returns the failed loads recorded for a provider.
func (r *Recorder) CalendarLoadFailures(provider string) int {
	return r.Snapshot(provider).Failures
}

// LastLoadLatency returns the last recorded load latency for a provider.
func (r *Recorder) LastLoadLatency(provider string) time.Duration {
	return r.Snapshot(provider).LastLatency
}

// StateCount returns how many evaluations ended in state.
func (r *Recorder) StateCount(state string) int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.states[state]
}

// LastState returns the most recently evaluated state, or "".
func (r *Recorder) LastState() string {
	if r == nil {
		return ""
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.lastState
}

// Snapshot returns a copy of the current stats for the provider.
type Snapshot struct {
	Loads       int
	Failures    int
	LastLatency time.Duration
	LastSuccess time.Time
}

func (r *Recorder) Snapshot(provider string) Snapshot {
	if r == nil {
		return Snapshot{}
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	stats, ok := r.stats[provider]
	if !ok || stats == nil {
		return Snapshot{}
	}
	return Snapshot{
		Loads:       stats.loads,
		Failures:    stats.failures,
		LastLatency: stats.lastLatency,
		LastSuccess: stats.lastSuccess,
	}
}

// RecordHTTPRequest tracks basic HTTP metrics.
func (r *Recorder) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordHTTPRequest(method, path, status, duration)
}

// RecordPollerCycle tracks poller cycles and errors.
func (r *Recorder) RecordPollerCycle(duration time.Duration, err error) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordPoller(duration, err)
}

func (r *Recorder) ensureStatsLocked(provider string) *providerStats {
	stats, ok := r.stats[provider]
	if !ok {
		stats = &providerStats{}
		r.stats[provider] = stats
	}
	return stats
}
