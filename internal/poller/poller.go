package poller

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"store-status-service/internal/app/status"
	"store-status-service/internal/domain"
	"store-status-service/internal/logging"
	"store-status-service/internal/metrics"
	"store-status-service/internal/providers"
)

const defaultInterval = time.Minute

// maxConsecutiveFailures is the number of failed reloads after which the poller reports not ready.
const maxConsecutiveFailures = 3

// Target receives reloaded calendars and evaluates status against the active one.
type Target interface {
	ReplaceCalendar(cal domain.Calendar)
	Status(now time.Time, threshold int) (status.Result, error)
}

// Poller reloads the calendar on an interval and re-evaluates store status.
type Poller struct {
	provider providers.CalendarProvider
	target   Target
	logger   *slog.Logger
	metrics  *metrics.Recorder
	interval time.Duration
	now      func() time.Time

	ticker   *time.Ticker
	done     chan struct{}
	stopOnce sync.Once
	startMu  sync.Mutex
	started  bool

	// runMu serialises ticks with on-demand refreshes.
	runMu sync.Mutex

	statusMu sync.RWMutex
	status   Status
}

// Status describes the recent health of the poller loop and the last evaluated store state.
type Status struct {
	ConsecutiveFailures int
	LastError           string
	LastAttempt         time.Time
	LastSuccess         time.Time
	Source              string
	State               status.State
	Label               string
	LastTransition      time.Time
}

// IsReady reports whether a calendar has loaded and reloads are not failing repeatedly.
func (s Status) IsReady() bool {
	if s.LastSuccess.IsZero() {
		return false
	}
	return s.ConsecutiveFailures < maxConsecutiveFailures
}

// New constructs a Poller with sane defaults.
func New(provider providers.CalendarProvider, target Target, logger *slog.Logger, recorder *metrics.Recorder, interval time.Duration) *Poller {
	if interval <= 0 {
		interval = defaultInterval
	}
	return &Poller{
		provider: provider,
		target:   target,
		logger:   logger,
		metrics:  recorder,
		interval: interval,
		now:      time.Now,
		done:     make(chan struct{}),
	}
}

// Start begins polling until the context is cancelled or Stop is called.
func (p *Poller) Start(ctx context.Context) {
	p.startMu.Lock()
	if p.started {
		p.startMu.Unlock()
		return
	}
	p.started = true
	p.startMu.Unlock()

	p.ticker = time.NewTicker(p.interval)

	go func() {
		p.logInfo("poller started", slog.Int64(logging.FieldDurationMS, p.interval.Milliseconds()))
		// Initial load so the API can serve as soon as possible.
		p.tick(ctx)

		for {
			select {
			case <-ctx.Done():
				p.stopTicker()
				p.logInfo("poller stopped")
				return
			case <-p.done:
				p.stopTicker()
				p.logInfo("poller stopped")
				return
			case <-p.ticker.C:
				p.tick(ctx)
			}
		}
	}()
}

// Stop halts the polling loop.
func (p *Poller) Stop(ctx context.Context) error {
	_ = ctx
	p.stopOnce.Do(func() {
		close(p.done)
		p.stopTicker()
	})
	return nil
}

// Refresh reloads the calendar and re-evaluates status immediately.
// It returns the load error, if any; the previous calendar stays active on failure.
func (p *Poller) Refresh(ctx context.Context) error {
	return p.tick(ctx)
}

func (p *Poller) tick(ctx context.Context) error {
	p.runMu.Lock()
	defer p.runMu.Unlock()

	start := time.Now()
	p.recordAttempt(start)
	err := p.reload(ctx)
	if err != nil {
		p.recordFailure(err, start)
	} else {
		p.recordSuccess(start)
	}
	p.evaluate()
	if p.metrics != nil {
		p.metrics.RecordPollerCycle(time.Since(start), err)
	}
	return err
}

func (p *Poller) reload(ctx context.Context) error {
	name := providers.NameOf(p.provider)
	start := time.Now()
	cal, err := p.provider.Load(ctx)
	elapsed := time.Since(start)
	if p.metrics != nil {
		p.metrics.RecordCalendarLoad(name, elapsed, err)
	}
	if err != nil {
		p.logError("calendar reload failed", err,
			logging.FieldProvider, name,
			logging.FieldDurationMS, elapsed.Milliseconds(),
		)
		return err
	}

	p.target.ReplaceCalendar(cal)
	p.statusMu.Lock()
	p.status.Source = cal.Source
	p.statusMu.Unlock()
	p.logDebug("calendar reloaded",
		logging.FieldProvider, name,
		logging.FieldSource, cal.Source,
		logging.FieldCount, cal.Holidays.Len(),
		logging.FieldDurationMS, elapsed.Milliseconds(),
	)
	return nil
}

// evaluate computes the current status and logs open/closed transitions.
func (p *Poller) evaluate() {
	res, err := p.target.Status(p.now(), 0)
	if err != nil {
		// No calendar has been loaded yet.
		return
	}
	if p.metrics != nil {
		p.metrics.RecordStatusEvaluation(string(res.State))
	}

	p.statusMu.Lock()
	prev := p.status.State
	p.status.State = res.State
	p.status.Label = res.Label
	changed := prev != "" && prev != res.State
	if changed {
		p.status.LastTransition = p.now()
	}
	p.statusMu.Unlock()

	switch {
	case prev == "":
		p.logInfo("store status", logging.FieldState, string(res.State), logging.FieldLabel, res.Label)
	case changed:
		p.logInfo("store status changed",
			"from", string(prev),
			logging.FieldState, string(res.State),
			logging.FieldLabel, res.Label,
		)
	}
}

func (p *Poller) stopTicker() {
	if p.ticker != nil {
		p.ticker.Stop()
	}
}

func (p *Poller) logInfo(msg string, args ...any) {
	if p.logger != nil {
		p.logger.Info(msg, args...)
	}
}

func (p *Poller) logDebug(msg string, args ...any) {
	if p.logger != nil {
		p.logger.Debug(msg, args...)
	}
}

func (p *Poller) logError(msg string, err error, attrs ...any) {
	if p.logger != nil {
		p.logger.Error(msg, append(attrs, "err", err)...)
	}
}

func (p *Poller) recordAttempt(at time.Time) {
	p.statusMu.Lock()
	defer p.statusMu.Unlock()
	p.status.LastAttempt = at
}

func (p *Poller) recordSuccess(at time.Time) {
	p.statusMu.Lock()
	defer p.statusMu.Unlock()
	p.status.ConsecutiveFailures = 0
	p.status.LastError = ""
	p.status.LastSuccess = at
}

func (p *Poller) recordFailure(err error, at time.Time) {
	p.statusMu.Lock()
	defer p.statusMu.Unlock()
	p.status.ConsecutiveFailures++
	if err != nil {
		p.status.LastError = err.Error()
	}
	p.status.LastAttempt = at
}

// Status returns a snapshot of the poller's recent health.
func (p *Poller) Status() Status {
	p.statusMu.RLock()
	defer p.statusMu.RUnlock()
	return p.status
}

// Provider exposes the underlying provider.
func (p *Poller) Provider() providers.CalendarProvider {
	return p.provider
}
