package providers

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"store-status-service/internal/domain"
)

const (
	defaultRetryAttempts = 3
	defaultBackoff       = 200 * time.Millisecond
)

type backoffFunc func(attempt int) time.Duration

// retryingProvider wraps a CalendarProvider with retry/backoff for transient read failures.
// Validation errors are returned immediately since a malformed calendar will not fix itself.
type retryingProvider struct {
	inner       CalendarProvider
	name        string
	logger      *slog.Logger
	maxAttempts int
	backoffFn   backoffFunc
}

// NewRetryingProvider wraps the given provider with retries. If maxAttempts/backoff are <= 0, defaults are used.
func NewRetryingProvider(inner CalendarProvider, logger *slog.Logger, maxAttempts int, backoff time.Duration) CalendarProvider {
	if maxAttempts <= 0 {
		maxAttempts = defaultRetryAttempts
	}
	if backoff <= 0 {
		backoff = defaultBackoff
	}
	return &retryingProvider{
		inner:       inner,
		name:        NameOf(inner),
		logger:      logger,
		maxAttempts: maxAttempts,
		backoffFn: func(attempt int) time.Duration {
			return time.Duration(attempt) * backoff
		},
	}
}

// Name reports the wrapped provider's name.
func (r *retryingProvider) Name() string {
	return r.name
}

func (r *retryingProvider) Load(ctx context.Context) (domain.Calendar, error) {
	if r.inner == nil {
		return domain.Calendar{}, ErrProviderUnavailable
	}

	var lastErr error
	for attempt := 1; attempt <= r.maxAttempts; attempt++ {
		cal, err := r.inner.Load(ctx)
		if err == nil {
			return cal, nil
		}
		lastErr = err

		if _, invalid := AsValidationError(err); invalid || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return domain.Calendar{}, err
		}
		if attempt == r.maxAttempts {
			break
		}

		LogWithProvider(ctx, r.logger, slog.LevelWarn, r.name, "calendar load retry",
			"attempt", attempt, "max_attempts", r.maxAttempts, "err", err)

		delay := r.backoffFn(attempt)
		select {
		case <-ctx.Done():
			return domain.Calendar{}, ctx.Err()
		case <-time.After(delay):
		}
	}

	LogWithProvider(ctx, r.logger, slog.LevelWarn, r.name, "calendar load failed",
		"attempts", r.maxAttempts, "err", lastErr)
	return domain.Calendar{}, lastErr
}
