package testutil

import (
	"context"
	"sync"
	"sync/atomic"

	"store-status-service/internal/domain"
)

// GoodProvider returns the provided calendar with no error.
type GoodProvider struct {
	Calendar domain.Calendar
}

func (p GoodProvider) Load(ctx context.Context) (domain.Calendar, error) {
	_ = ctx
	return p.Calendar, nil
}

// ErrProvider always returns the provided error.
type ErrProvider struct {
	Err error
}

func (p ErrProvider) Load(ctx context.Context) (domain.Calendar, error) {
	_ = ctx
	return domain.Calendar{}, p.Err
}

// NotifyingProvider returns the calendar (or Err) and closes Notify on first load.
type NotifyingProvider struct {
	Calendar domain.Calendar
	Err      error
	Notify   chan struct{}
	Calls    atomic.Int32

	once sync.Once
}

func (p *NotifyingProvider) Load(ctx context.Context) (domain.Calendar, error) {
	_ = ctx
	p.Calls.Add(1)
	if p.Notify != nil {
		p.once.Do(func() { close(p.Notify) })
	}
	if p.Err != nil {
		return domain.Calendar{}, p.Err
	}
	return p.Calendar, nil
}
