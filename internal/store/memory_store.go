package store

import (
	"sync"

	"store-status-service/internal/domain"
)

// MemoryStore keeps a thread-safe copy of the active calendar in memory.
type MemoryStore struct {
	mu     sync.RWMutex
	cal    domain.Calendar
	loaded bool
}

// NewMemoryStore constructs an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Calendar returns the active calendar and whether one has been set.
func (s *MemoryStore) Calendar() (domain.Calendar, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.cal, s.loaded
}

// SetCalendar replaces the active calendar.
func (s *MemoryStore) SetCalendar(cal domain.Calendar) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cal = cal
	s.loaded = true
}

// Loaded reports whether a calendar has been set.
func (s *MemoryStore) Loaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.loaded
}
