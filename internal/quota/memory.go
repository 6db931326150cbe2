package quota

import (
	"sync"
	"time"
)

type entry struct {
	windowStart time.Time
	count       int
}

// MemoryStore is an in-process fixed-window counter keyed by client identity.
// It implements port.QuotaStore. Counters expire lazily: a key's window
// restarts on the first increment after expiry.
type MemoryStore struct {
	mu      sync.Mutex
	entries map[string]*entry
	now     func() time.Time
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		entries: make(map[string]*entry),
		now:     time.Now,
	}
}

// Increment advances the counter for key within its current window and
// returns the new count. A fresh or expired window restarts at 1.
func (s *MemoryStore) Increment(key string, window time.Duration) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	e, ok := s.entries[key]
	if !ok || now.Sub(e.windowStart) >= window {
		e = &entry{windowStart: now}
		s.entries[key] = e
	}
	e.count++
	return e.count
}

// Count returns the counter for key, or 0 if the key has never been seen.
// Expiry is applied on Increment, so Count may report a stale window's
// total until the next upload from that key.
func (s *MemoryStore) Count(key string) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	if e, ok := s.entries[key]; ok {
		return e.count
	}
	return 0
}
