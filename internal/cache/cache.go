package cache

import (
	"sync"
	"time"

	"github.com/deckhaus/storesync/internal/remote"
)

// Entry is one cached page set with its expiry window.
type Entry struct {
	Payload   []remote.RemoteRecord
	FetchedAt time.Time
	TTL       time.Duration
}

// Stats reports cache effectiveness counters.
type Stats struct {
	Hits    uint64 `json:"hits"`
	Misses  uint64 `json:"misses"`
	Entries int    `json:"entries"`
}

// Store is an in-process TTL cache keyed by entity kind (optionally
// parameterized by filter). Expiry is checked lazily on Get; there is no
// background eviction. The clock is injected so tests can control time.
type Store struct {
	mu      sync.RWMutex
	entries map[string]Entry
	now     func() time.Time
	hits    uint64
	misses  uint64
}

// New creates a cache using the wall clock.
func New() *Store {
	return NewWithClock(time.Now)
}

// NewWithClock creates a cache with an injected time source.
func NewWithClock(now func() time.Time) *Store {
	return &Store{
		entries: make(map[string]Entry),
		now:     now,
	}
}

// Get returns the entry for key if it is still within its TTL. An expired
// entry counts as a miss and is dropped.
func (s *Store) Get(key string) (*Entry, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.entries[key]
	if !ok {
		s.misses++
		return nil, false
	}

	if s.now().Sub(entry.FetchedAt) >= entry.TTL {
		delete(s.entries, key)
		s.misses++
		return nil, false
	}

	s.hits++
	return &entry, true
}

// Set stores a payload under key with the given TTL, replacing any previous
// entry.
func (s *Store) Set(key string, payload []remote.RemoteRecord, ttl time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[key] = Entry{
		Payload:   payload,
		FetchedAt: s.now(),
		TTL:       ttl,
	}
}

// Invalidate drops the entry for key, if any.
func (s *Store) Invalidate(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, key)
}

// Stats returns a snapshot of the hit/miss counters and live entry count.
func (s *Store) Stats() Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Stats{
		Hits:    s.hits,
		Misses:  s.misses,
		Entries: len(s.entries),
	}
}
