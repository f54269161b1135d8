// Package cache holds the in-memory query cache and the invalidation rules
// that keep it coherent after mutations. The store is a process-wide
// singleton with application lifetime; only the service layer writes to it.
package cache

import (
	"strconv"
	"strings"
	"sync"
)

// Key identifies one cached query result.
type Key string

const (
	KeyEvents          Key = "events"
	KeyMyBookings      Key = "bookings/my"
	KeyMyFeedback      Key = "feedback/my"
	KeyContactMessages Key = "contactmessages"
	KeyUsers           Key = "users"
)

func EventKey(id string) Key {
	return Key("events/" + id)
}

// UpcomingEventsKey scopes the upcoming-events read by its count parameter,
// so different counts cache independently and invalidate together.
func UpcomingEventsKey(count int) Key {
	return Key("events/upcoming/" + strconv.Itoa(count))
}

func EventFeedbackKey(eventID string) Key {
	return Key("feedback/event/" + eventID)
}

type entry struct {
	value       any
	stale       bool
	staleMarked int
}

type Store struct {
	mu      sync.RWMutex
	entries map[Key]entry
}

func NewStore() *Store {
	return &Store{entries: make(map[Key]entry)}
}

// Get returns the cached value for key, or false when the key is absent or
// stale. Stale entries keep their value until the next Set so the staleness
// transition stays observable.
func (s *Store) Get(key Key) (any, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.entries[key]
	if !ok || e.stale {
		return nil, false
	}

	return e.value, true
}

func (s *Store) Set(key Key, value any) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[key] = entry{value: value}
}

// Invalidate marks the given keys stale. Marking an already-stale or absent
// key is a no-op, so one mutation stales each affected read exactly once.
func (s *Store) Invalidate(keys ...Key) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, key := range keys {
		e, ok := s.entries[key]
		if !ok || e.stale {
			continue
		}

		e.stale = true
		e.staleMarked++
		s.entries[key] = e
	}
}

// InvalidatePrefix marks every entry under prefix stale, with the same
// exactly-once semantics as Invalidate. Parameterized reads (one entry per
// parameter value) are staled as a family this way.
func (s *Store) InvalidatePrefix(prefix Key) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for key, e := range s.entries {
		if e.stale || !strings.HasPrefix(string(key), string(prefix)) {
			continue
		}

		e.stale = true
		e.staleMarked++
		s.entries[key] = e
	}
}

// Stale reports whether key holds an entry that has been invalidated.
func (s *Store) Stale(key Key) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.entries[key]

	return ok && e.stale
}

// StaleMarks reports how many times key transitioned fresh to stale since it
// was last set.
func (s *Store) StaleMarks(key Key) int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.entries[key].staleMarked
}

// GetAs is Get with the type assertion folded in.
func GetAs[T any](s *Store, key Key) (T, bool) {
	var zero T

	v, ok := s.Get(key)
	if !ok {
		return zero, false
	}

	typed, ok := v.(T)
	if !ok {
		return zero, false
	}

	return typed, true
}
