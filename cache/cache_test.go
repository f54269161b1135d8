package cache

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreGetSet(t *testing.T) {
	store := NewStore()

	_, ok := store.Get(KeyEvents)
	assert.False(t, ok, "an empty store has no entries")

	store.Set(KeyEvents, []string{"e1", "e2"})

	value, ok := store.Get(KeyEvents)
	require.True(t, ok)
	assert.Equal(t, []string{"e1", "e2"}, value)
}

func TestStoreInvalidate(t *testing.T) {
	store := NewStore()
	store.Set(KeyEvents, "cached")
	store.Set(KeyUsers, "cached")

	store.Invalidate(KeyEvents)

	_, ok := store.Get(KeyEvents)
	assert.False(t, ok, "a stale entry must not serve reads")
	assert.True(t, store.Stale(KeyEvents))

	_, ok = store.Get(KeyUsers)
	assert.True(t, ok, "unrelated keys stay fresh")
}

func TestStoreInvalidateIsIdempotent(t *testing.T) {
	store := NewStore()
	store.Set(KeyEvents, "cached")

	store.Invalidate(KeyEvents)
	store.Invalidate(KeyEvents)
	store.Invalidate(KeyEvents)

	assert.Equal(t, 1, store.StaleMarks(KeyEvents), "a key goes stale exactly once")

	// A fresh Set resets the cycle.
	store.Set(KeyEvents, "refetched")
	assert.False(t, store.Stale(KeyEvents))
	store.Invalidate(KeyEvents)
	assert.Equal(t, 1, store.StaleMarks(KeyEvents))
}

func TestStoreInvalidatePrefix(t *testing.T) {
	store := NewStore()
	store.Set(UpcomingEventsKey(3), "cached")
	store.Set(UpcomingEventsKey(10), "cached")
	store.Set(KeyEvents, "cached")

	store.InvalidatePrefix("events/upcoming/")

	assert.True(t, store.Stale(UpcomingEventsKey(3)))
	assert.True(t, store.Stale(UpcomingEventsKey(10)))
	_, ok := store.Get(KeyEvents)
	assert.True(t, ok, "keys outside the prefix stay fresh")

	// Same exactly-once semantics as Invalidate.
	store.InvalidatePrefix("events/upcoming/")
	assert.Equal(t, 1, store.StaleMarks(UpcomingEventsKey(3)))
	assert.Equal(t, 1, store.StaleMarks(UpcomingEventsKey(10)))
}

func TestStoreInvalidateAbsentKeyIsNoOp(t *testing.T) {
	store := NewStore()

	store.Invalidate(KeyEvents)

	assert.False(t, store.Stale(KeyEvents))
	assert.Zero(t, store.StaleMarks(KeyEvents))
}

func TestGetAs(t *testing.T) {
	store := NewStore()
	store.Set(KeyEvents, []int{1, 2, 3})

	values, ok := GetAs[[]int](store, KeyEvents)
	require.True(t, ok)
	assert.Equal(t, []int{1, 2, 3}, values)

	_, ok = GetAs[string](store, KeyEvents)
	assert.False(t, ok, "a mismatched type reads as a miss")

	_, ok = GetAs[[]int](store, KeyUsers)
	assert.False(t, ok)
}

func TestStoreConcurrentAccess(t *testing.T) {
	store := NewStore()
	var wg sync.WaitGroup

	for i := 0; i < 50; i++ {
		wg.Add(3)
		go func() {
			defer wg.Done()
			store.Set(KeyEvents, "value")
		}()
		go func() {
			defer wg.Done()
			store.Get(KeyEvents)
		}()
		go func() {
			defer wg.Done()
			store.Invalidate(KeyEvents)
		}()
	}

	wg.Wait()
}
