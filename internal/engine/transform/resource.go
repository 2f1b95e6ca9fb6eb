package transform

import (
	"strconv"
	"sync"

	"golang.org/x/sync/singleflight"
)

// resourceCache holds lazily built values keyed by string.
// Concurrent requests for the same missing key share a single build.
type resourceCache[T any] struct {
	group singleflight.Group

	mu      sync.Mutex
	entries map[string]resourceEntry[T]
	stamps  map[string]uint64 // key -> version of its last invalidation
	cleared uint64
	version uint64
}

type resourceEntry[T any] struct {
	value       T
	fingerprint uint64
}

func newResourceCache[T any]() *resourceCache[T] {
	return &resourceCache[T]{
		entries: make(map[string]resourceEntry[T]),
		stamps:  make(map[string]uint64),
	}
}

// get returns the value stored under key if it was built for fingerprint.
// Otherwise it builds the value, sharing the build with concurrent callers, and stores it
// unless the key was invalidated while the build was running.
// hit reports whether the value was served from the cache.
func (c *resourceCache[T]) get(key string, fingerprint uint64, build func() (T, error)) (T, bool, error) {
	c.mu.Lock()
	if e, ok := c.entries[key]; ok && e.fingerprint == fingerprint {
		c.mu.Unlock()
		return e.value, true, nil
	}
	stamp, cleared := c.stamps[key], c.cleared
	c.mu.Unlock()

	// Builds started before an invalidation never share a flight with builds started after it.
	flight := key + "\x00" + strconv.FormatUint(stamp, 10) + "\x00" +
		strconv.FormatUint(cleared, 10) + "\x00" + strconv.FormatUint(fingerprint, 16)

	v, err, _ := c.group.Do(flight, func() (any, error) {
		value, err := build()
		if err != nil {
			return nil, err
		}

		c.mu.Lock()
		if c.stamps[key] == stamp && c.cleared == cleared {
			c.entries[key] = resourceEntry[T]{value: value, fingerprint: fingerprint}
		}
		c.mu.Unlock()
		return value, nil
	})
	if err != nil {
		var zero T
		return zero, false, err
	}

	value, _ := v.(T)
	return value, false, nil
}

// invalidate drops the value under key. Builds for key that are in flight finish for their
// current callers but are not stored.
func (c *resourceCache[T]) invalidate(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.version++
	c.stamps[key] = c.version
	delete(c.entries, key)
}

// clear drops every value.
func (c *resourceCache[T]) clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.cleared++
	c.entries = make(map[string]resourceEntry[T])
}

// len returns the number of stored values.
func (c *resourceCache[T]) len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
