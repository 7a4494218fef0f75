package cache

import (
	"sync"

	"github.com/ionfield/apt3d/stream"
	"github.com/ionfield/apt3d/xlog"
)

// entry is one cached producer output plus a reference count of active
// Share handles.
type entry struct {
	bundle   stream.Bundle
	refCount int
}

// Cache holds one entry per (producer, Key) pair. The zero value is not
// usable; construct with New.
type Cache struct {
	mu       sync.RWMutex
	entries  map[string]map[Key]*entry
	log      xlog.Logger
}

// New returns an empty Cache.
func New() *Cache {
	return &Cache{
		entries: make(map[string]map[Key]*entry),
		log:     xlog.Named("cache"),
	}
}

// Get returns the bundle cached for producer/key without affecting its
// reference count.
func (c *Cache) Get(producer string, key Key) (stream.Bundle, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	e, ok := c.lookup(producer, key)
	if !ok {
		return stream.Bundle{}, false
	}
	return e.bundle, true
}

// Put stores bundle for producer/key, replacing any existing entry and
// resetting its reference count to zero. A caller whose producer
// errored must NOT call Put, leaving the previous entry (if any)
// intact.
func (c *Cache) Put(producer string, key Key, bundle stream.Bundle) {
	c.mu.Lock()
	defer c.mu.Unlock()
	byKey, ok := c.entries[producer]
	if !ok {
		byKey = make(map[Key]*entry)
		c.entries[producer] = byKey
	}
	byKey[key] = &entry{bundle: bundle}
}

// Share returns a read-only handle to the cached bundle for
// producer/key, incrementing its reference count, and leaves the entry
// in the cache. Callers must treat the returned Bundle as immutable.
func (c *Cache) Share(producer string, key Key) (stream.Bundle, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.lookup(producer, key)
	if !ok {
		return stream.Bundle{}, false
	}
	e.refCount++
	return e.bundle, true
}

// Take removes the entry for producer/key from the cache and returns
// its bundle, transferring ownership to the caller regardless of any
// outstanding Share reference count.
func (c *Cache) Take(producer string, key Key) (stream.Bundle, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.lookup(producer, key)
	if !ok {
		return stream.Bundle{}, ErrMiss
	}
	delete(c.entries[producer], key)
	return e.bundle, nil
}

// Invalidate removes the entry for producer/key, logging the
// invalidation.
func (c *Cache) Invalidate(producer string, key Key) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.lookup(producer, key); !ok {
		return
	}
	delete(c.entries[producer], key)
	c.log.Infow("cache entry invalidated", "producer", producer, "key", uint64(key))
}

// Purge removes every cached entry for producer.
func (c *Cache) Purge(producer string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := len(c.entries[producer])
	delete(c.entries, producer)
	if n > 0 {
		c.log.Infow("cache purged", "producer", producer, "entries", n)
	}
}

// PurgeAll removes every cached entry for every producer.
func (c *Cache) PurgeAll() {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := 0
	for _, byKey := range c.entries {
		n += len(byKey)
	}
	c.entries = make(map[string]map[Key]*entry)
	if n > 0 {
		c.log.Infow("cache purged", "producer", "*", "entries", n)
	}
}

// lookup must be called with c.mu held (read or write).
func (c *Cache) lookup(producer string, key Key) (*entry, bool) {
	byKey, ok := c.entries[producer]
	if !ok {
		return nil, false
	}
	e, ok := byKey[key]
	return e, ok
}
