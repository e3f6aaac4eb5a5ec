// Package sheetcache holds the short-lived fetched-CSV cache. Entries are
// whole-value replacements keyed by spreadsheet and tab; staleness is
// bounded by the TTL and freshness is owned here, never by HTTP caches.
package sheetcache

import (
	"sync"
	"time"
)

// Entry is one cached fetch result.
type Entry struct {
	Hash      string
	CSV       string
	FetchedAt time.Time
}

type key struct {
	spreadsheetID string
	gid           string
}

// Cache is a process-lifetime map. Entries are overwritten by the next
// successful fetch and never explicitly deleted.
type Cache struct {
	mu      sync.RWMutex
	ttl     time.Duration
	now     func() time.Time
	entries map[key]Entry
}

// New builds a cache with the given TTL. The clock is injectable for
// tests; nil means time.Now.
func New(ttl time.Duration, now func() time.Time) *Cache {
	if now == nil {
		now = time.Now
	}

	return &Cache{
		ttl:     ttl,
		now:     now,
		entries: make(map[key]Entry),
	}
}

// Get returns the entry for (spreadsheetID, gid) if it is still within the
// TTL. Stale entries report a miss but stay in place until overwritten.
func (c *Cache) Get(spreadsheetID, gid string) (Entry, bool) {
	c.mu.RLock()
	entry, ok := c.entries[key{spreadsheetID, gid}]
	c.mu.RUnlock()

	if !ok || c.now().Sub(entry.FetchedAt) > c.ttl {
		return Entry{}, false
	}

	return entry, true
}

// Put stores a fresh fetch result, stamping it with the cache clock.
// Last writer wins.
func (c *Cache) Put(spreadsheetID, gid, csv, hash string) Entry {
	entry := Entry{
		Hash:      hash,
		CSV:       csv,
		FetchedAt: c.now(),
	}

	c.mu.Lock()
	c.entries[key{spreadsheetID, gid}] = entry
	c.mu.Unlock()

	return entry
}
