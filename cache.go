package qss

import (
	"container/list"
	"sync"

	"github.com/npillmayer/qss/style"
	"github.com/npillmayer/qss/widget"
)

// cacheKey identifies one memoized resolution: widget identity, a
// frozen snapshot of its active pseudo-states, and the sub-control
// context. A state transition changes the snapshot and thus misses the
// cache, so a stale entry can never be served for a fresh state.
type cacheKey struct {
	serial     uint32
	states     widget.StateSet
	subControl string
}

type cacheEntry struct {
	key  cacheKey
	w    *widget.Widget
	pmap *style.PropertyMap
	lru  *list.Element // nil when the cache is unbounded
}

// styleCache memoizes resolved property maps. All operations take the
// cache mutex, so concurrent get/invalidate from background goroutines
// is safe; the resolver itself is pure and stays lock-free.
type styleCache struct {
	mu       sync.Mutex
	limit    int // max entries; 0 = unbounded
	entries  map[cacheKey]*cacheEntry
	byWidget map[uint32][]cacheKey
	lru      *list.List // front = most recently used; nil when unbounded
}

func newStyleCache(limit int) *styleCache {
	c := &styleCache{
		limit:    limit,
		entries:  make(map[cacheKey]*cacheEntry),
		byWidget: make(map[uint32][]cacheKey),
	}
	if limit > 0 {
		c.lru = list.New()
	}
	return c
}

func (c *styleCache) keyFor(w *widget.Widget, subControl string) cacheKey {
	return cacheKey{
		serial:     w.Serial(),
		states:     w.States(),
		subControl: subControl,
	}
}

func (c *styleCache) get(w *widget.Widget, subControl string) (*style.PropertyMap, bool) {
	key := c.keyFor(w, subControl)
	c.mu.Lock()
	defer c.mu.Unlock()
	entry, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	if c.lru != nil {
		c.lru.MoveToFront(entry.lru)
	}
	return entry.pmap, true
}

func (c *styleCache) put(w *widget.Widget, subControl string, pmap *style.PropertyMap) {
	key := c.keyFor(w, subControl)
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.entries[key]; ok {
		c.entries[key].pmap = pmap
		return
	}
	entry := &cacheEntry{key: key, w: w, pmap: pmap}
	c.entries[key] = entry
	c.byWidget[key.serial] = append(c.byWidget[key.serial], key)
	if c.lru != nil {
		entry.lru = c.lru.PushFront(entry)
		for len(c.entries) > c.limit {
			c.evictOldest()
		}
	}
}

// evictOldest removes the least-recently-used entry. Caller holds the mutex.
func (c *styleCache) evictOldest() {
	back := c.lru.Back()
	if back == nil {
		return
	}
	entry := back.Value.(*cacheEntry)
	c.lru.Remove(back)
	delete(c.entries, entry.key)
	keys := c.byWidget[entry.key.serial]
	for i, k := range keys {
		if k == entry.key {
			c.byWidget[entry.key.serial] = append(keys[:i], keys[i+1:]...)
			break
		}
	}
	if len(c.byWidget[entry.key.serial]) == 0 {
		delete(c.byWidget, entry.key.serial)
	}
}

// invalidate drops all entries of one widget, whatever state snapshot
// or sub-control they were resolved for.
func (c *styleCache) invalidate(w *widget.Widget) {
	serial := w.Serial()
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, key := range c.byWidget[serial] {
		if entry, ok := c.entries[key]; ok {
			if c.lru != nil {
				c.lru.Remove(entry.lru)
			}
			delete(c.entries, key)
		}
	}
	delete(c.byWidget, serial)
}

// invalidateDescendantsOf drops entries of all cached widgets having anc
// in their parent chain.
func (c *styleCache) invalidateDescendantsOf(anc *widget.Widget) {
	c.mu.Lock()
	defer c.mu.Unlock()
	var stale []uint32
	for _, entry := range c.entries {
		if entry.w.HasAncestor(anc) {
			stale = append(stale, entry.key.serial)
		}
	}
	for _, serial := range stale {
		for _, key := range c.byWidget[serial] {
			if entry, ok := c.entries[key]; ok {
				if c.lru != nil {
					c.lru.Remove(entry.lru)
				}
				delete(c.entries, key)
			}
		}
		delete(c.byWidget, serial)
	}
}

func (c *styleCache) invalidateAll() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[cacheKey]*cacheEntry)
	c.byWidget = make(map[uint32][]cacheKey)
	if c.lru != nil {
		c.lru = list.New()
	}
}
