package sdk

import (
	"context"
	"sync"
)

// TagType is a coarse resource category attached to cached queries and to
// mutations. A mutation's invalidation set is matched against the tags of
// every live cache entry to decide what must refetch.
type TagType string

const (
	TagUser         TagType = "User"
	TagMenu         TagType = "Menu"
	TagInventory    TagType = "Inventory"
	TagOrder        TagType = "Order"
	TagStaff        TagType = "Staff"
	TagSalary       TagType = "Salary"
	TagSales        TagType = "Sales"
	TagAnalytics    TagType = "Analytics"
	TagOrganization TagType = "Organization"
)

// Tag labels a cache entry or a mutation. A zero ID means the tag covers the
// whole resource type; a non-empty ID narrows it to one resource.
type Tag struct {
	Type TagType
	ID   string
}

// TypeTag builds a type-level tag.
func TypeTag(t TagType) Tag { return Tag{Type: t} }

// IDTag builds a detail tag for a single resource.
func IDTag(t TagType, id string) Tag { return Tag{Type: t, ID: id} }

// invalidates reports whether a mutation tag hits an entry tag. A type-level
// mutation tag hits every entry of that type, detail-tagged or not. A detail
// mutation tag hits only the exact same detail tag.
func (t Tag) invalidates(entryTag Tag) bool {
	if t.Type != entryTag.Type {
		return false
	}
	return t.ID == "" || t.ID == entryTag.ID
}

// FetchFunc produces a fresh value for a cache entry.
type FetchFunc func(context.Context) (any, error)

// UpdateFunc receives refreshed values (or the refetch error) on a watch.
type UpdateFunc func(value any, err error)

type entry struct {
	key   string
	tags  []Tag
	value any
	valid bool
	stale bool
	fetch FetchFunc
	subs  map[*Watch]struct{}
}

func (e *entry) hitBy(tags []Tag) bool {
	for _, mt := range tags {
		for _, et := range e.tags {
			if mt.invalidates(et) {
				return true
			}
		}
	}
	return false
}

// Cache is the tagged response cache shared by all SDK operations. Entries
// are keyed by (endpoint, serialized arguments). Queries serve cached values
// until a mutation invalidates an overlapping tag; entries with active
// watches refetch, entries without are evicted.
type Cache struct {
	mu      sync.Mutex
	entries map[string]*entry
}

func NewCache() *Cache {
	return &Cache{entries: make(map[string]*entry)}
}

// Query returns the cached value for key, fetching when the entry is absent
// or stale. A query against a stale entry never observes the pre-mutation
// value. Concurrent fetches for the same key may race; last write wins.
func (c *Cache) Query(ctx context.Context, key string, tags []Tag, fetch FetchFunc) (any, error) {
	c.mu.Lock()
	e, ok := c.entries[key]
	if ok && e.valid && !e.stale {
		v := e.value
		c.mu.Unlock()
		return v, nil
	}
	if !ok {
		e = &entry{key: key, tags: tags, subs: make(map[*Watch]struct{})}
		c.entries[key] = e
	}
	e.tags = tags
	e.fetch = fetch
	c.mu.Unlock()

	// Fetch outside the lock; the network call must not block other queries.
	v, err := fetch(ctx)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	if cur, ok := c.entries[key]; ok {
		cur.value = v
		cur.valid = true
		cur.stale = false
	}
	c.mu.Unlock()
	return v, nil
}

// Mutate runs op, and on success synchronously marks every entry whose tag
// set intersects invalidates as stale. Watched entries refetch in the
// background and notify their watches; unwatched entries are evicted.
// The op error is returned unchanged; on failure nothing is invalidated.
func (c *Cache) Mutate(ctx context.Context, invalidates []Tag, op func(context.Context) error) error {
	if err := op(ctx); err != nil {
		return err
	}
	c.Invalidate(ctx, invalidates)
	return nil
}

// Invalidate applies a tag invalidation set immediately. Exposed for flows
// that need to flush without a server round trip.
func (c *Cache) Invalidate(ctx context.Context, tags []Tag) {
	c.mu.Lock()
	var refetch []*entry
	for key, e := range c.entries {
		if !e.hitBy(tags) {
			continue
		}
		if len(e.subs) == 0 {
			delete(c.entries, key)
			continue
		}
		e.stale = true
		refetch = append(refetch, e)
	}
	c.mu.Unlock()

	for _, e := range refetch {
		go c.refetch(ctx, e)
	}
}

func (c *Cache) refetch(ctx context.Context, e *entry) {
	c.mu.Lock()
	fetch := e.fetch
	c.mu.Unlock()
	if fetch == nil {
		return
	}

	v, err := fetch(ctx)

	c.mu.Lock()
	if err == nil {
		e.value = v
		e.valid = true
		e.stale = false
	}
	watchers := make([]*Watch, 0, len(e.subs))
	for w := range e.subs {
		watchers = append(watchers, w)
	}
	c.mu.Unlock()

	for _, w := range watchers {
		w.onUpdate(v, err)
	}
}

// Reset drops every entry. Used when the tenant context changes and no
// cached value can be trusted.
func (c *Cache) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]*entry)
}

// Len reports the number of live entries.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Watch is a standing subscription to one cache key. While at least one
// watch is open the entry is retained and refetched on invalidation; closing
// the last watch makes the entry eviction-eligible again.
type Watch struct {
	c        *Cache
	key      string
	tags     []Tag
	fetch    FetchFunc
	onUpdate UpdateFunc

	mu      sync.Mutex
	started bool
	closed  bool
}

// WatchOption configures watch construction.
type WatchOption func(*watchOptions)

type watchOptions struct {
	paused bool
}

// Paused constructs the watch in skip mode: no request is issued and no
// cache entry is created until Start or Refetch is called explicitly.
func Paused() WatchOption {
	return func(o *watchOptions) { o.paused = true }
}

// NewWatch registers a subscription on key. Unless constructed Paused, the
// watch issues its initial query immediately.
func (c *Cache) NewWatch(ctx context.Context, key string, tags []Tag, fetch FetchFunc, onUpdate UpdateFunc, opts ...WatchOption) (*Watch, error) {
	var o watchOptions
	for _, opt := range opts {
		opt(&o)
	}
	w := &Watch{c: c, key: key, tags: tags, fetch: fetch, onUpdate: onUpdate}
	if o.paused {
		return w, nil
	}
	if err := w.Start(ctx); err != nil {
		return nil, err
	}
	return w, nil
}

// Start issues the initial query and attaches the subscription. Calling
// Start on a started or closed watch is a no-op.
func (w *Watch) Start(ctx context.Context) error {
	w.mu.Lock()
	if w.started || w.closed {
		w.mu.Unlock()
		return nil
	}
	w.started = true
	w.mu.Unlock()

	// Subscribe before the initial fetch. An invalidation racing the fetch
	// must see a live subscriber; otherwise it evicts the zero-subscriber
	// entry and the watch is orphaned, never notified again.
	w.c.attach(w)

	v, err := w.c.Query(ctx, w.key, w.tags, w.fetch)
	if err != nil {
		w.c.detach(w)
		w.mu.Lock()
		w.started = false
		w.mu.Unlock()
		return err
	}
	w.onUpdate(v, nil)
	return nil
}

// Refetch forces a fresh fetch regardless of entry freshness, starting the
// watch first when it is still paused.
func (w *Watch) Refetch(ctx context.Context) error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return nil
	}
	if !w.started {
		w.mu.Unlock()
		return w.Start(ctx)
	}
	w.mu.Unlock()

	w.c.mu.Lock()
	if e, ok := w.c.entries[w.key]; ok {
		e.stale = true
	}
	w.c.mu.Unlock()

	_, err := w.c.Query(ctx, w.key, w.tags, w.fetch)
	return err
}

// Close drops the subscription. The in-flight refetch, if any, is not
// aborted; its result is simply no longer delivered here.
func (w *Watch) Close() {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return
	}
	w.closed = true
	w.mu.Unlock()
	w.c.detach(w)
}

// attach registers the subscription, creating a placeholder entry when the
// key has never been queried so the watch is visible to invalidation from
// the moment it starts.
func (c *Cache) attach(w *Watch) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.entries[w.key]
	if !ok {
		e = &entry{key: w.key, tags: w.tags, fetch: w.fetch, subs: make(map[*Watch]struct{})}
		c.entries[w.key] = e
	}
	e.subs[w] = struct{}{}
}

func (c *Cache) detach(w *Watch) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if e, ok := c.entries[w.key]; ok {
		delete(e.subs, w)
	}
}
