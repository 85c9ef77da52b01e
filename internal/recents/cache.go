// Package recents keeps the most-recently-used glyphs of a picker category.
//
// A Cache owns an ordered, deduplicated entry list bounded by a fixed
// capacity, a queue of pending inserts and a memoized read-only view. Every
// mutation recomputes the grid cell of every entry and drops the memoized
// view. Persistent caches write their token encoding to a preference store
// after interactive inserts; rebuilds through AddBack and Load never write.
//
// All state-touching methods take a single mutex, including the preference
// write, so callers never observe a half-applied mutation.
package recents

import (
	"errors"
	"fmt"
	"sync"

	"github.com/atomicstack/tmux-popup-glyphs/internal/glyph"
	"github.com/atomicstack/tmux-popup-glyphs/internal/layout"
	"github.com/atomicstack/tmux-popup-glyphs/internal/logging"
	"github.com/atomicstack/tmux-popup-glyphs/internal/logging/events"
	"github.com/atomicstack/tmux-popup-glyphs/internal/prefs"
)

// State describes how full a cache is.
type State int

const (
	StateEmpty State = iota
	StatePartial
	StateFull
)

func (s State) String() string {
	switch s {
	case StateEmpty:
		return "empty"
	case StatePartial:
		return "partial"
	case StateFull:
		return "full"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Prefs is the key-value store a persistent cache reads and writes.
type Prefs interface {
	Read(key string) (string, error)
	Write(key, value string) error
}

// Options configures a Cache. Capacity and Metrics are fixed for the
// lifetime of the cache.
type Options struct {
	Name       string
	Capacity   int
	Metrics    layout.Metrics
	Persistent bool
	Key        string
	Prefs      Prefs
}

// Cache is the coordinator used by the UI layer.
type Cache struct {
	name       string
	key        string
	persistent bool
	prefs      Prefs

	mu      sync.Mutex
	store   *store
	pending []glyph.Item
	view    *View
}

// New constructs an empty cache.
func New(opts Options) *Cache {
	key := opts.Key
	if key == "" {
		key = opts.Name
	}
	return &Cache{
		name:       opts.Name,
		key:        key,
		persistent: opts.Persistent,
		prefs:      opts.Prefs,
		store:      newStore(opts.Capacity, opts.Metrics),
	}
}

// Name returns the cache name used in trace output.
func (c *Cache) Name() string {
	return c.name
}

// Capacity returns the fixed entry limit.
func (c *Cache) Capacity() int {
	return c.store.capacity
}

// Metrics returns the layout metrics the cache was built with.
func (c *Cache) Metrics() layout.Metrics {
	return c.store.metrics
}

// AddFront records item as the most recently used entry and persists the
// cache when it is persistent. Empty items are ignored.
func (c *Cache) AddFront(item glyph.Item) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.addLocked(item, true) {
		c.persistLocked()
	}
}

// AddBack appends item as the least recently used entry. It never persists.
func (c *Cache) AddBack(item glyph.Item) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.addLocked(item, false)
}

// AddPending queues item for the next FlushPending without touching the
// entries, their layout or the preference store.
func (c *Cache) AddPending(item glyph.Item) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pending = append(c.pending, item)
	events.Recents.Pending(c.name, len(c.pending))
}

// PendingLen returns the number of queued inserts.
func (c *Cache) PendingLen() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.pending)
}

// FlushPending drains the pending queue in FIFO order through AddFront
// semantics and then persists once.
func (c *Cache) FlushPending() {
	c.mu.Lock()
	defer c.mu.Unlock()
	drained := len(c.pending)
	for i, item := range c.pending {
		c.addLocked(item, true)
		c.pending[i] = glyph.Item{}
	}
	c.pending = c.pending[:0]
	events.Recents.Flush(c.name, drained)
	c.persistLocked()
}

// View returns the memoized snapshot of the current entries, rebuilding it
// when a mutation invalidated it.
func (c *Cache) View() *View {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.viewLocked()
}

// Nearest returns the entries near a point in layout units. When an entry's
// cell contains the point it is returned first, followed by the remaining
// entries in order; otherwise the full view is returned. No spatial index is
// built, so callers should treat the order past the first entry as
// unspecified proximity.
func (c *Cache) Nearest(x, y int) []glyph.Entry {
	c.mu.Lock()
	defer c.mu.Unlock()
	view := c.viewLocked()
	entries := view.Entries()
	for i, entry := range entries {
		if !entry.Rect.Contains(x, y) {
			continue
		}
		if i == 0 {
			return entries
		}
		out := make([]glyph.Entry, 0, len(entries))
		out = append(out, entry)
		out = append(out, entries[:i]...)
		out = append(out, entries[i+1:]...)
		return out
	}
	return entries
}

// Len returns the number of entries.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.store.len()
}

// State reports whether the cache is empty, partially filled or full.
func (c *Cache) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	switch n := c.store.len(); {
	case n == 0:
		return StateEmpty
	case n >= c.store.capacity:
		return StateFull
	default:
		return StatePartial
	}
}

// Encoded returns the current token encoding without writing it anywhere.
func (c *Cache) Encoded() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return Encode(c.store.items())
}

// Load reads the persisted encoding from the preference store and restores
// it through LoadEncoded. A missing key or a failing read restores nothing.
// Every category of catalog must be populated before Load is called.
func (c *Cache) Load(catalog Catalog) int {
	if c.prefs == nil {
		return 0
	}
	encoded, err := c.prefs.Read(c.key)
	if err != nil {
		if !errors.Is(err, prefs.ErrNotFound) {
			logging.Error(fmt.Errorf("load %s: %w", c.name, err))
		}
		encoded = ""
	}
	return c.LoadEncoded(encoded, catalog)
}

// LoadEncoded decodes encoded, resolves every token against catalog and
// appends the resolved items in decoded order. Unresolvable tokens are
// dropped. It returns how many tokens resolved.
func (c *Cache) LoadEncoded(encoded string, catalog Catalog) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	tokens := decode(c.name, encoded)
	restored := 0
	for _, tok := range tokens {
		item, ok := Resolve(tok, catalog)
		if !ok {
			events.Recents.DropToken(c.name, tok.String(), "unresolved")
			continue
		}
		if c.addLocked(item, false) {
			restored++
		}
	}
	events.Recents.Load(c.name, len(tokens), restored)
	return restored
}

func (c *Cache) addLocked(item glyph.Item, front bool) bool {
	evicted, ok := c.store.add(item, front)
	if !ok {
		return false
	}
	c.view = nil
	for _, gone := range evicted {
		events.Recents.Evict(c.name, gone.Code, gone.Label)
	}
	events.Recents.Add(c.name, item.Code, item.Label, front, c.store.len())
	return true
}

func (c *Cache) viewLocked() *View {
	if c.view == nil {
		c.view = newView(c.store.snapshot())
	}
	return c.view
}

func (c *Cache) persistLocked() {
	if !c.persistent || c.prefs == nil {
		return
	}
	encoded := Encode(c.store.items())
	if err := c.prefs.Write(c.key, encoded); err != nil {
		events.Recents.PersistError(c.name, err)
		logging.Error(fmt.Errorf("persist %s: %w", c.name, err))
		return
	}
	events.Recents.Persist(c.name, c.key, c.store.len())
}
