package recents

import (
	"github.com/atomicstack/tmux-popup-glyphs/internal/glyph"
	"github.com/atomicstack/tmux-popup-glyphs/internal/layout"
)

// store is the ordered, deduplicated, capacity-bounded entry list. Index 0 is
// the most recently used entry. It does no locking of its own; Cache owns it.
type store struct {
	capacity int
	metrics  layout.Metrics
	entries  []glyph.Entry
}

func newStore(capacity int, metrics layout.Metrics) *store {
	if capacity < 1 {
		capacity = 1
	}
	return &store{
		capacity: capacity,
		metrics:  metrics,
		entries:  make([]glyph.Entry, 0, capacity+1),
	}
}

// add relocates or inserts item at the requested end, evicts from the back
// while over capacity and relays out every entry. It returns the evicted
// items and false when item is empty.
func (s *store) add(item glyph.Item, front bool) ([]glyph.Item, bool) {
	if item.IsZero() {
		return nil, false
	}
	s.remove(item)
	entry := glyph.Entry{Item: item}
	if front {
		s.entries = append(s.entries, glyph.Entry{})
		copy(s.entries[1:], s.entries)
		s.entries[0] = entry
	} else {
		s.entries = append(s.entries, entry)
	}
	var evicted []glyph.Item
	for len(s.entries) > s.capacity {
		last := len(s.entries) - 1
		evicted = append(evicted, s.entries[last].Item)
		s.entries[last] = glyph.Entry{}
		s.entries = s.entries[:last]
	}
	s.metrics.Apply(s.entries)
	return evicted, true
}

func (s *store) remove(item glyph.Item) {
	kept := s.entries[:0]
	for _, entry := range s.entries {
		if !entry.Item.Equal(item) {
			kept = append(kept, entry)
		}
	}
	for i := len(kept); i < len(s.entries); i++ {
		s.entries[i] = glyph.Entry{}
	}
	s.entries = kept
}

func (s *store) len() int {
	return len(s.entries)
}

func (s *store) items() []glyph.Item {
	return glyph.Items(s.entries)
}

func (s *store) snapshot() []glyph.Entry {
	dup := make([]glyph.Entry, len(s.entries))
	copy(dup, s.entries)
	return dup
}
