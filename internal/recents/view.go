package recents

import "github.com/atomicstack/tmux-popup-glyphs/internal/glyph"

// View is a read-only snapshot of a cache's entries, front first. A view is
// never modified after it is built; mutations of the cache produce a new one.
type View struct {
	entries []glyph.Entry
}

func newView(entries []glyph.Entry) *View {
	return &View{entries: entries}
}

// Len returns the number of entries in the view.
func (v *View) Len() int {
	if v == nil {
		return 0
	}
	return len(v.entries)
}

// At returns the entry at index i.
func (v *View) At(i int) glyph.Entry {
	return v.entries[i]
}

// Entries returns a copy of the entries.
func (v *View) Entries() []glyph.Entry {
	if v == nil {
		return nil
	}
	dup := make([]glyph.Entry, len(v.entries))
	copy(dup, v.entries)
	return dup
}

// Items returns the items in order.
func (v *View) Items() []glyph.Item {
	if v == nil {
		return nil
	}
	return glyph.Items(v.entries)
}

// IndexOf returns the position of an entry structurally equal to item, or -1.
func (v *View) IndexOf(item glyph.Item) int {
	if v == nil {
		return -1
	}
	for i, entry := range v.entries {
		if entry.Item.Equal(item) {
			return i
		}
	}
	return -1
}
