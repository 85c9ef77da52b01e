package state

import "github.com/atomicstack/tmux-popup-glyphs/internal/glyph"

// Page holds the state of one category tab: its glyphs, the filter and the
// grid cursor with its row viewport.
type Page struct {
	ID           string
	Title        string
	Items        []glyph.Item
	Full         []glyph.Item
	Filter       string
	FilterCursor int
	Cursor       int
	LastCursor   int
	RowOffset    int
}

// NewPage constructs a Page for the provided glyphs.
func NewPage(id, title string, items []glyph.Item) *Page {
	p := &Page{
		ID:         id,
		Title:      title,
		LastCursor: -1,
	}
	p.UpdateItems(items)
	return p
}

// UpdateItems replaces the glyphs, keeping the filter and clamping the cursor.
func (p *Page) UpdateItems(items []glyph.Item) {
	p.Full = CloneItems(items)
	p.applyFilter()
}

// IndexOf returns the visible position of a glyph structurally equal to item.
func (p *Page) IndexOf(item glyph.Item) int {
	for i, candidate := range p.Items {
		if candidate.Equal(item) {
			return i
		}
	}
	return -1
}

// Selected returns the glyph under the cursor.
func (p *Page) Selected() (glyph.Item, bool) {
	if p.Cursor < 0 || p.Cursor >= len(p.Items) {
		return glyph.Item{}, false
	}
	return p.Items[p.Cursor], true
}

// CloneItems produces a shallow copy of the provided glyphs.
func CloneItems(items []glyph.Item) []glyph.Item {
	dup := make([]glyph.Item, len(items))
	copy(dup, items)
	return dup
}
