package recents

import "github.com/atomicstack/tmux-popup-glyphs/internal/glyph"

// Catalog answers lookups across every sibling category. Implementations
// return the first match in their iteration order and must be fully
// populated before any cache loads from them.
type Catalog interface {
	ItemByCode(code int) (glyph.Item, bool)
	ItemByOutput(text string) (glyph.Item, bool)
}

// Catalogs searches several catalogs in order.
type Catalogs []Catalog

func (cs Catalogs) ItemByCode(code int) (glyph.Item, bool) {
	for _, c := range cs {
		if c == nil {
			continue
		}
		if item, ok := c.ItemByCode(code); ok {
			return item, true
		}
	}
	return glyph.Item{}, false
}

func (cs Catalogs) ItemByOutput(text string) (glyph.Item, bool) {
	for _, c := range cs {
		if c == nil {
			continue
		}
		if item, ok := c.ItemByOutput(text); ok {
			return item, true
		}
	}
	return glyph.Item{}, false
}

// Resolve maps a persisted token back to a live item.
func Resolve(tok glyph.Token, catalog Catalog) (glyph.Item, bool) {
	if catalog == nil {
		return glyph.Item{}, false
	}
	if tok.IsCode() {
		return catalog.ItemByCode(tok.Code)
	}
	if tok.Text == "" {
		return glyph.Item{}, false
	}
	return catalog.ItemByOutput(tok.Text)
}
