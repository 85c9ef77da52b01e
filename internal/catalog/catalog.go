// Package catalog holds the glyph categories shown by the picker. A catalog
// is immutable once built, so caches may resolve persisted tokens against it
// from any goroutine.
package catalog

import (
	"errors"
	"fmt"
	"strings"

	"github.com/atomicstack/tmux-popup-glyphs/internal/glyph"
	"github.com/atomicstack/tmux-popup-glyphs/internal/layout"
)

// RecentsID is reserved for the recently-used category maintained by the
// recents cache. Catalogs never contain it.
const RecentsID = "recents"

// Default cell geometry in terminal cells.
const (
	DefaultCellWidth  = 4
	DefaultCellHeight = 1
)

var ErrInvalidCatalog = errors.New("invalid catalog")

// Category is a titled, ordered group of glyphs.
type Category struct {
	ID    string
	Title string
	Items []glyph.Item
}

// Catalog is an ordered list of categories plus the template cell geometry.
type Catalog struct {
	categories []Category
	cellWidth  int
	cellHeight int
}

// New validates and copies categories into a catalog.
func New(categories []Category, cellWidth, cellHeight int) (*Catalog, error) {
	if cellWidth < 1 || cellHeight < 1 {
		return nil, fmt.Errorf("%w: cell size %dx%d", ErrInvalidCatalog, cellWidth, cellHeight)
	}
	seen := make(map[string]struct{}, len(categories))
	out := make([]Category, 0, len(categories))
	for _, cat := range categories {
		id := strings.TrimSpace(cat.ID)
		switch {
		case id == "":
			return nil, fmt.Errorf("%w: category without id", ErrInvalidCatalog)
		case id == RecentsID:
			return nil, fmt.Errorf("%w: category id %q is reserved", ErrInvalidCatalog, RecentsID)
		}
		if _, dup := seen[id]; dup {
			return nil, fmt.Errorf("%w: duplicate category %q", ErrInvalidCatalog, id)
		}
		seen[id] = struct{}{}
		title := cat.Title
		if title == "" {
			title = id
		}
		items := make([]glyph.Item, 0, len(cat.Items))
		for _, item := range cat.Items {
			if item.Text() == "" {
				return nil, fmt.Errorf("%w: category %q has a glyph with nothing to type (%q)", ErrInvalidCatalog, id, item.Label)
			}
			items = append(items, item)
		}
		out = append(out, Category{ID: id, Title: title, Items: items})
	}
	return &Catalog{categories: out, cellWidth: cellWidth, cellHeight: cellHeight}, nil
}

// Categories returns the categories in display order.
func (c *Catalog) Categories() []Category {
	out := make([]Category, len(c.categories))
	copy(out, c.categories)
	return out
}

// Category looks up a category by id.
func (c *Catalog) Category(id string) (Category, bool) {
	for _, cat := range c.categories {
		if cat.ID == id {
			return cat, true
		}
	}
	return Category{}, false
}

// Len returns the total number of glyphs across categories.
func (c *Catalog) Len() int {
	n := 0
	for _, cat := range c.categories {
		n += len(cat.Items)
	}
	return n
}

// ItemByCode returns the first glyph with the given code. Glyphs carrying an
// output payload persist as text, so they never answer a code lookup.
func (c *Catalog) ItemByCode(code int) (glyph.Item, bool) {
	if code == 0 {
		return glyph.Item{}, false
	}
	for _, cat := range c.categories {
		for _, item := range cat.Items {
			if item.Code == code && item.Output == "" {
				return item, true
			}
		}
	}
	return glyph.Item{}, false
}

// ItemByOutput returns the first glyph whose output payload equals text.
func (c *Catalog) ItemByOutput(text string) (glyph.Item, bool) {
	if text == "" {
		return glyph.Item{}, false
	}
	for _, cat := range c.categories {
		for _, item := range cat.Items {
			if item.Output == text {
				return item, true
			}
		}
	}
	return glyph.Item{}, false
}

// Templates returns the two neighbouring template cells the grid metrics are
// measured from.
func (c *Catalog) Templates() (layout.TemplateKey, layout.TemplateKey) {
	key0 := layout.TemplateKey{Code: layout.TemplateCode0, X: 0, Width: c.cellWidth, Height: c.cellHeight}
	key1 := layout.TemplateKey{Code: layout.TemplateCode1, X: c.cellWidth, Width: c.cellWidth, Height: c.cellHeight}
	return key0, key1
}

// Metrics measures the grid for a popup baseWidth cells wide.
func (c *Catalog) Metrics(baseWidth, gap int) (layout.Metrics, error) {
	key0, key1 := c.Templates()
	return layout.FromTemplates(key0, key1, baseWidth, gap)
}
