package glyph

import "unicode/utf8"

// Item is a selectable glyph. Code 0 means the item has no code point and an
// empty Output means it has no multi-rune payload.
type Item struct {
	Code   int
	Label  string
	Output string
}

// Equal reports structural equality over code, label and output.
func (i Item) Equal(other Item) bool {
	return i.Code == other.Code && i.Label == other.Label && i.Output == other.Output
}

// IsZero reports whether the item carries nothing at all.
func (i Item) IsZero() bool {
	return i.Code == 0 && i.Label == "" && i.Output == ""
}

// Text returns the string typed when the item is picked.
func (i Item) Text() string {
	if i.Output != "" {
		return i.Output
	}
	if i.Code > 0 && utf8.ValidRune(rune(i.Code)) {
		return string(rune(i.Code))
	}
	return ""
}

// Rect is a grid cell in layout units. X1 and Y1 are exclusive.
type Rect struct {
	X0, Y0, X1, Y1 int
}

// Contains reports whether the point lies inside the rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X0 && x < r.X1 && y >= r.Y0 && y < r.Y1
}

// Entry pairs an item with the cell it currently occupies.
type Entry struct {
	Item Item
	Rect Rect
}

// Items strips the rectangles from a slice of entries.
func Items(entries []Entry) []Item {
	items := make([]Item, len(entries))
	for i, entry := range entries {
		items[i] = entry.Item
	}
	return items
}
