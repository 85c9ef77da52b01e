// Package layout places glyphs on a fixed grid. Step sizes come from two
// template keys measured once at construction; after that the metrics never
// change.
package layout

import (
	"errors"
	"fmt"

	"github.com/atomicstack/tmux-popup-glyphs/internal/glyph"
)

// Template key codes looked up in a catalog to derive step sizes.
const (
	TemplateCode0 = 0x30
	TemplateCode1 = 0x31
)

var ErrDegenerateTemplate = errors.New("layout: degenerate template keys")

// TemplateKey describes the geometry of a template cell.
type TemplateKey struct {
	Code   int
	X      int
	Y      int
	Width  int
	Height int
}

// Metrics holds the grid constants used to compute cell rectangles.
type Metrics struct {
	HorizontalStep int
	VerticalStep   int
	BaseWidth      int
	VerticalGap    int
	Columns        int
}

// FromTemplates derives metrics from two neighbouring template keys.
func FromTemplates(key0, key1 TemplateKey, baseWidth, gap int) (Metrics, error) {
	hstep := key1.X - key0.X
	if hstep < 0 {
		hstep = -hstep
	}
	vstep := key0.Height + gap
	if hstep == 0 || vstep <= 0 {
		return Metrics{}, fmt.Errorf("%w: horizontal step %d, vertical step %d", ErrDegenerateTemplate, hstep, vstep)
	}
	columns := baseWidth / hstep
	if columns < 1 {
		return Metrics{}, fmt.Errorf("%w: base width %d narrower than step %d", ErrDegenerateTemplate, baseWidth, hstep)
	}
	return Metrics{
		HorizontalStep: hstep,
		VerticalStep:   vstep,
		BaseWidth:      baseWidth,
		VerticalGap:    gap,
		Columns:        columns,
	}, nil
}

func (m Metrics) columns() int {
	if m.Columns < 1 {
		return 1
	}
	return m.Columns
}

// Position returns the column and row of the linear index.
func (m Metrics) Position(index int) (col, row int) {
	cols := m.columns()
	return index % cols, index / cols
}

// Cell returns the rectangle occupied by the linear index.
func (m Metrics) Cell(index int) glyph.Rect {
	col, row := m.Position(index)
	return glyph.Rect{
		X0: col * m.HorizontalStep,
		Y0: row*m.VerticalStep + m.VerticalGap/2,
		X1: (col + 1) * m.HorizontalStep,
		Y1: (row+1)*m.VerticalStep + m.VerticalGap/2,
	}
}

// Locate maps a rectangle produced by Cell back to its column and row.
func (m Metrics) Locate(r glyph.Rect) (col, row int) {
	if m.HorizontalStep > 0 {
		col = r.X0 / m.HorizontalStep
	}
	if m.VerticalStep > 0 {
		row = (r.Y0 - m.VerticalGap/2) / m.VerticalStep
	}
	return col, row
}

// Apply recomputes the rectangle of every entry for its current index.
func (m Metrics) Apply(entries []glyph.Entry) {
	for i := range entries {
		entries[i].Rect = m.Cell(i)
	}
}

// Layout pairs items with freshly computed cells.
func (m Metrics) Layout(items []glyph.Item) []glyph.Entry {
	entries := make([]glyph.Entry, len(items))
	for i, item := range items {
		entries[i] = glyph.Entry{Item: item, Rect: m.Cell(i)}
	}
	return entries
}

// Rows reports how many rows n cells occupy.
func (m Metrics) Rows(n int) int {
	if n <= 0 {
		return 0
	}
	cols := m.columns()
	return (n + cols - 1) / cols
}
