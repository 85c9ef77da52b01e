package layout

import (
	"errors"
	"testing"

	"github.com/atomicstack/tmux-popup-glyphs/internal/glyph"
)

func testMetrics(t *testing.T) Metrics {
	t.Helper()
	m, err := FromTemplates(
		TemplateKey{Code: TemplateCode0, X: 0, Width: 4, Height: 2},
		TemplateKey{Code: TemplateCode1, X: 4, Width: 4, Height: 2},
		12, 2,
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return m
}

func TestFromTemplatesDerivesSteps(t *testing.T) {
	m := testMetrics(t)
	if m.HorizontalStep != 4 || m.VerticalStep != 4 || m.Columns != 3 {
		t.Fatalf("unexpected metrics %#v", m)
	}
}

func TestFromTemplatesUsesAbsoluteDistance(t *testing.T) {
	m, err := FromTemplates(TemplateKey{X: 8, Height: 1}, TemplateKey{X: 4, Height: 1}, 10, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.HorizontalStep != 4 || m.Columns != 2 {
		t.Fatalf("unexpected metrics %#v", m)
	}
}

func TestFromTemplatesRejectsDegenerateKeys(t *testing.T) {
	_, err := FromTemplates(TemplateKey{X: 3, Height: 1}, TemplateKey{X: 3, Height: 1}, 10, 0)
	if !errors.Is(err, ErrDegenerateTemplate) {
		t.Fatalf("expected degenerate template error, got %v", err)
	}
	_, err = FromTemplates(TemplateKey{X: 0, Height: 1}, TemplateKey{X: 20, Height: 1}, 10, 0)
	if !errors.Is(err, ErrDegenerateTemplate) {
		t.Fatalf("expected error for zero columns, got %v", err)
	}
}

func TestCellFormula(t *testing.T) {
	m := testMetrics(t)
	cases := []struct {
		index int
		want  glyph.Rect
	}{
		{0, glyph.Rect{X0: 0, Y0: 1, X1: 4, Y1: 5}},
		{2, glyph.Rect{X0: 8, Y0: 1, X1: 12, Y1: 5}},
		{3, glyph.Rect{X0: 0, Y0: 5, X1: 4, Y1: 9}},
		{7, glyph.Rect{X0: 4, Y0: 9, X1: 8, Y1: 13}},
	}
	for _, tc := range cases {
		if got := m.Cell(tc.index); got != tc.want {
			t.Fatalf("cell %d: expected %#v, got %#v", tc.index, tc.want, got)
		}
	}
}

func TestLocateInvertsCell(t *testing.T) {
	m := testMetrics(t)
	for i := 0; i < 10; i++ {
		wantCol, wantRow := m.Position(i)
		col, row := m.Locate(m.Cell(i))
		if col != wantCol || row != wantRow {
			t.Fatalf("index %d: expected (%d,%d), got (%d,%d)", i, wantCol, wantRow, col, row)
		}
	}
}

func TestApplyRecomputesEveryEntry(t *testing.T) {
	m := testMetrics(t)
	entries := []glyph.Entry{
		{Item: glyph.Item{Code: 1}, Rect: glyph.Rect{X0: 99}},
		{Item: glyph.Item{Code: 2}, Rect: glyph.Rect{X0: 99}},
		{Item: glyph.Item{Code: 3}},
		{Item: glyph.Item{Code: 4}},
	}
	m.Apply(entries)
	for i, entry := range entries {
		if entry.Rect != m.Cell(i) {
			t.Fatalf("entry %d: expected %#v, got %#v", i, m.Cell(i), entry.Rect)
		}
	}
}

func TestRows(t *testing.T) {
	m := testMetrics(t)
	if m.Rows(0) != 0 || m.Rows(3) != 1 || m.Rows(4) != 2 {
		t.Fatalf("unexpected row counts %d/%d/%d", m.Rows(0), m.Rows(3), m.Rows(4))
	}
}

func TestZeroMetricsDoNotDivideByZero(t *testing.T) {
	var m Metrics
	col, row := m.Position(5)
	if col != 0 || row != 5 {
		t.Fatalf("expected single column fallback, got (%d,%d)", col, row)
	}
}

func TestLayoutPairsItemsWithCells(t *testing.T) {
	m := testMetrics(t)
	items := []glyph.Item{{Code: 1}, {Code: 2}, {Code: 3}, {Code: 4}, {Code: 5}}
	entries := m.Layout(items)
	if len(entries) != len(items) {
		t.Fatalf("expected %d entries, got %d", len(items), len(entries))
	}
	for i, entry := range entries {
		if !entry.Item.Equal(items[i]) || entry.Rect != m.Cell(i) {
			t.Fatalf("entry %d = %#v", i, entry)
		}
	}
	if want := (glyph.Rect{X0: 4, Y0: 5, X1: 8, Y1: 9}); entries[4].Rect != want {
		t.Fatalf("expected %#v, got %#v", want, entries[4].Rect)
	}
	if len(m.Layout(nil)) != 0 {
		t.Fatalf("expected no entries for no items")
	}
}
