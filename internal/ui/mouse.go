package ui

import (
	"github.com/atomicstack/tmux-popup-glyphs/internal/logging/events"
	tea "github.com/charmbracelet/bubbletea"
)

// gridTop is the screen row of the first grid line, below the tab line.
const gridTop = 1

func (m *Model) handleMouseMsg(msg tea.Msg) tea.Cmd {
	ev, ok := msg.(tea.MouseMsg)
	if !ok {
		return nil
	}
	current := m.currentPage()
	if current == nil {
		return nil
	}
	switch ev.Button {
	case tea.MouseButtonWheelUp:
		if current.MoveCursorUp(m.columns()) {
			m.syncViewport(current)
			events.UI.Cursor(current.ID, current.Cursor)
		}
		return nil
	case tea.MouseButtonWheelDown:
		if current.MoveCursorDown(m.columns()) {
			m.syncViewport(current)
			events.UI.Cursor(current.ID, current.Cursor)
		}
		return nil
	case tea.MouseButtonLeft:
	default:
		return nil
	}
	if ev.Action != tea.MouseActionPress {
		return nil
	}
	if ev.Y < gridTop {
		if idx := m.tabAt(ev.X); idx >= 0 && idx != m.active {
			m.switchPage(idx)
		}
		return nil
	}
	idx, hit := m.cellAt(current, ev.X, ev.Y-gridTop)
	events.UI.Click(current.ID, ev.X, ev.Y, hit)
	if !hit || m.busy {
		return nil
	}
	current.SetCursor(idx)
	m.syncViewport(current)
	return m.pickSelected(false)
}

// cellAt maps a click relative to the first visible grid row onto a glyph
// index. Unfiltered recents are hit-tested against the cache's own cells.
func (m *Model) cellAt(p *page, x, line int) (int, bool) {
	start, end := m.visibleRows(p)
	row := start + line
	if line < 0 || row >= end || x < 0 {
		return -1, false
	}
	if m.onRecents() && p.Filter == "" {
		y := row*m.metrics.VerticalStep + m.metrics.VerticalGap/2
		nearest := m.recents.Nearest(x, y)
		if len(nearest) == 0 || !nearest[0].Rect.Contains(x, y) {
			return -1, false
		}
		idx := m.recents.View().IndexOf(nearest[0].Item)
		return idx, idx >= 0 && idx < len(p.Items)
	}
	col := x / m.cellWidth()
	if col >= m.columns() {
		return -1, false
	}
	idx := row*m.columns() + col
	return idx, idx < len(p.Items)
}
