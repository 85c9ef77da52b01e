package ui

import (
	"fmt"

	"github.com/atomicstack/tmux-popup-glyphs/internal/catalog"
	"github.com/atomicstack/tmux-popup-glyphs/internal/glyph"
	"github.com/atomicstack/tmux-popup-glyphs/internal/logging/events"
	"github.com/atomicstack/tmux-popup-glyphs/internal/ui/command"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func (m *Model) currentPage() *page {
	if m.active < 0 || m.active >= len(m.pages) {
		return nil
	}
	return m.pages[m.active]
}

func (m *Model) recentsPage() *page {
	if len(m.pages) == 0 {
		return nil
	}
	return m.pages[0]
}

func (m *Model) onRecents() bool {
	return m.active == 0
}

func (m *Model) columns() int {
	if m.metrics.Columns < 1 {
		return 1
	}
	return m.metrics.Columns
}

func (m *Model) syncViewport(p *page) {
	if p == nil {
		return
	}
	p.EnsureCursorVisible(m.columns(), m.maxVisibleRows())
}

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	switch {
	case key.Matches(keyMsg, m.keys.Quit):
		return m.quit()
	case key.Matches(keyMsg, m.keys.Escape):
		return m.handleEscapeKey()
	case key.Matches(keyMsg, m.keys.PickStay):
		return m.pickSelected(true)
	case key.Matches(keyMsg, m.keys.Pick):
		return m.pickSelected(false)
	case key.Matches(keyMsg, m.keys.NextTab):
		m.switchPage(m.active + 1)
		return nil
	case key.Matches(keyMsg, m.keys.PrevTab):
		m.switchPage(m.active - 1)
		return nil
	}
	if handled, cmd := m.handleTextInput(keyMsg); handled {
		return cmd
	}
	m.handleGridKey(keyMsg)
	return nil
}

func (m *Model) handleGridKey(msg tea.KeyMsg) {
	current := m.currentPage()
	if current == nil {
		return
	}
	cols := m.columns()
	var moved bool
	switch {
	case key.Matches(msg, m.keys.Up):
		moved = current.MoveCursorUp(cols)
	case key.Matches(msg, m.keys.Down):
		moved = current.MoveCursorDown(cols)
	case key.Matches(msg, m.keys.Left):
		moved = current.MoveCursorLeft()
	case key.Matches(msg, m.keys.Right):
		moved = current.MoveCursorRight()
	case key.Matches(msg, m.keys.PageUp):
		moved = current.MoveCursorPageUp(cols, m.pageRows())
	case key.Matches(msg, m.keys.PageDown):
		moved = current.MoveCursorPageDown(cols, m.pageRows())
	case key.Matches(msg, m.keys.Home):
		moved = current.MoveCursorHome()
	case key.Matches(msg, m.keys.End):
		moved = current.MoveCursorEnd()
	}
	if !moved {
		return
	}
	m.clearInfo()
	m.syncViewport(current)
	events.UI.Cursor(current.ID, current.Cursor)
}

func (m *Model) pageRows() int {
	if rows := m.maxVisibleRows(); rows > 0 {
		return rows
	}
	return 1
}

func (m *Model) handleEscapeKey() tea.Cmd {
	current := m.currentPage()
	if current != nil && current.Filter != "" {
		before := current.FilterCursorPos()
		current.ClearFilter()
		m.noteFilterCursorChange(current, before)
		events.Filter.Cleared(current.ID)
		m.syncViewport(current)
		return nil
	}
	return m.quit()
}

// switchPage activates the tab at index, wrapping around both ends. Entering
// the recents tab flushes queued picks into the cache first.
func (m *Model) switchPage(index int) {
	n := len(m.pages)
	if n == 0 {
		return
	}
	index = ((index % n) + n) % n
	if current := m.currentPage(); current != nil {
		current.LastCursor = current.Cursor
	}
	m.active = index
	m.errMsg = ""
	m.forceClearInfo()
	current := m.currentPage()
	if index == 0 {
		m.flushRecents()
	}
	m.syncViewport(current)
	m.filterCursorDirty = true
	events.UI.CategoryEnter(current.ID, len(current.Items))
}

// flushRecents drains pending picks into the cache and refreshes the recents
// tab. The cursor returns to the front when anything was queued.
func (m *Model) flushRecents() {
	pending := m.recents.PendingLen()
	m.recents.FlushPending()
	recentsPage := m.recentsPage()
	if recentsPage == nil {
		return
	}
	recentsPage.UpdateItems(m.recents.View().Items())
	if pending > 0 {
		recentsPage.Cursor = 0
		recentsPage.RowOffset = 0
	}
}

// recordPick routes a picked glyph into the cache. Picks on the recents tab
// reorder immediately; picks elsewhere wait until the recents tab is shown.
func (m *Model) recordPick(item glyph.Item) {
	if !m.onRecents() {
		m.recents.AddPending(item)
		return
	}
	m.recents.AddFront(item)
	recentsPage := m.recentsPage()
	recentsPage.UpdateItems(m.recents.View().Items())
	if idx := recentsPage.IndexOf(item); idx >= 0 {
		recentsPage.Cursor = idx
	}
	m.syncViewport(recentsPage)
}

func (m *Model) pickSelected(stay bool) tea.Cmd {
	if m.busy {
		return nil
	}
	current := m.currentPage()
	if current == nil {
		return nil
	}
	item, ok := current.Selected()
	if !ok {
		return nil
	}
	return m.pick(current, item, stay)
}

func (m *Model) pick(current *page, item glyph.Item, stay bool) tea.Cmd {
	text := item.Text()
	if text == "" {
		return nil
	}
	events.UI.Pick(current.ID, item.Code, item.Label)
	m.recordPick(item)
	m.picked++
	m.errMsg = ""
	m.forceClearInfo()
	if m.send == nil {
		if stay {
			return nil
		}
		return m.quit()
	}
	m.busy = true
	m.pendingLabel = item.Label
	send := m.send
	return m.bus.Execute(command.Request{
		ID:    fmt.Sprintf("%s:%d", current.ID, current.Cursor),
		Label: item.Label,
		Run:   func() error { return send(text) },
		Stay:  stay,
	})
}

// quit flushes pending picks once and stops the program.
func (m *Model) quit() tea.Cmd {
	if !m.quitting {
		m.quitting = true
		m.recents.FlushPending()
	}
	return tea.Quit
}

func (m *Model) tabTitle(p *page) string {
	if p.ID == catalog.RecentsID {
		if n := m.recents.PendingLen(); n > 0 {
			return fmt.Sprintf("%s (+%d)", p.Title, n)
		}
	}
	return p.Title
}
