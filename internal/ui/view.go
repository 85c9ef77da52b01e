package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/atomicstack/tmux-popup-glyphs/internal/glyph"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

const tabSeparator = "│"

type styledLine struct {
	text  string
	style *lipgloss.Style
	raw   bool // text is already styled
}

// View implements tea.Model.
func (m *Model) View() string {
	lines := make([]styledLine, 0, 16)
	lines = append(lines, styledLine{text: m.renderTabs(), raw: true})
	if current := m.currentPage(); current != nil {
		m.syncViewport(current)
		lines = append(lines, m.gridLines(current)...)
		lines = append(lines, m.labelLine(current))
	}
	if info := m.currentInfo(); info != "" {
		lines = append(lines, styledLine{})
		lines = append(lines, styledLine{text: info, style: styles.Info})
	}
	if m.showFooter {
		lines = append(lines, styledLine{})
		lines = append(lines, styledLine{text: m.keys.footer(), style: styles.Footer})
	}
	// Reserve 2 rows for the bottom bar (error/status + prompt).
	lines = limitHeight(lines, m.height-2, m.width)
	lines = applyWidth(lines, m.width)

	var statusLine styledLine
	if m.errMsg != "" {
		statusLine = styledLine{text: fmt.Sprintf("Error: %s", m.errMsg), style: styles.Error}
	}
	bottomLines := []styledLine{
		statusLine,
		{text: m.filterPrompt(), raw: true},
	}
	bottomLines = applyWidth(bottomLines, m.width)
	lines = append(lines, bottomLines...)
	return renderLines(lines)
}

func (m *Model) renderTabs() string {
	var b strings.Builder
	for i, p := range m.pages {
		if i > 0 {
			b.WriteString(render(styles.TabSeparator, tabSeparator))
		}
		style := styles.Tab
		if i == m.active {
			style = styles.ActiveTab
		}
		b.WriteString(render(style, " "+m.tabTitle(p)+" "))
	}
	return b.String()
}

// tabAt returns the tab under column x of the tab line.
func (m *Model) tabAt(x int) int {
	start := 0
	for i, p := range m.pages {
		if i > 0 {
			start += ansi.StringWidth(tabSeparator)
		}
		end := start + ansi.StringWidth(" "+m.tabTitle(p)+" ")
		if x >= start && x < end {
			return i
		}
		start = end
	}
	return -1
}

// visibleRows returns the half-open range of grid rows shown for the page.
func (m *Model) visibleRows(p *page) (int, int) {
	total := m.metrics.Rows(len(p.Items))
	start := p.RowOffset
	if start > total {
		start = total
	}
	end := total
	if limit := m.maxVisibleRows(); limit > 0 && start+limit < end {
		end = start + limit
	}
	return start, end
}

func (m *Model) gridLines(p *page) []styledLine {
	if len(p.Items) == 0 {
		msg := "(no glyphs)"
		switch {
		case p.Filter != "":
			msg = fmt.Sprintf("No matches for %q", p.Filter)
		case m.onRecents():
			msg = "(nothing picked yet)"
		}
		return []styledLine{{text: msg, style: styles.Info}}
	}
	start, end := m.visibleRows(p)
	rows := make([]strings.Builder, end-start)
	place := func(idx, row int, item glyph.Item) {
		if row < start || row >= end {
			return
		}
		rows[row-start].WriteString(m.renderCell(item, idx == p.Cursor))
	}
	if m.onRecents() && p.Filter == "" {
		for idx, entry := range m.recents.View().Entries() {
			_, row := m.metrics.Locate(entry.Rect)
			place(idx, row, entry.Item)
		}
	} else {
		for idx, entry := range m.metrics.Layout(p.Items) {
			_, row := m.metrics.Locate(entry.Rect)
			place(idx, row, entry.Item)
		}
	}
	lines := make([]styledLine, len(rows))
	for i := range rows {
		lines[i] = styledLine{text: rows[i].String(), raw: true}
	}
	return lines
}

func (m *Model) cellWidth() int {
	if m.metrics.HorizontalStep < 1 {
		return 1
	}
	return m.metrics.HorizontalStep
}

func (m *Model) renderCell(item glyph.Item, selected bool) string {
	width := m.cellWidth()
	text := item.Text()
	w := ansi.StringWidth(text)
	if w > width {
		text = ansi.Truncate(text, width, "")
		w = ansi.StringWidth(text)
	}
	left := (width - w) / 2
	padded := strings.Repeat(" ", left) + text + strings.Repeat(" ", width-w-left)
	if selected {
		return render(styles.SelectedCell, padded)
	}
	return render(styles.Cell, padded)
}

func (m *Model) labelLine(p *page) styledLine {
	if m.busy {
		return styledLine{text: fmt.Sprintf("Sending %s…", m.pendingLabel), style: styles.Pending}
	}
	item, ok := p.Selected()
	if !ok {
		return styledLine{}
	}
	text := item.Text() + "  " + render(styles.Label, item.Label)
	if code := codeLabel(item); code != "" {
		text += "  " + render(styles.LabelCode, code)
	}
	return styledLine{text: text, raw: true}
}

func codeLabel(item glyph.Item) string {
	if item.Code <= 0 {
		return ""
	}
	return fmt.Sprintf("U+%04X", item.Code)
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	resize, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	if !m.fixedWidth {
		m.width = resize.Width
	}
	if !m.fixedHeight {
		m.height = resize.Height
	}
	m.syncViewport(m.currentPage())
	return nil
}

// maxVisibleRows reports how many grid rows fit, or -1 when the height is
// unknown.
func (m *Model) maxVisibleRows() int {
	if m.height <= 0 {
		return -1
	}
	used := 4 // tabs, label, status, prompt
	if m.infoMsg != "" {
		used += 2
	}
	if m.showFooter {
		used += 2
	}
	remain := m.height - used
	if remain < 1 {
		return 1
	}
	return remain
}

func (m *Model) setInfo(message string) {
	m.infoMsg = message
	m.infoExpire = time.Now().Add(5 * time.Second)
}

func (m *Model) clearInfo() {
	if m.infoMsg == "" {
		return
	}
	if !m.infoExpire.IsZero() && time.Now().Before(m.infoExpire) {
		return
	}
	m.infoMsg = ""
	m.infoExpire = time.Time{}
}

func (m *Model) forceClearInfo() {
	m.infoMsg = ""
	m.infoExpire = time.Time{}
}

func (m *Model) currentInfo() string {
	if m.infoMsg != "" && !m.infoExpire.IsZero() && time.Now().After(m.infoExpire) {
		m.infoMsg = ""
		m.infoExpire = time.Time{}
	}
	return m.infoMsg
}

func render(style *lipgloss.Style, text string) string {
	if style == nil || text == "" {
		return text
	}
	return style.Render(text)
}

func limitHeight(lines []styledLine, height, width int) []styledLine {
	if height <= 0 || len(lines) <= height {
		return lines
	}
	if height == 1 {
		return []styledLine{{text: truncateText("…", width)}}
	}
	trimmed := make([]styledLine, 0, height)
	trimmed = append(trimmed, lines[:height-1]...)
	trimmed = append(trimmed, styledLine{text: truncateText("…", width)})
	return trimmed
}

func applyWidth(lines []styledLine, width int) []styledLine {
	if width <= 0 {
		return lines
	}
	result := make([]styledLine, len(lines))
	for i, line := range lines {
		result[i] = styledLine{text: truncateText(line.text, width), style: line.style, raw: line.raw}
	}
	return result
}

func renderLines(lines []styledLine) string {
	out := make([]string, len(lines))
	for i, line := range lines {
		if line.raw {
			out[i] = line.text
			continue
		}
		out[i] = render(line.style, line.text)
	}
	return strings.Join(out, "\n")
}

func truncateText(text string, width int) string {
	if width <= 0 || ansi.StringWidth(text) <= width {
		return text
	}
	if width == 1 {
		return ansi.Truncate(text, 1, "")
	}
	return ansi.Truncate(text, width, "…")
}
