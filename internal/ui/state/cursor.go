package state

// MoveCursorHome moves the cursor to the first glyph.
func (p *Page) MoveCursorHome() bool {
	if len(p.Items) == 0 {
		p.Cursor = 0
		return false
	}
	old := p.Cursor
	p.Cursor = 0
	return old != p.Cursor
}

// MoveCursorEnd moves the cursor to the last glyph.
func (p *Page) MoveCursorEnd() bool {
	n := len(p.Items)
	if n == 0 {
		p.Cursor = 0
		return false
	}
	old := p.Cursor
	p.Cursor = n - 1
	return old != p.Cursor
}

// MoveCursorLeft moves one cell back, wrapping to the end of the previous row.
func (p *Page) MoveCursorLeft() bool {
	return p.moveCursorBy(-1)
}

// MoveCursorRight moves one cell forward, wrapping to the next row.
func (p *Page) MoveCursorRight() bool {
	return p.moveCursorBy(1)
}

// MoveCursorUp moves one row up, staying in the same column.
func (p *Page) MoveCursorUp(columns int) bool {
	step := clampColumns(columns)
	if p.Cursor-step < 0 {
		return false
	}
	return p.moveCursorBy(-step)
}

// MoveCursorDown moves one row down. On a short last row the cursor lands on
// the final glyph.
func (p *Page) MoveCursorDown(columns int) bool {
	step := clampColumns(columns)
	n := len(p.Items)
	if n == 0 {
		p.Cursor = 0
		return false
	}
	if p.Cursor/step >= (n-1)/step {
		return false
	}
	return p.moveCursorBy(step)
}

// MoveCursorPageUp moves the cursor up by rows full rows.
func (p *Page) MoveCursorPageUp(columns, rows int) bool {
	return p.moveCursorBy(-clampColumns(columns) * clampRows(rows))
}

// MoveCursorPageDown moves the cursor down by rows full rows.
func (p *Page) MoveCursorPageDown(columns, rows int) bool {
	return p.moveCursorBy(clampColumns(columns) * clampRows(rows))
}

// SetCursor places the cursor on index when it is visible.
func (p *Page) SetCursor(index int) bool {
	if index < 0 || index >= len(p.Items) {
		return false
	}
	old := p.Cursor
	p.Cursor = index
	return old != index
}

func (p *Page) moveCursorBy(delta int) bool {
	if len(p.Items) == 0 {
		p.Cursor = 0
		return false
	}
	old := p.Cursor
	if p.Cursor < 0 {
		p.Cursor = 0
	}
	p.Cursor += delta
	if p.Cursor < 0 {
		p.Cursor = 0
	}
	if p.Cursor >= len(p.Items) {
		p.Cursor = len(p.Items) - 1
	}
	return p.Cursor != old
}

// EnsureCursorVisible adjusts the row offset so the cursor row stays inside a
// viewport maxRows tall.
func (p *Page) EnsureCursorVisible(columns, maxRows int) {
	if len(p.Items) == 0 {
		p.Cursor = 0
		p.RowOffset = 0
		return
	}
	if p.Cursor < 0 {
		p.Cursor = 0
	}
	if p.Cursor >= len(p.Items) {
		p.Cursor = len(p.Items) - 1
	}
	if maxRows <= 0 {
		p.RowOffset = 0
		return
	}
	cols := clampColumns(columns)
	totalRows := (len(p.Items) + cols - 1) / cols
	maxOffset := totalRows - maxRows
	if maxOffset < 0 {
		maxOffset = 0
	}
	if p.RowOffset > maxOffset {
		p.RowOffset = maxOffset
	}
	if p.RowOffset < 0 {
		p.RowOffset = 0
	}
	row := p.Cursor / cols
	if row < p.RowOffset {
		p.RowOffset = row
	}
	if row > p.RowOffset+maxRows-1 {
		p.RowOffset = row - maxRows + 1
	}
}

func clampColumns(columns int) int {
	if columns < 1 {
		return 1
	}
	return columns
}

func clampRows(rows int) int {
	if rows < 1 {
		return 1
	}
	return rows
}
