package state

import (
	"strings"
	"unicode"

	"github.com/atomicstack/tmux-popup-glyphs/internal/glyph"
	"github.com/lithammer/fuzzysearch/fuzzy"
)

// SetFilter updates the filter query and cursor position.
func (p *Page) SetFilter(query string, cursor int) {
	trimmed := strings.TrimSpace(query)
	prevTrimmed := strings.TrimSpace(p.Filter)
	restore := -1
	p.Filter = query
	runes := []rune(p.Filter)
	if cursor < 0 {
		cursor = 0
	}
	if cursor > len(runes) {
		cursor = len(runes)
	}
	p.FilterCursor = cursor
	if trimmed != "" {
		if prevTrimmed == "" {
			p.LastCursor = p.Cursor
		}
		p.Cursor = 0
	} else if prevTrimmed != "" {
		restore = p.LastCursor
	}
	p.applyFilter()
	if trimmed != "" && len(p.Items) > 0 {
		if idx := BestMatchIndex(p.Items, trimmed); idx >= 0 {
			p.Cursor = idx
		}
	}
	if trimmed == "" && prevTrimmed != "" {
		if restore >= 0 && restore < len(p.Items) {
			p.Cursor = restore
		} else {
			p.Cursor = 0
		}
		p.LastCursor = -1
	}
}

func (p *Page) applyFilter() {
	p.Items = FilterItems(p.Full, p.Filter)
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
}

// FilterCursorPos returns the rune offset of the filter cursor.
func (p *Page) FilterCursorPos() int {
	runes := []rune(p.Filter)
	if p.FilterCursor < 0 {
		return 0
	}
	if p.FilterCursor > len(runes) {
		return len(runes)
	}
	return p.FilterCursor
}

// InsertFilterText inserts text into the filter at the cursor position.
func (p *Page) InsertFilterText(text string) bool {
	insert := []rune(text)
	if len(insert) == 0 {
		return false
	}
	runes := []rune(p.Filter)
	pos := p.FilterCursorPos()
	updated := make([]rune, 0, len(runes)+len(insert))
	updated = append(updated, runes[:pos]...)
	updated = append(updated, insert...)
	updated = append(updated, runes[pos:]...)
	p.SetFilter(string(updated), pos+len(insert))
	return true
}

// DeleteFilterRuneBackward deletes a rune before the filter cursor.
func (p *Page) DeleteFilterRuneBackward() bool {
	runes := []rune(p.Filter)
	pos := p.FilterCursorPos()
	if pos == 0 || len(runes) == 0 {
		return false
	}
	updated := append(runes[:pos-1], runes[pos:]...)
	p.SetFilter(string(updated), pos-1)
	return true
}

// DeleteFilterWordBackward deletes the word preceding the cursor.
func (p *Page) DeleteFilterWordBackward() bool {
	runes := []rune(p.Filter)
	pos := p.FilterCursorPos()
	if pos == 0 || len(runes) == 0 {
		return false
	}
	i := pos
	for i > 0 && unicode.IsSpace(runes[i-1]) {
		i--
	}
	for i > 0 && !unicode.IsSpace(runes[i-1]) {
		i--
	}
	updated := append(runes[:i], runes[pos:]...)
	p.SetFilter(string(updated), i)
	return true
}

// ClearFilter drops the query entirely.
func (p *Page) ClearFilter() bool {
	if p.Filter == "" {
		return false
	}
	p.SetFilter("", 0)
	return true
}

// MoveFilterCursorStart moves the filter cursor to the start.
func (p *Page) MoveFilterCursorStart() bool {
	if p.FilterCursorPos() == 0 {
		return false
	}
	p.FilterCursor = 0
	return true
}

// MoveFilterCursorEnd moves the filter cursor to the end.
func (p *Page) MoveFilterCursorEnd() bool {
	end := len([]rune(p.Filter))
	if p.FilterCursorPos() == end {
		return false
	}
	p.FilterCursor = end
	return true
}

// FilterItems returns glyphs whose label matches the supplied filter string.
func FilterItems(items []glyph.Item, query string) []glyph.Item {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return CloneItems(items)
	}
	labels := make([]string, len(items))
	for i, item := range items {
		labels[i] = item.Label
	}
	ranks := fuzzy.RankFindNormalizedFold(trimmed, labels)
	if len(ranks) > 0 {
		matches := make(map[int]struct{}, len(ranks))
		for _, rank := range ranks {
			matches[rank.OriginalIndex] = struct{}{}
		}
		filtered := make([]glyph.Item, 0, len(matches))
		for idx, item := range items {
			if _, ok := matches[idx]; ok {
				filtered = append(filtered, item)
			}
		}
		return filtered
	}
	filtered := make([]glyph.Item, 0, len(items))
	for _, item := range items {
		if item.Text() == trimmed {
			filtered = append(filtered, item)
		}
	}
	return filtered
}

// BestMatchIndex returns the best index for the query among the provided glyphs.
func BestMatchIndex(items []glyph.Item, query string) int {
	trimmed := strings.TrimSpace(query)
	if len(items) == 0 {
		return -1
	}
	if trimmed == "" {
		return 0
	}
	lower := strings.ToLower(trimmed)
	for i, item := range items {
		if strings.EqualFold(item.Label, trimmed) {
			return i
		}
	}
	for i, item := range items {
		if strings.HasPrefix(strings.ToLower(item.Label), lower) {
			return i
		}
	}
	for i, item := range items {
		for _, word := range strings.Fields(strings.ToLower(item.Label)) {
			if strings.HasPrefix(word, lower) {
				return i
			}
		}
	}
	labels := make([]string, len(items))
	for i, item := range items {
		labels[i] = item.Label
	}
	ranks := fuzzy.RankFindNormalizedFold(trimmed, labels)
	if len(ranks) == 0 {
		return 0
	}
	best := ranks[0]
	for _, rank := range ranks[1:] {
		if rank.Distance < best.Distance {
			best = rank
			continue
		}
		if rank.Distance == best.Distance && rank.OriginalIndex < best.OriginalIndex {
			best = rank
		}
	}
	if best.OriginalIndex < 0 || best.OriginalIndex >= len(items) {
		return 0
	}
	return best.OriginalIndex
}
