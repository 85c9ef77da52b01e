package app

import (
	"fmt"
	"io"
	"strconv"

	"github.com/atomicstack/tmux-popup-glyphs/internal/format/table"
	"github.com/atomicstack/tmux-popup-glyphs/internal/recents"
)

// WriteList prints the cache contents, front first, with the grid cell each
// glyph occupies, followed by the fill state and the persisted encoding.
func WriteList(w io.Writer, cache *recents.Cache) error {
	entries := cache.View().Entries()
	if len(entries) == 0 {
		_, err := fmt.Fprintln(w, "(no recents)")
		return err
	}
	metrics := cache.Metrics()
	rows := make([][]string, 0, len(entries)+1)
	rows = append(rows, []string{"#", "COL", "ROW", "GLYPH", "LABEL", "CODE"})
	for i, entry := range entries {
		col, row := metrics.Locate(entry.Rect)
		code := ""
		if entry.Item.Code > 0 {
			code = fmt.Sprintf("U+%04X", entry.Item.Code)
		}
		rows = append(rows, []string{
			strconv.Itoa(i),
			strconv.Itoa(col),
			strconv.Itoa(row),
			entry.Item.Text(),
			entry.Item.Label,
			code,
		})
	}
	aligned := table.Format(rows, []table.Alignment{
		table.AlignRight, table.AlignRight, table.AlignRight,
		table.AlignLeft, table.AlignLeft, table.AlignLeft,
	})
	for _, line := range aligned {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "\n%s: %d/%d %s\nencoded: %s\n",
		cache.Name(), len(entries), cache.Capacity(), cache.State(), cache.Encoded())
	return err
}
