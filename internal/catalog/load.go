package catalog

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/BurntSushi/toml"
	"github.com/atomicstack/tmux-popup-glyphs/internal/glyph"
)

type fileCatalog struct {
	Layout     fileLayout     `toml:"layout"`
	Categories []fileCategory `toml:"category"`
}

type fileLayout struct {
	CellWidth  int `toml:"cell_width"`
	CellHeight int `toml:"cell_height"`
}

type fileCategory struct {
	ID     string      `toml:"id"`
	Title  string      `toml:"title"`
	Glyphs []fileGlyph `toml:"glyph"`
}

// fileGlyph accepts either a code, a literal char, or both. A char made of
// more than one rune becomes the output payload.
type fileGlyph struct {
	Code   int    `toml:"code"`
	Char   string `toml:"char"`
	Label  string `toml:"label"`
	Output string `toml:"output"`
}

// Load reads a TOML catalog from path. An empty path or a missing file yields
// the built-in catalog.
func Load(path string) (*Catalog, error) {
	if strings.TrimSpace(path) == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return nil, fmt.Errorf("read catalog %s: %w", path, err)
	}
	c, err := Parse(string(data))
	if err != nil {
		return nil, fmt.Errorf("catalog %s: %w", path, err)
	}
	return c, nil
}

// Parse decodes a TOML catalog document.
func Parse(doc string) (*Catalog, error) {
	var file fileCatalog
	md, err := toml.Decode(doc, &file)
	if err != nil {
		return nil, err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, key := range undecoded {
			keys[i] = key.String()
		}
		return nil, fmt.Errorf("%w: unknown keys %s", ErrInvalidCatalog, strings.Join(keys, ", "))
	}

	width := file.Layout.CellWidth
	if width == 0 {
		width = DefaultCellWidth
	}
	height := file.Layout.CellHeight
	if height == 0 {
		height = DefaultCellHeight
	}

	categories := make([]Category, 0, len(file.Categories))
	for _, fc := range file.Categories {
		items := make([]glyph.Item, 0, len(fc.Glyphs))
		for _, fg := range fc.Glyphs {
			items = append(items, fg.item())
		}
		categories = append(categories, Category{ID: fc.ID, Title: fc.Title, Items: items})
	}
	return New(categories, width, height)
}

func (fg fileGlyph) item() glyph.Item {
	item := glyph.Item{Code: fg.Code, Label: fg.Label, Output: fg.Output}
	if fg.Char == "" {
		return item
	}
	r, size := utf8.DecodeRuneInString(fg.Char)
	if size == len(fg.Char) && r != utf8.RuneError {
		if item.Code == 0 {
			item.Code = int(r)
		}
		return item
	}
	if item.Output == "" {
		item.Output = fg.Char
	}
	if item.Code == 0 {
		item.Code = int(r)
	}
	return item
}
