package catalog

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/atomicstack/tmux-popup-glyphs/internal/glyph"
	"github.com/atomicstack/tmux-popup-glyphs/internal/layout"
	"github.com/atomicstack/tmux-popup-glyphs/internal/prefs"
	"github.com/atomicstack/tmux-popup-glyphs/internal/recents"
)

func TestDefaultCatalogIsValid(t *testing.T) {
	c := Default()
	if len(c.Categories()) == 0 || c.Len() == 0 {
		t.Fatalf("expected built-in categories")
	}
	if _, ok := c.Category(RecentsID); ok {
		t.Fatalf("expected recents id to be reserved")
	}
	item, ok := c.ItemByOutput("👍🏽")
	if !ok || item.Label != "thumbs up: medium skin tone" {
		t.Fatalf("expected multi-rune glyph lookup, got %#v ok=%v", item, ok)
	}
}

func TestItemByCodeReturnsFirstMatch(t *testing.T) {
	c := Default()
	item, ok := c.ItemByCode(0x1F44D)
	if !ok {
		t.Fatalf("expected thumbs up")
	}
	if item.Output != "" || item.Label != "thumbs up" {
		t.Fatalf("expected the plain entry to win, got %#v", item)
	}
	if _, ok := c.ItemByCode(0); ok {
		t.Fatalf("expected code 0 never to match")
	}
	if _, ok := c.ItemByOutput(""); ok {
		t.Fatalf("expected empty output never to match")
	}
}

func TestNewRejectsBadCategories(t *testing.T) {
	cases := map[string][]Category{
		"reserved":  {{ID: RecentsID, Items: []glyph.Item{{Code: 'a'}}}},
		"empty id":  {{ID: " ", Items: []glyph.Item{{Code: 'a'}}}},
		"duplicate": {{ID: "a"}, {ID: "a"}},
		"untypable": {{ID: "a", Items: []glyph.Item{{Label: "nothing"}}}},
	}
	for name, cats := range cases {
		if _, err := New(cats, 4, 1); !errors.Is(err, ErrInvalidCatalog) {
			t.Fatalf("%s: expected ErrInvalidCatalog, got %v", name, err)
		}
	}
	if _, err := New(nil, 0, 1); !errors.Is(err, ErrInvalidCatalog) {
		t.Fatalf("expected zero cell width to be rejected, got %v", err)
	}
}

func TestTemplatesFeedLayout(t *testing.T) {
	c := Default()
	key0, key1 := c.Templates()
	if key0.Code != layout.TemplateCode0 || key1.Code != layout.TemplateCode1 {
		t.Fatalf("unexpected template codes %#x %#x", key0.Code, key1.Code)
	}
	m, err := c.Metrics(40, 0)
	if err != nil {
		t.Fatalf("metrics: %v", err)
	}
	if m.HorizontalStep != DefaultCellWidth || m.VerticalStep != DefaultCellHeight || m.Columns != 10 {
		t.Fatalf("unexpected metrics %#v", m)
	}
	if _, err := c.Metrics(2, 0); err == nil {
		t.Fatalf("expected a popup narrower than one cell to fail")
	}
}

func TestLoadMissingFileFallsBackToDefault(t *testing.T) {
	c, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if c.Len() != Default().Len() {
		t.Fatalf("expected default catalog")
	}
}

func TestLoadParsesTOML(t *testing.T) {
	c, err := Load(filepath.Join("testdata", "custom.toml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	cats := c.Categories()
	if len(cats) != 2 || cats[0].ID != "dev" || cats[1].Title != "marks" {
		t.Fatalf("unexpected categories %#v", cats)
	}
	dev := cats[0].Items
	if dev[0].Code != 0x1F41B || dev[0].Output != "" {
		t.Fatalf("expected single rune char to become a code, got %#v", dev[0])
	}
	if dev[1].Code != 0x1F680 {
		t.Fatalf("expected hex code, got %#v", dev[1])
	}
	if dev[2].Output != "👨‍💻" || dev[2].Code != 0x1F468 {
		t.Fatalf("expected sequence to become output, got %#v", dev[2])
	}
	m, err := c.Metrics(9, 0)
	if err != nil || m.Columns != 3 {
		t.Fatalf("expected cell width 3 to give 3 columns, got %#v (%v)", m, err)
	}
}

func TestParseRejectsUnknownKeys(t *testing.T) {
	_, err := Parse("[[category]]\nid = \"x\"\ncolour = \"red\"\n")
	if !errors.Is(err, ErrInvalidCatalog) {
		t.Fatalf("expected unknown key error, got %v", err)
	}
}

func TestItemByCodeSkipsPayloadGlyphs(t *testing.T) {
	c, err := Parse(`
[[category]]
id = "people"

  [[category.glyph]]
  char = "👨‍💻"
  label = "technologist"

  [[category.glyph]]
  char = "👨"
  label = "man"
`)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	item, ok := c.ItemByCode(0x1F468)
	if !ok || item.Label != "man" || item.Output != "" {
		t.Fatalf("expected the plain glyph, got %#v ok=%v", item, ok)
	}
	if seq, ok := c.ItemByOutput("👨‍💻"); !ok || seq.Label != "technologist" {
		t.Fatalf("expected the sequence by output, got %#v ok=%v", seq, ok)
	}
}

func TestRecentsRestoreSharedLeadingRune(t *testing.T) {
	c, err := Parse(`
[[category]]
id = "people"

  [[category.glyph]]
  char = "👨‍💻"
  label = "technologist"

  [[category.glyph]]
  char = "👨"
  label = "man"
`)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	metrics, err := c.Metrics(40, 0)
	if err != nil {
		t.Fatalf("metrics: %v", err)
	}
	store := prefs.NewMemoryStore()
	newCache := func() *recents.Cache {
		return recents.New(recents.Options{
			Name:       "recents",
			Capacity:   4,
			Metrics:    metrics,
			Persistent: true,
			Key:        "recents",
			Prefs:      store,
		})
	}
	man, _ := c.ItemByCode(0x1F468)
	tech, _ := c.ItemByOutput("👨‍💻")
	saved := newCache()
	saved.AddFront(tech)
	saved.AddFront(man)

	restored := newCache()
	if n := restored.Load(c); n != 2 {
		t.Fatalf("expected two restored glyphs, got %d", n)
	}
	got := restored.View().Items()
	if !got[0].Equal(man) || !got[1].Equal(tech) {
		t.Fatalf("restored %+v, saved %+v", got, saved.View().Items())
	}
}
