package ui

import (
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/atomicstack/tmux-popup-glyphs/internal/catalog"
	"github.com/atomicstack/tmux-popup-glyphs/internal/layout"
	"github.com/atomicstack/tmux-popup-glyphs/internal/recents"
	"github.com/atomicstack/tmux-popup-glyphs/internal/theme"
	"github.com/atomicstack/tmux-popup-glyphs/internal/ui/command"
	uistate "github.com/atomicstack/tmux-popup-glyphs/internal/ui/state"
	"github.com/charmbracelet/bubbles/cursor"
	tea "github.com/charmbracelet/bubbletea"
)

type page = uistate.Page

const recentsTitle = "Recents"

var styles = theme.Default()

type msgHandler func(tea.Msg) tea.Cmd

// SendFunc types text into the target pane.
type SendFunc func(text string) error

// Options carries the presentation settings of the picker.
type Options struct {
	Width           int
	Height          int
	ShowFooter      bool
	Verbose         bool
	InitialCategory string
}

// Model implements the Bubble Tea model for the glyph picker.
type Model struct {
	pages   []*page
	active  int
	recents *recents.Cache
	metrics layout.Metrics
	send    SendFunc
	bus     *command.Bus
	keys    keyMap

	busy         bool
	pendingLabel string
	errMsg       string
	infoMsg      string
	infoExpire   time.Time
	picked       int
	quitting     bool

	width       int
	height      int
	fixedWidth  bool
	fixedHeight bool
	showFooter  bool
	verbose     bool

	filterCursor      cursor.Model
	filterCursorDirty bool

	handlers map[reflect.Type]msgHandler
}

// NewModel builds the picker over an immutable catalog and the recents cache
// that backs the first tab. The grid uses the cache's layout metrics.
func NewModel(cat *catalog.Catalog, cache *recents.Cache, send SendFunc, opts Options) *Model {
	m := &Model{
		recents:    cache,
		metrics:    cache.Metrics(),
		send:       send,
		bus:        command.New(),
		keys:       defaultKeyMap(),
		showFooter: opts.ShowFooter,
		verbose:    opts.Verbose,
	}
	m.pages = append(m.pages, uistate.NewPage(catalog.RecentsID, recentsTitle, cache.View().Items()))
	if cat != nil {
		for _, category := range cat.Categories() {
			m.pages = append(m.pages, uistate.NewPage(category.ID, category.Title, category.Items))
		}
	}
	if opts.Width > 0 {
		m.width = opts.Width
		m.fixedWidth = true
	}
	if opts.Height > 0 {
		m.height = opts.Height
		m.fixedHeight = true
	}
	c := cursor.New()
	if styles.Cursor != nil {
		c.Style = styles.Cursor.Copy()
	}
	if styles.Filter != nil {
		c.TextStyle = styles.Filter.Copy()
	}
	c.SetChar(" ")
	m.filterCursor = c
	m.active = m.initialPage(opts.InitialCategory)
	m.syncViewport(m.currentPage())
	m.registerHandlers()
	return m
}

func (m *Model) initialPage(requested string) int {
	trimmed := strings.ToLower(strings.TrimSpace(requested))
	if trimmed != "" {
		for i, p := range m.pages {
			if strings.ToLower(p.ID) == trimmed || strings.ToLower(p.Title) == trimmed {
				return i
			}
		}
		m.errMsg = fmt.Sprintf("Unknown category %q", requested)
	}
	if m.recents.Len() > 0 || len(m.pages) == 1 {
		return 0
	}
	return 1
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	return m.filterCursor.Focus()
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmds := make([]tea.Cmd, 0, 4)
	if cmd := m.updateFilterCursorModel(msg); cmd != nil {
		cmds = append(cmds, cmd)
	}
	if handler := m.handlerFor(msg); handler != nil {
		if cmd := handler(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return m, m.finishUpdate(cmds)
}

// Picked reports how many glyphs were picked during the session.
func (m *Model) Picked() int {
	return m.picked
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.MouseMsg{}):      m.handleMouseMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
		reflect.TypeOf(command.Result{}):    m.handleCommandResultMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

func (m *Model) finishUpdate(cmds []tea.Cmd) tea.Cmd {
	if m.filterCursorDirty {
		m.filterCursorDirty = false
		m.filterCursor.Blink = false
		if cmd := m.filterCursor.BlinkCmd(); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}
