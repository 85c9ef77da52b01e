package app

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/atomicstack/tmux-popup-glyphs/internal/catalog"
	"github.com/atomicstack/tmux-popup-glyphs/internal/logging"
	"github.com/atomicstack/tmux-popup-glyphs/internal/logging/events"
	"github.com/atomicstack/tmux-popup-glyphs/internal/prefs"
	"github.com/atomicstack/tmux-popup-glyphs/internal/recents"
	"github.com/atomicstack/tmux-popup-glyphs/internal/tmux"
	"github.com/atomicstack/tmux-popup-glyphs/internal/ui"
	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"
)

// Config describes user-provided application options.
type Config struct {
	SocketPath  string
	Width       int
	Height      int
	ShowFooter  bool
	Verbose     bool
	CatalogPath string
	Store       prefs.Kind
	StorePath   string
	Recents     int
	Target      string
	Category    string
	List        bool
}

const (
	recentsKey   = "recents"
	defaultWidth = 40
	appDirName   = "tmux-popup-glyphs"
)

// Session bundles the catalog, the preference store and the recents cache
// built over them.
type Session struct {
	Catalog *catalog.Catalog
	Cache   *recents.Cache
	store   prefs.Store
}

// Open loads the catalog, opens the configured store and restores the
// recents cache. The catalog is complete before the cache loads.
func Open(cfg Config, socketPath string) (*Session, error) {
	cat, err := catalog.Load(cfg.CatalogPath)
	if err != nil {
		return nil, err
	}
	source := cfg.CatalogPath
	if source == "" {
		source = "builtin"
	}
	events.App.Catalog(source, len(cat.Categories()), cat.Len())

	metrics, err := cat.Metrics(viewportWidth(cfg.Width), 0)
	if err != nil {
		return nil, fmt.Errorf("grid metrics: %w", err)
	}
	store, err := openStore(cfg, socketPath)
	if err != nil {
		return nil, err
	}
	capacity := cfg.Recents
	if capacity < 1 {
		capacity = 1
	}
	cache := recents.New(recents.Options{
		Name:       recentsKey,
		Capacity:   capacity,
		Metrics:    metrics,
		Persistent: true,
		Key:        recentsKey,
		Prefs:      store,
	})
	cache.Load(recents.Catalogs{cat})
	return &Session{Catalog: cat, Cache: cache, store: store}, nil
}

// Close releases the preference store.
func (s *Session) Close() error {
	if s == nil || s.store == nil {
		return nil
	}
	return s.store.Close()
}

// Run bootstraps and executes the Bubble Tea program, or prints the recents
// table when List is set.
func Run(cfg Config) error {
	socketPath, err := tmux.ResolveSocketPath(cfg.SocketPath)
	if err != nil {
		return fmt.Errorf("resolve socket path: %w", err)
	}
	defer tmux.Shutdown()

	session, err := Open(cfg, socketPath)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := session.Close(); cerr != nil {
			logging.Error(fmt.Errorf("close store: %w", cerr))
		}
	}()

	if cfg.List {
		return WriteList(os.Stdout, session.Cache)
	}

	target, err := tmux.ResolveTarget(socketPath, cfg.Target)
	if err != nil {
		return err
	}
	send := func(text string) error {
		return tmux.SendText(socketPath, target, text)
	}
	model := ui.NewModel(session.Catalog, session.Cache, send, ui.Options{
		Width:           cfg.Width,
		Height:          cfg.Height,
		ShowFooter:      cfg.ShowFooter,
		Verbose:         cfg.Verbose,
		InitialCategory: cfg.Category,
	})
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err = program.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		err = nil
	}
	events.App.Exit(model.Picked(), err)
	return err
}

func openStore(cfg Config, socketPath string) (prefs.Store, error) {
	kind, err := prefs.ParseKind(string(cfg.Store))
	if err != nil {
		return nil, err
	}
	switch kind {
	case prefs.KindMemory:
		return prefs.NewMemoryStore(), nil
	case prefs.KindTmux:
		return prefs.NewTmuxStore(tmux.NewOptions(socketPath)), nil
	default:
		path := cfg.StorePath
		if path == "" {
			path, err = DefaultStorePath()
			if err != nil {
				return nil, err
			}
		}
		return prefs.OpenSQLite(path)
	}
}

// DefaultStorePath returns the sqlite database location under the user's
// config directory.
func DefaultStorePath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("locate config dir: %w", err)
	}
	return filepath.Join(dir, appDirName, "prefs.db"), nil
}

// viewportWidth returns the grid width in cells: the configured width, the
// terminal width, or a fallback when neither is known.
func viewportWidth(configured int) int {
	if configured > 0 {
		return configured
	}
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		return w
	}
	return defaultWidth
}
