package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/atomicstack/tmux-popup-glyphs/internal/app"
	"github.com/atomicstack/tmux-popup-glyphs/internal/prefs"
)

// Config captures runtime configuration for the application.
type Config struct {
	App     app.Config
	Logging Logging
	Flags   map[string]string
	Args    []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

const (
	envSocketPath = "TMUX_POPUP_GLYPHS_SOCKET"
	envWidth      = "TMUX_POPUP_GLYPHS_WIDTH"
	envHeight     = "TMUX_POPUP_GLYPHS_HEIGHT"
	envShowFooter = "TMUX_POPUP_GLYPHS_FOOTER"
	envVerbose    = "TMUX_POPUP_GLYPHS_VERBOSE"
	envTrace      = "TMUX_POPUP_GLYPHS_TRACE"
	envLogFile    = "TMUX_POPUP_GLYPHS_LOG_FILE"
	envCatalog    = "TMUX_POPUP_GLYPHS_CATALOG"
	envStore      = "TMUX_POPUP_GLYPHS_STORE"
	envStorePath  = "TMUX_POPUP_GLYPHS_STORE_PATH"
	envRecents    = "TMUX_POPUP_GLYPHS_RECENTS"
	envTarget     = "TMUX_POPUP_GLYPHS_TARGET"
	envCategory   = "TMUX_POPUP_GLYPHS_CATEGORY"
)

// DefaultRecents is the recents capacity used when none is configured.
const DefaultRecents = 32

// ErrInvalidRecents is returned when the recents capacity is below one.
var ErrInvalidRecents = errors.New("recents capacity must be >= 1")

// Load parses configuration from CLI arguments and environment variables.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)

	fs := flag.NewFlagSet("tmux-popup-glyphs", flag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))

	socket := fs.String("socket", envOrDefault(env, envSocketPath, ""), "path to the tmux socket (overrides environment detection)")
	width := fs.Int("width", envOrInt(env, envWidth, 0), "desired viewport width in cells (0 uses terminal width)")
	height := fs.Int("height", envOrInt(env, envHeight, 0), "desired viewport height in rows (0 uses terminal height)")
	footer := fs.Bool("footer", envOrBool(env, envShowFooter, false), "enable footer hint row (disabled by default)")
	trace := fs.Bool("trace", envOrBool(env, envTrace, false), "enable verbose JSON trace logging")
	verbose := fs.Bool("verbose", envOrBool(env, envVerbose, false), "print success messages for actions")
	logFile := fs.String("log-file", envOrDefault(env, envLogFile, ""), "path to the log file")
	catalogPath := fs.String("catalog", envOrDefault(env, envCatalog, ""), "path to a TOML glyph catalog (empty uses the built-in set)")
	store := fs.String("store", envOrDefault(env, envStore, string(prefs.KindSQLite)), "where recents are kept: sqlite, tmux or memory")
	storePath := fs.String("store-path", envOrDefault(env, envStorePath, ""), "sqlite database path (empty uses the user config dir)")
	recents := fs.Int("recents", envOrInt(env, envRecents, DefaultRecents), "number of recently used glyphs to keep")
	target := fs.String("target", envOrDefault(env, envTarget, ""), "pane that receives picked glyphs (defaults to $TMUX_PANE)")
	category := fs.String("category", envOrDefault(env, envCategory, ""), "category shown when the popup opens")
	list := fs.Bool("list", false, "print the stored recents and exit")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if *width < 0 {
		return Config{}, fmt.Errorf("width must be >= 0 (got %d)", *width)
	}
	if *height < 0 {
		return Config{}, fmt.Errorf("height must be >= 0 (got %d)", *height)
	}

	cfg := Config{
		App: app.Config{
			SocketPath:  *socket,
			Width:       *width,
			Height:      *height,
			ShowFooter:  *footer,
			Verbose:     *verbose,
			CatalogPath: *catalogPath,
			Store:       prefs.Kind(strings.ToLower(strings.TrimSpace(*store))),
			StorePath:   *storePath,
			Recents:     *recents,
			Target:      *target,
			Category:    *category,
			List:        *list,
		},
		Logging: Logging{
			FilePath: *logFile,
			Trace:    *trace,
		},
		Flags: map[string]string{
			"socket":    *socket,
			"width":     strconv.Itoa(*width),
			"height":    strconv.Itoa(*height),
			"footer":    strconv.FormatBool(*footer),
			"trace":     strconv.FormatBool(*trace),
			"verbose":   strconv.FormatBool(*verbose),
			"logFile":   *logFile,
			"catalog":   *catalogPath,
			"store":     *store,
			"storePath": *storePath,
			"recents":   strconv.Itoa(*recents),
			"target":    *target,
			"category":  *category,
			"list":      strconv.FormatBool(*list),
		},
		Args: append([]string(nil), args...),
	}

	return cfg, nil
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			continue
		}
		values[parts[0]] = parts[1]
	}
	return values
}

func envOrDefault(env map[string]string, key, fallback string) string {
	if v, ok := env[key]; ok {
		return v
	}
	return fallback
}

func envOrInt(env map[string]string, key string, fallback int) int {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrBool(env map[string]string, key string, fallback bool) bool {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}

// MustLoad returns configuration or exits.
func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	return cfg
}

// Validate rejects store kinds and capacities the application cannot use.
func Validate(cfg Config) error {
	if _, err := prefs.ParseKind(string(cfg.App.Store)); err != nil {
		return err
	}
	if cfg.App.Recents < 1 {
		return fmt.Errorf("%w (got %d)", ErrInvalidRecents, cfg.App.Recents)
	}
	return nil
}
