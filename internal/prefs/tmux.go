package prefs

import (
	"fmt"
	"strings"

	"github.com/atomicstack/tmux-popup-glyphs/internal/logging/events"
)

const tmuxOptionPrefix = "@popup-glyphs-"

// OptionClient reads and writes global tmux user options.
type OptionClient interface {
	ShowOption(name string) (string, error)
	SetOption(name, value string) error
}

// TmuxStore keeps values in global tmux user options, so they live as long
// as the tmux server does.
type TmuxStore struct {
	client OptionClient
}

func NewTmuxStore(client OptionClient) *TmuxStore {
	events.Prefs.Open(string(KindTmux), tmuxOptionPrefix+"*")
	return &TmuxStore{client: client}
}

// OptionName returns the tmux option that holds key.
func OptionName(key string) string {
	return tmuxOptionPrefix + strings.TrimSpace(key)
}

func (s *TmuxStore) Read(key string) (string, error) {
	key, err := cleanKey(key)
	if err != nil {
		return "", err
	}
	value, err := s.client.ShowOption(OptionName(key))
	if err != nil {
		return "", fmt.Errorf("show option %s: %w", OptionName(key), err)
	}
	value = strings.TrimRight(value, "\r\n")
	if value == "" {
		events.Prefs.Read(string(KindTmux), key, false)
		return "", ErrNotFound
	}
	events.Prefs.Read(string(KindTmux), key, true)
	return value, nil
}

func (s *TmuxStore) Write(key, value string) error {
	key, err := cleanKey(key)
	if err != nil {
		return err
	}
	if err := s.client.SetOption(OptionName(key), value); err != nil {
		return fmt.Errorf("set option %s: %w", OptionName(key), err)
	}
	events.Prefs.Write(string(KindTmux), key, len(value))
	return nil
}

func (s *TmuxStore) Close() error {
	return nil
}
