// Package prefs provides the key-value stores that hold persisted picker
// state, one string value per key.
package prefs

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotFound is returned by Read when the key has never been written.
var ErrNotFound = errors.New("prefs: key not found")

// Store reads and writes string values by key.
type Store interface {
	Read(key string) (string, error)
	Write(key, value string) error
	Close() error
}

// Kind names a Store implementation.
type Kind string

const (
	KindSQLite Kind = "sqlite"
	KindTmux   Kind = "tmux"
	KindMemory Kind = "memory"
)

// ParseKind validates a store kind name.
func ParseKind(value string) (Kind, error) {
	switch kind := Kind(strings.ToLower(strings.TrimSpace(value))); kind {
	case KindSQLite, KindTmux, KindMemory:
		return kind, nil
	case "":
		return KindSQLite, nil
	default:
		return "", fmt.Errorf("unknown store kind %q (want sqlite, tmux or memory)", value)
	}
}

func cleanKey(key string) (string, error) {
	trimmed := strings.TrimSpace(key)
	if trimmed == "" {
		return "", fmt.Errorf("prefs key must not be empty")
	}
	return trimmed, nil
}
