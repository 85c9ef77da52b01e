package prefs

import (
	"sync"

	"github.com/atomicstack/tmux-popup-glyphs/internal/logging/events"
)

// MemoryStore keeps values in process memory.
type MemoryStore struct {
	mu     sync.Mutex
	values map[string]string
	writes map[string]int
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		values: make(map[string]string),
		writes: make(map[string]int),
	}
}

func (s *MemoryStore) Read(key string) (string, error) {
	key, err := cleanKey(key)
	if err != nil {
		return "", err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	value, ok := s.values[key]
	events.Prefs.Read(string(KindMemory), key, ok)
	if !ok {
		return "", ErrNotFound
	}
	return value, nil
}

func (s *MemoryStore) Write(key, value string) error {
	key, err := cleanKey(key)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
	s.writes[key]++
	events.Prefs.Write(string(KindMemory), key, len(value))
	return nil
}

// Writes reports how many times key has been written.
func (s *MemoryStore) Writes(key string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.writes[key]
}

func (s *MemoryStore) Close() error {
	return nil
}
