package prefs

import (
	"errors"
	"path/filepath"
	"testing"
)

func TestParseKind(t *testing.T) {
	cases := map[string]Kind{"": KindSQLite, "sqlite": KindSQLite, " TMUX ": KindTmux, "memory": KindMemory}
	for input, want := range cases {
		got, err := ParseKind(input)
		if err != nil {
			t.Fatalf("ParseKind(%q) returned error %v", input, err)
		}
		if got != want {
			t.Fatalf("ParseKind(%q): expected %q, got %q", input, want, got)
		}
	}
	if _, err := ParseKind("redis"); err == nil {
		t.Fatalf("expected error for unknown kind")
	}
}

func TestMemoryStoreRoundTrip(t *testing.T) {
	s := NewMemoryStore()
	if _, err := s.Read("recents"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if err := s.Write("recents", `[1,"a"]`); err != nil {
		t.Fatalf("write: %v", err)
	}
	got, err := s.Read("recents")
	if err != nil || got != `[1,"a"]` {
		t.Fatalf("expected stored value, got %q err=%v", got, err)
	}
	if s.Writes("recents") != 1 {
		t.Fatalf("expected one write, got %d", s.Writes("recents"))
	}
	if err := s.Write(" ", "x"); err == nil {
		t.Fatalf("expected empty key to be rejected")
	}
}

func TestSQLiteStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state", "prefs.db")
	s, err := OpenSQLite(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })

	if _, err := s.Read("recents"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if err := s.Write("recents", `["👍🏽",128512]`); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := s.Write("recents", `[128512]`); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	got, err := s.Read("recents")
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if got != `[128512]` {
		t.Fatalf("expected overwritten value, got %q", got)
	}
}

func TestSQLiteStoreSurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.db")
	s, err := OpenSQLite(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if err := s.Write("recents", `["x"]`); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	reopened, err := OpenSQLite(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer reopened.Close()
	got, err := reopened.Read("recents")
	if err != nil || got != `["x"]` {
		t.Fatalf("expected persisted value, got %q err=%v", got, err)
	}
}

func TestOpenSQLiteRejectsDirectory(t *testing.T) {
	if _, err := OpenSQLite(t.TempDir()); err == nil {
		t.Fatalf("expected directory path to be rejected")
	}
	if _, err := OpenSQLite("  "); err == nil {
		t.Fatalf("expected empty path to be rejected")
	}
}

type fakeOptions struct {
	values  map[string]string
	setErr  error
	showErr error
}

func (f *fakeOptions) ShowOption(name string) (string, error) {
	if f.showErr != nil {
		return "", f.showErr
	}
	return f.values[name], nil
}

func (f *fakeOptions) SetOption(name, value string) error {
	if f.setErr != nil {
		return f.setErr
	}
	if f.values == nil {
		f.values = map[string]string{}
	}
	f.values[name] = value
	return nil
}

func TestTmuxStoreUsesPrefixedOptions(t *testing.T) {
	client := &fakeOptions{}
	s := NewTmuxStore(client)
	if _, err := s.Read("recents"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for unset option, got %v", err)
	}
	if err := s.Write("recents", `[1]`); err != nil {
		t.Fatalf("write: %v", err)
	}
	if client.values["@popup-glyphs-recents"] != `[1]` {
		t.Fatalf("expected prefixed option, got %#v", client.values)
	}
	client.values["@popup-glyphs-recents"] = "[1]\n"
	got, err := s.Read("recents")
	if err != nil || got != "[1]" {
		t.Fatalf("expected trimmed value, got %q err=%v", got, err)
	}
}

func TestTmuxStoreWrapsErrors(t *testing.T) {
	boom := errors.New("boom")
	s := NewTmuxStore(&fakeOptions{setErr: boom, showErr: boom})
	if err := s.Write("recents", "[]"); !errors.Is(err, boom) {
		t.Fatalf("expected wrapped set error, got %v", err)
	}
	if _, err := s.Read("recents"); !errors.Is(err, boom) {
		t.Fatalf("expected wrapped show error, got %v", err)
	}
}
