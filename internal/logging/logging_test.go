package logging

import (
	"bufio"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func useTempLog(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "nested", "trace.log")
	Configure(path)
	t.Cleanup(func() {
		Configure("")
		SetTraceEnabled(false)
	})
	return path
}

func TestTraceDisabledWritesNothing(t *testing.T) {
	path := useTempLog(t)
	SetTraceEnabled(false)
	Trace("ignored", map[string]interface{}{"a": 1})
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("expected no log file, stat err=%v", err)
	}
}

func TestTraceWritesJSONLines(t *testing.T) {
	path := useTempLog(t)
	SetTraceEnabled(true)
	Trace("recents.add", map[string]interface{}{"cache": "recents"})
	Trace("recents.flush", nil)

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open log: %v", err)
	}
	defer f.Close()
	var events []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		var entry struct {
			Event string `json:"event"`
		}
		if err := json.Unmarshal(scanner.Bytes(), &entry); err != nil {
			t.Fatalf("invalid trace line %q: %v", scanner.Text(), err)
		}
		events = append(events, entry.Event)
	}
	if strings.Join(events, ",") != "recents.add,recents.flush" {
		t.Fatalf("unexpected events %v", events)
	}
}

func TestErrorAppendsMessage(t *testing.T) {
	path := useTempLog(t)
	Error(errors.New("persist failed"))
	Error(nil)
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(data), "persist failed") {
		t.Fatalf("expected error in log, got %q", string(data))
	}
	if strings.Count(string(data), "\n") != 1 {
		t.Fatalf("expected a single line, got %q", string(data))
	}
}
