package tmux

import (
	"os/exec"
	"strings"
	"testing"
	"time"

	"github.com/atomicstack/tmux-popup-glyphs/internal/prefs"
	testutil "github.com/atomicstack/tmux-popup-glyphs/internal/testutil"
)

func TestSendTextIntegration(t *testing.T) {
	testutil.RequireTmux(t)
	socket, cleanup, logDir := testutil.StartTmuxServer(t)
	defer cleanup()
	t.Cleanup(func() {
		Shutdown()
		testutil.AssertNoServerCrash(t, logDir)
	})

	paneOut, err := exec.Command("tmux", "-S", socket, "display-message", "-p", "-t", testutil.SessionName, "#{pane_id}").Output()
	if err != nil {
		t.Skipf("skipping: unable to locate test pane (%v)", err)
	}
	pane := strings.TrimSpace(string(paneOut))

	resolved, err := ResolveTarget(socket, pane)
	if err != nil {
		t.Fatalf("ResolveTarget failed: %v", err)
	}
	if resolved != pane {
		t.Fatalf("expected %q, got %q", pane, resolved)
	}

	if err := exec.Command("tmux", "-S", socket, "respawn-pane", "-k", "-t", pane, "cat").Run(); err != nil {
		t.Skipf("skipping: unable to respawn pane (%v)", err)
	}
	if err := SendText(socket, pane, "🚀→"); err != nil {
		t.Fatalf("SendText failed: %v", err)
	}

	deadline := time.Now().Add(2 * time.Second)
	for {
		content, err := testutil.CapturePane(t, socket, pane)
		if err == nil && strings.Contains(content, "🚀→") {
			break
		}
		if time.Now().After(deadline) {
			t.Fatalf("expected pane to contain sent glyphs, got %q (%v)", content, err)
		}
		time.Sleep(50 * time.Millisecond)
	}
}

func TestOptionsBackPrefsStoreIntegration(t *testing.T) {
	testutil.RequireTmux(t)
	socket, cleanup, logDir := testutil.StartTmuxServer(t)
	defer cleanup()
	t.Cleanup(func() {
		Shutdown()
		testutil.AssertNoServerCrash(t, logDir)
	})

	store := prefs.NewTmuxStore(NewOptions(socket))
	if _, err := store.Read("recents"); err != prefs.ErrNotFound {
		t.Fatalf("expected ErrNotFound before first write, got %v", err)
	}
	value := `[128512,"👍🏽"]`
	if err := store.Write("recents", value); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	got, err := store.Read("recents")
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if got != value {
		t.Fatalf("expected %q, got %q", value, got)
	}
}
