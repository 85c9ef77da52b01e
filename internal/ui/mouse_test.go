package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func click(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
}

func TestClickPicksGridCell(t *testing.T) {
	f := newFixture(t, Options{})
	f.harness.Send(click(5, 1))
	if len(f.sent.texts) != 1 || f.sent.texts[0] != "😂" {
		t.Fatalf("expected joy typed, got %q", f.sent.texts)
	}
	if !f.harness.Quit() {
		t.Fatalf("expected quit after click pick")
	}
	if f.cache.Len() != 1 {
		t.Fatalf("expected the click recorded, got %d", f.cache.Len())
	}
}

func TestClickOutsideCellsIgnored(t *testing.T) {
	f := newFixture(t, Options{})
	f.harness.Send(click(5, 2))
	f.harness.Send(click(40, 1))
	if len(f.sent.texts) != 0 {
		t.Fatalf("expected no picks, got %q", f.sent.texts)
	}
	f.harness.Send(tea.MouseMsg{X: 1, Y: 1, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})
	if len(f.sent.texts) != 0 {
		t.Fatalf("release should not pick")
	}
}

func TestClickRecentsUsesCacheCells(t *testing.T) {
	f := newFixture(t, Options{}, grinning, joy, wink)
	f.harness.Send(click(9, 1))
	if len(f.sent.texts) != 1 || f.sent.texts[0] != "😉" {
		t.Fatalf("expected wink typed, got %q", f.sent.texts)
	}
	if front := f.cache.View().At(0).Item; !front.Equal(wink) {
		t.Fatalf("expected wink moved to the front, got %+v", front)
	}
}

func TestClickTabSwitchesCategory(t *testing.T) {
	f := newFixture(t, Options{})
	h := f.harness
	// " Recents │ Smileys │ Symbols "
	h.Send(click(22, 0))
	if got := h.Model().currentPage().ID; got != "symbols" {
		t.Fatalf("expected symbols, got %q", got)
	}
	h.Send(click(3, 0))
	if !h.Model().onRecents() {
		t.Fatalf("expected recents")
	}
	h.Send(click(9, 0))
	if !h.Model().onRecents() {
		t.Fatalf("separator click should not switch")
	}
}

func TestWheelMovesCursor(t *testing.T) {
	f := newFixture(t, Options{})
	h := f.harness
	h.Send(tea.MouseMsg{Button: tea.MouseButtonWheelDown, Action: tea.MouseActionPress})
	if got := h.Model().currentPage().Cursor; got != 3 {
		t.Fatalf("expected wheel down to move a row, got %d", got)
	}
	h.Send(tea.MouseMsg{Button: tea.MouseButtonWheelUp, Action: tea.MouseActionPress})
	if got := h.Model().currentPage().Cursor; got != 0 {
		t.Fatalf("expected wheel up to move back, got %d", got)
	}
}
