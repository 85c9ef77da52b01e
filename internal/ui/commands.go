package ui

import (
	"fmt"

	"github.com/atomicstack/tmux-popup-glyphs/internal/logging"
	"github.com/atomicstack/tmux-popup-glyphs/internal/logging/events"
	"github.com/atomicstack/tmux-popup-glyphs/internal/ui/command"
	tea "github.com/charmbracelet/bubbletea"
)

func (m *Model) handleCommandResultMsg(msg tea.Msg) tea.Cmd {
	result, ok := msg.(command.Result)
	if !ok {
		return nil
	}
	m.busy = false
	m.pendingLabel = ""
	if result.Err != nil {
		m.errMsg = result.Err.Error()
		m.forceClearInfo()
		logging.Error(fmt.Errorf("send %s: %w", result.Label, result.Err))
		events.Action.Error(result.Err)
		return nil
	}
	info := fmt.Sprintf("Typed %s", result.Label)
	events.Action.Success(info)
	if result.Stay {
		if m.verbose {
			m.setInfo(info)
		}
		return nil
	}
	return m.quit()
}
