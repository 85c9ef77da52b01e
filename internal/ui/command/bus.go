package command

import (
	"github.com/atomicstack/tmux-popup-glyphs/internal/logging/events"
	tea "github.com/charmbracelet/bubbletea"
)

// Request encapsulates an action invocation.
type Request struct {
	ID    string
	Label string
	Run   func() error
	// Stay keeps the popup open after a successful run.
	Stay bool
}

// Result is delivered back to the model once a request has run.
type Result struct {
	ID    string
	Label string
	Err   error
	Stay  bool
}

// Bus coordinates the execution of picker actions.
type Bus struct{}

// New initialises a command bus instance.
func New() *Bus {
	return &Bus{}
}

// Execute wraps an action into a Bubble Tea command while emitting trace logs.
func (b *Bus) Execute(req Request) tea.Cmd {
	events.Command.Queue(req.ID, req.Label)
	return func() tea.Msg {
		if req.Run == nil {
			events.Command.Skip(req.ID, req.Label)
			return nil
		}
		err := req.Run()
		events.Command.Result(req.ID, req.Label, err)
		return Result{ID: req.ID, Label: req.Label, Err: err, Stay: req.Stay}
	}
}
