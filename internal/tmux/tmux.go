// Package tmux is the thin control-mode layer the picker uses to type glyphs
// into a pane and to keep user options on the server.
package tmux

import (
	"fmt"
	"os"
	"os/user"
	"path/filepath"
	"strings"

	"github.com/atomicstack/tmux-popup-glyphs/internal/logging/events"
)

// ResolveSocketPath picks the tmux socket from the flag, the environment or
// the tmux default location, in that order.
func ResolveSocketPath(flagValue string) (string, error) {
	if flagValue != "" {
		return flagValue, nil
	}
	if envSocket := os.Getenv("TMUX_POPUP_GLYPHS_SOCKET"); envSocket != "" {
		return envSocket, nil
	}
	if tmuxEnv := os.Getenv("TMUX"); tmuxEnv != "" {
		parts := strings.Split(tmuxEnv, ",")
		if len(parts) > 0 && parts[0] != "" {
			return parts[0], nil
		}
	}
	baseDir := os.Getenv("TMUX_TMPDIR")
	if baseDir == "" {
		baseDir = "/tmp"
	}
	u, err := user.Current()
	if err != nil {
		return "", err
	}
	return filepath.Join(baseDir, fmt.Sprintf("tmux-%s", u.Uid), "default"), nil
}

// ResolveTarget returns the pane glyphs are typed into. The flag wins over
// $TMUX_PANE; a named target is checked against the server and returned as
// its pane id. An empty result means the client's active pane.
func ResolveTarget(socketPath, flagValue string) (string, error) {
	target := strings.TrimSpace(flagValue)
	source := events.TargetFromFlag
	if target == "" {
		target = strings.TrimSpace(os.Getenv("TMUX_PANE"))
		source = events.TargetFromEnv
	}
	if target == "" {
		events.Tmux.Target(events.TargetNone, "", "")
		return "", nil
	}
	client, err := newTmux(socketPath)
	if err != nil {
		return "", err
	}
	id, err := client.DisplayMessage(target, "#{pane_id}")
	if err != nil {
		return "", fmt.Errorf("resolve target %s: %w", target, err)
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return "", fmt.Errorf("resolve target %s: pane not found", target)
	}
	events.Tmux.Target(source, target, id)
	return id, nil
}

// SendText types text literally into target.
func SendText(socketPath, target, text string) error {
	if text == "" {
		return nil
	}
	client, err := newTmux(socketPath)
	if err != nil {
		return err
	}
	args := []string{"send-keys", "-l"}
	if t := strings.TrimSpace(target); t != "" {
		args = append(args, "-t", t)
	}
	args = append(args, text)
	_, err = client.Command(args...)
	events.Tmux.Send(target, text, err)
	return err
}

// Options reads and writes global user options on one server.
type Options struct {
	socketPath string
}

func NewOptions(socketPath string) *Options {
	return &Options{socketPath: socketPath}
}

// ShowOption returns the value of a global option, or "" when it is unset.
func (o *Options) ShowOption(name string) (string, error) {
	client, err := newTmux(o.socketPath)
	if err != nil {
		return "", err
	}
	out, err := client.Command("show-options", "-gqv", name)
	events.Tmux.Option("show", name, err)
	if err != nil {
		return "", err
	}
	return strings.TrimRight(out, "\r\n"), nil
}

// SetOption sets a global option.
func (o *Options) SetOption(name, value string) error {
	client, err := newTmux(o.socketPath)
	if err != nil {
		return err
	}
	_, err = client.Command("set-option", "-gq", name, value)
	events.Tmux.Option("set", name, err)
	return err
}
