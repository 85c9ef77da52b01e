package tmux

import (
	"sync"

	gotmux "github.com/atomicstack/gotmuxcc/gotmuxcc"
	"github.com/atomicstack/tmux-popup-glyphs/internal/logging/events"
)

type tmuxClient interface {
	Command(parts ...string) (string, error)
	DisplayMessage(target, format string) (string, error)
	Close() error
}

var (
	clientMu     sync.Mutex
	cachedClient tmuxClient
	cachedSocket string

	// newTmux returns the shared control-mode connection for socketPath,
	// dialling a new one when the socket changes.
	newTmux = func(socketPath string) (tmuxClient, error) {
		clientMu.Lock()
		defer clientMu.Unlock()
		if cachedClient != nil && cachedSocket == socketPath {
			return cachedClient, nil
		}
		if cachedClient != nil {
			_ = cachedClient.Close()
			cachedClient = nil
		}
		var (
			client *gotmux.Tmux
			err    error
		)
		if socketPath != "" {
			client, err = gotmux.NewTmux(socketPath)
		} else {
			client, err = gotmux.DefaultTmux()
		}
		if err != nil {
			return nil, err
		}
		cachedClient = client
		cachedSocket = socketPath
		return client, nil
	}
)

// Shutdown closes the shared connection, if any.
func Shutdown() {
	clientMu.Lock()
	defer clientMu.Unlock()
	if cachedClient == nil {
		return
	}
	events.Tmux.Shutdown(cachedSocket)
	_ = cachedClient.Close()
	cachedClient = nil
	cachedSocket = ""
}
