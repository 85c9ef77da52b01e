package events

import "github.com/atomicstack/tmux-popup-glyphs/internal/logging"

type TmuxTracer struct{}

type targetSource string

const (
	TargetFromFlag targetSource = "flag"
	TargetFromEnv  targetSource = "env"
	TargetNone     targetSource = "none"
)

var Tmux = TmuxTracer{}

func (TmuxTracer) Target(source targetSource, target, resolved string) {
	logging.Trace("tmux.target", map[string]interface{}{"source": string(source), "target": target, "resolved": resolved})
}

func (TmuxTracer) Send(target, text string, err error) {
	payload := map[string]interface{}{"target": target, "text": text}
	if err != nil {
		payload["error"] = err.Error()
	}
	logging.Trace("tmux.send", payload)
}

func (TmuxTracer) Option(op, name string, err error) {
	payload := map[string]interface{}{"op": op, "name": name}
	if err != nil {
		payload["error"] = err.Error()
	}
	logging.Trace("tmux.option", payload)
}

func (TmuxTracer) Shutdown(socket string) {
	logging.Trace("tmux.shutdown", map[string]interface{}{"socket": socket})
}
