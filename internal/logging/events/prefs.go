package events

import "github.com/atomicstack/tmux-popup-glyphs/internal/logging"

type PrefsTracer struct{}

var Prefs = PrefsTracer{}

func (PrefsTracer) Open(kind, location string) {
	logging.Trace("prefs.open", map[string]interface{}{"kind": kind, "location": location})
}

func (PrefsTracer) Read(kind, key string, found bool) {
	logging.Trace("prefs.read", map[string]interface{}{"kind": kind, "key": key, "found": found})
}

func (PrefsTracer) Write(kind, key string, bytes int) {
	logging.Trace("prefs.write", map[string]interface{}{"kind": kind, "key": key, "bytes": bytes})
}

func (PrefsTracer) Retry(kind, op string, attempt int, err error) {
	payload := map[string]interface{}{"kind": kind, "op": op, "attempt": attempt}
	if err != nil {
		payload["error"] = err.Error()
	}
	logging.Trace("prefs.retry", payload)
}
