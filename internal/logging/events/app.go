package events

import "github.com/atomicstack/tmux-popup-glyphs/internal/logging"

type AppTracer struct{}

var App = AppTracer{}

func (AppTracer) Start(payload map[string]interface{}) {
	logging.Trace("app.start", payload)
}

func (AppTracer) Catalog(source string, categories, glyphs int) {
	logging.Trace("app.catalog", map[string]interface{}{
		"source":     source,
		"categories": categories,
		"glyphs":     glyphs,
	})
}

func (AppTracer) Exit(picked int, err error) {
	payload := map[string]interface{}{"picked": picked}
	if err != nil {
		payload["error"] = err.Error()
	}
	logging.Trace("app.exit", payload)
}
