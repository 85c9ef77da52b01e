package events

import "github.com/atomicstack/tmux-popup-glyphs/internal/logging"

type RecentsTracer struct{}

var Recents = RecentsTracer{}

func (RecentsTracer) Add(cache string, code int, label string, front bool, size int) {
	logging.Trace("recents.add", map[string]interface{}{
		"cache": cache,
		"code":  code,
		"label": label,
		"front": front,
		"size":  size,
	})
}

func (RecentsTracer) Evict(cache string, code int, label string) {
	logging.Trace("recents.evict", map[string]interface{}{"cache": cache, "code": code, "label": label})
}

func (RecentsTracer) Pending(cache string, queued int) {
	logging.Trace("recents.pending", map[string]interface{}{"cache": cache, "queued": queued})
}

func (RecentsTracer) Flush(cache string, drained int) {
	logging.Trace("recents.flush", map[string]interface{}{"cache": cache, "drained": drained})
}

func (RecentsTracer) Persist(cache, key string, size int) {
	logging.Trace("recents.persist", map[string]interface{}{"cache": cache, "key": key, "size": size})
}

func (RecentsTracer) PersistError(cache string, err error) {
	if err == nil {
		return
	}
	logging.Trace("recents.persist-error", map[string]interface{}{"cache": cache, "error": err.Error()})
}

func (RecentsTracer) Load(cache string, tokens, restored int) {
	logging.Trace("recents.load", map[string]interface{}{"cache": cache, "tokens": tokens, "restored": restored})
}

func (RecentsTracer) DropToken(cache, token, reason string) {
	logging.Trace("recents.drop-token", map[string]interface{}{"cache": cache, "token": token, "reason": reason})
}
