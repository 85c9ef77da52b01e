package events

import "github.com/atomicstack/tmux-popup-glyphs/internal/logging"

type UITracer struct{}

type FilterTracer struct{}

type ActionTracer struct{}

type CommandTracer struct{}

var (
	UI      = UITracer{}
	Filter  = FilterTracer{}
	Action  = ActionTracer{}
	Command = CommandTracer{}
)

func (UITracer) CategoryEnter(pageID string, items int) {
	logging.Trace("category.enter", map[string]interface{}{"page": pageID, "items": items})
}

func (UITracer) Cursor(pageID string, cursor int) {
	logging.Trace("grid.cursor", map[string]interface{}{"page": pageID, "cursor": cursor})
}

func (UITracer) Pick(pageID string, code int, label string) {
	logging.Trace("grid.pick", map[string]interface{}{"page": pageID, "code": code, "label": label})
}

func (UITracer) Click(pageID string, x, y int, hit bool) {
	logging.Trace("grid.click", map[string]interface{}{"page": pageID, "x": x, "y": y, "hit": hit})
}

func (ActionTracer) Error(err error) {
	if err == nil {
		return
	}
	logging.Trace("action.error", map[string]interface{}{"error": err.Error()})
}

func (ActionTracer) Success(info string) {
	logging.Trace("action.success", map[string]interface{}{"info": info})
}

func (FilterTracer) Cleared(pageID string) {
	logging.Trace("filter.clear", map[string]interface{}{"page": pageID})
}

func (FilterTracer) WordBackspace(pageID, filter string) {
	logging.Trace("filter.word-backspace", map[string]interface{}{"page": pageID, "filter": filter})
}

func (FilterTracer) Cursor(pageID string, pos int) {
	logging.Trace("filter.cursor", map[string]interface{}{"page": pageID, "cursor": pos})
}

func (FilterTracer) Append(pageID, filter string) {
	logging.Trace("filter.append", map[string]interface{}{"page": pageID, "filter": filter})
}

func (FilterTracer) Backspace(pageID, filter string) {
	logging.Trace("filter.backspace", map[string]interface{}{"page": pageID, "filter": filter})
}

func (CommandTracer) Queue(id, label string) {
	logging.Trace("command.queue", map[string]interface{}{"id": id, "label": label})
}

func (CommandTracer) Skip(id, label string) {
	logging.Trace("command.skip", map[string]interface{}{"id": id, "label": label})
}

func (CommandTracer) Result(id, label string, err error) {
	payload := map[string]interface{}{"id": id, "label": label}
	if err != nil {
		payload["error"] = err.Error()
	}
	logging.Trace("command.result", payload)
}
