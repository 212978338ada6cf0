package events

import "github.com/atomicstack/tmux-popup-json/internal/logging"

type UITracer struct{}

type SearchTracer struct{}

type CommandTracer struct{}

var (
	UI      = UITracer{}
	Search  = SearchTracer{}
	Command = CommandTracer{}
)

func (UITracer) Focus(pane string) {
	logging.Trace("ui.focus", map[string]interface{}{"pane": pane})
}

func (UITracer) Resize(width, height int) {
	logging.Trace("ui.resize", map[string]interface{}{"width": width, "height": height})
}

func (UITracer) Help(visible bool) {
	logging.Trace("ui.help", map[string]interface{}{"visible": visible})
}

func (UITracer) Mouse(action string, row int) {
	logging.Trace("ui.mouse", map[string]interface{}{"action": action, "row": row})
}

func (SearchTracer) Start() {
	logging.Trace("search.start", nil)
}

func (SearchTracer) Update(query string, match string) {
	logging.Trace("search.update", map[string]interface{}{"query": query, "match": match})
}

func (SearchTracer) Commit(query string, match string) {
	logging.Trace("search.commit", map[string]interface{}{"query": query, "match": match})
}

func (SearchTracer) Cancel(query string) {
	logging.Trace("search.cancel", map[string]interface{}{"query": query})
}

func (CommandTracer) Dispatch(name string) {
	logging.Trace("command.dispatch", map[string]interface{}{"command": name})
}

func (CommandTracer) Queue(id, label string) {
	logging.Trace("command.queue", map[string]interface{}{"id": id, "label": label})
}

func (CommandTracer) Skip(id, label string) {
	logging.Trace("command.skip", map[string]interface{}{"id": id, "label": label})
}

func (CommandTracer) Result(id, label, msgType string) {
	logging.Trace("command.result", map[string]interface{}{"id": id, "label": label, "msg": msgType})
}
