package events

import "github.com/atomicstack/tmux-popup-json/internal/logging"

type ClipboardTracer struct{}

var Clipboard = ClipboardTracer{}

func (ClipboardTracer) Attempt(source string) {
	logging.Trace("clipboard.attempt", map[string]interface{}{"source": source})
}

func (ClipboardTracer) Failure(source string, err error) {
	payload := map[string]interface{}{"source": source}
	if err != nil {
		payload["error"] = err.Error()
	}
	logging.Trace("clipboard.failure", payload)
}

func (ClipboardTracer) Success(source string, size int) {
	logging.Trace("clipboard.success", map[string]interface{}{"source": source, "bytes": size})
}

func (ClipboardTracer) Unavailable() {
	logging.Trace("clipboard.unavailable", nil)
}
