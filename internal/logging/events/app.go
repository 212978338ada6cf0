// Package events exposes typed tracers so call sites never spell out raw
// trace event names.
package events

import "github.com/atomicstack/tmux-popup-json/internal/logging"

type AppTracer struct{}

var App = AppTracer{}

func (AppTracer) Start(payload map[string]interface{}) {
	logging.Trace("app.start", payload)
}

func (AppTracer) InitialInput(source string, size int) {
	logging.Trace("app.initial-input", map[string]interface{}{"source": source, "bytes": size})
}

func (AppTracer) Exit(reason string) {
	logging.Trace("app.exit", map[string]interface{}{"reason": reason})
}
