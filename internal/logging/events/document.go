package events

import "github.com/atomicstack/tmux-popup-json/internal/logging"

type DocumentTracer struct{}

type TreeTracer struct{}

var (
	Document = DocumentTracer{}
	Tree     = TreeTracer{}
)

func (DocumentTracer) Parsed(inputBytes, nodes, depth int) {
	logging.Trace("document.parsed", map[string]interface{}{"bytes": inputBytes, "nodes": nodes, "depth": depth})
}

func (DocumentTracer) Invalid(inputBytes int, message string, offset int64) {
	logging.Trace("document.invalid", map[string]interface{}{"bytes": inputBytes, "error": message, "offset": offset})
}

func (DocumentTracer) Emptied() {
	logging.Trace("document.empty", nil)
}

func (DocumentTracer) Formatted(outputBytes int) {
	logging.Trace("document.format", map[string]interface{}{"bytes": outputBytes})
}

func (TreeTracer) Toggle(path string, collapsed bool) {
	logging.Trace("tree.toggle", map[string]interface{}{"path": path, "collapsed": collapsed})
}

func (TreeTracer) ExpandAll(changed int) {
	logging.Trace("tree.expand-all", map[string]interface{}{"changed": changed})
}

func (TreeTracer) CollapseAll(changed int) {
	logging.Trace("tree.collapse-all", map[string]interface{}{"changed": changed})
}

func (TreeTracer) Cursor(path string, cursor int) {
	logging.Trace("tree.cursor", map[string]interface{}{"path": path, "cursor": cursor})
}
