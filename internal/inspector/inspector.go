// Package inspector owns the application state: the raw input text, the
// current document and what the display pane should show.
package inspector

import (
	"errors"
	"strings"

	"github.com/atomicstack/tmux-popup-json/internal/clipboard"
	"github.com/atomicstack/tmux-popup-json/internal/jsondoc"
	"github.com/atomicstack/tmux-popup-json/internal/logging/events"
	"github.com/atomicstack/tmux-popup-json/internal/tree"
)

// Mode selects what the display pane shows.
type Mode int

const (
	ModeEmpty Mode = iota
	ModeError
	ModeTree
)

func (m Mode) String() string {
	switch m {
	case ModeError:
		return "error"
	case ModeTree:
		return "tree"
	default:
		return "empty"
	}
}

// Status is the three-state validity indicator.
type Status int

const (
	StatusReady Status = iota
	StatusValid
	StatusInvalid
)

func (s Status) String() string {
	switch s {
	case StatusValid:
		return "Valid JSON"
	case StatusInvalid:
		return "Invalid JSON"
	default:
		return "Ready"
	}
}

// View is the display pane content. Err is set only in ModeError and Tree
// only in ModeTree.
type View struct {
	Mode Mode
	Err  *jsondoc.ParseError
	Tree *tree.Tree
}

// Message returns the parser diagnostic for ModeError.
func (v View) Message() string {
	if v.Err == nil {
		return ""
	}
	return v.Err.Error()
}

// State is the whole application state.
type State struct {
	Input    string
	Document *jsondoc.Value
	View     View
	Status   Status
}

// Transition computes the state that follows an edit of the raw input. A
// failed parse keeps the previous document.
func Transition(prev State, raw string) State {
	next := State{Input: raw, Document: prev.Document}
	if strings.TrimSpace(raw) == "" {
		next.Document = nil
		next.View = View{Mode: ModeEmpty}
		next.Status = StatusReady
		return next
	}
	doc, err := jsondoc.Parse(raw)
	if err != nil {
		var pe *jsondoc.ParseError
		if !errors.As(err, &pe) {
			pe = &jsondoc.ParseError{Msg: err.Error()}
		}
		next.View = View{Mode: ModeError, Err: pe}
		next.Status = StatusInvalid
		return next
	}
	next.Document = doc
	next.View = View{Mode: ModeTree, Tree: tree.Render(doc)}
	next.Status = StatusValid
	return next
}

// Controller applies user commands to a State.
type Controller struct {
	state State
}

// New returns a controller in the empty state.
func New() *Controller {
	return &Controller{state: State{View: View{Mode: ModeEmpty}, Status: StatusReady}}
}

// State returns a copy of the current state. The rendered tree is shared so
// collapse state set by the caller is preserved.
func (c *Controller) State() State { return c.state }

// Input returns the raw input text.
func (c *Controller) Input() string { return c.state.Input }

// Tree returns the rendered tree, or nil outside ModeTree.
func (c *Controller) Tree() *tree.Tree {
	if c.state.View.Mode != ModeTree {
		return nil
	}
	return c.state.View.Tree
}

// SetInput runs the input-changed transition for raw.
func (c *Controller) SetInput(raw string) {
	c.state = Transition(c.state, raw)
	switch c.state.View.Mode {
	case ModeTree:
		t := c.state.View.Tree
		events.Document.Parsed(len(raw), t.NodeCount(), t.Depth())
	case ModeError:
		events.Document.Invalid(len(raw), c.state.View.Err.Error(), c.state.View.Err.Offset)
	default:
		events.Document.Emptied()
	}
}

// Format rewrites the raw input as the canonical serialisation of the
// current document and returns it. The view is left as is. It reports false
// when no document is stored.
func (c *Controller) Format() (string, bool) {
	if c.state.Document == nil {
		events.Command.Skip("format", "no document")
		return "", false
	}
	text := jsondoc.Format(c.state.Document)
	c.state.Input = text
	events.Document.Formatted(len(text))
	return text, true
}

// Clear resets everything to the empty state.
func (c *Controller) Clear() {
	c.state = State{View: View{Mode: ModeEmpty}, Status: StatusReady}
	events.Document.Emptied()
}

// ExpandAll expands every node of the rendered tree.
func (c *Controller) ExpandAll() int {
	changed := tree.ExpandAll(c.Tree())
	events.Tree.ExpandAll(changed)
	return changed
}

// CollapseAll collapses every node of the rendered tree.
func (c *Controller) CollapseAll() int {
	changed := tree.CollapseAll(c.Tree())
	events.Tree.CollapseAll(changed)
	return changed
}

// ApplyPaste replaces the input with pasted text. Unavailable results leave
// the state untouched.
func (c *Controller) ApplyPaste(result clipboard.Result) bool {
	if !result.OK {
		return false
	}
	c.SetInput(result.Text)
	return true
}

// Command names a zero-argument user action.
type Command string

const (
	CommandFormat      Command = "format"
	CommandClear       Command = "clear"
	CommandExpandAll   Command = "expand-all"
	CommandCollapseAll Command = "collapse-all"
	CommandPaste       Command = "paste"
)

var dispatchTable = map[Command]func(*Controller) bool{
	CommandFormat: func(c *Controller) bool {
		_, ok := c.Format()
		return ok
	},
	CommandClear: func(c *Controller) bool {
		c.Clear()
		return true
	},
	CommandExpandAll: func(c *Controller) bool {
		return c.ExpandAll() > 0
	},
	CommandCollapseAll: func(c *Controller) bool {
		return c.CollapseAll() > 0
	},
}

// Dispatch runs a synchronous command and reports whether it changed
// anything. Paste is asynchronous and is not handled here.
func (c *Controller) Dispatch(cmd Command) bool {
	fn, ok := dispatchTable[cmd]
	if !ok {
		events.Command.Skip(string(cmd), "unknown")
		return false
	}
	events.Command.Dispatch(string(cmd))
	return fn(c)
}
