package inspector

import (
	"strings"
	"testing"

	"github.com/atomicstack/tmux-popup-json/internal/clipboard"
	"github.com/atomicstack/tmux-popup-json/internal/jsondoc"
)

func TestNewControllerStartsEmpty(t *testing.T) {
	c := New()
	st := c.State()
	if st.View.Mode != ModeEmpty || st.Status != StatusReady {
		t.Fatalf("expected empty/ready, got %v/%v", st.View.Mode, st.Status)
	}
	if c.Tree() != nil {
		t.Fatalf("expected no tree")
	}
}

func TestSetInputValidDocument(t *testing.T) {
	c := New()
	c.SetInput(`{"a":1,"b":[true,null]}`)
	st := c.State()
	if st.View.Mode != ModeTree {
		t.Fatalf("expected tree mode, got %v", st.View.Mode)
	}
	if st.Status.String() != "Valid JSON" {
		t.Fatalf("expected Valid JSON, got %q", st.Status.String())
	}
	if st.View.Err != nil {
		t.Fatalf("expected no error alongside a tree")
	}
	if got := c.Tree().Root.Preview; got != "{ 2 items }" {
		t.Fatalf("expected root preview, got %q", got)
	}
	if st.Document == nil {
		t.Fatalf("expected stored document")
	}
}

func TestSetInputInvalidKeepsDocument(t *testing.T) {
	c := New()
	c.SetInput(`[1]`)
	prev := c.State().Document
	c.SetInput("not json")
	st := c.State()
	if st.View.Mode != ModeError {
		t.Fatalf("expected error mode, got %v", st.View.Mode)
	}
	if st.Status.String() != "Invalid JSON" {
		t.Fatalf("expected Invalid JSON, got %q", st.Status.String())
	}
	want := "invalid character 'o' in literal null (expecting 'u')"
	if st.View.Message() != want {
		t.Fatalf("expected native diagnostic %q, got %q", want, st.View.Message())
	}
	if st.View.Tree != nil || c.Tree() != nil {
		t.Fatalf("expected no tree in error mode")
	}
	if st.Document != prev {
		t.Fatalf("expected previous document retained")
	}
	if st.Input != "not json" {
		t.Fatalf("expected raw input stored, got %q", st.Input)
	}
}

func TestWhitespaceInputIsEmptyFromAnyState(t *testing.T) {
	for _, start := range []string{"", `{"a":1}`, "{"} {
		c := New()
		c.SetInput(start)
		c.SetInput("  \n\t ")
		st := c.State()
		if st.View.Mode != ModeEmpty || st.Status != StatusReady || st.Document != nil {
			t.Fatalf("expected empty state after %q, got %+v", start, st)
		}
	}
}

func TestTransitionIsPure(t *testing.T) {
	prev := State{Input: "x"}
	next := Transition(prev, `true`)
	if prev.Input != "x" || prev.Document != nil {
		t.Fatalf("expected previous state untouched")
	}
	if next.View.Mode != ModeTree || next.Document.Kind() != jsondoc.KindBoolean {
		t.Fatalf("expected boolean tree, got %+v", next)
	}
}

func TestFormatRewritesInputOnly(t *testing.T) {
	c := New()
	c.SetInput(`{"b":1,"a":[1,2]}`)
	treeBefore := c.Tree()
	text, ok := c.Format()
	if !ok {
		t.Fatalf("expected format to run")
	}
	want := "{\n    \"b\": 1,\n    \"a\": [\n        1,\n        2\n    ]\n}"
	if text != want || c.Input() != want {
		t.Fatalf("expected canonical text %q, got %q", want, c.Input())
	}
	if c.Tree() != treeBefore {
		t.Fatalf("expected tree left untouched by format")
	}
}

func TestFormatUsesLastValidDocument(t *testing.T) {
	c := New()
	c.SetInput(`[1]`)
	c.SetInput(`[1,`)
	text, ok := c.Format()
	if !ok || text != "[\n    1\n]" {
		t.Fatalf("expected last valid document formatted, got %q (ok=%v)", text, ok)
	}
	if c.State().View.Mode != ModeError {
		t.Fatalf("expected view to stay in error mode")
	}
}

func TestFormatWithoutDocumentIsNoOp(t *testing.T) {
	c := New()
	c.SetInput("nope")
	if _, ok := c.Format(); ok {
		t.Fatalf("expected no-op without document")
	}
	if c.Input() != "nope" {
		t.Fatalf("expected input untouched, got %q", c.Input())
	}
}

func TestClearResetsEverything(t *testing.T) {
	c := New()
	c.SetInput(`{"a":1}`)
	c.Clear()
	st := c.State()
	if st.Input != "" || st.Document != nil || st.View.Mode != ModeEmpty || st.Status != StatusReady {
		t.Fatalf("expected full reset, got %+v", st)
	}
}

func TestExpandCollapseOnlyInTreeMode(t *testing.T) {
	c := New()
	if c.CollapseAll() != 0 {
		t.Fatalf("expected no-op without tree")
	}
	c.SetInput(`{"a":{"b":[]}}`)
	if got := c.CollapseAll(); got != 3 {
		t.Fatalf("expected 3 collapsed, got %d", got)
	}
	if !c.Tree().Root.Collapsed {
		t.Fatalf("expected root collapsed")
	}
	if got := c.ExpandAll(); got != 3 {
		t.Fatalf("expected 3 expanded, got %d", got)
	}
	c.SetInput("{")
	if c.ExpandAll() != 0 || c.CollapseAll() != 0 {
		t.Fatalf("expected no-op in error mode")
	}
}

func TestApplyPaste(t *testing.T) {
	c := New()
	c.SetInput(`[1]`)
	before := c.State()
	if c.ApplyPaste(clipboard.Unavailable()) {
		t.Fatalf("expected unavailable paste to be ignored")
	}
	after := c.State()
	if after.Input != before.Input || after.Document != before.Document || after.View.Tree != before.View.Tree {
		t.Fatalf("expected state untouched by unavailable paste")
	}
	if !c.ApplyPaste(clipboard.Success(`{"x":"y"}`, clipboard.SourceSystem)) {
		t.Fatalf("expected paste to apply")
	}
	if c.Input() != `{"x":"y"}` || c.State().View.Mode != ModeTree {
		t.Fatalf("expected pasted document rendered, got %+v", c.State())
	}
}

func TestDispatchTable(t *testing.T) {
	c := New()
	c.SetInput(`{"a":[1]}`)
	if !c.Dispatch(CommandCollapseAll) {
		t.Fatalf("expected collapse-all to change state")
	}
	if c.Dispatch(CommandCollapseAll) {
		t.Fatalf("expected repeated collapse-all to report no change")
	}
	if !c.Dispatch(CommandExpandAll) {
		t.Fatalf("expected expand-all to change state")
	}
	if !c.Dispatch(CommandFormat) || !strings.Contains(c.Input(), "\n    \"a\"") {
		t.Fatalf("expected format through dispatch, got %q", c.Input())
	}
	if !c.Dispatch(CommandClear) || c.Input() != "" {
		t.Fatalf("expected clear through dispatch")
	}
	if c.Dispatch(CommandPaste) {
		t.Fatalf("expected paste to be unknown to the synchronous table")
	}
	if c.Dispatch(Command("bogus")) {
		t.Fatalf("expected unknown command to be ignored")
	}
}
