package ui

import (
	"reflect"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/tmux-popup-json/internal/inspector"
)

func newTestModel(input string) *Model {
	return NewModel(Options{Width: 100, Height: 20, Input: input})
}

func TestNewModelLoadsInitialInput(t *testing.T) {
	m := newTestModel(`{"a":1,"b":[true,null]}`)
	st := m.State()
	if st.Status != inspector.StatusValid {
		t.Fatalf("expected valid status, got %v", st.Status)
	}
	if got := m.editor.Value(); got != `{"a":1,"b":[true,null]}` {
		t.Fatalf("expected editor to hold the initial input, got %q", got)
	}
	if len(m.pane.Rows) != 5 {
		t.Fatalf("expected 5 tree rows, got %d", len(m.pane.Rows))
	}
	if m.Focused() != FocusInput {
		t.Fatalf("expected editor focus on start")
	}
}

func TestTypingReparsesOnEveryKey(t *testing.T) {
	h := NewHarness(newTestModel(""))
	if h.Model().State().Status != inspector.StatusReady {
		t.Fatalf("expected ready status before typing")
	}
	h.Type(`{"a":`)
	if got := h.Model().State().Status; got != inspector.StatusInvalid {
		t.Fatalf("expected invalid after partial input, got %v", got)
	}
	h.Type(`1}`)
	st := h.Model().State()
	if st.Status != inspector.StatusValid || st.Input != `{"a":1}` {
		t.Fatalf("expected valid document, got %+v", st)
	}
	if len(h.Model().pane.Rows) != 2 {
		t.Fatalf("expected root and one member, got %d rows", len(h.Model().pane.Rows))
	}
	h.Key(tea.KeyBackspace)
	if got := h.Model().State().Status; got != inspector.StatusInvalid {
		t.Fatalf("expected invalid after deleting the brace, got %v", got)
	}
}

func TestFormatKeyRewritesEditorOnly(t *testing.T) {
	h := NewHarness(newTestModel(`{"b":1,"a":[1]}`))
	treeBefore := h.Model().pane.Tree
	h.Key(tea.KeyCtrlF)
	want := "{\n    \"b\": 1,\n    \"a\": [\n        1\n    ]\n}"
	if got := h.Model().editor.Value(); got != want {
		t.Fatalf("expected formatted editor text %q, got %q", want, got)
	}
	if h.Model().pane.Tree != treeBefore {
		t.Fatalf("expected tree to be left as is")
	}
	if info := h.Model().currentInfo(); info != "Formatted" {
		t.Fatalf("expected info message, got %q", info)
	}
}

func TestFormatKeyWithoutDocument(t *testing.T) {
	h := NewHarness(newTestModel("nope"))
	h.Key(tea.KeyCtrlF)
	if got := h.Model().editor.Value(); got != "nope" {
		t.Fatalf("expected editor untouched, got %q", got)
	}
	if info := h.Model().currentInfo(); info != "Nothing to format" {
		t.Fatalf("expected no-op info, got %q", info)
	}
}

func TestClearKeyResetsEverything(t *testing.T) {
	h := NewHarness(newTestModel(`[1,2]`))
	h.Key(tea.KeyCtrlX)
	m := h.Model()
	if m.editor.Value() != "" {
		t.Fatalf("expected empty editor, got %q", m.editor.Value())
	}
	st := m.State()
	if st.View.Mode != inspector.ModeEmpty || st.Status != inspector.StatusReady || st.Document != nil {
		t.Fatalf("expected empty state, got %+v", st)
	}
	if m.pane.Tree != nil || len(m.pane.Rows) != 0 {
		t.Fatalf("expected tree pane cleared")
	}
}

func TestExpandCollapseKeys(t *testing.T) {
	h := NewHarness(newTestModel(`{"a":{"b":[1,2]},"c":3}`))
	h.Key(tea.KeyCtrlG)
	if got := len(h.Model().pane.Rows); got != 1 {
		t.Fatalf("expected only the root after collapse all, got %d rows", got)
	}
	h.Key(tea.KeyCtrlE)
	if got := len(h.Model().pane.Rows); got != 6 {
		t.Fatalf("expected every row after expand all, got %d rows", got)
	}
}

func TestExpandCollapseKeysIgnoredOutsideTreeMode(t *testing.T) {
	h := NewHarness(newTestModel(`{`))
	h.Key(tea.KeyCtrlG)
	h.Key(tea.KeyCtrlE)
	if h.Model().State().View.Mode != inspector.ModeError {
		t.Fatalf("expected error mode to persist")
	}
}

func TestTabSwitchesFocus(t *testing.T) {
	h := NewHarness(newTestModel(`[]`))
	h.Key(tea.KeyTab)
	if h.Model().Focused() != FocusTree {
		t.Fatalf("expected tree focus")
	}
	h.Type("x")
	if got := h.Model().editor.Value(); got != `[]` {
		t.Fatalf("expected tree focus to keep keys out of the editor, got %q", got)
	}
	h.Key(tea.KeyTab)
	if h.Model().Focused() != FocusInput {
		t.Fatalf("expected input focus")
	}
}

func TestCtrlCQuitsFromAnyState(t *testing.T) {
	h := NewHarness(newTestModel(`{"a":1}`))
	h.Key(tea.KeyCtrlC)
	if !h.Quit() {
		t.Fatalf("expected quit from the editor")
	}
	h = NewHarness(newTestModel(`{"a":1}`))
	h.Key(tea.KeyTab)
	h.Type("/")
	h.Key(tea.KeyCtrlC)
	if !h.Quit() {
		t.Fatalf("expected quit during search")
	}
}

func TestWindowSizeHonoursFixedDimensions(t *testing.T) {
	m := NewModel(Options{Width: 70})
	h := NewHarness(m)
	h.Send(tea.WindowSizeMsg{Width: 120, Height: 40})
	if m.width != 70 || m.height != 40 {
		t.Fatalf("expected width pinned and height adopted, got %dx%d", m.width, m.height)
	}
}

func TestHandlerForPointerMessages(t *testing.T) {
	m := newTestModel("")
	if m.handlerFor(&tea.WindowSizeMsg{}) == nil {
		t.Fatalf("expected pointer message to resolve its handler")
	}
	if m.handlerFor(struct{}{}) != nil {
		t.Fatalf("expected no handler for unknown messages")
	}
	if len(m.handlers) != 4 {
		t.Fatalf("expected four registered handlers, got %d", len(m.handlers))
	}
	if _, ok := m.handlers[reflect.TypeOf(pasteResultMsg{})]; !ok {
		t.Fatalf("expected paste results to be routed")
	}
}

func TestEditingClearsInfo(t *testing.T) {
	h := NewHarness(newTestModel(`[1]`))
	h.Key(tea.KeyCtrlF)
	h.Type(" ")
	if info := h.Model().currentInfo(); info != "" {
		t.Fatalf("expected edit to clear info, got %q", info)
	}
	if !strings.HasSuffix(h.Model().editor.Value(), " ") {
		t.Fatalf("expected space appended, got %q", h.Model().editor.Value())
	}
}

func TestInitialInputOverLineLimitMatchesEditor(t *testing.T) {
	input := "[" + strings.Repeat("\n1,", editorMaxLines+10) + "\n1]"
	m := newTestModel(input)
	if editor, st := m.editor.Value(), m.State(); editor != st.Input {
		t.Fatalf("expected controller to parse the editor text")
	}
	if got := strings.Count(m.editor.Value(), "\n") + 1; got != editorMaxLines {
		t.Fatalf("expected editor capped at %d lines, got %d", editorMaxLines, got)
	}
	if info := m.currentInfo(); info != "Input cut to 10000 lines" {
		t.Fatalf("expected truncation info, got %q", info)
	}
}

func TestFormatThenEditKeepsDocument(t *testing.T) {
	h := NewHarness(newTestModel("{\t\"a\":\t[1, \"tab\\there\"],\n\t\"b\": \"\u00e9\u2028\"}"))
	doc := h.Model().State().Document
	if doc == nil {
		t.Fatalf("expected initial input to parse")
	}
	h.Key(tea.KeyCtrlF)
	m := h.Model()
	if m.editor.Value() != m.State().Input {
		t.Fatalf("expected formatted text shown unchanged\neditor: %q\ninput:  %q", m.editor.Value(), m.State().Input)
	}
	h.Type(" ")
	st := h.Model().State()
	if st.Status != inspector.StatusValid {
		t.Fatalf("expected formatted text to stay valid after an edit, got %v", st.Status)
	}
	if !st.Document.Equal(doc) {
		t.Fatalf("expected the document to survive format and edit")
	}
}
