package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/tmux-popup-json/internal/clipboard"
	"github.com/atomicstack/tmux-popup-json/internal/inspector"
)

func TestInspectorSession(t *testing.T) {
	cb := &fakeClipboard{result: clipboard.Success(`{"user":{"id":7,"tags":["a","b"]}}`, clipboard.SourceTmux)}
	h := NewHarness(NewModel(Options{Clipboard: cb}))
	h.Send(tea.WindowSizeMsg{Width: 90, Height: 18})

	h.Type(`{"a":1`)
	if !strings.Contains(h.View(), "Invalid JSON") {
		t.Fatalf("expected invalid status while typing, got:\n%s", h.View())
	}
	h.Type(`}`)
	if !strings.Contains(h.View(), `"a": 1`) {
		t.Fatalf("expected rendered member, got:\n%s", h.View())
	}

	h.Key(tea.KeyCtrlV)
	if got := h.Model().State().Input; !strings.Contains(got, `"tags"`) {
		t.Fatalf("expected pasted document, got %q", got)
	}
	h.Key(tea.KeyCtrlF)
	if !strings.Contains(h.Model().editor.Value(), "\n        \"id\": 7,") {
		t.Fatalf("expected formatted editor text, got %q", h.Model().editor.Value())
	}

	h.Key(tea.KeyTab)
	h.Key(tea.KeyCtrlG)
	h.Type("/tags\n")
	cur := h.Model().pane.Current()
	if cur == nil || cur.Path != "$.user.tags" {
		t.Fatalf("expected search to land on tags, got %+v", cur)
	}
	view := h.View()
	if !strings.Contains(view, `"tags": [ 2 items ]`) {
		t.Fatalf("expected revealed tags row, got:\n%s", view)
	}
	viewLines(t, view, 90, 18)

	h.Key(tea.KeyCtrlX)
	if h.Model().State().View.Mode != inspector.ModeEmpty {
		t.Fatalf("expected clear to return to the empty view")
	}
	h.Type("q")
	if !h.Quit() {
		t.Fatalf("expected q to quit from the tree pane")
	}
}
