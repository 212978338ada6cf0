package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

const searchDoc = `{"meta":{"owner":{"name":"x","email":"y"}},"list":[1,2],"names":[]}`

func TestSearchRevealsHiddenMatch(t *testing.T) {
	h := treeHarness(t, searchDoc)
	h.Key(tea.KeyCtrlG)
	h.Type("/name")
	m := h.Model()
	if !m.search.Active {
		t.Fatalf("expected search to stay active while typing")
	}
	cur := m.pane.Current()
	if cur == nil || cur.Path != "$.meta.owner.name" {
		t.Fatalf("expected exact key match selected, got %+v", cur)
	}
	if cur.Parent.Collapsed || cur.Parent.Parent.Collapsed {
		t.Fatalf("expected ancestors expanded to reveal the match")
	}
	if m.matchCount < 2 {
		t.Fatalf("expected name and names to match, got %d", m.matchCount)
	}
}

func TestSearchFuzzyMatch(t *testing.T) {
	h := treeHarness(t, searchDoc)
	h.Type("/eml")
	if got := h.Model().pane.Current().Key; got != "email" {
		t.Fatalf("expected fuzzy match on email, got %q", got)
	}
}

func TestSearchEnterKeepsMatch(t *testing.T) {
	h := treeHarness(t, searchDoc)
	h.Type("/list")
	h.Key(tea.KeyEnter)
	m := h.Model()
	if m.search.Active {
		t.Fatalf("expected enter to end the search")
	}
	if m.pane.Current().Path != "$.list" {
		t.Fatalf("expected cursor to stay on the match, got %s", m.pane.Current().Path)
	}
}

func TestSearchEscReturnsToOrigin(t *testing.T) {
	h := treeHarness(t, searchDoc)
	h.Key(tea.KeyDown)
	origin := h.Model().pane.Current()
	h.Type("/list")
	if h.Model().pane.Current() == origin {
		t.Fatalf("expected search to move the cursor")
	}
	h.Key(tea.KeyEsc)
	if h.Model().search.Active {
		t.Fatalf("expected esc to cancel the search")
	}
	if h.Model().pane.Current() != origin {
		t.Fatalf("expected cursor back on the origin")
	}
	if h.Quit() {
		t.Fatalf("expected esc inside search not to quit")
	}
}

func TestSearchBackspaceToEmptyReturnsToOrigin(t *testing.T) {
	h := treeHarness(t, searchDoc)
	h.Type("/li")
	h.Key(tea.KeyBackspace)
	h.Key(tea.KeyBackspace)
	m := h.Model()
	if m.search.Query != "" || !m.search.Active {
		t.Fatalf("expected empty active search, got %+v", m.search)
	}
	if m.pane.Cursor != 0 {
		t.Fatalf("expected cursor back on the root, got %d", m.pane.Cursor)
	}
}

func TestSearchWithoutMatchReportsInfo(t *testing.T) {
	h := treeHarness(t, searchDoc)
	h.Type("/zzz")
	if h.Model().pane.Cursor != 0 {
		t.Fatalf("expected cursor unmoved without a match")
	}
	h.Key(tea.KeyEnter)
	if info := h.Model().currentInfo(); !strings.Contains(info, `"zzz"`) {
		t.Fatalf("expected no-match info, got %q", info)
	}
}

func TestSearchPromptShowsQueryAndCount(t *testing.T) {
	h := treeHarness(t, searchDoc)
	h.Type("/")
	if prompt := h.Model().searchPrompt(); !strings.Contains(prompt, "type to search keys") {
		t.Fatalf("expected placeholder, got %q", prompt)
	}
	h.Type("list")
	prompt := h.Model().searchPrompt()
	if !strings.Contains(prompt, "list") || !strings.Contains(prompt, "1 match") {
		t.Fatalf("expected query and count in prompt, got %q", prompt)
	}
	if !strings.Contains(h.View(), "1 match") {
		t.Fatalf("expected status bar to carry the search prompt")
	}
}

func TestSearchWordDelete(t *testing.T) {
	h := treeHarness(t, searchDoc)
	h.Type("/meta")
	h.Key(tea.KeyCtrlW)
	if q := h.Model().search.Query; q != "" {
		t.Fatalf("expected word deleted, got %q", q)
	}
}
