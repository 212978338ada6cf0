package ui

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/atomicstack/tmux-popup-json/internal/logging/events"
	uistate "github.com/atomicstack/tmux-popup-json/internal/ui/state"
)

// forwardToEditor lets the textarea handle msg and re-runs the input
// transition whenever its text changed.
func (m *Model) forwardToEditor(msg tea.Msg) tea.Cmd {
	before := m.editor.Value()
	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	if after := m.editor.Value(); after != before {
		m.forceClearInfo()
		m.applyInput(after)
	}
	return cmd
}

// editorMaxLines mirrors the textarea's hard line cap.
const editorMaxLines = 10000

// editorText returns text the way the editor stores it: tabs become four
// spaces, CR and LF each become a newline, other control characters and
// U+FFFD are dropped and lines past editorMaxLines are cut.
func editorText(text string) string {
	scratch := textarea.New()
	scratch.CharLimit = 0
	scratch.SetValue(text)
	return scratch.Value()
}

// editorLines counts the lines text occupies once loaded into the editor.
func editorLines(text string) int {
	return 1 + strings.Count(text, "\n") + strings.Count(text, "\r")
}

func (m *Model) updateSearchCursorModel(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	m.searchCursor, cmd = m.searchCursor.Update(msg)
	return cmd
}

func (m *Model) noteSearchCursorChange(before int) {
	if before != m.search.CursorPos() {
		m.searchDirty = true
	}
}

func (m *Model) handleSearchKey(msg tea.KeyMsg) tea.Cmd {
	before := m.search.CursorPos()
	defer m.noteSearchCursorChange(before)
	switch msg.Type {
	case tea.KeyEsc:
		m.cancelSearch()
		return nil
	case tea.KeyEnter:
		m.commitSearch()
		return nil
	case tea.KeyBackspace:
		if m.search.DeleteRuneBackward() {
			m.updateSearch()
		}
		return nil
	case tea.KeyCtrlW:
		if m.search.DeleteWordBackward() {
			m.updateSearch()
		}
		return nil
	case tea.KeyLeft:
		m.search.MoveCursorRuneBackward()
		return nil
	case tea.KeyRight:
		m.search.MoveCursorRuneForward()
		return nil
	case tea.KeySpace:
		if m.search.InsertText(" ") {
			m.updateSearch()
		}
		return nil
	case tea.KeyRunes:
		if msg.Alt || len(msg.Runes) == 0 {
			return nil
		}
		for _, r := range msg.Runes {
			if unicode.IsControl(r) {
				return nil
			}
		}
		if m.search.InsertText(string(msg.Runes)) {
			m.updateSearch()
		}
	}
	return nil
}

// updateSearch moves the cursor to the best match for the current query,
// expanding collapsed ancestors on the way. An empty query returns to the
// node the search started from.
func (m *Model) updateSearch() {
	query := m.search.Query
	if query == "" {
		m.matchCount = 0
		m.pane.Reveal(m.search.Origin)
		m.syncViewport()
		events.Search.Update(query, "")
		return
	}
	m.matchCount = len(uistate.Matches(m.pane.Tree, query))
	best := uistate.BestMatch(m.pane.Tree, query)
	if best == nil {
		events.Search.Update(query, "")
		return
	}
	m.pane.Reveal(best)
	m.syncViewport()
	events.Search.Update(query, best.Path)
}

func (m *Model) commitSearch() {
	path := ""
	if n := m.pane.Current(); n != nil {
		path = n.Path
	}
	events.Search.Commit(m.search.Query, path)
	if m.search.Query != "" && m.matchCount == 0 {
		m.setInfo(fmt.Sprintf("No keys match %q", m.search.Query))
	}
	m.search.Reset()
	m.matchCount = 0
}

func (m *Model) cancelSearch() {
	events.Search.Cancel(m.search.Query)
	if m.search.Origin != nil {
		m.pane.Reveal(m.search.Origin)
		m.syncViewport()
	}
	m.search.Reset()
	m.matchCount = 0
}

func (m *Model) searchPrompt() string {
	render := func(style *lipgloss.Style, value string) string {
		if style == nil || value == "" {
			return value
		}
		return style.Render(value)
	}
	if styles.Cursor != nil {
		m.searchCursor.Style = styles.Cursor.Copy()
	}
	if styles.Search != nil {
		m.searchCursor.TextStyle = styles.Search.Copy()
	} else {
		m.searchCursor.TextStyle = lipgloss.Style{}
	}
	prompt := render(styles.Search, "/")
	text := m.search.Query
	if text == "" {
		runes := []rune("(type to search keys)")
		if styles.Placeholder != nil {
			m.searchCursor.TextStyle = styles.Placeholder.Copy()
		}
		caret := m.renderSearchCursor(string(runes[0]))
		return prompt + caret + render(styles.Placeholder, string(runes[1:]))
	}
	runes := []rune(text)
	pos := m.search.CursorPos()
	before := render(styles.Search, string(runes[:pos]))
	caretRune := " "
	after := ""
	if pos < len(runes) {
		caretRune = string(runes[pos])
		after = render(styles.Search, string(runes[pos+1:]))
	}
	caret := m.renderSearchCursor(caretRune)
	count := fmt.Sprintf("  %d match", m.matchCount)
	if m.matchCount != 1 {
		count += "es"
	}
	return prompt + before + caret + after + render(styles.Info, count)
}

func (m *Model) renderSearchCursor(char string) string {
	if char == "" {
		char = " "
	}
	m.searchCursor.SetChar(char)

	base := m.searchCursor.TextStyle.Copy().Inline(true)
	if m.searchCursor.Blink {
		return base.Render(char)
	}
	if styles.Cursor != nil {
		cursorStyle := styles.Cursor.Copy().Inline(true)
		return base.Inherit(cursorStyle).Blink(false).Render(char)
	}
	return base.Reverse(true).Render(char)
}
