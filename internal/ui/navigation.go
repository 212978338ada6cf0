package ui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/tmux-popup-json/internal/inspector"
	"github.com/atomicstack/tmux-popup-json/internal/logging/events"
)

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	if key.Matches(keyMsg, m.keys.Quit) {
		events.App.Exit("quit")
		return tea.Quit
	}
	if m.showHelp {
		// Any key dismisses the overlay.
		m.toggleHelp()
		return nil
	}
	if m.search.Active {
		return m.handleSearchKey(keyMsg)
	}
	if cmd, handled := m.handleGlobalKey(keyMsg); handled {
		return cmd
	}
	if m.focus == FocusTree {
		return m.handleTreeKey(keyMsg)
	}
	return m.forwardToEditor(keyMsg)
}

func (m *Model) handleGlobalKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	switch {
	case key.Matches(msg, m.keys.Format):
		return m.runCommand(inspector.CommandFormat), true
	case key.Matches(msg, m.keys.Clear):
		return m.runCommand(inspector.CommandClear), true
	case key.Matches(msg, m.keys.ExpandAll):
		return m.runCommand(inspector.CommandExpandAll), true
	case key.Matches(msg, m.keys.CollapseAll):
		return m.runCommand(inspector.CommandCollapseAll), true
	case key.Matches(msg, m.keys.Paste):
		return m.runCommand(inspector.CommandPaste), true
	case key.Matches(msg, m.keys.Focus):
		if m.focus == FocusInput {
			return m.setFocus(FocusTree), true
		}
		return m.setFocus(FocusInput), true
	case key.Matches(msg, m.keys.Help):
		m.toggleHelp()
		return nil, true
	}
	return nil, false
}

func (m *Model) handleTreeKey(msg tea.KeyMsg) tea.Cmd {
	maxRows := m.maxVisibleRows()
	switch {
	case key.Matches(msg, m.keys.Up):
		m.noteCursor(m.pane.MoveCursorUp())
	case key.Matches(msg, m.keys.Down):
		m.noteCursor(m.pane.MoveCursorDown())
	case key.Matches(msg, m.keys.PageUp):
		m.noteCursor(m.pane.MoveCursorPageUp(maxRows))
	case key.Matches(msg, m.keys.PageDown):
		m.noteCursor(m.pane.MoveCursorPageDown(maxRows))
	case key.Matches(msg, m.keys.Home):
		m.noteCursor(m.pane.MoveCursorHome())
	case key.Matches(msg, m.keys.End):
		m.noteCursor(m.pane.MoveCursorEnd())
	case key.Matches(msg, m.keys.Toggle):
		m.toggleCurrent()
	case key.Matches(msg, m.keys.Collapse):
		m.collapseOrParent()
	case key.Matches(msg, m.keys.Expand):
		m.expandOrChild()
	case key.Matches(msg, m.keys.Search):
		if m.pane.Tree == nil {
			return nil
		}
		m.search.Start(m.pane.Current())
		m.matchCount = 0
		m.searchDirty = true
		m.forceClearInfo()
		events.Search.Start()
	case key.Matches(msg, m.keys.TreeHelp):
		m.toggleHelp()
	case key.Matches(msg, m.keys.TreeQuit):
		events.App.Exit("quit")
		return tea.Quit
	}
	return nil
}

func (m *Model) noteCursor(moved bool) {
	if !moved {
		return
	}
	if n := m.pane.Current(); n != nil {
		events.Tree.Cursor(n.Path, m.pane.Cursor)
	}
	m.syncViewport()
}

func (m *Model) toggleCurrent() bool {
	n := m.pane.Current()
	if !n.Toggle() {
		return false
	}
	events.Tree.Toggle(n.Path, n.Collapsed)
	m.pane.Refresh()
	m.syncViewport()
	return true
}

func (m *Model) collapseOrParent() {
	n := m.pane.Current()
	if n == nil {
		return
	}
	if n.Collapsible && !n.Collapsed {
		m.toggleCurrent()
		return
	}
	if n.Parent != nil {
		m.noteCursor(m.pane.MoveCursorTo(m.pane.IndexOf(n.Parent)))
	}
}

func (m *Model) expandOrChild() {
	n := m.pane.Current()
	if n == nil || !n.Collapsible {
		return
	}
	if n.Collapsed {
		m.toggleCurrent()
		return
	}
	if len(n.Children) > 0 {
		m.noteCursor(m.pane.MoveCursorTo(m.pane.IndexOf(n.Children[0])))
	}
}

func (m *Model) toggleHelp() {
	m.showHelp = !m.showHelp
	events.UI.Help(m.showHelp)
}

func (m *Model) maxVisibleRows() int {
	return m.layout().tree.innerHeight()
}
