package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/tmux-popup-json/internal/logging/events"
)

const wheelStep = 3

// handleMouseMsg focuses the pane under the pointer, toggles header rows on
// left click and scrolls the tree pane with the wheel.
func (m *Model) handleMouseMsg(msg tea.Msg) tea.Cmd {
	ev, ok := msg.(tea.MouseMsg)
	if !ok || m.showHelp {
		return nil
	}
	l := m.layout()
	switch ev.Button {
	case tea.MouseButtonWheelUp, tea.MouseButtonWheelDown:
		if !l.tree.contains(ev.X, ev.Y) {
			return nil
		}
		delta := wheelStep
		if ev.Button == tea.MouseButtonWheelUp {
			delta = -wheelStep
		}
		if m.pane.Scroll(delta, l.tree.innerHeight()) {
			events.UI.Mouse("wheel", m.pane.ViewportOffset)
		}
		return nil
	case tea.MouseButtonLeft:
		if ev.Action != tea.MouseActionPress {
			return nil
		}
	default:
		return nil
	}
	if l.input.contains(ev.X, ev.Y) {
		events.UI.Mouse("focus-input", -1)
		return m.setFocus(FocusInput)
	}
	if !l.tree.contains(ev.X, ev.Y) {
		return nil
	}
	cmd := m.setFocus(FocusTree)
	if m.search.Active {
		m.commitSearch()
	}
	row := m.pane.RowAt(ev.Y - l.tree.y - 1)
	if row < 0 {
		return cmd
	}
	events.UI.Mouse("click", row)
	m.noteCursor(m.pane.MoveCursorTo(row))
	m.toggleCurrent()
	return cmd
}
