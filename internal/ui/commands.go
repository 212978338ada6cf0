package ui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/tmux-popup-json/internal/clipboard"
	"github.com/atomicstack/tmux-popup-json/internal/inspector"
	"github.com/atomicstack/tmux-popup-json/internal/jsondoc"
	"github.com/atomicstack/tmux-popup-json/internal/logging/events"
	"github.com/atomicstack/tmux-popup-json/internal/ui/command"
)

// runCommand applies a controller command and mirrors its effect into the
// editor and tree pane.
func (m *Model) runCommand(cmd inspector.Command) tea.Cmd {
	m.forceClearInfo()
	switch cmd {
	case inspector.CommandPaste:
		return m.startPaste()
	case inspector.CommandFormat:
		if doc := m.controller.State().Document; doc != nil {
			if text := jsondoc.Format(doc); editorText(text) != text {
				events.Command.Skip(string(cmd), "editor cannot hold formatted text")
				m.setInfo("Formatted text cannot be shown unchanged in the editor")
				return nil
			}
		}
		if !m.controller.Dispatch(cmd) {
			m.setInfo("Nothing to format")
			return nil
		}
		// The tree already shows this document, so only the editor changes.
		m.editor.SetValue(m.controller.Input())
		m.setInfo("Formatted")
	case inspector.CommandClear:
		m.controller.Dispatch(cmd)
		m.editor.Reset()
		m.search.Reset()
		m.syncTree()
	case inspector.CommandExpandAll, inspector.CommandCollapseAll:
		if m.controller.Dispatch(cmd) {
			m.pane.Refresh()
			m.syncViewport()
		}
	default:
		m.controller.Dispatch(cmd)
	}
	return nil
}

func (m *Model) startPaste() tea.Cmd {
	if m.clipboard == nil {
		m.setInfo("Clipboard unavailable")
		return nil
	}
	if m.pasting {
		return nil
	}
	m.pasting = true
	reader := m.clipboard
	return m.bus.Execute(context.Background(), command.Request{
		ID:      string(inspector.CommandPaste),
		Label:   "clipboard",
		Timeout: m.pasteTimeout,
		Handler: func(ctx context.Context) tea.Msg {
			return pasteResultMsg{result: reader.Read(ctx)}
		},
	})
}

func (m *Model) handlePasteResultMsg(msg tea.Msg) tea.Cmd {
	res, ok := msg.(pasteResultMsg)
	if !ok {
		return nil
	}
	m.pasting = false
	if !res.result.OK {
		m.setInfo("Clipboard unavailable")
		return nil
	}
	text := res.result.Text
	if editorLines(text) > editorMaxLines {
		events.Command.Skip(string(inspector.CommandPaste), "clipboard text too long")
		m.setInfo(fmt.Sprintf("Clipboard text exceeds %d lines", editorMaxLines))
		return nil
	}
	// The editor is the source of truth, so parse what it actually holds.
	m.editor.SetValue(text)
	shown := m.editor.Value()
	m.controller.ApplyPaste(clipboard.Success(shown, res.result.Source))
	m.search.Reset()
	m.syncTree()
	info := fmt.Sprintf("Pasted %d bytes from %s", len(text), res.result.Source)
	if shown != text {
		info += " (tabs and control characters adjusted)"
	}
	m.setInfo(info)
	return nil
}
