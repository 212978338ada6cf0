package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// cmdWait bounds how long a command may run. Cursor blink ticks exceed it and
// are dropped.
const cmdWait = 100 * time.Millisecond

// Harness drives the UI model programmatically for integration tests.
type Harness struct {
	model *Model
	quit  bool
}

// NewHarness creates a harness for the provided model.
func NewHarness(model *Model) *Harness {
	return &Harness{model: model}
}

// Send routes a message through the model and executes any returned commands.
func (h *Harness) Send(msg tea.Msg) {
	if h.model == nil {
		return
	}
	mdl, cmd := h.model.Update(msg)
	if updated, ok := mdl.(*Model); ok {
		h.model = updated
	}
	h.processCmd(cmd)
}

// Type sends text one rune at a time, as a user typing it would.
func (h *Harness) Type(text string) {
	for _, r := range text {
		switch r {
		case '\n':
			h.Send(tea.KeyMsg{Type: tea.KeyEnter})
		case ' ':
			h.Send(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
		default:
			h.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
		}
	}
}

// Key sends a single non-rune key such as tea.KeyTab.
func (h *Harness) Key(t tea.KeyType) {
	h.Send(tea.KeyMsg{Type: t})
}

// Click sends a left button press at the given cell.
func (h *Harness) Click(x, y int) {
	h.Send(tea.MouseMsg{X: x, Y: y, Button: tea.MouseButtonLeft, Action: tea.MouseActionPress})
}

// processCmd runs commands synchronously. Batches are expanded and
// messages that would loop forever, like cursor blinks, are dropped.
func (h *Harness) processCmd(cmd tea.Cmd) {
	if cmd == nil {
		return
	}
	msg := runWithin(cmd, cmdWait)
	switch batch := msg.(type) {
	case nil:
		return
	case tea.BatchMsg:
		for _, c := range batch {
			h.processCmd(c)
		}
		return
	case tea.QuitMsg:
		h.quit = true
		return
	}
	if !h.deliverable(msg) {
		return
	}
	mdl, next := h.model.Update(msg)
	if updated, ok := mdl.(*Model); ok {
		h.model = updated
	}
	h.processCmd(next)
}

func runWithin(cmd tea.Cmd, d time.Duration) tea.Msg {
	ch := make(chan tea.Msg, 1)
	go func() { ch <- cmd() }()
	select {
	case msg := <-ch:
		return msg
	case <-time.After(d):
		return nil
	}
}

func (h *Harness) deliverable(msg tea.Msg) bool {
	_, ok := msg.(pasteResultMsg)
	return ok
}

// Quit reports whether the model asked the program to exit.
func (h *Harness) Quit() bool {
	return h.quit
}

// View returns the current view string.
func (h *Harness) View() string {
	if h.model == nil {
		return ""
	}
	return h.model.View()
}

// Model exposes the underlying model.
func (h *Harness) Model() *Model {
	return h.model
}
