package ui

import (
	"context"
	"fmt"
	"reflect"
	"time"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/tmux-popup-json/internal/clipboard"
	"github.com/atomicstack/tmux-popup-json/internal/inspector"
	"github.com/atomicstack/tmux-popup-json/internal/logging/events"
	"github.com/atomicstack/tmux-popup-json/internal/theme"
	"github.com/atomicstack/tmux-popup-json/internal/ui/command"
	uistate "github.com/atomicstack/tmux-popup-json/internal/ui/state"
)

// Focus selects which pane receives keys.
type Focus int

const (
	FocusInput Focus = iota
	FocusTree
)

func (f Focus) String() string {
	if f == FocusTree {
		return "tree"
	}
	return "input"
}

const defaultPasteTimeout = 2 * time.Second

var styles = theme.Default()

type msgHandler func(tea.Msg) tea.Cmd

// ClipboardReader produces paste text. *clipboard.Bridge satisfies it.
type ClipboardReader interface {
	Read(ctx context.Context) clipboard.Result
}

// Options configures a Model.
type Options struct {
	Width        int
	Height       int
	ShowFooter   bool
	Input        string
	Styles       *theme.Styles
	Clipboard    ClipboardReader
	PasteTimeout time.Duration
}

type pasteResultMsg struct {
	result clipboard.Result
}

// Model implements the Bubble Tea model for the JSON inspector.
type Model struct {
	controller   *inspector.Controller
	editor       textarea.Model
	pane         *uistate.Pane
	search       uistate.Search
	searchCursor cursor.Model
	searchDirty  bool
	matchCount   int
	keys         keyMap

	focus       Focus
	showHelp    bool
	showFooter  bool
	infoMsg     string
	infoExpire  time.Time
	width       int
	height      int
	fixedWidth  bool
	fixedHeight bool

	clipboard    ClipboardReader
	pasteTimeout time.Duration
	pasting      bool
	bus          *command.Bus

	handlers map[reflect.Type]msgHandler
}

// NewModel builds the inspector UI. A non-empty opts.Input is loaded as if
// the user had typed it.
func NewModel(opts Options) *Model {
	if opts.Styles != nil {
		styles = opts.Styles
	}
	m := &Model{
		controller:   inspector.New(),
		editor:       newEditor(),
		pane:         uistate.NewPane(nil),
		keys:         defaultKeyMap(),
		showFooter:   opts.ShowFooter,
		clipboard:    opts.Clipboard,
		pasteTimeout: opts.PasteTimeout,
		bus:          command.New(),
	}
	if m.pasteTimeout <= 0 {
		m.pasteTimeout = defaultPasteTimeout
	}
	if opts.Width > 0 {
		m.width = opts.Width
		m.fixedWidth = true
	}
	if opts.Height > 0 {
		m.height = opts.Height
		m.fixedHeight = true
	}
	c := cursor.New()
	if styles.Cursor != nil {
		c.Style = styles.Cursor.Copy()
	}
	if styles.Search != nil {
		c.TextStyle = styles.Search.Copy()
	}
	c.SetChar(" ")
	m.searchCursor = c
	if opts.Input != "" {
		m.editor.SetValue(opts.Input)
		m.applyInput(m.editor.Value())
		if editorLines(opts.Input) > editorMaxLines {
			m.setInfo(fmt.Sprintf("Input cut to %d lines", editorMaxLines))
		}
	}
	m.resize()
	m.registerHandlers()
	return m
}

func newEditor() textarea.Model {
	ta := textarea.New()
	ta.Placeholder = `{"paste": "or type JSON here"}`
	ta.ShowLineNumbers = true
	ta.Prompt = ""
	ta.CharLimit = 0
	ta.MaxHeight = 0
	ta.Focus()
	return ta
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	return textarea.Blink
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmds := make([]tea.Cmd, 0, 4)
	if cmd := m.updateSearchCursorModel(msg); cmd != nil {
		cmds = append(cmds, cmd)
	}
	if handler := m.handlerFor(msg); handler != nil {
		if cmd := handler(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
		return m, m.finishUpdate(cmds)
	}
	// Blink and other widget messages belong to the editor.
	if cmd := m.forwardToEditor(msg); cmd != nil {
		cmds = append(cmds, cmd)
	}
	return m, m.finishUpdate(cmds)
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
		reflect.TypeOf(tea.MouseMsg{}):      m.handleMouseMsg,
		reflect.TypeOf(pasteResultMsg{}):    m.handlePasteResultMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

func (m *Model) finishUpdate(cmds []tea.Cmd) tea.Cmd {
	if m.searchDirty {
		m.searchDirty = false
		m.searchCursor.Blink = false
		if cmd := m.searchCursor.BlinkCmd(); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

// applyInput runs the input-changed transition and rebuilds the tree pane.
func (m *Model) applyInput(raw string) {
	m.controller.SetInput(raw)
	m.syncTree()
}

func (m *Model) syncTree() {
	m.pane.SetTree(m.controller.Tree())
	m.syncViewport()
}

func (m *Model) setFocus(f Focus) tea.Cmd {
	if m.focus == f {
		return nil
	}
	m.focus = f
	events.UI.Focus(f.String())
	if f == FocusInput {
		return m.editor.Focus()
	}
	m.editor.Blur()
	return nil
}

// State exposes the controller state for tests and callers embedding the
// model.
func (m *Model) State() inspector.State {
	return m.controller.State()
}

// Focused reports which pane has focus.
func (m *Model) Focused() Focus {
	return m.focus
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	resize, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	if !m.fixedWidth {
		m.width = resize.Width
	}
	if !m.fixedHeight {
		m.height = resize.Height
	}
	events.UI.Resize(m.width, m.height)
	m.resize()
	return nil
}

func (m *Model) resize() {
	l := m.layout()
	m.editor.SetWidth(l.input.innerWidth())
	m.editor.SetHeight(l.input.innerHeight())
	m.syncViewport()
}

func (m *Model) syncViewport() {
	m.pane.EnsureCursorVisible(m.maxVisibleRows())
}

func (m *Model) setInfo(message string) {
	m.infoMsg = message
	m.infoExpire = time.Now().Add(5 * time.Second)
}

func (m *Model) forceClearInfo() {
	m.infoMsg = ""
	m.infoExpire = time.Time{}
}

func (m *Model) currentInfo() string {
	if m.infoMsg != "" && !m.infoExpire.IsZero() && time.Now().After(m.infoExpire) {
		m.infoMsg = ""
		m.infoExpire = time.Time{}
	}
	return m.infoMsg
}
