package app

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/atomicstack/tmux-popup-json/internal/clipboard"
	"github.com/atomicstack/tmux-popup-json/internal/logging"
	"github.com/atomicstack/tmux-popup-json/internal/logging/events"
	"github.com/atomicstack/tmux-popup-json/internal/theme"
	"github.com/atomicstack/tmux-popup-json/internal/tmux"
	"github.com/atomicstack/tmux-popup-json/internal/ui"
)

// Config describes user-provided application options.
type Config struct {
	SocketPath   string
	Width        int
	Height       int
	ShowFooter   bool
	InputPath    string
	ThemePath    string
	PasteTimeout time.Duration
	Mouse        bool
}

// Run bootstraps and executes the Bubble Tea program.
func Run(cfg Config) error {
	styles, err := theme.Load(cfg.ThemePath)
	if err != nil {
		return fmt.Errorf("load theme: %w", err)
	}
	socketPath, err := tmux.ResolveSocketPath(cfg.SocketPath)
	if err != nil {
		// The tmux paste buffer is only a fallback, so carry on without it.
		logging.Error(fmt.Errorf("resolve socket path: %w", err))
	}
	initial, err := loadInitialInput(cfg.InputPath, os.Stdin)
	if err != nil {
		return err
	}
	if initial.source != "" {
		events.App.InitialInput(initial.source, len(initial.text))
	}
	model := ui.NewModel(ui.Options{
		Width:        cfg.Width,
		Height:       cfg.Height,
		ShowFooter:   cfg.ShowFooter,
		Input:        initial.text,
		Styles:       styles,
		Clipboard:    clipboard.NewBridge(socketPath),
		PasteTimeout: cfg.PasteTimeout,
	})
	program := tea.NewProgram(model, programOptions(cfg, initial.source == sourceStdin)...)
	_, err = program.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}

const (
	sourceFile  = "file"
	sourceStdin = "stdin"
)

type initialInput struct {
	text   string
	source string
}

// loadInitialInput reads the document named by path, or stdin when it is a
// pipe rather than a terminal.
func loadInitialInput(path string, stdin *os.File) (initialInput, error) {
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return initialInput{}, fmt.Errorf("read input file: %w", err)
		}
		return initialInput{text: string(data), source: sourceFile}, nil
	}
	if stdin == nil || term.IsTerminal(int(stdin.Fd())) {
		return initialInput{}, nil
	}
	data, err := io.ReadAll(stdin)
	if err != nil {
		return initialInput{}, fmt.Errorf("read stdin: %w", err)
	}
	return initialInput{text: string(data), source: sourceStdin}, nil
}

func programOptions(cfg Config, stdinConsumed bool) []tea.ProgramOption {
	opts := []tea.ProgramOption{tea.WithAltScreen()}
	if stdinConsumed {
		// Keys must come from the terminal once stdin has been drained.
		opts = append(opts, tea.WithInputTTY())
	}
	if cfg.Mouse {
		opts = append(opts, tea.WithMouseCellMotion())
	}
	return opts
}
