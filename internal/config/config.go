// Package config parses command-line flags, with environment variables
// supplying the defaults.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/alecthomas/kong"

	"github.com/atomicstack/tmux-popup-json/internal/app"
)

// Version is reported by --version.
const Version = "0.1.0"

// ErrHelp is returned when --help or --version was handled and the program
// should exit successfully.
var ErrHelp = errors.New("help requested")

// Config captures runtime configuration for the application.
type Config struct {
	App     app.Config
	Logging Logging
	Flags   map[string]string
	Args    []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

const (
	envSocketPath   = "TMUX_POPUP_JSON_SOCKET"
	envWidth        = "TMUX_POPUP_JSON_WIDTH"
	envHeight       = "TMUX_POPUP_JSON_HEIGHT"
	envShowFooter   = "TMUX_POPUP_JSON_FOOTER"
	envTrace        = "TMUX_POPUP_JSON_TRACE"
	envLogFile      = "TMUX_POPUP_JSON_LOG_FILE"
	envTheme        = "TMUX_POPUP_JSON_THEME"
	envPasteTimeout = "TMUX_POPUP_JSON_PASTE_TIMEOUT"
	envNoMouse      = "TMUX_POPUP_JSON_NO_MOUSE"

	defaultPasteTimeout = 2 * time.Second
)

type cli struct {
	File         string           `help:"Read the initial input from this file." short:"f" type:"path"`
	Socket       string           `help:"Path to the tmux socket used for the paste-buffer fallback." default:"${socket}"`
	Width        int              `help:"Desired viewport width in cells (0 uses terminal width)." default:"${width}"`
	Height       int              `help:"Desired viewport height in rows (0 uses terminal height)." default:"${height}"`
	Footer       bool             `help:"Show the key hint footer." default:"${footer}" negatable:""`
	Trace        bool             `help:"Enable verbose JSON trace logging." default:"${trace}" negatable:""`
	LogFile      string           `help:"Path to the log file." default:"${log_file}"`
	Theme        string           `help:"YAML palette overriding the default colours." default:"${theme}"`
	PasteTimeout time.Duration    `help:"Give up on a clipboard read after this long." default:"${paste_timeout}"`
	NoMouse      bool             `help:"Disable mouse support." default:"${no_mouse}"`
	Version      kong.VersionFlag `help:"Print the version and exit."`
}

// Load parses configuration from CLI arguments and environment variables.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment.
func LoadArgs(args []string, environ []string) (Config, error) {
	return loadArgs(args, environ, os.Stdout)
}

func loadArgs(args []string, environ []string, stdout io.Writer) (Config, error) {
	env := parseEnv(environ)

	var parsed cli
	exited := false
	parser, err := kong.New(&parsed,
		kong.Name("tmux-popup-json"),
		kong.Description("Inspect JSON as a collapsible tree inside a tmux popup."),
		kong.Writers(stdout, io.Discard),
		kong.Exit(func(int) { exited = true }),
		kong.Vars{
			"version":       Version,
			"socket":        envOrDefault(env, envSocketPath, ""),
			"width":         strconv.Itoa(envOrInt(env, envWidth, 0)),
			"height":        strconv.Itoa(envOrInt(env, envHeight, 0)),
			"footer":        strconv.FormatBool(envOrBool(env, envShowFooter, false)),
			"trace":         strconv.FormatBool(envOrBool(env, envTrace, false)),
			"log_file":      envOrDefault(env, envLogFile, ""),
			"theme":         envOrDefault(env, envTheme, ""),
			"paste_timeout": envOrDuration(env, envPasteTimeout, defaultPasteTimeout).String(),
			"no_mouse":      strconv.FormatBool(envOrBool(env, envNoMouse, false)),
		},
	)
	if err != nil {
		return Config{}, err
	}
	if _, err := parser.Parse(args); err != nil {
		if exited {
			return Config{}, ErrHelp
		}
		return Config{}, err
	}
	if exited {
		return Config{}, ErrHelp
	}

	if parsed.Width < 0 {
		return Config{}, fmt.Errorf("width must be >= 0 (got %d)", parsed.Width)
	}
	if parsed.Height < 0 {
		return Config{}, fmt.Errorf("height must be >= 0 (got %d)", parsed.Height)
	}

	cfg := Config{
		App: app.Config{
			SocketPath:   parsed.Socket,
			Width:        parsed.Width,
			Height:       parsed.Height,
			ShowFooter:   parsed.Footer,
			InputPath:    parsed.File,
			ThemePath:    parsed.Theme,
			PasteTimeout: parsed.PasteTimeout,
			Mouse:        !parsed.NoMouse,
		},
		Logging: Logging{
			FilePath: parsed.LogFile,
			Trace:    parsed.Trace,
		},
		Flags: map[string]string{
			"file":         parsed.File,
			"socket":       parsed.Socket,
			"width":        strconv.Itoa(parsed.Width),
			"height":       strconv.Itoa(parsed.Height),
			"footer":       strconv.FormatBool(parsed.Footer),
			"trace":        strconv.FormatBool(parsed.Trace),
			"logFile":      parsed.LogFile,
			"theme":        parsed.Theme,
			"pasteTimeout": parsed.PasteTimeout.String(),
			"mouse":        strconv.FormatBool(!parsed.NoMouse),
		},
		Args: append([]string(nil), args...),
	}

	return cfg, nil
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			continue
		}
		values[parts[0]] = parts[1]
	}
	return values
}

func envOrDefault(env map[string]string, key, fallback string) string {
	if v, ok := env[key]; ok {
		return v
	}
	return fallback
}

func envOrInt(env map[string]string, key string, fallback int) int {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrBool(env map[string]string, key string, fallback bool) bool {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrDuration(env map[string]string, key string, fallback time.Duration) time.Duration {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(strings.TrimSpace(v))
	if err != nil {
		return fallback
	}
	return parsed
}

// MustLoad returns configuration or exits.
func MustLoad() Config {
	cfg, err := Load()
	if errors.Is(err, ErrHelp) {
		os.Exit(0)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	return cfg
}

// Validate checks values that only make sense once parsing succeeded.
func Validate(cfg Config) error {
	if cfg.App.PasteTimeout <= 0 {
		return fmt.Errorf("paste timeout must be positive (got %s)", cfg.App.PasteTimeout)
	}
	if err := checkReadable("file", cfg.App.InputPath); err != nil {
		return err
	}
	if err := checkReadable("theme", cfg.App.ThemePath); err != nil {
		return err
	}
	return nil
}

func checkReadable(flag, path string) error {
	if strings.TrimSpace(path) == "" {
		return nil
	}
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("--%s: %w", flag, err)
	}
	if info.IsDir() {
		return fmt.Errorf("--%s: %s is a directory", flag, path)
	}
	return nil
}
