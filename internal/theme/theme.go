// Package theme holds the Lip Gloss styles used across the UI.
package theme

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"

	"github.com/atomicstack/tmux-popup-json/internal/jsondoc"
)

// Styles describes reusable Lip Gloss styles shared across the UI.
type Styles struct {
	Key           *lipgloss.Style
	Preview       *lipgloss.Style
	String        *lipgloss.Style
	Number        *lipgloss.Style
	Boolean       *lipgloss.Style
	Null          *lipgloss.Style
	Cursor        *lipgloss.Style
	Error         *lipgloss.Style
	ErrorHint     *lipgloss.Style
	Placeholder   *lipgloss.Style
	StatusReady   *lipgloss.Style
	StatusValid   *lipgloss.Style
	StatusInvalid *lipgloss.Style
	Info          *lipgloss.Style
	Footer        *lipgloss.Style
	PaneTitle     *lipgloss.Style
	PaneBorder    *lipgloss.Style
	Search        *lipgloss.Style
}

var defaultStyles = New()

// New builds a fresh copy of the default style set.
func New() Styles {
	return Styles{
		Key:           ptr(lipgloss.NewStyle().Foreground(lipgloss.Color("75"))),
		Preview:       ptr(lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true)),
		String:        ptr(lipgloss.NewStyle().Foreground(lipgloss.Color("114"))),
		Number:        ptr(lipgloss.NewStyle().Foreground(lipgloss.Color("215"))),
		Boolean:       ptr(lipgloss.NewStyle().Foreground(lipgloss.Color("176"))),
		Null:          ptr(lipgloss.NewStyle().Foreground(lipgloss.Color("244")).Italic(true)),
		Cursor:        ptr(lipgloss.NewStyle().Background(lipgloss.Color("238")).Bold(true)),
		Error:         ptr(lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)),
		ErrorHint:     ptr(lipgloss.NewStyle().Foreground(lipgloss.Color("203"))),
		Placeholder:   ptr(lipgloss.NewStyle().Foreground(lipgloss.Color("241"))),
		StatusReady:   ptr(lipgloss.NewStyle().Foreground(lipgloss.Color("249")).Bold(true)),
		StatusValid:   ptr(lipgloss.NewStyle().Foreground(lipgloss.Color("34")).Bold(true)),
		StatusInvalid: ptr(lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)),
		Info:          ptr(lipgloss.NewStyle().Foreground(lipgloss.Color("249"))),
		Footer:        ptr(lipgloss.NewStyle().Foreground(lipgloss.Color("249"))),
		PaneTitle:     ptr(lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Bold(true)),
		PaneBorder:    ptr(lipgloss.NewStyle().Foreground(lipgloss.Color("238"))),
		Search:        ptr(lipgloss.NewStyle().Foreground(lipgloss.Color("34")).Bold(true)),
	}
}

// Default exposes the standard style set used across the application.
func Default() *Styles {
	return &defaultStyles
}

func ptr(style lipgloss.Style) *lipgloss.Style {
	return &style
}

// ForKind returns the value style for a leaf of the given kind.
func (s *Styles) ForKind(kind jsondoc.Kind) *lipgloss.Style {
	switch kind {
	case jsondoc.KindString:
		return s.String
	case jsondoc.KindNumber:
		return s.Number
	case jsondoc.KindBoolean:
		return s.Boolean
	case jsondoc.KindNull:
		return s.Null
	default:
		return s.Preview
	}
}

// StyleSpec overrides parts of one style. Colours accept anything
// lipgloss.Color does: ANSI indexes ("75") or hex ("#5fafff").
type StyleSpec struct {
	Foreground string `yaml:"fg"`
	Background string `yaml:"bg"`
	Bold       *bool  `yaml:"bold"`
	Italic     *bool  `yaml:"italic"`
	Underline  *bool  `yaml:"underline"`
}

// Palette maps style names (key, string, status_valid, ...) to overrides.
type Palette map[string]StyleSpec

func (s *Styles) byName() map[string]*lipgloss.Style {
	return map[string]*lipgloss.Style{
		"key":            s.Key,
		"preview":        s.Preview,
		"string":         s.String,
		"number":         s.Number,
		"boolean":        s.Boolean,
		"null":           s.Null,
		"cursor":         s.Cursor,
		"error":          s.Error,
		"error_hint":     s.ErrorHint,
		"placeholder":    s.Placeholder,
		"status_ready":   s.StatusReady,
		"status_valid":   s.StatusValid,
		"status_invalid": s.StatusInvalid,
		"info":           s.Info,
		"footer":         s.Footer,
		"pane_title":     s.PaneTitle,
		"pane_border":    s.PaneBorder,
		"search":         s.Search,
	}
}

// Apply merges the palette into s. Unknown style names are an error.
func (s *Styles) Apply(p Palette) error {
	named := s.byName()
	for name, spec := range p {
		style, ok := named[strings.ToLower(strings.TrimSpace(name))]
		if !ok {
			return fmt.Errorf("unknown style %q", name)
		}
		updated := *style
		if spec.Foreground != "" {
			updated = updated.Foreground(lipgloss.Color(spec.Foreground))
		}
		if spec.Background != "" {
			updated = updated.Background(lipgloss.Color(spec.Background))
		}
		if spec.Bold != nil {
			updated = updated.Bold(*spec.Bold)
		}
		if spec.Italic != nil {
			updated = updated.Italic(*spec.Italic)
		}
		if spec.Underline != nil {
			updated = updated.Underline(*spec.Underline)
		}
		*style = updated
	}
	return nil
}

// ParsePalette decodes a YAML palette document.
func ParsePalette(data []byte) (Palette, error) {
	var p Palette
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parse palette: %w", err)
	}
	return p, nil
}

// Load returns the default styles with the YAML palette at path applied.
// An empty path yields the defaults.
func Load(path string) (*Styles, error) {
	styles := New()
	if strings.TrimSpace(path) == "" {
		return &styles, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read theme %s: %w", path, err)
	}
	palette, err := ParsePalette(data)
	if err != nil {
		return nil, fmt.Errorf("theme %s: %w", path, err)
	}
	if err := styles.Apply(palette); err != nil {
		return nil, fmt.Errorf("theme %s: %w", path, err)
	}
	return &styles, nil
}
