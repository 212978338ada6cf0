package ui

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/reflow/truncate"
	"github.com/muesli/reflow/wordwrap"

	"github.com/atomicstack/tmux-popup-json/internal/format/table"
	"github.com/atomicstack/tmux-popup-json/internal/inspector"
	"github.com/atomicstack/tmux-popup-json/internal/tree"
)

const (
	defaultWidth   = 80
	defaultHeight  = 24
	splitMinWidth  = 60 // below this the panes stack vertically
	inputFraction  = 0.45
	minPanelHeight = 3
)

const footerText = "tab switch pane  ctrl+f format  ctrl+v paste  / search  f1 help  ctrl+c quit"

const emptyPlaceholder = "Paste or type JSON on the left to inspect it."

type styledLine struct {
	text  string
	style *lipgloss.Style
	raw   bool // text contains ANSI escapes; skip style wrapping, use ANSI-aware truncation
}

// rect is a pane's outer box, border included.
type rect struct {
	x, y, width, height int
}

func (r rect) innerWidth() int {
	if r.width-2 < 1 {
		return 1
	}
	return r.width - 2
}

func (r rect) innerHeight() int {
	if r.height-2 < 1 {
		return 1
	}
	return r.height - 2
}

func (r rect) contains(x, y int) bool {
	return x >= r.x && x < r.x+r.width && y >= r.y && y < r.y+r.height
}

type layout struct {
	input    rect
	tree     rect
	vertical bool
	bottom   int
}

func (m *Model) size() (int, int) {
	w, h := m.width, m.height
	if w <= 0 {
		w = defaultWidth
	}
	if h <= 0 {
		h = defaultHeight
	}
	return w, h
}

func (m *Model) layout() layout {
	w, h := m.size()
	bottom := 1
	if m.showFooter {
		bottom++
	}
	panelH := h - bottom
	if panelH < minPanelHeight {
		panelH = minPanelHeight
	}
	if w < splitMinWidth {
		inputH := panelH / 2
		if inputH < minPanelHeight {
			inputH = minPanelHeight
		}
		treeH := panelH - inputH
		if treeH < minPanelHeight {
			treeH = minPanelHeight
		}
		return layout{
			input:    rect{x: 0, y: 0, width: w, height: inputH},
			tree:     rect{x: 0, y: inputH, width: w, height: treeH},
			vertical: true,
			bottom:   bottom,
		}
	}
	inputW := int(float64(w) * inputFraction)
	return layout{
		input:  rect{x: 0, y: 0, width: inputW, height: panelH},
		tree:   rect{x: inputW, y: 0, width: w - inputW, height: panelH},
		bottom: bottom,
	}
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.showHelp {
		return m.viewHelp()
	}
	l := m.layout()
	inputPanel := m.renderPanel("Input", "", strings.Split(m.editor.View(), "\n"), l.input, m.focus == FocusInput)
	treePanel := m.renderPanel(m.treeTitle(), m.treeScrollInfo(l.tree.innerHeight()), m.treeBody(l.tree), l.tree, m.focus == FocusTree)
	var top string
	if l.vertical {
		top = lipgloss.JoinVertical(lipgloss.Left, inputPanel, treePanel)
	} else {
		top = lipgloss.JoinHorizontal(lipgloss.Top, inputPanel, treePanel)
	}
	w, _ := m.size()
	bottom := []styledLine{{text: m.statusLine(), raw: true}}
	if m.showFooter {
		bottom = append(bottom, styledLine{text: footerText, style: styles.Footer})
	}
	return top + "\n" + renderLines(applyWidth(bottom, w))
}

func (m *Model) treeTitle() string {
	t := m.pane.Tree
	if t == nil {
		return "Tree"
	}
	return fmt.Sprintf("Tree · %d nodes · depth %d", t.NodeCount(), t.Depth())
}

func (m *Model) treeScrollInfo(innerH int) string {
	total := len(m.pane.Rows)
	if total <= innerH {
		return ""
	}
	return fmt.Sprintf(" %d/%d ", m.pane.Cursor+1, total)
}

// treeBody returns the rendered lines for the display pane in its current
// mode.
func (m *Model) treeBody(r rect) []string {
	innerW := r.innerWidth()
	st := m.controller.State()
	switch st.View.Mode {
	case inspector.ModeError:
		return m.errorBody(st.View, innerW)
	case inspector.ModeTree:
		m.pane.EnsureCursorVisible(r.innerHeight())
		rows := m.pane.VisibleRows(r.innerHeight())
		out := make([]string, 0, len(rows))
		for i, row := range rows {
			idx := m.pane.ViewportOffset + i
			out = append(out, m.buildRowLine(row, idx == m.pane.Cursor, innerW))
		}
		return out
	default:
		text := wordwrap.String(emptyPlaceholder, innerW)
		return renderStyled(strings.Split(text, "\n"), styles.Placeholder)
	}
}

func (m *Model) errorBody(v inspector.View, width int) []string {
	lines := renderStyled(strings.Split(wordwrap.String(v.Message(), width), "\n"), styles.Error)
	if pos := v.Err.Position(); pos != "" {
		lines = append(lines, "", renderStyle(styles.ErrorHint, pos))
	}
	return lines
}

// buildRowLine renders one tree row. The cursor row is drawn as plain text
// under the cursor style so its background spans the full width.
func (m *Model) buildRowLine(row tree.Row, selected bool, width int) string {
	n := row.Node
	indent := strings.Repeat("  ", row.Depth)
	glyph := "  "
	if n.Collapsible {
		glyph = "▾ "
		if n.Collapsed {
			glyph = "▸ "
		}
	}
	label := ""
	if n.HasKey {
		label = escapeControl(n.Label()) + " "
	}
	value := n.Preview
	valueStyle := styles.Preview
	if !n.Collapsible {
		value = escapeControl(n.Text)
		valueStyle = styles.ForKind(n.Kind)
	}
	if selected {
		plain := ansi.Truncate(indent+glyph+label+value, width, "…")
		if pad := width - ansi.StringWidth(plain); pad > 0 {
			plain += strings.Repeat(" ", pad)
		}
		return renderStyle(styles.Cursor, plain)
	}
	line := indent + glyph + renderStyle(styles.Key, label) + renderStyle(valueStyle, value)
	return ansi.Truncate(line, width, "…")
}

var controlEscapes = strings.NewReplacer("\n", `\n`, "\r", `\r`, "\t", `\t`)

// escapeControl keeps decoded control characters from breaking row layout.
func escapeControl(s string) string {
	s = controlEscapes.Replace(s)
	if !strings.ContainsFunc(s, isControl) {
		return s
	}
	var b strings.Builder
	for _, r := range s {
		if isControl(r) {
			fmt.Fprintf(&b, `\u%04x`, r)
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// isControl covers C0, DEL and C1 controls plus the line and paragraph
// separators, which terminals treat as line breaks.
func isControl(r rune) bool {
	return unicode.IsControl(r) || r == '\u2028' || r == '\u2029'
}

func (m *Model) statusLine() string {
	st := m.controller.State()
	tone := styles.StatusReady
	switch st.Status {
	case inspector.StatusValid:
		tone = styles.StatusValid
	case inspector.StatusInvalid:
		tone = styles.StatusInvalid
	}
	line := renderStyle(tone, " "+st.Status.String()+" ")
	switch {
	case m.search.Active:
		line += " " + m.searchPrompt()
	case m.pasting:
		line += " " + renderStyle(styles.Info, "Reading clipboard…")
	default:
		if info := m.currentInfo(); info != "" {
			line += " " + renderStyle(styles.Info, info)
		}
	}
	return line
}

func (m *Model) viewHelp() string {
	w, h := m.size()
	left := [][]string{{"", renderStyle(styles.PaneTitle, "Global")}}
	left = append(left, helpRows(m.keys.global())...)
	left = append(left, []string{"", ""}, []string{"", renderStyle(styles.PaneTitle, "Search")})
	left = append(left,
		[]string{renderStyle(styles.Key, "enter"), "keep match"},
		[]string{renderStyle(styles.Key, "esc"), "cancel"},
		[]string{renderStyle(styles.Key, "ctrl+w"), "delete word"},
	)
	right := [][]string{{"", renderStyle(styles.PaneTitle, "Tree pane")}}
	right = append(right, helpRows(m.keys.tree())...)
	align := []table.Alignment{table.AlignRight, table.AlignLeft}
	columns := lipgloss.JoinHorizontal(lipgloss.Top,
		strings.Join(table.Format(left, align), "\n"),
		"    ",
		strings.Join(table.Format(right, align), "\n"),
	)
	body := strings.Split(columns, "\n")
	for i, line := range body {
		body[i] = " " + line
	}
	return m.renderPanel("Key bindings · any key closes", "", body, rect{width: w, height: h}, true)
}

func helpRows(bindings []key.Binding) [][]string {
	rows := make([][]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		rows = append(rows, []string{renderStyle(styles.Key, h.Key), h.Desc})
	}
	return rows
}

// renderPanel draws a bordered box of exactly r.width by r.height cells
// around body, which may contain ANSI styling.
func (m *Model) renderPanel(title, scrollInfo string, body []string, r rect, active bool) string {
	const (
		tlc = "╭"
		trc = "╮"
		blc = "╰"
		brc = "╯"
		hz  = "─"
		vt  = "│"
	)
	innerW := r.innerWidth()
	innerH := r.innerHeight()
	totalWidth := innerW + 2

	borderStyle := styles.PaneBorder
	if active {
		borderStyle = styles.PaneTitle
	}

	titleSeg := " " + title + " "
	scrollSeg := scrollInfo
	dashes := totalWidth - 4 - ansi.StringWidth(titleSeg) - ansi.StringWidth(scrollSeg)
	if dashes < 0 {
		scrollSeg = ""
		dashes = totalWidth - 4 - ansi.StringWidth(titleSeg)
	}
	if dashes < 0 {
		titleSeg = truncate.StringWithTail(titleSeg, uint(max(totalWidth-4, 1)), "…")
		dashes = totalWidth - 4 - ansi.StringWidth(titleSeg)
	}
	if dashes < 0 {
		dashes = 0
	}
	topLine := renderStyle(borderStyle, tlc+hz) +
		renderStyle(styles.PaneTitle, titleSeg) +
		renderStyle(borderStyle, strings.Repeat(hz, dashes)) +
		renderStyle(styles.Info, scrollSeg) +
		renderStyle(borderStyle, hz+trc)
	bottomLine := renderStyle(borderStyle, blc+strings.Repeat(hz, innerW)+brc)

	rows := make([]string, 0, innerH+2)
	rows = append(rows, topLine)
	for i := 0; i < innerH; i++ {
		var content string
		if i < len(body) {
			content = body[i]
		}
		w := lipgloss.Width(content)
		if w > innerW {
			content = truncate.StringWithTail(content, uint(innerW-1), "…")
			w = lipgloss.Width(content)
		}
		if w < innerW {
			content += strings.Repeat(" ", innerW-w)
		}
		rows = append(rows, renderStyle(borderStyle, vt)+content+renderStyle(borderStyle, vt))
	}
	rows = append(rows, bottomLine)
	return strings.Join(rows, "\n")
}

func renderStyle(style *lipgloss.Style, text string) string {
	if style == nil || text == "" {
		return text
	}
	return style.Render(text)
}

func renderStyled(lines []string, style *lipgloss.Style) []string {
	out := make([]string, len(lines))
	for i, line := range lines {
		out[i] = renderStyle(style, line)
	}
	return out
}

func applyWidth(lines []styledLine, width int) []styledLine {
	if width <= 0 {
		return lines
	}
	result := make([]styledLine, len(lines))
	for i, line := range lines {
		text := line.text
		if line.raw {
			if lipgloss.Width(text) > width {
				text = truncate.StringWithTail(text, uint(width-1), "…")
			}
		} else {
			text = truncateText(text, width)
		}
		result[i] = styledLine{text: text, style: line.style, raw: line.raw}
	}
	return result
}

func renderLines(lines []styledLine) string {
	out := make([]string, len(lines))
	for i, line := range lines {
		if line.raw || line.style == nil {
			out[i] = line.text
			continue
		}
		out[i] = line.style.Render(line.text)
	}
	return strings.Join(out, "\n")
}

func truncateText(text string, width int) string {
	if width <= 0 {
		return text
	}
	runes := []rune(text)
	if len(runes) <= width {
		return text
	}
	if width == 1 {
		return string(runes[:1])
	}
	return string(runes[:width-1]) + "…"
}
