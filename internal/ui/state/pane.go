// Package state holds the tree pane's cursor, viewport and key search state.
package state

import "github.com/atomicstack/tmux-popup-json/internal/tree"

// Pane tracks the visible rows of the rendered tree together with the
// cursor and the first row in view.
type Pane struct {
	Tree           *tree.Tree
	Rows           []tree.Row
	Cursor         int
	ViewportOffset int
}

// NewPane returns a pane showing t.
func NewPane(t *tree.Tree) *Pane {
	p := &Pane{}
	p.SetTree(t)
	return p
}

// SetTree replaces the tree and resets the cursor to the first row.
func (p *Pane) SetTree(t *tree.Tree) {
	p.Tree = t
	p.Cursor = 0
	p.ViewportOffset = 0
	p.Rows = tree.Rows(t)
}

// Refresh recomputes the visible rows after collapse state changed. The
// cursor stays on the same node, or on its nearest visible ancestor.
func (p *Pane) Refresh() {
	current := p.Current()
	p.Rows = tree.Rows(p.Tree)
	if current == nil {
		p.clampCursor()
		return
	}
	for n := current; n != nil; n = n.Parent {
		if idx := p.IndexOf(n); idx >= 0 {
			p.Cursor = idx
			return
		}
	}
	p.clampCursor()
}

func (p *Pane) clampCursor() {
	if len(p.Rows) == 0 {
		p.Cursor = 0
		return
	}
	if p.Cursor < 0 {
		p.Cursor = 0
	}
	if p.Cursor >= len(p.Rows) {
		p.Cursor = len(p.Rows) - 1
	}
}

// Current returns the node under the cursor.
func (p *Pane) Current() *tree.Node {
	if p.Cursor < 0 || p.Cursor >= len(p.Rows) {
		return nil
	}
	return p.Rows[p.Cursor].Node
}

// IndexOf returns the visible row index of n, or -1.
func (p *Pane) IndexOf(n *tree.Node) int {
	if n == nil {
		return -1
	}
	for i, row := range p.Rows {
		if row.Node == n {
			return i
		}
	}
	return -1
}

// Reveal expands every collapsed ancestor of n and moves the cursor onto it.
func (p *Pane) Reveal(n *tree.Node) bool {
	if n == nil {
		return false
	}
	for a := n.Parent; a != nil; a = a.Parent {
		a.SetCollapsed(false)
	}
	p.Rows = tree.Rows(p.Tree)
	idx := p.IndexOf(n)
	if idx < 0 {
		return false
	}
	p.Cursor = idx
	return true
}

// RowAt maps a line offset inside the viewport to a row index.
func (p *Pane) RowAt(line int) int {
	idx := p.ViewportOffset + line
	if line < 0 || idx < 0 || idx >= len(p.Rows) {
		return -1
	}
	return idx
}

// VisibleRows returns the rows inside a viewport of the given height.
func (p *Pane) VisibleRows(maxVisible int) []tree.Row {
	if len(p.Rows) == 0 {
		return nil
	}
	if maxVisible <= 0 {
		return p.Rows
	}
	start := p.ViewportOffset
	if start < 0 {
		start = 0
	}
	if start > len(p.Rows)-1 {
		start = len(p.Rows) - 1
	}
	end := start + maxVisible
	if end > len(p.Rows) {
		end = len(p.Rows)
	}
	return p.Rows[start:end]
}
