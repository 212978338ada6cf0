// Package tree turns a parsed JSON document into a collapsible display tree.
//
// A Tree is rebuilt from scratch on every render. Collapse state lives on the
// nodes and is never carried from one render to the next.
package tree

import (
	"encoding/json"
	"fmt"
	"strconv"
	"unicode"

	"github.com/atomicstack/tmux-popup-json/internal/jsondoc"
)

// Node is one rendered row of the document. Containers are collapsible
// headers with children; everything else is a leaf carrying display text.
type Node struct {
	Key         string
	HasKey      bool
	Kind        jsondoc.Kind
	Collapsible bool
	Collapsed   bool
	// Preview is the header summary, e.g. "{ 2 items }". Empty for leaves.
	Preview string
	// Text is the display form of a leaf. Strings keep their quotes.
	Text     string
	Children []*Node
	Parent   *Node
	Path     string
	Depth    int
}

// Tree is a rendered document.
type Tree struct {
	Root *Node
}

// Render builds a fresh tree for v. The input value is never modified.
func Render(v *jsondoc.Value) *Tree {
	return &Tree{Root: renderNode(v, "", false, nil, "$", 0)}
}

func renderNode(v *jsondoc.Value, key string, hasKey bool, parent *Node, path string, depth int) *Node {
	kind := jsondoc.Classify(v)
	n := &Node{
		Key:    key,
		HasKey: hasKey,
		Kind:   kind,
		Parent: parent,
		Path:   path,
		Depth:  depth,
	}
	if !kind.IsContainer() {
		n.Text = leafText(v)
		return n
	}
	n.Collapsible = true
	n.Preview = preview(kind, v.Len())
	n.Children = make([]*Node, 0, v.Len())
	switch kind {
	case jsondoc.KindObject:
		for _, m := range v.Members() {
			n.Children = append(n.Children, renderNode(m.Value, m.Key, true, n, memberPath(path, m.Key), depth+1))
		}
	case jsondoc.KindArray:
		for i, e := range v.Elements() {
			idx := strconv.Itoa(i)
			n.Children = append(n.Children, renderNode(e, idx, true, n, fmt.Sprintf("%s[%d]", path, i), depth+1))
		}
	}
	return n
}

func preview(kind jsondoc.Kind, size int) string {
	opening, closing := "{", "}"
	if kind == jsondoc.KindArray {
		opening, closing = "[", "]"
	}
	return fmt.Sprintf("%s %d items %s", opening, size, closing)
}

func leafText(v *jsondoc.Value) string {
	if jsondoc.Classify(v) == jsondoc.KindString {
		return `"` + v.Str() + `"`
	}
	return v.Canonical()
}

func memberPath(parent, key string) string {
	if isIdentifier(key) {
		return parent + "." + key
	}
	quoted, _ := json.Marshal(key)
	return parent + "[" + string(quoted) + "]"
}

func isIdentifier(key string) bool {
	if key == "" {
		return false
	}
	for i, r := range key {
		if r == '_' || r == '$' || unicode.IsLetter(r) {
			continue
		}
		if i > 0 && unicode.IsDigit(r) {
			continue
		}
		return false
	}
	return true
}

// Label returns the key label shown before a keyed node, e.g. `"a":`.
func (n *Node) Label() string {
	if n == nil || !n.HasKey {
		return ""
	}
	return `"` + n.Key + `":`
}

// Toggle flips the collapsed state of a collapsible node. Parents and
// siblings are unaffected. Leaves are left alone and report false.
func (n *Node) Toggle() bool {
	if n == nil || !n.Collapsible {
		return false
	}
	n.Collapsed = !n.Collapsed
	return true
}

// SetCollapsed forces the collapsed state and reports whether it changed.
func (n *Node) SetCollapsed(collapsed bool) bool {
	if n == nil || !n.Collapsible || n.Collapsed == collapsed {
		return false
	}
	n.Collapsed = collapsed
	return true
}

// Visible reports whether every ancestor of n is expanded.
func (n *Node) Visible() bool {
	for p := n.Parent; p != nil; p = p.Parent {
		if p.Collapsed {
			return false
		}
	}
	return true
}

// Walk visits every node depth first in display order, including those
// hidden under collapsed headers. Returning false from fn stops the walk.
func (t *Tree) Walk(fn func(*Node) bool) {
	if t == nil || t.Root == nil {
		return
	}
	walk(t.Root, fn)
}

func walk(n *Node, fn func(*Node) bool) bool {
	if !fn(n) {
		return false
	}
	for _, c := range n.Children {
		if !walk(c, fn) {
			return false
		}
	}
	return true
}

// ExpandAll expands every collapsible node and returns how many changed.
func ExpandAll(t *Tree) int {
	return setAll(t, false)
}

// CollapseAll collapses every collapsible node and returns how many changed.
func CollapseAll(t *Tree) int {
	return setAll(t, true)
}

func setAll(t *Tree, collapsed bool) int {
	changed := 0
	t.Walk(func(n *Node) bool {
		if n.SetCollapsed(collapsed) {
			changed++
		}
		return true
	})
	return changed
}

// Row is a visible line of the tree pane.
type Row struct {
	Node  *Node
	Depth int
}

// Rows flattens the visible part of t. Children of collapsed headers are
// omitted.
func Rows(t *Tree) []Row {
	if t == nil || t.Root == nil {
		return nil
	}
	var rows []Row
	var visit func(*Node)
	visit = func(n *Node) {
		rows = append(rows, Row{Node: n, Depth: n.Depth})
		if n.Collapsed {
			return
		}
		for _, c := range n.Children {
			visit(c)
		}
	}
	visit(t.Root)
	return rows
}

// LeafCount returns the number of primitive values in the tree.
func (t *Tree) LeafCount() int {
	count := 0
	t.Walk(func(n *Node) bool {
		if !n.Collapsible {
			count++
		}
		return true
	})
	return count
}

// NodeCount returns the total number of nodes in the tree.
func (t *Tree) NodeCount() int {
	count := 0
	t.Walk(func(*Node) bool {
		count++
		return true
	})
	return count
}

// Depth returns the deepest node depth; a lone root has depth 0.
func (t *Tree) Depth() int {
	deepest := 0
	t.Walk(func(n *Node) bool {
		if n.Depth > deepest {
			deepest = n.Depth
		}
		return true
	})
	return deepest
}

// Find returns the first node whose path equals path.
func (t *Tree) Find(path string) *Node {
	var found *Node
	t.Walk(func(n *Node) bool {
		if n.Path == path {
			found = n
			return false
		}
		return true
	})
	return found
}
