package state

import (
	"strings"
	"unicode"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/atomicstack/tmux-popup-json/internal/tree"
)

// Search is the incremental key search typed after "/" in the tree pane.
type Search struct {
	Active bool
	Query  string
	Cursor int
	// Origin is the node the cursor was on when the search started, so a
	// cancelled search can return to it.
	Origin *tree.Node
}

// Start activates the search with an empty query.
func (s *Search) Start(origin *tree.Node) {
	s.Active = true
	s.Query = ""
	s.Cursor = 0
	s.Origin = origin
}

// Reset deactivates the search and forgets the query.
func (s *Search) Reset() {
	*s = Search{}
}

// CursorPos returns the rune offset of the query cursor.
func (s *Search) CursorPos() int {
	runes := []rune(s.Query)
	if s.Cursor < 0 {
		return 0
	}
	if s.Cursor > len(runes) {
		return len(runes)
	}
	return s.Cursor
}

// InsertText inserts text into the query at the cursor position.
func (s *Search) InsertText(text string) bool {
	insert := []rune(text)
	if len(insert) == 0 {
		return false
	}
	runes := []rune(s.Query)
	pos := s.CursorPos()
	updated := make([]rune, 0, len(runes)+len(insert))
	updated = append(updated, runes[:pos]...)
	updated = append(updated, insert...)
	updated = append(updated, runes[pos:]...)
	s.Query = string(updated)
	s.Cursor = pos + len(insert)
	return true
}

// DeleteRuneBackward deletes the rune before the cursor.
func (s *Search) DeleteRuneBackward() bool {
	runes := []rune(s.Query)
	pos := s.CursorPos()
	if pos == 0 || len(runes) == 0 {
		return false
	}
	updated := append(runes[:pos-1], runes[pos:]...)
	s.Query = string(updated)
	s.Cursor = pos - 1
	return true
}

// DeleteWordBackward deletes the word preceding the cursor.
func (s *Search) DeleteWordBackward() bool {
	runes := []rune(s.Query)
	pos := s.CursorPos()
	if pos == 0 || len(runes) == 0 {
		return false
	}
	i := pos
	for i > 0 && unicode.IsSpace(runes[i-1]) {
		i--
	}
	for i > 0 && !unicode.IsSpace(runes[i-1]) {
		i--
	}
	updated := append(runes[:i], runes[pos:]...)
	s.Query = string(updated)
	s.Cursor = i
	return true
}

// MoveCursorRuneBackward moves the query cursor one rune backward.
func (s *Search) MoveCursorRuneBackward() bool {
	if s.CursorPos() == 0 {
		return false
	}
	s.Cursor = s.CursorPos() - 1
	return true
}

// MoveCursorRuneForward moves the query cursor one rune forward.
func (s *Search) MoveCursorRuneForward() bool {
	pos := s.CursorPos()
	if pos >= len([]rune(s.Query)) {
		return false
	}
	s.Cursor = pos + 1
	return true
}

// keyedNodes lists every node with a key, hidden ones included.
func keyedNodes(t *tree.Tree) []*tree.Node {
	var nodes []*tree.Node
	t.Walk(func(n *tree.Node) bool {
		if n.HasKey {
			nodes = append(nodes, n)
		}
		return true
	})
	return nodes
}

// Matches returns the keyed nodes whose key fuzzily matches query, in
// document order.
func Matches(t *tree.Tree, query string) []*tree.Node {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return nil
	}
	nodes := keyedNodes(t)
	keys := make([]string, len(nodes))
	for i, n := range nodes {
		keys[i] = n.Key
	}
	ranks := fuzzy.RankFindNormalizedFold(trimmed, keys)
	matched := make(map[int]struct{}, len(ranks))
	for _, rank := range ranks {
		matched[rank.OriginalIndex] = struct{}{}
	}
	out := make([]*tree.Node, 0, len(matched))
	for i, n := range nodes {
		if _, ok := matched[i]; ok {
			out = append(out, n)
		}
	}
	return out
}

// BestMatch returns the node whose key best matches query: an exact key,
// then a key prefix, then a key substring, then the closest fuzzy match.
// Ties go to the earliest node in document order.
func BestMatch(t *tree.Tree, query string) *tree.Node {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return nil
	}
	nodes := keyedNodes(t)
	if len(nodes) == 0 {
		return nil
	}
	lower := strings.ToLower(trimmed)
	for _, n := range nodes {
		if strings.EqualFold(n.Key, trimmed) {
			return n
		}
	}
	for _, n := range nodes {
		if strings.HasPrefix(strings.ToLower(n.Key), lower) {
			return n
		}
	}
	for _, n := range nodes {
		if strings.Contains(strings.ToLower(n.Key), lower) {
			return n
		}
	}
	keys := make([]string, len(nodes))
	for i, n := range nodes {
		keys[i] = n.Key
	}
	ranks := fuzzy.RankFindNormalizedFold(trimmed, keys)
	if len(ranks) == 0 {
		return nil
	}
	best := ranks[0]
	for _, rank := range ranks[1:] {
		if rank.Distance < best.Distance {
			best = rank
			continue
		}
		if rank.Distance == best.Distance && rank.OriginalIndex < best.OriginalIndex {
			best = rank
		}
	}
	if best.OriginalIndex < 0 || best.OriginalIndex >= len(nodes) {
		return nil
	}
	return nodes[best.OriginalIndex]
}
