package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap lists every binding. Global bindings work from either pane, tree
// bindings only while the tree pane has focus.
type keyMap struct {
	Format      key.Binding
	Clear       key.Binding
	ExpandAll   key.Binding
	CollapseAll key.Binding
	Paste       key.Binding
	Focus       key.Binding
	Help        key.Binding
	Quit        key.Binding

	Up       key.Binding
	Down     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Home     key.Binding
	End      key.Binding
	Toggle   key.Binding
	Collapse key.Binding
	Expand   key.Binding
	Search   key.Binding
	TreeHelp key.Binding
	TreeQuit key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Format:      key.NewBinding(key.WithKeys("ctrl+f"), key.WithHelp("ctrl+f", "format input")),
		Clear:       key.NewBinding(key.WithKeys("ctrl+x"), key.WithHelp("ctrl+x", "clear")),
		ExpandAll:   key.NewBinding(key.WithKeys("ctrl+e"), key.WithHelp("ctrl+e", "expand all")),
		CollapseAll: key.NewBinding(key.WithKeys("ctrl+g"), key.WithHelp("ctrl+g", "collapse all")),
		Paste:       key.NewBinding(key.WithKeys("ctrl+v"), key.WithHelp("ctrl+v", "paste clipboard")),
		Focus:       key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "switch pane")),
		Help:        key.NewBinding(key.WithKeys("f1"), key.WithHelp("f1", "toggle help")),
		Quit:        key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),

		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		PageUp:   key.NewBinding(key.WithKeys("pgup"), key.WithHelp("pgup", "page up")),
		PageDown: key.NewBinding(key.WithKeys("pgdown"), key.WithHelp("pgdown", "page down")),
		Home:     key.NewBinding(key.WithKeys("home", "g"), key.WithHelp("home/g", "first row")),
		End:      key.NewBinding(key.WithKeys("end", "G"), key.WithHelp("end/G", "last row")),
		Toggle:   key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter/space", "toggle node")),
		Collapse: key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "collapse or parent")),
		Expand:   key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "expand or child")),
		Search:   key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search keys")),
		TreeHelp: key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "toggle help")),
		TreeQuit: key.NewBinding(key.WithKeys("q", "esc"), key.WithHelp("q/esc", "quit")),
	}
}

func (k keyMap) global() []key.Binding {
	return []key.Binding{k.Format, k.Clear, k.ExpandAll, k.CollapseAll, k.Paste, k.Focus, k.Help, k.Quit}
}

func (k keyMap) tree() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.PageUp, k.PageDown, k.Home, k.End, k.Toggle, k.Collapse, k.Expand, k.Search, k.TreeHelp, k.TreeQuit}
}
