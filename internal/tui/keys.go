package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up      key.Binding
	down    key.Binding
	enter   key.Binding
	esc     key.Binding
	tab     key.Binding
	backtab key.Binding
	quit    key.Binding
	logout  key.Binding
	newItem key.Binding
	edit    key.Binding
	delete  key.Binding
	search  key.Binding
	copy    key.Binding
	reload  key.Binding
	yes     key.Binding
	no      key.Binding
}

var keys = keyMap{
	up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	down:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	enter:   key.NewBinding(key.WithKeys("enter")),
	esc:     key.NewBinding(key.WithKeys("esc")),
	tab:     key.NewBinding(key.WithKeys("tab")),
	backtab: key.NewBinding(key.WithKeys("shift+tab")),
	quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	logout:  key.NewBinding(key.WithKeys("l"), key.WithHelp("l", "logout")),
	newItem: key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "new")),
	edit:    key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit")),
	delete:  key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete")),
	search:  key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
	copy:    key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "copy SKU")),
	reload:  key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reload")),
	yes:     key.NewBinding(key.WithKeys("y")),
	no:      key.NewBinding(key.WithKeys("n", "esc")),
}

// browseHelp renders the hotkey line of the inventory screen.
func browseHelp() string {
	bindings := []key.Binding{
		keys.newItem, keys.edit, keys.delete, keys.search,
		keys.copy, keys.reload, keys.up, keys.down, keys.logout, keys.quit,
	}

	out := ""
	for i, b := range bindings {
		if i > 0 {
			out += " │ "
		}
		h := b.Help()
		out += h.Key + ": " + h.Desc
	}
	return out
}
