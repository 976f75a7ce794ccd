package ui

import "github.com/charmbracelet/bubbles/key"

// ComboBoxKeyMap holds the keys the combo box reacts to. Printable keys are
// left to the text input, so navigation uses arrows only.
type ComboBoxKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Select   key.Binding
	Close    key.Binding
}

var comboBoxKeys = ComboBoxKeyMap{
	Up:       key.NewBinding(key.WithKeys("up", "ctrl+p"), key.WithHelp("↑/↓", "move")),
	Down:     key.NewBinding(key.WithKeys("down", "ctrl+n"), key.WithHelp("↑/↓", "move")),
	PageUp:   key.NewBinding(key.WithKeys("pgup"), key.WithHelp("pgup", "page up")),
	PageDown: key.NewBinding(key.WithKeys("pgdown"), key.WithHelp("pgdn", "page down")),
	Select:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("⏎", "select")),
	Close:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close list")),
}

// AppKeyMap defines the host program's shortcuts.
type AppKeyMap struct {
	Navigate key.Binding
	Select   key.Binding
	ShowAll  key.Binding
	Clear    key.Binding
	Accept   key.Binding
	Focus    key.Binding
	Theme    key.Binding
	Quit     key.Binding
}

// DefaultAppKeyMap returns the default keybindings for the picker.
func DefaultAppKeyMap() AppKeyMap {
	return AppKeyMap{
		Navigate: comboBoxKeys.Down,
		Select:   comboBoxKeys.Select,
		ShowAll:  key.NewBinding(key.WithKeys("ctrl+a"), key.WithHelp("ctrl+a", "show all")),
		Clear:    key.NewBinding(key.WithKeys("ctrl+u"), key.WithHelp("ctrl+u", "clear")),
		Accept:   key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "accept")),
		Focus:    key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "focus")),
		Theme:    key.NewBinding(key.WithKeys("ctrl+t"), key.WithHelp("ctrl+t", "theme")),
		Quit:     key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k AppKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Navigate, k.Select, k.ShowAll, k.Accept, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k AppKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Navigate, k.Select, k.ShowAll, k.Clear},
		{k.Accept, k.Focus, k.Theme, k.Quit},
	}
}
