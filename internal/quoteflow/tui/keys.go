package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the wizard keybindings.
type KeyMap struct {
	Quit     key.Binding
	Back     key.Binding
	NavUp    key.Binding
	NavDown  key.Binding
	Left     key.Binding
	Right    key.Binding
	Next     key.Binding
	Select   key.Binding
	Toggle   key.Binding
	Add      key.Binding
	Remove   key.Binding
	Estimate key.Binding
}

func NewKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		NavUp: key.NewBinding(
			key.WithKeys("up", "shift+tab"),
			key.WithHelp("up", "previous field"),
		),
		NavDown: key.NewBinding(
			key.WithKeys("down", "tab"),
			key.WithHelp("down", "next field"),
		),
		Left: key.NewBinding(
			key.WithKeys("left"),
			key.WithHelp("left", "previous option"),
		),
		Right: key.NewBinding(
			key.WithKeys("right"),
			key.WithHelp("right", "next option"),
		),
		Next: key.NewBinding(
			key.WithKeys("ctrl+n", "pgdown"),
			key.WithHelp("ctrl+n", "next step"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "select"),
		),
		Toggle: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "toggle"),
		),
		Add: key.NewBinding(
			key.WithKeys("ctrl+a"),
			key.WithHelp("ctrl+a", "add entry"),
		),
		Remove: key.NewBinding(
			key.WithKeys("ctrl+x"),
			key.WithHelp("ctrl+x", "remove entry"),
		),
		Estimate: key.NewBinding(
			key.WithKeys("ctrl+e"),
			key.WithHelp("ctrl+e", "estimate base value"),
		),
	}
}
