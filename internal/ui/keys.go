package ui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the control panel key bindings with help text
type KeyMap struct {
	// Toolbar
	Back    key.Binding
	Forward key.Binding
	Theme   key.Binding
	Help    key.Binding
	Jump    key.Binding
	Quit    key.Binding

	// Selection
	Up     key.Binding
	Down   key.Binding
	Left   key.Binding
	Right  key.Binding
	Enter  key.Binding
	Escape key.Binding

	// Page actions
	Save       key.Binding
	Edit       key.Binding
	Picker     key.Binding
	Run        key.Binding
	ShiftEarly key.Binding
	ShiftLater key.Binding
}

// DefaultKeyMap returns the default key bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Back: key.NewBinding(
			key.WithKeys("b", "alt+left"),
			key.WithHelp("b", "back"),
		),
		Forward: key.NewBinding(
			key.WithKeys("f", "alt+right"),
			key.WithHelp("f", "forward"),
		),
		Theme: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "toggle theme"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Jump: key.NewBinding(
			key.WithKeys("g"),
			key.WithHelp("g", "go to page"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),

		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "decrease"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "increase"),
		),
		Enter: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "select"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
		),

		Save: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "save"),
		),
		Edit: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "edit"),
		),
		Picker: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "color picker"),
		),
		Run: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "run experiment"),
		),
		ShiftEarly: key.NewBinding(
			key.WithKeys("["),
			key.WithHelp("[", "start a day earlier"),
		),
		ShiftLater: key.NewBinding(
			key.WithKeys("]"),
			key.WithHelp("]", "start a day later"),
		),
	}
}

// ShortHelp implements help.KeyMap
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Back, k.Forward, k.Theme, k.Jump, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Back, k.Forward, k.Theme, k.Jump, k.Help, k.Quit},
		{k.Up, k.Down, k.Left, k.Right, k.Enter, k.Escape},
		{k.Save, k.Edit, k.Picker, k.Run, k.ShiftEarly, k.ShiftLater},
	}
}
