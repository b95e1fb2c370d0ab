package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the key bindings for the timer screen
type KeyMap struct {
	// Timer
	Toggle    key.Binding
	Reset     key.Binding
	FocusUp   key.Binding
	FocusDown key.Binding
	BreakUp   key.Binding
	BreakDown key.Binding

	// Tasks
	Up         key.Binding
	Down       key.Binding
	AddTask    key.Binding
	ToggleTask key.Binding
	DeleteTask key.Binding

	// Input
	Submit key.Binding
	Cancel key.Binding

	Quit key.Binding
}

// DefaultKeyMap returns the default key bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Toggle: key.NewBinding(
			key.WithKeys(" ", "s"),
			key.WithHelp("space", "start/pause"),
		),
		Reset: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reset"),
		),
		FocusUp: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+/-", "focus length"),
		),
		FocusDown: key.NewBinding(
			key.WithKeys("-", "_"),
		),
		BreakUp: key.NewBinding(
			key.WithKeys(">", "."),
			key.WithHelp("</>", "break length"),
		),
		BreakDown: key.NewBinding(
			key.WithKeys("<", ","),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		AddTask: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add task"),
		),
		ToggleTask: key.NewBinding(
			key.WithKeys("enter", "x"),
			key.WithHelp("x", "check"),
		),
		DeleteTask: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete"),
		),
		Submit: key.NewBinding(
			key.WithKeys("enter"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// HelpBindings returns the bindings listed in the footer.
func (keys KeyMap) HelpBindings() []key.Binding {
	return []key.Binding{
		keys.Toggle, keys.Reset, keys.FocusUp, keys.BreakUp,
		keys.AddTask, keys.ToggleTask, keys.DeleteTask, keys.Quit,
	}
}
