package tui

import "github.com/charmbracelet/bubbles/key"

// MatchKeyMap defines the key bindings for a running match.
type MatchKeyMap struct {
	Toggle key.Binding
	Reset  key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k MatchKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.Reset, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k MatchKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Toggle, k.Reset, k.Quit}}
}

// DefaultMatchKeyMap returns default key bindings. Gestures themselves are
// mouse driven: left drag places a boost pad, right drag paints an ink wall.
func DefaultMatchKeyMap() MatchKeyMap {
	return MatchKeyMap{
		Toggle: key.NewBinding(
			key.WithKeys("t", "tab"),
			key.WithHelp("t", "switch side"),
		),
		Reset: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reset match"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}
