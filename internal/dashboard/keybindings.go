package dashboard

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the screen's key bindings. It implements help.KeyMap.
type KeyMap struct {
	Up            key.Binding
	Down          key.Binding
	Left          key.Binding
	Right         key.Binding
	Activate      key.Binding
	Refresh       key.Binding
	Menu          key.Binding
	Notifications key.Binding
	Profile       key.Binding
	PageUp        key.Binding
	PageDown      key.Binding
	Dismiss       key.Binding
	Help          key.Binding
	Quit          key.Binding
}

// DefaultKeyMap returns the default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up:            key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:          key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Left:          key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "left")),
		Right:         key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "right")),
		Activate:      key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "open")),
		Refresh:       key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
		Menu:          key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "menu")),
		Notifications: key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "notifications")),
		Profile:       key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "profile")),
		PageUp:        key.NewBinding(key.WithKeys("pgup", "ctrl+u"), key.WithHelp("pgup", "scroll up")),
		PageDown:      key.NewBinding(key.WithKeys("pgdown", "ctrl+d"), key.WithHelp("pgdn", "scroll down")),
		Dismiss:       key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close")),
		Help:          key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:          key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp is shown in the footer.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Refresh, k.Activate, k.Help, k.Quit}
}

// FullHelp is shown in the help overlay.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right, k.Activate},
		{k.Refresh, k.Menu, k.Notifications, k.Profile},
		{k.PageUp, k.PageDown, k.Dismiss, k.Help, k.Quit},
	}
}
