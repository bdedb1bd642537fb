package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all keyboard shortcuts
type KeyMap struct {
	Up          key.Binding // k - move up
	Down        key.Binding // j - move down
	Top         key.Binding // g - jump to top
	Bottom      key.Binding // G - jump to bottom
	Select      key.Binding // Enter - edit provider
	Add         key.Binding // a - add empty provider
	AddPreset   key.Binding // p - add provider from preset
	Delete      key.Binding // d - delete provider
	Import      key.Binding // i - import JSON
	Generate    key.Binding // o - generate output JSON
	AddModel    key.Binding // ctrl+n - add model row (form)
	RemoveModel key.Binding // ctrl+d - remove model row (form)
	Copy        key.Binding // c - copy output to clipboard
	Paste       key.Binding // ctrl+v - load clipboard into import
	Submit      key.Binding // ctrl+s - submit import
	Help        key.Binding // ? - help
	Quit        key.Binding // q - quit
	Cancel      key.Binding // Esc - cancel / back
}

// DefaultKeyMap returns the default key bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/↑", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/↓", "down"),
		),
		Top: key.NewBinding(
			key.WithKeys("g"),
			key.WithHelp("g", "top"),
		),
		Bottom: key.NewBinding(
			key.WithKeys("G"),
			key.WithHelp("G", "bottom"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("Enter", "edit provider"),
		),
		Add: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add provider"),
		),
		AddPreset: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "add from preset"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete provider"),
		),
		Import: key.NewBinding(
			key.WithKeys("i"),
			key.WithHelp("i", "import JSON"),
		),
		Generate: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "generate JSON"),
		),
		AddModel: key.NewBinding(
			key.WithKeys("ctrl+n"),
			key.WithHelp("Ctrl+N", "add model"),
		),
		RemoveModel: key.NewBinding(
			key.WithKeys("ctrl+d"),
			key.WithHelp("Ctrl+D", "remove model"),
		),
		Copy: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "copy to clipboard"),
		),
		Paste: key.NewBinding(
			key.WithKeys("ctrl+v"),
			key.WithHelp("Ctrl+V", "paste clipboard"),
		),
		Submit: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("Ctrl+S", "import"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("Esc", "back"),
		),
	}
}

// ShortHelp returns short help text
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Add, k.Import, k.Generate, k.Quit}
}

// FullHelp returns full help text
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Top, k.Bottom},
		{k.Select, k.Add, k.AddPreset, k.Delete},
		{k.Import, k.Generate, k.Copy, k.Paste},
		{k.AddModel, k.RemoveModel, k.Help, k.Quit},
	}
}
