package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Tiku57/spreadsheet-app/internal/editor"
)

// gridKeyMap defines key bindings for the grid screen
type gridKeyMap struct {
	Up        key.Binding
	Down      key.Binding
	Left      key.Binding
	Right     key.Binding
	Enter     key.Binding
	Escape    key.Binding
	Search    key.Binding
	PrevTab   key.Binding
	NextTab   key.Binding
	PageUp    key.Binding
	PageDown  key.Binding
	Import    key.Binding
	Export    key.Binding
	Share     key.Binding
	NewAction key.Binding
	Copy      key.Binding
	Help      key.Binding
	Quit      key.Binding
	ForceQuit key.Binding
}

// ShortHelp returns keybindings to be shown in the mini help view
func (k gridKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Enter, k.Escape, k.Search, k.Import, k.Export, k.Help, k.Quit}
}

// FullHelp returns keybindings for the expanded help view
func (k gridKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right, k.Enter, k.Escape},
		{k.Search, k.PrevTab, k.NextTab, k.PageUp, k.PageDown},
		{k.Import, k.Export, k.Share, k.NewAction, k.Copy},
		{k.Help, k.Quit},
	}
}

func newGridKeyMap() gridKeyMap {
	return gridKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("↑", "cell up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("↓", "cell down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left"),
			key.WithHelp("←", "cell left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right"),
			key.WithHelp("→", "cell right"),
		),
		Enter: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "edit/next row"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "stop editing"),
		),
		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "search"),
		),
		PrevTab: key.NewBinding(
			key.WithKeys("["),
			key.WithHelp("[", "prev tab"),
		),
		NextTab: key.NewBinding(
			key.WithKeys("]"),
			key.WithHelp("]", "next tab"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup"),
			key.WithHelp("pgup", "scroll up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown"),
			key.WithHelp("pgdn", "scroll down"),
		),
		Import: key.NewBinding(
			key.WithKeys("ctrl+o"),
			key.WithHelp("ctrl+o", "import"),
		),
		Export: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "export"),
		),
		Share: key.NewBinding(
			key.WithKeys("ctrl+k"),
			key.WithHelp("ctrl+k", "share"),
		),
		NewAction: key.NewBinding(
			key.WithKeys("ctrl+n"),
			key.WithHelp("ctrl+n", "new action"),
		),
		Copy: key.NewBinding(
			key.WithKeys("ctrl+y"),
			key.WithHelp("ctrl+y", "copy cell"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
		),
	}
}

// navigationKey maps a key message onto the editor's navigation keys.
func (k gridKeyMap) navigationKey(msg tea.KeyMsg) editor.Key {
	switch {
	case key.Matches(msg, k.Up):
		return editor.KeyUp
	case key.Matches(msg, k.Down):
		return editor.KeyDown
	case key.Matches(msg, k.Left):
		return editor.KeyLeft
	case key.Matches(msg, k.Right):
		return editor.KeyRight
	case key.Matches(msg, k.Enter):
		return editor.KeyEnter
	case key.Matches(msg, k.Escape):
		return editor.KeyEscape
	default:
		return editor.KeyOther
	}
}
