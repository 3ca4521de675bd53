package tui

import (
	"github.com/charmbracelet/bubbles/key"
)

// ViewerKeyMap defines the key bindings for the scene viewer.
type ViewerKeyMap struct {
	Up        key.Binding
	Down      key.Binding
	Left      key.Binding
	Right     key.Binding
	NextBody  key.Binding
	PrevBody  key.Binding
	NextProbe key.Binding
	NextScene key.Binding
	PrevScene key.Binding
	ScrollUp  key.Binding
	ScrollDn  key.Binding
	Reload    key.Binding
	SaveRun   key.Binding
	Snapshot  key.Binding
	Help      key.Binding
	Quit      key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ViewerKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.NextBody, k.NextProbe, k.NextScene, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ViewerKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.NextBody, k.PrevBody, k.NextProbe},
		{k.NextScene, k.PrevScene, k.ScrollUp, k.ScrollDn},
		{k.Reload, k.SaveRun, k.Snapshot, k.Help, k.Quit},
	}
}

// DefaultViewerKeyMap returns default key bindings.
func DefaultViewerKeyMap() ViewerKeyMap {
	return ViewerKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "move up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "move down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "move left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "move right"),
		),
		NextBody: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next body"),
		),
		PrevBody: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("S-tab", "prev body"),
		),
		NextProbe: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "next probe"),
		),
		NextScene: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "next scene"),
		),
		PrevScene: key.NewBinding(
			key.WithKeys("N"),
			key.WithHelp("N", "prev scene"),
		),
		ScrollUp: key.NewBinding(
			key.WithKeys("["),
			key.WithHelp("[", "results up"),
		),
		ScrollDn: key.NewBinding(
			key.WithKeys("]"),
			key.WithHelp("]", "results down"),
		),
		Reload: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reload"),
		),
		SaveRun: key.NewBinding(
			key.WithKeys("w"),
			key.WithHelp("w", "save run"),
		),
		Snapshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("C-s", "screenshot"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}
