package ui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up          key.Binding
	Down        key.Binding
	Toggle      key.Binding
	Collapse    key.Binding
	Search      key.Binding
	ClearSearch key.Binding
	NextOS      key.Binding
	PrevOS      key.Binding
	NextCat     key.Binding
	PrevCat     key.Binding
	ZoomIn      key.Binding
	ZoomOut     key.Binding
	Dark        key.Binding
	Top         key.Binding
	Copy        key.Binding
	Help        key.Binding
	Quit        key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Search, k.NextOS, k.NextCat, k.Toggle, k.Dark, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Toggle, k.Collapse},
		{k.Search, k.ClearSearch, k.NextOS, k.PrevOS, k.NextCat, k.PrevCat},
		{k.ZoomIn, k.ZoomOut, k.Copy},
		{k.Dark, k.Top, k.Help, k.Quit},
	}
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:          key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("↑/k", "up")),
		Down:        key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("↓/j", "down")),
		Toggle:      key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "expand")),
		Collapse:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "collapse")),
		Search:      key.NewBinding(key.WithKeys("/", "f"), key.WithHelp("/", "search")),
		ClearSearch: key.NewBinding(key.WithKeys("F"), key.WithHelp("F", "clear search")),
		NextOS:      key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "next os")),
		PrevOS:      key.NewBinding(key.WithKeys("O"), key.WithHelp("O", "prev os")),
		NextCat:     key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "next category")),
		PrevCat:     key.NewBinding(key.WithKeys("C"), key.WithHelp("C", "prev category")),
		ZoomIn:      key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+", "zoom in")),
		ZoomOut:     key.NewBinding(key.WithKeys("-"), key.WithHelp("-", "zoom out")),
		Dark:        key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "dark mode")),
		Top:         key.NewBinding(key.WithKeys("g", "home"), key.WithHelp("g", "top")),
		Copy:        key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "copy keys")),
		Help:        key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:        key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}
