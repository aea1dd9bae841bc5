package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Sidebar key.Binding
	Open    key.Binding
	Attrs   key.Binding
	Clear   key.Binding
	CycleX  key.Binding
	CycleY  key.Binding
	Rotate  key.Binding
	Help    key.Binding
	Quit    key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Sidebar: key.NewBinding(key.WithKeys("tab"), key.WithHelp("Tab", "files")),
		Open:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("Enter", "open")),
		Attrs:   key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "table")),
		Clear:   key.NewBinding(key.WithKeys("c", "esc"), key.WithHelp("c", "clear")),
		CycleX:  key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "next x")),
		CycleY:  key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "next y")),
		Rotate:  key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "rotate")),
		Help:    key.NewBinding(key.WithKeys("h"), key.WithHelp("h", "help")),
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Sidebar, k.Open, k.Attrs, k.Clear, k.CycleX, k.CycleY, k.Rotate, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Sidebar, k.Open, k.Attrs},
		{k.Clear, k.CycleX, k.CycleY, k.Rotate},
		{k.Help, k.Quit},
	}
}
