package ui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	NextCategory key.Binding
	PrevCategory key.Binding
	NextSample   key.Binding
	PrevSample   key.Binding
	Theme        key.Binding
	LineNumbers  key.Binding
	Copy         key.Binding
	CopyButton   key.Binding
	Label        key.Binding
	Up           key.Binding
	Down         key.Binding
	Help         key.Binding
	Quit         key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		NextCategory: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next category")),
		PrevCategory: key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("S-tab", "prev category")),
		NextSample:   key.NewBinding(key.WithKeys("right", "]"), key.WithHelp("→/]", "next sample")),
		PrevSample:   key.NewBinding(key.WithKeys("left", "["), key.WithHelp("←/[", "prev sample")),
		Theme:        key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "theme")),
		LineNumbers:  key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "line numbers")),
		Copy:         key.NewBinding(key.WithKeys("c", "y"), key.WithHelp("c", "copy")),
		CopyButton:   key.NewBinding(key.WithKeys("b"), key.WithHelp("b", "copy button")),
		Label:        key.NewBinding(key.WithKeys("l"), key.WithHelp("l", "label")),
		Up:           key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "scroll up")),
		Down:         key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "scroll down")),
		Help:         key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more")),
		Quit:         key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextCategory, k.NextSample, k.Copy, k.Theme, k.LineNumbers, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.NextCategory, k.PrevCategory, k.NextSample, k.PrevSample},
		{k.Copy, k.CopyButton, k.Label},
		{k.Theme, k.LineNumbers, k.Up, k.Down},
		{k.Help, k.Quit},
	}
}
