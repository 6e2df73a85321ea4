package ui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

// KeyMap holds the application bindings. Keys not bound here are passed to
// the panel, whose viewport scrolls on arrows and page keys.
type KeyMap struct {
	Expand         key.Binding
	Stack          key.Binding
	Minimize       key.Binding
	ExpandNow      key.Binding
	StackNow       key.Binding
	MinimizeNow    key.Binding
	Snapshot       key.Binding
	Park           key.Binding
	ResetSnapshot  key.Binding
	ExportSnapshot key.Binding
	Quit           key.Binding
}

// DefaultKeyMap returns the standard bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Expand:         key.NewBinding(key.WithKeys("3"), key.WithHelp("3", "expand")),
		Stack:          key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "stack")),
		Minimize:       key.NewBinding(key.WithKeys("1"), key.WithHelp("1", "minimize")),
		ExpandNow:      key.NewBinding(key.WithKeys("#"), key.WithHelp("#", "expand now")),
		StackNow:       key.NewBinding(key.WithKeys("@"), key.WithHelp("@", "stack now")),
		MinimizeNow:    key.NewBinding(key.WithKeys("!"), key.WithHelp("!", "minimize now")),
		Snapshot:       key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "snapshot")),
		Park:           key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "park")),
		ResetSnapshot:  key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "reset")),
		ExportSnapshot: key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "export png")),
		Quit:           key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Minimize, k.Stack, k.Expand, k.Snapshot, k.Park, k.ResetSnapshot, k.ExportSnapshot, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Minimize, k.Stack, k.Expand},
		{k.MinimizeNow, k.StackNow, k.ExpandNow},
		{k.Snapshot, k.Park, k.ResetSnapshot, k.ExportSnapshot},
		{k.Quit},
	}
}

// newHelp returns a help model styled like the rest of the UI.
func newHelp() help.Model {
	h := help.New()
	h.Styles.ShortKey = lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHighlight)).
		Bold(true)
	h.Styles.ShortDesc = lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted))
	h.Styles.ShortSeparator = lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted))
	return h
}
