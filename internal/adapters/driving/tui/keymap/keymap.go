// Package keymap defines keybindings for the TUI.
package keymap

import (
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap defines all keybindings for the TUI.
type KeyMap struct {
	// Quit exits the application.
	Quit key.Binding

	// Help shows the help view.
	Help key.Binding

	// Back returns to the previous view.
	Back key.Binding

	// Search submits the topic in the input.
	Search key.Binding

	// Up moves to the previous article.
	Up key.Binding

	// Down moves to the next article.
	Down key.Binding

	// NextSuggestion highlights the next suggestion chip.
	NextSuggestion key.Binding

	// PrevSuggestion highlights the previous suggestion chip.
	PrevSuggestion key.Binding

	// NewSearch returns focus to the topic input.
	NewSearch key.Binding

	// Settings opens the provider settings.
	Settings key.Binding
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() *KeyMap {
	return &KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quitter"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "aide"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "retour"),
		),
		Search: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "rechercher"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "haut"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "bas"),
		),
		NextSuggestion: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "suggestion"),
		),
		PrevSuggestion: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "suggestion préc."),
		),
		NewSearch: key.NewBinding(
			key.WithKeys("/", "n"),
			key.WithHelp("/", "nouveau sujet"),
		),
		Settings: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "réglages"),
		),
	}
}

// ShortHelp returns the bindings shown while typing a topic.
func (k *KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Search, k.NextSuggestion, k.Back}
}

// ResultsHelp returns the bindings shown while browsing articles.
func (k *KeyMap) ResultsHelp() []key.Binding {
	return []key.Binding{k.NewSearch, k.Up, k.Down, k.Settings, k.Quit}
}

// FullHelp returns the full list of keybindings for the help view.
func (k *KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Search, k.NextSuggestion, k.PrevSuggestion},
		{k.Up, k.Down, k.NewSearch},
		{k.Settings, k.Back, k.Help, k.Quit},
	}
}

// Matches checks if a key string matches a binding.
func Matches(keyStr string, binding key.Binding) bool {
	for _, k := range binding.Keys() {
		if k == keyStr {
			return true
		}
	}
	return false
}
