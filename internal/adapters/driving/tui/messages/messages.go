// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/google/uuid"

	"github.com/stonynews/stonynews-cli/internal/core/domain"
)

// SearchRequested asks the news view to run a search for Topic.
type SearchRequested struct {
	Topic string
}

// SearchCompleted carries the articles of one search back to the model.
// RequestID identifies the search; only the latest one is displayed.
type SearchCompleted struct {
	RequestID uuid.UUID
	Topic     string
	Articles  []domain.Article
	Err       error
}

// ViewChanged is sent when navigating between views.
type ViewChanged struct {
	View ViewType
}

// ViewType identifies which view is currently active.
type ViewType int

const (
	// ViewNews is the search input, suggestion chips and article cards.
	ViewNews ViewType = iota
	// ViewSettings shows the completion provider settings.
	ViewSettings
	// ViewHelp is the help/keybindings view.
	ViewHelp
)

// String returns the string representation of the view type.
func (v ViewType) String() string {
	switch v {
	case ViewNews:
		return "news"
	case ViewSettings:
		return "settings"
	case ViewHelp:
		return "help"
	default:
		return "unknown"
	}
}

// ErrorOccurred signals that an error happened.
type ErrorOccurred struct {
	Err error
}

// Quit signals the application should exit.
type Quit struct{}

// SettingsLoaded carries the provider settings.
type SettingsLoaded struct {
	Settings *domain.NewsSettings
	Err      error
}

// SettingsSaved signals settings were saved.
type SettingsSaved struct {
	Err error
}
