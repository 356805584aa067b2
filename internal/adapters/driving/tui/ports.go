// Package tui provides the interactive terminal interface of stonynews.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/stonynews/stonynews-cli/internal/core/ports/driving"
)

// Ports aggregates the driving port interfaces used by the TUI.
// This provides a single injection point for dependency injection.
type Ports struct {
	// News runs topic searches and lists suggestions.
	News driving.NewsService

	// Settings manages provider settings. Optional; the settings view
	// reports it as unavailable when nil.
	Settings driving.SettingsService
}

// NewPorts creates a new Ports aggregate with the given services.
func NewPorts(news driving.NewsService, settings driving.SettingsService) *Ports {
	return &Ports{
		News:     news,
		Settings: settings,
	}
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p == nil {
		return ErrInvalidPorts
	}
	if p.News == nil {
		return ErrMissingNewsService
	}
	return nil
}
