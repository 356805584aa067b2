package mcp

import (
	"github.com/stonynews/stonynews-cli/internal/core/ports/driving"
)

// Ports are the services the MCP tools and resources call.
type Ports struct {
	// News runs topic searches.
	News driving.NewsService

	// Settings exposes the active provider configuration. Optional.
	Settings driving.SettingsService
}

// Validate reports ErrMissingNewsService when News is unset.
func (p *Ports) Validate() error {
	if p == nil || p.News == nil {
		return ErrMissingNewsService
	}
	return nil
}
