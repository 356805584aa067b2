package driving

import "github.com/stonynews/stonynews-cli/internal/core/domain"

// SettingsService manages completion provider settings.
type SettingsService interface {
	// Get retrieves current settings, merged over defaults.
	Get() (*domain.NewsSettings, error)

	// Save persists settings.
	Save(settings *domain.NewsSettings) error

	// SetProvider switches provider and resets the model to the provider default
	// when model is empty.
	SetProvider(provider domain.AIProvider, model string) error

	// SetAPIKey stores the provider credential.
	SetAPIKey(key string) error
}
