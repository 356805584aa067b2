package services

import (
	"fmt"
	"os"
	"strings"

	"github.com/stonynews/stonynews-cli/internal/core/domain"
	"github.com/stonynews/stonynews-cli/internal/core/ports/driven"
	"github.com/stonynews/stonynews-cli/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
//
//nolint:gosec // G101: These are config key names, not actual credentials.
const (
	keyLLMProvider      = "llm.provider"
	keyLLMModel         = "llm.model"
	keyLLMBaseURL       = "llm.base_url"
	keyLLMAPIKey        = "llm.api_key"
	keyLLMTemperature   = "llm.temperature_percent"
	keyLLMTimeout       = "llm.timeout_seconds"
	keyLLMRatePerMinute = "llm.rate_per_minute"
)

// credentialEnv lists the environment variables checked for each provider, in order.
// Environment values take precedence over the config file.
var credentialEnv = map[domain.AIProvider][]string{
	domain.AIProviderGemini: {"GEMINI_API_KEY", "API_KEY"},
	domain.AIProviderOpenAI: {"OPENAI_API_KEY", "API_KEY"},
}

// SettingsService manages completion provider settings.
type SettingsService struct {
	configStore driven.ConfigStore
	lookupEnv   func(string) (string, bool)
}

// NewSettingsService creates a new settings service.
// configStore may be nil, in which case only defaults and the environment are used.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{
		configStore: configStore,
		lookupEnv:   os.LookupEnv,
	}
}

// SetEnvLookup replaces the environment lookup. Used by tests.
func (s *SettingsService) SetEnvLookup(lookup func(string) (string, bool)) {
	if lookup != nil {
		s.lookupEnv = lookup
	}
}

// Get retrieves current settings merged over defaults.
// The API key is resolved from the environment first, then the config file.
func (s *SettingsService) Get() (*domain.NewsSettings, error) {
	settings := domain.DefaultNewsSettings()

	if provider := domain.AIProvider(s.getString(keyLLMProvider)); provider != "" {
		if !provider.IsValid() {
			return nil, fmt.Errorf("%w: %s", domain.ErrUnsupportedProvider, provider)
		}
		settings.Provider = provider
		settings.Model = domain.DefaultModels()[provider]
	}
	if model := s.getString(keyLLMModel); model != "" {
		settings.Model = model
	}
	settings.BaseURL = s.getString(keyLLMBaseURL)
	if pct, ok := s.getInt(keyLLMTemperature); ok {
		settings.Temperature = float64(pct) / 100
	}
	if secs, ok := s.getInt(keyLLMTimeout); ok && secs > 0 {
		settings.TimeoutSeconds = secs
	}
	if rpm, ok := s.getInt(keyLLMRatePerMinute); ok && rpm > 0 {
		settings.RatePerMinute = rpm
	}

	settings.APIKey = s.resolveAPIKey(settings.Provider)
	return &settings, nil
}

// Defaults returns the default settings with the default provider's credential
// resolved. Callers use it when the stored settings cannot be read.
func (s *SettingsService) Defaults() *domain.NewsSettings {
	settings := domain.DefaultNewsSettings()
	settings.APIKey = s.resolveAPIKey(settings.Provider)
	return &settings
}

// Save persists settings. The API key is not written; use SetAPIKey so that
// keys taken from the environment never leak into the config file.
func (s *SettingsService) Save(settings *domain.NewsSettings) error {
	if s.configStore == nil {
		return fmt.Errorf("save settings: no config store")
	}
	if !settings.Provider.IsValid() {
		return fmt.Errorf("%w: %s", domain.ErrUnsupportedProvider, settings.Provider)
	}

	values := []struct {
		key   string
		value any
	}{
		{keyLLMProvider, settings.Provider.String()},
		{keyLLMModel, settings.Model},
		{keyLLMBaseURL, settings.BaseURL},
		{keyLLMTemperature, int(settings.ClampedTemperature()*100 + 0.5)},
		{keyLLMTimeout, settings.TimeoutSeconds},
		{keyLLMRatePerMinute, settings.RatePerMinute},
	}
	for _, v := range values {
		if err := s.configStore.Set(v.key, v.value); err != nil {
			return fmt.Errorf("save %s: %w", v.key, err)
		}
	}
	return nil
}

// SetProvider switches provider. An empty model selects the provider default.
func (s *SettingsService) SetProvider(provider domain.AIProvider, model string) error {
	if !provider.IsValid() {
		return fmt.Errorf("%w: %s", domain.ErrUnsupportedProvider, provider)
	}

	settings, err := s.Get()
	if err != nil {
		// An invalid stored provider is exactly what this call repairs.
		settings = s.Defaults()
	}

	settings.Provider = provider
	settings.Model = strings.TrimSpace(model)
	if settings.Model == "" {
		settings.Model = domain.DefaultModels()[provider]
	}
	return s.Save(settings)
}

// SetAPIKey stores the provider credential in the config file.
func (s *SettingsService) SetAPIKey(key string) error {
	if s.configStore == nil {
		return fmt.Errorf("save api key: no config store")
	}
	key = strings.TrimSpace(key)
	if domain.IsPlaceholderKey(key) {
		return fmt.Errorf("%w: api key is empty or placeholder", domain.ErrInvalidInput)
	}
	if err := s.configStore.Set(keyLLMAPIKey, key); err != nil {
		return fmt.Errorf("save api key: %w", err)
	}
	return nil
}

// resolveAPIKey returns the first non-placeholder key from the environment,
// then the config file.
func (s *SettingsService) resolveAPIKey(provider domain.AIProvider) string {
	for _, name := range credentialEnv[provider] {
		if v, ok := s.lookupEnv(name); ok && !domain.IsPlaceholderKey(v) {
			return strings.TrimSpace(v)
		}
	}
	return strings.TrimSpace(s.getString(keyLLMAPIKey))
}

func (s *SettingsService) getString(key string) string {
	if s.configStore == nil {
		return ""
	}
	return strings.TrimSpace(s.configStore.GetString(key))
}

func (s *SettingsService) getInt(key string) (int, bool) {
	if s.configStore == nil {
		return 0, false
	}
	if _, ok := s.configStore.Get(key); !ok {
		return 0, false
	}
	return s.configStore.GetInt(key), true
}
