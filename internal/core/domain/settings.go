package domain

import "strings"

const unknownDescription = "Unknown"

// PlaceholderAPIKey is the value shipped in template .env files.
// A credential equal to it is treated as absent.
//
//nolint:gosec // G101: placeholder marker, not a credential.
const PlaceholderAPIKey = "PLACEHOLDER_API_KEY"

// AIProvider identifies a completion service provider.
type AIProvider string

// Available AI providers.
const (
	// AIProviderGemini is the Google Gemini API with search grounding.
	AIProviderGemini AIProvider = "gemini"

	// AIProviderOpenAI is any OpenAI-compatible chat completions API.
	// It has no search grounding, so articles carry no citations.
	AIProviderOpenAI AIProvider = "openai"
)

// IsValid returns true if the AI provider is recognised.
func (p AIProvider) IsValid() bool {
	switch p {
	case AIProviderGemini, AIProviderOpenAI:
		return true
	default:
		return false
	}
}

// SupportsGrounding returns true if the provider can attach web citations.
func (p AIProvider) SupportsGrounding() bool {
	return p == AIProviderGemini
}

// String returns the string representation.
func (p AIProvider) String() string {
	return string(p)
}

// Description returns a human-readable description of the provider.
func (p AIProvider) Description() string {
	switch p {
	case AIProviderGemini:
		return "Google Gemini (search grounding)"
	case AIProviderOpenAI:
		return "OpenAI-compatible (no grounding)"
	default:
		return unknownDescription
	}
}

// AllProviders returns the providers that can serve news completions.
func AllProviders() []AIProvider {
	return []AIProvider{AIProviderGemini, AIProviderOpenAI}
}

// DefaultModels returns the default model for each provider.
func DefaultModels() map[AIProvider]string {
	return map[AIProvider]string{
		AIProviderGemini: "gemini-3-flash-preview",
		AIProviderOpenAI: "gpt-4o-mini",
	}
}

// Generation defaults.
const (
	// DefaultTemperature keeps completions close to deterministic.
	DefaultTemperature = 0.15

	// DefaultTimeoutSeconds bounds a single completion call.
	DefaultTimeoutSeconds = 120

	// DefaultRatePerMinute caps outgoing completion calls.
	DefaultRatePerMinute = 30
)

// NewsSettings holds completion provider configuration.
type NewsSettings struct {
	// Provider is the completion service provider.
	Provider AIProvider

	// Model is the model identifier sent to the provider.
	Model string

	// BaseURL overrides the provider endpoint. Empty uses the provider default.
	BaseURL string

	// APIKey is the provider credential.
	APIKey string

	// Temperature is the sampling temperature in [0, 1].
	Temperature float64

	// TimeoutSeconds bounds a single completion call.
	TimeoutSeconds int

	// RatePerMinute caps outgoing completion calls.
	RatePerMinute int
}

// DefaultNewsSettings returns settings with sensible defaults.
// The API key is left empty; it must come from the environment or the config file.
func DefaultNewsSettings() NewsSettings {
	return NewsSettings{
		Provider:       AIProviderGemini,
		Model:          DefaultModels()[AIProviderGemini],
		Temperature:    DefaultTemperature,
		TimeoutSeconds: DefaultTimeoutSeconds,
		RatePerMinute:  DefaultRatePerMinute,
	}
}

// HasCredential returns true if the API key is present and not the placeholder.
func (s NewsSettings) HasCredential() bool {
	return !IsPlaceholderKey(s.APIKey)
}

// IsConfigured returns true if the provider is known and a real credential is set.
func (s NewsSettings) IsConfigured() bool {
	return s.Provider.IsValid() && s.HasCredential()
}

// ClampedTemperature returns the temperature restricted to [0, 1].
func (s NewsSettings) ClampedTemperature() float64 {
	switch {
	case s.Temperature < 0:
		return 0
	case s.Temperature > 1:
		return 1
	default:
		return s.Temperature
	}
}

// IsPlaceholderKey returns true if key is empty or the template placeholder.
func IsPlaceholderKey(key string) bool {
	key = strings.TrimSpace(key)
	return key == "" || key == PlaceholderAPIKey
}

// MaskedKey returns the key with all but the last four characters hidden.
func MaskedKey(key string) string {
	if IsPlaceholderKey(key) {
		return "(not set)"
	}
	if len(key) <= 4 {
		return "****"
	}
	return strings.Repeat("*", 8) + key[len(key)-4:]
}
