package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAIProvider_IsValid(t *testing.T) {
	assert.True(t, AIProviderGemini.IsValid())
	assert.True(t, AIProviderOpenAI.IsValid())
	assert.False(t, AIProvider("anthropic").IsValid())
	assert.False(t, AIProvider("").IsValid())
}

func TestAIProvider_SupportsGrounding(t *testing.T) {
	assert.True(t, AIProviderGemini.SupportsGrounding())
	assert.False(t, AIProviderOpenAI.SupportsGrounding())
}

func TestAIProvider_Description(t *testing.T) {
	assert.Contains(t, AIProviderGemini.Description(), "Gemini")
	assert.Equal(t, "Unknown", AIProvider("other").Description())
}

func TestDefaultNewsSettings(t *testing.T) {
	s := DefaultNewsSettings()

	assert.Equal(t, AIProviderGemini, s.Provider)
	assert.Equal(t, "gemini-3-flash-preview", s.Model)
	assert.InDelta(t, 0.15, s.Temperature, 0.0001)
	assert.Equal(t, DefaultTimeoutSeconds, s.TimeoutSeconds)
	assert.Empty(t, s.APIKey)
	assert.False(t, s.IsConfigured())
}

func TestNewsSettings_HasCredential(t *testing.T) {
	tests := []struct {
		key  string
		want bool
	}{
		{"", false},
		{"   ", false},
		{PlaceholderAPIKey, false},
		{"AIzaSyExample", true},
	}
	for _, tt := range tests {
		s := NewsSettings{Provider: AIProviderGemini, APIKey: tt.key}
		assert.Equal(t, tt.want, s.HasCredential(), "key %q", tt.key)
		assert.Equal(t, tt.want, s.IsConfigured(), "key %q", tt.key)
	}
}

func TestNewsSettings_IsConfigured_UnknownProvider(t *testing.T) {
	s := NewsSettings{Provider: "other", APIKey: "real-key"}

	assert.False(t, s.IsConfigured())
}

func TestNewsSettings_ClampedTemperature(t *testing.T) {
	assert.InDelta(t, 0.0, NewsSettings{Temperature: -1}.ClampedTemperature(), 0.0001)
	assert.InDelta(t, 1.0, NewsSettings{Temperature: 3}.ClampedTemperature(), 0.0001)
	assert.InDelta(t, 0.2, NewsSettings{Temperature: 0.2}.ClampedTemperature(), 0.0001)
}

func TestMaskedKey(t *testing.T) {
	assert.Equal(t, "(not set)", MaskedKey(""))
	assert.Equal(t, "(not set)", MaskedKey(PlaceholderAPIKey))
	assert.Equal(t, "****", MaskedKey("abc"))
	assert.Equal(t, "********wxyz", MaskedKey("abcdefwxyz"))
}
