// Package ai provides factory functions for creating completion adapters.
package ai

import (
	"context"
	"fmt"
	"time"

	"github.com/stonynews/stonynews-cli/internal/adapters/driven/llm/gemini"
	"github.com/stonynews/stonynews-cli/internal/adapters/driven/llm/openai"
	"github.com/stonynews/stonynews-cli/internal/core/domain"
	"github.com/stonynews/stonynews-cli/internal/core/ports/driven"
)

// CreateCompletionClient creates the completion adapter selected by settings.
// Returns nil without error when no credential is configured; the dispatcher
// then reports domain.ErrNotConfigured on first use.
func CreateCompletionClient(ctx context.Context, settings *domain.NewsSettings) (driven.CompletionClient, error) {
	if settings == nil || !settings.HasCredential() {
		return nil, nil
	}

	timeout := time.Duration(settings.TimeoutSeconds) * time.Second

	switch settings.Provider {
	case domain.AIProviderGemini:
		return createGemini(ctx, settings, timeout)

	case domain.AIProviderOpenAI:
		return createOpenAI(settings, timeout)

	default:
		return nil, fmt.Errorf("%w: %s", domain.ErrUnsupportedProvider, settings.Provider)
	}
}

// createGemini creates a Gemini completion client.
func createGemini(ctx context.Context, settings *domain.NewsSettings, timeout time.Duration) (driven.CompletionClient, error) {
	return gemini.New(ctx, gemini.Config{
		APIKey:        settings.APIKey,
		BaseURL:       settings.BaseURL,
		Model:         settings.Model,
		Timeout:       timeout,
		RatePerMinute: settings.RatePerMinute,
	})
}

// createOpenAI creates an OpenAI-compatible completion client.
func createOpenAI(settings *domain.NewsSettings, timeout time.Duration) (driven.CompletionClient, error) {
	return openai.New(openai.Config{
		APIKey:        settings.APIKey,
		BaseURL:       settings.BaseURL,
		Model:         settings.Model,
		Timeout:       timeout,
		RatePerMinute: settings.RatePerMinute,
	})
}
