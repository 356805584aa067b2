package mcp

import (
	"context"

	"github.com/stonynews/stonynews-cli/internal/core/domain"
)

// mockNewsService is a mock implementation of driving.NewsService.
type mockNewsService struct {
	articles    []domain.Article
	suggestions []string
	err         error
	topics      []string
}

func (m *mockNewsService) Search(_ context.Context, topic string) ([]domain.Article, error) {
	m.topics = append(m.topics, topic)
	return m.articles, m.err
}

func (m *mockNewsService) Suggestions() []string {
	return m.suggestions
}

// mockSettingsService is a mock implementation of driving.SettingsService.
type mockSettingsService struct {
	settings *domain.NewsSettings
	err      error
}

func (m *mockSettingsService) Get() (*domain.NewsSettings, error) {
	return m.settings, m.err
}

func (m *mockSettingsService) Save(_ *domain.NewsSettings) error {
	return m.err
}

func (m *mockSettingsService) SetProvider(_ domain.AIProvider, _ string) error {
	return m.err
}

func (m *mockSettingsService) SetAPIKey(_ string) error {
	return m.err
}
