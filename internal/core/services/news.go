package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/stonynews/stonynews-cli/internal/core/domain"
	"github.com/stonynews/stonynews-cli/internal/core/ports/driving"
	"github.com/stonynews/stonynews-cli/internal/logger"
)

// Ensure NewsService implements the interface.
var _ driving.NewsService = (*NewsService)(nil)

// NewsService composes the dispatcher and the parser.
type NewsService struct {
	dispatcher *QueryDispatcher
	now        func() time.Time
}

// NewNewsService creates a new news service.
func NewNewsService(dispatcher *QueryDispatcher) *NewsService {
	return &NewsService{
		dispatcher: dispatcher,
		now:        time.Now,
	}
}

// SetClock replaces the batch clock. Used by tests for stable IDs and timestamps.
func (s *NewsService) SetClock(now func() time.Time) {
	if now != nil {
		s.now = now
	}
}

// Search dispatches topic and parses the completion into articles.
// No partial result is returned alongside an error.
func (s *NewsService) Search(ctx context.Context, topic string) ([]domain.Article, error) {
	topic = strings.TrimSpace(topic)
	if topic == "" {
		return nil, fmt.Errorf("%w: topic is empty", domain.ErrInvalidInput)
	}

	logger.Section("News Search")
	logger.Debug("Topic: %q", topic)

	completion, err := s.dispatcher.Dispatch(ctx, topic)
	if err != nil {
		return nil, err
	}

	logger.Section("Parsing")
	articles := ParseArticles(completion.Text, completion.Citations, topic, s.now())
	logger.Info("Parsed %d articles", len(articles))
	return articles, nil
}

// Suggestions returns topics offered as one-click searches.
func (s *NewsService) Suggestions() []string {
	return domain.Suggestions()
}
