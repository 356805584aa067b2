package driving

import (
	"context"

	"github.com/stonynews/stonynews-cli/internal/core/domain"
)

// NewsService turns a topic into structured article cards.
type NewsService interface {
	// Search dispatches the topic to the completion service and parses the answer.
	// It returns either a non-nil article list or an error, never both.
	Search(ctx context.Context, topic string) ([]domain.Article, error)

	// Suggestions returns topics offered as one-click searches.
	Suggestions() []string
}
