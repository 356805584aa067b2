package mcp

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/stonynews/stonynews-cli/internal/core/domain"
	"github.com/stonynews/stonynews-cli/internal/logger"
)

// SearchNewsInput is the input schema for the search_news tool.
type SearchNewsInput struct {
	Topic string `json:"topic" jsonschema:"the news topic to research, e.g. 'Sécurité Sahel'"`
}

// SearchNewsOutput is the output schema for the search_news tool.
type SearchNewsOutput struct {
	RequestID string          `json:"request_id"`
	Topic     string          `json:"topic"`
	Count     int             `json:"count"`
	Articles  []ArticleOutput `json:"articles"`
}

// ArticleOutput represents a single article card.
type ArticleOutput struct {
	ID        string           `json:"id"`
	Title     string           `json:"title"`
	Summary   string           `json:"summary"`
	Category  string           `json:"category"`
	Timestamp string           `json:"timestamp"`
	Sources   []CitationOutput `json:"sources"`
}

// CitationOutput is a grounding source of an article.
type CitationOutput struct {
	Name  string `json:"name"`
	Title string `json:"title"`
	URL   string `json:"url"`
}

// SuggestionsOutput is the output schema for the list_suggestions tool.
type SuggestionsOutput struct {
	Suggestions []string `json:"suggestions"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name: "search_news",
		Description: "Research a news topic with web-grounded generation and return " +
			"categorised article cards with their sources (French-language press review)",
	}, s.handleSearchNews)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "list_suggestions",
		Description: "List suggested news topics",
	}, s.handleListSuggestions)
}

// handleSearchNews handles the search_news tool invocation.
func (s *Server) handleSearchNews(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SearchNewsInput,
) (*mcp.CallToolResult, SearchNewsOutput, error) {
	requestID := uuid.NewString()
	start := time.Now()
	logger.Event("mcp search_news", "request_id", requestID, "topic", input.Topic)

	articles, err := s.ports.News.Search(ctx, input.Topic)
	if err != nil {
		logger.Event("mcp search_news failed", "request_id", requestID, "error", err)
		return nil, SearchNewsOutput{}, fmt.Errorf("%s (%w)", domain.UserMessage(err), err)
	}

	logger.Event("mcp search_news done",
		"request_id", requestID,
		"articles", len(articles),
		"elapsed", time.Since(start).Round(time.Millisecond),
	)

	return nil, SearchNewsOutput{
		RequestID: requestID,
		Topic:     input.Topic,
		Count:     len(articles),
		Articles:  toArticleOutputs(articles),
	}, nil
}

// handleListSuggestions handles the list_suggestions tool invocation.
func (s *Server) handleListSuggestions(
	_ context.Context,
	_ *mcp.CallToolRequest,
	_ struct{},
) (*mcp.CallToolResult, SuggestionsOutput, error) {
	return nil, SuggestionsOutput{Suggestions: s.ports.News.Suggestions()}, nil
}

// toArticleOutputs converts domain articles to the tool schema.
func toArticleOutputs(articles []domain.Article) []ArticleOutput {
	out := make([]ArticleOutput, len(articles))
	for i := range articles {
		a := &articles[i]
		sources := make([]CitationOutput, len(a.Sources))
		for j, c := range a.Sources {
			sources[j] = CitationOutput{
				Name:  c.DisplayName(),
				Title: c.Title,
				URL:   c.URL,
			}
		}
		out[i] = ArticleOutput{
			ID:        a.ID,
			Title:     a.Title,
			Summary:   a.Summary,
			Category:  a.Category.String(),
			Timestamp: a.Timestamp,
			Sources:   sources,
		}
	}
	return out
}
