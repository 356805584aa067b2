package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/stonynews/stonynews-cli/internal/core/domain"
)

const (
	// uriScheme is the custom URI scheme for Stony News resources.
	uriScheme = "stonynews://"

	mimeJSON = "application/json"
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "suggestions",
		Name:        "suggestions",
		Description: "Suggested news topics",
		MIMEType:    mimeJSON,
	}, s.handleSuggestionsResource)

	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "categories",
		Name:        "categories",
		Description: "The closed set of article categories",
		MIMEType:    mimeJSON,
	}, s.handleCategoriesResource)

	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "settings",
		Name:        "settings",
		Description: "Active completion provider, model and credential status",
		MIMEType:    mimeJSON,
	}, s.handleSettingsResource)

	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "news/{topic}",
		Name:        "news",
		Description: "Article cards for a URL-encoded topic",
		MIMEType:    mimeJSON,
	}, s.handleNewsResource)
}

// handleSuggestionsResource returns the suggested topics.
func (s *Server) handleSuggestionsResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	return jsonResource(req.Params.URI, s.ports.News.Suggestions())
}

// handleCategoriesResource returns the category labels.
func (s *Server) handleCategoriesResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	categories := domain.AllCategories()
	labels := make([]string, len(categories))
	for i, c := range categories {
		labels[i] = c.String()
	}
	return jsonResource(req.Params.URI, labels)
}

// handleSettingsResource returns the provider configuration with the key masked.
func (s *Server) handleSettingsResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	if s.ports.Settings == nil {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	settings, err := s.ports.Settings.Get()
	if err != nil {
		return nil, fmt.Errorf("loading settings: %w", err)
	}

	type settingsInfo struct {
		Provider   string `json:"provider"`
		Model      string `json:"model"`
		Grounding  bool   `json:"grounding"`
		Configured bool   `json:"configured"`
		APIKey     string `json:"api_key"`
	}

	return jsonResource(req.Params.URI, settingsInfo{
		Provider:   settings.Provider.String(),
		Model:      settings.Model,
		Grounding:  settings.Provider.SupportsGrounding(),
		Configured: settings.IsConfigured(),
		APIKey:     domain.MaskedKey(settings.APIKey),
	})
}

// handleNewsResource runs a search for the topic in the URI.
func (s *Server) handleNewsResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	topic := extractTopic(req.Params.URI)
	if topic == "" {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	articles, err := s.ports.News.Search(ctx, topic)
	if err != nil {
		return nil, fmt.Errorf("%s (%w)", domain.UserMessage(err), err)
	}

	return jsonResource(req.Params.URI, toArticleOutputs(articles))
}

// jsonResource encodes v as the single content of a resource result.
func jsonResource(uri string, v any) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling %s: %w", uri, err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: mimeJSON,
			Text:     string(data),
		}},
	}, nil
}

// extractTopic extracts the decoded topic from a URI like stonynews://news/{topic}.
func extractTopic(uri string) string {
	const prefix = uriScheme + "news/"

	if !strings.HasPrefix(uri, prefix) {
		return ""
	}

	topic, err := url.PathUnescape(strings.TrimPrefix(uri, prefix))
	if err != nil {
		return ""
	}
	return strings.TrimSpace(topic)
}
