// Package gemini provides a completion adapter for the Gemini API with
// Google Search grounding.
package gemini

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"google.golang.org/genai"

	"github.com/stonynews/stonynews-cli/internal/adapters/driven/llm/ratelimit"
	"github.com/stonynews/stonynews-cli/internal/core/domain"
	"github.com/stonynews/stonynews-cli/internal/core/ports/driven"
	"github.com/stonynews/stonynews-cli/internal/logger"
)

// Ensure Client implements the interface.
var _ driven.CompletionClient = (*Client)(nil)

// Default configuration values.
const (
	DefaultModel   = "gemini-3-flash-preview"
	DefaultTimeout = 120 * time.Second
)

// Config holds configuration for the Gemini client.
type Config struct {
	// APIKey is the Gemini API key (required).
	APIKey string

	// BaseURL overrides the API endpoint. Empty uses the SDK default.
	BaseURL string

	// Model is the default model (default: gemini-3-flash-preview).
	Model string

	// Timeout bounds a single HTTP request (default: 120s).
	Timeout time.Duration

	// RatePerMinute caps outgoing requests. Zero disables throttling.
	RatePerMinute int
}

// generator is the slice of the genai SDK the client depends on.
// *genai.Models satisfies it.
type generator interface {
	GenerateContent(
		ctx context.Context,
		model string,
		contents []*genai.Content,
		config *genai.GenerateContentConfig,
	) (*genai.GenerateContentResponse, error)
}

// Client sends completion requests to Gemini.
type Client struct {
	models  generator
	model   string
	limiter *ratelimit.Limiter
}

// New creates a Gemini client.
func New(ctx context.Context, cfg Config) (*Client, error) {
	if domain.IsPlaceholderKey(cfg.APIKey) {
		return nil, fmt.Errorf("gemini: API key is required")
	}
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}

	clientCfg := &genai.ClientConfig{
		APIKey:     cfg.APIKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: &http.Client{Timeout: cfg.Timeout},
	}
	if cfg.BaseURL != "" {
		clientCfg.HTTPOptions = genai.HTTPOptions{BaseURL: cfg.BaseURL}
	}

	client, err := genai.NewClient(ctx, clientCfg)
	if err != nil {
		return nil, fmt.Errorf("gemini: create client: %w", err)
	}

	return newWithGenerator(client.Models, cfg.Model, ratelimit.New(cfg.RatePerMinute)), nil
}

func newWithGenerator(models generator, model string, limiter *ratelimit.Limiter) *Client {
	return &Client{
		models:  models,
		model:   model,
		limiter: limiter,
	}
}

// Complete runs one generateContent call. Grounding metadata is turned into citations.
func (c *Client) Complete(ctx context.Context, req driven.CompletionRequest) (*driven.Completion, error) {
	if err := c.wait(ctx, req.SearchGrounding); err != nil {
		return nil, err
	}

	model := req.Model
	if model == "" {
		model = c.model
	}

	logger.Event("gemini request",
		"model", model,
		"grounding", req.SearchGrounding,
		"prompt_chars", len(req.Prompt),
	)

	start := time.Now()
	resp, err := c.models.GenerateContent(ctx, model, genai.Text(req.Prompt), buildConfig(req))
	if err != nil {
		c.recordQuotaError(err)
		return nil, fmt.Errorf("gemini: generate content: %w", err)
	}

	completion := &driven.Completion{
		Text:      strings.TrimSpace(resp.Text()),
		Citations: extractCitations(resp),
	}
	logger.Event("gemini response",
		"elapsed", time.Since(start).Round(time.Millisecond),
		"chars", len(completion.Text),
		"citations", len(completion.Citations),
	)
	return completion, nil
}

// ModelName returns the name of the default model.
func (c *Client) ModelName() string {
	return c.model
}

// Close releases resources.
func (c *Client) Close() error {
	// The SDK client holds no resources beyond its HTTP client.
	return nil
}

// wait admits a request. A quota backoff only gates grounded requests, and
// those fail at once so the ungrounded retry can go out without delay.
func (c *Client) wait(ctx context.Context, grounded bool) error {
	if grounded {
		if left, ok := c.limiter.BackingOff(); ok {
			return fmt.Errorf("gemini: grounded search paused for %s: %w", left.Round(time.Second), ratelimit.ErrBackingOff)
		}
	}
	return c.limiter.WaitToken(ctx)
}

// recordQuotaError starts a backoff window when the API reports 429.
func (c *Client) recordQuotaError(err error) {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) && apiErr.Code == http.StatusTooManyRequests {
		logger.Warn("Gemini quota exceeded, pausing grounded search")
		c.limiter.Backoff(0)
	}
}

// buildConfig maps a completion request onto generation options.
func buildConfig(req driven.CompletionRequest) *genai.GenerateContentConfig {
	cfg := &genai.GenerateContentConfig{
		Temperature: genai.Ptr(float32(req.Temperature)),
	}
	if req.SystemInstruction != "" {
		cfg.SystemInstruction = genai.NewContentFromText(req.SystemInstruction, genai.RoleUser)
	}
	if req.SearchGrounding {
		cfg.Tools = []*genai.Tool{{GoogleSearch: &genai.GoogleSearch{}}}
	}
	return cfg
}

// extractCitations collects web grounding chunks from the first candidate.
// Chunks without a web source or a URI are dropped, duplicate URIs keep the
// first occurrence, and a blank title gets the default.
func extractCitations(resp *genai.GenerateContentResponse) []domain.Citation {
	citations := []domain.Citation{}
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0] == nil {
		return citations
	}
	meta := resp.Candidates[0].GroundingMetadata
	if meta == nil {
		return citations
	}

	seen := make(map[string]bool, len(meta.GroundingChunks))
	for _, chunk := range meta.GroundingChunks {
		if chunk == nil || chunk.Web == nil {
			continue
		}
		uri := strings.TrimSpace(chunk.Web.URI)
		if uri == "" || seen[uri] {
			continue
		}
		seen[uri] = true
		citations = append(citations, domain.NewCitation(strings.TrimSpace(chunk.Web.Title), uri))
	}
	return citations
}
