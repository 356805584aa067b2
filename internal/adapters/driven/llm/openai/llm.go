// Package openai provides a completion adapter for OpenAI-compatible chat APIs.
package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/stonynews/stonynews-cli/internal/adapters/driven/llm/ratelimit"
	"github.com/stonynews/stonynews-cli/internal/core/domain"
	"github.com/stonynews/stonynews-cli/internal/core/ports/driven"
	"github.com/stonynews/stonynews-cli/internal/logger"
)

// Ensure Client implements the interface.
var _ driven.CompletionClient = (*Client)(nil)

// Default configuration values.
const (
	DefaultBaseURL = "https://api.openai.com/v1"
	DefaultModel   = "gpt-4o-mini"
	DefaultTimeout = 120 * time.Second
)

// Config holds configuration for the OpenAI client.
type Config struct {
	// APIKey is the OpenAI API key (required).
	APIKey string

	// BaseURL is the API base URL (default: https://api.openai.com/v1).
	// Can be changed for Azure OpenAI or compatible APIs.
	BaseURL string

	// Model is the default model (default: gpt-4o-mini).
	Model string

	// Timeout is the request timeout (default: 120s).
	Timeout time.Duration

	// RatePerMinute caps outgoing requests. Zero disables throttling.
	RatePerMinute int
}

// Client sends completion requests to an OpenAI-compatible endpoint.
// The chat completions API has no search grounding: the toggle is ignored
// and completions never carry citations.
type Client struct {
	client  *http.Client
	baseURL string
	apiKey  string
	model   string
	limiter *ratelimit.Limiter
}

// chatCompletionRequest is the OpenAI /chat/completions request format.
type chatCompletionRequest struct {
	Model       string              `json:"model"`
	Messages    []chatCompletionMsg `json:"messages"`
	Temperature float64             `json:"temperature"`
}

// chatCompletionMsg is the OpenAI chat message format.
type chatCompletionMsg struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// chatCompletionResponse is the OpenAI /chat/completions response format.
type chatCompletionResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
		FinishReason string `json:"finish_reason"`
	} `json:"choices"`
	Usage struct {
		PromptTokens     int `json:"prompt_tokens"`
		CompletionTokens int `json:"completion_tokens"`
	} `json:"usage"`
	Error *struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error,omitempty"`
}

// New creates an OpenAI client.
func New(cfg Config) (*Client, error) {
	if domain.IsPlaceholderKey(cfg.APIKey) {
		return nil, fmt.Errorf("openai: API key is required")
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}

	return &Client{
		client: &http.Client{
			Timeout: cfg.Timeout,
		},
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:  cfg.APIKey,
		model:   cfg.Model,
		limiter: ratelimit.New(cfg.RatePerMinute),
	}, nil
}

// Complete runs one chat completion.
func (c *Client) Complete(ctx context.Context, req driven.CompletionRequest) (*driven.Completion, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	model := req.Model
	if model == "" {
		model = c.model
	}

	messages := make([]chatCompletionMsg, 0, 2)
	if req.SystemInstruction != "" {
		messages = append(messages, chatCompletionMsg{Role: "system", Content: req.SystemInstruction})
	}
	messages = append(messages, chatCompletionMsg{Role: "user", Content: req.Prompt})

	jsonBody, err := json.Marshal(chatCompletionRequest{
		Model:       model,
		Messages:    messages,
		Temperature: req.Temperature,
	})
	if err != nil {
		return nil, fmt.Errorf("openai: marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		c.baseURL+"/chat/completions",
		bytes.NewReader(jsonBody),
	)
	if err != nil {
		return nil, fmt.Errorf("openai: create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)

	logger.Event("openai request", "model", model, "prompt_chars", len(req.Prompt))

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("openai: send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("openai: read response: %w", err)
	}

	if resp.StatusCode == http.StatusTooManyRequests {
		c.limiter.Backoff(retryAfter(resp.Header.Get("Retry-After")))
	}

	var chatResp chatCompletionResponse
	if err := json.Unmarshal(body, &chatResp); err != nil {
		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("openai: status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
		}
		return nil, fmt.Errorf("openai: decode response: %w", err)
	}

	if chatResp.Error != nil {
		return nil, fmt.Errorf("openai: %s", chatResp.Error.Message)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("openai: status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	if len(chatResp.Choices) == 0 {
		return nil, fmt.Errorf("openai: no response choices returned")
	}

	logger.Event("openai response",
		"finish_reason", chatResp.Choices[0].FinishReason,
		"completion_tokens", chatResp.Usage.CompletionTokens,
	)

	return &driven.Completion{
		Text:      strings.TrimSpace(chatResp.Choices[0].Message.Content),
		Citations: []domain.Citation{},
	}, nil
}

// retryAfter parses a Retry-After header given in seconds. Zero means unknown.
func retryAfter(header string) time.Duration {
	secs, err := strconv.Atoi(strings.TrimSpace(header))
	if err != nil || secs <= 0 {
		return 0
	}
	return time.Duration(secs) * time.Second
}

// ModelName returns the name of the default model.
func (c *Client) ModelName() string {
	return c.model
}

// Close releases resources.
func (c *Client) Close() error {
	// HTTP client doesn't need explicit cleanup
	return nil
}
