// Package driven provides interfaces for infrastructure adapters (secondary/outbound ports).
package driven

import (
	"context"

	"github.com/stonynews/stonynews-cli/internal/core/domain"
)

// CompletionClient sends one prompt to a hosted generative model.
//
// Implementations include:
//   - Gemini (google.golang.org/genai, with Google Search grounding)
//   - OpenAI-compatible chat completions (no grounding)
//
// Implementations must not retry on their own; the dispatcher owns the
// fallback policy.
type CompletionClient interface {
	// Complete runs a single completion request.
	Complete(ctx context.Context, req CompletionRequest) (*Completion, error)

	// ModelName returns the name of the model being used.
	ModelName() string

	// Close releases resources.
	Close() error
}

// CompletionRequest is the payload of one completion attempt.
type CompletionRequest struct {
	// Model overrides the client's configured model when non-empty.
	Model string

	// SystemInstruction describes the output grammar and editorial policy.
	SystemInstruction string

	// Prompt is the user turn.
	Prompt string

	// Temperature controls randomness (0.0 = deterministic, 1.0 = creative).
	Temperature float64

	// SearchGrounding enables web-search-backed generation when supported.
	SearchGrounding bool
}

// Completion is the result of a completion request.
type Completion struct {
	// Text is the raw completion text.
	Text string

	// Citations are the grounding sources, deduplicated by URL.
	// Entries without a usable link are already dropped.
	Citations []domain.Citation
}
