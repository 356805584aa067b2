package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/stonynews/stonynews-cli/internal/core/domain"
	"github.com/stonynews/stonynews-cli/internal/core/ports/driven"
	"github.com/stonynews/stonynews-cli/internal/logger"
)

// QueryDispatcher sends a topic to the completion service.
//
// The first attempt enables search grounding. If it fails for any reason other
// than cancellation, exactly one sequential retry is made with grounding
// disabled. The dispatcher holds no per-call state and is safe for concurrent use.
type QueryDispatcher struct {
	client      driven.CompletionClient
	settings    domain.NewsSettings
	promptStore driven.PromptStore
}

// NewQueryDispatcher creates a dispatcher. client may be nil when no provider
// could be built; Dispatch then reports domain.ErrNotConfigured.
func NewQueryDispatcher(client driven.CompletionClient, settings domain.NewsSettings) *QueryDispatcher {
	return &QueryDispatcher{
		client:   client,
		settings: settings,
	}
}

// SetPromptStore sets the prompt store for loading customisable prompts.
// If not set, the dispatcher uses the embedded defaults.
func (d *QueryDispatcher) SetPromptStore(store driven.PromptStore) {
	d.promptStore = store
}

// attemptFunc runs one completion attempt.
type attemptFunc func(ctx context.Context) (*driven.Completion, error)

// Dispatch runs the grounded attempt and, on failure, the ungrounded fallback.
// It returns the raw completion text and its citations.
func (d *QueryDispatcher) Dispatch(ctx context.Context, topic string) (*driven.Completion, error) {
	logger.Section("Dispatch")

	if !d.settings.HasCredential() || d.client == nil {
		logger.Warn("Credential missing or placeholder, skipping network call")
		return nil, domain.ErrNotConfigured
	}

	completion, err := tryWithFallback(ctx,
		d.attempt(d.buildRequest(topic, true)),
		d.attempt(d.buildRequest(topic, false)),
	)
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(completion.Text) == "" {
		logger.Warn("Completion returned no text")
		return nil, domain.ErrEmptyResponse
	}

	logger.Debug("Completion: %d chars, %d citations", len(completion.Text), len(completion.Citations))
	return completion, nil
}

// buildRequest is the pure request builder for both attempts.
func (d *QueryDispatcher) buildRequest(topic string, grounding bool) driven.CompletionRequest {
	return driven.CompletionRequest{
		Model:             d.settings.Model,
		SystemInstruction: d.loadPrompt(driven.PromptNewsSystem, domain.DefaultSystemInstruction()),
		Prompt:            d.userPrompt(topic),
		Temperature:       d.settings.ClampedTemperature(),
		SearchGrounding:   grounding,
	}
}

// attempt binds a request to the client.
func (d *QueryDispatcher) attempt(req driven.CompletionRequest) attemptFunc {
	return func(ctx context.Context) (*driven.Completion, error) {
		logger.Event("completion attempt", "model", req.Model, "grounding", req.SearchGrounding)
		completion, err := d.client.Complete(ctx, req)
		if err != nil {
			return nil, err
		}
		if completion == nil {
			completion = &driven.Completion{}
		}
		return completion, nil
	}
}

// tryWithFallback runs primary and, if it fails, fallback. Cancellation of ctx
// is returned as-is without running the fallback.
func tryWithFallback(ctx context.Context, primary, fallback attemptFunc) (*driven.Completion, error) {
	completion, err := primary(ctx)
	if err == nil {
		return completion, nil
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		return nil, ctxErr
	}

	logger.Warn("Grounded attempt failed (%v), retrying without grounding", err)

	completion, err = fallback(ctx)
	if err == nil {
		return completion, nil
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		return nil, ctxErr
	}

	logger.Warn("Fallback attempt failed: %v", err)
	return nil, fmt.Errorf("%w: %w", domain.ErrServiceUnavailable, err)
}

// userPrompt renders the user turn for topic.
func (d *QueryDispatcher) userPrompt(topic string) string {
	template := d.loadPrompt(driven.PromptNewsUser, domain.DefaultUserPrompt)
	if strings.Count(template, "%s") != 1 {
		template = domain.DefaultUserPrompt
	}
	return fmt.Sprintf(template, topic)
}

// loadPrompt loads a prompt from the store, falling back to the default if unavailable.
func (d *QueryDispatcher) loadPrompt(name, fallback string) string {
	if d.promptStore == nil {
		return fallback
	}
	prompt, err := d.promptStore.Load(name)
	if err != nil || strings.TrimSpace(prompt) == "" {
		return fallback
	}
	return prompt
}
