package services

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stonynews/stonynews-cli/internal/core/domain"
	"github.com/stonynews/stonynews-cli/internal/core/ports/driven"
)

// spyCompletionClient records every request and replays scripted results.
type spyCompletionClient struct {
	mu       sync.Mutex
	requests []driven.CompletionRequest
	results  []spyResult
	// onCall runs before the result is returned, with the zero-based call index.
	onCall func(call int)
}

type spyResult struct {
	completion *driven.Completion
	err        error
}

func (s *spyCompletionClient) Complete(_ context.Context, req driven.CompletionRequest) (*driven.Completion, error) {
	s.mu.Lock()
	call := len(s.requests)
	s.requests = append(s.requests, req)
	s.mu.Unlock()

	if s.onCall != nil {
		s.onCall(call)
	}
	if call >= len(s.results) {
		return nil, errors.New("unexpected call")
	}
	r := s.results[call]
	return r.completion, r.err
}

func (s *spyCompletionClient) ModelName() string { return "spy-model" }
func (s *spyCompletionClient) Close() error      { return nil }

func (s *spyCompletionClient) calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.requests)
}

// stubPromptStore serves prompts from a map.
type stubPromptStore struct {
	prompts map[string]string
	reloads int
}

func (s *stubPromptStore) Load(name string) (string, error) {
	p, ok := s.prompts[name]
	if !ok {
		return "", errors.New("not found")
	}
	return p, nil
}

func (s *stubPromptStore) Reload() { s.reloads++ }

func configuredSettings() domain.NewsSettings {
	settings := domain.DefaultNewsSettings()
	settings.APIKey = "test-key"
	return settings
}

func okResult(text string, citations ...domain.Citation) spyResult {
	return spyResult{completion: &driven.Completion{Text: text, Citations: citations}}
}

func TestDispatch_MissingCredentialMakesNoCalls(t *testing.T) {
	for _, key := range []string{"", "   ", domain.PlaceholderAPIKey} {
		t.Run("key="+key, func(t *testing.T) {
			settings := domain.DefaultNewsSettings()
			settings.APIKey = key
			spy := &spyCompletionClient{results: []spyResult{okResult("text")}}

			_, err := NewQueryDispatcher(spy, settings).Dispatch(context.Background(), "topic")

			require.ErrorIs(t, err, domain.ErrNotConfigured)
			assert.Equal(t, 0, spy.calls())
		})
	}
}

func TestDispatch_NilClientIsNotConfigured(t *testing.T) {
	_, err := NewQueryDispatcher(nil, configuredSettings()).Dispatch(context.Background(), "topic")

	require.ErrorIs(t, err, domain.ErrNotConfigured)
}

func TestDispatch_FirstAttemptSucceeds(t *testing.T) {
	citation := domain.NewCitation("BBC Afrique", "https://bbc.com/a")
	spy := &spyCompletionClient{results: []spyResult{okResult("raw text", citation)}}

	completion, err := NewQueryDispatcher(spy, configuredSettings()).Dispatch(context.Background(), "Sécurité Sahel")

	require.NoError(t, err)
	assert.Equal(t, "raw text", completion.Text)
	assert.Equal(t, []domain.Citation{citation}, completion.Citations)
	require.Equal(t, 1, spy.calls())

	req := spy.requests[0]
	assert.True(t, req.SearchGrounding)
	assert.Equal(t, domain.DefaultModels()[domain.AIProviderGemini], req.Model)
	assert.InDelta(t, 0.15, req.Temperature, 1e-9)
	assert.Equal(t, domain.DefaultSystemInstruction(), req.SystemInstruction)
	assert.Contains(t, req.Prompt, `"Sécurité Sahel"`)
}

func TestDispatch_FallbackDisablesGrounding(t *testing.T) {
	spy := &spyCompletionClient{results: []spyResult{
		{err: errors.New("grounding unavailable")},
		okResult("fallback text"),
	}}

	completion, err := NewQueryDispatcher(spy, configuredSettings()).Dispatch(context.Background(), "topic")

	require.NoError(t, err)
	assert.Equal(t, "fallback text", completion.Text)
	require.Equal(t, 2, spy.calls())
	assert.True(t, spy.requests[0].SearchGrounding)
	assert.False(t, spy.requests[1].SearchGrounding)

	// Apart from grounding, both attempts carry the same payload.
	first, second := spy.requests[0], spy.requests[1]
	first.SearchGrounding = false
	assert.Equal(t, first, second)
}

func TestDispatch_BothAttemptsFail(t *testing.T) {
	lastErr := errors.New("connection reset")
	spy := &spyCompletionClient{results: []spyResult{
		{err: errors.New("timeout")},
		{err: lastErr},
	}}

	_, err := NewQueryDispatcher(spy, configuredSettings()).Dispatch(context.Background(), "topic")

	require.ErrorIs(t, err, domain.ErrServiceUnavailable)
	assert.ErrorIs(t, err, lastErr)
	assert.Equal(t, 2, spy.calls())
	assert.Equal(t, domain.MessageServiceUnavailable, domain.UserMessage(err))
}

func TestDispatch_EmptyText(t *testing.T) {
	tests := []struct {
		name    string
		results []spyResult
		calls   int
	}{
		{"first attempt empty", []spyResult{okResult("  \n ")}, 1},
		{"first attempt nil completion", []spyResult{{}}, 1},
		{"fallback empty", []spyResult{{err: errors.New("boom")}, okResult("")}, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spy := &spyCompletionClient{results: tt.results}

			_, err := NewQueryDispatcher(spy, configuredSettings()).Dispatch(context.Background(), "topic")

			require.ErrorIs(t, err, domain.ErrEmptyResponse)
			assert.Equal(t, tt.calls, spy.calls())
		})
	}
}

func TestDispatch_CancellationIsNotRetried(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	spy := &spyCompletionClient{
		results: []spyResult{{err: errors.New("request aborted")}, okResult("never")},
		onCall:  func(int) { cancel() },
	}

	_, err := NewQueryDispatcher(spy, configuredSettings()).Dispatch(ctx, "topic")

	require.ErrorIs(t, err, context.Canceled)
	assert.NotErrorIs(t, err, domain.ErrServiceUnavailable)
	assert.Equal(t, 1, spy.calls())
}

func TestDispatch_TemperatureIsClamped(t *testing.T) {
	settings := configuredSettings()
	settings.Temperature = 3
	spy := &spyCompletionClient{results: []spyResult{okResult("text")}}

	_, err := NewQueryDispatcher(spy, settings).Dispatch(context.Background(), "topic")

	require.NoError(t, err)
	assert.InDelta(t, 1.0, spy.requests[0].Temperature, 1e-9)
}

func TestDispatch_UsesPromptStore(t *testing.T) {
	store := &stubPromptStore{prompts: map[string]string{
		driven.PromptNewsSystem: "custom system",
		driven.PromptNewsUser:   "Sujet: %s",
	}}
	spy := &spyCompletionClient{results: []spyResult{okResult("text")}}
	d := NewQueryDispatcher(spy, configuredSettings())
	d.SetPromptStore(store)

	_, err := d.Dispatch(context.Background(), "Tech à Dakar")

	require.NoError(t, err)
	assert.Equal(t, "custom system", spy.requests[0].SystemInstruction)
	assert.Equal(t, "Sujet: Tech à Dakar", spy.requests[0].Prompt)
}

func TestDispatch_InvalidUserTemplateFallsBack(t *testing.T) {
	tests := []struct {
		name     string
		template string
	}{
		{"no placeholder", "Parle-moi des nouvelles"},
		{"two placeholders", "%s et %s"},
		{"blank", "   "},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &stubPromptStore{prompts: map[string]string{driven.PromptNewsUser: tt.template}}
			spy := &spyCompletionClient{results: []spyResult{okResult("text")}}
			d := NewQueryDispatcher(spy, configuredSettings())
			d.SetPromptStore(store)

			_, err := d.Dispatch(context.Background(), "Sahel")

			require.NoError(t, err)
			assert.Equal(t, `Rédige un dossier de presse sur : "Sahel". Cite explicitement les médias sources.`, spy.requests[0].Prompt)
			assert.Equal(t, domain.DefaultSystemInstruction(), spy.requests[0].SystemInstruction)
		})
	}
}

func TestTryWithFallback_PrimaryOnly(t *testing.T) {
	fallbackRan := false
	primary := func(context.Context) (*driven.Completion, error) {
		return &driven.Completion{Text: "ok"}, nil
	}
	fallback := func(context.Context) (*driven.Completion, error) {
		fallbackRan = true
		return nil, nil
	}

	completion, err := tryWithFallback(context.Background(), primary, fallback)

	require.NoError(t, err)
	assert.Equal(t, "ok", completion.Text)
	assert.False(t, fallbackRan)
}
