package news

import (
	"context"
	"errors"
	"sync"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stonynews/stonynews-cli/internal/adapters/driving/tui/components/status"
	"github.com/stonynews/stonynews-cli/internal/adapters/driving/tui/messages"
	"github.com/stonynews/stonynews-cli/internal/core/domain"
)

type fakeNewsService struct {
	mu       sync.Mutex
	topics   []string
	ctxs     []context.Context
	articles []domain.Article
	err      error
}

func (f *fakeNewsService) Search(ctx context.Context, topic string) ([]domain.Article, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.topics = append(f.topics, topic)
	f.ctxs = append(f.ctxs, ctx)
	if f.err != nil {
		return nil, f.err
	}
	return f.articles, nil
}

func (f *fakeNewsService) Suggestions() []string {
	return domain.Suggestions()
}

func sampleArticles() []domain.Article {
	return []domain.Article{
		{ID: "sn-1-0", Title: "Sommet à Abuja", Category: domain.CategoryPolitique, Timestamp: "09:05"},
		{ID: "sn-1-1", Title: "Taux BCEAO", Category: domain.CategoryEconomie, Timestamp: "09:05"},
	}
}

func newTestView(svc *fakeNewsService) *View {
	v := NewView(nil, nil, svc)
	v.SetDimensions(100, 40)
	return v
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func typeText(v *View, s string) *View {
	for _, r := range s {
		v, _ = v.Update(keyRunes(string(r)))
	}
	return v
}

// runSearch executes the search command of a batch and returns its completion.
func runSearch(t *testing.T, cmd tea.Cmd) messages.SearchCompleted {
	t.Helper()
	require.NotNil(t, cmd)
	batch, ok := cmd().(tea.BatchMsg)
	require.True(t, ok, "expected a batch command")
	for _, c := range batch {
		if c == nil {
			continue
		}
		if done, ok := c().(messages.SearchCompleted); ok {
			return done
		}
	}
	t.Fatal("no search completion in batch")
	return messages.SearchCompleted{}
}

func TestNewView(t *testing.T) {
	v := NewView(nil, nil, &fakeNewsService{})

	require.NotNil(t, v)
	assert.True(t, v.InputFocused())
	assert.False(t, v.Ready())
	assert.Equal(t, domain.Suggestions(), v.chips.Items())
	assert.NotNil(t, v.Init())
}

func TestView_NotReady(t *testing.T) {
	v := NewView(nil, nil, &fakeNewsService{})

	assert.Equal(t, "Initialisation...", v.View())
}

func TestView_WindowSize(t *testing.T) {
	v := NewView(nil, nil, &fakeNewsService{})

	v, _ = v.Update(tea.WindowSizeMsg{Width: 120, Height: 50})

	assert.True(t, v.Ready())
	assert.Equal(t, 120, v.Width())
	assert.Equal(t, 50, v.Height())
}

func TestView_EnterRunsSearch(t *testing.T) {
	svc := &fakeNewsService{articles: sampleArticles()}
	v := newTestView(svc)
	v = typeText(v, "  Sahel ")

	v, cmd := v.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.True(t, v.Loading())
	assert.False(t, v.InputFocused())
	assert.Equal(t, "Sahel", v.Topic())
	assert.Contains(t, v.View(), headingLoading)

	done := runSearch(t, cmd)
	assert.Equal(t, v.Pending(), done.RequestID)
	assert.Equal(t, []string{"Sahel"}, svc.topics)

	v, _ = v.Update(done)

	assert.False(t, v.Loading())
	assert.NoError(t, v.Err())
	assert.Len(t, v.Articles(), 2)
	assert.Equal(t, status.StateResults, v.statusbar.State())
	assert.Contains(t, v.View(), "Sommet à Abuja")
}

func TestView_BlankTopicIgnored(t *testing.T) {
	svc := &fakeNewsService{}
	v := newTestView(svc)
	v = typeText(v, "   ")

	v, cmd := v.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.Nil(t, cmd)
	assert.False(t, v.Loading())
	assert.True(t, v.InputFocused())
}

func TestView_SearchRequestedMessage(t *testing.T) {
	svc := &fakeNewsService{articles: sampleArticles()}
	v := newTestView(svc)

	v, cmd := v.Update(messages.SearchRequested{Topic: "Situation au Burkina Faso"})

	done := runSearch(t, cmd)
	assert.Equal(t, "Situation au Burkina Faso", done.Topic)
	assert.Equal(t, "Situation au Burkina Faso", v.Query())
}

func TestView_SupersededCompletionDiscarded(t *testing.T) {
	svc := &fakeNewsService{articles: sampleArticles()}
	v := newTestView(svc)

	v, first := v.Update(messages.SearchRequested{Topic: "Économie UEMOA"})
	firstDone := runSearch(t, first)
	v, second := v.Update(messages.SearchRequested{Topic: "Tech à Dakar"})
	require.NotEqual(t, firstDone.RequestID, v.Pending())

	v, _ = v.Update(firstDone)

	assert.True(t, v.Loading(), "stale completion must not end the newer search")
	assert.Empty(t, v.Articles())

	v, _ = v.Update(runSearch(t, second))

	assert.False(t, v.Loading())
	assert.Equal(t, "Tech à Dakar", v.Topic())
	assert.Len(t, v.Articles(), 2)
}

func TestView_UnknownRequestIDDiscarded(t *testing.T) {
	v := newTestView(&fakeNewsService{})

	v, _ = v.Update(messages.SearchCompleted{RequestID: uuid.New(), Articles: sampleArticles()})

	assert.Empty(t, v.Articles())
}

func TestView_ErrorKeepsPreviousArticles(t *testing.T) {
	svc := &fakeNewsService{articles: sampleArticles()}
	v := newTestView(svc)
	v, cmd := v.Update(messages.SearchRequested{Topic: "Sahel"})
	v, _ = v.Update(runSearch(t, cmd))

	svc.err = domain.ErrServiceUnavailable
	v, cmd = v.Update(messages.SearchRequested{Topic: "Sahel"})
	v, _ = v.Update(runSearch(t, cmd))

	assert.True(t, errors.Is(v.Err(), domain.ErrServiceUnavailable))
	assert.Len(t, v.Articles(), 2)
	assert.Equal(t, status.StateError, v.statusbar.State())
	assert.Contains(t, v.View(), domain.MessageServiceUnavailable)
}

func TestView_NotConfiguredBanner(t *testing.T) {
	svc := &fakeNewsService{err: domain.ErrNotConfigured}
	v := newTestView(svc)

	v, cmd := v.Update(messages.SearchRequested{Topic: "Sahel"})
	v, _ = v.Update(runSearch(t, cmd))

	assert.Contains(t, v.View(), domain.MessageNotConfigured)
}

func TestView_NilService(t *testing.T) {
	v := NewView(nil, nil, nil)
	v.SetDimensions(80, 24)

	v, cmd := v.Update(messages.SearchRequested{Topic: "Sahel"})

	assert.Nil(t, cmd)
	assert.ErrorIs(t, v.Err(), ErrNoNewsService)
	assert.Empty(t, v.chips.Items())
}

func TestView_TabCyclesSuggestions(t *testing.T) {
	v := newTestView(&fakeNewsService{})

	v, _ = v.Update(tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, domain.Suggestions()[0], v.Query())

	v, _ = v.Update(tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, domain.Suggestions()[1], v.Query())

	v, _ = v.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, domain.Suggestions()[0], v.Query())
	assert.True(t, v.InputFocused())
}

func TestView_ResultsModeNavigation(t *testing.T) {
	svc := &fakeNewsService{articles: sampleArticles()}
	v := newTestView(svc)
	v, cmd := v.Update(messages.SearchRequested{Topic: "Sahel"})
	v, _ = v.Update(runSearch(t, cmd))
	require.False(t, v.InputFocused())

	v, _ = v.Update(keyRunes("j"))
	assert.Equal(t, 1, v.SelectedIndex())

	v, _ = v.Update(tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, 0, v.SelectedIndex())

	v, _ = v.Update(keyRunes("/"))
	assert.True(t, v.InputFocused())
	assert.Empty(t, v.Query())
}

func TestView_EnterInResultsModeRepeatsTopic(t *testing.T) {
	svc := &fakeNewsService{articles: sampleArticles()}
	v := newTestView(svc)
	v, cmd := v.Update(messages.SearchRequested{Topic: "Sahel"})
	v, _ = v.Update(runSearch(t, cmd))

	_, cmd = v.Update(tea.KeyMsg{Type: tea.KeyEnter})
	runSearch(t, cmd)

	assert.Equal(t, []string{"Sahel", "Sahel"}, svc.topics)
}

func TestView_EscLeavesInputOnlyWithArticles(t *testing.T) {
	svc := &fakeNewsService{articles: sampleArticles()}
	v := newTestView(svc)

	v, _ = v.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.True(t, v.InputFocused())

	v, cmd := v.Update(messages.SearchRequested{Topic: "Sahel"})
	v, _ = v.Update(runSearch(t, cmd))
	v, _ = v.Update(keyRunes("/"))
	v, _ = v.Update(tea.KeyMsg{Type: tea.KeyEsc})

	assert.False(t, v.InputFocused())
}

func TestView_EmptyHint(t *testing.T) {
	v := newTestView(&fakeNewsService{})

	assert.Contains(t, v.View(), emptyHint)
}

func TestView_ErrorOccurred(t *testing.T) {
	v := newTestView(&fakeNewsService{})

	v, _ = v.Update(messages.ErrorOccurred{Err: domain.ErrEmptyResponse})

	assert.ErrorIs(t, v.Err(), domain.ErrEmptyResponse)
	assert.Contains(t, v.View(), domain.MessageEmptyResponse)
}

func TestView_SupersedingCancelsPreviousContext(t *testing.T) {
	svc := &fakeNewsService{}
	v := newTestView(svc)

	_, first := v.Update(messages.SearchRequested{Topic: "a"})
	runSearch(t, first)
	require.Len(t, svc.ctxs, 1)
	require.NoError(t, svc.ctxs[0].Err())

	v.Update(messages.SearchRequested{Topic: "b"})

	assert.ErrorIs(t, svc.ctxs[0].Err(), context.Canceled)

	v.Close()
	assert.Nil(t, v.cancel)
}
