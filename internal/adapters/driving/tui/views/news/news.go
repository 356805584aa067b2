// Package news provides the main news view for the TUI: the topic input,
// suggestion chips, loading state, error banner and article cards.
package news

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/stonynews/stonynews-cli/internal/adapters/driving/tui/components/chips"
	"github.com/stonynews/stonynews-cli/internal/adapters/driving/tui/components/input"
	"github.com/stonynews/stonynews-cli/internal/adapters/driving/tui/components/list"
	"github.com/stonynews/stonynews-cli/internal/adapters/driving/tui/components/status"
	"github.com/stonynews/stonynews-cli/internal/adapters/driving/tui/keymap"
	"github.com/stonynews/stonynews-cli/internal/adapters/driving/tui/messages"
	"github.com/stonynews/stonynews-cli/internal/adapters/driving/tui/styles"
	"github.com/stonynews/stonynews-cli/internal/core/domain"
	"github.com/stonynews/stonynews-cli/internal/core/ports/driving"
	"github.com/stonynews/stonynews-cli/internal/logger"
)

const (
	headingResults = "Dossier d'actualité"
	headingLoading = "Recherche en cours..."
	emptyHint      = "Posez votre première question pour commencer l'analyse."

	// reservedLines covers the header, input, chips, heading and status bar.
	reservedLines = 12
)

// View is the news search view.
//
// Every search is tagged with a fresh request ID. Only the completion that
// carries the latest ID is displayed; starting a search cancels the context
// of the previous one.
type View struct {
	styles    *styles.Styles
	keymap    *keymap.KeyMap
	input     *input.TopicInput
	chips     *chips.Row
	list      *list.ArticleList
	statusbar *status.Bar

	newsService driving.NewsService
	ctx         context.Context
	cancel      context.CancelFunc

	pending uuid.UUID
	topic   string
	loading bool

	width      int
	height     int
	ready      bool
	err        error
	focusInput bool
}

// NewView creates a new news view.
func NewView(s *styles.Styles, km *keymap.KeyMap, newsService driving.NewsService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	var suggestions []string
	if newsService != nil {
		suggestions = newsService.Suggestions()
	}

	return &View{
		styles:      s,
		keymap:      km,
		input:       input.NewTopicInput(s),
		chips:       chips.NewRow(s, suggestions),
		list:        list.NewArticleList(s),
		statusbar:   status.NewBar(s, km),
		newsService: newsService,
		ctx:         context.Background(),
		width:       80,
		height:      24,
		focusInput:  true,
	}
}

// WithContext sets the parent context of searches.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return v.input.Init()
}

// Update handles messages for the news view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)

	case messages.SearchRequested:
		return v, v.startSearch(msg.Topic)

	case messages.SearchCompleted:
		v.handleSearchCompleted(msg)
		return v, nil

	case messages.ErrorOccurred:
		v.setError(msg.Err)
		return v, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		v.statusbar, cmd = v.statusbar.Update(msg)
		return v, cmd
	}

	if v.focusInput {
		var cmd tea.Cmd
		v.input, cmd = v.input.Update(msg)
		return v, cmd
	}
	return v, nil
}

// handleKeyMsg processes keyboard input.
func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	keyStr := msg.String()

	if keymap.Matches(keyStr, v.keymap.NextSuggestion) {
		v.chips.Next()
		v.applyChip()
		return v, nil
	}
	if keymap.Matches(keyStr, v.keymap.PrevSuggestion) {
		v.chips.Prev()
		v.applyChip()
		return v, nil
	}

	if v.focusInput {
		return v.handleInputKey(msg)
	}

	switch {
	case keymap.Matches(keyStr, v.keymap.NewSearch):
		v.focusInput = true
		v.input.SetValue("")
		v.chips.Clear()
		return v, v.input.Focus()
	case keymap.Matches(keyStr, v.keymap.Up):
		v.list.MoveUp()
	case keymap.Matches(keyStr, v.keymap.Down):
		v.list.MoveDown()
	case keymap.Matches(keyStr, v.keymap.Search):
		if v.topic != "" {
			return v, v.startSearch(v.topic)
		}
	}
	return v, nil
}

// handleInputKey processes keys while the topic input has focus.
func (v *View) handleInputKey(msg tea.KeyMsg) (*View, tea.Cmd) {
	//nolint:exhaustive // handling only relevant key types
	switch msg.Type {
	case tea.KeyEnter:
		return v, v.startSearch(v.input.Value())
	case tea.KeyEsc:
		if !v.list.IsEmpty() {
			v.focusInput = false
			v.input.Blur()
		}
		return v, nil
	}

	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	return v, cmd
}

// applyChip copies the highlighted suggestion into the input and focuses it.
func (v *View) applyChip() {
	topic, ok := v.chips.Active()
	if !ok {
		return
	}
	v.input.SetValue(topic)
	v.focusInput = true
	v.input.Focus()
}

// startSearch supersedes any in-flight search and runs a new one for topic.
// Blank topics are ignored.
func (v *View) startSearch(topic string) tea.Cmd {
	topic = strings.TrimSpace(topic)
	if topic == "" {
		return nil
	}
	if v.newsService == nil {
		v.setError(ErrNoNewsService)
		return nil
	}

	if v.cancel != nil {
		v.cancel()
	}
	ctx, cancel := context.WithCancel(v.ctx)
	v.cancel = cancel

	id := uuid.New()
	v.pending = id
	v.topic = topic
	v.loading = true
	v.err = nil
	v.input.SetValue(topic)
	v.input.Blur()
	v.focusInput = false

	logger.Debug("tui: search %s for %q", id, topic)

	svc := v.newsService
	search := func() tea.Msg {
		articles, err := svc.Search(ctx, topic)
		return messages.SearchCompleted{RequestID: id, Topic: topic, Articles: articles, Err: err}
	}
	return tea.Batch(search, v.statusbar.StartLoading(topic))
}

// handleSearchCompleted displays a completion unless a newer search superseded it.
// On failure the previous articles stay on screen under the error banner.
func (v *View) handleSearchCompleted(msg messages.SearchCompleted) {
	if msg.RequestID != v.pending {
		logger.Debug("tui: discarding superseded search %s", msg.RequestID)
		return
	}

	v.loading = false
	if v.cancel != nil {
		v.cancel()
		v.cancel = nil
	}

	if msg.Err != nil {
		v.setError(msg.Err)
		return
	}

	v.err = nil
	v.list.SetArticles(msg.Articles)
	v.statusbar.SetState(status.StateResults)
	v.statusbar.SetMessage("")
	v.statusbar.SetArticleCount(len(msg.Articles))
}

// setError records err and shows its user-facing message.
func (v *View) setError(err error) {
	v.loading = false
	v.err = err
	v.statusbar.SetState(status.StateError)
	v.statusbar.SetMessage(domain.UserMessage(err))
}

// View renders the news view.
func (v *View) View() string {
	if !v.ready {
		return "Initialisation..."
	}

	sections := make([]string, 0, 12)

	sections = append(sections,
		v.styles.Title.Render("STONY NEWS AI")+"  "+v.styles.Muted.Render("L'essentiel de l'info, sans le bruit."),
		"",
		v.input.View(),
		v.chips.View(),
		"",
	)

	if v.err != nil {
		sections = append(sections, v.styles.Banner.Render(domain.UserMessage(v.err)), "")
	}

	switch {
	case v.loading:
		sections = append(sections, v.styles.Subtitle.Render(headingLoading))
	case v.list.IsEmpty() && v.err == nil:
		sections = append(sections, v.styles.Muted.Render(emptyHint))
	default:
		heading := headingResults
		if v.topic != "" {
			heading += " : " + v.topic
		}
		sections = append(sections, v.styles.Subtitle.Render(heading), v.list.View())
	}

	sections = append(sections, "", v.statusbar.View())

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true

	v.input.SetWidth(width)
	v.list.SetDimensions(width, max(height-reservedLines, 1))
	v.statusbar.SetWidth(width)
}

// Width returns the current width.
func (v *View) Width() int {
	return v.width
}

// Height returns the current height.
func (v *View) Height() int {
	return v.height
}

// Ready returns whether the view is ready to render.
func (v *View) Ready() bool {
	return v.ready
}

// Query returns the current input value.
func (v *View) Query() string {
	return v.input.Value()
}

// Topic returns the topic of the latest search.
func (v *View) Topic() string {
	return v.topic
}

// Articles returns the displayed articles.
func (v *View) Articles() []domain.Article {
	return v.list.Articles()
}

// SelectedIndex returns the index of the selected article.
func (v *View) SelectedIndex() int {
	return v.list.Selected()
}

// Pending returns the request ID of the latest search.
func (v *View) Pending() uuid.UUID {
	return v.pending
}

// Loading returns whether a search is in flight.
func (v *View) Loading() bool {
	return v.loading
}

// Err returns the current error, if any.
func (v *View) Err() error {
	return v.err
}

// InputFocused returns whether the input has focus.
func (v *View) InputFocused() bool {
	return v.focusInput
}

// Close cancels any in-flight search.
func (v *View) Close() {
	if v.cancel != nil {
		v.cancel()
		v.cancel = nil
	}
}
