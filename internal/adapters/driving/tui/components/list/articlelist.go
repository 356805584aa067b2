// Package list provides list display components for the TUI.
package list

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/stonynews/stonynews-cli/internal/adapters/driving/tui/styles"
	"github.com/stonynews/stonynews-cli/internal/core/domain"
)

const (
	directLabel    = "flux direct"
	sourcesHeading = "Flux de vérification :"
	noSourcesLabel = "Analyse exclusive Stony News AI"
	minCardWidth   = 30
)

// ArticleList displays article cards and scrolls to keep the selection visible.
type ArticleList struct {
	articles []domain.Article
	selected int
	top      int
	styles   *styles.Styles
	width    int
	height   int
}

// NewArticleList creates a new article list component.
func NewArticleList(s *styles.Styles) *ArticleList {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &ArticleList{
		styles: s,
		width:  80,
		height: 20,
	}
}

// Init initialises the article list.
func (r *ArticleList) Init() tea.Cmd {
	return nil
}

// Update handles list navigation messages.
func (r *ArticleList) Update(msg tea.Msg) (*ArticleList, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "up", "k":
			r.MoveUp()
		case "down", "j":
			r.MoveDown()
		}
	}
	return r, nil
}

// View renders as many cards as fit, starting at the scroll offset.
func (r *ArticleList) View() string {
	if len(r.articles) == 0 {
		return r.styles.Muted.Render("Aucun article.")
	}

	cards := make([]string, len(r.articles))
	for i := range r.articles {
		cards[i] = r.renderCard(i)
	}

	r.scrollTo(cards)

	header := r.styles.Subtitle.Render(fmt.Sprintf("Articles (%d)", len(r.articles)))
	lines := []string{header}
	used := 1
	for i := r.top; i < len(cards); i++ {
		h := lipgloss.Height(cards[i])
		if used+h > r.height && i > r.top {
			break
		}
		lines = append(lines, cards[i])
		used += h
	}
	return strings.Join(lines, "\n")
}

// scrollTo moves the offset so the selected card is fully visible.
func (r *ArticleList) scrollTo(cards []string) {
	if r.selected < r.top {
		r.top = r.selected
		return
	}
	for r.top < r.selected {
		used := 1
		for i := r.top; i <= r.selected; i++ {
			used += lipgloss.Height(cards[i])
		}
		if used <= r.height {
			return
		}
		r.top++
	}
}

// renderCard formats one article as a bordered card.
func (r *ArticleList) renderCard(index int) string {
	a := r.articles[index]
	inner := max(r.width-4, minCardWidth)
	text := inner - 2

	stamp := a.Timestamp
	if a.IsDirect() {
		stamp = directLabel
	}
	meta := r.styles.Badge(a.Category) + "  " + r.styles.Muted.Render(stamp)

	title := lipgloss.NewStyle().Bold(true).Width(text).Render(a.Title)

	parts := []string{meta, title}
	if a.Summary != "" {
		parts = append(parts, r.styles.Normal.Width(text).Render(a.Summary))
	}
	parts = append(parts, r.renderSources(a.Sources, text))

	card := r.styles.Card
	if index == r.selected {
		card = r.styles.SelectedCard
	}
	return card.Width(inner).Render(strings.Join(parts, "\n"))
}

// renderSources formats the verification line of a card.
func (r *ArticleList) renderSources(sources []domain.Citation, width int) string {
	if len(sources) == 0 {
		return r.styles.Muted.Italic(true).Render(noSourcesLabel)
	}
	names := make([]string, 0, len(sources))
	for _, src := range sources {
		names = append(names, src.DisplayName())
	}
	line := sourcesHeading + " " + strings.Join(names, " · ")
	return r.styles.Help.Width(width).Render(line)
}

// SetArticles replaces the articles and resets the selection.
func (r *ArticleList) SetArticles(articles []domain.Article) {
	r.articles = articles
	r.selected = 0
	r.top = 0
}

// Articles returns the current articles.
func (r *ArticleList) Articles() []domain.Article {
	return r.articles
}

// Selected returns the index of the selected article.
func (r *ArticleList) Selected() int {
	return r.selected
}

// SetSelected sets the selected index.
func (r *ArticleList) SetSelected(index int) {
	if index >= 0 && index < len(r.articles) {
		r.selected = index
	}
}

// SelectedArticle returns the currently selected article, or nil if none.
func (r *ArticleList) SelectedArticle() *domain.Article {
	if r.selected < 0 || r.selected >= len(r.articles) {
		return nil
	}
	return &r.articles[r.selected]
}

// MoveUp moves selection up.
func (r *ArticleList) MoveUp() {
	if r.selected > 0 {
		r.selected--
	}
}

// MoveDown moves selection down.
func (r *ArticleList) MoveDown() {
	if r.selected < len(r.articles)-1 {
		r.selected++
	}
}

// SetDimensions sets the component dimensions.
func (r *ArticleList) SetDimensions(width, height int) {
	r.width = width
	r.height = height
}

// Width returns the current width.
func (r *ArticleList) Width() int {
	return r.width
}

// Height returns the current height.
func (r *ArticleList) Height() int {
	return r.height
}

// Count returns the number of articles.
func (r *ArticleList) Count() int {
	return len(r.articles)
}

// IsEmpty returns whether the list is empty.
func (r *ArticleList) IsEmpty() bool {
	return len(r.articles) == 0
}
