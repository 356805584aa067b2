package list

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stonynews/stonynews-cli/internal/adapters/driving/tui/styles"
	"github.com/stonynews/stonynews-cli/internal/core/domain"
)

func sampleArticles() []domain.Article {
	return []domain.Article{
		{
			ID:        "sn-1-0",
			Title:     "Sommet de la CEDEAO à Abuja",
			Summary:   "Les chefs d'État ont adopté une feuille de route.",
			Category:  domain.CategoryPolitique,
			Sources:   []domain.Citation{domain.NewCitation("BBC Afrique", "https://bbc.com/a")},
			Timestamp: "09:05",
		},
		{
			ID:        "sn-1-1",
			Title:     "La BCEAO maintient ses taux",
			Summary:   "Le taux directeur reste inchangé.",
			Category:  domain.CategoryEconomie,
			Sources:   []domain.Citation{},
			Timestamp: "09:05",
		},
		{
			ID:        "sn-1-2",
			Title:     "Attaque repoussée au nord",
			Category:  domain.CategorySecurite,
			Timestamp: domain.DirectTimestamp,
		},
	}
}

func TestNewArticleList(t *testing.T) {
	l := NewArticleList(styles.DefaultStyles())

	require.NotNil(t, l)
	assert.Equal(t, 0, l.Selected())
	assert.True(t, l.IsEmpty())
	assert.Nil(t, l.Init())
}

func TestNewArticleList_NilStyles(t *testing.T) {
	l := NewArticleList(nil)

	require.NotNil(t, l)
	assert.NotNil(t, l.styles)
}

func TestArticleList_SetArticles_ResetsSelection(t *testing.T) {
	l := NewArticleList(nil)
	l.SetArticles(sampleArticles())
	l.MoveDown()

	l.SetArticles(sampleArticles()[:2])

	assert.Equal(t, 2, l.Count())
	assert.Equal(t, 0, l.Selected())
}

func TestArticleList_Navigation(t *testing.T) {
	l := NewArticleList(nil)
	l.SetArticles(sampleArticles())

	l.MoveUp()
	assert.Equal(t, 0, l.Selected())

	l.MoveDown()
	l.MoveDown()
	l.MoveDown()
	assert.Equal(t, 2, l.Selected())

	l.MoveUp()
	assert.Equal(t, 1, l.Selected())
}

func TestArticleList_Update_Keys(t *testing.T) {
	l := NewArticleList(nil)
	l.SetArticles(sampleArticles())

	l, _ = l.Update(tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 1, l.Selected())

	l, _ = l.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}})
	assert.Equal(t, 2, l.Selected())

	l, _ = l.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'k'}})
	assert.Equal(t, 1, l.Selected())

	l, _ = l.Update(tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, 0, l.Selected())
}

func TestArticleList_SetSelected(t *testing.T) {
	l := NewArticleList(nil)
	l.SetArticles(sampleArticles())

	l.SetSelected(2)
	assert.Equal(t, 2, l.Selected())

	l.SetSelected(5)
	assert.Equal(t, 2, l.Selected())

	l.SetSelected(-1)
	assert.Equal(t, 2, l.Selected())
}

func TestArticleList_SelectedArticle(t *testing.T) {
	l := NewArticleList(nil)
	assert.Nil(t, l.SelectedArticle())

	l.SetArticles(sampleArticles())
	l.MoveDown()

	got := l.SelectedArticle()
	require.NotNil(t, got)
	assert.Equal(t, "sn-1-1", got.ID)
}

func TestArticleList_View_Empty(t *testing.T) {
	l := NewArticleList(nil)

	assert.Contains(t, l.View(), "Aucun article")
}

func TestArticleList_View_Cards(t *testing.T) {
	l := NewArticleList(nil)
	l.SetDimensions(100, 60)
	l.SetArticles(sampleArticles())

	view := l.View()

	assert.Contains(t, view, "Articles (3)")
	assert.Contains(t, view, "Sommet de la CEDEAO")
	assert.Contains(t, view, "POLITIQUE")
	assert.Contains(t, view, "09:05")
	assert.Contains(t, view, "BBC")
	assert.Contains(t, view, noSourcesLabel)
	assert.Contains(t, view, directLabel)
}

func TestArticleList_View_ScrollsToSelection(t *testing.T) {
	l := NewArticleList(nil)
	l.SetDimensions(80, 8)
	l.SetArticles(sampleArticles())

	l.SetSelected(2)
	view := l.View()

	assert.Contains(t, view, "Attaque repoussée")
	assert.NotContains(t, view, "Sommet de la CEDEAO")
	assert.Equal(t, 2, l.top)

	l.SetSelected(0)
	view = l.View()
	assert.Contains(t, view, "Sommet de la CEDEAO")
	assert.Equal(t, 0, l.top)
}

func TestArticleList_View_AlwaysShowsSelectedCard(t *testing.T) {
	l := NewArticleList(nil)
	l.SetDimensions(80, 2)
	l.SetArticles(sampleArticles())

	view := l.View()

	assert.True(t, strings.Contains(view, "Sommet de la CEDEAO"))
}

func TestArticleList_Dimensions(t *testing.T) {
	l := NewArticleList(nil)

	l.SetDimensions(120, 40)

	assert.Equal(t, 120, l.Width())
	assert.Equal(t, 40, l.Height())
}
