// Package styles holds the TUI palette and the lipgloss styles built from it.
package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/stonynews/stonynews-cli/internal/core/domain"
)

// Theme is the colour palette.
type Theme struct {
	Primary    lipgloss.Color // accent: titles, selection, spinner
	Secondary  lipgloss.Color // section headings
	Foreground lipgloss.Color
	Muted      lipgloss.Color // hints, timestamps, uncoloured categories
	Surface    lipgloss.Color // status bar background
	Success    lipgloss.Color
	Warning    lipgloss.Color
	Error      lipgloss.Color
	Border     lipgloss.Color
}

// DefaultTheme is the Stony News red on a dark terminal.
func DefaultTheme() *Theme {
	return &Theme{
		Primary:    lipgloss.Color("#DC2626"),
		Secondary:  lipgloss.Color("#0EA5E9"),
		Foreground: lipgloss.Color("#CDD6F4"),
		Muted:      lipgloss.Color("#6C7086"),
		Surface:    lipgloss.Color("#181825"),
		Success:    lipgloss.Color("#A6E3A1"),
		Warning:    lipgloss.Color("#F9E2AF"),
		Error:      lipgloss.Color("#F38BA8"),
		Border:     lipgloss.Color("#45475A"),
	}
}

// Styles are the rendered styles shared by the views.
type Styles struct {
	theme *Theme

	// Text.
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Normal   lipgloss.Style
	Muted    lipgloss.Style
	Selected lipgloss.Style
	Error    lipgloss.Style
	Success  lipgloss.Style
	Warning  lipgloss.Style
	Help     lipgloss.Style

	// News view.
	InputField   lipgloss.Style
	Chip         lipgloss.Style
	ActiveChip   lipgloss.Style
	Card         lipgloss.Style
	SelectedCard lipgloss.Style
	Banner       lipgloss.Style

	StatusBar lipgloss.Style
}

// NewStyles builds the styles for theme. A nil theme uses DefaultTheme.
func NewStyles(theme *Theme) *Styles {
	if theme == nil {
		theme = DefaultTheme()
	}

	fg := func(c lipgloss.Color) lipgloss.Style { return lipgloss.NewStyle().Foreground(c) }
	boxed := func(border lipgloss.Border, c lipgloss.Color) lipgloss.Style {
		return lipgloss.NewStyle().BorderStyle(border).BorderForeground(c).Padding(0, 1)
	}

	return &Styles{
		theme: theme,

		Title:    fg(theme.Primary).Bold(true),
		Subtitle: fg(theme.Secondary).Bold(true),
		Normal:   fg(theme.Foreground),
		Muted:    fg(theme.Muted),
		Selected: fg(theme.Foreground).Background(theme.Primary).Bold(true),
		Error:    fg(theme.Error),
		Success:  fg(theme.Success),
		Warning:  fg(theme.Warning),
		Help:     fg(theme.Muted),

		InputField:   boxed(lipgloss.RoundedBorder(), theme.Border),
		Chip:         boxed(lipgloss.RoundedBorder(), theme.Border).Foreground(theme.Muted),
		ActiveChip:   boxed(lipgloss.RoundedBorder(), theme.Primary).Foreground(theme.Foreground).Bold(true),
		Card:         boxed(lipgloss.RoundedBorder(), theme.Border),
		SelectedCard: boxed(lipgloss.ThickBorder(), theme.Primary),
		Banner:       boxed(lipgloss.NormalBorder(), theme.Error).Foreground(theme.Error).Bold(true),

		StatusBar: fg(theme.Muted).Background(theme.Surface).Padding(0, 1),
	}
}

// categoryColours gives each category its badge colour.
var categoryColours = map[domain.Category]lipgloss.Color{
	domain.CategoryPolitique:   lipgloss.Color("#3B82F6"),
	domain.CategoryEconomie:    lipgloss.Color("#10B981"),
	domain.CategorySecurite:    lipgloss.Color("#EF4444"),
	domain.CategoryTechnologie: lipgloss.Color("#8B5CF6"),
	domain.CategorySport:       lipgloss.Color("#F97316"),
}

// CategoryColour returns the badge colour for c. Categories without a
// dedicated colour use the muted theme colour.
func (s *Styles) CategoryColour(c domain.Category) lipgloss.Color {
	if colour, ok := categoryColours[c]; ok {
		return colour
	}
	return s.theme.Muted
}

// Badge renders a category badge.
func (s *Styles) Badge(c domain.Category) string {
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#FFFFFF")).
		Background(s.CategoryColour(c)).
		Padding(0, 1).
		Render(strings.ToUpper(c.String()))
}

// DefaultStyles returns styles with the default theme.
func DefaultStyles() *Styles {
	return NewStyles(DefaultTheme())
}

// Theme returns the palette the styles were built from.
func (s *Styles) Theme() *Theme {
	return s.theme
}
