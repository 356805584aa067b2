package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/stonynews/stonynews-cli/internal/core/domain"
)

const (
	// summaryWidth is the column at which card summaries wrap.
	summaryWidth = 76

	// noSourcesLabel is shown on cards without grounding sources.
	noSourcesLabel = "Analyse exclusive Stony News AI"

	// sourcesHeading introduces the source list of a card.
	sourcesHeading = "Flux de vérification"
)

// categoryColors gives a category its badge colour. Others render white.
var categoryColors = map[domain.Category]color.Attribute{
	domain.CategoryPolitique:   color.FgBlue,
	domain.CategoryEconomie:    color.FgGreen,
	domain.CategorySecurite:    color.FgRed,
	domain.CategoryTechnologie: color.FgMagenta,
	domain.CategorySport:       color.FgYellow,
}

// articlePrinter renders article cards and tables.
type articlePrinter struct {
	out       io.Writer
	useColors bool
}

func newArticlePrinter(out io.Writer, useColors bool) *articlePrinter {
	return &articlePrinter{out: out, useColors: useColors}
}

// paint returns a colour honouring the printer's colour setting.
func (p *articlePrinter) paint(attrs ...color.Attribute) *color.Color {
	c := color.New(attrs...)
	if p.useColors {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	return c
}

// Cards prints one block per article.
func (p *articlePrinter) Cards(topic string, articles []domain.Article) {
	p.paint(color.FgWhite, color.Bold).Fprintf(p.out, "Dossier : %s\n", topic)
	fmt.Fprintf(p.out, "%s\n", strings.Repeat("─", summaryWidth))

	if len(articles) == 0 {
		fmt.Fprintln(p.out, "Aucun article.")
		return
	}

	for i := range articles {
		p.card(&articles[i])
	}
}

func (p *articlePrinter) card(a *domain.Article) {
	fmt.Fprintln(p.out)

	badge := p.paint(categoryAttr(a.Category), color.Bold).Sprint(strings.ToUpper(a.Category.String()))
	stamp := a.Timestamp
	if a.IsDirect() {
		stamp = "flux direct"
	}
	fmt.Fprintf(p.out, "%s  %s\n", badge, p.paint(color.Faint).Sprint(stamp))
	p.paint(color.Bold).Fprintln(p.out, a.Title)

	for _, line := range wrapText(a.Summary, summaryWidth) {
		fmt.Fprintf(p.out, "  %s\n", line)
	}

	p.paint(color.Faint).Fprintf(p.out, "  %s\n", sourcesHeading)
	if len(a.Sources) == 0 {
		p.paint(color.Faint, color.Italic).Fprintf(p.out, "    %s\n", noSourcesLabel)
		return
	}
	for _, src := range a.Sources {
		fmt.Fprintf(p.out, "    %s %s\n",
			p.paint(color.FgCyan).Sprint(src.DisplayName()),
			p.paint(color.Faint).Sprint(src.URL),
		)
	}
}

// Table prints one row per article.
func (p *articlePrinter) Table(articles []domain.Article) {
	table := tablewriter.NewTable(p.out,
		tablewriter.WithConfig(tablewriter.Config{
			Row: tw.CellConfig{
				Formatting: tw.CellFormatting{
					AutoWrap: tw.WrapNone,
				},
				Alignment: tw.CellAlignment{
					Global: tw.AlignLeft,
				},
			},
			Header: tw.CellConfig{
				Formatting: tw.CellFormatting{
					AutoFormat: tw.On,
				},
				Alignment: tw.CellAlignment{
					Global: tw.AlignLeft,
				},
			},
		}),
		tablewriter.WithRendition(tw.Rendition{
			Borders: tw.BorderNone,
			Settings: tw.Settings{
				Separators: tw.Separators{
					ShowHeader: tw.Off,
				},
			},
		}),
	)

	rows := make([][]string, len(articles))
	for i := range articles {
		a := &articles[i]
		names := make([]string, len(a.Sources))
		for j, src := range a.Sources {
			names[j] = src.DisplayName()
		}
		rows[i] = []string{
			fmt.Sprintf("%d", i+1),
			a.Timestamp,
			a.Category.String(),
			a.Title,
			strings.Join(names, ", "),
		}
	}

	table.Header([]string{"#", "Heure", "Catégorie", "Titre", "Sources"})
	table.Bulk(rows)
	table.Render()
}

func categoryAttr(c domain.Category) color.Attribute {
	if attr, ok := categoryColors[c]; ok {
		return attr
	}
	return color.FgWhite
}

// wrapText breaks s into lines of at most width runes on word boundaries.
// Words longer than width get a line of their own.
func wrapText(s string, width int) []string {
	words := strings.Fields(s)
	if len(words) == 0 {
		return nil
	}

	var (
		lines   []string
		current strings.Builder
		runes   int
	)
	for _, w := range words {
		n := len([]rune(w))
		if runes > 0 && runes+1+n > width {
			lines = append(lines, current.String())
			current.Reset()
			runes = 0
		}
		if runes > 0 {
			current.WriteByte(' ')
			runes++
		}
		current.WriteString(w)
		runes += n
	}
	return append(lines, current.String())
}
