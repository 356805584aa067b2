// Package chips renders the row of suggested topics.
package chips

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/stonynews/stonynews-cli/internal/adapters/driving/tui/styles"
)

// Row is a horizontal set of suggestion chips with one optional highlight.
// An active index of -1 means no chip is highlighted.
type Row struct {
	items  []string
	active int
	styles *styles.Styles
}

// NewRow creates a chip row with nothing highlighted.
func NewRow(s *styles.Styles, items []string) *Row {
	if s == nil {
		s = styles.DefaultStyles()
	}
	return &Row{items: items, active: -1, styles: s}
}

// Next highlights the following chip, wrapping around.
func (r *Row) Next() {
	if len(r.items) == 0 {
		return
	}
	r.active = (r.active + 1) % len(r.items)
}

// Prev highlights the preceding chip, wrapping around.
func (r *Row) Prev() {
	if len(r.items) == 0 {
		return
	}
	if r.active <= 0 {
		r.active = len(r.items) - 1
		return
	}
	r.active--
}

// Clear removes the highlight.
func (r *Row) Clear() {
	r.active = -1
}

// Active returns the highlighted chip and whether one is highlighted.
func (r *Row) Active() (string, bool) {
	if r.active < 0 || r.active >= len(r.items) {
		return "", false
	}
	return r.items[r.active], true
}

// Items returns the chip labels.
func (r *Row) Items() []string {
	return r.items
}

// View renders the chips side by side.
func (r *Row) View() string {
	if len(r.items) == 0 {
		return ""
	}
	rendered := make([]string, 0, len(r.items))
	for i, item := range r.items {
		style := r.styles.Chip
		if i == r.active {
			style = r.styles.ActiveChip
		}
		rendered = append(rendered, style.Render(item))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}
