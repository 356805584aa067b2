// Package input provides text input components for the TUI.
package input

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/stonynews/stonynews-cli/internal/adapters/driving/tui/styles"
)

const (
	topicCharLimit = 200
	minInputWidth  = 20
)

// TopicInput wraps a bubbles textinput for entering a news topic.
type TopicInput struct {
	textinput textinput.Model
	styles    *styles.Styles
	width     int
}

// NewTopicInput creates a new, focused topic input.
func NewTopicInput(s *styles.Styles) *TopicInput {
	if s == nil {
		s = styles.DefaultStyles()
	}

	ti := textinput.New()
	ti.Placeholder = "Rechercher un sujet (ex : Sécurité Sahel)..."
	ti.Focus()
	ti.CharLimit = topicCharLimit
	ti.Width = 50

	return &TopicInput{
		textinput: ti,
		styles:    s,
		width:     50,
	}
}

// Init starts the cursor blink.
func (t *TopicInput) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles input messages.
func (t *TopicInput) Update(msg tea.Msg) (*TopicInput, tea.Cmd) {
	var cmd tea.Cmd
	t.textinput, cmd = t.textinput.Update(msg)
	return t, cmd
}

// View renders the label and the input field.
func (t *TopicInput) View() string {
	label := t.styles.Title.Render("Sujet : ")
	field := t.styles.InputField.Render(t.textinput.View())
	//nolint:misspell // lipgloss.Center is the correct constant from the library
	return lipgloss.JoinHorizontal(lipgloss.Center, label, field)
}

// Value returns the current input value.
func (t *TopicInput) Value() string {
	return t.textinput.Value()
}

// SetValue sets the input value.
func (t *TopicInput) SetValue(value string) {
	t.textinput.SetValue(value)
}

// Focus sets focus on the input.
func (t *TopicInput) Focus() tea.Cmd {
	return t.textinput.Focus()
}

// Blur removes focus from the input.
func (t *TopicInput) Blur() {
	t.textinput.Blur()
}

// Focused returns whether the input is focused.
func (t *TopicInput) Focused() bool {
	return t.textinput.Focused()
}

// SetWidth sets the width of the input, leaving room for the label.
func (t *TopicInput) SetWidth(width int) {
	t.width = width
	t.textinput.Width = max(width-12, minInputWidth)
}

// Width returns the current width.
func (t *TopicInput) Width() int {
	return t.width
}

// Reset clears the input.
func (t *TopicInput) Reset() {
	t.textinput.Reset()
}
