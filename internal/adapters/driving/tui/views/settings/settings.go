// Package settings provides the provider settings view for the TUI.
package settings

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/stonynews/stonynews-cli/internal/adapters/driving/tui/messages"
	"github.com/stonynews/stonynews-cli/internal/adapters/driving/tui/styles"
	"github.com/stonynews/stonynews-cli/internal/core/domain"
	"github.com/stonynews/stonynews-cli/internal/core/ports/driving"
)

// ErrNoSettingsService indicates the view was built without a settings service.
var ErrNoSettingsService = errors.New("settings service not available")

// Section tracks which part of the view has focus.
type Section int

const (
	// SectionOverview lists the current settings.
	SectionOverview Section = iota
	// SectionProvider selects the completion provider.
	SectionProvider
	// SectionAPIKey edits the credential.
	SectionAPIKey
)

const restartNotice = "Les changements s'appliquent au prochain lancement."

// View is the provider settings view.
type View struct {
	styles          *styles.Styles
	settingsService driving.SettingsService

	settings *domain.NewsSettings
	err      error
	saved    bool

	section  Section
	selected int
	keyInput textinput.Model

	width  int
	height int
	ready  bool
}

// NewView creates a new settings view.
func NewView(s *styles.Styles, settingsService driving.SettingsService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}

	keyInput := textinput.New()
	keyInput.Placeholder = "Clé API"
	keyInput.EchoMode = textinput.EchoPassword
	keyInput.CharLimit = 256

	return &View{
		styles:          s,
		settingsService: settingsService,
		keyInput:        keyInput,
	}
}

// Init loads the current settings.
func (v *View) Init() tea.Cmd {
	return v.loadSettings()
}

func (v *View) loadSettings() tea.Cmd {
	return func() tea.Msg {
		if v.settingsService == nil {
			return messages.SettingsLoaded{Err: ErrNoSettingsService}
		}
		settings, err := v.settingsService.Get()
		return messages.SettingsLoaded{Settings: settings, Err: err}
	}
}

// Update handles messages for the settings view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case messages.SettingsLoaded:
		v.err = msg.Err
		if msg.Err == nil {
			v.settings = msg.Settings
		}
		return v, nil

	case messages.SettingsSaved:
		v.err = msg.Err
		if msg.Err != nil {
			return v, nil
		}
		v.saved = true
		v.section = SectionOverview
		return v, v.loadSettings()

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)
	}

	return v, nil
}

// handleKeyMsg handles key presses based on the current section.
func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	if msg.Type == tea.KeyEsc {
		if v.section == SectionOverview {
			return v, func() tea.Msg {
				return messages.ViewChanged{View: messages.ViewNews}
			}
		}
		v.section = SectionOverview
		v.keyInput.Blur()
		return v, nil
	}

	switch v.section {
	case SectionOverview:
		switch msg.String() {
		case "p":
			v.section = SectionProvider
			v.selected = v.providerIndex()
		case "k":
			v.section = SectionAPIKey
			v.keyInput.SetValue("")
			return v, v.keyInput.Focus()
		}
	case SectionProvider:
		return v.handleProviderKeys(msg)
	case SectionAPIKey:
		if msg.Type == tea.KeyEnter {
			return v, v.setAPIKey(v.keyInput.Value())
		}
		var cmd tea.Cmd
		v.keyInput, cmd = v.keyInput.Update(msg)
		return v, cmd
	}
	return v, nil
}

func (v *View) handleProviderKeys(msg tea.KeyMsg) (*View, tea.Cmd) {
	providers := domain.AllProviders()

	switch msg.String() {
	case "up", "k":
		if v.selected > 0 {
			v.selected--
		}
	case "down", "j":
		if v.selected < len(providers)-1 {
			v.selected++
		}
	case "enter":
		return v, v.setProvider(providers[v.selected])
	}
	return v, nil
}

func (v *View) setProvider(provider domain.AIProvider) tea.Cmd {
	return func() tea.Msg {
		if v.settingsService == nil {
			return messages.SettingsSaved{Err: ErrNoSettingsService}
		}
		return messages.SettingsSaved{Err: v.settingsService.SetProvider(provider, "")}
	}
}

func (v *View) setAPIKey(key string) tea.Cmd {
	key = strings.TrimSpace(key)
	if key == "" {
		return nil
	}
	return func() tea.Msg {
		if v.settingsService == nil {
			return messages.SettingsSaved{Err: ErrNoSettingsService}
		}
		return messages.SettingsSaved{Err: v.settingsService.SetAPIKey(key)}
	}
}

// providerIndex returns the position of the current provider in the list.
func (v *View) providerIndex() int {
	if v.settings == nil {
		return 0
	}
	for i, p := range domain.AllProviders() {
		if p == v.settings.Provider {
			return i
		}
	}
	return 0
}

// View renders the settings view.
func (v *View) View() string {
	var b strings.Builder

	b.WriteString(v.styles.Title.Render("Réglages"))
	b.WriteString("\n\n")

	if v.err != nil {
		b.WriteString(v.styles.Error.Render("Erreur : " + v.err.Error()))
		b.WriteString("\n\n")
	}

	if v.settings == nil {
		b.WriteString(v.styles.Muted.Render("Chargement des réglages..."))
		b.WriteString("\n\n")
		b.WriteString(v.styles.Help.Render("[esc] retour"))
		return b.String()
	}

	switch v.section {
	case SectionOverview:
		b.WriteString(v.renderOverview())
	case SectionProvider:
		b.WriteString(v.renderProviderSelect())
	case SectionAPIKey:
		b.WriteString(v.styles.Subtitle.Render("Clé API"))
		b.WriteString("\n\n")
		b.WriteString(v.keyInput.View())
		b.WriteString("\n\n")
		b.WriteString(v.styles.Help.Render("[enter] enregistrer  [esc] annuler"))
	}

	return b.String()
}

func (v *View) renderOverview() string {
	s := v.settings
	var b strings.Builder

	rows := [][2]string{
		{"Fournisseur", s.Provider.Description()},
		{"Modèle", s.Model},
		{"Clé API", domain.MaskedKey(s.APIKey)},
		{"Température", fmt.Sprintf("%.2f", s.ClampedTemperature())},
		{"Délai", fmt.Sprintf("%d s", s.TimeoutSeconds)},
		{"Débit", fmt.Sprintf("%d req/min", s.RatePerMinute)},
	}
	if s.BaseURL != "" {
		rows = append(rows, [2]string{"URL", s.BaseURL})
	}
	for _, row := range rows {
		b.WriteString(v.styles.Muted.Render(fmt.Sprintf("  %-12s ", row[0])))
		b.WriteString(v.styles.Normal.Render(row[1]))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	if s.IsConfigured() {
		b.WriteString(v.styles.Success.Render("  Configuration valide"))
	} else {
		b.WriteString(v.styles.Warning.Render("  " + domain.MessageNotConfigured))
	}
	b.WriteString("\n")

	if v.saved {
		b.WriteString(v.styles.Muted.Render("  " + restartNotice))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(v.styles.Help.Render("[p] fournisseur  [k] clé API  [esc] retour"))
	return b.String()
}

func (v *View) renderProviderSelect() string {
	var b strings.Builder

	b.WriteString(v.styles.Subtitle.Render("Fournisseur"))
	b.WriteString("\n\n")

	for i, p := range domain.AllProviders() {
		line := "  " + p.Description()
		if p == v.settings.Provider {
			line += " (actuel)"
		}
		if i == v.selected {
			b.WriteString(v.styles.Selected.Render("> " + strings.TrimPrefix(line, "  ")))
		} else {
			b.WriteString(v.styles.Normal.Render(line))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(v.styles.Help.Render("[↑/↓] choisir  [enter] valider  [esc] annuler"))
	return b.String()
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
}

// Reset returns the view to the overview.
func (v *View) Reset() {
	v.section = SectionOverview
	v.selected = 0
	v.saved = false
	v.err = nil
	v.keyInput.Blur()
	v.keyInput.SetValue("")
}

// Settings returns the loaded settings.
func (v *View) Settings() *domain.NewsSettings {
	return v.settings
}

// Section returns the active section.
func (v *View) Section() Section {
	return v.section
}

// Err returns the last error.
func (v *View) Err() error {
	return v.err
}
