package tui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/stonynews/stonynews-cli/internal/adapters/driving/tui/keymap"
	"github.com/stonynews/stonynews-cli/internal/adapters/driving/tui/messages"
	"github.com/stonynews/stonynews-cli/internal/adapters/driving/tui/styles"
	"github.com/stonynews/stonynews-cli/internal/adapters/driving/tui/views/news"
	"github.com/stonynews/stonynews-cli/internal/adapters/driving/tui/views/settings"
	"github.com/stonynews/stonynews-cli/internal/core/domain"
)

// App is the main TUI application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	// ports provides access to core services via driving ports.
	ports *Ports

	// ctx is the parent context of every search.
	ctx context.Context

	styles *styles.Styles
	keymap *keymap.KeyMap
	help   help.Model

	// newsView is the search and article view.
	newsView *news.View

	// settingsView shows and edits provider settings.
	settingsView *settings.View

	// currentView tracks which view is active.
	currentView messages.ViewType

	// err holds the last error that occurred.
	err error

	// width and height are terminal dimensions.
	width  int
	height int

	// ready indicates if the app has received its first size.
	ready bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application with the given ports.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := styles.DefaultStyles()
	km := keymap.DefaultKeyMap()

	return &App{
		ports:        ports,
		ctx:          context.Background(),
		styles:       s,
		keymap:       km,
		help:         help.New(),
		newsView:     news.NewView(s, km, ports.News),
		settingsView: settings.NewView(s, ports.Settings),
		currentView:  messages.ViewNews,
	}, nil
}

// WithContext sets the parent context of searches.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	a.newsView.WithContext(ctx)
	return a
}

// Init implements tea.Model.
// It sets the window title and searches the first suggestion.
func (a *App) Init() tea.Cmd {
	cmds := []tea.Cmd{
		tea.SetWindowTitle("Stony News AI"),
		a.newsView.Init(),
	}
	if suggestions := a.ports.News.Suggestions(); len(suggestions) > 0 {
		first := suggestions[0]
		cmds = append(cmds, func() tea.Msg {
			return messages.SearchRequested{Topic: first}
		})
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
// It handles messages and updates the model state.
//
//nolint:gocyclo // central message handler
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		return a.handleKeyMsg(msg)

	case messages.ViewChanged:
		return a, a.switchView(msg.View)

	case messages.SearchRequested, messages.SearchCompleted, spinner.TickMsg:
		// Searches finish in the background whichever view is shown.
		a.newsView, cmd = a.newsView.Update(msg)
		a.err = a.newsView.Err()
		return a, cmd

	case messages.SettingsLoaded, messages.SettingsSaved:
		a.settingsView, cmd = a.settingsView.Update(msg)
		return a, cmd

	case messages.ErrorOccurred:
		a.err = msg.Err
		a.newsView, cmd = a.newsView.Update(msg)
		return a, cmd

	case messages.Quit:
		return a, tea.Quit
	}

	switch a.currentView {
	case messages.ViewNews:
		a.newsView, cmd = a.newsView.Update(msg)
	case messages.ViewSettings:
		a.settingsView, cmd = a.settingsView.Update(msg)
	case messages.ViewHelp:
		// Help view is static
	}
	return a, cmd
}

// handleKeyMsg routes key presses. Global shortcuts only apply while the
// topic input does not have focus, so they can be typed into a topic.
func (a *App) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return a, tea.Quit
	}

	var cmd tea.Cmd
	keyStr := msg.String()

	switch a.currentView {
	case messages.ViewHelp:
		if msg.Type == tea.KeyEsc || keymap.Matches(keyStr, a.keymap.Help) {
			return a, a.switchView(messages.ViewNews)
		}
		if keymap.Matches(keyStr, a.keymap.Quit) {
			return a, tea.Quit
		}
		return a, nil

	case messages.ViewSettings:
		a.settingsView, cmd = a.settingsView.Update(msg)
		return a, cmd

	case messages.ViewNews:
		if !a.newsView.InputFocused() {
			switch {
			case keymap.Matches(keyStr, a.keymap.Quit):
				return a, tea.Quit
			case keymap.Matches(keyStr, a.keymap.Help):
				return a, a.switchView(messages.ViewHelp)
			case keymap.Matches(keyStr, a.keymap.Settings):
				return a, a.switchView(messages.ViewSettings)
			}
		}
		a.newsView, cmd = a.newsView.Update(msg)
		return a, cmd
	}
	return a, nil
}

// switchView activates view and returns its start-up command.
func (a *App) switchView(view messages.ViewType) tea.Cmd {
	a.currentView = view
	if view == messages.ViewSettings {
		a.settingsView.Reset()
		return a.settingsView.Init()
	}
	return nil
}

// View implements tea.Model.
// It renders the current view as a string.
func (a *App) View() string {
	if !a.ready {
		return "Initialisation..."
	}

	switch a.currentView {
	case messages.ViewSettings:
		return a.settingsView.View()
	case messages.ViewHelp:
		return a.viewHelp()
	default:
		return a.newsView.View()
	}
}

// viewHelp renders the keybinding reference.
func (a *App) viewHelp() string {
	a.help.Width = a.width
	return a.styles.Title.Render("Aide") + "\n\n" +
		a.help.FullHelpView(a.keymap.FullHelp()) + "\n\n" +
		a.styles.Help.Render("[esc] retour")
}

// Run starts the TUI application and blocks until it exits.
func (a *App) Run() error {
	defer a.newsView.Close()

	p := tea.NewProgram(a, tea.WithAltScreen(), tea.WithContext(a.ctx))
	_, err := p.Run()
	return err
}

// Topic returns the topic of the latest search.
func (a *App) Topic() string {
	return a.newsView.Topic()
}

// Articles returns the displayed articles.
func (a *App) Articles() []domain.Article {
	return a.newsView.Articles()
}

// CurrentView returns the current view type.
func (a *App) CurrentView() messages.ViewType {
	return a.currentView
}

// Err returns the last error that occurred.
func (a *App) Err() error {
	return a.err
}

// Ready returns whether the app has been initialised.
func (a *App) Ready() bool {
	return a.ready
}

// SetDimensions sets the terminal dimensions on the app and its views.
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true
	a.newsView.SetDimensions(width, height)
	a.settingsView.SetDimensions(width, height)
}
