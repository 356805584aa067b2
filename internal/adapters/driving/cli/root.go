// Package cli provides the cobra command tree for the stonynews binary.
package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/stonynews/stonynews-cli/internal/core/ports/driving"
	"github.com/stonynews/stonynews-cli/internal/logger"
)

// version is set at build time via SetVersion.
var version = "dev"

// Options carries the global flag values to the bootstrap function.
type Options struct {
	// ConfigDir overrides ~/.stonynews.
	ConfigDir string

	// NoConfig runs from defaults and the environment without touching disk.
	NoConfig bool

	// Verbose enables debug logging.
	Verbose bool
}

// PromptWatcher reloads prompts while a long-running command is active.
type PromptWatcher interface {
	Start(ctx context.Context) error
	Close() error
}

// Services are the driving ports the commands run against.
type Services struct {
	News     driving.NewsService
	Settings driving.SettingsService

	// PromptWatcher is optional. It is started by the tui and mcp commands.
	PromptWatcher PromptWatcher

	// Close releases adapter resources. Optional.
	Close func()
}

// Bootstrap builds the services from the global options.
type Bootstrap func(ctx context.Context, opts Options) (*Services, error)

var (
	rootOpts  Options
	bootstrap Bootstrap
	services  *Services
)

var rootCmd = &cobra.Command{
	Use:   "stonynews",
	Short: "Grounded news dossiers from the terminal",
	Long: `Stony News turns a topic into a short press review.

The topic is sent to a generative model with web search grounding. The answer
is split into article cards with a title, a summary, a category and the
sources the model relied on.

Set GEMINI_API_KEY (or run 'stonynews settings set-key') before searching.`,
	SilenceUsage:      true,
	PersistentPreRunE: initServices,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&rootOpts.Verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&rootOpts.ConfigDir, "config-dir", "", "configuration directory (default ~/.stonynews)")
	rootCmd.PersistentFlags().BoolVar(&rootOpts.NoConfig, "no-config", false, "ignore the config file and use the environment only")
}

// SetVersion sets the version reported by 'stonynews version'.
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}

// SetBootstrap registers the function that builds services on first use.
func SetBootstrap(fn Bootstrap) {
	bootstrap = fn
}

// SetServices injects ready-made services, bypassing the bootstrap.
func SetServices(s *Services) {
	services = s
}

// Execute runs the root command.
func Execute(ctx context.Context) error {
	defer closeServices()
	return rootCmd.ExecuteContext(ctx)
}

// initServices configures logging and runs the bootstrap once.
func initServices(cmd *cobra.Command, _ []string) error {
	logger.SetVerbose(rootOpts.Verbose)
	logger.SetOutput(cmd.ErrOrStderr())

	if services != nil || bootstrap == nil {
		return nil
	}

	s, err := bootstrap(cmd.Context(), rootOpts)
	if err != nil {
		return fmt.Errorf("initialise: %w", err)
	}
	services = s
	return nil
}

func closeServices() {
	if services != nil && services.Close != nil {
		services.Close()
	}
}

func newsService() (driving.NewsService, error) {
	if services == nil || services.News == nil {
		return nil, errors.New("news service not configured")
	}
	return services.News, nil
}

func settingsService() (driving.SettingsService, error) {
	if services == nil || services.Settings == nil {
		return nil, errors.New("settings service not configured")
	}
	return services.Settings, nil
}

// startPromptWatcher starts the optional prompt watcher and returns its stop function.
func startPromptWatcher(ctx context.Context) func() {
	if services == nil || services.PromptWatcher == nil {
		return func() {}
	}
	w := services.PromptWatcher
	if err := w.Start(ctx); err != nil {
		logger.Warn("Prompt hot reload disabled: %v", err)
		return func() {}
	}
	return func() { _ = w.Close() }
}
