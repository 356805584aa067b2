package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/stonynews/stonynews-cli/internal/core/domain"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage application settings",
	Long: `View and configure the completion provider, model and API key.

Settings live in ~/.stonynews/config.toml. The API key may also come from the
GEMINI_API_KEY or API_KEY environment variables, which take precedence.`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	Args:  cobra.NoArgs,
	RunE:  runSettingsShow,
}

var settingsProviderCmd = &cobra.Command{
	Use:   "set-provider [provider]",
	Short: "Select the completion provider",
	Long: `Select the completion provider.

Available providers:
  gemini - Google Gemini with search grounding (default)
  openai - OpenAI-compatible chat completions, without grounding or sources

The model is reset to the provider default unless --model is given.`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"gemini", "openai"},
	RunE:      runSettingsProvider,
}

var settingsModelCmd = &cobra.Command{
	Use:   "set-model [model]",
	Short: "Set the model for the current provider",
	Args:  cobra.ExactArgs(1),
	RunE:  runSettingsModel,
}

var settingsKeyCmd = &cobra.Command{
	Use:   "set-key [key]",
	Short: "Store the API key in the config file",
	Long: `Store the API key in the config file.

Without an argument the key is read from standard input, hidden when the
input is a terminal. Environment variables still take precedence.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSettingsKey,
}

// stdin is the key input source; replaced in tests.
var stdin io.Reader = os.Stdin

func init() {
	settingsProviderCmd.Flags().String("model", "", "model to use (default: provider default)")
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsProviderCmd)
	settingsCmd.AddCommand(settingsModelCmd)
	settingsCmd.AddCommand(settingsKeyCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	svc, err := settingsService()
	if err != nil {
		return err
	}

	settings, err := svc.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	cmd.Println("Current Settings")
	cmd.Println("================")
	cmd.Println()

	cmd.Println("[Completion]")
	cmd.Printf("  Provider: %s\n", settings.Provider.Description())
	cmd.Printf("  Model: %s\n", settings.Model)
	if settings.BaseURL != "" {
		cmd.Printf("  Base URL: %s\n", settings.BaseURL)
	}
	cmd.Printf("  API Key: %s\n", domain.MaskedKey(settings.APIKey))
	cmd.Printf("  Temperature: %.2f\n", settings.ClampedTemperature())
	cmd.Printf("  Timeout: %ds\n", settings.TimeoutSeconds)
	cmd.Printf("  Rate limit: %d/min\n", settings.RatePerMinute)
	cmd.Println()

	cmd.Println("[Grounding]")
	if settings.Provider.SupportsGrounding() {
		cmd.Println("  Web search: enabled, with one ungrounded retry")
	} else {
		cmd.Println("  Web search: not supported by this provider, articles carry no sources")
	}
	cmd.Println()

	if settings.IsConfigured() {
		cmd.Println("Configuration is valid.")
	} else {
		cmd.Println("Warning: no API key configured.")
		cmd.Println("Set GEMINI_API_KEY or run 'stonynews settings set-key'.")
	}
	return nil
}

func runSettingsProvider(cmd *cobra.Command, args []string) error {
	svc, err := settingsService()
	if err != nil {
		return err
	}

	provider := domain.AIProvider(strings.ToLower(strings.TrimSpace(args[0])))
	model, err := cmd.Flags().GetString("model")
	if err != nil {
		return fmt.Errorf("getting model flag: %w", err)
	}

	if err := svc.SetProvider(provider, model); err != nil {
		return fmt.Errorf("failed to set provider: %w", err)
	}

	settings, err := svc.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}
	cmd.Printf("Provider set to %s (model %s)\n", settings.Provider.Description(), settings.Model)
	return nil
}

func runSettingsModel(cmd *cobra.Command, args []string) error {
	svc, err := settingsService()
	if err != nil {
		return err
	}

	settings, err := svc.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	model := strings.TrimSpace(args[0])
	if model == "" {
		return fmt.Errorf("%w: model is empty", domain.ErrInvalidInput)
	}
	settings.Model = model
	if err := svc.Save(settings); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	cmd.Printf("Model set to %s\n", model)
	return nil
}

func runSettingsKey(cmd *cobra.Command, args []string) error {
	svc, err := settingsService()
	if err != nil {
		return err
	}

	var key string
	if len(args) == 1 {
		key = args[0]
	} else {
		cmd.Print("API key: ")
		key = readSecret(stdin)
		cmd.Println()
	}

	if err := svc.SetAPIKey(key); err != nil {
		return fmt.Errorf("failed to set API key: %w", err)
	}

	cmd.Printf("API key saved (%s)\n", domain.MaskedKey(strings.TrimSpace(key)))
	return nil
}

// readSecret reads one line from r, hiding input when r is a terminal.
//
//nolint:errcheck // CLI helper, error ignored for UX
func readSecret(r io.Reader) string {
	if f, ok := r.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		secret, err := term.ReadPassword(int(f.Fd()))
		if err == nil {
			return strings.TrimSpace(string(secret))
		}
	}
	// Fallback to regular input
	input, _ := bufio.NewReader(r).ReadString('\n')
	return strings.TrimSpace(input)
}
