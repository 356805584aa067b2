package cli

import (
	"errors"
	"fmt"
	"runtime/debug"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/stonynews/stonynews-cli/internal/adapters/driving/tui"
)

// tuiCmd represents the tui command.
var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive terminal UI",
	Long: `Launch the interactive terminal interface of Stony News.

The first suggested topic is searched on start-up. Type a topic and press
Enter, or cycle through the suggestions with Tab.

Controls:
  Enter       - Search
  Tab         - Next suggestion
  ↑/k, ↓/j    - Browse articles
  /           - New topic
  s           - Settings
  ?           - Help
  q, Ctrl+C   - Quit`,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, _ []string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic in TUI: %v\n%s", r, debug.Stack())
		}
	}()

	news, err := newsService()
	if err != nil {
		return err
	}

	ports := tui.NewPorts(news, services.Settings)

	app, err := tui.NewApp(ports)
	if err != nil {
		return fmt.Errorf("failed to create TUI: %w", err)
	}
	app.WithContext(cmd.Context())

	stop := startPromptWatcher(cmd.Context())
	defer stop()

	if err := app.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}
