package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/stonynews/stonynews-cli/internal/core/domain"
)

var (
	searchJSON    bool
	searchTable   bool
	searchNoColor bool
)

var searchCmd = &cobra.Command{
	Use:   "search [topic]",
	Short: "Build a press dossier on a topic",
	Long: `Sends the topic to the completion service with web search grounding and
prints the resulting article cards with their sources.

If the grounded request fails it is retried once without grounding.

Examples:
  stonynews search "Sécurité Sahel"
  stonynews search Économie UEMOA --table
  stonynews search "Tech à Dakar" --json`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "output articles as JSON")
	searchCmd.Flags().BoolVar(&searchTable, "table", false, "output articles as a table")
	searchCmd.Flags().BoolVar(&searchNoColor, "no-color", false, "disable colour output")
	searchCmd.MarkFlagsMutuallyExclusive("json", "table")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	news, err := newsService()
	if err != nil {
		return err
	}

	topic := strings.Join(args, " ")
	articles, err := news.Search(cmd.Context(), topic)
	if err != nil {
		return fmt.Errorf("%s: %w", domain.UserMessage(err), err)
	}

	if searchJSON {
		return outputSearchJSON(cmd, articles)
	}

	printer := newArticlePrinter(cmd.OutOrStdout(), !searchNoColor && !color.NoColor)
	if searchTable {
		printer.Table(articles)
		return nil
	}
	printer.Cards(strings.TrimSpace(topic), articles)
	return nil
}

func outputSearchJSON(cmd *cobra.Command, articles []domain.Article) error {
	data, err := json.MarshalIndent(articles, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal articles: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}
