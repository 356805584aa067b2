package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

var suggestionsJSON bool

var suggestionsCmd = &cobra.Command{
	Use:   "suggestions",
	Short: "List suggested topics",
	Args:  cobra.NoArgs,
	RunE:  runSuggestions,
}

func init() {
	suggestionsCmd.Flags().BoolVar(&suggestionsJSON, "json", false, "output suggestions as JSON")
	rootCmd.AddCommand(suggestionsCmd)
}

func runSuggestions(cmd *cobra.Command, _ []string) error {
	news, err := newsService()
	if err != nil {
		return err
	}

	suggestions := news.Suggestions()
	if suggestionsJSON {
		data, err := json.Marshal(suggestions)
		if err != nil {
			return fmt.Errorf("failed to marshal suggestions: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	}

	for _, s := range suggestions {
		cmd.Printf("  • %s\n", s)
	}
	return nil
}
