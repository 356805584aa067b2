package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/stonynews/stonynews-cli/internal/adapters/driving/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "MCP server commands",
	Long:  `Commands for the Model Context Protocol (MCP) server integration.`,
}

var mcpServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server",
	Long: `Start the Model Context Protocol server so AI assistants can request
news dossiers through the search_news tool.

By default, the server communicates over stdio using JSON-RPC. Use --port to
serve the streamable HTTP transport instead, for example to inspect the
server with MCP Inspector.

Prompt files under the config directory are reloaded when they change.

Examples:
  # Stdio mode (default)
  stonynews mcp serve

  # HTTP mode
  stonynews mcp serve --port 8080

Assistant configuration:
  {
    "mcpServers": {
      "stonynews": {
        "command": "/path/to/stonynews",
        "args": ["mcp", "serve"]
      }
    }
  }`,
	RunE: runMCPServe,
}

func init() {
	mcpServeCmd.Flags().IntP("port", "p", 0, "HTTP port (0 = use stdio)")
	mcpCmd.AddCommand(mcpServeCmd)
	rootCmd.AddCommand(mcpCmd)
}

func runMCPServe(cmd *cobra.Command, _ []string) error {
	port, err := cmd.Flags().GetInt("port")
	if err != nil {
		return fmt.Errorf("getting port flag: %w", err)
	}

	news, err := newsService()
	if err != nil {
		return err
	}
	ports := &mcp.Ports{News: news, Settings: services.Settings}

	server, err := mcp.NewServer(ports)
	if err != nil {
		return err
	}

	stop := startPromptWatcher(cmd.Context())
	defer stop()

	if port > 0 {
		addr := fmt.Sprintf(":%d", port)
		fmt.Fprintf(cmd.OutOrStdout(), "MCP server listening on http://localhost%s\n", addr)
		return server.RunHTTP(cmd.Context(), addr)
	}

	return server.Run(cmd.Context())
}
