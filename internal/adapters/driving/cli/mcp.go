package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/docsuggest/internal/adapters/driving/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "MCP server commands",
	Long:  `Commands for the Model Context Protocol (MCP) server integration.`,
}

var mcpServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server",
	Long: `Start the Model Context Protocol server so AI assistants can
autocomplete document titles.

Tools:      suggest_titles, index_stats
Resources:  docsuggest://users
            docsuggest://users/{userId}/documents
            docsuggest://documents/{documentId}

By default the server speaks JSON-RPC over stdio. Use --port to serve the
streamable HTTP transport instead, for example to test with MCP Inspector.

Examples:
  # Stdio mode (default)
  docsuggest mcp serve

  # HTTP mode
  docsuggest mcp serve --port 8080

Client configuration:
  {
    "mcpServers": {
      "docsuggest": {
        "command": "/path/to/docsuggest",
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

	s, err := requireServices()
	if err != nil {
		return err
	}

	server, err := mcp.NewServer(&mcp.Ports{
		Suggest:   s.Suggest,
		Users:     s.Users,
		Documents: s.Documents,
	})
	if err != nil {
		return err
	}

	stop := startBackground(cmd.Context(), s.Background)
	defer stop()

	if port > 0 {
		addr := fmt.Sprintf(":%d", port)
		// stdout belongs to JSON-RPC in stdio mode only.
		fmt.Fprintf(cmd.OutOrStdout(), "MCP server listening on http://localhost%s\n", addr)
		return server.RunHTTP(cmd.Context(), addr)
	}

	return server.Run(cmd.Context())
}
