package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/atlaslens/jira-mcp/internal/adapters/driving/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "MCP server commands",
	Long:  `Commands for the Model Context Protocol (MCP) server integration.`,
}

var mcpServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server",
	Long: `Serve the Jira tools over the Model Context Protocol.

The default transport is stdio: an MCP host launches this command as a
subprocess and speaks JSON-RPC over its pipes, so credentials are
usually passed through the host's env block. With --port the server
listens on HTTP (streamable transport) instead, which suits inspector
tooling and shared deployments.

Examples:
  jira-mcp mcp serve
  jira-mcp mcp serve --port 8080`,
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

	ctx := cmd.Context()
	if err := initServices(ctx); err != nil {
		return err
	}

	ports := &mcp.Ports{
		Issues:   issueService,
		Projects: projectService,
	}

	server, err := mcp.NewServer(ports)
	if err != nil {
		return err
	}

	if port > 0 {
		addr := fmt.Sprintf(":%d", port)
		fmt.Fprintf(cmd.ErrOrStderr(), "MCP server listening on http://localhost%s\n", addr)
		return server.RunHTTP(ctx, addr)
	}

	return server.Run(ctx)
}
