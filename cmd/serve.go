package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	"github.com/petersancho/semreg/internal/log"
	"github.com/petersancho/semreg/internal/mcpserver"
)

var serveNoCache bool

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the registry to MCP clients over stdio",
	Long: `Expose the migrated registry as read-only MCP tools over stdio:
list_operations, get_operation, search_operations, registry_stats, and
validate_registry. Point an agent host's MCP server configuration at
this command.

Stdout carries the protocol, so diagnostics go to the debug log only.

Examples:
  semreg serve
  semreg serve --no-cache   # bypass the query cache while debugging`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().BoolVar(&serveNoCache, "no-cache", false,
		"bypass the registry query cache")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cleanup, err := setupLogging()
	if err != nil {
		return err
	}
	defer cleanup()

	reg, err := buildRegistry()
	if err != nil {
		return err
	}

	srv := mcpserver.New(reg, mcpserver.Options{
		Version:      version,
		DisableCache: serveNoCache,
	})

	ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	log.Info(log.CatMCP, "MCP server starting", "transport", "stdio", "cache", !serveNoCache)
	if err := srv.Run(ctx, &mcp.StdioTransport{}); err != nil {
		return fmt.Errorf("running MCP server: %w", err)
	}
	return nil
}
