// Package mcpserver exposes the registry to agents over the Model
// Context Protocol: read-only tools for listing, fetching and searching
// operations, plus stats and validation sweeps. Query results are
// memoized per process since the registry never changes after bootstrap.
package mcpserver

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/petersancho/semreg/internal/ontology"
)

// Options configures the server.
type Options struct {
	// Version reported to clients during initialization.
	Version string
	// DisableCache recomputes every query instead of memoizing.
	DisableCache bool
}

// New creates a fully configured MCP server with all tools registered.
func New(reg *ontology.Registry, opts Options) *mcp.Server {
	version := opts.Version
	if version == "" {
		version = "dev"
	}

	rt := NewRegistryTools(reg, opts.DisableCache)

	srv := mcp.NewServer(&mcp.Implementation{
		Name:    "semreg",
		Version: version,
	}, nil)

	mcp.AddTool(srv, &mcp.Tool{
		Name:        "list_operations",
		Description: "List registered operations, optionally restricted to one domain",
	}, rt.ListOperations)

	mcp.AddTool(srv, &mcp.Tool{
		Name:        "get_operation",
		Description: "Get the full record of one operation by id",
	}, rt.GetOperation)

	mcp.AddTool(srv, &mcp.Tool{
		Name:        "search_operations",
		Description: "Search operations by substring, tag, domain and safety class; filters combine",
	}, rt.SearchOperations)

	mcp.AddTool(srv, &mcp.Tool{
		Name:        "registry_stats",
		Description: "Aggregate counts: entities by kind, operations by domain and safety class, purity totals",
	}, rt.RegistryStats)

	mcp.AddTool(srv, &mcp.Tool{
		Name:        "validate_registry",
		Description: "Sweep every cross-reference and report dangling ids",
	}, rt.ValidateRegistry)

	return srv
}
