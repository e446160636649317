package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/petersancho/semreg/internal/cachemanager"
	"github.com/petersancho/semreg/internal/log"
	"github.com/petersancho/semreg/internal/ontology"
	"github.com/petersancho/semreg/internal/presentation"
)

// RegistryTools holds the registry and the per-tool memoization caches.
// Every tool is read-only; the registry never changes after bootstrap,
// so cached results stay valid for the life of the process.
type RegistryTools struct {
	reg *ontology.Registry

	list     *cachemanager.ReadThrough[[]OperationSummary, ListOperationsInput]
	search   *cachemanager.ReadThrough[[]OperationSummary, SearchOperationsInput]
	stats    *cachemanager.ReadThrough[presentation.StatsDTO, struct{}]
	validate *cachemanager.ReadThrough[presentation.ValidationDTO, struct{}]
}

// NewRegistryTools wires the tool handlers to a registry. disableCache
// bypasses memoization so every call recomputes.
func NewRegistryTools(reg *ontology.Registry, disableCache bool) *RegistryTools {
	t := &RegistryTools{reg: reg}
	t.list = cachemanager.NewReadThrough(
		cachemanager.NewInMemory[[]OperationSummary]("mcp-list", cachemanager.DefaultExpiration, cachemanager.DefaultCleanupInterval),
		t.fetchList, disableCache)
	t.search = cachemanager.NewReadThrough(
		cachemanager.NewInMemory[[]OperationSummary]("mcp-search", cachemanager.DefaultExpiration, cachemanager.DefaultCleanupInterval),
		t.fetchSearch, disableCache)
	t.stats = cachemanager.NewReadThrough(
		cachemanager.NewInMemory[presentation.StatsDTO]("mcp-stats", cachemanager.DefaultExpiration, cachemanager.DefaultCleanupInterval),
		t.fetchStats, disableCache)
	t.validate = cachemanager.NewReadThrough(
		cachemanager.NewInMemory[presentation.ValidationDTO]("mcp-validate", cachemanager.DefaultExpiration, cachemanager.DefaultCleanupInterval),
		t.fetchValidate, disableCache)
	return t
}

// --- Input types ---

type ListOperationsInput struct {
	Domain string `json:"domain,omitempty" jsonschema:"Restrict the listing to one domain (e.g. math, vector)"`
}

type GetOperationInput struct {
	ID string `json:"id" jsonschema:"Operation id, e.g. math.add"`
}

type SearchOperationsInput struct {
	Query  string `json:"query,omitempty" jsonschema:"Substring matched against operation ids, names and synonyms (case-insensitive)"`
	Tag    string `json:"tag,omitempty" jsonschema:"Require an exact tag"`
	Domain string `json:"domain,omitempty" jsonschema:"Require an exact domain"`
	Safety string `json:"safety,omitempty" jsonschema:"Require a safety class: safe, idempotent, stateful, external or destructive"`
}

// --- Result types ---

// OperationSummary is the compact listing shape; get_operation returns
// the full operation record instead.
type OperationSummary struct {
	ID       string               `json:"id"`
	Name     string               `json:"name"`
	Domain   string               `json:"domain"`
	Safety   ontology.SafetyClass `json:"safety,omitempty"`
	Tags     []string             `json:"tags,omitempty"`
	Synonyms []string             `json:"synonyms,omitempty"`
}

// --- Handlers ---

func (t *RegistryTools) ListOperations(ctx context.Context, _ *mcp.CallToolRequest, input ListOperationsInput) (*mcp.CallToolResult, any, error) {
	log.Debug(log.CatMCP, "tool call", "tool", "list_operations", "domain", input.Domain)

	ops, err := t.list.Get(ctx, "list|"+input.Domain, input, cachemanager.DefaultExpiration)
	if err != nil {
		return toolError("Failed to list operations: %v", err), nil, nil
	}
	if ops == nil {
		ops = []OperationSummary{}
	}

	return toolJSON(ops)
}

func (t *RegistryTools) GetOperation(ctx context.Context, _ *mcp.CallToolRequest, input GetOperationInput) (*mcp.CallToolResult, any, error) {
	if input.ID == "" {
		return toolError("Operation id is required"), nil, nil
	}
	log.Debug(log.CatMCP, "tool call", "tool", "get_operation", "id", input.ID)

	op, ok := t.reg.Operation(input.ID)
	if !ok {
		return toolError("No operation registered under id %q", input.ID), nil, nil
	}

	return toolJSON(op)
}

func (t *RegistryTools) SearchOperations(ctx context.Context, _ *mcp.CallToolRequest, input SearchOperationsInput) (*mcp.CallToolResult, any, error) {
	if input.Safety != "" && !validSafetyClass(input.Safety) {
		return toolError("Unknown safety class %q: must be \"safe\", \"idempotent\", \"stateful\", \"external\", or \"destructive\"", input.Safety), nil, nil
	}
	log.Debug(log.CatMCP, "tool call", "tool", "search_operations",
		"query", input.Query, "tag", input.Tag, "domain", input.Domain, "safety", input.Safety)

	results, err := t.search.Get(ctx, searchKey(input), input, cachemanager.DefaultExpiration)
	if err != nil {
		return toolError("Search failed: %v", err), nil, nil
	}
	if results == nil {
		results = []OperationSummary{}
	}

	return toolJSON(results)
}

func (t *RegistryTools) RegistryStats(ctx context.Context, _ *mcp.CallToolRequest, _ struct{}) (*mcp.CallToolResult, any, error) {
	log.Debug(log.CatMCP, "tool call", "tool", "registry_stats")

	dto, err := t.stats.Get(ctx, "stats", struct{}{}, cachemanager.DefaultExpiration)
	if err != nil {
		return toolError("Failed to compute stats: %v", err), nil, nil
	}

	return toolJSON(dto)
}

func (t *RegistryTools) ValidateRegistry(ctx context.Context, _ *mcp.CallToolRequest, _ struct{}) (*mcp.CallToolResult, any, error) {
	log.Debug(log.CatMCP, "tool call", "tool", "validate_registry")

	dto, err := t.validate.Get(ctx, "validate", struct{}{}, cachemanager.DefaultExpiration)
	if err != nil {
		return toolError("Validation sweep failed: %v", err), nil, nil
	}

	return toolJSON(dto)
}

// --- Fetch functions behind the caches ---

func (t *RegistryTools) fetchList(_ context.Context, in ListOperationsInput) ([]OperationSummary, error) {
	ops := t.reg.Operations()
	if in.Domain != "" {
		ops = t.reg.OperationsByDomain(in.Domain)
	}
	return summarize(ops), nil
}

func (t *RegistryTools) fetchSearch(_ context.Context, in SearchOperationsInput) ([]OperationSummary, error) {
	query := strings.ToLower(in.Query)
	var out []OperationSummary
	for _, op := range t.reg.Operations() {
		if in.Domain != "" && op.Domain != in.Domain {
			continue
		}
		if in.Safety != "" && op.Safety != ontology.SafetyClass(in.Safety) {
			continue
		}
		if in.Tag != "" && !containsString(op.Tags, in.Tag) {
			continue
		}
		if query != "" && !matchesQuery(op, query) {
			continue
		}
		out = append(out, summarizeOp(op))
	}
	return out, nil
}

func (t *RegistryTools) fetchStats(_ context.Context, _ struct{}) (presentation.StatsDTO, error) {
	return presentation.FromStats(t.reg.Stats()), nil
}

func (t *RegistryTools) fetchValidate(_ context.Context, _ struct{}) (presentation.ValidationDTO, error) {
	return presentation.FromValidationErrors(t.reg.Validate()), nil
}

// --- Helpers ---

func searchKey(in SearchOperationsInput) string {
	return strings.Join([]string{"search", strings.ToLower(in.Query), in.Tag, in.Domain, in.Safety}, "|")
}

func validSafetyClass(s string) bool {
	switch ontology.SafetyClass(s) {
	case ontology.SafetySafe, ontology.SafetyIdempotent, ontology.SafetyStateful,
		ontology.SafetyExternal, ontology.SafetyDestructive:
		return true
	}
	return false
}

func matchesQuery(op ontology.Operation, query string) bool {
	if strings.Contains(strings.ToLower(op.ID), query) ||
		strings.Contains(strings.ToLower(op.Name), query) {
		return true
	}
	for _, syn := range op.Synonyms {
		if strings.Contains(strings.ToLower(syn), query) {
			return true
		}
	}
	return false
}

func containsString(haystack []string, needle string) bool {
	for _, s := range haystack {
		if s == needle {
			return true
		}
	}
	return false
}

func summarize(ops []ontology.Operation) []OperationSummary {
	out := make([]OperationSummary, len(ops))
	for i, op := range ops {
		out[i] = summarizeOp(op)
	}
	return out
}

func summarizeOp(op ontology.Operation) OperationSummary {
	return OperationSummary{
		ID:       op.ID,
		Name:     op.Name,
		Domain:   op.Domain,
		Safety:   op.Safety,
		Tags:     op.Tags,
		Synonyms: op.Synonyms,
	}
}

func toolError(format string, args ...any) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: fmt.Sprintf(format, args...)}},
		IsError: true,
	}
}

func toolJSON(v any) (*mcp.CallToolResult, any, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return toolError("Failed to marshal result: %v", err), nil, nil
	}
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: string(data)}},
	}, nil, nil
}
