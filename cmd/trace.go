package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/petersancho/semreg/internal/analysis"
	"github.com/petersancho/semreg/internal/catalog"
	"github.com/petersancho/semreg/internal/legacy"
	"github.com/petersancho/semreg/internal/log"
	"github.com/petersancho/semreg/internal/ontology"
	"github.com/petersancho/semreg/internal/presentation"
	"github.com/petersancho/semreg/internal/provenance"
	"github.com/petersancho/semreg/internal/tracing"
)

var traceSessionFile string

var traceCmd = &cobra.Command{
	Use:   "trace",
	Short: "Analyze and export provenance sessions",
	Long: `Work with captured provenance sessions. Both subcommands read the
session given via --session, or capture a short built-in demo session
against the live string and vector catalogs when no file is given.`,
}

var traceAnalyzeJSON bool

var traceAnalyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Summarize a provenance session",
	Long: `Report per-operation call counts, average durations, and error rates,
plus the most frequent call sequences in the session.

Examples:
  semreg trace analyze
  semreg trace analyze --session dist/session.json --json | jq '.ops'`,
	RunE: runTraceAnalyze,
}

var (
	traceExportFormat string
	traceExportOutput string
)

var traceExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export a provenance session as JSONL or DOT",
	Long: `Render the session for external tooling: one JSON object per trace
entry (jsonl), or a Graphviz dependency graph with failed entries drawn
in red (dot).

Examples:
  semreg trace export > session.jsonl
  semreg trace export --format dot --output session.dot`,
	RunE: runTraceExport,
}

func init() {
	traceCmd.PersistentFlags().StringVarP(&traceSessionFile, "session", "s", "",
		"session trace file to load (default: run the built-in demo)")
	traceAnalyzeCmd.Flags().BoolVar(&traceAnalyzeJSON, "json", false,
		"emit the report as JSON")
	traceExportCmd.Flags().StringVarP(&traceExportFormat, "format", "f", "jsonl",
		"export format: jsonl or dot")
	traceExportCmd.Flags().StringVarP(&traceExportOutput, "output", "o", "",
		"output file (default: stdout)")
	traceCmd.AddCommand(traceAnalyzeCmd)
	traceCmd.AddCommand(traceExportCmd)
	rootCmd.AddCommand(traceCmd)
}

func runTraceAnalyze(cmd *cobra.Command, args []string) error {
	cleanup, err := setupLogging()
	if err != nil {
		return err
	}
	defer cleanup()

	session, err := loadSession()
	if err != nil {
		return err
	}

	report := analysis.AnalyzeSession(session)
	if traceAnalyzeJSON {
		return presentation.NewFormatter(os.Stdout).FormatJSON(report)
	}

	fmt.Printf("Session %s\n", report.SessionID)
	fmt.Printf("Entries: %d    Errors: %d\n", report.Entries, report.Errors)
	if len(report.Ops) > 0 {
		fmt.Println("\nBy operation:")
		for _, op := range report.Ops {
			fmt.Printf("  %-16s %4d calls  avg %-12s errors %.0f%%\n",
				op.OpID, op.Calls, op.AvgDuration.Round(time.Microsecond), op.ErrorRate*100)
		}
	}
	if len(report.Sequences) > 0 {
		fmt.Println("\nFrequent sequences:")
		for _, seq := range report.Sequences {
			fmt.Printf("  %dx %s\n", seq.Count, strings.Join(seq.Ops, ", "))
		}
	}
	return nil
}

func runTraceExport(cmd *cobra.Command, args []string) error {
	cleanup, err := setupLogging()
	if err != nil {
		return err
	}
	defer cleanup()

	session, err := loadSession()
	if err != nil {
		return err
	}

	var out string
	switch traceExportFormat {
	case "jsonl":
		out, err = analysis.ToJSONLines(session)
		if err != nil {
			return fmt.Errorf("encoding session: %w", err)
		}
	case "dot":
		out = analysis.ToDependencyDOT(session)
	default:
		return fmt.Errorf("unknown format %q (use jsonl or dot)", traceExportFormat)
	}

	if traceExportOutput == "" {
		fmt.Print(out)
		return nil
	}
	if err := os.WriteFile(traceExportOutput, []byte(out), 0o600); err != nil {
		return fmt.Errorf("writing %s: %w", traceExportOutput, err)
	}
	fmt.Printf("wrote %s\n", traceExportOutput)
	return nil
}

// loadSession reads an exported session file, or captures the demo
// session when no file is given.
func loadSession() (provenance.SessionTrace, error) {
	if traceSessionFile != "" {
		data, err := os.ReadFile(traceSessionFile)
		if err != nil {
			return provenance.SessionTrace{}, fmt.Errorf("reading session file: %w", err)
		}
		var session provenance.SessionTrace
		if err := json.Unmarshal(data, &session); err != nil {
			return provenance.SessionTrace{}, fmt.Errorf("parsing session file: %w", err)
		}
		return session, nil
	}

	store, shutdown, err := newTraceStore()
	if err != nil {
		return provenance.SessionTrace{}, err
	}
	defer shutdown()
	return demoSession(store)
}

// newTraceStore builds a provenance store honoring the provenance and
// tracing config sections. The returned shutdown flushes pending spans.
func newTraceStore() (*provenance.Store, func(), error) {
	var opts []provenance.Option
	if cfg.Provenance.MaxEntries > 0 {
		opts = append(opts, provenance.WithMaxEntries(cfg.Provenance.MaxEntries))
	}

	provider, err := tracing.NewProvider(cfg.Tracing.ProviderConfig())
	if err != nil {
		return nil, nil, fmt.Errorf("initializing tracing: %w", err)
	}
	if provider.Enabled() {
		opts = append(opts, provenance.WithTracer(provider.Tracer()))
	}

	shutdown := func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := provider.Shutdown(ctx); err != nil {
			log.ErrorErr(log.CatTrace, "tracing shutdown failed", err)
		}
	}
	return provenance.NewStore(opts...), shutdown, nil
}

// demoSession captures a short scripted session against the linked
// catalog implementations so analyze and export have something real to
// work on without an imported trace file. The script repeats one
// three-step pattern, ends with a deliberately bad call, and links a
// summary entry to its first and last steps.
func demoSession(store *provenance.Store) (provenance.SessionTrace, error) {
	ops := callableOps()

	store.StartSession(map[string]any{"source": "demo"})
	script := []struct {
		opID string
		args []any
	}{
		{"vector.length", []any{[]float64{3, 4, 0}}},
		{"string.concat", []any{"semantic ", "registry"}},
		{"string.upper", []any{"semantic registry"}},
		{"vector.length", []any{[]float64{1, 2, 2}}},
		{"string.concat", []any{"agent ", "catalog"}},
		{"string.upper", []any{"agent catalog"}},
		{"string.trim", []any{"  agent catalog  "}},
		{"string.upper", []any{123}}, // wrong argument type, recorded as a failure
	}
	for _, step := range script {
		fn, ok := ops[step.opID]
		if !ok {
			return provenance.SessionTrace{}, fmt.Errorf("demo operation %s: %w", step.opID, ontology.ErrNotFound)
		}
		_, _ = store.WithTrace(step.opID, fn.Call)(step.args...)
	}

	if current, ok := store.Current(); ok && len(current.Entries) >= 2 {
		first := current.Entries[0].ID
		last := current.Entries[len(current.Entries)-1].ID
		store.RecordTrace("workflow.run",
			map[string]any{"steps": len(current.Entries)},
			map[string]any{"status": "done"},
			provenance.WithParents(first, last),
			provenance.WithNonDeterministic(),
		)
	}

	session, ok := store.EndSession()
	if !ok {
		return provenance.SessionTrace{}, fmt.Errorf("demo session was never started")
	}
	return session, nil
}

// callableOps indexes every linked catalog callable by operation id.
// Records without an implementation and unlinked callables stay out.
func callableOps() map[string]*legacy.OpFunc {
	ops := make(map[string]*legacy.OpFunc)
	for _, mod := range catalog.Modules() {
		for _, raw := range mod.Items {
			if it := legacy.Classify(raw); it.Kind == legacy.ItemAnnotatedOp && it.Op.Fn != nil {
				ops[it.Op.Operation().ID] = it.Op
			}
		}
	}
	return ops
}
