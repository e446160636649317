package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/petersancho/semreg/internal/log"
)

var exportOutputDir string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the registry as agent-ready artifacts",
	Long: `Seed the registry from the embedded vocabulary, migrate every legacy
catalog module, and write the export artifacts:

  ontology.json             full registry document
  graph.dot                 Graphviz relation graph
  agent-capabilities.json   agent-facing operation catalog

Dangling references are reported as a warning but do not block the
export; run 'semreg validate' to gate on them.

Examples:
  # Export into the configured output directory (default: dist)
  semreg export

  # Export somewhere else
  semreg export --output-dir build/registry

  # Inspect the agent catalog
  semreg export && jq '.capabilities[].opId' dist/agent-capabilities.json`,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&exportOutputDir, "output-dir", "o", "",
		"directory for artifacts (overrides config)")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	cleanup, err := setupLogging()
	if err != nil {
		return err
	}
	defer cleanup()

	reg, err := buildRegistry()
	if err != nil {
		return err
	}

	if problems := reg.Validate(); len(problems) > 0 {
		fmt.Fprintf(os.Stderr, "warning: %d dangling references (run 'semreg validate' for details)\n",
			len(problems))
	}

	outDir := exportOutputDir
	if outDir == "" {
		outDir = cfg.OutputDir
	}
	if err := os.MkdirAll(outDir, 0o750); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	document, err := json.MarshalIndent(reg, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding ontology document: %w", err)
	}
	capabilities, err := json.MarshalIndent(reg.AgentCatalog(), "", "  ")
	if err != nil {
		return fmt.Errorf("encoding agent catalog: %w", err)
	}

	artifacts := []struct {
		name string
		data []byte
	}{
		{"ontology.json", document},
		{"graph.dot", []byte(reg.DOT())},
		{"agent-capabilities.json", capabilities},
	}
	for _, artifact := range artifacts {
		path := filepath.Join(outDir, artifact.name)
		if err := os.WriteFile(path, artifact.data, 0o600); err != nil {
			return fmt.Errorf("writing %s: %w", artifact.name, err)
		}
		log.Info(log.CatCLI, "artifact written", "path", path, "bytes", len(artifact.data))
		fmt.Printf("wrote %s\n", path)
	}
	return nil
}
