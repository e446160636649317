package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/petersancho/semreg/internal/catalog"
	"github.com/petersancho/semreg/internal/config"
	"github.com/petersancho/semreg/internal/coverage"
	"github.com/petersancho/semreg/internal/ontology"
	"github.com/petersancho/semreg/internal/presentation"
	"github.com/petersancho/semreg/internal/seed"
)

var (
	coverageJSON    bool
	coverageRatchet bool
)

var coverageCmd = &cobra.Command{
	Use:   "coverage",
	Short: "Measure catalog documentation coverage and gate on it",
	Long: `Score the migrated catalog on seven dimensions (operations, schemas,
examples, safety, agent metadata, ontology integrity, purity) and check
the result against the configured thresholds. Exits 1 when a gate fails,
so CI can run this directly.

Examples:
  semreg coverage
  semreg coverage --json | jq .overall

  # Raise the configured thresholds to today's scores. Minimums only
  # move up and the error budget only tightens.
  semreg coverage --ratchet`,
	RunE: runCoverage,
}

func init() {
	coverageCmd.Flags().BoolVar(&coverageJSON, "json", false,
		"emit metrics as JSON")
	coverageCmd.Flags().BoolVar(&coverageRatchet, "ratchet", false,
		"raise configured thresholds to the current scores and save them")
	rootCmd.AddCommand(coverageCmd)
}

func runCoverage(cmd *cobra.Command, args []string) error {
	cleanup, err := setupLogging()
	if err != nil {
		return err
	}
	defer cleanup()

	// The analyzer does its own catalog bootstrap, so start from a
	// seed-only registry instead of buildRegistry.
	reg := ontology.New()
	if err := seed.Load(reg); err != nil {
		return fmt.Errorf("loading vocabulary: %w", err)
	}
	analyzer := coverage.NewAnalyzer(reg, catalog.Modules())
	metrics := analyzer.Analyze()

	if coverageJSON {
		formatter := presentation.NewFormatter(os.Stdout)
		if err := formatter.FormatJSON(metrics); err != nil {
			return err
		}
	} else {
		fmt.Print(coverage.FormatReport(metrics))
	}

	thresholds := cfg.Coverage.GateThresholds()
	if coverageRatchet {
		raised := coverage.RatchetThresholds(thresholds, metrics)
		if raised == thresholds {
			fmt.Fprintln(os.Stderr, "thresholds already at current levels")
		} else {
			path := configFilePath()
			saved := config.ThresholdsConfig{
				MinOverall:   raised.MinOverall,
				MinSafety:    raised.MinSafety,
				MinIntegrity: raised.MinIntegrity,
				MaxErrors:    raised.MaxErrors,
			}
			if err := config.SaveThresholds(path, saved); err != nil {
				return fmt.Errorf("saving thresholds: %w", err)
			}
			fmt.Fprintf(os.Stderr, "thresholds ratcheted, saved to %s\n", path)
		}
		thresholds = raised
	}

	result := coverage.CheckGates(metrics, thresholds)
	if !result.Passed {
		for _, reason := range result.Reasons {
			fmt.Fprintf(os.Stderr, "gate failed: %s\n", reason)
		}
		return fmt.Errorf("%d coverage gates failed", len(result.Reasons))
	}
	return nil
}
