package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/petersancho/semreg/internal/presentation"
)

var statsJSON bool

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show registry entity and relation counts",
	Long: `Show how many entities of each kind the migrated registry holds,
broken down by operation domain and safety class.

Examples:
  semreg stats
  semreg stats --json | jq '.domains'`,
	RunE: runStats,
}

func init() {
	statsCmd.Flags().BoolVar(&statsJSON, "json", false, "emit stats as JSON")
	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, args []string) error {
	cleanup, err := setupLogging()
	if err != nil {
		return err
	}
	defer cleanup()

	reg, err := buildRegistry()
	if err != nil {
		return err
	}

	dto := presentation.FromStats(reg.Stats())
	formatter := presentation.NewFormatter(os.Stdout)
	if statsJSON {
		return formatter.FormatJSON(dto)
	}
	return formatter.FormatStats(dto)
}
