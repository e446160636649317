package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/petersancho/semreg/internal/presentation"
)

var validateJSON bool

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the registry for dangling references",
	Long: `Seed and migrate the full catalog, then sweep every relation endpoint,
schema type and unit, operation dependency, and goal/solver link for
references to entities that were never registered.

Exits 1 when the error count exceeds coverage.thresholds.max_errors.

Examples:
  semreg validate
  semreg validate --json | jq '.issues[].ref'`,
	RunE: runValidate,
}

func init() {
	validateCmd.Flags().BoolVar(&validateJSON, "json", false,
		"emit the validation report as JSON")
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	cleanup, err := setupLogging()
	if err != nil {
		return err
	}
	defer cleanup()

	reg, err := buildRegistry()
	if err != nil {
		return err
	}

	problems := reg.Validate()
	dto := presentation.FromValidationErrors(problems)
	formatter := presentation.NewFormatter(os.Stdout)
	if validateJSON {
		err = formatter.FormatJSON(dto)
	} else {
		err = formatter.FormatValidation(dto)
	}
	if err != nil {
		return err
	}

	if len(problems) > cfg.Coverage.Thresholds.MaxErrors {
		return fmt.Errorf("%d validation errors exceed maximum %d",
			len(problems), cfg.Coverage.Thresholds.MaxErrors)
	}
	return nil
}
