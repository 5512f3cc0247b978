package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	clierrors "github.com/schoolboyqueue/pipefetch/internal/errors"
	"github.com/schoolboyqueue/pipefetch/internal/health"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check download tools and configuration",
	Long: `Run health checks for everything a transfer depends on.

This command checks:
  - wget (version probe)
  - curl (version probe)
  - the config file, if one exists

Each check shows ✓ when it passed or ✗ with what went wrong. One usable
download tool is enough for transfers to work.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		configPath, _ := cmd.Flags().GetString("config")

		report := health.RunHealthChecks(configPath)
		fmt.Fprint(cmd.OutOrStdout(), health.FormatReport(report))

		if !report.Passed {
			if !anyToolUsable(report) {
				clierrors.PrintError(clierrors.NoBackendAvailable())
				return NewExitError(ExitMissingDependency)
			}
			// Tools are fine, so the config check is what failed.
			return NewExitError(ExitConfigInvalid)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}

// anyToolUsable reports whether at least one download tool check passed.
// The config check is deliberately excluded; a broken config file fails
// the report even on a host with both tools installed.
func anyToolUsable(report *health.HealthReport) bool {
	for _, check := range report.Checks {
		if check.Name != "config" && check.Passed {
			return true
		}
	}
	return false
}
