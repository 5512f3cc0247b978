// pipefetch - Stream remote resources through external download tools
// Source: https://github.com/schoolboyqueue/pipefetch

// Package cli provides the Cobra-based command surface for pipefetch.
// It defines the fetch command that carries transfers, configuration
// management (config init, validate, show), and utility commands
// (doctor, version).
package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/schoolboyqueue/pipefetch/internal/config"
	clierrors "github.com/schoolboyqueue/pipefetch/internal/errors"
)

var rootCmd = &cobra.Command{
	Use:   "pipefetch",
	Short: "Stream remote resources through external download tools",
	Long: `pipefetch streams HTTP and HTTPS resources to standard output.

Instead of speaking HTTP itself, pipefetch launches a proven download tool
(wget or curl) and relays its output, so redirects, TLS, and proxy handling
behave exactly as they do for the tool you already trust.

Source: https://github.com/schoolboyqueue/pipefetch`,
	Example: `  # Stream a resource to stdout
  pipefetch fetch https://example.com/feed.xml

  # Save to a file, forcing curl
  pipefetch fetch --backend curl -o feed.xml https://example.com/feed.xml

  # Pass extra headers and credentials
  pipefetch fetch -H "Icy-MetaData: 1" --user name:secret http://radio.example.com/live

  # Verify that a usable download tool is installed
  pipefetch doctor`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if noColor, _ := cmd.Flags().GetBool("no-color"); noColor {
			color.NoColor = true
		}
	},
}

// Execute runs the root command. Commands report their own failures through
// PrintError before returning, so cobra's reporting is silenced; errors that
// never reached a command (flag parsing, argument validation) are printed
// here instead.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil && !clierrors.IsCLIError(err) {
		var exitErr *exitError
		if !errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
	}
	return err
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringP("config", "c", config.DefaultLocalPath, "Path to config file")
	rootCmd.PersistentFlags().CountP("verbose", "v", "Increase diagnostic output (-v, -vv, -vvv)")
	rootCmd.PersistentFlags().Bool("no-color", false, "Disable colored output")
}
