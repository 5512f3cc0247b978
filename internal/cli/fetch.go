package cli

import (
	"io"
	"os"
	"sync/atomic"
	"time"

	"github.com/spf13/cobra"

	"github.com/schoolboyqueue/pipefetch/backend"
	"github.com/schoolboyqueue/pipefetch/internal/config"
	clierrors "github.com/schoolboyqueue/pipefetch/internal/errors"
	"github.com/schoolboyqueue/pipefetch/internal/progress"
	"github.com/schoolboyqueue/pipefetch/netstream"
)

var fetchCmd = &cobra.Command{
	Use:   "fetch <url>",
	Short: "Fetch a resource and stream it to stdout or a file",
	Long: `Fetch a resource by launching a download tool and relaying its output.

The body goes to stdout (or the --output file) exactly as the tool produced
it; everything pipefetch itself says goes to stderr. A resource that does
not exist and a helper that fails look the same from here: an empty result.
There are no retries, and no time limit unless --timeout is set.

Backend selection:
  auto   prefer wget, fall back to curl (default)
  wget   always use wget
  curl   always use curl`,
	Example: `  # Stream to stdout
  pipefetch fetch https://example.com/feed.xml

  # Save to a file
  pipefetch fetch -o feed.xml https://example.com/feed.xml

  # Shoutcast stream with metadata, abort after an hour
  pipefetch fetch -H "Icy-MetaData: 1" --timeout 3600 http://radio.example.com/live

  # Force curl with credentials
  pipefetch fetch --backend curl --user name:secret https://example.com/private`,
	RunE: runFetch,
}

func init() {
	rootCmd.AddCommand(fetchCmd)

	fetchCmd.Flags().StringP("output", "o", "-", "Write the body to a file instead of stdout")
	fetchCmd.Flags().StringArrayP("header", "H", nil, "Extra request header, may repeat")
	fetchCmd.Flags().String("user", "", "Credential as user:password")
	fetchCmd.Flags().String("backend", "", "Download tool: auto, wget, or curl")
	fetchCmd.Flags().Int("timeout", 0, "Abort the transfer after this many seconds (0 = no limit)")
	fetchCmd.Flags().String("user-agent", "", "Override the User-Agent presented to the server")
	fetchCmd.Flags().Bool("no-progress", false, "Disable the progress display")
}

func runFetch(cmd *cobra.Command, args []string) error {
	if len(args) < 1 {
		cliErr := clierrors.MissingURL()
		clierrors.PrintError(cliErr)
		return cliErr
	}
	url := args[0]

	// Get flags
	output, _ := cmd.Flags().GetString("output")
	headers, _ := cmd.Flags().GetStringArray("header")
	user, _ := cmd.Flags().GetString("user")
	backendMode, _ := cmd.Flags().GetString("backend")
	timeout, _ := cmd.Flags().GetInt("timeout")
	userAgent, _ := cmd.Flags().GetString("user-agent")
	noProgress, _ := cmd.Flags().GetBool("no-progress")
	configPath, _ := cmd.Flags().GetString("config")
	verbosity, _ := cmd.Flags().GetCount("verbose")

	// Load configuration
	cfg, err := config.Load(configPath)
	if err != nil {
		cliErr := clierrors.ConfigParseError(configPath, err)
		clierrors.PrintError(cliErr)
		return cliErr
	}

	// Override settings from flags
	if cmd.Flags().Changed("backend") {
		cfg.Backend = backendMode
	}
	if cmd.Flags().Changed("user") {
		cfg.Auth = user
	}
	if cmd.Flags().Changed("user-agent") {
		cfg.UserAgent = userAgent
	}
	if cmd.Flags().Changed("timeout") {
		cfg.Timeout = timeout
	}
	if verbosity > 0 {
		cfg.Verbosity = verbosity
	}
	if noProgress {
		cfg.ShowProgress = false
	}

	// Resolve the selection mode up front so a bad mode is reported as a
	// configuration mistake, not a failed launch. Availability is not
	// checked here: a missing tool fails at launch, and an unreachable
	// resource fails inside the tool, and neither is this command's call
	// to second-guess.
	tool, err := backend.Resolve(cfg.Backend)
	if err != nil {
		cliErr := clierrors.UnknownBackendMode(cfg.Backend)
		clierrors.PrintError(cliErr)
		return cliErr
	}

	return runTransfer(cmd, url, headers, tool.Name(), output, cfg)
}

// runTransfer carries one resolved transfer: launch the helper, relay its
// output, and report how it ended.
func runTransfer(cmd *cobra.Command, url string, headers []string, toolName, output string, cfg *config.Configuration) error {
	// The destination is settled before anything is launched so a bad
	// output path costs nothing.
	var dst io.Writer = cmd.OutOrStdout()
	if output != "-" {
		f, err := os.Create(output)
		if err != nil {
			cliErr := clierrors.OutputFileError(output, err)
			clierrors.PrintError(cliErr)
			return cliErr
		}
		defer f.Close()
		dst = f
	}

	stream, err := netstream.Open(url, headers, netstream.Options{
		Backend:   toolName,
		Auth:      cfg.Auth,
		UserAgent: cfg.UserAgent,
		Verbosity: cfg.Verbosity,
	})
	if err != nil {
		cliErr := clierrors.HelperLaunchFailed(toolName, err)
		clierrors.PrintError(cliErr)
		return cliErr
	}
	defer stream.Close()

	// The display stays dormant unless started; when the body goes to
	// stdout the progress line would fight the payload's own consumers
	// for attention, so it is only shown for file output.
	display := progress.NewTransferDisplay(progress.DetectTerminalCapabilities())
	if cfg.ShowProgress && output != "-" {
		if err := display.Start(progress.TransferInfo{URL: url, Tool: toolName, OutputPath: output}); err != nil {
			return err
		}
	}

	// Watchdog. Close is safe to call from another goroutine and makes the
	// copy loop's pending read return, so this is the whole mechanism.
	var timedOut atomic.Bool
	limit := time.Duration(cfg.Timeout) * time.Second
	if cfg.Timeout > 0 {
		timer := time.AfterFunc(limit, func() {
			timedOut.Store(true)
			stream.Close()
		})
		defer timer.Stop()
	}

	buf := make([]byte, 32*1024)
	var readErr error
	for {
		n, err := stream.Read(buf)
		if n > 0 {
			if _, werr := dst.Write(buf[:n]); werr != nil {
				display.StopSpinner()
				cliErr := clierrors.OutputFileError(output, werr)
				clierrors.PrintError(cliErr)
				return cliErr
			}
			display.AddBytes(int64(n))
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			readErr = err
			break
		}
	}

	// A killed helper can surface as EOF or as a closed-pipe error
	// depending on who loses the race, so the watchdog flag outranks
	// whatever the loop saw.
	if timedOut.Load() {
		cliErr := clierrors.TransferTimeout(limit, toolName)
		display.Fail(cliErr)
		clierrors.PrintError(cliErr)
		return NewExitError(ExitTimeout)
	}
	if readErr != nil {
		cliErr := clierrors.WrapWithMessage(readErr, clierrors.Runtime, "reading transfer stream")
		display.Fail(cliErr)
		clierrors.PrintError(cliErr)
		return cliErr
	}

	display.Complete()
	return nil
}
