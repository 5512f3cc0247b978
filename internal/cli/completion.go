package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/schoolboyqueue/pipefetch/internal/completion"
	clierrors "github.com/schoolboyqueue/pipefetch/internal/errors"
)

var completionCmd = &cobra.Command{
	Use:   "completion [bash|zsh|fish|powershell]",
	Short: "Generate or install shell completions",
	Long: `Generate the autocompletion script for pipefetch for the specified shell.

Run "pipefetch completion install" to set completions up automatically, or
generate a script and wire it in yourself, for example:

  source <(pipefetch completion bash)`,
	DisableFlagsInUseLine: true,
	ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
	Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		switch completion.Shell(args[0]) {
		case completion.Bash:
			return rootCmd.GenBashCompletionV2(out, true)
		case completion.Zsh:
			return rootCmd.GenZshCompletion(out)
		case completion.Fish:
			return rootCmd.GenFishCompletion(out, true)
		case completion.PowerShell:
			return rootCmd.GenPowerShellCompletionWithDesc(out)
		}
		return nil
	},
}

var completionInstallCmd = &cobra.Command{
	Use:   "install [bash|zsh|fish|powershell]",
	Short: "Install shell completions for pipefetch",
	Long: `Install shell completions for pipefetch.

The shell is auto-detected from the $SHELL environment variable when not
named explicitly:

  - Bash: appends a sourcing block to ~/.bashrc
  - Zsh: appends a sourcing block to ~/.zshrc
  - Fish: writes a completion file to ~/.config/fish/completions/
  - PowerShell: appends a sourcing block to $PROFILE

A timestamped backup is created before any rc file is modified. Use the
--manual flag to print installation instructions without touching any files.`,
	Example: `  # Auto-detect shell and install
  pipefetch completion install

  # Install for a specific shell
  pipefetch completion install zsh

  # Show manual installation instructions
  pipefetch completion install --manual`,
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: []string{"bash", "zsh", "fish", "powershell"},
	RunE:      runCompletionInstall,
}

func init() {
	completionInstallCmd.Flags().Bool("manual", false, "Show manual installation instructions without modifying files")

	completionCmd.AddCommand(completionInstallCmd)
	rootCmd.AddCommand(completionCmd)
}

func runCompletionInstall(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	manual, _ := cmd.Flags().GetBool("manual")

	var shell completion.Shell
	if len(args) > 0 {
		name := strings.ToLower(args[0])
		if !completion.IsValidShell(name) {
			cliErr := clierrors.NewArgumentError(
				fmt.Sprintf("unknown shell: %s", name),
				"Supported shells: bash, zsh, fish, powershell",
			)
			clierrors.PrintError(cliErr)
			return cliErr
		}
		shell = completion.Shell(name)
	} else {
		detected, err := completion.DetectShell()
		if err != nil {
			fmt.Fprintln(out, "Could not auto-detect shell:", err)
			fmt.Fprintln(out)
			fmt.Fprintln(out, "Please specify a shell explicitly:")
			fmt.Fprintln(out, "  pipefetch completion install bash")
			fmt.Fprintln(out, "  pipefetch completion install zsh")
			fmt.Fprintln(out, "  pipefetch completion install fish")
			fmt.Fprintln(out, "  pipefetch completion install powershell")
			fmt.Fprintln(out)
			fmt.Fprintln(out, "Or use --manual for installation instructions:")
			fmt.Fprintln(out, "  pipefetch completion install --manual")
			return nil
		}
		shell = detected
		fmt.Fprintf(out, "Detected shell: %s\n", shell)
	}

	if manual {
		fmt.Fprintln(out, completion.GetManualInstructions(shell))
		return nil
	}

	result, err := completion.Install(shell, func(w io.Writer) error {
		return rootCmd.GenFishCompletion(w, true)
	})
	if err != nil {
		// Without write access to the rc file the user can still finish
		// the setup by hand, so fall back to the manual instructions.
		if completion.IsPermissionError(err) {
			fmt.Fprintf(out, "Error: %v\n\n", err)
			fmt.Fprintln(out, "Automatic installation failed. Here are manual instructions:")
			fmt.Fprintln(out)
			fmt.Fprintln(out, completion.GetManualInstructions(shell))
			return nil
		}
		cliErr := clierrors.WrapWithMessage(err, clierrors.Runtime, "installing shell completions")
		clierrors.PrintError(cliErr)
		return cliErr
	}

	fmt.Fprintln(out, result.Message)
	return nil
}
