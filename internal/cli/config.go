package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/schoolboyqueue/pipefetch/internal/config"
	clierrors "github.com/schoolboyqueue/pipefetch/internal/errors"
)

// Color helpers for config command output
var (
	cGreen = color.New(color.FgGreen).SprintFunc()
	cRed   = color.New(color.FgRed).SprintFunc()
	cBold  = color.New(color.Bold).SprintFunc()
	cDim   = color.New(color.Faint).SprintFunc()
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage pipefetch configuration",
	Long: `Manage pipefetch configuration files.

Configuration precedence (highest to lowest):
  1. Command-line flags
  2. Environment variables (PIPEFETCH_*)
  3. .env in the working directory
  4. Local config (.pipefetch/config.yml)
  5. Global config (~/.pipefetch/config.yml)
  6. Built-in defaults`,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a config file with documented defaults",
	Long: `Create a config file populated with the built-in defaults and a
comment for every key.

By default the file is written to .pipefetch/config.yml in the current
directory. Use --global for ~/.pipefetch/config.yml, which applies to
every directory.

An existing file is left unchanged unless --force is given.`,
	Example: `  # Project-level config
  pipefetch config init

  # User-level config
  pipefetch config init --global

  # Overwrite an existing config with defaults
  pipefetch config init --force`,
	RunE: runConfigInit,
}

var configValidateCmd = &cobra.Command{
	Use:   "validate [path]",
	Short: "Validate a config file",
	Long: `Check a config file for syntax errors and invalid values.

Syntax errors are reported with their line and column. Without an explicit
path the local config is checked, and its absence is not an error since
running on defaults alone is normal.`,
	Example: `  # Validate the local config
  pipefetch config validate

  # Validate a specific file
  pipefetch config validate deploy/pipefetch.yml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runConfigValidate,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the effective configuration",
	Long: `Show the configuration a fetch would run with, after merging the
global config, the local config, .env, and PIPEFETCH_* variables.`,
	RunE: runConfigShow,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configValidateCmd)
	configCmd.AddCommand(configShowCmd)

	configInitCmd.Flags().BoolP("global", "g", false, "Write ~/.pipefetch/config.yml instead of the local config")
	configInitCmd.Flags().BoolP("force", "f", false, "Overwrite an existing config with defaults")
}

func runConfigInit(cmd *cobra.Command, _ []string) error {
	global, _ := cmd.Flags().GetBool("global")
	force, _ := cmd.Flags().GetBool("force")
	out := cmd.OutOrStdout()

	configPath := config.DefaultLocalPath
	if global {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		configPath = filepath.Join(homeDir, ".pipefetch", "config.yml")
	}

	if _, err := os.Stat(configPath); err == nil && !force {
		fmt.Fprintf(out, "%s %s: exists at %s (use --force to overwrite)\n", cGreen("✓"), cBold("Config"), cDim(configPath))
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	if err := os.WriteFile(configPath, []byte(config.GetDefaultConfigTemplate()), 0644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	fmt.Fprintf(out, "%s %s: created at %s\n", cGreen("✓"), cBold("Config"), cDim(configPath))
	return nil
}

func runConfigValidate(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	// An explicitly named file must exist; the default path may be absent
	// because running on defaults alone is normal.
	var path string
	explicit := len(args) == 1
	if explicit {
		path = args[0]
	} else {
		path, _ = cmd.Flags().GetString("config")
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		if explicit {
			cliErr := clierrors.ConfigFileNotFound(path)
			clierrors.PrintError(cliErr)
			return cliErr
		}
		fmt.Fprintf(out, "No config file at %s; defaults apply\n", path)
		return nil
	}

	if err := config.ValidateFile(path); err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "%s %v\n", cRed("✗"), err)
		return NewExitError(ExitConfigInvalid)
	}

	fmt.Fprintf(out, "%s %s is valid\n", cGreen("✓"), path)
	return nil
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	configPath, _ := cmd.Flags().GetString("config")

	cfg, err := config.Load(configPath)
	if err != nil {
		cliErr := clierrors.ConfigParseError(configPath, err)
		clierrors.PrintError(cliErr)
		return cliErr
	}

	// The credential itself never leaves the config file.
	auth := ""
	if cfg.Auth != "" {
		auth = "(set, hidden)"
	}

	rendered, err := yaml.Marshal(map[string]any{
		"backend":       cfg.Backend,
		"auth":          auth,
		"user_agent":    cfg.UserAgent,
		"verbosity":     cfg.Verbosity,
		"timeout":       cfg.Timeout,
		"show_progress": cfg.ShowProgress,
	})
	if err != nil {
		return fmt.Errorf("rendering config: %w", err)
	}

	fmt.Fprint(cmd.OutOrStdout(), string(rendered))
	return nil
}
