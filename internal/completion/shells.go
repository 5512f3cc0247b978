// Package completion installs shell completions for pipefetch into the
// user's shell configuration.
package completion

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

// Shell identifies a supported shell.
type Shell string

const (
	// Bash shell
	Bash Shell = "bash"
	// Zsh shell
	Zsh Shell = "zsh"
	// Fish shell
	Fish Shell = "fish"
	// PowerShell
	PowerShell Shell = "powershell"
)

// SupportedShells returns every shell the installer knows how to set up.
func SupportedShells() []Shell {
	return []Shell{Bash, Zsh, Fish, PowerShell}
}

// IsValidShell reports whether s names a supported shell, ignoring case.
func IsValidShell(s string) bool {
	switch Shell(strings.ToLower(s)) {
	case Bash, Zsh, Fish, PowerShell:
		return true
	default:
		return false
	}
}

// DetectShell infers the user's shell from $SHELL. On Windows an unset
// $SHELL means PowerShell; elsewhere it is an error asking the user to name
// one explicitly.
func DetectShell() (Shell, error) {
	shellEnv := os.Getenv("SHELL")
	if shellEnv == "" {
		if runtime.GOOS == "windows" {
			return PowerShell, nil
		}
		return "", fmt.Errorf("$SHELL environment variable is not set; please specify a shell: bash, zsh, fish, or powershell")
	}

	// $SHELL holds a path like /usr/bin/zsh; only the base name matters.
	switch strings.ToLower(filepath.Base(shellEnv)) {
	case "bash":
		return Bash, nil
	case "zsh":
		return Zsh, nil
	case "fish":
		return Fish, nil
	case "pwsh", "powershell":
		return PowerShell, nil
	default:
		return "", fmt.Errorf("unsupported shell: %s; supported shells are: bash, zsh, fish, powershell", filepath.Base(shellEnv))
	}
}

// ShellConfig describes where a shell keeps the files the installer touches.
type ShellConfig struct {
	// Shell is the shell this configuration applies to.
	Shell Shell
	// RCPath is the startup file that receives the sourcing block. Empty
	// for fish.
	RCPath string
	// CompletionDir is where standalone completion files live. Fish only.
	CompletionDir string
	// RequiresRCModification is false for shells that pick up completion
	// files from a directory instead of sourcing them at startup.
	RequiresRCModification bool
}

// GetShellConfig resolves the install locations for shell under homeDir.
func GetShellConfig(shell Shell, homeDir string) ShellConfig {
	switch shell {
	case Bash:
		return ShellConfig{
			Shell:                  Bash,
			RCPath:                 filepath.Join(homeDir, ".bashrc"),
			RequiresRCModification: true,
		}
	case Zsh:
		return ShellConfig{
			Shell:                  Zsh,
			RCPath:                 filepath.Join(homeDir, ".zshrc"),
			RequiresRCModification: true,
		}
	case Fish:
		return ShellConfig{
			Shell:         Fish,
			CompletionDir: filepath.Join(homeDir, ".config", "fish", "completions"),
		}
	case PowerShell:
		return ShellConfig{
			Shell:                  PowerShell,
			RCPath:                 powerShellProfilePath(homeDir),
			RequiresRCModification: true,
		}
	default:
		return ShellConfig{}
	}
}

func powerShellProfilePath(homeDir string) string {
	if runtime.GOOS == "windows" {
		return filepath.Join(homeDir, "Documents", "WindowsPowerShell", "Microsoft.PowerShell_profile.ps1")
	}
	return filepath.Join(homeDir, ".config", "powershell", "Microsoft.PowerShell_profile.ps1")
}

// Markers bounding the block the installer writes into rc files. Existing
// installs are recognized by the start marker, so these strings must stay
// stable across releases.
const (
	StartMarker = "# >>> pipefetch completion >>>"
	EndMarker   = "# <<< pipefetch completion <<<"
)

// SourceSnippet returns the shell commands that load pipefetch completions
// at startup. Fish has no snippet; it loads standalone files from its
// completions directory.
func SourceSnippet(shell Shell) string {
	switch shell {
	case Bash:
		return "source <(pipefetch completion bash)"
	case Zsh:
		return "autoload -U compinit && compinit\nsource <(pipefetch completion zsh)"
	case PowerShell:
		return "pipefetch completion powershell | Out-String | Invoke-Expression"
	default:
		return ""
	}
}

// FormatBlock wraps the shell's sourcing snippet in the install markers,
// ready to append to an rc file. Shells without a snippet get "".
func FormatBlock(shell Shell) string {
	snippet := SourceSnippet(shell)
	if snippet == "" {
		return ""
	}
	return fmt.Sprintf("\n%s\n%s\n%s\n", StartMarker, snippet, EndMarker)
}
