package completion

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// InstallAction describes what the installer did.
type InstallAction string

const (
	// ActionInstalled means a new completion block or file was written.
	ActionInstalled InstallAction = "installed"
	// ActionUpdated means an existing completion file was overwritten.
	ActionUpdated InstallAction = "updated"
	// ActionSkipped means an existing installation was left untouched.
	ActionSkipped InstallAction = "skipped"
)

// InstallResult reports the outcome of an installation.
type InstallResult struct {
	// Success indicates whether installation succeeded.
	Success bool
	// BackupPath is the backup created before modification, if any.
	BackupPath string
	// ConfigPath is the file the installer wrote or would have written.
	ConfigPath string
	// Action is what the installer did.
	Action InstallAction
	// Message is a human-readable summary for the user.
	Message string
	// Shell is the shell that was installed.
	Shell Shell
}

// ScriptFunc renders a completion script to w. The caller supplies one so
// this package does not have to re-exec the binary to produce the script.
type ScriptFunc func(w io.Writer) error

// PermissionError marks a failure the user can work around with manual
// installation instead of elevated privileges.
type PermissionError struct {
	Path      string
	Operation string
	Err       error
}

func (e *PermissionError) Error() string {
	return fmt.Sprintf("permission denied: cannot %s %s: %v", e.Operation, e.Path, e.Err)
}

func (e *PermissionError) Unwrap() error {
	return e.Err
}

// IsPermissionError reports whether err is or wraps a PermissionError.
func IsPermissionError(err error) bool {
	var pe *PermissionError
	return errors.As(err, &pe)
}

// wrapFS classifies a filesystem error, surfacing permission problems as
// PermissionError and wrapping everything else with msg.
func wrapFS(err error, op, path, msg string) error {
	if os.IsPermission(err) {
		return &PermissionError{Path: path, Operation: op, Err: err}
	}
	return fmt.Errorf("%s: %w", msg, err)
}

// CreateBackup copies filePath to a timestamped sibling named
// <file>.pipefetch-backup-YYYYMMDD-HHMMSS and returns the backup path.
// A missing original needs no backup and returns "".
func CreateBackup(filePath string) (string, error) {
	if _, err := os.Stat(filePath); os.IsNotExist(err) {
		return "", nil
	}

	content, err := os.ReadFile(filePath)
	if err != nil {
		return "", wrapFS(err, "read", filePath, "failed to read file for backup")
	}

	backupPath := fmt.Sprintf("%s.pipefetch-backup-%s", filePath, time.Now().Format("20060102-150405"))
	if err := os.WriteFile(backupPath, content, 0644); err != nil {
		return "", wrapFS(err, "write", backupPath, "failed to write backup file")
	}

	return backupPath, nil
}

// HasExistingInstallation reports whether filePath already contains the
// completion block, identified by the start marker.
func HasExistingInstallation(filePath string) (bool, error) {
	if _, err := os.Stat(filePath); os.IsNotExist(err) {
		return false, nil
	}

	file, err := os.Open(filePath)
	if err != nil {
		return false, wrapFS(err, "read", filePath, "failed to open file")
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		if strings.Contains(scanner.Text(), StartMarker) {
			return true, nil
		}
	}
	if err := scanner.Err(); err != nil {
		return false, fmt.Errorf("failed to read file: %w", err)
	}

	return false, nil
}

// Install sets up completions for shell. Bash, zsh, and powershell get a
// marked sourcing block appended to their rc file, with a backup taken
// first. Fish gets a standalone completion file rendered by script into its
// completions directory; script is not called for the other shells.
func Install(shell Shell, script ScriptFunc) (*InstallResult, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("failed to get home directory: %w", err)
	}

	config := GetShellConfig(shell, homeDir)
	if shell == Fish {
		return installFish(config, script)
	}
	return installRCFile(shell, config)
}

// installFish writes the rendered completion script to
// <completions dir>/pipefetch.fish. Fish picks it up on the next session
// without any rc file change.
func installFish(config ShellConfig, script ScriptFunc) (*InstallResult, error) {
	if script == nil {
		return nil, errors.New("fish installation requires a completion script generator")
	}

	if err := os.MkdirAll(config.CompletionDir, 0755); err != nil {
		return nil, wrapFS(err, "create directory", config.CompletionDir, "failed to create fish completions directory")
	}

	var buf strings.Builder
	if err := script(&buf); err != nil {
		return nil, fmt.Errorf("failed to generate fish completion script: %w", err)
	}

	completionPath := filepath.Join(config.CompletionDir, "pipefetch.fish")
	action := ActionInstalled
	if _, err := os.Stat(completionPath); err == nil {
		action = ActionUpdated
	}

	if err := os.WriteFile(completionPath, []byte(buf.String()), 0644); err != nil {
		return nil, wrapFS(err, "write", completionPath, "failed to write fish completion file")
	}

	msg := fmt.Sprintf("Fish completions %s at %s", action, completionPath)
	if action == ActionInstalled {
		msg += "\nCompletions will be available in new shell sessions."
	}

	return &InstallResult{
		Success:    true,
		ConfigPath: completionPath,
		Action:     action,
		Message:    msg,
		Shell:      Fish,
	}, nil
}

// installRCFile appends the marked sourcing block to the shell's rc file,
// skipping the write when the block is already present.
func installRCFile(shell Shell, config ShellConfig) (*InstallResult, error) {
	rcPath := config.RCPath

	exists, err := HasExistingInstallation(rcPath)
	if err != nil {
		return nil, err
	}
	if exists {
		return &InstallResult{
			Success:    true,
			ConfigPath: rcPath,
			Action:     ActionSkipped,
			Message:    fmt.Sprintf("Completions already installed in %s\nTo reinstall, remove the existing block between the markers first.", rcPath),
			Shell:      shell,
		}, nil
	}

	backupPath, err := CreateBackup(rcPath)
	if err != nil {
		return nil, err
	}

	// The PowerShell profile directory often does not exist yet.
	if err := os.MkdirAll(filepath.Dir(rcPath), 0755); err != nil {
		return nil, wrapFS(err, "create directory", filepath.Dir(rcPath), "failed to create config directory")
	}

	file, err := os.OpenFile(rcPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, wrapFS(err, "write", rcPath, "failed to open rc file")
	}
	defer file.Close()

	if _, err := file.WriteString(FormatBlock(shell)); err != nil {
		return nil, wrapFS(err, "write", rcPath, "failed to write completion block")
	}

	msg := fmt.Sprintf("Completions installed in %s", rcPath)
	if backupPath != "" {
		msg += fmt.Sprintf("\nBackup created at %s", backupPath)
	}
	msg += fmt.Sprintf("\n\nTo activate completions, run:\n  source %s\nOr start a new shell session.", rcPath)

	return &InstallResult{
		Success:    true,
		BackupPath: backupPath,
		ConfigPath: rcPath,
		Action:     ActionInstalled,
		Message:    msg,
		Shell:      shell,
	}, nil
}

// GetManualInstructions returns step-by-step instructions for installing
// completions by hand, for users who prefer not to have their rc files
// modified.
func GetManualInstructions(shell Shell) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "Manual installation instructions for %s:\n\n", shell)

	switch shell {
	case Bash, Zsh:
		rc := "~/.bashrc"
		if shell == Zsh {
			rc = "~/.zshrc"
		}
		fmt.Fprintf(&sb, "Add the following to your %s:\n\n", rc)
		sb.WriteString("  " + StartMarker + "\n")
		for _, line := range strings.Split(SourceSnippet(shell), "\n") {
			sb.WriteString("  " + line + "\n")
		}
		sb.WriteString("  " + EndMarker + "\n")
		fmt.Fprintf(&sb, "\nThen run: source %s\n", rc)

	case Fish:
		sb.WriteString("Run the following command:\n\n")
		sb.WriteString("  pipefetch completion fish > ~/.config/fish/completions/pipefetch.fish\n")
		sb.WriteString("\nCompletions will be available in new shell sessions.\n")

	case PowerShell:
		sb.WriteString("Add the following to your PowerShell profile ($PROFILE):\n\n")
		sb.WriteString("  " + StartMarker + "\n")
		sb.WriteString("  " + SourceSnippet(PowerShell) + "\n")
		sb.WriteString("  " + EndMarker + "\n")
		sb.WriteString("\nTo find your profile location, run: echo $PROFILE\n")
		sb.WriteString("Then reload your profile or start a new PowerShell session.\n")
	}

	return sb.String()
}

// GetAllManualInstructions writes manual instructions for every supported
// shell to out.
func GetAllManualInstructions(out io.Writer) {
	for _, shell := range SupportedShells() {
		fmt.Fprintln(out, GetManualInstructions(shell))
		fmt.Fprintln(out, strings.Repeat("-", 50))
		fmt.Fprintln(out)
	}
}
