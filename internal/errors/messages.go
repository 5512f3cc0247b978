package errors

import (
	"fmt"
	"time"
)

// Canned errors for pipefetch's known failure modes. Commands use these so
// remediation wording stays in one place.

const fetchUsage = "pipefetch fetch <url> [flags]"

// MissingURL reports a fetch invocation without a URL argument.
func MissingURL() *CLIError {
	return NewArgumentErrorWithUsage(
		"missing required <url> argument",
		fetchUsage,
		"pass the resource to fetch, e.g. pipefetch fetch http://example.com/stream",
	)
}

// UnknownBackendMode reports a selection mode that names no supported tool.
func UnknownBackendMode(mode string) *CLIError {
	return NewConfigError(
		fmt.Sprintf("unknown backend %q", mode),
		"valid modes are auto, wget, and curl",
		"fix the --backend flag, the PIPEFETCH_BACKEND variable, or the backend key in your config file",
	)
}

// NoBackendAvailable reports a host where neither download tool is usable.
func NoBackendAvailable() *CLIError {
	return NewPrerequisiteError(
		"no download tool available: neither wget nor curl answered a version probe",
		"install wget or curl and make sure it is on PATH",
		"run 'pipefetch doctor' to see what each tool reported",
	)
}

// HelperLaunchFailed reports that the chosen tool could not be started.
func HelperLaunchFailed(tool string, err error) *CLIError {
	e := WrapWithMessage(err, Runtime, fmt.Sprintf("could not launch %s", tool))
	e.Remediation = []string{
		fmt.Sprintf("check that %s is installed and on PATH", tool),
		"run 'pipefetch doctor' to check both tools",
	}
	return e
}

// ConfigFileNotFound reports an explicitly requested config file that does
// not exist.
func ConfigFileNotFound(path string) *CLIError {
	return NewConfigError(
		fmt.Sprintf("config file not found: %s", path),
		"create the file, or drop the --config flag to use the default locations",
	)
}

// ConfigParseError reports an unreadable or syntactically invalid config file.
func ConfigParseError(path string, err error) *CLIError {
	e := WrapWithMessage(err, Configuration, fmt.Sprintf("could not parse config file %s", path))
	e.Remediation = []string{
		"check the file for syntax errors",
		fmt.Sprintf("run 'pipefetch config validate %s' for the exact position", path),
	}
	return e
}

// OutputFileError reports a destination file that could not be created or
// written.
func OutputFileError(path string, err error) *CLIError {
	return WrapWithMessage(err, Runtime, fmt.Sprintf("cannot write output file %s", path))
}

// TransferTimeout reports a transfer aborted by the --timeout watchdog.
func TransferTimeout(limit time.Duration, tool string) *CLIError {
	return NewRuntimeError(
		fmt.Sprintf("transfer exceeded %s and was aborted (%s killed)", limit, tool),
		"raise --timeout, or drop it for an unbounded transfer",
	)
}
