package cli

import (
	"fmt"

	clierrors "github.com/schoolboyqueue/pipefetch/internal/errors"
)

// Exit codes for CLI commands
const (
	ExitSuccess           = 0
	ExitTransferFailed    = 1
	ExitConfigInvalid     = 2
	ExitInvalidArguments  = 3
	ExitMissingDependency = 4
	ExitTimeout           = 5
)

// exitError is a custom error type that carries an exit code.
type exitError struct {
	code int
}

func (e *exitError) Error() string {
	return fmt.Sprintf("exit code %d", e.code)
}

// NewExitError creates a new exit error with the given code.
func NewExitError(code int) error {
	return &exitError{code: code}
}

// ExitCode returns the exit code for an error. Explicit exit errors carry
// their own code; classified CLI errors map by category; anything else is
// a failed transfer.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	if e, ok := err.(*exitError); ok {
		return e.code
	}
	if cliErr := clierrors.AsCLIError(err); cliErr != nil {
		switch cliErr.Category {
		case clierrors.Argument:
			return ExitInvalidArguments
		case clierrors.Configuration:
			return ExitConfigInvalid
		case clierrors.Prerequisite:
			return ExitMissingDependency
		}
	}
	return ExitTransferFailed
}
