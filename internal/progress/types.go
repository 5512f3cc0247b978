// Package progress provides transfer progress display for the terminal.
// It defines capability detection, symbol selection, and a spinner-backed
// display that writes to stderr so the response body on stdout stays clean.
package progress

import apperrors "github.com/schoolboyqueue/pipefetch/internal/errors"

// TransferInfo represents metadata about one transfer for progress display
type TransferInfo struct {
	// URL is the resource being fetched, shown verbatim
	URL string
	// Tool is the download helper carrying the transfer ("wget", "curl")
	Tool string
	// OutputPath is the destination file, or "-" / empty for stdout
	OutputPath string
}

// Validate checks that all TransferInfo fields meet validation requirements
func (i TransferInfo) Validate() error {
	if i.URL == "" {
		return apperrors.NewArgumentError("transfer URL cannot be empty")
	}
	if i.Tool == "" {
		return apperrors.NewArgumentError("transfer tool cannot be empty")
	}
	return nil
}

// TerminalCapabilities encapsulates detected terminal features
type TerminalCapabilities struct {
	// IsTTY indicates whether stderr is a terminal (vs pipe/redirect)
	IsTTY bool
	// SupportsColor indicates whether terminal supports ANSI color codes
	SupportsColor bool
	// SupportsUnicode indicates whether terminal supports Unicode characters
	SupportsUnicode bool
	// Width is the terminal width in columns (0 if unknown/pipe)
	Width int
}

// ProgressSymbols defines the character set for visual indicators
type ProgressSymbols struct {
	// Checkmark is the success indicator ("✓" or "[OK]")
	Checkmark string
	// Failure is the failure indicator ("✗" or "[FAIL]")
	Failure string
	// SpinnerSet is the index into spinner.CharSets
	SpinnerSet int
}
