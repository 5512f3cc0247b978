// Package progress_test tests terminal capability detection with environment variable overrides.
// Related: internal/progress/terminal.go
// Tags: progress, terminal, capabilities, env-vars, unicode, colors
package progress_test

import (
	"os"
	"testing"

	"github.com/schoolboyqueue/pipefetch/internal/progress"
)

// TestDetectTerminalCapabilities tests terminal capability detection
func TestDetectTerminalCapabilities(t *testing.T) {
	tests := map[string]struct {
		setupEnv   func()
		cleanupEnv func()
	}{
		"NO_COLOR disables color": {
			setupEnv: func() {
				os.Setenv("NO_COLOR", "1")
			},
			cleanupEnv: func() {
				os.Unsetenv("NO_COLOR")
			},
		},
		"PIPEFETCH_ASCII forces ASCII": {
			setupEnv: func() {
				os.Setenv("PIPEFETCH_ASCII", "1")
			},
			cleanupEnv: func() {
				os.Unsetenv("PIPEFETCH_ASCII")
			},
		},
		"both NO_COLOR and PIPEFETCH_ASCII": {
			setupEnv: func() {
				os.Setenv("NO_COLOR", "1")
				os.Setenv("PIPEFETCH_ASCII", "1")
			},
			cleanupEnv: func() {
				os.Unsetenv("NO_COLOR")
				os.Unsetenv("PIPEFETCH_ASCII")
			},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if tt.setupEnv != nil {
				tt.setupEnv()
				defer tt.cleanupEnv()
			}

			caps := progress.DetectTerminalCapabilities()

			// Verify width is non-negative
			if caps.Width < 0 {
				t.Errorf("DetectTerminalCapabilities() Width = %d, want >= 0", caps.Width)
			}

			// If NO_COLOR is set, color should be disabled
			if os.Getenv("NO_COLOR") != "" && caps.SupportsColor {
				t.Errorf("DetectTerminalCapabilities() SupportsColor = true with NO_COLOR set, want false")
			}

			// If PIPEFETCH_ASCII is set, Unicode should be disabled
			if os.Getenv("PIPEFETCH_ASCII") == "1" && caps.SupportsUnicode {
				t.Errorf("DetectTerminalCapabilities() SupportsUnicode = true with PIPEFETCH_ASCII=1, want false")
			}

			// If not TTY, color and Unicode should be disabled
			if !caps.IsTTY {
				if caps.SupportsColor {
					t.Errorf("DetectTerminalCapabilities() SupportsColor = true when !IsTTY, want false")
				}
				if caps.SupportsUnicode {
					t.Errorf("DetectTerminalCapabilities() SupportsUnicode = true when !IsTTY, want false")
				}
			}
		})
	}
}

// TestSelectSymbols tests symbol selection based on capabilities
func TestSelectSymbols(t *testing.T) {
	tests := map[string]struct {
		capabilities        progress.TerminalCapabilities
		wantCheckmark       string
		wantFailure         string
		wantSpinnerNonEmpty bool
	}{
		"Unicode support enabled": {
			capabilities: progress.TerminalCapabilities{
				IsTTY:           true,
				SupportsUnicode: true,
				SupportsColor:   true,
			},
			wantCheckmark:       "✓",
			wantFailure:         "✗",
			wantSpinnerNonEmpty: true,
		},
		"ASCII fallback mode": {
			capabilities: progress.TerminalCapabilities{
				IsTTY:           true,
				SupportsUnicode: false,
				SupportsColor:   false,
			},
			wantCheckmark:       "[OK]",
			wantFailure:         "[FAIL]",
			wantSpinnerNonEmpty: true,
		},
		"non-TTY mode": {
			capabilities: progress.TerminalCapabilities{
				IsTTY:           false,
				SupportsUnicode: false,
				SupportsColor:   false,
			},
			wantCheckmark:       "[OK]",
			wantFailure:         "[FAIL]",
			wantSpinnerNonEmpty: true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			symbols := progress.SelectSymbols(tt.capabilities)

			if symbols.Checkmark != tt.wantCheckmark {
				t.Errorf("SelectSymbols() Checkmark = %q, want %q", symbols.Checkmark, tt.wantCheckmark)
			}

			if symbols.Failure != tt.wantFailure {
				t.Errorf("SelectSymbols() Failure = %q, want %q", symbols.Failure, tt.wantFailure)
			}

			if tt.wantSpinnerNonEmpty && symbols.SpinnerSet < 0 {
				t.Errorf("SelectSymbols() SpinnerSet = %d, want >= 0", symbols.SpinnerSet)
			}
		})
	}
}
