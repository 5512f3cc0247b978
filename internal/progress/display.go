package progress

import (
	"fmt"
	"os"
	"time"

	"github.com/briandowns/spinner"
)

// suffixRefreshInterval throttles spinner suffix rewrites during a transfer.
const suffixRefreshInterval = 200 * time.Millisecond

// TransferDisplay shows one transfer's progress. All output goes to stderr;
// stdout is reserved for the response body. Methods are meant to be called
// from a single goroutine, the one driving the copy loop.
type TransferDisplay struct {
	capabilities TerminalCapabilities
	symbols      ProgressSymbols
	spinner      *spinner.Spinner
	info         *TransferInfo
	received     int64
	lastRefresh  time.Time
}

// NewTransferDisplay creates a new transfer display with the given terminal capabilities
func NewTransferDisplay(caps TerminalCapabilities) *TransferDisplay {
	return &TransferDisplay{
		capabilities: caps,
		symbols:      SelectSymbols(caps),
	}
}

// Start begins displaying progress for a transfer
func (d *TransferDisplay) Start(info TransferInfo) error {
	if err := info.Validate(); err != nil {
		return err
	}

	d.info = &info
	d.received = 0

	msg := buildTransferMessage(info)

	if d.capabilities.IsTTY {
		// TTY mode: Start spinner animation
		d.spinner = spinner.New(
			spinner.CharSets[d.symbols.SpinnerSet],
			100*time.Millisecond,
		)
		d.spinner.Writer = os.Stderr
		d.spinner.Suffix = " " + msg
		d.spinner.Start()
	} else {
		// Non-interactive mode: Just print the message
		fmt.Fprintln(os.Stderr, msg)
	}

	return nil
}

// AddBytes records n more received bytes and refreshes the spinner suffix
// with the running total, at most once per refresh interval.
func (d *TransferDisplay) AddBytes(n int64) {
	d.received += n

	if d.spinner == nil || d.info == nil {
		return
	}
	if time.Since(d.lastRefresh) < suffixRefreshInterval {
		return
	}
	d.lastRefresh = time.Now()
	d.spinner.Suffix = fmt.Sprintf(" %s (%s)", buildTransferMessage(*d.info), formatBytes(d.received))
}

// Received returns the byte count accumulated so far.
func (d *TransferDisplay) Received() int64 {
	return d.received
}

// Complete stops the spinner and displays completion status
func (d *TransferDisplay) Complete() error {
	d.StopSpinner()

	if d.info == nil {
		return nil
	}

	mark := checkmark(d.symbols, d.capabilities.SupportsColor)
	fmt.Fprintf(os.Stderr, "%s fetched %s (%s)\n", mark, d.info.URL, formatBytes(d.received))

	d.info = nil
	return nil
}

// Fail stops the spinner and displays failure status
func (d *TransferDisplay) Fail(err error) error {
	d.StopSpinner()

	if d.info == nil {
		return nil
	}

	mark := failureMark(d.symbols, d.capabilities.SupportsColor)
	fmt.Fprintf(os.Stderr, "%s fetching %s failed: %v\n", mark, d.info.URL, err)

	d.info = nil
	return nil
}

// StopSpinner stops the spinner without showing completion/failure.
// Useful before printing an error that replaces the progress line.
func (d *TransferDisplay) StopSpinner() {
	if d.spinner != nil {
		d.spinner.Stop()
		d.spinner = nil
	}
}
