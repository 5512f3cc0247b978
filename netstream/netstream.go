// Package netstream opens remote resources as raw byte streams by piping the
// standard output of an external download tool back to the caller. No network
// or TLS code runs in-process: wget or curl performs the transfer in a child
// process, and the returned Stream owns exactly that child plus the read end
// of one pipe. The stream carries response headers and body interleaved as
// the tool emitted them; parsing them apart is the caller's job.
package netstream

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
	"sync"

	"github.com/schoolboyqueue/pipefetch/backend"
	"github.com/schoolboyqueue/pipefetch/internal/build"
)

// Verbosity thresholds for Options.Verbosity.
const (
	// verbosityLifecycle notes process starts and finishes.
	verbosityLifecycle = 2
	// verbosityTrace additionally dumps the helper command line, leaves the
	// helper's stderr attached, and asks the helper for verbose output.
	verbosityTrace = 3
)

// Options carries the ambient configuration for one Open call. The zero
// value selects automatic tool choice, the build's own user-agent, no
// credential, and silent diagnostics.
type Options struct {
	// Backend selects the download tool: "auto" (or empty), "wget", "curl".
	Backend string

	// Auth is an optional "user:password" credential forwarded to the tool.
	// It is never parsed beyond each tool's own splitting convention.
	Auth string

	// UserAgent overrides the product/version token presented to servers.
	// Empty selects the build default.
	UserAgent string

	// Verbosity gates diagnostic notes: 0 silent, 1 caller-level notes,
	// 2 process lifecycle, 3 command-line trace plus helper stderr
	// passthrough.
	Verbosity int

	// Diag receives diagnostic notes. Nil means os.Stderr.
	Diag io.Writer
}

// Stream is one live transfer: a child process writing into a pipe whose
// read end the Stream owns. It implements io.ReadCloser. Close is the only
// release path; extra Close calls are safe, so a watchdog goroutine may
// abort the transfer while the owner still holds the usual deferred Close.
// The descriptor, once assigned, is never reassigned, and a Stream is not
// readable after Close.
type Stream struct {
	r         *os.File
	cmd       *exec.Cmd
	tool      string
	verbosity int
	diag      io.Writer

	closeOnce sync.Once
	closeErr  error
}

// Open resolves a download tool, launches it for url, and returns the
// stream of its standard output.
//
// Resolution failures (an unrecognized Backend mode), pipe creation
// failures, and launch failures are returned as errors with nothing left
// running and no descriptor leaked. A helper that starts and then cannot
// perform the transfer is NOT an Open error: it surfaces as an empty or
// short stream, indistinguishable from a genuinely empty resource. Callers
// needing the distinction must inspect the stream contents themselves.
//
// The child inherits the parent environment unchanged, so proxy settings
// reach the tool without being interpreted here. There is no intrinsic
// timeout; a caller wanting a deadline runs its own watchdog that calls
// Close, which aborts the transfer outright.
func Open(url string, headers []string, opts Options) (*Stream, error) {
	tool, err := backend.Resolve(opts.Backend)
	if err != nil {
		return nil, err
	}

	r, w, err := os.Pipe()
	if err != nil {
		return nil, fmt.Errorf("creating transfer pipe: %w", err)
	}

	agent := opts.UserAgent
	if agent == "" {
		agent = build.UserAgent()
	}
	verbose := opts.Verbosity >= verbosityTrace
	args := tool.BuildArgs(backend.Request{
		URL:       url,
		Headers:   headers,
		Auth:      opts.Auth,
		UserAgent: agent,
		Verbose:   verbose,
	})

	cmd := exec.Command(tool.Command(), args...)
	cmd.Stdout = w
	// Stdin and Stderr stay nil, attaching both to the null device; at high
	// verbosity the helper keeps the parent's stderr for troubleshooting.
	if verbose {
		cmd.Stderr = os.Stderr
		diagf(opts.Diag, "executing: %s %s", tool.Command(), strings.Join(args, " "))
	}

	if err := cmd.Start(); err != nil {
		r.Close()
		w.Close()
		return nil, fmt.Errorf("launching %s helper: %w", tool.Name(), err)
	}
	// The child holds its own copy of the write end now; ours must go so
	// end-of-stream can reach the read side when the child exits.
	w.Close()

	s := &Stream{
		r:         r,
		cmd:       cmd,
		tool:      tool.Name(),
		verbosity: opts.Verbosity,
		diag:      opts.Diag,
	}
	s.notef(verbosityLifecycle, "started %s helper (pid %d)", s.tool, cmd.Process.Pid)
	return s, nil
}

// Read pulls bytes from the helper's output pipe, blocking until data
// arrives or the stream ends. Bytes arrive in exactly the order the helper
// wrote them. End of stream is io.EOF, whether the helper finished, failed,
// or never produced output. A nil Stream or one without a descriptor also
// reports io.EOF; an empty buffer reads zero bytes without blocking. The
// runtime retries interrupted reads, so signals to the calling process do
// not surface here.
func (s *Stream) Read(p []byte) (int, error) {
	if s == nil || s.r == nil {
		return 0, io.EOF
	}
	if len(p) == 0 {
		return 0, nil
	}
	return s.r.Read(p)
}

// Close tears the transfer down. The helper is killed outright when still
// present (transfers are not resumable, so no graceful-shutdown grace
// period exists), then reaped; a reap failure is logged, never escalated.
// The pipe descriptor is released last. Close on a nil Stream is a no-op,
// and repeat calls return the first result without touching the process
// again.
func (s *Stream) Close() error {
	if s == nil {
		return nil
	}
	s.closeOnce.Do(func() {
		if s.cmd != nil && s.cmd.Process != nil {
			_ = s.cmd.Process.Kill()
			if err := s.cmd.Wait(); err != nil {
				// An ExitError just records the kill or the helper's own exit
				// status; the child was reaped either way. Anything else means
				// the reap itself failed.
				var exitErr *exec.ExitError
				if !errors.As(err, &exitErr) {
					s.notef(0, "reaping %s helper (pid %d): %v", s.tool, s.Pid(), err)
				}
			}
			s.notef(verbosityLifecycle, "%s helper finished", s.tool)
		}
		if s.r != nil {
			s.closeErr = s.r.Close()
		}
	})
	return s.closeErr
}

// Pid returns the helper's process id, or 0 when the Stream owns no
// process. Diagnostic use only.
func (s *Stream) Pid() int {
	if s == nil || s.cmd == nil || s.cmd.Process == nil {
		return 0
	}
	return s.cmd.Process.Pid
}

// Tool returns the name of the download tool serving this stream.
func (s *Stream) Tool() string {
	if s == nil {
		return ""
	}
	return s.tool
}

// notef emits one diagnostic line when the stream's verbosity reaches
// level. Level 0 notes always print; they carry failures that must not be
// swallowed silently.
func (s *Stream) notef(level int, format string, args ...any) {
	if s.verbosity < level {
		return
	}
	diagf(s.diag, format, args...)
}

func diagf(w io.Writer, format string, args ...any) {
	if w == nil {
		w = os.Stderr
	}
	fmt.Fprintf(w, "netstream: "+format+"\n", args...)
}
