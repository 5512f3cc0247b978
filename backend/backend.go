// Package backend defines the external download tools pipefetch delegates
// network transfers to. It covers the fixed tool catalog, availability
// probing with a process-wide cache, selection between tools, and per-tool
// construction of injection-safe argument vectors.
package backend

import (
	"fmt"
	"os/exec"
	"strings"
	"sync/atomic"
)

// Backend represents one external download tool and its argument grammar.
// All methods must be safe for concurrent use.
type Backend interface {
	// Name returns the unique identifier for the tool ("wget", "curl").
	// Selection modes are matched against this spelling, case-sensitively.
	Name() string

	// Command returns the program name, resolved through PATH at launch time.
	Command() string

	// Version runs the tool with its version flag and returns the first line
	// of its output, or an error if the tool cannot be run.
	Version() (string, error)

	// Available reports whether the tool can be launched on this host.
	// The first call probes the tool; later calls are served from a
	// process-wide cache.
	Available() bool

	// BuildArgs constructs the argument vector for one transfer request in
	// this tool's grammar, excluding the program name. Pure; the result is
	// freshly allocated and sized from the actual inputs on every call.
	BuildArgs(req Request) []string
}

// Request carries everything a tool needs to compose one transfer invocation.
type Request struct {
	// URL is passed through opaquely as the final argument. It is never
	// validated or rewritten here; the tool owns scheme handling.
	URL string

	// Headers holds complete header lines ("Name: value"), forwarded to the
	// tool in order. Duplicates are allowed and preserved.
	Headers []string

	// Auth is an optional "user:password" credential. Each tool applies its
	// own convention for splitting it or passing it whole.
	Auth string

	// UserAgent is the product/version token presented to the server.
	UserAgent string

	// Verbose swaps the tool's quiet flags for its verbose flag.
	Verbose bool
}

var (
	wget = &wgetTool{base{name: "wget", command: "wget", versionFlag: "--version"}}
	curl = &curlTool{base{name: "curl", command: "curl", versionFlag: "--version"}}
)

// Wget and Curl are the two supported tools, as process-wide singletons so
// their availability caches are shared by every caller.
var (
	Wget Backend = wget
	Curl Backend = curl
)

// Catalog returns the supported tools in fixed preference order: wget first,
// curl as the fallback. The set is closed; there is no registration.
func Catalog() []Backend {
	return []Backend{Wget, Curl}
}

// Lookup returns the tool whose name matches exactly, or false for any
// other string.
func Lookup(name string) (Backend, bool) {
	for _, b := range Catalog() {
		if b.Name() == name {
			return b, true
		}
	}
	return nil, false
}

// base carries the identity and availability cache shared by both tools.
type base struct {
	name        string
	command     string
	versionFlag string
	avail       atomic.Int32
}

// Name returns the tool's unique identifier.
func (b *base) Name() string {
	return b.name
}

// Command returns the program name executed for transfers and probes.
func (b *base) Command() string {
	return b.command
}

// Version executes the tool with its version flag and returns the first
// line of the version banner.
func (b *base) Version() (string, error) {
	out, err := exec.Command(b.command, b.versionFlag).Output()
	if err != nil {
		return "", fmt.Errorf("getting version for %s: %w", b.name, err)
	}
	version := strings.TrimSpace(string(out))
	if line, _, found := strings.Cut(version, "\n"); found {
		version = line
	}
	return version, nil
}

// splitCredential divides a "user:password" string at the first separator.
// ok is false when cred is empty or carries no separator; wget then omits
// its credential flags entirely, while curl passes the raw string whole.
func splitCredential(cred string) (user, password string, ok bool) {
	return strings.Cut(cred, ":")
}
