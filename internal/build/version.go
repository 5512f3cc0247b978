// Package build provides version and build information for pipefetch.
// This package intentionally has no dependencies on other internal packages
// to avoid import cycles.
package build

// Name is the product name reported to remote servers via the user-agent.
const Name = "pipefetch"

var (
	// Version information - set via ldflags during build
	Version   = "dev"
	Commit    = "unknown"
	BuildDate = "unknown"
)

// IsDevBuild returns true if running a development build (not a release).
func IsDevBuild() bool {
	return Version == "dev"
}

// UserAgent returns the product/version token download helpers present to
// remote servers, e.g. "pipefetch/dev" or "pipefetch/1.2.0".
func UserAgent() string {
	return Name + "/" + Version
}
