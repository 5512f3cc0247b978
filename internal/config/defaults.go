package config

// GetDefaults returns the default configuration values.
// An empty user_agent means the fetch layer advertises its own build string.
func GetDefaults() map[string]interface{} {
	return map[string]interface{}{
		"backend":       "auto",
		"auth":          "",
		"user_agent":    "",
		"verbosity":     0,
		"timeout":       0,
		"show_progress": true,
	}
}

// GetDefaultConfigTemplate returns a commented YAML template written by
// `pipefetch config init`. Every key is present with its default so users
// can uncomment and edit rather than consult the docs.
func GetDefaultConfigTemplate() string {
	return `# pipefetch configuration
# Values here are overridden by environment variables (PIPEFETCH_*).

# Download tool settings
# backend: which helper fetches URLs. One of: auto, wget, curl.
# "auto" probes the system and prefers wget when both are installed.
backend: auto

# auth: credential passed to the helper as user:password.
# wget receives it split at the first colon; curl receives it verbatim.
# Leave empty for anonymous requests.
#auth: ""

# user_agent: User-Agent header sent with every request.
# Empty means the pipefetch build string.
#user_agent: ""

# Transfer settings
# verbosity: diagnostic chatter on stderr, 0 (quiet) to 3 (trace).
verbosity: 0

# timeout: seconds before an in-flight transfer is cut off.
# 0 disables the watchdog and lets transfers run until EOF.
timeout: 0

# show_progress: spinner while fetching to a file on a terminal.
show_progress: true
`
}
