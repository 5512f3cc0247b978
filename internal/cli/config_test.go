// Package cli_test tests the config command group: init, validate, show.
// Related: internal/cli/config.go
// Tags: cli, config, init, validate, yaml
package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigInit_CreatesLocalConfig(t *testing.T) {
	tmpDir := isolateEnv(t)

	out, err := runRoot(t, "config", "init")
	require.NoError(t, err)
	assert.Contains(t, out, "created at")

	data, err := os.ReadFile(filepath.Join(tmpDir, ".pipefetch", "config.yml"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "backend: auto")
	assert.Contains(t, string(data), "show_progress: true")
}

func TestConfigInit_GlobalConfig(t *testing.T) {
	tmpDir := isolateEnv(t)

	out, err := runRoot(t, "config", "init", "--global")
	require.NoError(t, err)
	assert.Contains(t, out, "created at")

	_, err = os.Stat(filepath.Join(tmpDir, ".pipefetch", "config.yml"))
	require.NoError(t, err, "--global writes under the home directory")
}

func TestConfigInit_ExistingFileKept(t *testing.T) {
	tmpDir := isolateEnv(t)

	cfgPath := filepath.Join(tmpDir, ".pipefetch", "config.yml")
	require.NoError(t, os.MkdirAll(filepath.Dir(cfgPath), 0o755))
	require.NoError(t, os.WriteFile(cfgPath, []byte("backend: curl\n"), 0o644))

	out, err := runRoot(t, "config", "init")
	require.NoError(t, err)
	assert.Contains(t, out, "exists at")

	data, err := os.ReadFile(cfgPath)
	require.NoError(t, err)
	assert.Equal(t, "backend: curl\n", string(data), "without --force the file is untouched")
}

func TestConfigInit_ForceOverwrites(t *testing.T) {
	tmpDir := isolateEnv(t)

	cfgPath := filepath.Join(tmpDir, ".pipefetch", "config.yml")
	require.NoError(t, os.MkdirAll(filepath.Dir(cfgPath), 0o755))
	require.NoError(t, os.WriteFile(cfgPath, []byte("backend: curl\n"), 0o644))

	out, err := runRoot(t, "config", "init", "--force")
	require.NoError(t, err)
	assert.Contains(t, out, "created at")

	data, err := os.ReadFile(cfgPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "backend: auto")
}

func TestConfigInit_TemplateIsLoadable(t *testing.T) {
	isolateEnv(t)

	_, err := runRoot(t, "config", "init")
	require.NoError(t, err)

	// The generated file must round-trip through validate.
	out, err := runRoot(t, "config", "validate")
	require.NoError(t, err)
	assert.Contains(t, out, "is valid")
}

func TestConfigValidate_NoFileUsesDefaults(t *testing.T) {
	isolateEnv(t)

	out, err := runRoot(t, "config", "validate")
	require.NoError(t, err, "a missing default config is not an error")
	assert.Contains(t, out, "defaults apply")
}

func TestConfigValidate_ExplicitMissingFile(t *testing.T) {
	isolateEnv(t)

	_, err := runRoot(t, "config", "validate", "nope/config.yml")
	require.Error(t, err)
	assert.Equal(t, ExitConfigInvalid, ExitCode(err))
}

func TestConfigValidate_ValidFile(t *testing.T) {
	tmpDir := isolateEnv(t)

	cfgPath := filepath.Join(tmpDir, "pf.yml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("backend: wget\nverbosity: 2\n"), 0o644))

	out, err := runRoot(t, "config", "validate", cfgPath)
	require.NoError(t, err)
	assert.Contains(t, out, "is valid")
}

func TestConfigValidate_SyntaxError(t *testing.T) {
	tmpDir := isolateEnv(t)

	cfgPath := filepath.Join(tmpDir, "pf.yml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("backend: [broken\n"), 0o644))

	_, err := runRoot(t, "config", "validate", cfgPath)
	require.Error(t, err)
	assert.Equal(t, ExitConfigInvalid, ExitCode(err))
}

func TestConfigValidate_BadValue(t *testing.T) {
	tmpDir := isolateEnv(t)

	cfgPath := filepath.Join(tmpDir, "pf.yml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("backend: aria2\n"), 0o644))

	_, err := runRoot(t, "config", "validate", cfgPath)
	require.Error(t, err)
	assert.Equal(t, ExitConfigInvalid, ExitCode(err))
}

func TestConfigShow_Defaults(t *testing.T) {
	isolateEnv(t)

	out, err := runRoot(t, "config", "show")
	require.NoError(t, err)

	assert.Contains(t, out, "backend: auto")
	assert.Contains(t, out, "show_progress: true")
	assert.Contains(t, out, "verbosity: 0")
	assert.Contains(t, out, "timeout: 0")
}

func TestConfigShow_MergesSources(t *testing.T) {
	tmpDir := isolateEnv(t)

	cfgPath := filepath.Join(tmpDir, ".pipefetch", "config.yml")
	require.NoError(t, os.MkdirAll(filepath.Dir(cfgPath), 0o755))
	require.NoError(t, os.WriteFile(cfgPath, []byte("backend: curl\n"), 0o644))
	t.Setenv("PIPEFETCH_VERBOSITY", "3")

	out, err := runRoot(t, "config", "show")
	require.NoError(t, err)

	assert.Contains(t, out, "backend: curl")
	assert.Contains(t, out, "verbosity: 3")
}

func TestConfigShow_HidesCredential(t *testing.T) {
	isolateEnv(t)
	t.Setenv("PIPEFETCH_AUTH", "alice:secret")

	out, err := runRoot(t, "config", "show")
	require.NoError(t, err)

	assert.NotContains(t, out, "secret")
	assert.True(t, strings.Contains(out, "(set, hidden)"),
		"show must acknowledge the credential without printing it")
}
