// Package cli_test tests the doctor command's report and exit behavior.
// Related: internal/cli/doctor.go
// Tags: cli, doctor, health, exit-codes
package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDoctor_AllToolsPresent(t *testing.T) {
	isolateEnv(t)
	stubTools(t, map[string]string{
		"wget": `echo "GNU Wget 1.21.4 built on linux-gnu."` + "\nexit 0",
		"curl": `echo "curl 8.5.0 (x86_64-pc-linux-gnu)"` + "\nexit 0",
	})

	out, err := runRoot(t, "doctor")
	require.NoError(t, err)

	assert.Contains(t, out, "✓ wget: GNU Wget 1.21.4")
	assert.Contains(t, out, "✓ curl: curl 8.5.0")
	assert.Contains(t, out, "✓ config:")
}

func TestDoctor_OneToolIsEnough(t *testing.T) {
	isolateEnv(t)
	stubTools(t, map[string]string{
		"curl": "exit 0",
	})

	out, err := runRoot(t, "doctor")
	require.NoError(t, err, "one usable tool must pass the report")

	assert.Contains(t, out, "✗ wget")
	assert.Contains(t, out, "✓ curl")
}

func TestDoctor_NoTools(t *testing.T) {
	isolateEnv(t)
	stubTools(t, map[string]string{})

	out, err := runRoot(t, "doctor")
	require.Error(t, err)
	assert.Equal(t, ExitMissingDependency, ExitCode(err))
	assert.Contains(t, out, "✗ wget")
	assert.Contains(t, out, "✗ curl")
}

func TestDoctor_BrokenConfig(t *testing.T) {
	tmpDir := isolateEnv(t)
	stubTools(t, map[string]string{
		"wget": "exit 0",
		"curl": "exit 0",
	})

	cfgPath := filepath.Join(tmpDir, ".pipefetch", "config.yml")
	require.NoError(t, os.MkdirAll(filepath.Dir(cfgPath), 0o755))
	require.NoError(t, os.WriteFile(cfgPath, []byte("backend: [broken\n"), 0o644))

	out, err := runRoot(t, "doctor")
	require.Error(t, err)
	assert.Equal(t, ExitConfigInvalid, ExitCode(err), "tools are fine, so the config is the failure")
	assert.Contains(t, out, "✗ config")
}
