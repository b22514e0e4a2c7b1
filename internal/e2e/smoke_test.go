package e2e

import (
	"bytes"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSmokeFlow(t *testing.T) {
	home := t.TempDir()
	binaryPath := buildBinary(t)

	_, stderr, err := runNUStudy(t, binaryPath, home, "", "exec", "add", "CS2113")
	require.NoError(t, err, "stderr: %s", stderr)

	_, stderr, err = runNUStudy(t, binaryPath, home, "", "exec", "add", "CS2113", "4", "2024-03-01")
	require.NoError(t, err, "stderr: %s", stderr)

	stdout, stderr, err := runNUStudy(t, binaryPath, home, "list CS2113\nexit\n")
	require.NoError(t, err, "stderr: %s", stderr)
	assert.Contains(t, stdout, "1. 4 hours 2024-03-01")
	assert.Contains(t, stdout, "Bye!")

	data, err := os.ReadFile(filepath.Join(home, ".nustudy", "nustudy.txt"))
	require.NoError(t, err)
	assert.Equal(t, "C|CS2113\nS|CS2113|4|2024-03-01\n", string(data))
}

func TestSmokeExecFailureExitsNonZero(t *testing.T) {
	home := t.TempDir()
	binaryPath := buildBinary(t)

	_, stderr, err := runNUStudy(t, binaryPath, home, "", "exec", "delete", "CS2113")
	require.Error(t, err)
	assert.Contains(t, stderr, "course not found")
}

func buildBinary(t *testing.T) string {
	t.Helper()

	binaryPath := filepath.Join(t.TempDir(), "nustudy-e2e")
	cmd := exec.Command("go", "build", "-o", binaryPath, "./cmd/nustudy")
	cmd.Dir = repoRoot(t)

	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "build nustudy binary: %s", string(output))
	return binaryPath
}

func runNUStudy(t *testing.T, binaryPath, home, input string, args ...string) (string, string, error) {
	t.Helper()

	cmd := exec.Command(binaryPath, args...)
	cmd.Env = append(os.Environ(), "HOME="+home, "NUSTUDY_DATA_PATH=", "NUSTUDY_LOG_LEVEL=")
	cmd.Stdin = strings.NewReader(input)

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	return stdout.String(), stderr.String(), err
}

func repoRoot(t *testing.T) string {
	t.Helper()

	wd, err := os.Getwd()
	require.NoError(t, err)
	return filepath.Clean(filepath.Join(wd, "..", ".."))
}
