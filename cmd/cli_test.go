package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShellRunsCommandsUntilExit(t *testing.T) {
	home := t.TempDir()

	stdout, _, err := executeCLIWithInput(t, home, strings.Join([]string{
		"add CS2113",
		"add CS2113 3 2024-03-01",
		"add CS2113 2",
		"list",
		"exit",
		"add MA1521",
	}, "\n"))
	require.NoError(t, err)
	assert.Contains(t, stdout, "Welcome to NUStudy!")
	assert.Contains(t, stdout, "Added: CS2113")
	assert.Contains(t, stdout, "Logged 3 hours for CS2113 on 2024-03-01")
	assert.Contains(t, stdout, "5 hours in 2 sessions")
	assert.Contains(t, stdout, "Bye!")
	assert.NotContains(t, stdout, "MA1521")

	assert.Equal(t, "C|CS2113\nS|CS2113|3|2024-03-01\nS|CS2113|2\n", readDataFile(t, home))
}

func TestShellReportsErrorsAndContinues(t *testing.T) {
	home := t.TempDir()

	stdout, _, err := executeCLIWithInput(t, home, strings.Join([]string{
		"foo",
		"exit now",
		"add CS2113 5",
		"add CS2113",
		"add CS2113",
		"list CS2113",
	}, "\n"))
	require.NoError(t, err)
	assert.Contains(t, stdout, "Error: invalid command: Wrong command")
	assert.Contains(t, stdout, "Usage: exit")
	assert.Contains(t, stdout, "course not found: CS2113")
	assert.Contains(t, stdout, "course already exists: CS2113")
	assert.Contains(t, stdout, "No sessions logged.")
}

func TestShellReportsBlankLines(t *testing.T) {
	home := t.TempDir()

	stdout, _, err := executeCLIWithInput(t, home, strings.Join([]string{
		"",
		"   ",
		"add CS2113",
		"exit",
	}, "\n"))
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(stdout, "Error: invalid command: Input cannot be empty"))
	assert.Contains(t, stdout, "Added: CS2113")
	assert.Contains(t, stdout, "Bye!")
}

func TestShellStopsAtEndOfInput(t *testing.T) {
	home := t.TempDir()

	stdout, _, err := executeCLIWithInput(t, home, "add CS2113\n\n")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Added: CS2113")
	assert.Equal(t, "C|CS2113\n", readDataFile(t, home))
}

func TestExecRunsSingleCommand(t *testing.T) {
	home := t.TempDir()
	require.NoError(t, writeDataFixture(home))

	stdout, _, err := executeCLI(t, home, "exec", "delete", "2024-03-01")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Deleted 2 sessions on 2024-03-01")
	assert.Equal(t, "C|CS2113\nS|CS2113|5\nC|MA1521\n", readDataFile(t, home))

	stdout, _, err = executeCLI(t, home, "exec", "filter", "ma")
	require.NoError(t, err)
	assert.Contains(t, stdout, "1 course matching \"ma\"")
	assert.Contains(t, stdout, "MA1521")
}

func TestExecReturnsParseError(t *testing.T) {
	home := t.TempDir()

	_, _, err := executeCLI(t, home, "exec", "filter", "2024-03-01")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Invalid filter command")
}

func TestExecHonoursDataFlag(t *testing.T) {
	home := t.TempDir()
	dataPath := filepath.Join(t.TempDir(), "elsewhere.txt")

	_, _, err := executeCLI(t, home, "exec", "--data", dataPath, "add", "CS2113")
	require.NoError(t, err)

	data, err := os.ReadFile(dataPath)
	require.NoError(t, err)
	assert.Equal(t, "C|CS2113\n", string(data))
}

func TestCorruptDataFileAbortsLoad(t *testing.T) {
	home := t.TempDir()
	dataDir := filepath.Join(home, ".nustudy")
	require.NoError(t, os.MkdirAll(dataDir, 0o700))
	require.NoError(t, os.WriteFile(filepath.Join(dataDir, "nustudy.txt"), []byte("C|CS2113\nS|CS2113|x\n"), 0o600))

	_, _, err := executeCLI(t, home, "exec", "list")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 2")
	assert.Equal(t, "C|CS2113\nS|CS2113|x\n", readDataFile(t, home))
}

func TestConfigInitWritesFile(t *testing.T) {
	home := t.TempDir()

	stdout, _, err := executeCLI(t, home, "config", "init", "--log-level", "info")
	require.NoError(t, err)
	assert.Contains(t, stdout, "config.toml")

	data, err := os.ReadFile(filepath.Join(home, ".nustudy", "config.toml"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "level = 'info'")

	_, _, err = executeCLI(t, home, "config", "init")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config file already exists")

	stdout, _, err = executeCLI(t, home, "config", "show")
	require.NoError(t, err)
	assert.Contains(t, stdout, "log.level\tinfo")
}

func TestVersionCommand(t *testing.T) {
	stdout, _, err := executeCLI(t, t.TempDir(), "version")
	require.NoError(t, err)
	assert.Equal(t, "dev\n", stdout)
}

func TestUnknownSubcommand(t *testing.T) {
	_, _, err := executeCLI(t, t.TempDir(), "pool")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown command \"pool\"")
}

func executeCLI(t *testing.T, home string, args ...string) (string, string, error) {
	t.Helper()
	return executeCLIWithInput(t, home, "", args...)
}

func executeCLIWithInput(t *testing.T, home, input string, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("HOME", home)
	t.Setenv("NUSTUDY_DATA_PATH", "")
	t.Setenv("NUSTUDY_LOG_LEVEL", "")

	root := newRootCmd()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	root.SetIn(strings.NewReader(input))
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetArgs(args)

	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func writeDataFixture(home string) error {
	dataDir := filepath.Join(home, ".nustudy")
	if err := os.MkdirAll(dataDir, 0o700); err != nil {
		return err
	}

	records := `C|CS2113
S|CS2113|5
S|CS2113|2|2024-03-01
C|MA1521
S|MA1521|4|2024-03-01
`

	return os.WriteFile(filepath.Join(dataDir, "nustudy.txt"), []byte(records), 0o600)
}

func readDataFile(t *testing.T, home string) string {
	t.Helper()

	data, err := os.ReadFile(filepath.Join(home, ".nustudy", "nustudy.txt"))
	require.NoError(t, err)
	return string(data)
}
