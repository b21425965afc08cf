package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runApp(t *testing.T, input string, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	app := newApp(strings.NewReader(input), &stdout, &stderr)
	err := app.Run(append([]string{"filemanager"}, args...))
	return stdout.String(), stderr.String(), err
}

func TestExitChoice(t *testing.T) {
	stdout, stderr, err := runApp(t, "8\n")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(stdout, "Welcome to the File Manager!\n"))
	assert.True(t, strings.HasSuffix(stdout, "Enter your choice: Thank you for using File Manager. Goodbye!\n"))
	assert.Empty(t, stderr)
}

func TestEndOfInputIsNormalExit(t *testing.T) {
	stdout, _, err := runApp(t, "")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Enter your choice: ")
	assert.NotContains(t, stdout, "Goodbye")
}

func TestRootJailAndSummary(t *testing.T) {
	root := t.TempDir()
	report := filepath.Join(t.TempDir(), "session.md")

	input := strings.Join([]string{"6", "/made", "6", "/made", "8"}, "\n") + "\n"
	stdout, _, err := runApp(t, input, "--root", root, "--summary", report, "-q")
	require.NoError(t, err)

	assert.Contains(t, stdout, "Directory created successfully.\n")
	assert.Contains(t, stdout, "Directory already exists.\n")

	info, err := os.Stat(filepath.Join(root, "made"))
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	data, err := os.ReadFile(report)
	require.NoError(t, err)
	assert.Contains(t, string(data), "# File Manager Session")
	assert.Contains(t, string(data), "| Create Directory | completed |")
	assert.Contains(t, string(data), "| Create Directory | rejected |")
}

func TestLogFile(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "fm.log")
	missing := filepath.Join(t.TempDir(), "missing")

	input := "1\n" + missing + "\n8\n"
	_, stderr, err := runApp(t, input, "--log-file", logPath, "--log-level", "info")
	require.NoError(t, err)

	assert.Contains(t, stderr, "[dispatcher] List Directory rejected: Directory does not exist or is not a directory.")

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"session":`)
	assert.Contains(t, string(data), "List Directory rejected")
}

func TestConfigFileAndFlagPrecedence(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "fm.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("log_level: debug\n"), 0644))

	_, stderr, err := runApp(t, "1\n"+dir+"\n8\n", "-c", cfgPath)
	require.NoError(t, err)
	assert.Contains(t, stderr, "[dispatcher] Dispatching List Directory")

	_, stderr, err = runApp(t, "1\n"+dir+"\n8\n", "-c", cfgPath, "-l", "error")
	require.NoError(t, err)
	assert.Empty(t, stderr)
}

func TestInvalidSettings(t *testing.T) {
	_, _, err := runApp(t, "8\n", "--log-level", "loud")
	assert.ErrorContains(t, err, "unknown log level")

	_, _, err = runApp(t, "8\n", "extra")
	assert.ErrorContains(t, err, "unexpected argument")

	_, _, err = runApp(t, "8\n", "--root", filepath.Join(t.TempDir(), "nope"))
	assert.Error(t, err)
}

func TestVersion(t *testing.T) {
	stdout, _, err := runApp(t, "", "--version")
	require.NoError(t, err)
	assert.Contains(t, stdout, "dev")
}
