package zaplogger

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestWithComponentAndFormatting(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	log := FromZap(zap.New(core))

	log.WithComponent("copy").Info("Copied %s to %s", "a.txt", "b.txt")

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "Copied a.txt to b.txt", entries[0].Message)
	assert.Equal(t, "copy", entries[0].LoggerName)
}

func TestNewWritesJSONWithSession(t *testing.T) {
	path := filepath.Join(t.TempDir(), "filemanager.log")

	log, err := New(Config{Level: "info", OutputPaths: []string{path}, SessionID: "abc"})
	require.NoError(t, err)

	log.Debug("hidden")
	log.Warn("Skipping %s: %s", "/x", "denied")
	require.NoError(t, log.Sync())

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 1)

	var record map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &record))
	assert.Equal(t, "warn", record["level"])
	assert.Equal(t, "Skipping /x: denied", record["message"])
	assert.Equal(t, "abc", record["session"])
}

func TestNewRejectsUnknownLevel(t *testing.T) {
	_, err := New(Config{Level: "loud", OutputPaths: []string{"stderr"}})
	assert.Error(t, err)
}
