package logging_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/plus3/blockfall/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWritesSessionField(t *testing.T) {
	path := filepath.Join(t.TempDir(), "blockfall.log")

	logger, session, err := logging.New("info", path)
	require.NoError(t, err)
	_, err = uuid.Parse(session)
	require.NoError(t, err)

	logger.Debug("hidden")
	logger.Info("shown")
	require.NoError(t, logger.Sync())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 1)

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "shown", entry["msg"])
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, session, entry["session"])
}

func TestNewRejectsBadLevel(t *testing.T) {
	_, _, err := logging.New("chatty", "stderr")
	assert.ErrorContains(t, err, "log level")
}

func TestSessionsDiffer(t *testing.T) {
	dir := t.TempDir()
	_, a, err := logging.New("warn", filepath.Join(dir, "a.log"))
	require.NoError(t, err)
	_, b, err := logging.New("warn", filepath.Join(dir, "b.log"))
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}
