package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jask/photofeed/internal/config"
)

func TestNewWithoutPathIsNop(t *testing.T) {
	log, err := New(config.LogConfig{}, true)
	require.NoError(t, err)
	require.False(t, log.Core().Enabled(-1))
}

func TestNewWritesJSONToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "app.log")
	log, err := New(config.LogConfig{Path: path, Level: "warn"}, false)
	require.NoError(t, err)

	log.Info("dropped")
	log.Warn("kept")
	_ = log.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.NotContains(t, string(data), "dropped")
	require.Contains(t, string(data), `"msg":"kept"`)
	require.Contains(t, string(data), `"logger":"photofeed"`)
}

func TestVerboseEnablesDebug(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")
	log, err := New(config.LogConfig{Path: path, Level: "error"}, true)
	require.NoError(t, err)
	require.True(t, log.Core().Enabled(-1))
}

func TestBadLevel(t *testing.T) {
	_, err := New(config.LogConfig{Path: filepath.Join(t.TempDir(), "a.log"), Level: "loud"}, false)
	require.Error(t, err)
}
