package bootstrap

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Jusctsch5/PSOQuestOptimizer-sub000/internal/config"
)

func TestCleanupLogs(t *testing.T) {
	dir := t.TempDir()
	names := []string{
		"session_2026-01-01_00-00-00.log",
		"session_2026-01-02_00-00-00.log",
		"session_2026-01-03_00-00-00.log",
		"session_2026-01-04_00-00-00.log",
	}
	for _, n := range names {
		require.NoError(t, os.WriteFile(filepath.Join(dir, n), nil, 0600))
	}
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), nil, 0600))

	cleanupLogs(dir, 2)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	var left []string
	for _, e := range entries {
		left = append(left, e.Name())
	}
	assert.ElementsMatch(t, []string{names[2], names[3], "notes.txt"}, left)
}

func TestCleanupLogs_MissingDir(t *testing.T) {
	assert.NotPanics(t, func() { cleanupLogs(filepath.Join(t.TempDir(), "nope"), 1) })
}

func TestSetupLogger(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	t.Run("stdout only", func(t *testing.T) {
		closer, err := SetupLogger(&config.Config{LogLevel: "info", LogFormat: "text"})
		require.NoError(t, err)
		assert.Nil(t, closer)
	})

	t.Run("session file", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "logs")
		cfg := &config.Config{LogLevel: "debug", LogFormat: "json", LogDir: dir, Environment: "prod"}

		closer, err := SetupLogger(cfg)
		require.NoError(t, err)
		require.NotNil(t, closer)
		slog.Info("hello from test")
		require.NoError(t, closer.Close())

		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.True(t, strings.HasPrefix(entries[0].Name(), "session_"))

		data, err := os.ReadFile(filepath.Join(dir, entries[0].Name()))
		require.NoError(t, err)
		assert.Contains(t, string(data), "hello from test")
	})
}
