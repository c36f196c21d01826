package config

import (
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func TestNew_Defaults(t *testing.T) {
	t.Setenv("DEVWELL_HOME", t.TempDir()) // keep localstate out of $HOME

	cfg, err := New()
	require.NoError(t, err)
	require.Equal(t, 4, cfg.Shards)
	require.Equal(t, 128, cfg.QueueSize)
	require.Equal(t, "info", cfg.LogLevel)
	require.Equal(t, zerolog.InfoLevel, cfg.Level())
	require.NotEmpty(t, cfg.DBPath)
}

func TestNew_Overrides(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "custom.db")
	t.Setenv("DEVWELL_DB_PATH", dbPath)
	t.Setenv("DEVWELL_SHARDS", "2")
	t.Setenv("DEVWELL_QUEUE_SIZE", "16")
	t.Setenv("DEVWELL_LOG_LEVEL", "debug")

	cfg, err := New()
	require.NoError(t, err)
	require.Equal(t, dbPath, cfg.DBPath)
	require.Equal(t, 2, cfg.Shards)
	require.Equal(t, 16, cfg.QueueSize)
	require.Equal(t, zerolog.DebugLevel, cfg.Level())
}

func TestNew_RejectsBadValues(t *testing.T) {
	t.Setenv("DEVWELL_HOME", t.TempDir())

	t.Setenv("DEVWELL_LOG_LEVEL", "loud")
	_, err := New()
	require.Error(t, err)

	t.Setenv("DEVWELL_LOG_LEVEL", "info")
	t.Setenv("DEVWELL_SHARDS", "0")
	_, err = New()
	require.Error(t, err)
}
