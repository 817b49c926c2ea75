package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	cfg := New()

	require.False(t, cfg.GetBool(ConfigDebug))
	require.Equal(t, uint64(0), cfg.GetUint64(ConfigSeed), "Seed should default to unseeded")
	require.Equal(t, 1, cfg.GetInt(ConfigGoroutines))
	require.True(t, cfg.GetBool(ConfigCache))
	require.False(t, cfg.GetBool(ConfigMetrics))
	require.Equal(t, "/tmp/ataxx_history.tmp", cfg.GetString(ConfigHistoryFile))
	require.Len(t, cfg.AdvisorOptions(), 4)
}

func TestEnvironment(t *testing.T) {
	t.Setenv("ATAXX_GOROUTINES", "4")
	t.Setenv("ATAXX_HISTORY_FILE", "/tmp/other_history")

	cfg := New()

	require.Equal(t, 4, cfg.GetInt(ConfigGoroutines))
	require.Equal(t, "/tmp/other_history", cfg.GetString(ConfigHistoryFile))
}

func TestLoad(t *testing.T) {
	t.Run("no file", func(t *testing.T) {
		require.NoError(t, New().Load(""))
	})

	t.Run("yaml file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "ataxx.yaml")
		require.NoError(t, os.WriteFile(path, []byte("seed: 42\ncache: false\n"), 0644))
		cfg := New()

		require.NoError(t, cfg.Load(path))

		require.Equal(t, uint64(42), cfg.GetUint64(ConfigSeed))
		require.False(t, cfg.GetBool(ConfigCache))
		require.Equal(t, 1, cfg.GetInt(ConfigGoroutines), "Unset keys should keep their defaults")
	})

	t.Run("missing file", func(t *testing.T) {
		err := New().Load(filepath.Join(t.TempDir(), "missing.yaml"))
		require.Error(t, err)
	})
}

func TestBindFlags(t *testing.T) {
	t.Setenv("ATAXX_GOROUTINES", "4")
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.Int(ConfigGoroutines, 1, "")
	flags.Bool(ConfigDebug, false, "")
	cfg := New()
	require.NoError(t, cfg.BindFlags(flags))

	require.Equal(t, 4, cfg.GetInt(ConfigGoroutines), "Unchanged flags should not override the environment")

	require.NoError(t, flags.Parse([]string{"--goroutines=8", "--debug"}))
	require.Equal(t, 8, cfg.GetInt(ConfigGoroutines), "Flags should win over the environment")
	require.True(t, cfg.GetBool(ConfigDebug))
}
