package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func unsetMazeEnv(t *testing.T) {
	for _, key := range []string{
		"MAZE_ROWS", "MAZE_COLS", "MAZE_SEED", "MAZE_END",
		"MAZE_DELAY", "MAZE_SAVE_DIR", "MAZE_LOG_LEVEL",
	} {
		value, exists := os.LookupEnv(key)
		require.NoError(t, os.Unsetenv(key))
		if exists {
			t.Cleanup(func() { os.Setenv(key, value) })
		} else {
			t.Cleanup(func() { os.Unsetenv(key) })
		}
	}
}

func TestFromEnv(t *testing.T) {
	t.Run("defaults when nothing is set", func(t *testing.T) {
		unsetMazeEnv(t)

		config, err := FromEnv(filepath.Join(t.TempDir(), "missing.env"))
		require.NoError(t, err)
		assert.Equal(t, Default(), config)
	})

	t.Run("environment overrides defaults", func(t *testing.T) {
		unsetMazeEnv(t)
		t.Setenv("MAZE_ROWS", "11")
		t.Setenv("MAZE_COLS", "13")
		t.Setenv("MAZE_SEED", "-42")
		t.Setenv("MAZE_END", "farthest")
		t.Setenv("MAZE_DELAY", "5ms")
		t.Setenv("MAZE_SAVE_DIR", "records")
		t.Setenv("MAZE_LOG_LEVEL", "debug")

		config, err := FromEnv(filepath.Join(t.TempDir(), "missing.env"))
		require.NoError(t, err)
		assert.Equal(t, Config{
			Rows:        11,
			Cols:        13,
			Seed:        -42,
			EndStrategy: "farthest",
			Delay:       5 * time.Millisecond,
			SaveDir:     "records",
			LogLevel:    "debug",
		}, config)
	})

	t.Run(".env file is loaded", func(t *testing.T) {
		unsetMazeEnv(t)
		envFile := filepath.Join(t.TempDir(), "maze.env")
		require.NoError(t, os.WriteFile(envFile, []byte("MAZE_ROWS=9\nMAZE_END=farthest\n"), 0644))

		config, err := FromEnv(envFile)
		require.NoError(t, err)
		assert.Equal(t, 9, config.Rows)
		assert.Equal(t, "farthest", config.EndStrategy)
		assert.Equal(t, Default().Cols, config.Cols)
	})

	t.Run("invalid values", func(t *testing.T) {
		for key, value := range map[string]string{
			"MAZE_ROWS":  "many",
			"MAZE_COLS":  "1.5",
			"MAZE_SEED":  "seed",
			"MAZE_DELAY": "soon",
		} {
			unsetMazeEnv(t)
			t.Setenv(key, value)

			_, err := FromEnv(filepath.Join(t.TempDir(), "missing.env"))
			assert.Error(t, err, key)
			os.Unsetenv(key)
		}
	})
}

func TestLogger(t *testing.T) {
	config := Default()
	config.LogLevel = "debug"

	logger, err := config.Logger()
	require.NoError(t, err)
	assert.Equal(t, logrus.DebugLevel, logger.Level)

	config.LogLevel = "chatty"
	_, err = config.Logger()
	assert.Error(t, err)
}
