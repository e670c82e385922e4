package utils_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sheikhrachel/go-life/utils"
)

func writeConfigFile(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	return path
}

func TestDefaultConfig(t *testing.T) {
	config := utils.DefaultConfig()

	assert.Equal(t, 29, config.LatitudeMax)
	assert.Equal(t, 59, config.LongitudeMax)
	assert.Equal(t, 150*time.Millisecond, config.FrameRate)
	assert.Equal(t, 270, config.SeedCount)
	assert.True(t, config.AutoRestart)
	assert.Equal(t, 5, config.StagnationThreshold)
	assert.Equal(t, 1000, config.MaxGenerations)
}

func TestLoadConfig(t *testing.T) {
	path := writeConfigFile(t, `{
		"latitude_max": 9,
		"longitude_max": 19,
		"seed_count": 40,
		"auto_restart": false
	}`)

	config, err := utils.LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 9, config.LatitudeMax)
	assert.Equal(t, 19, config.LongitudeMax)
	assert.Equal(t, 40, config.SeedCount)
	assert.False(t, config.AutoRestart)
	// Untouched fields keep their defaults.
	assert.Equal(t, 150*time.Millisecond, config.FrameRate)
	assert.Equal(t, 5, config.StagnationThreshold)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	config, err := utils.LoadConfig(filepath.Join(t.TempDir(), "nope.json"))

	assert.Error(t, err)
	// Callers fall back to the returned defaults.
	assert.Equal(t, utils.DefaultConfig(), config)
}

func TestLoadConfig_MalformedJSON(t *testing.T) {
	path := writeConfigFile(t, `{"latitude_max": `)

	_, err := utils.LoadConfig(path)
	assert.Error(t, err)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("GOLIFE_SEED_COUNT", "42")
	t.Setenv("GOLIFE_LATITUDE_MAX", "14")
	t.Setenv("GOLIFE_FRAME_RATE", "250ms")

	path := writeConfigFile(t, `{"seed_count": 10, "latitude_max": 5}`)

	config, err := utils.LoadConfig(path)
	require.NoError(t, err)

	// Environment wins over the file.
	assert.Equal(t, 42, config.SeedCount)
	assert.Equal(t, 14, config.LatitudeMax)
	assert.Equal(t, 250*time.Millisecond, config.FrameRate)
}

func TestApplyEnvOverrides_InvalidValues(t *testing.T) {
	t.Run("non-integer count", func(t *testing.T) {
		t.Setenv("GOLIFE_SEED_COUNT", "lots")

		config := utils.DefaultConfig()
		assert.Error(t, config.ApplyEnvOverrides())
	})

	t.Run("unparsable frame rate", func(t *testing.T) {
		t.Setenv("GOLIFE_FRAME_RATE", "fast")

		config := utils.DefaultConfig()
		assert.Error(t, config.ApplyEnvOverrides())
	})
}
