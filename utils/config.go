package utils

import (
	"encoding/json"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
)

// Config holds the configuration for the game
type Config struct {
	LatitudeMax         int           `json:"latitude_max"`
	LongitudeMax        int           `json:"longitude_max"`
	FrameRate           time.Duration `json:"frame_rate"`
	SeedCount           int           `json:"seed_count"`
	AutoRestart         bool          `json:"auto_restart"`
	StagnationThreshold int           `json:"stagnation_threshold"`
	MaxGenerations      int           `json:"max_generations"`
	StatsInterval       time.Duration `json:"stats_interval"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		LatitudeMax:         29,
		LongitudeMax:        59,
		FrameRate:           150 * time.Millisecond,
		SeedCount:           270,
		AutoRestart:         true,
		StagnationThreshold: 5,
		MaxGenerations:      1000,
		StatsInterval:       10 * time.Second,
	}
}

// LoadConfig loads configuration from a JSON file, then applies any
// GOLIFE_* environment overrides on top. A .env file in the working
// directory is honored if present.
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	if err = json.Unmarshal(data, &config); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	if err = config.ApplyEnvOverrides(); err != nil {
		return config, err
	}

	return config, nil
}

// ApplyEnvOverrides replaces config fields whose GOLIFE_* variables
// are set in the environment. LoadConfig calls it after reading the
// file; callers falling back to DefaultConfig apply it themselves.
func (c *Config) ApplyEnvOverrides() error {
	_ = godotenv.Load()

	intOverrides := map[string]*int{
		"GOLIFE_LATITUDE_MAX":         &c.LatitudeMax,
		"GOLIFE_LONGITUDE_MAX":        &c.LongitudeMax,
		"GOLIFE_SEED_COUNT":           &c.SeedCount,
		"GOLIFE_STAGNATION_THRESHOLD": &c.StagnationThreshold,
		"GOLIFE_MAX_GENERATIONS":      &c.MaxGenerations,
	}
	for key, field := range intOverrides {
		value, exists := os.LookupEnv(key)
		if !exists {
			continue
		}
		parsed, err := strconv.Atoi(value)
		if err != nil {
			return errors.Wrapf(err, "[applyEnvOverrides] failed to parse %s: %+v", key, value)
		}
		*field = parsed
	}

	if value, exists := os.LookupEnv("GOLIFE_FRAME_RATE"); exists {
		rate, err := time.ParseDuration(value)
		if err != nil {
			return errors.Wrapf(err, "[applyEnvOverrides] failed to parse GOLIFE_FRAME_RATE: %+v", value)
		}
		c.FrameRate = rate
	}

	return nil
}
