package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// Config holds the settings for a mazegen run.
type Config struct {
	Rows        int           // Number of grid rows, odd and >= 5
	Cols        int           // Number of grid columns, odd and >= 5
	Seed        int64         // Random seed; 0 picks one from the clock
	EndStrategy string        // "random" or "farthest"
	Delay       time.Duration // Pause between animated steps
	SaveDir     string        // Directory where replay records are written
	LogLevel    string        // logrus level name
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Rows:        21,
		Cols:        41,
		EndStrategy: "random",
		Delay:       30 * time.Millisecond,
		LogLevel:    "warning",
	}
}

// FromEnv loads the given .env files (or ./.env when none are given) and
// overrides the defaults with any MAZE_* variables that are set.
func FromEnv(filenames ...string) (Config, error) {
	if err := godotenv.Load(filenames...); err != nil {
		logrus.WithError(err).Debug(".env file not found or could not be loaded")
	}

	config := Default()
	var err error

	if config.Rows, err = getEnvAsInt("MAZE_ROWS", config.Rows); err != nil {
		return config, err
	}
	if config.Cols, err = getEnvAsInt("MAZE_COLS", config.Cols); err != nil {
		return config, err
	}
	if config.Seed, err = getEnvAsInt64("MAZE_SEED", config.Seed); err != nil {
		return config, err
	}
	if config.Delay, err = getEnvAsDuration("MAZE_DELAY", config.Delay); err != nil {
		return config, err
	}
	config.EndStrategy = getEnvWithDefault("MAZE_END", config.EndStrategy)
	config.SaveDir = getEnvWithDefault("MAZE_SAVE_DIR", config.SaveDir)
	config.LogLevel = getEnvWithDefault("MAZE_LOG_LEVEL", config.LogLevel)

	return config, nil
}

// getEnvWithDefault retrieves the value of an environment variable or returns a default value if not set.
func getEnvWithDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) (int, error) {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue, nil
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue, fmt.Errorf("environment variable %s must be an integer: %w", key, err)
	}
	return value, nil
}

func getEnvAsInt64(key string, defaultValue int64) (int64, error) {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue, nil
	}
	value, err := strconv.ParseInt(valueStr, 10, 64)
	if err != nil {
		return defaultValue, fmt.Errorf("environment variable %s must be an integer: %w", key, err)
	}
	return value, nil
}

func getEnvAsDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue, nil
	}
	value, err := time.ParseDuration(valueStr)
	if err != nil {
		return defaultValue, fmt.Errorf("environment variable %s must be a duration: %w", key, err)
	}
	return value, nil
}

// Logger builds a logrus logger at the configured level.
func (config Config) Logger() (*logrus.Logger, error) {
	level, err := logrus.ParseLevel(config.LogLevel)
	if err != nil {
		return nil, err
	}

	logger := logrus.New()
	logger.SetLevel(level)
	logger.Out = os.Stderr
	logger.Formatter = &logrus.TextFormatter{FullTimestamp: true}
	return logger, nil
}
