// Package config loads CLI defaults from the environment, optionally seeded
// from a .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	EnvFormat           = "PATTERNS_FORMAT"
	EnvLogLevel         = "PATTERNS_LOG_LEVEL"
	EnvSingletonWorkers = "PATTERNS_SINGLETON_WORKERS"
)

// Formats lists the transcript output formats the CLI understands.
var Formats = []string{"text", "json", "yaml"}

type Config struct {
	Format           string
	LogLevel         slog.Level
	SingletonWorkers int
}

// Default is the configuration used when nothing is set.
func Default() Config {
	return Config{Format: "text", LogLevel: slog.LevelInfo, SingletonWorkers: 8}
}

// LoadFromEnv reads PATTERNS_* variables. When envFile is non-empty it is
// loaded first; a missing file is not an error. Variables already present
// in the process environment win over the file.
func LoadFromEnv(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", envFile, err)
		}
	}

	def := Default()
	cfg := Config{
		Format: strings.ToLower(getenv(EnvFormat, def.Format)),
	}

	if err := cfg.LogLevel.UnmarshalText([]byte(getenv(EnvLogLevel, def.LogLevel.String()))); err != nil {
		return Config{}, fmt.Errorf("%s: %w", EnvLogLevel, err)
	}

	workers, err := getenvInt(EnvSingletonWorkers, def.SingletonWorkers)
	if err != nil {
		return Config{}, err
	}
	cfg.SingletonWorkers = workers

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks value ranges.
func (c Config) Validate() error {
	if !ValidFormat(c.Format) {
		return fmt.Errorf("%s must be one of %s, got %q", EnvFormat, strings.Join(Formats, "|"), c.Format)
	}
	if c.SingletonWorkers <= 0 {
		return fmt.Errorf("%s must be > 0", EnvSingletonWorkers)
	}
	return nil
}

func ValidFormat(f string) bool { return slices.Contains(Formats, f) }

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getenvInt(k string, def int) (int, error) {
	v := os.Getenv(k)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", k, err)
	}
	return n, nil
}
