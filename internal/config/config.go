// Package config assembles the application configuration from a .env
// file and SPROUTS_* environment variables.
package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/abhisek/sprouts/internal/contentgen"
	"github.com/abhisek/sprouts/internal/llm"
)

// LoadDotEnv loads environment variables from a .env file if present.
// Existing environment variables are not overwritten.
func LoadDotEnv(path string) error {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	return godotenv.Load(path)
}

// Config is the top-level configuration.
type Config struct {
	// DBPath overrides the default database location. Empty means
	// store.DefaultDBPath.
	DBPath string

	LLM        llm.Config
	Generation contentgen.Config
}

// Default returns the configuration used when nothing is set.
func Default() Config {
	return Config{
		LLM:        llm.DefaultConfig(),
		Generation: contentgen.DefaultConfig(),
	}
}

// Load reads the environment on top of Default.
func Load() Config {
	cfg := Default()
	cfg.LLM = llm.ConfigFromEnv()

	if raw := os.Getenv("SPROUTS_DB"); raw != "" {
		cfg.DBPath = raw
	}
	if raw := os.Getenv("SPROUTS_LLM_TIMEOUT_SECONDS"); raw != "" {
		if value, err := strconv.Atoi(raw); err == nil && value > 0 {
			cfg.LLM.Timeout = time.Duration(value) * time.Second
		}
	}
	if raw := os.Getenv("SPROUTS_LLM_MAX_ATTEMPTS"); raw != "" {
		if value, err := strconv.Atoi(raw); err == nil && value > 0 {
			cfg.LLM.Retry.MaxAttempts = value
		}
	}
	if raw := os.Getenv("SPROUTS_GENERATION_TIMEOUT_SECONDS"); raw != "" {
		if value, err := strconv.Atoi(raw); err == nil && value >= 0 {
			cfg.Generation.Timeout = time.Duration(value) * time.Second
		}
	}
	if raw := os.Getenv("SPROUTS_IMAGE_ASPECT_RATIO"); raw != "" {
		cfg.Generation.AspectRatio = raw
	}
	return cfg
}
