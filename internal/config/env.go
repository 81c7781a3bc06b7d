package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// DotEnvFile is loaded into the process environment before env overrides are applied.
var DotEnvFile = ".env"

// loadFromEnv overrides configuration with environment variables.
// Variables already present in the environment win over the .env file.
func loadFromEnv(config *Config) error {
	if err := godotenv.Load(DotEnvFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to load %s: %w", DotEnvFile, err)
	}

	if err := env.Parse(config); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}
