package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Supported storage drivers.
const (
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

// DefaultConfigPath is used when CONFIG_PATH is not set.
const DefaultConfigPath = "configs/config.yaml"

// Config structure represents the application configuration
type Config struct {
	Server struct {
		Port            string `yaml:"port" env:"SERVER_PORT"`
		Mode            string `yaml:"mode" env:"SERVER_MODE"`
		ReadTimeout     string `yaml:"read_timeout" env:"SERVER_READ_TIMEOUT"`
		WriteTimeout    string `yaml:"write_timeout" env:"SERVER_WRITE_TIMEOUT"`
		IdleTimeout     string `yaml:"idle_timeout" env:"SERVER_IDLE_TIMEOUT"`
		ShutdownTimeout string `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT"`
	} `yaml:"server"`

	Database struct {
		Driver          string `yaml:"driver" env:"DB_DRIVER"`
		Host            string `yaml:"host" env:"DB_HOST"`
		Port            string `yaml:"port" env:"DB_PORT"`
		User            string `yaml:"user" env:"DB_USER"`
		Password        string `yaml:"password" env:"DB_PASSWORD"`
		DBName          string `yaml:"dbname" env:"DB_NAME"`
		SSLMode         string `yaml:"sslmode" env:"DB_SSLMODE"`
		MaxIdleConns    int    `yaml:"max_idle_conns" env:"DB_MAX_IDLE_CONNS"`
		MaxOpenConns    int    `yaml:"max_open_conns" env:"DB_MAX_OPEN_CONNS"`
		ConnMaxLifetime string `yaml:"conn_max_lifetime" env:"DB_CONN_MAX_LIFETIME"`
		Seed            bool   `yaml:"seed" env:"DB_SEED"`
	} `yaml:"database"`

	Logging struct {
		Level  string `yaml:"level" env:"LOG_LEVEL"`
		Format string `yaml:"format" env:"LOG_FORMAT"`
	} `yaml:"logging"`
}

// LoadConfig loads configuration from a file, an optional .env file and environment variables
func LoadConfig(configPath string) (*Config, error) {
	config := &Config{}
	setDefaults(config)

	// A missing config file is not an error; defaults and env still apply.
	if _, err := os.Stat(configPath); err == nil {
		file, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}

		if err := yaml.Unmarshal(file, config); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	if err := loadFromEnv(config); err != nil {
		return nil, fmt.Errorf("failed to load from environment: %w", err)
	}

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// ResolvePath returns CONFIG_PATH when set, otherwise DefaultConfigPath.
func ResolvePath() string {
	if p := strings.TrimSpace(os.Getenv("CONFIG_PATH")); p != "" {
		return p
	}
	return DefaultConfigPath
}

// setDefaults sets default values for the configuration
func setDefaults(config *Config) {
	// Server defaults
	config.Server.Port = "8080"
	config.Server.Mode = "development"
	config.Server.ReadTimeout = "10s"
	config.Server.WriteTimeout = "10s"
	config.Server.IdleTimeout = "120s"
	config.Server.ShutdownTimeout = "10s"

	// Database defaults
	config.Database.Driver = DriverPostgres
	config.Database.Host = "localhost"
	config.Database.Port = "5432"
	config.Database.User = "postgres"
	config.Database.Password = "postgres"
	config.Database.DBName = "students"
	config.Database.SSLMode = "disable"
	config.Database.MaxIdleConns = 5
	config.Database.MaxOpenConns = 20
	config.Database.ConnMaxLifetime = "1h"

	// Logging defaults
	config.Logging.Level = "info"
	config.Logging.Format = "json"
}

// validateConfig ensures that the configuration is valid
func validateConfig(config *Config) error {
	if config.Server.Port == "" {
		return fmt.Errorf("server port is required")
	}

	switch config.Database.Driver {
	case DriverPostgres:
		if config.Database.Host == "" {
			return fmt.Errorf("database host is required")
		}
		if config.Database.DBName == "" {
			return fmt.Errorf("database name is required")
		}
		if _, err := time.ParseDuration(config.Database.ConnMaxLifetime); err != nil {
			return fmt.Errorf("invalid database connection lifetime: %w", err)
		}
		if config.Database.MaxOpenConns <= 0 {
			return fmt.Errorf("database max open connections must be positive")
		}
	case DriverMemory:
	default:
		return fmt.Errorf("unsupported database driver %q", config.Database.Driver)
	}

	for name, value := range map[string]string{
		"read_timeout":     config.Server.ReadTimeout,
		"write_timeout":    config.Server.WriteTimeout,
		"idle_timeout":     config.Server.IdleTimeout,
		"shutdown_timeout": config.Server.ShutdownTimeout,
	} {
		if _, err := time.ParseDuration(value); err != nil {
			return fmt.Errorf("invalid server %s: %w", name, err)
		}
	}

	switch strings.ToLower(config.Logging.Format) {
	case "json", "text":
	default:
		return fmt.Errorf("unsupported logging format %q", config.Logging.Format)
	}

	return nil
}

// GetPostgresConnectionString returns postgres connection string
func (c *Config) GetPostgresConnectionString() string {
	sslMode := c.Database.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}

	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.DBName,
		sslMode,
	)
}

// IsProduction reports whether the server runs in production mode.
func (c *Config) IsProduction() bool {
	return strings.ToLower(c.Server.Mode) == "production"
}
