// Package config loads application configuration from environment variables
// and an optional yaml config file.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/cfuentesp/moodlog/backend/internal/models"
)

// Config holds all configuration for the application
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Auth     AuthConfig     `mapstructure:"auth"`
	Log      LogConfig      `mapstructure:"log"`
	Mood     MoodConfig     `mapstructure:"mood"`
}

// ServerConfig holds server-specific configuration
type ServerConfig struct {
	Port string `mapstructure:"port"`
	Env  string `mapstructure:"env"`
}

// DatabaseConfig holds the sqlite database settings
type DatabaseConfig struct {
	Path string `mapstructure:"path"`
}

// AuthConfig holds API authentication settings. When Token is empty the
// API runs unauthenticated, which is the default for local use.
type AuthConfig struct {
	Token string `mapstructure:"token"`
}

// LogConfig holds logging settings
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// MoodConfig holds the mood scale bounds
type MoodConfig struct {
	ScaleMin int `mapstructure:"scale_min"`
	ScaleMax int `mapstructure:"scale_max"`
}

// Scale returns the configured mood scale.
func (m MoodConfig) Scale() models.Scale {
	return models.Scale{Min: m.ScaleMin, Max: m.ScaleMax}
}

// Load reads configuration from environment variables and config files
func Load() (*Config, error) {
	v := viper.New()

	// Set default values
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.env", "development")
	v.SetDefault("database.path", "moodlog.db")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
	v.SetDefault("mood.scale_min", models.DefaultScale.Min)
	v.SetDefault("mood.scale_max", models.DefaultScale.Max)

	// Read from environment variables
	v.SetEnvPrefix("MOODLOG")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Also bind common non-prefixed environment variables
	v.BindEnv("server.port", "PORT")
	v.BindEnv("database.path", "DATABASE_PATH")
	v.BindEnv("auth.token", "API_TOKEN")

	// Read from config file if it exists
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	// It's okay if config file doesn't exist
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// Validate checks that all required configuration values are present
func (c *Config) Validate() error {
	if c.Database.Path == "" {
		return fmt.Errorf("DATABASE_PATH is required")
	}
	if c.Mood.ScaleMin >= c.Mood.ScaleMax {
		return fmt.Errorf("mood scale min (%d) must be below max (%d)", c.Mood.ScaleMin, c.Mood.ScaleMax)
	}
	return nil
}
