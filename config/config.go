package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Load loads the configuration. The config file is optional; the
// PEXELS_API_KEY environment variable (optionally via a .env file) always
// overrides the file. A missing API key is a configuration error reported
// here, before any client exists.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	// Set default values
	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		// Look for config in standard locations
		v.SetConfigName("config")
		v.SetConfigType("yaml")

		// Check current directory first
		v.AddConfigPath(".")

		// Check home directory
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".pexplore"))
		}

		// Check /etc
		v.AddConfigPath("/etc/pexplore/")
	}

	// Read config file. Running without one is fine as long as the
	// environment supplies the API key, unless a file was named explicitly.
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config: %w", err)
		}
		if configPath != "" {
			return nil, fmt.Errorf("config file not found: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	// Overlay environment credentials
	if err := applyEnv(&cfg); err != nil {
		return nil, err
	}

	// Validate configuration
	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// applyEnv merges credentials from the environment over the file values.
// A .env file in the working directory is loaded first when present.
func applyEnv(cfg *Config) error {
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(); err != nil {
			return fmt.Errorf("error loading .env file: %w", err)
		}
	}

	var envCfg EnvConfig
	if err := env.Parse(&envCfg); err != nil {
		return fmt.Errorf("error parsing environment: %w", err)
	}

	if envCfg.APIKey != "" {
		cfg.Pexels.APIKey = envCfg.APIKey
	}
	if envCfg.BaseURL != "" {
		cfg.Pexels.BaseURL = envCfg.BaseURL
	}
	return nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Pexels defaults
	v.SetDefault("pexels.timeout", 30)

	// Request defaults
	v.SetDefault("defaults.per_page", 15)

	// Output defaults
	v.SetDefault("output.format", "console")
	v.SetDefault("output.color", true)

	// Logging defaults
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.color", true)
}

// validate checks if the configuration is valid
func validate(cfg *Config) error {
	if cfg.Pexels.APIKey == "" || cfg.Pexels.APIKey == "your-api-key-here" {
		return fmt.Errorf("pexels.api_key must be set (config file or PEXELS_API_KEY)")
	}

	if cfg.Pexels.Timeout < 0 {
		return fmt.Errorf("pexels.timeout must be >= 0, got %d", cfg.Pexels.Timeout)
	}

	if cfg.Defaults.PerPage < 1 || cfg.Defaults.PerPage > 80 {
		return fmt.Errorf("defaults.per_page must be between 1 and 80, got %d", cfg.Defaults.PerPage)
	}

	// Validate output format
	validOutputs := map[string]bool{
		"console": true,
		"json":    true,
	}
	if !validOutputs[cfg.Output.Format] {
		return fmt.Errorf("invalid output format: %s", cfg.Output.Format)
	}

	// Validate logging level
	validLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[cfg.Logging.Level] {
		return fmt.Errorf("invalid logging level: %s", cfg.Logging.Level)
	}

	// Validate logging format
	validFormats := map[string]bool{
		"console": true,
		"json":    true,
	}
	if !validFormats[cfg.Logging.Format] {
		return fmt.Errorf("invalid logging format: %s", cfg.Logging.Format)
	}

	return nil
}
