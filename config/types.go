package config

// Config represents the complete configuration structure
type Config struct {
	Pexels   PexelsConfig   `mapstructure:"pexels"`
	Defaults DefaultsConfig `mapstructure:"defaults"`
	Output   OutputConfig   `mapstructure:"output"`
	Logging  LoggingConfig  `mapstructure:"logging"`
}

// PexelsConfig holds Pexels API connection details
type PexelsConfig struct {
	APIKey  string `mapstructure:"api_key"`
	BaseURL string `mapstructure:"base_url"`
	Timeout int    `mapstructure:"timeout"` // seconds
}

// DefaultsConfig contains default request parameters applied when a flag
// is not given
type DefaultsConfig struct {
	PerPage int `mapstructure:"per_page"`
}

// OutputConfig controls how results are rendered
type OutputConfig struct {
	Format string `mapstructure:"format"` // console or json
	Color  bool   `mapstructure:"color"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Color  bool   `mapstructure:"color"`
}

// EnvConfig holds the credentials read from the process environment. The
// environment always wins over the config file so keys can stay out of
// files that get committed or shared.
type EnvConfig struct {
	APIKey  string `env:"PEXELS_API_KEY"`
	BaseURL string `env:"PEXELS_BASE_URL"`
}
