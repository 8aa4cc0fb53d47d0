// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Provide New() initializer to build a Config with defaults.
// - Load layers defaults, an optional YAML file, and environment variables.
// - External errors must be wrapped via this package's error helpers.
package config

// Config contains process configuration. Extend as needed.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr"`

	// DataDir is the directory holding the three dataset CSV files.
	// Ignored when PostgresDSN is set.
	DataDir string `koanf:"data_dir"`

	// PostgresDSN selects the PostgreSQL source when non-empty.
	PostgresDSN string `koanf:"postgres_dsn"`

	// TopN sets how many entries top-N rankings return.
	TopN int `koanf:"top_n"`

	// RateLimitRPS and RateLimitBurst bound requests to /api/data.
	// A zero RPS disables rate limiting.
	RateLimitRPS   float64 `koanf:"rate_limit_rps"`
	RateLimitBurst int     `koanf:"rate_limit_burst"`
}

// New creates a Config with defaults.
func New() *Config {
	return &Config{
		LogLevel:       "info",
		Addr:           ":8080",
		DataDir:        "data",
		TopN:           5,
		RateLimitRPS:   50,
		RateLimitBurst: 100,
	}
}
