package config

import "time"

// Config holds runtime settings for the prompt-admin CLI.
//
// Fields:
//   - ServerBaseURL: base URL of the backend REST API (no trailing slash).
//   - RequestTimeout: per-request deadline applied by the HTTP client.
//   - LocalDBPath: path of the local sqlite database (token, usage counters).
//   - LogLevel: debug | info | warn | error.
type Config struct {
	ServerBaseURL  string
	RequestTimeout time.Duration
	LocalDBPath    string
	LogLevel       string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerBaseURL = "http://localhost:8080"
	c.RequestTimeout = 15 * time.Second
	c.LocalDBPath = "promptadmin.db"
	c.LogLevel = "info"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
