// Package config handles configuration for the customers proxy,
// including defaults, a JSON or YAML file overlay, and command-line flags.
package config

import (
	"os"
	"time"
)

// Config holds runtime settings for the proxy.
//
// Fields:
//   - ListenAddr: bind address of the local HTTP boundary.
//   - BackendURL: base URL of the external REST API; requests go to
//     BackendURL + "/Customers[/...]".
//   - ShutdownTimeout: grace period for in-flight requests on stop.
//   - LogLevel / LogFormat: slog level and handler ("json" or "text").
type Config struct {
	ListenAddr      string
	BackendURL      string
	ShutdownTimeout time.Duration
	LogLevel        string
	LogFormat       string
}

// LoadDefaults populates Config with development defaults.
func (c *Config) LoadDefaults() {
	c.ListenAddr = ":3000"
	c.BackendURL = "http://localhost:5189/api"
	c.ShutdownTimeout = 5 * time.Second
	c.LogLevel = "info"
	c.LogFormat = "json"
}

// LoadConfig builds a Config from the process arguments.
func LoadConfig() *Config {
	return Load(os.Args[1:])
}

// Load applies defaults, then values from an optional config file, then
// command-line flags. It panics on unreadable files or malformed flags.
func Load(args []string) *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseFile(cfg, args)
	parseFlags(cfg, args)
	return cfg
}
