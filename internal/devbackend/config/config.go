// Package config handles configuration for the development backend.
package config

import (
	"os"
	"time"
)

// Config holds runtime settings for the development backend.
//
// Fields:
//   - ListenAddr: bind address (the console and proxy expect ":5189").
//   - SecretKey: HMAC secret for signing access tokens. A random secret is
//     generated at startup when empty.
//   - AccessTokenValidityDuration: token lifetime.
//   - SeedFile: optional JSON or YAML customer list; built-in data otherwise.
//   - LogLevel / LogFormat: slog level and handler.
type Config struct {
	ListenAddr                  string
	SecretKey                   string
	AccessTokenValidityDuration time.Duration
	SeedFile                    string
	LogLevel                    string
	LogFormat                   string
}

// LoadDefaults populates Config with development defaults.
func (c *Config) LoadDefaults() {
	c.ListenAddr = ":5189"
	c.SecretKey = ""
	c.AccessTokenValidityDuration = time.Hour
	c.SeedFile = ""
	c.LogLevel = "info"
	c.LogFormat = "text"
}

// LoadConfig builds a Config from the process arguments.
func LoadConfig() *Config {
	return Load(os.Args[1:])
}

// Load applies defaults, the optional config file, then flags.
func Load(args []string) *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseFile(cfg, args)
	parseFlags(cfg, args)
	return cfg
}
